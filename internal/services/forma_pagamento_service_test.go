package services

import (
	"testing"
	"time"

	"github.com/s3t20-labs/vendas-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFormaPagamentoServiceCriarGeraCodigo(t *testing.T) {
	repo := new(formaPagamentoRepositoryMock)
	service := NewFormaPagamentoService(repo, loggerDeTeste())

	repo.On("Count").Return(int64(0), nil)
	repo.On("GetByCodigo", "PAG001").Return(nil, ErrNaoEncontrado)
	repo.On("Create", mock.AnythingOfType("*models.FormaPagamento")).Return(nil)

	forma, err := service.Criar(&models.FormaPagamentoRequest{FormaPagamento: "Pix"})

	assert.NoError(t, err)
	assert.Equal(t, "PAG001", forma.IDPagamento)
	assert.True(t, forma.IsActive)
	repo.AssertExpectations(t)
}

func TestFormaPagamentoServiceAtualizarAplicaIsActive(t *testing.T) {
	repo := new(formaPagamentoRepositoryMock)
	service := NewFormaPagamentoService(repo, loggerDeTeste())

	criadoEm := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)
	repo.On("GetByID", int64(2)).Return(&models.FormaPagamento{
		ID:             2,
		IDPagamento:    "PAG002",
		FormaPagamento: "Cartão",
		IsActive:       true,
		CreatedAt:      criadoEm,
		UpdatedAt:      criadoEm,
	}, nil)
	repo.On("Update", mock.AnythingOfType("*models.FormaPagamento")).Return(nil)

	inativo := false
	forma, err := service.Atualizar(2, &models.FormaPagamentoRequest{
		FormaPagamento: "Cartão de crédito",
		IsActive:       &inativo,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Cartão de crédito", forma.FormaPagamento)
	assert.False(t, forma.IsActive)
	assert.True(t, forma.UpdatedAt.After(criadoEm))
}

func TestFormaPagamentoServiceAtualizarSemIsActive(t *testing.T) {
	repo := new(formaPagamentoRepositoryMock)
	service := NewFormaPagamentoService(repo, loggerDeTeste())

	repo.On("GetByID", int64(2)).Return(&models.FormaPagamento{
		ID:          2,
		IDPagamento: "PAG002",
		IsActive:    true,
	}, nil)
	repo.On("Update", mock.AnythingOfType("*models.FormaPagamento")).Return(nil)

	forma, err := service.Atualizar(2, &models.FormaPagamentoRequest{
		FormaPagamento: "Dinheiro",
	})

	assert.NoError(t, err)
	assert.True(t, forma.IsActive)
}
