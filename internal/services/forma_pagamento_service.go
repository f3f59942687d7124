package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/s3t20-labs/vendas-service/internal/models"
	"github.com/sirupsen/logrus"
)

// FormaPagamentoRepository é o contrato de datastore consumido pelo serviço
// de formas de pagamento
type FormaPagamentoRepository interface {
	Create(formaPagamento *models.FormaPagamento) error
	GetByID(id int64) (*models.FormaPagamento, error)
	GetByCodigo(codigo string) (*models.FormaPagamento, error)
	GetAll() ([]models.FormaPagamento, error)
	Update(formaPagamento *models.FormaPagamento) error
	Delete(id int64) (bool, error)
	Count() (int64, error)
}

// FormaPagamentoService aplica as regras de negócio de FormaPagamento
type FormaPagamentoService struct {
	repo   FormaPagamentoRepository
	logger *logrus.Logger
}

// NewFormaPagamentoService cria uma nova instância do serviço
func NewFormaPagamentoService(repo FormaPagamentoRepository, logger *logrus.Logger) *FormaPagamentoService {
	return &FormaPagamentoService{
		repo:   repo,
		logger: logger,
	}
}

// ListarTodos retorna todas as formas de pagamento
func (s *FormaPagamentoService) ListarTodos() ([]models.FormaPagamento, error) {
	return s.repo.GetAll()
}

// BuscarPorID busca uma forma de pagamento pelo id
func (s *FormaPagamentoService) BuscarPorID(id int64) (*models.FormaPagamento, error) {
	return s.repo.GetByID(id)
}

// BuscarPorCodigo busca uma forma de pagamento pelo código único
func (s *FormaPagamentoService) BuscarPorCodigo(codigo string) (*models.FormaPagamento, error) {
	return s.repo.GetByCodigo(codigo)
}

// Criar cadastra uma nova forma de pagamento. Gera o código único quando não
// fornecido e rejeita códigos já cadastrados.
func (s *FormaPagamentoService) Criar(req *models.FormaPagamentoRequest) (*models.FormaPagamento, error) {
	codigo := strings.TrimSpace(req.IDPagamento)
	if codigo == "" {
		count, err := s.repo.Count()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar código da forma de pagamento: %w", err)
		}
		codigo = ProximoCodigo(PrefixoFormaPagamento, count)
	}

	if err := s.verificarCodigoLivre(codigo); err != nil {
		return nil, err
	}

	agora := time.Now()
	formaPagamento := &models.FormaPagamento{
		IDPagamento:    codigo,
		FormaPagamento: req.FormaPagamento,
		IsActive:       true,
		CreatedAt:      agora,
		UpdatedAt:      agora,
	}

	if err := s.repo.Create(formaPagamento); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"forma_pagamento_id": formaPagamento.ID,
		"id_pagamento":       formaPagamento.IDPagamento,
	}).Info("Forma de pagamento criada")

	return formaPagamento, nil
}

// Atualizar substitui os campos de uma forma de pagamento existente,
// inclusive o flag is_active quando presente no payload. O código único só é
// sobrescrito quando o payload traz um valor não-vazio.
func (s *FormaPagamentoService) Atualizar(id int64, req *models.FormaPagamentoRequest) (*models.FormaPagamento, error) {
	formaPagamento, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if codigo := strings.TrimSpace(req.IDPagamento); codigo != "" {
		formaPagamento.IDPagamento = codigo
	}
	formaPagamento.FormaPagamento = req.FormaPagamento
	if req.IsActive != nil {
		formaPagamento.IsActive = *req.IsActive
	}
	formaPagamento.UpdatedAt = time.Now()

	if err := s.repo.Update(formaPagamento); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"forma_pagamento_id": formaPagamento.ID,
		"id_pagamento":       formaPagamento.IDPagamento,
	}).Info("Forma de pagamento atualizada")

	return formaPagamento, nil
}

// Deletar remove uma forma de pagamento definitivamente. Retorna false
// quando o id não existe.
func (s *FormaPagamentoService) Deletar(id int64) (bool, error) {
	deletado, err := s.repo.Delete(id)
	if err != nil {
		return false, err
	}

	if deletado {
		s.logger.WithField("forma_pagamento_id", id).Info("Forma de pagamento deletada")
	}

	return deletado, nil
}

// Contar retorna o total de formas de pagamento
func (s *FormaPagamentoService) Contar() (int64, error) {
	return s.repo.Count()
}

func (s *FormaPagamentoService) verificarCodigoLivre(codigo string) error {
	_, err := s.repo.GetByCodigo(codigo)
	if err == nil {
		return fmt.Errorf("forma de pagamento %s: %w", codigo, ErrCodigoDuplicado)
	}
	if !errors.Is(err, ErrNaoEncontrado) {
		return fmt.Errorf("erro ao verificar código da forma de pagamento: %w", err)
	}
	return nil
}
