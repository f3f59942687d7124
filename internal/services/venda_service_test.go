package services

import (
	"testing"
	"time"

	"github.com/s3t20-labs/vendas-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func novaVendaService(t *testing.T) (*VendaService, *vendaRepositoryMock, *produtoRepositoryMock, *clienteRepositoryMock, *formaPagamentoRepositoryMock) {
	t.Helper()
	vendaRepo := new(vendaRepositoryMock)
	produtoRepo := new(produtoRepositoryMock)
	clienteRepo := new(clienteRepositoryMock)
	formaPagamentoRepo := new(formaPagamentoRepositoryMock)
	service := NewVendaService(vendaRepo, produtoRepo, clienteRepo, formaPagamentoRepo, nil, loggerDeTeste())
	return service, vendaRepo, produtoRepo, clienteRepo, formaPagamentoRepo
}

func reqVendaValida() *models.VendaRequest {
	return &models.VendaRequest{
		Data:             models.NovaData(2026, time.March, 15),
		ProdutoID:        1,
		ClienteID:        2,
		FormaPagamentoID: 3,
		Quantidade:       2,
		PrecoUnitario:    decimal.RequireFromString("25.90"),
	}
}

func prepararReferencias(produtoRepo *produtoRepositoryMock, clienteRepo *clienteRepositoryMock, formaPagamentoRepo *formaPagamentoRepositoryMock) {
	produtoRepo.On("GetByID", int64(1)).Return(&models.Produto{ID: 1, IDProduto: "PROD001"}, nil)
	clienteRepo.On("GetByID", int64(2)).Return(&models.Cliente{ID: 2, IDCliente: "CLI001"}, nil)
	formaPagamentoRepo.On("GetByID", int64(3)).Return(&models.FormaPagamento{ID: 3, IDPagamento: "PAG001"}, nil)
}

func TestVendaServiceCriarCalculaReceita(t *testing.T) {
	service, vendaRepo, produtoRepo, clienteRepo, formaPagamentoRepo := novaVendaService(t)

	vendaRepo.On("Count").Return(int64(0), nil)
	vendaRepo.On("GetByCodigo", "VEN001").Return(nil, ErrNaoEncontrado)
	vendaRepo.On("Create", mock.AnythingOfType("*models.Venda")).Return(nil)
	prepararReferencias(produtoRepo, clienteRepo, formaPagamentoRepo)

	venda, err := service.Criar(reqVendaValida())

	assert.NoError(t, err)
	assert.Equal(t, "VEN001", venda.IDVenda)
	assert.True(t, venda.ReceitaTotal.Equal(decimal.RequireFromString("51.80")),
		"receita esperada 51.80, obtida %s", venda.ReceitaTotal)
	assert.Equal(t, "PROD001", venda.Produto.IDProduto)
	assert.Equal(t, "CLI001", venda.Cliente.IDCliente)
	assert.Equal(t, "PAG001", venda.FormaPagamento.IDPagamento)
	assert.Equal(t, venda.CreatedAt, venda.UpdatedAt)
	vendaRepo.AssertExpectations(t)
}

func TestVendaServiceCriarPreservaReceitaFornecida(t *testing.T) {
	service, vendaRepo, produtoRepo, clienteRepo, formaPagamentoRepo := novaVendaService(t)

	vendaRepo.On("Count").Return(int64(0), nil)
	vendaRepo.On("GetByCodigo", "VEN001").Return(nil, ErrNaoEncontrado)
	vendaRepo.On("Create", mock.AnythingOfType("*models.Venda")).Return(nil)
	prepararReferencias(produtoRepo, clienteRepo, formaPagamentoRepo)

	req := reqVendaValida()
	receita := decimal.RequireFromString("45.00")
	req.ReceitaTotal = &receita

	venda, err := service.Criar(req)

	assert.NoError(t, err)
	assert.True(t, venda.ReceitaTotal.Equal(receita))
}

func TestVendaServiceCriarReferenciaInexistente(t *testing.T) {
	service, vendaRepo, produtoRepo, _, _ := novaVendaService(t)

	vendaRepo.On("Count").Return(int64(0), nil)
	vendaRepo.On("GetByCodigo", "VEN001").Return(nil, ErrNaoEncontrado)
	produtoRepo.On("GetByID", int64(1)).Return(nil, ErrNaoEncontrado)

	venda, err := service.Criar(reqVendaValida())

	assert.Nil(t, venda)
	assert.ErrorIs(t, err, ErrReferenciaInvalida)
	vendaRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestVendaServiceCriarRejeitaCodigoDuplicado(t *testing.T) {
	service, vendaRepo, _, _, _ := novaVendaService(t)

	vendaRepo.On("GetByCodigo", "VEN010").Return(&models.Venda{ID: 10, IDVenda: "VEN010"}, nil)

	req := reqVendaValida()
	req.IDVenda = "VEN010"

	venda, err := service.Criar(req)

	assert.Nil(t, venda)
	assert.ErrorIs(t, err, ErrCodigoDuplicado)
	vendaRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestVendaServiceAtualizarRecalculaReceitaAusente(t *testing.T) {
	service, vendaRepo, produtoRepo, clienteRepo, formaPagamentoRepo := novaVendaService(t)

	criadoEm := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.UTC)
	vendaRepo.On("GetByID", int64(5)).Return(&models.Venda{
		ID:            5,
		IDVenda:       "VEN005",
		Data:          models.NovaData(2026, time.February, 1),
		Quantidade:    1,
		PrecoUnitario: decimal.RequireFromString("10.00"),
		ReceitaTotal:  decimal.RequireFromString("10.00"),
		CreatedAt:     criadoEm,
		UpdatedAt:     criadoEm,
	}, nil)
	vendaRepo.On("Update", mock.AnythingOfType("*models.Venda")).Return(nil)

	req := reqVendaValida()
	req.Quantidade = 3
	req.PrecoUnitario = decimal.RequireFromString("12.50")

	venda, err := service.Atualizar(5, req)

	assert.NoError(t, err)
	assert.True(t, venda.ReceitaTotal.Equal(decimal.RequireFromString("37.50")))
	assert.Equal(t, criadoEm, venda.CreatedAt)
	assert.True(t, venda.UpdatedAt.After(criadoEm))
	// referências não são re-resolvidas no update
	produtoRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	clienteRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	formaPagamentoRepo.AssertNotCalled(t, "GetByID", mock.Anything)
}

func TestVendaServiceAtualizarAceitaReceitaFornecida(t *testing.T) {
	service, vendaRepo, _, _, _ := novaVendaService(t)

	vendaRepo.On("GetByID", int64(5)).Return(&models.Venda{
		ID:            5,
		IDVenda:       "VEN005",
		Quantidade:    1,
		PrecoUnitario: decimal.RequireFromString("10.00"),
		ReceitaTotal:  decimal.RequireFromString("10.00"),
	}, nil)
	vendaRepo.On("Update", mock.AnythingOfType("*models.Venda")).Return(nil)

	req := reqVendaValida()
	receita := decimal.RequireFromString("99.99")
	req.ReceitaTotal = &receita

	venda, err := service.Atualizar(5, req)

	assert.NoError(t, err)
	assert.True(t, venda.ReceitaTotal.Equal(receita))
}

func TestVendaServiceAtualizarNaoEncontrada(t *testing.T) {
	service, vendaRepo, _, _, _ := novaVendaService(t)

	vendaRepo.On("GetByID", int64(77)).Return(nil, ErrNaoEncontrado)

	venda, err := service.Atualizar(77, reqVendaValida())

	assert.Nil(t, venda)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
	vendaRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestVendaServiceObterResumo(t *testing.T) {
	service, vendaRepo, _, _, _ := novaVendaService(t)

	vendaRepo.On("Count").Return(int64(2), nil)
	vendaRepo.On("GetAll").Return([]models.Venda{
		{ID: 1, ReceitaTotal: decimal.RequireFromString("160.00")},
		{ID: 2, ReceitaTotal: decimal.RequireFromString("100.00")},
	}, nil)

	resumo, err := service.ObterResumo()

	assert.NoError(t, err)
	assert.Equal(t, int64(2), resumo.TotalVendas)
	assert.Equal(t, 260.0, resumo.ReceitaTotal)
}

func TestVendaServiceObterResumoVazio(t *testing.T) {
	service, vendaRepo, _, _, _ := novaVendaService(t)

	vendaRepo.On("Count").Return(int64(0), nil)
	vendaRepo.On("GetAll").Return([]models.Venda{}, nil)

	resumo, err := service.ObterResumo()

	assert.NoError(t, err)
	assert.Equal(t, int64(0), resumo.TotalVendas)
	assert.Equal(t, 0.0, resumo.ReceitaTotal)
}

func TestVendaServiceObterResumoPorPeriodo(t *testing.T) {
	service, vendaRepo, _, _, _ := novaVendaService(t)

	inicio := models.NovaData(2026, time.March, 1)
	fim := models.NovaData(2026, time.March, 31)
	vendaRepo.On("GetByPeriodo", inicio, fim).Return([]models.Venda{
		{ID: 1, ReceitaTotal: decimal.RequireFromString("51.80")},
	}, nil)

	resumo, err := service.ObterResumoPorPeriodo(inicio, fim)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), resumo.TotalVendas)
	assert.Equal(t, 51.8, resumo.ReceitaTotal)
}

func TestVendaServiceResumoUsaCache(t *testing.T) {
	vendaRepo := new(vendaRepositoryMock)
	cache := new(resumoCacheMock)
	service := NewVendaService(vendaRepo, nil, nil, nil, cache, loggerDeTeste())

	cache.On("Get", "vendas:resumo").Return(`{"total_vendas":5,"receita_total":320.5}`, nil)

	resumo, err := service.ObterResumo()

	assert.NoError(t, err)
	assert.Equal(t, int64(5), resumo.TotalVendas)
	assert.Equal(t, 320.5, resumo.ReceitaTotal)
	vendaRepo.AssertNotCalled(t, "Count")
	vendaRepo.AssertNotCalled(t, "GetAll")
}

func TestVendaServiceDeletarInvalidaCache(t *testing.T) {
	vendaRepo := new(vendaRepositoryMock)
	cache := new(resumoCacheMock)
	service := NewVendaService(vendaRepo, nil, nil, nil, cache, loggerDeTeste())

	vendaRepo.On("Delete", int64(9)).Return(true, nil)
	cache.On("Delete", []string{"vendas:resumo"}).Return(nil)

	deletado, err := service.Deletar(9)

	assert.NoError(t, err)
	assert.True(t, deletado)
	cache.AssertExpectations(t)
}
