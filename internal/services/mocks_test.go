package services

import (
	"io"
	"time"

	"github.com/s3t20-labs/vendas-service/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func loggerDeTeste() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type clienteRepositoryMock struct {
	mock.Mock
}

func (m *clienteRepositoryMock) Create(cliente *models.Cliente) error {
	return m.Called(cliente).Error(0)
}

func (m *clienteRepositoryMock) GetByID(id int64) (*models.Cliente, error) {
	args := m.Called(id)
	if cliente, ok := args.Get(0).(*models.Cliente); ok {
		return cliente, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *clienteRepositoryMock) GetByCodigo(codigo string) (*models.Cliente, error) {
	args := m.Called(codigo)
	if cliente, ok := args.Get(0).(*models.Cliente); ok {
		return cliente, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *clienteRepositoryMock) GetAll() ([]models.Cliente, error) {
	args := m.Called()
	if clientes, ok := args.Get(0).([]models.Cliente); ok {
		return clientes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *clienteRepositoryMock) GetByCidade(cidade string) ([]models.Cliente, error) {
	args := m.Called(cidade)
	if clientes, ok := args.Get(0).([]models.Cliente); ok {
		return clientes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *clienteRepositoryMock) GetByBairro(bairro string) ([]models.Cliente, error) {
	args := m.Called(bairro)
	if clientes, ok := args.Get(0).([]models.Cliente); ok {
		return clientes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *clienteRepositoryMock) GetByTipo(tipo string) ([]models.Cliente, error) {
	args := m.Called(tipo)
	if clientes, ok := args.Get(0).([]models.Cliente); ok {
		return clientes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *clienteRepositoryMock) SearchByNome(nome string) ([]models.Cliente, error) {
	args := m.Called(nome)
	if clientes, ok := args.Get(0).([]models.Cliente); ok {
		return clientes, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *clienteRepositoryMock) Update(cliente *models.Cliente) error {
	return m.Called(cliente).Error(0)
}

func (m *clienteRepositoryMock) Delete(id int64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *clienteRepositoryMock) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *clienteRepositoryMock) CountByTipo(tipo string) (int64, error) {
	args := m.Called(tipo)
	return args.Get(0).(int64), args.Error(1)
}

func (m *clienteRepositoryMock) DistinctCidades() ([]string, error) {
	args := m.Called()
	if valores, ok := args.Get(0).([]string); ok {
		return valores, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *clienteRepositoryMock) DistinctBairros() ([]string, error) {
	args := m.Called()
	if valores, ok := args.Get(0).([]string); ok {
		return valores, args.Error(1)
	}
	return nil, args.Error(1)
}

type produtoRepositoryMock struct {
	mock.Mock
}

func (m *produtoRepositoryMock) Create(produto *models.Produto) error {
	return m.Called(produto).Error(0)
}

func (m *produtoRepositoryMock) GetByID(id int64) (*models.Produto, error) {
	args := m.Called(id)
	if produto, ok := args.Get(0).(*models.Produto); ok {
		return produto, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *produtoRepositoryMock) GetByCodigo(codigo string) (*models.Produto, error) {
	args := m.Called(codigo)
	if produto, ok := args.Get(0).(*models.Produto); ok {
		return produto, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *produtoRepositoryMock) GetAll() ([]models.Produto, error) {
	args := m.Called()
	if produtos, ok := args.Get(0).([]models.Produto); ok {
		return produtos, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *produtoRepositoryMock) GetByCategoria(categoria string) ([]models.Produto, error) {
	args := m.Called(categoria)
	if produtos, ok := args.Get(0).([]models.Produto); ok {
		return produtos, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *produtoRepositoryMock) Update(produto *models.Produto) error {
	return m.Called(produto).Error(0)
}

func (m *produtoRepositoryMock) Delete(id int64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *produtoRepositoryMock) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *produtoRepositoryMock) DistinctCategorias() ([]string, error) {
	args := m.Called()
	if valores, ok := args.Get(0).([]string); ok {
		return valores, args.Error(1)
	}
	return nil, args.Error(1)
}

type formaPagamentoRepositoryMock struct {
	mock.Mock
}

func (m *formaPagamentoRepositoryMock) Create(formaPagamento *models.FormaPagamento) error {
	return m.Called(formaPagamento).Error(0)
}

func (m *formaPagamentoRepositoryMock) GetByID(id int64) (*models.FormaPagamento, error) {
	args := m.Called(id)
	if forma, ok := args.Get(0).(*models.FormaPagamento); ok {
		return forma, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *formaPagamentoRepositoryMock) GetByCodigo(codigo string) (*models.FormaPagamento, error) {
	args := m.Called(codigo)
	if forma, ok := args.Get(0).(*models.FormaPagamento); ok {
		return forma, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *formaPagamentoRepositoryMock) GetAll() ([]models.FormaPagamento, error) {
	args := m.Called()
	if formas, ok := args.Get(0).([]models.FormaPagamento); ok {
		return formas, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *formaPagamentoRepositoryMock) Update(formaPagamento *models.FormaPagamento) error {
	return m.Called(formaPagamento).Error(0)
}

func (m *formaPagamentoRepositoryMock) Delete(id int64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *formaPagamentoRepositoryMock) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type vendaRepositoryMock struct {
	mock.Mock
}

func (m *vendaRepositoryMock) Create(venda *models.Venda) error {
	return m.Called(venda).Error(0)
}

func (m *vendaRepositoryMock) GetByID(id int64) (*models.Venda, error) {
	args := m.Called(id)
	if venda, ok := args.Get(0).(*models.Venda); ok {
		return venda, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *vendaRepositoryMock) GetByCodigo(codigo string) (*models.Venda, error) {
	args := m.Called(codigo)
	if venda, ok := args.Get(0).(*models.Venda); ok {
		return venda, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *vendaRepositoryMock) GetAll() ([]models.Venda, error) {
	args := m.Called()
	if vendas, ok := args.Get(0).([]models.Venda); ok {
		return vendas, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *vendaRepositoryMock) GetByData(data models.Data) ([]models.Venda, error) {
	args := m.Called(data)
	if vendas, ok := args.Get(0).([]models.Venda); ok {
		return vendas, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *vendaRepositoryMock) GetByPeriodo(dataInicio, dataFim models.Data) ([]models.Venda, error) {
	args := m.Called(dataInicio, dataFim)
	if vendas, ok := args.Get(0).([]models.Venda); ok {
		return vendas, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *vendaRepositoryMock) GetByClienteID(clienteID int64) ([]models.Venda, error) {
	args := m.Called(clienteID)
	if vendas, ok := args.Get(0).([]models.Venda); ok {
		return vendas, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *vendaRepositoryMock) GetByProdutoID(produtoID int64) ([]models.Venda, error) {
	args := m.Called(produtoID)
	if vendas, ok := args.Get(0).([]models.Venda); ok {
		return vendas, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *vendaRepositoryMock) GetByFormaPagamentoID(formaPagamentoID int64) ([]models.Venda, error) {
	args := m.Called(formaPagamentoID)
	if vendas, ok := args.Get(0).([]models.Venda); ok {
		return vendas, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *vendaRepositoryMock) GetByClienteCidade(cidade string) ([]models.Venda, error) {
	args := m.Called(cidade)
	if vendas, ok := args.Get(0).([]models.Venda); ok {
		return vendas, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *vendaRepositoryMock) GetByProdutoCategoria(categoria string) ([]models.Venda, error) {
	args := m.Called(categoria)
	if vendas, ok := args.Get(0).([]models.Venda); ok {
		return vendas, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *vendaRepositoryMock) Update(venda *models.Venda) error {
	return m.Called(venda).Error(0)
}

func (m *vendaRepositoryMock) Delete(id int64) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *vendaRepositoryMock) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type resumoCacheMock struct {
	mock.Mock
}

func (m *resumoCacheMock) Get(key string) (string, error) {
	args := m.Called(key)
	return args.String(0), args.Error(1)
}

func (m *resumoCacheMock) SetWithTTL(key string, value interface{}, ttl time.Duration) error {
	return m.Called(key, value, ttl).Error(0)
}

func (m *resumoCacheMock) Delete(keys ...string) error {
	return m.Called(keys).Error(0)
}
