package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/s3t20-labs/vendas-service/internal/models"
	"github.com/sirupsen/logrus"
)

// ClienteRepository é o contrato de datastore consumido pelo serviço de
// clientes
type ClienteRepository interface {
	Create(cliente *models.Cliente) error
	GetByID(id int64) (*models.Cliente, error)
	GetByCodigo(codigo string) (*models.Cliente, error)
	GetAll() ([]models.Cliente, error)
	GetByCidade(cidade string) ([]models.Cliente, error)
	GetByBairro(bairro string) ([]models.Cliente, error)
	GetByTipo(tipo string) ([]models.Cliente, error)
	SearchByNome(nome string) ([]models.Cliente, error)
	Update(cliente *models.Cliente) error
	Delete(id int64) (bool, error)
	Count() (int64, error)
	CountByTipo(tipo string) (int64, error)
	DistinctCidades() ([]string, error)
	DistinctBairros() ([]string, error)
}

// ClienteService aplica as regras de negócio de Cliente
type ClienteService struct {
	repo   ClienteRepository
	logger *logrus.Logger
}

// NewClienteService cria uma nova instância do serviço
func NewClienteService(repo ClienteRepository, logger *logrus.Logger) *ClienteService {
	return &ClienteService{
		repo:   repo,
		logger: logger,
	}
}

// ListarTodos retorna todos os clientes
func (s *ClienteService) ListarTodos() ([]models.Cliente, error) {
	return s.repo.GetAll()
}

// BuscarPorID busca um cliente pelo id
func (s *ClienteService) BuscarPorID(id int64) (*models.Cliente, error) {
	return s.repo.GetByID(id)
}

// BuscarPorCodigo busca um cliente pelo código único
func (s *ClienteService) BuscarPorCodigo(codigo string) (*models.Cliente, error) {
	return s.repo.GetByCodigo(codigo)
}

// BuscarPorCidade retorna os clientes de uma cidade
func (s *ClienteService) BuscarPorCidade(cidade string) ([]models.Cliente, error) {
	return s.repo.GetByCidade(cidade)
}

// BuscarPorBairro retorna os clientes de um bairro
func (s *ClienteService) BuscarPorBairro(bairro string) ([]models.Cliente, error) {
	return s.repo.GetByBairro(bairro)
}

// BuscarPorTipo retorna os clientes de um tipo
func (s *ClienteService) BuscarPorTipo(tipo string) ([]models.Cliente, error) {
	return s.repo.GetByTipo(tipo)
}

// BuscarPorNome busca clientes por trecho do nome, sem diferenciar
// maiúsculas de minúsculas
func (s *ClienteService) BuscarPorNome(nome string) ([]models.Cliente, error) {
	return s.repo.SearchByNome(nome)
}

// Criar cadastra um novo cliente. Gera o código único quando não fornecido e
// rejeita códigos já cadastrados; nada é persistido em caso de colisão.
func (s *ClienteService) Criar(req *models.ClienteRequest) (*models.Cliente, error) {
	codigo := strings.TrimSpace(req.IDCliente)
	if codigo == "" {
		count, err := s.repo.Count()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar código do cliente: %w", err)
		}
		codigo = ProximoCodigo(PrefixoCliente, count)
	}

	if err := s.verificarCodigoLivre(codigo); err != nil {
		return nil, err
	}

	agora := time.Now()
	cliente := &models.Cliente{
		IDCliente:   codigo,
		NomeCliente: req.NomeCliente,
		Bairro:      req.Bairro,
		Cidade:      req.Cidade,
		TipoCliente: req.TipoCliente,
		IsActive:    true,
		CreatedAt:   agora,
		UpdatedAt:   agora,
	}

	if err := s.repo.Create(cliente); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"cliente_id": cliente.ID,
		"id_cliente": cliente.IDCliente,
	}).Info("Cliente criado")

	return cliente, nil
}

// Atualizar substitui os campos de domínio de um cliente existente. O código
// único só é sobrescrito quando o payload traz um valor não-vazio.
func (s *ClienteService) Atualizar(id int64, req *models.ClienteRequest) (*models.Cliente, error) {
	cliente, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if codigo := strings.TrimSpace(req.IDCliente); codigo != "" {
		cliente.IDCliente = codigo
	}
	cliente.NomeCliente = req.NomeCliente
	cliente.Bairro = req.Bairro
	cliente.Cidade = req.Cidade
	cliente.TipoCliente = req.TipoCliente
	cliente.UpdatedAt = time.Now()

	if err := s.repo.Update(cliente); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"cliente_id": cliente.ID,
		"id_cliente": cliente.IDCliente,
	}).Info("Cliente atualizado")

	return cliente, nil
}

// Deletar remove um cliente definitivamente. Retorna false quando o id não
// existe; não há proteção contra vendas que ainda referenciam o cliente.
func (s *ClienteService) Deletar(id int64) (bool, error) {
	deletado, err := s.repo.Delete(id)
	if err != nil {
		return false, err
	}

	if deletado {
		s.logger.WithField("cliente_id", id).Info("Cliente deletado")
	}

	return deletado, nil
}

// Contar retorna o total de clientes
func (s *ClienteService) Contar() (int64, error) {
	return s.repo.Count()
}

// ContarPorTipo retorna o total de clientes de um tipo
func (s *ClienteService) ContarPorTipo(tipo string) (int64, error) {
	return s.repo.CountByTipo(tipo)
}

// ListarCidades retorna as cidades distintas dos clientes, ordenadas
func (s *ClienteService) ListarCidades() ([]string, error) {
	return s.repo.DistinctCidades()
}

// ListarBairros retorna os bairros distintos dos clientes, ordenados
func (s *ClienteService) ListarBairros() ([]string, error) {
	return s.repo.DistinctBairros()
}

func (s *ClienteService) verificarCodigoLivre(codigo string) error {
	_, err := s.repo.GetByCodigo(codigo)
	if err == nil {
		return fmt.Errorf("cliente %s: %w", codigo, ErrCodigoDuplicado)
	}
	if !errors.Is(err, ErrNaoEncontrado) {
		return fmt.Errorf("erro ao verificar código do cliente: %w", err)
	}
	return nil
}
