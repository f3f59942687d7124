package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/s3t20-labs/vendas-service/internal/models"
	"github.com/sirupsen/logrus"
)

// ProdutoRepository é o contrato de datastore consumido pelo serviço de
// produtos
type ProdutoRepository interface {
	Create(produto *models.Produto) error
	GetByID(id int64) (*models.Produto, error)
	GetByCodigo(codigo string) (*models.Produto, error)
	GetAll() ([]models.Produto, error)
	GetByCategoria(categoria string) ([]models.Produto, error)
	Update(produto *models.Produto) error
	Delete(id int64) (bool, error)
	Count() (int64, error)
	DistinctCategorias() ([]string, error)
}

// ProdutoService aplica as regras de negócio de Produto
type ProdutoService struct {
	repo   ProdutoRepository
	logger *logrus.Logger
}

// NewProdutoService cria uma nova instância do serviço
func NewProdutoService(repo ProdutoRepository, logger *logrus.Logger) *ProdutoService {
	return &ProdutoService{
		repo:   repo,
		logger: logger,
	}
}

// ListarTodos retorna todos os produtos
func (s *ProdutoService) ListarTodos() ([]models.Produto, error) {
	return s.repo.GetAll()
}

// BuscarPorID busca um produto pelo id
func (s *ProdutoService) BuscarPorID(id int64) (*models.Produto, error) {
	return s.repo.GetByID(id)
}

// BuscarPorCodigo busca um produto pelo código único
func (s *ProdutoService) BuscarPorCodigo(codigo string) (*models.Produto, error) {
	return s.repo.GetByCodigo(codigo)
}

// BuscarPorCategoria retorna os produtos de uma categoria
func (s *ProdutoService) BuscarPorCategoria(categoria string) ([]models.Produto, error) {
	return s.repo.GetByCategoria(categoria)
}

// Criar cadastra um novo produto. Gera o código único quando não fornecido e
// rejeita códigos já cadastrados.
func (s *ProdutoService) Criar(req *models.ProdutoRequest) (*models.Produto, error) {
	codigo := strings.TrimSpace(req.IDProduto)
	if codigo == "" {
		count, err := s.repo.Count()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar código do produto: %w", err)
		}
		codigo = ProximoCodigo(PrefixoProduto, count)
	}

	if err := s.verificarCodigoLivre(codigo); err != nil {
		return nil, err
	}

	agora := time.Now()
	produto := &models.Produto{
		IDProduto:     codigo,
		Produto:       req.Produto,
		Categoria:     req.Categoria,
		PedidoMinimo:  req.PedidoMinimo,
		CustoUnitario: req.CustoUnitario,
		PrecoSugerido: req.PrecoSugerido,
		CentoPreco:    req.CentoPreco,
		IsActive:      true,
		CreatedAt:     agora,
		UpdatedAt:     agora,
	}

	if err := s.repo.Create(produto); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"produto_id": produto.ID,
		"id_produto": produto.IDProduto,
	}).Info("Produto criado")

	return produto, nil
}

// Atualizar substitui os campos de domínio de um produto existente. O código
// único só é sobrescrito quando o payload traz um valor não-vazio.
func (s *ProdutoService) Atualizar(id int64, req *models.ProdutoRequest) (*models.Produto, error) {
	produto, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if codigo := strings.TrimSpace(req.IDProduto); codigo != "" {
		produto.IDProduto = codigo
	}
	produto.Produto = req.Produto
	produto.Categoria = req.Categoria
	produto.PedidoMinimo = req.PedidoMinimo
	produto.CustoUnitario = req.CustoUnitario
	produto.PrecoSugerido = req.PrecoSugerido
	produto.CentoPreco = req.CentoPreco
	produto.UpdatedAt = time.Now()

	if err := s.repo.Update(produto); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"produto_id": produto.ID,
		"id_produto": produto.IDProduto,
	}).Info("Produto atualizado")

	return produto, nil
}

// Deletar remove um produto definitivamente. Retorna false quando o id não
// existe; não há proteção contra vendas que ainda referenciam o produto.
func (s *ProdutoService) Deletar(id int64) (bool, error) {
	deletado, err := s.repo.Delete(id)
	if err != nil {
		return false, err
	}

	if deletado {
		s.logger.WithField("produto_id", id).Info("Produto deletado")
	}

	return deletado, nil
}

// Contar retorna o total de produtos
func (s *ProdutoService) Contar() (int64, error) {
	return s.repo.Count()
}

// ListarCategorias retorna as categorias distintas, ordenadas
func (s *ProdutoService) ListarCategorias() ([]string, error) {
	return s.repo.DistinctCategorias()
}

func (s *ProdutoService) verificarCodigoLivre(codigo string) error {
	_, err := s.repo.GetByCodigo(codigo)
	if err == nil {
		return fmt.Errorf("produto %s: %w", codigo, ErrCodigoDuplicado)
	}
	if !errors.Is(err, ErrNaoEncontrado) {
		return fmt.Errorf("erro ao verificar código do produto: %w", err)
	}
	return nil
}
