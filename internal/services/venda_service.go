package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/s3t20-labs/vendas-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// VendaRepository é o contrato de datastore consumido pelo serviço de vendas
type VendaRepository interface {
	Create(venda *models.Venda) error
	GetByID(id int64) (*models.Venda, error)
	GetByCodigo(codigo string) (*models.Venda, error)
	GetAll() ([]models.Venda, error)
	GetByData(data models.Data) ([]models.Venda, error)
	GetByPeriodo(dataInicio, dataFim models.Data) ([]models.Venda, error)
	GetByClienteID(clienteID int64) ([]models.Venda, error)
	GetByProdutoID(produtoID int64) ([]models.Venda, error)
	GetByFormaPagamentoID(formaPagamentoID int64) ([]models.Venda, error)
	GetByClienteCidade(cidade string) ([]models.Venda, error)
	GetByProdutoCategoria(categoria string) ([]models.Venda, error)
	Update(venda *models.Venda) error
	Delete(id int64) (bool, error)
	Count() (int64, error)
}

// ResumoCache é o contrato de cache consumido pelo serviço de vendas,
// implementado pelo wrapper de Redis
type ResumoCache interface {
	Get(key string) (string, error)
	SetWithTTL(key string, value interface{}, ttl time.Duration) error
	Delete(keys ...string) error
}

const (
	chaveResumoVendas = "vendas:resumo"
	resumoTTL         = 30 * time.Second
)

// VendaService aplica as regras de negócio de Venda: geração de código,
// derivação da receita total e validação das referências a produto, cliente
// e forma de pagamento no momento da criação.
type VendaService struct {
	repo               VendaRepository
	produtoRepo        ProdutoRepository
	clienteRepo        ClienteRepository
	formaPagamentoRepo FormaPagamentoRepository
	cache              ResumoCache
	logger             *logrus.Logger
}

// NewVendaService cria uma nova instância do serviço. O cache é opcional:
// com nil o resumo é sempre recalculado.
func NewVendaService(
	repo VendaRepository,
	produtoRepo ProdutoRepository,
	clienteRepo ClienteRepository,
	formaPagamentoRepo FormaPagamentoRepository,
	cache ResumoCache,
	logger *logrus.Logger,
) *VendaService {
	return &VendaService{
		repo:               repo,
		produtoRepo:        produtoRepo,
		clienteRepo:        clienteRepo,
		formaPagamentoRepo: formaPagamentoRepo,
		cache:              cache,
		logger:             logger,
	}
}

// ListarTodos retorna todas as vendas
func (s *VendaService) ListarTodos() ([]models.Venda, error) {
	return s.repo.GetAll()
}

// BuscarPorID busca uma venda pelo id
func (s *VendaService) BuscarPorID(id int64) (*models.Venda, error) {
	return s.repo.GetByID(id)
}

// BuscarPorCodigo busca uma venda pelo código único
func (s *VendaService) BuscarPorCodigo(codigo string) (*models.Venda, error) {
	return s.repo.GetByCodigo(codigo)
}

// BuscarPorData retorna as vendas de uma data
func (s *VendaService) BuscarPorData(data models.Data) ([]models.Venda, error) {
	return s.repo.GetByData(data)
}

// BuscarPorPeriodo retorna as vendas de um período, inclusivo nas duas pontas
func (s *VendaService) BuscarPorPeriodo(dataInicio, dataFim models.Data) ([]models.Venda, error) {
	return s.repo.GetByPeriodo(dataInicio, dataFim)
}

// BuscarPorCliente retorna as vendas de um cliente
func (s *VendaService) BuscarPorCliente(clienteID int64) ([]models.Venda, error) {
	return s.repo.GetByClienteID(clienteID)
}

// BuscarPorProduto retorna as vendas de um produto
func (s *VendaService) BuscarPorProduto(produtoID int64) ([]models.Venda, error) {
	return s.repo.GetByProdutoID(produtoID)
}

// BuscarPorFormaPagamento retorna as vendas de uma forma de pagamento
func (s *VendaService) BuscarPorFormaPagamento(formaPagamentoID int64) ([]models.Venda, error) {
	return s.repo.GetByFormaPagamentoID(formaPagamentoID)
}

// BuscarPorCidadeCliente retorna as vendas de clientes de uma cidade
func (s *VendaService) BuscarPorCidadeCliente(cidade string) ([]models.Venda, error) {
	return s.repo.GetByClienteCidade(cidade)
}

// BuscarPorCategoriaProduto retorna as vendas de produtos de uma categoria
func (s *VendaService) BuscarPorCategoriaProduto(categoria string) ([]models.Venda, error) {
	return s.repo.GetByProdutoCategoria(categoria)
}

// Criar registra uma nova venda. Gera o código único quando não fornecido,
// calcula a receita total quando ausente e resolve as três referências; se
// qualquer uma não existir, a operação falha inteira e nada é persistido.
func (s *VendaService) Criar(req *models.VendaRequest) (*models.Venda, error) {
	codigo := strings.TrimSpace(req.IDVenda)
	if codigo == "" {
		count, err := s.repo.Count()
		if err != nil {
			return nil, fmt.Errorf("erro ao gerar código da venda: %w", err)
		}
		codigo = ProximoCodigo(PrefixoVenda, count)
	}

	if err := s.verificarCodigoLivre(codigo); err != nil {
		return nil, err
	}

	receitaTotal := s.receitaTotal(req)

	produto, err := s.produtoRepo.GetByID(req.ProdutoID)
	if err != nil {
		return nil, s.erroReferencia("produto", req.ProdutoID, err)
	}

	cliente, err := s.clienteRepo.GetByID(req.ClienteID)
	if err != nil {
		return nil, s.erroReferencia("cliente", req.ClienteID, err)
	}

	formaPagamento, err := s.formaPagamentoRepo.GetByID(req.FormaPagamentoID)
	if err != nil {
		return nil, s.erroReferencia("forma de pagamento", req.FormaPagamentoID, err)
	}

	agora := time.Now()
	venda := &models.Venda{
		IDVenda:        codigo,
		Data:           req.Data,
		Produto:        produto,
		Quantidade:     req.Quantidade,
		PrecoUnitario:  req.PrecoUnitario,
		ReceitaTotal:   receitaTotal,
		Cliente:        cliente,
		FormaPagamento: formaPagamento,
		IsActive:       true,
		CreatedAt:      agora,
		UpdatedAt:      agora,
	}

	if err := s.repo.Create(venda); err != nil {
		return nil, err
	}

	s.invalidarResumo()

	s.logger.WithFields(logrus.Fields{
		"venda_id":      venda.ID,
		"id_venda":      venda.IDVenda,
		"receita_total": venda.ReceitaTotal.String(),
	}).Info("Venda criada")

	return venda, nil
}

// Atualizar substitui os campos escalares de uma venda existente (data,
// quantidade, preço unitário e receita). As referências a produto, cliente e
// forma de pagamento não são re-resolvidas. A receita ausente no payload é
// recalculada; quando fornecida, é aceita como veio.
func (s *VendaService) Atualizar(id int64, req *models.VendaRequest) (*models.Venda, error) {
	venda, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if codigo := strings.TrimSpace(req.IDVenda); codigo != "" {
		venda.IDVenda = codigo
	}
	venda.Data = req.Data
	venda.Quantidade = req.Quantidade
	venda.PrecoUnitario = req.PrecoUnitario
	venda.ReceitaTotal = s.receitaTotal(req)
	venda.UpdatedAt = time.Now()

	if err := s.repo.Update(venda); err != nil {
		return nil, err
	}

	s.invalidarResumo()

	s.logger.WithFields(logrus.Fields{
		"venda_id": venda.ID,
		"id_venda": venda.IDVenda,
	}).Info("Venda atualizada")

	return venda, nil
}

// Deletar remove uma venda definitivamente. Retorna false quando o id não
// existe.
func (s *VendaService) Deletar(id int64) (bool, error) {
	deletado, err := s.repo.Delete(id)
	if err != nil {
		return false, err
	}

	if deletado {
		s.invalidarResumo()
		s.logger.WithField("venda_id", id).Info("Venda deletada")
	}

	return deletado, nil
}

// Contar retorna o total de vendas
func (s *VendaService) Contar() (int64, error) {
	return s.repo.Count()
}

// ObterResumo retorna a contagem e a receita acumulada de todas as vendas.
// O resultado fica em cache por um curto período; falha no cache não impede
// a operação.
func (s *VendaService) ObterResumo() (*models.ResumoVendas, error) {
	if resumo := s.resumoDoCache(); resumo != nil {
		return resumo, nil
	}

	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}

	vendas, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	resumo := &models.ResumoVendas{
		TotalVendas:  total,
		ReceitaTotal: somarReceita(vendas),
	}

	s.guardarResumo(resumo)
	return resumo, nil
}

// ObterResumoPorPeriodo retorna a contagem e a receita acumulada das vendas
// de um período
func (s *VendaService) ObterResumoPorPeriodo(dataInicio, dataFim models.Data) (*models.ResumoVendas, error) {
	vendas, err := s.repo.GetByPeriodo(dataInicio, dataFim)
	if err != nil {
		return nil, err
	}

	return &models.ResumoVendas{
		TotalVendas:  int64(len(vendas)),
		ReceitaTotal: somarReceita(vendas),
	}, nil
}

// receitaTotal aplica a regra de derivação da receita: ausente no payload,
// é calculada como preço unitário × quantidade; fornecida, é aceita como veio.
func (s *VendaService) receitaTotal(req *models.VendaRequest) decimal.Decimal {
	if req.ReceitaTotal != nil {
		return *req.ReceitaTotal
	}
	return req.PrecoUnitario.Mul(decimal.NewFromInt(int64(req.Quantidade)))
}

// somarReceita acumula a receita em decimal e só converte para float na borda
func somarReceita(vendas []models.Venda) float64 {
	soma := decimal.Zero
	for _, venda := range vendas {
		soma = soma.Add(venda.ReceitaTotal)
	}
	return soma.InexactFloat64()
}

func (s *VendaService) verificarCodigoLivre(codigo string) error {
	_, err := s.repo.GetByCodigo(codigo)
	if err == nil {
		return fmt.Errorf("venda %s: %w", codigo, ErrCodigoDuplicado)
	}
	if !errors.Is(err, ErrNaoEncontrado) {
		return fmt.Errorf("erro ao verificar código da venda: %w", err)
	}
	return nil
}

func (s *VendaService) erroReferencia(entidade string, id int64, err error) error {
	if errors.Is(err, ErrNaoEncontrado) {
		return fmt.Errorf("%s %d: %w", entidade, id, ErrReferenciaInvalida)
	}
	return fmt.Errorf("erro ao resolver %s %d: %w", entidade, id, err)
}

func (s *VendaService) resumoDoCache() *models.ResumoVendas {
	if s.cache == nil {
		return nil
	}

	valor, err := s.cache.Get(chaveResumoVendas)
	if err != nil {
		return nil
	}

	var resumo models.ResumoVendas
	if err := json.Unmarshal([]byte(valor), &resumo); err != nil {
		s.logger.WithError(err).Warn("Resumo em cache inválido, descartando")
		return nil
	}

	return &resumo
}

func (s *VendaService) guardarResumo(resumo *models.ResumoVendas) {
	if s.cache == nil {
		return
	}

	valor, err := json.Marshal(resumo)
	if err != nil {
		return
	}

	if err := s.cache.SetWithTTL(chaveResumoVendas, valor, resumoTTL); err != nil {
		s.logger.WithError(err).Warn("Erro ao gravar resumo no cache")
	}
}

func (s *VendaService) invalidarResumo() {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(chaveResumoVendas); err != nil {
		s.logger.WithError(err).Warn("Erro ao invalidar resumo no cache")
	}
}
