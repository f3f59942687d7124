package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/s3t20-labs/vendas-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// VendaRepository gerencia as operações de banco de dados para Venda.
// As consultas juntam produto, cliente e forma de pagamento para devolver a
// venda com as entidades relacionadas preenchidas; como as colunas de
// referência não têm FK, o join é LEFT e uma referência apagada vira nil.
type VendaRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewVendaRepository cria uma nova instância do repositório
func NewVendaRepository(db *DB, logger *logrus.Logger) *VendaRepository {
	return &VendaRepository{
		db:     db,
		logger: logger,
	}
}

const consultaVenda = `
	SELECT v.id, v.id_venda, v.data, v.quantidade, v.preco_unitario, v.receita_total,
	       v.is_active, v.created_at, v.updated_at,
	       p.id, p.id_produto, p.produto, p.categoria, p.pedido_minimo,
	       p.custo_unitario, p.preco_sugerido, p.cento_preco, p.is_active,
	       p.created_at, p.updated_at,
	       c.id, c.id_cliente, c.nome_cliente, c.bairro, c.cidade, c.tipo_cliente,
	       c.is_active, c.created_at, c.updated_at,
	       f.id, f.id_pagamento, f.forma_pagamento, f.is_active, f.created_at, f.updated_at
	FROM vendas v
	LEFT JOIN produtos p ON p.id = v.produto_id
	LEFT JOIN clientes c ON c.id = v.cliente_id
	LEFT JOIN formas_pagamento f ON f.id = v.forma_pagamento_id
`

// Create insere uma nova venda e preenche o id gerado
func (r *VendaRepository) Create(venda *models.Venda) error {
	query := `
		INSERT INTO vendas (
			id_venda, data, produto_id, quantidade, preco_unitario,
			receita_total, cliente_id, forma_pagamento_id, is_active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := r.db.QueryRowWithTimeout(query,
		venda.IDVenda, venda.Data, venda.Produto.ID, venda.Quantidade,
		venda.PrecoUnitario, venda.ReceitaTotal, venda.Cliente.ID,
		venda.FormaPagamento.ID, venda.IsActive, venda.CreatedAt, venda.UpdatedAt,
	).Scan(&venda.ID)

	if err != nil {
		if ehViolacaoUnicidade(err) {
			return fmt.Errorf("venda %s: %w", venda.IDVenda, ErrCodigoDuplicado)
		}
		return fmt.Errorf("erro ao criar venda: %w", err)
	}

	return nil
}

// GetByID busca uma venda pelo id
func (r *VendaRepository) GetByID(id int64) (*models.Venda, error) {
	return r.queryRow(consultaVenda+` WHERE v.id = $1`, id)
}

// GetByCodigo busca uma venda pelo código único
func (r *VendaRepository) GetByCodigo(codigo string) (*models.Venda, error) {
	return r.queryRow(consultaVenda+` WHERE v.id_venda = $1`, codigo)
}

// GetAll retorna todas as vendas na ordem de inserção
func (r *VendaRepository) GetAll() ([]models.Venda, error) {
	return r.queryList(consultaVenda + ` ORDER BY v.id`)
}

// GetByData retorna as vendas de uma data
func (r *VendaRepository) GetByData(data models.Data) ([]models.Venda, error) {
	return r.queryList(consultaVenda+` WHERE v.data = $1 ORDER BY v.id`, data)
}

// GetByPeriodo retorna as vendas de um período, inclusivo nas duas pontas
func (r *VendaRepository) GetByPeriodo(dataInicio, dataFim models.Data) ([]models.Venda, error) {
	return r.queryList(consultaVenda+` WHERE v.data BETWEEN $1 AND $2 ORDER BY v.id`, dataInicio, dataFim)
}

// GetByClienteID retorna as vendas de um cliente
func (r *VendaRepository) GetByClienteID(clienteID int64) ([]models.Venda, error) {
	return r.queryList(consultaVenda+` WHERE v.cliente_id = $1 ORDER BY v.id`, clienteID)
}

// GetByProdutoID retorna as vendas de um produto
func (r *VendaRepository) GetByProdutoID(produtoID int64) ([]models.Venda, error) {
	return r.queryList(consultaVenda+` WHERE v.produto_id = $1 ORDER BY v.id`, produtoID)
}

// GetByFormaPagamentoID retorna as vendas de uma forma de pagamento
func (r *VendaRepository) GetByFormaPagamentoID(formaPagamentoID int64) ([]models.Venda, error) {
	return r.queryList(consultaVenda+` WHERE v.forma_pagamento_id = $1 ORDER BY v.id`, formaPagamentoID)
}

// GetByClienteCidade retorna as vendas de clientes de uma cidade
func (r *VendaRepository) GetByClienteCidade(cidade string) ([]models.Venda, error) {
	return r.queryList(consultaVenda+` WHERE c.cidade = $1 ORDER BY v.id`, cidade)
}

// GetByProdutoCategoria retorna as vendas de produtos de uma categoria
func (r *VendaRepository) GetByProdutoCategoria(categoria string) ([]models.Venda, error) {
	return r.queryList(consultaVenda+` WHERE p.categoria = $1 ORDER BY v.id`, categoria)
}

// Update atualiza os campos escalares de uma venda existente. As referências
// a produto, cliente e forma de pagamento não são alteradas.
func (r *VendaRepository) Update(venda *models.Venda) error {
	query := `
		UPDATE vendas
		SET id_venda = $1, data = $2, quantidade = $3, preco_unitario = $4,
		    receita_total = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := r.db.ExecWithTimeout(query,
		venda.IDVenda, venda.Data, venda.Quantidade, venda.PrecoUnitario,
		venda.ReceitaTotal, venda.UpdatedAt, venda.ID,
	)
	if err != nil {
		if ehViolacaoUnicidade(err) {
			return fmt.Errorf("venda %s: %w", venda.IDVenda, ErrCodigoDuplicado)
		}
		return fmt.Errorf("erro ao atualizar venda: %w", err)
	}

	linhas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	if linhas == 0 {
		return fmt.Errorf("venda %d: %w", venda.ID, ErrNaoEncontrado)
	}

	return nil
}

// Delete remove uma venda definitivamente. Retorna false se o id não existe.
func (r *VendaRepository) Delete(id int64) (bool, error) {
	result, err := r.db.ExecWithTimeout(`DELETE FROM vendas WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("erro ao deletar venda: %w", err)
	}

	linhas, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return linhas > 0, nil
}

// Count retorna o total de vendas cadastradas
func (r *VendaRepository) Count() (int64, error) {
	var total int64
	if err := r.db.QueryRowWithTimeout(`SELECT COUNT(*) FROM vendas`).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar vendas: %w", err)
	}
	return total, nil
}

// vendaRow acumula as colunas anuláveis das entidades juntadas
type vendaRow struct {
	venda models.Venda

	produtoID          sql.NullInt64
	produtoCodigo      sql.NullString
	produtoNome        sql.NullString
	produtoCategoria   sql.NullString
	produtoPedidoMin   sql.NullInt64
	produtoCusto       decimal.NullDecimal
	produtoPrecoSug    decimal.NullDecimal
	produtoCentoPreco  decimal.NullDecimal
	produtoAtivo       sql.NullBool
	produtoCriadoEm    sql.NullTime
	produtoAtualizado  sql.NullTime

	clienteID         sql.NullInt64
	clienteCodigo     sql.NullString
	clienteNome       sql.NullString
	clienteBairro     sql.NullString
	clienteCidade     sql.NullString
	clienteTipo       sql.NullString
	clienteAtivo      sql.NullBool
	clienteCriadoEm   sql.NullTime
	clienteAtualizado sql.NullTime

	formaID         sql.NullInt64
	formaCodigo     sql.NullString
	formaDescricao  sql.NullString
	formaAtivo      sql.NullBool
	formaCriadoEm   sql.NullTime
	formaAtualizado sql.NullTime
}

func (linha *vendaRow) destinos() []interface{} {
	v := &linha.venda
	return []interface{}{
		&v.ID, &v.IDVenda, &v.Data, &v.Quantidade, &v.PrecoUnitario, &v.ReceitaTotal,
		&v.IsActive, &v.CreatedAt, &v.UpdatedAt,
		&linha.produtoID, &linha.produtoCodigo, &linha.produtoNome, &linha.produtoCategoria,
		&linha.produtoPedidoMin, &linha.produtoCusto, &linha.produtoPrecoSug,
		&linha.produtoCentoPreco, &linha.produtoAtivo, &linha.produtoCriadoEm,
		&linha.produtoAtualizado,
		&linha.clienteID, &linha.clienteCodigo, &linha.clienteNome, &linha.clienteBairro,
		&linha.clienteCidade, &linha.clienteTipo, &linha.clienteAtivo,
		&linha.clienteCriadoEm, &linha.clienteAtualizado,
		&linha.formaID, &linha.formaCodigo, &linha.formaDescricao, &linha.formaAtivo,
		&linha.formaCriadoEm, &linha.formaAtualizado,
	}
}

func (linha *vendaRow) paraVenda() *models.Venda {
	venda := linha.venda

	if linha.produtoID.Valid {
		venda.Produto = &models.Produto{
			ID:            linha.produtoID.Int64,
			IDProduto:     linha.produtoCodigo.String,
			Produto:       linha.produtoNome.String,
			Categoria:     linha.produtoCategoria.String,
			CustoUnitario: decimalDoBanco(linha.produtoCusto),
			PrecoSugerido: decimalDoBanco(linha.produtoPrecoSug),
			CentoPreco:    decimalDoBanco(linha.produtoCentoPreco),
			IsActive:      linha.produtoAtivo.Bool,
			CreatedAt:     linha.produtoCriadoEm.Time,
			UpdatedAt:     linha.produtoAtualizado.Time,
		}
		if linha.produtoPedidoMin.Valid {
			pedidoMinimo := int(linha.produtoPedidoMin.Int64)
			venda.Produto.PedidoMinimo = &pedidoMinimo
		}
	}

	if linha.clienteID.Valid {
		venda.Cliente = &models.Cliente{
			ID:          linha.clienteID.Int64,
			IDCliente:   linha.clienteCodigo.String,
			NomeCliente: linha.clienteNome.String,
			TipoCliente: linha.clienteTipo.String,
			IsActive:    linha.clienteAtivo.Bool,
			CreatedAt:   linha.clienteCriadoEm.Time,
			UpdatedAt:   linha.clienteAtualizado.Time,
		}
		if linha.clienteBairro.Valid {
			bairro := linha.clienteBairro.String
			venda.Cliente.Bairro = &bairro
		}
		if linha.clienteCidade.Valid {
			cidade := linha.clienteCidade.String
			venda.Cliente.Cidade = &cidade
		}
	}

	if linha.formaID.Valid {
		venda.FormaPagamento = &models.FormaPagamento{
			ID:             linha.formaID.Int64,
			IDPagamento:    linha.formaCodigo.String,
			FormaPagamento: linha.formaDescricao.String,
			IsActive:       linha.formaAtivo.Bool,
			CreatedAt:      linha.formaCriadoEm.Time,
			UpdatedAt:      linha.formaAtualizado.Time,
		}
	}

	return &venda
}

func (r *VendaRepository) queryRow(query string, args ...interface{}) (*models.Venda, error) {
	var linha vendaRow
	err := r.db.QueryRowWithTimeout(query, args...).Scan(linha.destinos()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("venda: %w", ErrNaoEncontrado)
		}
		return nil, fmt.Errorf("erro ao consultar venda: %w", err)
	}
	return linha.paraVenda(), nil
}

func (r *VendaRepository) queryList(query string, args ...interface{}) ([]models.Venda, error) {
	rows, err := r.db.QueryWithTimeout(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar vendas: %w", err)
	}
	defer rows.Close()

	var vendas []models.Venda
	for rows.Next() {
		var linha vendaRow
		if err := rows.Scan(linha.destinos()...); err != nil {
			return nil, fmt.Errorf("erro ao ler venda: %w", err)
		}
		vendas = append(vendas, *linha.paraVenda())
	}

	return vendas, rows.Err()
}
