package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/s3t20-labs/vendas-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// ProdutoRepository gerencia as operações de banco de dados para Produto
type ProdutoRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewProdutoRepository cria uma nova instância do repositório
func NewProdutoRepository(db *DB, logger *logrus.Logger) *ProdutoRepository {
	return &ProdutoRepository{
		db:     db,
		logger: logger,
	}
}

const colunasProduto = `id, id_produto, produto, categoria, pedido_minimo,
	custo_unitario, preco_sugerido, cento_preco, is_active, created_at, updated_at`

// Create insere um novo produto e preenche o id gerado
func (r *ProdutoRepository) Create(produto *models.Produto) error {
	query := `
		INSERT INTO produtos (
			id_produto, produto, categoria, pedido_minimo, custo_unitario,
			preco_sugerido, cento_preco, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRowWithTimeout(query,
		produto.IDProduto, produto.Produto, produto.Categoria, produto.PedidoMinimo,
		decimalParaBanco(produto.CustoUnitario), decimalParaBanco(produto.PrecoSugerido),
		decimalParaBanco(produto.CentoPreco), produto.IsActive,
		produto.CreatedAt, produto.UpdatedAt,
	).Scan(&produto.ID)

	if err != nil {
		if ehViolacaoUnicidade(err) {
			return fmt.Errorf("produto %s: %w", produto.IDProduto, ErrCodigoDuplicado)
		}
		return fmt.Errorf("erro ao criar produto: %w", err)
	}

	return nil
}

// GetByID busca um produto pelo id
func (r *ProdutoRepository) GetByID(id int64) (*models.Produto, error) {
	query := `SELECT ` + colunasProduto + ` FROM produtos WHERE id = $1`
	return r.scanRow(r.db.QueryRowWithTimeout(query, id))
}

// GetByCodigo busca um produto pelo código único
func (r *ProdutoRepository) GetByCodigo(codigo string) (*models.Produto, error) {
	query := `SELECT ` + colunasProduto + ` FROM produtos WHERE id_produto = $1`
	return r.scanRow(r.db.QueryRowWithTimeout(query, codigo))
}

// GetAll retorna todos os produtos na ordem de inserção
func (r *ProdutoRepository) GetAll() ([]models.Produto, error) {
	query := `SELECT ` + colunasProduto + ` FROM produtos ORDER BY id`
	return r.queryList(query)
}

// GetByCategoria retorna os produtos de uma categoria
func (r *ProdutoRepository) GetByCategoria(categoria string) ([]models.Produto, error) {
	query := `SELECT ` + colunasProduto + ` FROM produtos WHERE categoria = $1 ORDER BY id`
	return r.queryList(query, categoria)
}

// Update atualiza um produto existente
func (r *ProdutoRepository) Update(produto *models.Produto) error {
	query := `
		UPDATE produtos
		SET id_produto = $1, produto = $2, categoria = $3, pedido_minimo = $4,
		    custo_unitario = $5, preco_sugerido = $6, cento_preco = $7, updated_at = $8
		WHERE id = $9
	`

	result, err := r.db.ExecWithTimeout(query,
		produto.IDProduto, produto.Produto, produto.Categoria, produto.PedidoMinimo,
		decimalParaBanco(produto.CustoUnitario), decimalParaBanco(produto.PrecoSugerido),
		decimalParaBanco(produto.CentoPreco), produto.UpdatedAt, produto.ID,
	)
	if err != nil {
		if ehViolacaoUnicidade(err) {
			return fmt.Errorf("produto %s: %w", produto.IDProduto, ErrCodigoDuplicado)
		}
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}

	linhas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	if linhas == 0 {
		return fmt.Errorf("produto %d: %w", produto.ID, ErrNaoEncontrado)
	}

	return nil
}

// Delete remove um produto definitivamente. Retorna false se o id não existe.
func (r *ProdutoRepository) Delete(id int64) (bool, error) {
	result, err := r.db.ExecWithTimeout(`DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("erro ao deletar produto: %w", err)
	}

	linhas, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return linhas > 0, nil
}

// Count retorna o total de produtos cadastrados
func (r *ProdutoRepository) Count() (int64, error) {
	var total int64
	if err := r.db.QueryRowWithTimeout(`SELECT COUNT(*) FROM produtos`).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	return total, nil
}

// DistinctCategorias retorna as categorias distintas, ordenadas
func (r *ProdutoRepository) DistinctCategorias() ([]string, error) {
	query := `SELECT DISTINCT categoria FROM produtos ORDER BY categoria`
	rows, err := r.db.QueryWithTimeout(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar categorias: %w", err)
	}
	defer rows.Close()

	var categorias []string
	for rows.Next() {
		var categoria string
		if err := rows.Scan(&categoria); err != nil {
			return nil, fmt.Errorf("erro ao ler categoria: %w", err)
		}
		categorias = append(categorias, categoria)
	}

	return categorias, rows.Err()
}

func (r *ProdutoRepository) scanRow(row *sql.Row) (*models.Produto, error) {
	var produto models.Produto
	var custoUnitario, precoSugerido, centoPreco decimal.NullDecimal
	err := row.Scan(
		&produto.ID, &produto.IDProduto, &produto.Produto, &produto.Categoria,
		&produto.PedidoMinimo, &custoUnitario, &precoSugerido, &centoPreco,
		&produto.IsActive, &produto.CreatedAt, &produto.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("produto: %w", ErrNaoEncontrado)
		}
		return nil, fmt.Errorf("erro ao consultar produto: %w", err)
	}

	produto.CustoUnitario = decimalDoBanco(custoUnitario)
	produto.PrecoSugerido = decimalDoBanco(precoSugerido)
	produto.CentoPreco = decimalDoBanco(centoPreco)
	return &produto, nil
}

func (r *ProdutoRepository) queryList(query string, args ...interface{}) ([]models.Produto, error) {
	rows, err := r.db.QueryWithTimeout(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar produtos: %w", err)
	}
	defer rows.Close()

	var produtos []models.Produto
	for rows.Next() {
		var produto models.Produto
		var custoUnitario, precoSugerido, centoPreco decimal.NullDecimal
		err := rows.Scan(
			&produto.ID, &produto.IDProduto, &produto.Produto, &produto.Categoria,
			&produto.PedidoMinimo, &custoUnitario, &precoSugerido, &centoPreco,
			&produto.IsActive, &produto.CreatedAt, &produto.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		produto.CustoUnitario = decimalDoBanco(custoUnitario)
		produto.PrecoSugerido = decimalDoBanco(precoSugerido)
		produto.CentoPreco = decimalDoBanco(centoPreco)
		produtos = append(produtos, produto)
	}

	return produtos, rows.Err()
}

// decimalParaBanco converte um decimal opcional para o tipo aceito pelo driver
func decimalParaBanco(valor *decimal.Decimal) decimal.NullDecimal {
	if valor == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *valor, Valid: true}
}

// decimalDoBanco converte um NUMERIC anulável lido do banco
func decimalDoBanco(valor decimal.NullDecimal) *decimal.Decimal {
	if !valor.Valid {
		return nil
	}
	d := valor.Decimal
	return &d
}
