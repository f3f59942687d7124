package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/s3t20-labs/vendas-service/internal/models"
	"github.com/sirupsen/logrus"
)

// FormaPagamentoRepository gerencia as operações de banco de dados para
// FormaPagamento
type FormaPagamentoRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewFormaPagamentoRepository cria uma nova instância do repositório
func NewFormaPagamentoRepository(db *DB, logger *logrus.Logger) *FormaPagamentoRepository {
	return &FormaPagamentoRepository{
		db:     db,
		logger: logger,
	}
}

const colunasFormaPagamento = `id, id_pagamento, forma_pagamento, is_active, created_at, updated_at`

// Create insere uma nova forma de pagamento e preenche o id gerado
func (r *FormaPagamentoRepository) Create(formaPagamento *models.FormaPagamento) error {
	query := `
		INSERT INTO formas_pagamento (
			id_pagamento, forma_pagamento, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowWithTimeout(query,
		formaPagamento.IDPagamento, formaPagamento.FormaPagamento,
		formaPagamento.IsActive, formaPagamento.CreatedAt, formaPagamento.UpdatedAt,
	).Scan(&formaPagamento.ID)

	if err != nil {
		if ehViolacaoUnicidade(err) {
			return fmt.Errorf("forma de pagamento %s: %w", formaPagamento.IDPagamento, ErrCodigoDuplicado)
		}
		return fmt.Errorf("erro ao criar forma de pagamento: %w", err)
	}

	return nil
}

// GetByID busca uma forma de pagamento pelo id
func (r *FormaPagamentoRepository) GetByID(id int64) (*models.FormaPagamento, error) {
	query := `SELECT ` + colunasFormaPagamento + ` FROM formas_pagamento WHERE id = $1`
	return r.scanRow(r.db.QueryRowWithTimeout(query, id))
}

// GetByCodigo busca uma forma de pagamento pelo código único
func (r *FormaPagamentoRepository) GetByCodigo(codigo string) (*models.FormaPagamento, error) {
	query := `SELECT ` + colunasFormaPagamento + ` FROM formas_pagamento WHERE id_pagamento = $1`
	return r.scanRow(r.db.QueryRowWithTimeout(query, codigo))
}

// GetAll retorna todas as formas de pagamento na ordem de inserção
func (r *FormaPagamentoRepository) GetAll() ([]models.FormaPagamento, error) {
	query := `SELECT ` + colunasFormaPagamento + ` FROM formas_pagamento ORDER BY id`
	rows, err := r.db.QueryWithTimeout(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar formas de pagamento: %w", err)
	}
	defer rows.Close()

	var formas []models.FormaPagamento
	for rows.Next() {
		var forma models.FormaPagamento
		err := rows.Scan(
			&forma.ID, &forma.IDPagamento, &forma.FormaPagamento,
			&forma.IsActive, &forma.CreatedAt, &forma.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler forma de pagamento: %w", err)
		}
		formas = append(formas, forma)
	}

	return formas, rows.Err()
}

// Update atualiza uma forma de pagamento existente
func (r *FormaPagamentoRepository) Update(formaPagamento *models.FormaPagamento) error {
	query := `
		UPDATE formas_pagamento
		SET id_pagamento = $1, forma_pagamento = $2, is_active = $3, updated_at = $4
		WHERE id = $5
	`

	result, err := r.db.ExecWithTimeout(query,
		formaPagamento.IDPagamento, formaPagamento.FormaPagamento,
		formaPagamento.IsActive, formaPagamento.UpdatedAt, formaPagamento.ID,
	)
	if err != nil {
		if ehViolacaoUnicidade(err) {
			return fmt.Errorf("forma de pagamento %s: %w", formaPagamento.IDPagamento, ErrCodigoDuplicado)
		}
		return fmt.Errorf("erro ao atualizar forma de pagamento: %w", err)
	}

	linhas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	if linhas == 0 {
		return fmt.Errorf("forma de pagamento %d: %w", formaPagamento.ID, ErrNaoEncontrado)
	}

	return nil
}

// Delete remove uma forma de pagamento definitivamente. Retorna false se o
// id não existe.
func (r *FormaPagamentoRepository) Delete(id int64) (bool, error) {
	result, err := r.db.ExecWithTimeout(`DELETE FROM formas_pagamento WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("erro ao deletar forma de pagamento: %w", err)
	}

	linhas, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return linhas > 0, nil
}

// Count retorna o total de formas de pagamento cadastradas
func (r *FormaPagamentoRepository) Count() (int64, error) {
	var total int64
	if err := r.db.QueryRowWithTimeout(`SELECT COUNT(*) FROM formas_pagamento`).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar formas de pagamento: %w", err)
	}
	return total, nil
}

func (r *FormaPagamentoRepository) scanRow(row *sql.Row) (*models.FormaPagamento, error) {
	var forma models.FormaPagamento
	err := row.Scan(
		&forma.ID, &forma.IDPagamento, &forma.FormaPagamento,
		&forma.IsActive, &forma.CreatedAt, &forma.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("forma de pagamento: %w", ErrNaoEncontrado)
		}
		return nil, fmt.Errorf("erro ao consultar forma de pagamento: %w", err)
	}
	return &forma, nil
}
