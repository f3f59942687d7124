package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/s3t20-labs/vendas-service/internal/models"
	"github.com/sirupsen/logrus"
)

// ClienteRepository gerencia as operações de banco de dados para Cliente
type ClienteRepository struct {
	db     *DB
	logger *logrus.Logger
}

// NewClienteRepository cria uma nova instância do repositório
func NewClienteRepository(db *DB, logger *logrus.Logger) *ClienteRepository {
	return &ClienteRepository{
		db:     db,
		logger: logger,
	}
}

const colunasCliente = `id, id_cliente, nome_cliente, bairro, cidade, tipo_cliente, is_active, created_at, updated_at`

// Create insere um novo cliente e preenche o id gerado
func (r *ClienteRepository) Create(cliente *models.Cliente) error {
	query := `
		INSERT INTO clientes (
			id_cliente, nome_cliente, bairro, cidade, tipo_cliente,
			is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRowWithTimeout(query,
		cliente.IDCliente, cliente.NomeCliente, cliente.Bairro, cliente.Cidade,
		cliente.TipoCliente, cliente.IsActive, cliente.CreatedAt, cliente.UpdatedAt,
	).Scan(&cliente.ID)

	if err != nil {
		if ehViolacaoUnicidade(err) {
			return fmt.Errorf("cliente %s: %w", cliente.IDCliente, ErrCodigoDuplicado)
		}
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}

	return nil
}

// GetByID busca um cliente pelo id
func (r *ClienteRepository) GetByID(id int64) (*models.Cliente, error) {
	query := `SELECT ` + colunasCliente + ` FROM clientes WHERE id = $1`
	return r.scanRow(r.db.QueryRowWithTimeout(query, id))
}

// GetByCodigo busca um cliente pelo código único
func (r *ClienteRepository) GetByCodigo(codigo string) (*models.Cliente, error) {
	query := `SELECT ` + colunasCliente + ` FROM clientes WHERE id_cliente = $1`
	return r.scanRow(r.db.QueryRowWithTimeout(query, codigo))
}

// GetAll retorna todos os clientes na ordem de inserção
func (r *ClienteRepository) GetAll() ([]models.Cliente, error) {
	query := `SELECT ` + colunasCliente + ` FROM clientes ORDER BY id`
	return r.queryList(query)
}

// GetByCidade retorna os clientes de uma cidade
func (r *ClienteRepository) GetByCidade(cidade string) ([]models.Cliente, error) {
	query := `SELECT ` + colunasCliente + ` FROM clientes WHERE cidade = $1 ORDER BY id`
	return r.queryList(query, cidade)
}

// GetByBairro retorna os clientes de um bairro
func (r *ClienteRepository) GetByBairro(bairro string) ([]models.Cliente, error) {
	query := `SELECT ` + colunasCliente + ` FROM clientes WHERE bairro = $1 ORDER BY id`
	return r.queryList(query, bairro)
}

// GetByTipo retorna os clientes de um tipo
func (r *ClienteRepository) GetByTipo(tipo string) ([]models.Cliente, error) {
	query := `SELECT ` + colunasCliente + ` FROM clientes WHERE tipo_cliente = $1 ORDER BY id`
	return r.queryList(query, tipo)
}

// SearchByNome busca clientes por trecho do nome, sem diferenciar maiúsculas
func (r *ClienteRepository) SearchByNome(nome string) ([]models.Cliente, error) {
	query := `SELECT ` + colunasCliente + ` FROM clientes WHERE nome_cliente ILIKE $1 ORDER BY id`
	return r.queryList(query, "%"+nome+"%")
}

// Update atualiza um cliente existente
func (r *ClienteRepository) Update(cliente *models.Cliente) error {
	query := `
		UPDATE clientes
		SET id_cliente = $1, nome_cliente = $2, bairro = $3, cidade = $4,
		    tipo_cliente = $5, updated_at = $6
		WHERE id = $7
	`

	result, err := r.db.ExecWithTimeout(query,
		cliente.IDCliente, cliente.NomeCliente, cliente.Bairro, cliente.Cidade,
		cliente.TipoCliente, cliente.UpdatedAt, cliente.ID,
	)
	if err != nil {
		if ehViolacaoUnicidade(err) {
			return fmt.Errorf("cliente %s: %w", cliente.IDCliente, ErrCodigoDuplicado)
		}
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}

	linhas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	if linhas == 0 {
		return fmt.Errorf("cliente %d: %w", cliente.ID, ErrNaoEncontrado)
	}

	return nil
}

// Delete remove um cliente definitivamente. Retorna false se o id não existe.
func (r *ClienteRepository) Delete(id int64) (bool, error) {
	result, err := r.db.ExecWithTimeout(`DELETE FROM clientes WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("erro ao deletar cliente: %w", err)
	}

	linhas, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}

	return linhas > 0, nil
}

// Count retorna o total de clientes cadastrados
func (r *ClienteRepository) Count() (int64, error) {
	var total int64
	if err := r.db.QueryRowWithTimeout(`SELECT COUNT(*) FROM clientes`).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}
	return total, nil
}

// CountByTipo retorna o total de clientes de um tipo
func (r *ClienteRepository) CountByTipo(tipo string) (int64, error) {
	var total int64
	query := `SELECT COUNT(*) FROM clientes WHERE tipo_cliente = $1`
	if err := r.db.QueryRowWithTimeout(query, tipo).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes por tipo: %w", err)
	}
	return total, nil
}

// DistinctCidades retorna as cidades distintas, ordenadas
func (r *ClienteRepository) DistinctCidades() ([]string, error) {
	return r.queryDistinct(`SELECT DISTINCT cidade FROM clientes WHERE cidade IS NOT NULL ORDER BY cidade`)
}

// DistinctBairros retorna os bairros distintos, ordenados
func (r *ClienteRepository) DistinctBairros() ([]string, error) {
	return r.queryDistinct(`SELECT DISTINCT bairro FROM clientes WHERE bairro IS NOT NULL ORDER BY bairro`)
}

func (r *ClienteRepository) scanRow(row *sql.Row) (*models.Cliente, error) {
	var cliente models.Cliente
	err := row.Scan(
		&cliente.ID, &cliente.IDCliente, &cliente.NomeCliente, &cliente.Bairro,
		&cliente.Cidade, &cliente.TipoCliente, &cliente.IsActive,
		&cliente.CreatedAt, &cliente.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("cliente: %w", ErrNaoEncontrado)
		}
		return nil, fmt.Errorf("erro ao consultar cliente: %w", err)
	}
	return &cliente, nil
}

func (r *ClienteRepository) queryList(query string, args ...interface{}) ([]models.Cliente, error) {
	rows, err := r.db.QueryWithTimeout(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar clientes: %w", err)
	}
	defer rows.Close()

	var clientes []models.Cliente
	for rows.Next() {
		var cliente models.Cliente
		err := rows.Scan(
			&cliente.ID, &cliente.IDCliente, &cliente.NomeCliente, &cliente.Bairro,
			&cliente.Cidade, &cliente.TipoCliente, &cliente.IsActive,
			&cliente.CreatedAt, &cliente.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		clientes = append(clientes, cliente)
	}

	return clientes, rows.Err()
}

func (r *ClienteRepository) queryDistinct(query string) ([]string, error) {
	rows, err := r.db.QueryWithTimeout(query)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar valores distintos: %w", err)
	}
	defer rows.Close()

	var valores []string
	for rows.Next() {
		var valor string
		if err := rows.Scan(&valor); err != nil {
			return nil, fmt.Errorf("erro ao ler valor: %w", err)
		}
		valores = append(valores, valor)
	}

	return valores, rows.Err()
}
