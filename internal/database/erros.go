package database

import (
	"errors"

	"github.com/lib/pq"
)

// Erros sentinela do datastore, distinguíveis com errors.Is na borda HTTP.
var (
	// ErrNaoEncontrado indica que nenhum registro corresponde ao id ou código
	ErrNaoEncontrado = errors.New("registro não encontrado")

	// ErrCodigoDuplicado indica colisão com o código único de outro registro.
	// A unique constraint do banco é a guarda autoritativa: o gerador de
	// códigos baseado em count pode colidir sob concorrência.
	ErrCodigoDuplicado = errors.New("código único já cadastrado")
)

// unique_violation do PostgreSQL
const codigoViolacaoUnicidade = "23505"

// ehViolacaoUnicidade reconhece violação de unique constraint do PostgreSQL
func ehViolacaoUnicidade(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == codigoViolacaoUnicidade
}
