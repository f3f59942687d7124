package services

import (
	"errors"

	"github.com/s3t20-labs/vendas-service/internal/database"
)

// Erros de negócio expostos à borda HTTP, distinguíveis com errors.Is.
var (
	// ErrNaoEncontrado indica que a operação aponta para um id ou código
	// inexistente
	ErrNaoEncontrado = database.ErrNaoEncontrado

	// ErrCodigoDuplicado indica colisão de código único na criação ou
	// atualização
	ErrCodigoDuplicado = database.ErrCodigoDuplicado

	// ErrReferenciaInvalida indica que uma venda referencia um produto,
	// cliente ou forma de pagamento inexistente
	ErrReferenciaInvalida = errors.New("referência a registro inexistente")
)
