package services

import "fmt"

// Prefixos dos códigos legíveis de cada entidade
const (
	PrefixoCliente        = "CLI"
	PrefixoProduto        = "PROD"
	PrefixoFormaPagamento = "PAG"
	PrefixoVenda          = "VEN"
)

// ProximoCodigo gera o próximo código sequencial legível a partir do total
// de registros da entidade, ex.: CLI001, PROD014. O count é apenas uma dica:
// dois criadores concorrentes podem gerar o mesmo candidato, e quem garante a
// unicidade é a constraint do banco.
func ProximoCodigo(prefixo string, count int64) string {
	return fmt.Sprintf("%s%03d", prefixo, count+1)
}
