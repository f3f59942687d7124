package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProximoCodigo(t *testing.T) {
	tests := []struct {
		nome     string
		prefixo  string
		count    int64
		esperado string
	}{
		{"primeiro cliente", PrefixoCliente, 0, "CLI001"},
		{"segundo cliente", PrefixoCliente, 1, "CLI002"},
		{"primeiro produto", PrefixoProduto, 0, "PROD001"},
		{"primeira forma de pagamento", PrefixoFormaPagamento, 0, "PAG001"},
		{"primeira venda", PrefixoVenda, 0, "VEN001"},
		{"centesima venda", PrefixoVenda, 99, "VEN100"},
		{"sequencia acima de tres digitos", PrefixoVenda, 999, "VEN1000"},
	}

	for _, tt := range tests {
		t.Run(tt.nome, func(t *testing.T) {
			assert.Equal(t, tt.esperado, ProximoCodigo(tt.prefixo, tt.count))
		})
	}
}
