package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venda representa uma venda registrada, com as entidades relacionadas
// resolvidas no momento da criação
type Venda struct {
	ID             int64           `json:"id" db:"id"`
	IDVenda        string          `json:"id_venda" db:"id_venda"`
	Data           Data            `json:"data" db:"data"`
	Produto        *Produto        `json:"produto"`
	Quantidade     int             `json:"quantidade" db:"quantidade"`
	PrecoUnitario  decimal.Decimal `json:"preco_unitario" db:"preco_unitario"`
	ReceitaTotal   decimal.Decimal `json:"receita_total" db:"receita_total"`
	Cliente        *Cliente        `json:"cliente"`
	FormaPagamento *FormaPagamento `json:"forma_pagamento"`
	IsActive       bool            `json:"is_active" db:"is_active"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// VendaRequest representa o payload para criar/atualizar uma venda.
// receita_total ausente é calculada como quantidade × preço unitário.
type VendaRequest struct {
	IDVenda          string           `json:"id_venda" binding:"omitempty,max=10"`
	Data             Data             `json:"data" binding:"required"`
	ProdutoID        int64            `json:"produto_id" binding:"required"`
	Quantidade       int              `json:"quantidade" binding:"required,gt=0"`
	PrecoUnitario    decimal.Decimal  `json:"preco_unitario" binding:"required"`
	ReceitaTotal     *decimal.Decimal `json:"receita_total"`
	ClienteID        int64            `json:"cliente_id" binding:"required"`
	FormaPagamentoID int64            `json:"forma_pagamento_id" binding:"required"`
}

// ResumoVendas representa o agregado de contagem e receita de um conjunto
// de vendas. A receita é exposta como float apenas nesta borda.
type ResumoVendas struct {
	TotalVendas  int64   `json:"total_vendas"`
	ReceitaTotal float64 `json:"receita_total"`
}
