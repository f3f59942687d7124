package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um produto do catálogo
type Produto struct {
	ID            int64            `json:"id" db:"id"`
	IDProduto     string           `json:"id_produto" db:"id_produto"`
	Produto       string           `json:"produto" db:"produto"`
	Categoria     string           `json:"categoria" db:"categoria"`
	PedidoMinimo  *int             `json:"pedido_minimo,omitempty" db:"pedido_minimo"`
	CustoUnitario *decimal.Decimal `json:"custo_unitario,omitempty" db:"custo_unitario"`
	PrecoSugerido *decimal.Decimal `json:"preco_sugerido,omitempty" db:"preco_sugerido"`
	CentoPreco    *decimal.Decimal `json:"cento_preco,omitempty" db:"cento_preco"`
	IsActive      bool             `json:"is_active" db:"is_active"`
	CreatedAt     time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at" db:"updated_at"`
}

// ProdutoRequest representa o payload para criar/atualizar um produto
type ProdutoRequest struct {
	IDProduto     string           `json:"id_produto" binding:"omitempty,max=10"`
	Produto       string           `json:"produto" binding:"required,max=255"`
	Categoria     string           `json:"categoria" binding:"required,max=100"`
	PedidoMinimo  *int             `json:"pedido_minimo" binding:"omitempty,gt=0"`
	CustoUnitario *decimal.Decimal `json:"custo_unitario"`
	PrecoSugerido *decimal.Decimal `json:"preco_sugerido"`
	CentoPreco    *decimal.Decimal `json:"cento_preco"`
}
