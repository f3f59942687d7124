package models

import "time"

// Cliente representa um cliente cadastrado
type Cliente struct {
	ID          int64     `json:"id" db:"id"`
	IDCliente   string    `json:"id_cliente" db:"id_cliente"`
	NomeCliente string    `json:"nome_cliente" db:"nome_cliente"`
	Bairro      *string   `json:"bairro,omitempty" db:"bairro"`
	Cidade      *string   `json:"cidade,omitempty" db:"cidade"`
	TipoCliente string    `json:"tipo_cliente" db:"tipo_cliente"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ClienteRequest representa o payload para criar/atualizar um cliente.
// A atualização substitui todos os campos de domínio; id_cliente só é
// sobrescrito quando vem preenchido.
type ClienteRequest struct {
	IDCliente   string  `json:"id_cliente" binding:"omitempty,max=10"`
	NomeCliente string  `json:"nome_cliente" binding:"required,max=255"`
	Bairro      *string `json:"bairro" binding:"omitempty,max=100"`
	Cidade      *string `json:"cidade" binding:"omitempty,max=100"`
	TipoCliente string  `json:"tipo_cliente" binding:"required,max=20"`
}
