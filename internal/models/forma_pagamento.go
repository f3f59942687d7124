package models

import "time"

// FormaPagamento representa uma forma de pagamento aceita
type FormaPagamento struct {
	ID             int64     `json:"id" db:"id"`
	IDPagamento    string    `json:"id_pagamento" db:"id_pagamento"`
	FormaPagamento string    `json:"forma_pagamento" db:"forma_pagamento"`
	IsActive       bool      `json:"is_active" db:"is_active"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// FormaPagamentoRequest representa o payload para criar/atualizar uma forma
// de pagamento. IsActive só é aplicado na atualização.
type FormaPagamentoRequest struct {
	IDPagamento    string `json:"id_pagamento" binding:"omitempty,max=10"`
	FormaPagamento string `json:"forma_pagamento" binding:"required,max=50"`
	IsActive       *bool  `json:"is_active"`
}
