// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type Store struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	WhatsappPhone *string   `json:"whatsapp_phone"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Employee struct {
	ID            string     `json:"id"`
	StoreID       string     `json:"store_id"`
	Name          string     `json:"name"`
	Phone         *string    `json:"phone"`
	Active        bool       `json:"active"`
	DeactivatedAt *time.Time `json:"deactivated_at"` // Vendas após esta data não contam para o realizado
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// WorkedOn indica se a colaboradora ainda fazia parte da equipe na data
func (e *Employee) WorkedOn(date time.Time) bool {
	if e.DeactivatedAt == nil {
		return true
	}
	return date.Before(*e.DeactivatedAt)
}
