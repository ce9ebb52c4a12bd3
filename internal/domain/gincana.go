package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gincana é uma competição semanal de vendas entre as colaboradoras da loja
type Gincana struct {
	ID               string               `json:"id"`
	StoreID          string               `json:"store_id"`
	WeekReference    string               `json:"week_reference"` // Formato WWYYYY
	Week             int                  `json:"week"`
	Year             int                  `json:"year"`
	Title            string               `json:"title"`
	Prize            *string              `json:"prize"`
	TargetValue      decimal.Decimal      `json:"target_value"`
	SuperTargetValue decimal.NullDecimal  `json:"super_target_value"`
	StartDate        time.Time            `json:"start_date"`
	EndDate          time.Time            `json:"end_date"`
	Participants     []GincanaParticipant `json:"participants"`
	CreatedAt        time.Time            `json:"created_at"`
}

type GincanaParticipant struct {
	EmployeeID       string              `json:"employee_id"`
	EmployeeName     string              `json:"employee_name,omitempty"`
	TargetValue      decimal.Decimal     `json:"target_value"`
	SuperTargetValue decimal.NullDecimal `json:"super_target_value"`
}

type CreateGincanaRequest struct {
	WeekReference    string               `json:"week_reference"`
	Title            string               `json:"title"`
	Prize            *string              `json:"prize"`
	TargetValue      decimal.Decimal      `json:"target_value"`
	SuperTargetValue *decimal.Decimal     `json:"super_target_value"`
	Participants     []GincanaParticipant `json:"participants"`
}

// GincanaProgress é o ranking parcial da gincana
type GincanaProgress struct {
	Gincana     *Gincana              `json:"gincana"`
	StoreSold   float64               `json:"store_sold"`
	StoreTarget float64               `json:"store_target"`
	Ranking     []ParticipantProgress `json:"ranking"`
}

type ParticipantProgress struct {
	Position       int     `json:"position"`
	EmployeeID     string  `json:"employee_id"`
	EmployeeName   string  `json:"employee_name"`
	Target         float64 `json:"target"`
	SuperTarget    float64 `json:"super_target"`
	Sold           float64 `json:"sold"`
	Percent        float64 `json:"percent"`
	HitTarget      bool    `json:"hit_target"`
	HitSuperTarget bool    `json:"hit_super_target"`
}
