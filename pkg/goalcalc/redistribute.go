package goalcalc

import "math"

// Member é uma colaboradora com a sua meta diária dinâmica individual já calculada
type Member struct {
	EmployeeID string
	Daily      DailyTarget
}

// LeaveSet é o conjunto de colaboradoras de folga no dia
type LeaveSet map[string]struct{}

// NewLeaveSet cria o conjunto de folgas a partir dos IDs
func NewLeaveSet(employeeIDs ...string) LeaveSet {
	set := make(LeaveSet, len(employeeIDs))
	for _, id := range employeeIDs {
		set[id] = struct{}{}
	}
	return set
}

// Contains indica se a colaboradora está de folga
func (s LeaveSet) Contains(employeeID string) bool {
	_, ok := s[employeeID]
	return ok
}

// Allocation é a meta final do dia de uma colaboradora
type Allocation struct {
	EmployeeID string    `json:"employee_id"`
	Base       float64   `json:"base_daily_target"`
	Dynamic    float64   `json:"dynamic_daily_target"`
	LeaveShare float64   `json:"leave_share"`
	Final      float64   `json:"final_target"`
	Situation  Situation `json:"situation"`
	OnLeave    bool      `json:"on_leave"`
}

// Redistribution guarda os totais intermediários e as metas finais, na ordem de entrada
type Redistribution struct {
	StoreTarget            float64      `json:"store_target"`
	MandatorySum           float64      `json:"mandatory_sum"`
	AdjustableSum          float64      `json:"adjustable_sum"`
	LeavePool              float64      `json:"leave_pool"`
	PerWorkingShare        float64      `json:"per_working_share"`
	AvailableForAdjustable float64      `json:"available_for_adjustable"`
	AdjustmentFactor       float64      `json:"adjustment_factor"`
	Allocations            []Allocation `json:"allocations"`
}

// WorkingTotal soma as metas finais de quem está trabalhando
func (r Redistribution) WorkingTotal() float64 {
	var total float64
	for _, a := range r.Allocations {
		if !a.OnLeave {
			total += a.Final
		}
	}
	return total
}

// Redistribute distribui a meta dinâmica da loja entre as colaboradoras que trabalham hoje.
//
// Colaboradoras atrasadas mantêm integralmente a sua meta dinâmica. As adiantadas/neutras
// dividem proporcionalmente o que sobra da meta da loja, sem descer abaixo da própria base.
// As metas de quem está de folga são somadas e divididas igualmente entre quem trabalha;
// quem está de folga fica com meta zero.
//
// A soma final pode superar a meta da loja quando o piso da base é acionado.
func Redistribute(members []Member, storeTarget float64, onLeave LeaveSet) Redistribution {
	result := Redistribution{
		StoreTarget: storeTarget,
		Allocations: make([]Allocation, len(members)),
	}

	working := 0
	for _, m := range members {
		switch {
		case onLeave.Contains(m.EmployeeID):
			result.LeavePool += m.Daily.Target
		case m.Daily.Situation == SituationBehind:
			working++
			result.MandatorySum += m.Daily.Target
		default:
			working++
			result.AdjustableSum += m.Daily.Target
		}
	}

	if working > 0 {
		result.PerWorkingShare = result.LeavePool / float64(working)
	}

	result.AvailableForAdjustable = math.Max(0, storeTarget-result.MandatorySum)
	if result.AdjustableSum > 0 {
		result.AdjustmentFactor = result.AvailableForAdjustable / result.AdjustableSum
	}

	for i, m := range members {
		allocation := Allocation{
			EmployeeID: m.EmployeeID,
			Base:       m.Daily.Base,
			Dynamic:    m.Daily.Target,
			Situation:  m.Daily.Situation,
		}

		switch {
		case onLeave.Contains(m.EmployeeID):
			allocation.OnLeave = true
		case m.Daily.Situation == SituationBehind:
			allocation.LeaveShare = result.PerWorkingShare
			allocation.Final = m.Daily.Target + result.PerWorkingShare
		default:
			allocation.LeaveShare = result.PerWorkingShare
			allocation.Final = math.Max(m.Daily.Base, m.Daily.Target*result.AdjustmentFactor) + result.PerWorkingShare
		}

		result.Allocations[i] = allocation
	}

	return result
}

// IndividualTargets é a variante simples usada na visão "toda a equipe": cada colaboradora
// fica com a própria meta dinâmica, sem redistribuição entre colegas. Folga zera a meta.
func IndividualTargets(members []Member, onLeave LeaveSet) []Allocation {
	allocations := make([]Allocation, len(members))
	for i, m := range members {
		allocation := Allocation{
			EmployeeID: m.EmployeeID,
			Base:       m.Daily.Base,
			Dynamic:    m.Daily.Target,
			Situation:  m.Daily.Situation,
		}

		if onLeave.Contains(m.EmployeeID) {
			allocation.OnLeave = true
		} else {
			allocation.Final = m.Daily.Target
		}

		allocations[i] = allocation
	}
	return allocations
}
