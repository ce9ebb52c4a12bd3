package goaling

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de metas
var (
	ErrStoreNotFound     = errors.New("loja não encontrada")
	ErrGoalNotFound      = errors.New("meta mensal não cadastrada")
	ErrEmployeeNotFound  = errors.New("colaboradora não encontrada na loja")
	ErrInvalidWeekToken  = errors.New("referência de semana inválida")
	ErrInvalidCalendar   = errors.New("mês ou data fora do calendário")
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// GoalError é um erro com contexto adicional para metas
type GoalError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	StoreID string // Loja envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *GoalError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError cria um novo GoalError
func NewGoalError(err error, code string, storeID string, details string) *GoalError {
	return &GoalError{
		Err:     err,
		Code:    code,
		StoreID: storeID,
		Details: details,
	}
}
