package contesting

import (
	"errors"
	"fmt"
)

// Erros específicos das gincanas
var (
	ErrGincanaNotFound    = errors.New("gincana não encontrada")
	ErrStoreNotFound      = errors.New("loja não encontrada")
	ErrInvalidWeekToken   = errors.New("referência de semana inválida")
	ErrInvalidGincana     = errors.New("gincana inválida")
	ErrInvalidParticipant = errors.New("participante inválida")
	ErrDatabaseOperation  = errors.New("erro ao realizar operação no banco de dados")
)

// GincanaError é um erro com contexto adicional para gincanas
type GincanaError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	GincanaID string // Gincana envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *GincanaError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *GincanaError) Unwrap() error {
	return e.Err
}

// NewGincanaError cria um novo GincanaError
func NewGincanaError(err error, code string, gincanaID string, details string) *GincanaError {
	return &GincanaError{
		Err:       err,
		Code:      code,
		GincanaID: gincanaID,
		Details:   details,
	}
}
