package recording

import (
	"errors"
	"fmt"
)

// Erros de cadastro de metas, vendas e folgas
var (
	ErrStoreNotFound         = errors.New("loja não encontrada")
	ErrEmployeeNotFound      = errors.New("colaboradora não encontrada na loja")
	ErrOffDayNotFound        = errors.New("folga não encontrada")
	ErrInvalidMonthReference = errors.New("referência de mês inválida")
	ErrNegativeTarget        = errors.New("meta não pode ser negativa")
	ErrInvalidWeights        = errors.New("pesos diários inválidos")
	ErrInvalidSale           = errors.New("venda inválida")
	ErrInvalidDate           = errors.New("data inválida")
	ErrDatabaseOperation     = errors.New("erro ao realizar operação no banco de dados")
)

// RecordError é um erro com contexto adicional para os cadastros da loja
type RecordError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	StoreID string // Loja envolvida
	Details string // Detalhes adicionais
}

func (e *RecordError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RecordError) Unwrap() error {
	return e.Err
}

func NewRecordError(err error, code string, storeID string, details string) *RecordError {
	return &RecordError{
		Err:     err,
		Code:    code,
		StoreID: storeID,
		Details: details,
	}
}
