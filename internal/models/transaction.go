package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrInvalidTransaction возвращается, если запись нарушает инварианты транзакции
var ErrInvalidTransaction = errors.New("invalid transaction")

// Kind - направление движения денег
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// DateLayout - формат дат во входящих записях
const DateLayout = "2006-01-02"

// Transaction - запись о продаже, покупке или расходе.
// Сумма всегда неотрицательна, направление задает Kind.
type Transaction struct {
	ID       uuid.UUID         `json:"id"`
	Date     time.Time         `json:"date"`
	Amount   decimal.Decimal   `json:"amount"`
	Kind     Kind              `json:"kind"`
	Category string            `json:"category,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ParseKind разбирает тип записи, включая названия форм исходного приложения
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "sale", "ingreso", "venta":
		return KindIncome, nil
	case "expense", "purchase", "gasto", "compra":
		return KindExpense, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidTransaction, s)
}

// Validate проверяет инварианты записи
func (t Transaction) Validate() error {
	if t.Kind != KindIncome && t.Kind != KindExpense {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidTransaction, t.Kind)
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: amount %s is negative", ErrInvalidTransaction, t.Amount)
	}
	if t.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidTransaction)
	}
	return nil
}

// YearMonth возвращает ключ месяца в формате YYYY-MM
func (t Transaction) YearMonth() string {
	return t.Date.Format("2006-01")
}

// NewTransaction создает запись с новым идентификатором
func NewTransaction(date time.Time, amount decimal.Decimal, kind Kind, category string) Transaction {
	return Transaction{
		ID:       uuid.New(),
		Date:     date,
		Amount:   amount,
		Kind:     kind,
		Category: category,
	}
}
