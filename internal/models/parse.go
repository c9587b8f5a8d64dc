package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParseTransactions преобразует записи из декодированного JSON (например,
// черновики, полученные от сервиса распознавания) в проверенные транзакции
func ParseTransactions(raw []interface{}) ([]Transaction, error) {
	txs := make([]Transaction, 0, len(raw))
	for i, item := range raw {
		fields, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: record %d is not an object", ErrInvalidTransaction, i)
		}
		tx, err := parseTransaction(fields)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func parseTransaction(fields map[string]interface{}) (Transaction, error) {
	var tx Transaction

	dateStr, ok := fields["date"].(string)
	if !ok {
		return tx, fmt.Errorf("%w: date is required", ErrInvalidTransaction)
	}
	date, err := parseDate(dateStr)
	if err != nil {
		return tx, err
	}

	amount, err := parseAmount(fields["amount"])
	if err != nil {
		return tx, err
	}

	kindStr, _ := fields["kind"].(string)
	if kindStr == "" {
		kindStr, _ = fields["type"].(string)
	}
	kind, err := ParseKind(kindStr)
	if err != nil {
		return tx, err
	}

	category, _ := fields["category"].(string)
	tx = NewTransaction(date, amount, kind, category)

	if idStr, ok := fields["id"].(string); ok && idStr != "" {
		id, err := uuid.Parse(idStr)
		if err != nil {
			return tx, fmt.Errorf("%w: bad id %q", ErrInvalidTransaction, idStr)
		}
		tx.ID = id
	}

	if meta, ok := fields["metadata"].(map[string]interface{}); ok {
		tx.Metadata = make(map[string]string, len(meta))
		for k, v := range meta {
			tx.Metadata[k] = fmt.Sprint(v)
		}
	}

	return tx, tx.Validate()
}

func parseDate(s string) (time.Time, error) {
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, nil
	}
	if d, err := time.Parse(time.RFC3339, s); err == nil {
		return d, nil
	}
	return time.Time{}, fmt.Errorf("%w: bad date %q", ErrInvalidTransaction, s)
}

func parseAmount(v interface{}) (decimal.Decimal, error) {
	switch a := v.(type) {
	case float64:
		return decimal.NewFromFloat(a), nil
	case string:
		d, err := decimal.NewFromString(a)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: bad amount %q", ErrInvalidTransaction, a)
		}
		return d, nil
	}
	return decimal.Zero, fmt.Errorf("%w: amount is required", ErrInvalidTransaction)
}
