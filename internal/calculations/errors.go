package calculations

import (
	"errors"
	"fmt"
)

// ErrInvalidLoanParameters возвращается при некорректных параметрах кредита
var ErrInvalidLoanParameters = errors.New("invalid loan parameters")

// InvalidLoanParametersError указывает поле и причину отказа
type InvalidLoanParametersError struct {
	Field  string
	Reason string
}

func (e *InvalidLoanParametersError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidLoanParameters, e.Field, e.Reason)
}

func (e *InvalidLoanParametersError) Is(target error) bool {
	return target == ErrInvalidLoanParameters
}

func invalidParam(field, reason string) error {
	return &InvalidLoanParametersError{Field: field, Reason: reason}
}
