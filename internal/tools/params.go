package tools

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/smb-finance-go/internal/calculations"
	"github.com/cloud-ru/smb-finance-go/internal/models"
	"github.com/cloud-ru/smb-finance-go/internal/projection"
	"github.com/cloud-ru/smb-finance-go/internal/validators"
)

// ErrInvalidParameter - параметр отсутствует или имеет неверный тип
var ErrInvalidParameter = errors.New("invalid parameter")

// IsClientError сообщает, вызвана ли ошибка некорректным запросом
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidParameter) ||
		errors.Is(err, validators.ErrValidation) ||
		errors.Is(err, calculations.ErrInvalidLoanParameters) ||
		errors.Is(err, models.ErrInvalidTransaction) ||
		errors.Is(err, projection.ErrInvalidHorizon)
}

func floatParam(params map[string]interface{}, name string) (float64, error) {
	v, ok := params[name].(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrInvalidParameter, name)
	}
	return v, nil
}

func intParam(params map[string]interface{}, name string) (int, error) {
	v, err := floatParam(params, name)
	if err != nil {
		return 0, err
	}
	if v != float64(int(v)) {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrInvalidParameter, name)
	}
	return int(v), nil
}

func optionalInt(params map[string]interface{}, name string, def int) (int, error) {
	if _, ok := params[name]; !ok {
		return def, nil
	}
	return intParam(params, name)
}

func systemParam(params map[string]interface{}) (calculations.AmortizationSystem, error) {
	name, ok := params["system"]
	if !ok {
		return calculations.SystemFrench, nil
	}
	s, ok := name.(string)
	if !ok {
		return "", fmt.Errorf("%w: system", ErrInvalidParameter)
	}
	return calculations.ParseSystem(s)
}

func transactionsParam(params map[string]interface{}) ([]models.Transaction, error) {
	raw, ok := params["transactions"]
	if !ok || raw == nil {
		return []models.Transaction{}, nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: transactions must be a list", ErrInvalidParameter)
	}
	return models.ParseTransactions(list)
}

// assumptionsParam накладывает переданные в запросе допущения на значения из конфигурации
func assumptionsParam(params map[string]interface{}, base projection.Assumptions) (projection.Assumptions, error) {
	raw, ok := params["assumptions"]
	if !ok || raw == nil {
		return base, nil
	}
	overrides, ok := raw.(map[string]interface{})
	if !ok {
		return base, fmt.Errorf("%w: assumptions must be an object", ErrInvalidParameter)
	}

	fields := map[string]*float64{
		"monthly_price_adjustment":  &base.MonthlyPriceAdjustment,
		"monthly_cost_adjustment":   &base.MonthlyCostAdjustment,
		"monthly_general_inflation": &base.MonthlyGeneralInflation,
		"monthly_efficiency_gain":   &base.MonthlyEfficiencyGain,
		"devaluation_expectation":   &base.DevaluationExpectation,
	}
	for key := range overrides {
		target, known := fields[key]
		if !known {
			return base, fmt.Errorf("%w: unknown assumption %s", ErrInvalidParameter, key)
		}
		v, err := floatParam(overrides, key)
		if err != nil {
			return base, err
		}
		*target = v
	}
	return base, nil
}
