package validators

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/smb-finance-go/internal/config"
	"github.com/cloud-ru/smb-finance-go/internal/projection"
	"github.com/cloud-ru/smb-finance-go/pkg/utils"
)

// ErrValidation оборачивает все ошибки проверки входных параметров
var ErrValidation = errors.New("validation error")

// ValidatePositiveNumber проверяет, что число положительное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%w: %s: значение не является конечным числом", ErrValidation, name)
	}
	if value < minInclusive {
		return fmt.Errorf("%w: %s: значение должно быть ≥ %g", ErrValidation, name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%w: %s: значение слишком велико (>%g)", ErrValidation, name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%w: %s: значение должно быть в диапазоне [%d; %d]", ErrValidation, name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidatePositiveNumber("principal", principal, 1e-9, cfg.MaxPrincipal)
}

// CheckRate проверяет процентную ставку
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("annual_rate_percent", rate, 0.0, cfg.MaxRate)
}

// CheckMonths проверяет срок в месяцах
func CheckMonths(cfg *config.Config, months int) error {
	return ValidateIntRange("months", months, 1, cfg.MaxMonths)
}

// CheckCapacity проверяет ежемесячную платежеспособность
func CheckCapacity(cfg *config.Config, capacity float64) error {
	return ValidatePositiveNumber("monthly_payment_capacity", capacity, 0.0, cfg.MaxCapacity)
}

// CheckROI проверяет минимальную годовую доходность проекта
func CheckROI(cfg *config.Config, roi float64) error {
	return ValidatePositiveNumber("minimum_annual_roi_percent", roi, 0.0, cfg.MaxROI)
}

// CheckHorizon проверяет горизонт прогноза
func CheckHorizon(cfg *config.Config, horizon int) error {
	return ValidateIntRange("horizon", horizon, 1, cfg.MaxHorizon)
}

// CheckTransactionCount ограничивает размер входного набора
func CheckTransactionCount(cfg *config.Config, count int) error {
	return ValidateIntRange("transactions", count, 0, cfg.MaxTransactions)
}

// CheckAssumptions проверяет экономические допущения: доли в диапазоне (-1; 1]
func CheckAssumptions(a projection.Assumptions) error {
	rates := []struct {
		name  string
		value float64
	}{
		{"monthly_price_adjustment", a.MonthlyPriceAdjustment},
		{"monthly_cost_adjustment", a.MonthlyCostAdjustment},
		{"monthly_general_inflation", a.MonthlyGeneralInflation},
		{"monthly_efficiency_gain", a.MonthlyEfficiencyGain},
	}
	for _, r := range rates {
		if err := ValidatePositiveNumber(r.name, r.value, -0.99, 1.0); err != nil {
			return err
		}
	}
	return ValidatePositiveNumber("devaluation_expectation", a.DevaluationExpectation, 0.0, 100.0)
}
