package calculations

import (
	"fmt"

	"github.com/cloud-ru/smb-finance-go/pkg/utils"
)

// EvaluateViability сопоставляет платеж с платежеспособностью заемщика
// и ожидаемую доходность проекта с процентами по кредиту
func EvaluateViability(summary LoanSummary, in ViabilityInput) Viability {
	canAfford := summary.MonthlyPayment <= in.MonthlyPaymentCapacity

	years := float64(summary.Months) / 12.0
	projectedReturn := summary.Principal * (in.MinimumAnnualROIPercent / 100.0) * years
	netReturn := projectedReturn - summary.TotalInterest
	profitable := netReturn > 0

	v := Viability{
		CanAfford:              canAfford,
		Profitable:             profitable,
		MonthlyPayment:         summary.MonthlyPayment,
		MonthlyPaymentCapacity: in.MonthlyPaymentCapacity,
		ProjectedReturn:        projectedReturn,
		TotalInterest:          summary.TotalInterest,
		NetReturn:              netReturn,
	}

	switch {
	case canAfford && profitable:
		v.Outcome = OutcomeAffordableProfitable
		v.Verdict = fmt.Sprintf("Проект жизнеспособен: платеж %s укладывается в бюджет, чистая доходность %s.",
			utils.FormatMoney(summary.MonthlyPayment), utils.FormatMoney(netReturn))
	case canAfford:
		v.Outcome = OutcomeAffordableUnprofitable
		v.Verdict = fmt.Sprintf("Платеж по силам, но проценты (%s) превышают ожидаемую доходность (%s).",
			utils.FormatMoney(summary.TotalInterest), utils.FormatMoney(projectedReturn))
	case profitable:
		v.Outcome = OutcomeUnaffordableProfitable
		v.Verdict = fmt.Sprintf("Проект доходен, но платеж %s превышает платежеспособность %s.",
			utils.FormatMoney(summary.MonthlyPayment), utils.FormatMoney(in.MonthlyPaymentCapacity))
	default:
		v.Outcome = OutcomeUnaffordableUnprofitable
		v.Verdict = "Проект нежизнеспособен: платеж не по силам, а проценты превышают ожидаемую доходность."
	}

	return v
}

// EvaluateLoan строит график и сразу оценивает жизнеспособность проекта
func EvaluateLoan(params LoanParams, in ViabilityInput) (*LoanEvaluation, error) {
	result, err := Schedule(params)
	if err != nil {
		return nil, err
	}

	return &LoanEvaluation{
		CalculationResult: *result,
		Viability:         EvaluateViability(result.Summary, in),
	}, nil
}

// Rounded возвращает копию оценки с суммами, округленными до копеек
func (v Viability) Rounded() Viability {
	v.MonthlyPayment = utils.Round2(v.MonthlyPayment)
	v.MonthlyPaymentCapacity = utils.Round2(v.MonthlyPaymentCapacity)
	v.ProjectedReturn = utils.Round2(v.ProjectedReturn)
	v.TotalInterest = utils.Round2(v.TotalInterest)
	v.NetReturn = utils.Round2(v.NetReturn)
	return v
}
