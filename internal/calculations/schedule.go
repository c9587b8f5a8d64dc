package calculations

import (
	"fmt"

	"github.com/cloud-ru/smb-finance-go/pkg/utils"
)

// Schedule строит график платежей по выбранной схеме погашения
func Schedule(params LoanParams) (*CalculationResult, error) {
	switch params.System {
	case SystemFrench:
		return AnnuitySchedule(params)
	case SystemGerman:
		return DifferentialSchedule(params)
	default:
		return nil, invalidParam("system", fmt.Sprintf("неизвестная схема погашения %q", params.System))
	}
}

// ParseSystem разбирает название схемы погашения
func ParseSystem(name string) (AmortizationSystem, error) {
	switch name {
	case "french", "annuity", "frances":
		return SystemFrench, nil
	case "german", "differential", "aleman":
		return SystemGerman, nil
	}
	return "", invalidParam("system", fmt.Sprintf("неизвестная схема погашения %q", name))
}

func validateLoan(params LoanParams) error {
	if !utils.IsFinite(params.Principal) || params.Principal <= 0 {
		return invalidParam("principal", "сумма кредита должна быть положительной")
	}
	if params.TermMonths <= 0 {
		return invalidParam("term_months", "срок должен быть не меньше одного месяца")
	}
	if !utils.IsFinite(params.AnnualRatePercent) || params.AnnualRatePercent < 0 {
		return invalidParam("annual_rate_percent", "ставка не может быть отрицательной")
	}
	return nil
}

func monthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100.0 / 12.0
}

// clampBalance не дает остатку уйти в минус из-за погрешности вычислений
func clampBalance(balance float64) (float64, error) {
	if balance < -0.01 {
		return 0, fmt.Errorf("численная ошибка: остаток кредита стал отрицательным")
	}
	if balance < 0 {
		return 0, nil
	}
	return balance, nil
}

func summarize(params LoanParams, schedule []ScheduleEntry) *CalculationResult {
	totalPaid := 0.0
	for _, entry := range schedule {
		totalPaid += entry.Payment
	}

	summary := LoanSummary{
		Principal:         params.Principal,
		AnnualRatePercent: params.AnnualRatePercent,
		Months:            params.TermMonths,
		System:            params.System,
		TotalPaid:         totalPaid,
		TotalInterest:     totalPaid - params.Principal,
	}
	if len(schedule) > 0 {
		summary.MonthlyPayment = schedule[0].Payment
		summary.FirstMonthPayment = schedule[0].Payment
		summary.LastMonthPayment = schedule[len(schedule)-1].Payment
	}

	return &CalculationResult{
		Summary:  summary,
		Schedule: schedule,
	}
}

// Rounded возвращает копию результата, округленную до копеек для вывода
func (r *CalculationResult) Rounded() CalculationResult {
	s := r.Summary
	out := CalculationResult{
		Summary: LoanSummary{
			Principal:         utils.Round2(s.Principal),
			AnnualRatePercent: utils.Round2(s.AnnualRatePercent),
			Months:            s.Months,
			System:            s.System,
			MonthlyPayment:    utils.Round2(s.MonthlyPayment),
			FirstMonthPayment: utils.Round2(s.FirstMonthPayment),
			LastMonthPayment:  utils.Round2(s.LastMonthPayment),
			TotalPaid:         utils.Round2(s.TotalPaid),
			TotalInterest:     utils.Round2(s.TotalInterest),
		},
		Schedule: make([]ScheduleEntry, len(r.Schedule)),
	}
	for i, e := range r.Schedule {
		out.Schedule[i] = ScheduleEntry{
			Month:               e.Month,
			Payment:             utils.Round2(e.Payment),
			PrincipalComponent:  utils.Round2(e.PrincipalComponent),
			Interest:            utils.Round2(e.Interest),
			RemainingPrincipal:  utils.Round2(e.RemainingPrincipal),
			CumulativeInterest:  utils.Round2(e.CumulativeInterest),
			CumulativePrincipal: utils.Round2(e.CumulativePrincipal),
		}
	}
	return out
}
