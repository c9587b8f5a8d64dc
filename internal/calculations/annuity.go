package calculations

import (
	"fmt"

	"github.com/cloud-ru/smb-finance-go/pkg/utils"
)

// AnnuitySchedule рассчитывает график аннуитетного (французского) кредита
func AnnuitySchedule(params LoanParams) (*CalculationResult, error) {
	params.System = SystemFrench
	if err := validateLoan(params); err != nil {
		return nil, err
	}

	P := params.Principal
	n := params.TermMonths
	r := monthlyRate(params.AnnualRatePercent)

	var monthlyPayment float64
	if r == 0.0 {
		monthlyPayment = P / float64(n)
	} else {
		factor := utils.CompoundFactor(r, n)
		monthlyPayment = P * r * factor / (factor - 1.0)
	}
	if !utils.IsFinite(monthlyPayment) {
		return nil, fmt.Errorf("численная ошибка: платеж не является конечным числом")
	}

	schedule := make([]ScheduleEntry, 0, n)
	remaining := P
	cumI := 0.0
	cumP := 0.0

	for m := 1; m <= n; m++ {
		interest := remaining * r
		principalComponent := monthlyPayment - interest
		payment := monthlyPayment

		// последний платеж закрывает остаток целиком, расхождение округления уходит в проценты
		if m == n {
			principalComponent = remaining
			interest = payment - principalComponent
		}

		var err error
		remaining, err = clampBalance(remaining - principalComponent)
		if err != nil {
			return nil, err
		}
		cumI += interest
		cumP += principalComponent

		schedule = append(schedule, ScheduleEntry{
			Month:               m,
			Payment:             payment,
			PrincipalComponent:  principalComponent,
			Interest:            interest,
			RemainingPrincipal:  remaining,
			CumulativeInterest:  cumI,
			CumulativePrincipal: cumP,
		})
	}

	return summarize(params, schedule), nil
}
