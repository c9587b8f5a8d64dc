package calculations

// DifferentialSchedule рассчитывает график дифференцированного (немецкого) кредита
func DifferentialSchedule(params LoanParams) (*CalculationResult, error) {
	params.System = SystemGerman
	if err := validateLoan(params); err != nil {
		return nil, err
	}

	P := params.Principal
	n := params.TermMonths
	r := monthlyRate(params.AnnualRatePercent)

	principalComponentRaw := P / float64(n)
	remaining := P
	cumI := 0.0
	cumP := 0.0
	schedule := make([]ScheduleEntry, 0, n)

	for m := 1; m <= n; m++ {
		interest := remaining * r
		principalComponent := principalComponentRaw
		if m == n {
			principalComponent = remaining
		}
		payment := principalComponent + interest

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
