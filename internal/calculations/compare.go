package calculations

import (
	"github.com/cloud-ru/smb-finance-go/pkg/utils"
)

// CompareLoans сравнивает аннуитетный и дифференцированный кредиты
func CompareLoans(principal, annualRatePercent float64, months int) (*ComparisonResult, error) {
	params := LoanParams{
		Principal:         principal,
		TermMonths:        months,
		AnnualRatePercent: annualRatePercent,
	}

	french, err := AnnuitySchedule(params)
	if err != nil {
		return nil, err
	}
	german, err := DifferentialSchedule(params)
	if err != nil {
		return nil, err
	}

	fs := french.Summary
	gs := german.Summary

	comparison := LoanComparison{
		TotalPaidDiff:     utils.Round2(fs.TotalPaid - gs.TotalPaid),
		InterestDiff:      utils.Round2(fs.TotalInterest - gs.TotalInterest),
		FirstPaymentDiff:  utils.Round2(gs.FirstMonthPayment - fs.FirstMonthPayment),
		FrenchOverpayment: utils.Round2(utils.PercentOf(fs.TotalInterest, principal)),
		GermanOverpayment: utils.Round2(utils.PercentOf(gs.TotalInterest, principal)),
	}

	// Сравниваем по округленной разнице, чтобы не реагировать на погрешность
	switch {
	case comparison.TotalPaidDiff > 0:
		comparison.CheaperSystem = SystemGerman
		comparison.Savings = comparison.TotalPaidDiff
		comparison.Recommendation = "Немецкая схема выгоднее по общей сумме выплат. Однако первые платежи будут выше, чем при французской схеме."
	case comparison.TotalPaidDiff < 0:
		comparison.CheaperSystem = SystemFrench
		comparison.Savings = -comparison.TotalPaidDiff
		comparison.Recommendation = "Французская схема выгоднее по общей сумме выплат. Платежи одинаковые каждый месяц, что удобно для планирования."
	default:
		comparison.Recommendation = "Обе схемы дают одинаковую общую сумму выплат."
	}

	return &ComparisonResult{
		Comparison: comparison,
		French:     *french,
		German:     *german,
	}, nil
}
