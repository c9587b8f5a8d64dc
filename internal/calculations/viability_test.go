package calculations

import (
	"math"
	"testing"
)

func TestEvaluateViability(t *testing.T) {
	loan, err := AnnuitySchedule(LoanParams{Principal: 1000000, AnnualRatePercent: 12, TermMonths: 12})
	if err != nil {
		t.Fatalf("AnnuitySchedule() error = %v", err)
	}
	payment := loan.Summary.MonthlyPayment

	tests := []struct {
		name    string
		input   ViabilityInput
		outcome ViabilityOutcome
	}{
		{
			name:    "affordable and profitable",
			input:   ViabilityInput{MonthlyPaymentCapacity: payment + 1, MinimumAnnualROIPercent: 30},
			outcome: OutcomeAffordableProfitable,
		},
		{
			name:    "affordable but unprofitable",
			input:   ViabilityInput{MonthlyPaymentCapacity: payment * 2, MinimumAnnualROIPercent: 1},
			outcome: OutcomeAffordableUnprofitable,
		},
		{
			name:    "unaffordable but profitable",
			input:   ViabilityInput{MonthlyPaymentCapacity: payment - 1, MinimumAnnualROIPercent: 30},
			outcome: OutcomeUnaffordableProfitable,
		},
		{
			name:    "unaffordable and unprofitable",
			input:   ViabilityInput{MonthlyPaymentCapacity: 0, MinimumAnnualROIPercent: 0},
			outcome: OutcomeUnaffordableUnprofitable,
		},
		{
			name:    "capacity equal to payment is affordable",
			input:   ViabilityInput{MonthlyPaymentCapacity: payment, MinimumAnnualROIPercent: 30},
			outcome: OutcomeAffordableProfitable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := EvaluateViability(loan.Summary, tt.input)
			if v.Outcome != tt.outcome {
				t.Errorf("expected outcome %s, got %s", tt.outcome, v.Outcome)
			}
			if v.Verdict == "" {
				t.Error("verdict should not be empty")
			}
		})
	}
}

func TestEvaluateViabilityReturnMath(t *testing.T) {
	loan, err := DifferentialSchedule(LoanParams{Principal: 600000, AnnualRatePercent: 20, TermMonths: 24})
	if err != nil {
		t.Fatalf("DifferentialSchedule() error = %v", err)
	}

	v := EvaluateViability(loan.Summary, ViabilityInput{MonthlyPaymentCapacity: 1e9, MinimumAnnualROIPercent: 15})

	wantReturn := 600000 * 0.15 * 2
	if math.Abs(v.ProjectedReturn-wantReturn) > 1e-6 {
		t.Errorf("expected projected return %f, got %f", wantReturn, v.ProjectedReturn)
	}
	if math.Abs(v.NetReturn-(wantReturn-loan.Summary.TotalInterest)) > 1e-6 {
		t.Errorf("unexpected net return %f", v.NetReturn)
	}
	if !v.CanAfford {
		t.Error("expected loan to be affordable")
	}
}

func TestEvaluateLoan(t *testing.T) {
	eval, err := EvaluateLoan(
		LoanParams{Principal: 1000000, AnnualRatePercent: 85, TermMonths: 12, System: SystemFrench},
		ViabilityInput{MonthlyPaymentCapacity: 50000, MinimumAnnualROIPercent: 200},
	)
	if err != nil {
		t.Fatalf("EvaluateLoan() error = %v", err)
	}
	if eval.Viability.CanAfford {
		t.Error("capacity below the fixed payment must be unaffordable")
	}
	if eval.Viability.Outcome != OutcomeUnaffordableProfitable {
		t.Errorf("expected %s, got %s", OutcomeUnaffordableProfitable, eval.Viability.Outcome)
	}

	if _, err := EvaluateLoan(LoanParams{Principal: -1, TermMonths: 12, System: SystemFrench}, ViabilityInput{}); err == nil {
		t.Error("expected error for negative principal")
	}
}
