package calculations

// AmortizationSystem определяет схему погашения кредита
type AmortizationSystem string

const (
	// SystemFrench - аннуитетная схема (равные платежи)
	SystemFrench AmortizationSystem = "french"
	// SystemGerman - дифференцированная схема (равные доли основного долга)
	SystemGerman AmortizationSystem = "german"
)

// LoanParams описывает параметры кредита
type LoanParams struct {
	Principal         float64            `json:"principal"`
	TermMonths        int                `json:"term_months"`
	AnnualRatePercent float64            `json:"annual_rate_percent"`
	System            AmortizationSystem `json:"system"`
}

// ScheduleEntry представляет одну запись в графике платежей
type ScheduleEntry struct {
	Month               int     `json:"month"`
	Payment             float64 `json:"payment"`
	PrincipalComponent  float64 `json:"principal_component"`
	Interest            float64 `json:"interest"`
	RemainingPrincipal  float64 `json:"remaining_principal"`
	CumulativeInterest  float64 `json:"cumulative_interest"`
	CumulativePrincipal float64 `json:"cumulative_principal"`
}

// LoanSummary представляет сводку по кредиту
type LoanSummary struct {
	Principal         float64            `json:"principal"`
	AnnualRatePercent float64            `json:"annual_rate_percent"`
	Months            int                `json:"months"`
	System            AmortizationSystem `json:"system"`
	MonthlyPayment    float64            `json:"monthly_payment"`
	FirstMonthPayment float64            `json:"first_month_payment"`
	LastMonthPayment  float64            `json:"last_month_payment"`
	TotalPaid         float64            `json:"total_paid"`
	TotalInterest     float64            `json:"total_interest"`
}

// CalculationResult представляет результат расчета кредита
type CalculationResult struct {
	Summary  LoanSummary     `json:"summary"`
	Schedule []ScheduleEntry `json:"schedule"`
}

// ComparisonResult представляет результат сравнения кредитов
type ComparisonResult struct {
	Comparison LoanComparison    `json:"comparison"`
	French     CalculationResult `json:"french"`
	German     CalculationResult `json:"german"`
}

// LoanComparison - ключевые отличия двух схем
type LoanComparison struct {
	TotalPaidDiff     float64            `json:"total_paid_diff"`
	InterestDiff      float64            `json:"interest_diff"`
	CheaperSystem     AmortizationSystem `json:"cheaper_system,omitempty"`
	Savings           float64            `json:"savings"`
	FirstPaymentDiff  float64            `json:"first_payment_diff"`
	FrenchOverpayment float64            `json:"french_overpayment_percent"`
	GermanOverpayment float64            `json:"german_overpayment_percent"`
	Recommendation    string             `json:"recommendation"`
}

// ViabilityInput содержит внешние допущения для оценки проекта
type ViabilityInput struct {
	MonthlyPaymentCapacity  float64 `json:"monthly_payment_capacity"`
	MinimumAnnualROIPercent float64 `json:"minimum_annual_roi_percent"`
}

// ViabilityOutcome - одно из четырех взаимоисключающих состояний
type ViabilityOutcome string

const (
	OutcomeAffordableProfitable     ViabilityOutcome = "affordable_profitable"
	OutcomeAffordableUnprofitable   ViabilityOutcome = "affordable_unprofitable"
	OutcomeUnaffordableProfitable   ViabilityOutcome = "unaffordable_profitable"
	OutcomeUnaffordableUnprofitable ViabilityOutcome = "unaffordable_unprofitable"
)

// Viability представляет результат проверки жизнеспособности проекта
type Viability struct {
	Outcome                ViabilityOutcome `json:"outcome"`
	CanAfford              bool             `json:"can_afford"`
	Profitable             bool             `json:"profitable"`
	MonthlyPayment         float64          `json:"monthly_payment"`
	MonthlyPaymentCapacity float64          `json:"monthly_payment_capacity"`
	ProjectedReturn        float64          `json:"projected_return"`
	TotalInterest          float64          `json:"total_interest"`
	NetReturn              float64          `json:"net_return"`
	Verdict                string           `json:"verdict"`
}

// LoanEvaluation объединяет график и оценку жизнеспособности
type LoanEvaluation struct {
	CalculationResult
	Viability Viability `json:"viability"`
}
