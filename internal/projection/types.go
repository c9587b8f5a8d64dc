package projection

// Assumptions - экономические допущения прогноза. Все ставки - доли
// (0.02 = 2%) и применяются по сложному проценту.
type Assumptions struct {
	MonthlyPriceAdjustment  float64 `json:"monthly_price_adjustment"`
	MonthlyCostAdjustment   float64 `json:"monthly_cost_adjustment"`
	MonthlyGeneralInflation float64 `json:"monthly_general_inflation"`
	MonthlyEfficiencyGain   float64 `json:"monthly_efficiency_gain"`
	DevaluationExpectation  float64 `json:"devaluation_expectation"`
}

// DefaultAssumptions возвращает допущения по умолчанию
// (снимок аргентинской экономики, должен переопределяться конфигурацией)
func DefaultAssumptions() Assumptions {
	return Assumptions{
		MonthlyPriceAdjustment:  0.02,
		MonthlyCostAdjustment:   0.018,
		MonthlyGeneralInflation: 0.0167,
		MonthlyEfficiencyGain:   0.005,
	}
}

// MonthlyAggregate - суммы доходов и расходов за календарный месяц
type MonthlyAggregate struct {
	YearMonth string  `json:"year_month"`
	Income    float64 `json:"income"`
	Expense   float64 `json:"expense"`
	Profit    float64 `json:"profit"`
}

// Summary - текущие (исторические) показатели
type Summary struct {
	MonthsObserved    int                `json:"months_observed"`
	TotalIncome       float64            `json:"total_income"`
	TotalExpense      float64            `json:"total_expense"`
	NetProfit         float64            `json:"net_profit"`
	AvgMonthlyIncome  float64            `json:"avg_monthly_income"`
	AvgMonthlyExpense float64            `json:"avg_monthly_expense"`
	CurrentProfit     float64            `json:"current_profit"`
	CurrentMarginPct  float64            `json:"current_margin_pct"`
	GrowthRatePct     float64            `json:"growth_rate_pct"`
	Months            []MonthlyAggregate `json:"months"`
}

// ProjectedMonth - прогноз на один месяц вперед
type ProjectedMonth struct {
	MonthIndex       int     `json:"month_index"`
	ProjectedIncome  float64 `json:"projected_income"`
	ProjectedExpense float64 `json:"projected_expense"`
	ProjectedProfit  float64 `json:"projected_profit"`
	ProfitRealValue  float64 `json:"profit_real_value"`
	MarginPct        float64 `json:"margin_pct"`
}

// Projection - результат прогноза
type Projection struct {
	Summary Summary          `json:"current_summary"`
	Months  []ProjectedMonth `json:"projected_months"`
}
