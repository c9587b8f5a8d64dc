package projection

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloud-ru/smb-finance-go/internal/models"
)

func tx(date string, amount float64, kind models.Kind) models.Transaction {
	d, err := time.Parse(models.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return models.NewTransaction(d, decimal.NewFromFloat(amount), kind, "")
}

func TestAggregateSortsByYearMonthKey(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-10-05", 300, models.KindIncome),
		tx("2023-12-31", 100, models.KindIncome),
		tx("2024-02-01", 50, models.KindExpense),
		tx("2024-01-15", 200, models.KindIncome),
		tx("2024-10-20", 20, models.KindExpense),
		tx("2024-10-21", 0.1, models.KindIncome),
		tx("2024-10-22", 0.2, models.KindIncome),
	}

	months, err := Aggregate(txs)
	require.NoError(t, err)

	keys := make([]string, 0, len(months))
	for _, m := range months {
		keys = append(keys, m.YearMonth)
	}
	assert.Equal(t, []string{"2023-12", "2024-01", "2024-02", "2024-10"}, keys)

	oct := months[3]
	assert.Equal(t, 300.3, oct.Income)
	assert.Equal(t, 20.0, oct.Expense)
	assert.InDelta(t, 280.3, oct.Profit, 1e-9)
}

func TestAggregateRejectsInvalidTransaction(t *testing.T) {
	bad := tx("2024-01-01", 10, models.KindIncome)
	bad.Amount = decimal.NewFromInt(-10)

	_, err := Aggregate([]models.Transaction{bad})
	require.ErrorIs(t, err, models.ErrInvalidTransaction)

	_, err = Project([]models.Transaction{bad}, DefaultAssumptions(), 3)
	require.ErrorIs(t, err, models.ErrInvalidTransaction)
}

func TestProjectSingleMonthHistory(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-05-02", 70000, models.KindIncome),
		tx("2024-05-20", 30000, models.KindIncome),
		tx("2024-05-21", 60000, models.KindExpense),
	}

	p, err := Project(txs, DefaultAssumptions(), 12)
	require.NoError(t, err)

	assert.Equal(t, 1, p.Summary.MonthsObserved)
	assert.Equal(t, 0.0, p.Summary.GrowthRatePct)
	assert.Equal(t, 100000.0, p.Summary.AvgMonthlyIncome)
	assert.Equal(t, 60000.0, p.Summary.AvgMonthlyExpense)
	assert.InDelta(t, 40.0, p.Summary.CurrentMarginPct, 1e-9)
	assert.Len(t, p.Months, 12)
}

func TestGrowthRateUsesLastTwoMonths(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-01-10", 500000, models.KindIncome),
		tx("2024-02-10", 30000, models.KindIncome),
		tx("2024-02-11", 20000, models.KindExpense),
		tx("2024-03-10", 40000, models.KindIncome),
		tx("2024-03-11", 25000, models.KindExpense),
	}

	p, err := Project(txs, DefaultAssumptions(), 1)
	require.NoError(t, err)
	assert.InDelta(t, 50.0, p.Summary.GrowthRatePct, 1e-9)
}

func TestGrowthRateEdgeCases(t *testing.T) {
	assert.Equal(t, 0.0, GrowthRate(nil))
	assert.Equal(t, 0.0, GrowthRate([]MonthlyAggregate{{YearMonth: "2024-01", Profit: 10}}))
	assert.Equal(t, 0.0, GrowthRate([]MonthlyAggregate{
		{YearMonth: "2024-01", Profit: 0},
		{YearMonth: "2024-02", Profit: 5000},
	}))
	// отрицательная база: рост считается от модуля
	assert.InDelta(t, 150.0, GrowthRate([]MonthlyAggregate{
		{YearMonth: "2024-01", Profit: -1000},
		{YearMonth: "2024-02", Profit: 500},
	}), 1e-9)
}

func TestProjectEmptyTransactions(t *testing.T) {
	p, err := Project(nil, DefaultAssumptions(), 12)
	require.NoError(t, err)

	assert.Equal(t, 0, p.Summary.MonthsObserved)
	assert.NotNil(t, p.Summary.Months)
	require.Len(t, p.Months, 12)
	for i, m := range p.Months {
		assert.Equal(t, i+1, m.MonthIndex)
		assert.Zero(t, m.ProjectedIncome)
		assert.Zero(t, m.ProjectedExpense)
		assert.Zero(t, m.ProjectedProfit)
		assert.Zero(t, m.ProfitRealValue)
		assert.Zero(t, m.MarginPct)
	}
}

func TestProjectMonthsFormulas(t *testing.T) {
	summary := Summary{AvgMonthlyIncome: 1000, AvgMonthlyExpense: 500, GrowthRatePct: 24}
	a := DefaultAssumptions()

	months, err := ProjectMonths(summary, a, 3)
	require.NoError(t, err)
	require.Len(t, months, 3)

	for _, m := range months {
		i := float64(m.MonthIndex)
		income := 1000 * math.Pow(1.02, i) * math.Pow(1.02, i)
		expense := 500 * math.Pow(1.018, i) * math.Pow(0.995, i)
		profit := income - expense

		assert.InDelta(t, income, m.ProjectedIncome, 1e-9)
		assert.InDelta(t, expense, m.ProjectedExpense, 1e-9)
		assert.InDelta(t, profit, m.ProjectedProfit, 1e-9)
		assert.InDelta(t, profit/math.Pow(1.0167, i), m.ProfitRealValue, 1e-9)
		assert.InDelta(t, profit/income*100, m.MarginPct, 1e-9)
	}
}

func TestProjectMonthsZeroIncomeMargin(t *testing.T) {
	months, err := ProjectMonths(Summary{AvgMonthlyExpense: 800}, DefaultAssumptions(), 2)
	require.NoError(t, err)
	for _, m := range months {
		assert.Zero(t, m.MarginPct)
		assert.False(t, math.IsNaN(m.MarginPct) || math.IsInf(m.MarginPct, 0))
		assert.Less(t, m.ProjectedProfit, 0.0)
	}
}

func TestProjectRejectsBadHorizon(t *testing.T) {
	_, err := Project(nil, DefaultAssumptions(), 0)
	require.ErrorIs(t, err, ErrInvalidHorizon)

	_, err = ProjectMonths(Summary{}, DefaultAssumptions(), -3)
	require.ErrorIs(t, err, ErrInvalidHorizon)
}

func TestProjectIsDeterministic(t *testing.T) {
	txs := []models.Transaction{
		tx("2024-03-01", 1234.56, models.KindIncome),
		tx("2024-01-01", 999.99, models.KindIncome),
		tx("2024-02-01", 100.01, models.KindExpense),
		tx("2024-03-09", 77.7, models.KindExpense),
	}
	a := Assumptions{
		MonthlyPriceAdjustment:  0.03,
		MonthlyCostAdjustment:   0.025,
		MonthlyGeneralInflation: 0.02,
		MonthlyEfficiencyGain:   0.01,
	}

	first, err := Project(txs, a, 6)
	require.NoError(t, err)
	second, err := Project(txs, a, 6)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAverageMargin(t *testing.T) {
	assert.Zero(t, AverageMargin(nil))
	assert.InDelta(t, 15.0, AverageMargin([]ProjectedMonth{{MarginPct: 10}, {MarginPct: 20}}), 1e-12)
}
