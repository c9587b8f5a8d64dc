package projection

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cloud-ru/smb-finance-go/internal/models"
	"github.com/cloud-ru/smb-finance-go/pkg/utils"
)

// ErrInvalidHorizon возвращается при горизонте прогноза меньше одного месяца
var ErrInvalidHorizon = errors.New("projection horizon must be at least one month")

type monthTotals struct {
	income  decimal.Decimal
	expense decimal.Decimal
}

// Aggregate группирует транзакции по месяцам. Месяцы упорядочены по ключу
// YYYY-MM лексикографически, что совпадает с хронологическим порядком.
func Aggregate(txs []models.Transaction) ([]MonthlyAggregate, error) {
	byMonth := make(map[string]*monthTotals)
	for i, tx := range txs {
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}

		key := tx.YearMonth()
		totals, ok := byMonth[key]
		if !ok {
			totals = &monthTotals{}
			byMonth[key] = totals
		}
		if tx.Kind == models.KindIncome {
			totals.income = totals.income.Add(tx.Amount)
		} else {
			totals.expense = totals.expense.Add(tx.Amount)
		}
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	months := make([]MonthlyAggregate, 0, len(keys))
	for _, k := range keys {
		totals := byMonth[k]
		months = append(months, MonthlyAggregate{
			YearMonth: k,
			Income:    totals.income.InexactFloat64(),
			Expense:   totals.expense.InexactFloat64(),
			Profit:    totals.income.Sub(totals.expense).InexactFloat64(),
		})
	}
	return months, nil
}

// Summarize считает средние за наблюдаемые месяцы и темп роста прибыли
func Summarize(months []MonthlyAggregate) Summary {
	s := Summary{
		MonthsObserved: len(months),
		Months:         months,
	}
	if len(months) == 0 {
		s.Months = []MonthlyAggregate{}
		return s
	}

	for _, m := range months {
		s.TotalIncome += m.Income
		s.TotalExpense += m.Expense
	}
	count := float64(len(months))
	s.NetProfit = s.TotalIncome - s.TotalExpense
	s.AvgMonthlyIncome = s.TotalIncome / count
	s.AvgMonthlyExpense = s.TotalExpense / count
	s.CurrentProfit = s.AvgMonthlyIncome - s.AvgMonthlyExpense
	s.CurrentMarginPct = utils.PercentOf(s.NetProfit, s.TotalIncome)
	s.GrowthRatePct = GrowthRate(months)

	return s
}

// GrowthRate сравнивает прибыль двух последних наблюдаемых месяцев.
// Возвращает 0, если истории меньше двух месяцев или прибыль
// предпоследнего месяца равна нулю.
func GrowthRate(months []MonthlyAggregate) float64 {
	if len(months) < 2 {
		return 0
	}
	recent := months[len(months)-1].Profit
	previous := months[len(months)-2].Profit
	return utils.SafeDiv(recent-previous, math.Abs(previous)) * 100
}

// ProjectMonths строит прогноз на horizon месяцев вперед
func ProjectMonths(summary Summary, a Assumptions, horizon int) ([]ProjectedMonth, error) {
	if horizon < 1 {
		return nil, ErrInvalidHorizon
	}

	// исторический темп роста считается годовым и делится на 12 шагов
	monthlyGrowth := summary.GrowthRatePct / 100 / 12

	months := make([]ProjectedMonth, 0, horizon)
	for i := 1; i <= horizon; i++ {
		income := summary.AvgMonthlyIncome *
			utils.CompoundFactor(a.MonthlyPriceAdjustment, i) *
			utils.CompoundFactor(monthlyGrowth, i)
		expense := summary.AvgMonthlyExpense *
			utils.CompoundFactor(a.MonthlyCostAdjustment, i) *
			utils.CompoundFactor(-a.MonthlyEfficiencyGain, i)
		profit := income - expense

		var margin float64
		if income > 0 {
			margin = profit / income * 100
		}

		months = append(months, ProjectedMonth{
			MonthIndex:       i,
			ProjectedIncome:  income,
			ProjectedExpense: expense,
			ProjectedProfit:  profit,
			ProfitRealValue:  utils.SafeDiv(profit, utils.CompoundFactor(a.MonthlyGeneralInflation, i)),
			MarginPct:        margin,
		})
	}
	return months, nil
}

// Project агрегирует транзакции и строит прогноз. Функция чистая: при
// одинаковых входных данных результат одинаков. Срез txs не должен
// изменяться во время вызова.
func Project(txs []models.Transaction, a Assumptions, horizon int) (*Projection, error) {
	if horizon < 1 {
		return nil, ErrInvalidHorizon
	}

	aggregates, err := Aggregate(txs)
	if err != nil {
		return nil, err
	}
	summary := Summarize(aggregates)

	months, err := ProjectMonths(summary, a, horizon)
	if err != nil {
		return nil, err
	}

	return &Projection{
		Summary: summary,
		Months:  months,
	}, nil
}

// AverageMargin возвращает среднюю маржу прогнозных месяцев
func AverageMargin(months []ProjectedMonth) float64 {
	if len(months) == 0 {
		return 0
	}
	total := 0.0
	for _, m := range months {
		total += m.MarginPct
	}
	return total / float64(len(months))
}
