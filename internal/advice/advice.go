// Package advice содержит набор правил, формирующих рекомендации по
// результатам прогноза. Правила независимы и выполняются в фиксированном
// порядке; порядок рекомендаций в ответе совпадает с порядком правил.
package advice

import (
	"fmt"
	"math"

	"github.com/cloud-ru/smb-finance-go/internal/projection"
	"github.com/cloud-ru/smb-finance-go/pkg/utils"
)

// Severity - уровень важности рекомендации
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

const (
	liquidityThreshold        = 0.85
	marginDeclineRatio        = 0.9
	investmentMarginPct       = 15.0
	investmentExpenseMultiple = 2.0
	devaluationThreshold      = 0.10
)

// Advisory - одна рекомендация
type Advisory struct {
	Severity          Severity `json:"severity"`
	Category          string   `json:"category"`
	Message           string   `json:"message"`
	RecommendedAction string   `json:"recommended_action"`
}

// Input - данные, по которым работают правила
type Input struct {
	Summary     projection.Summary
	Months      []projection.ProjectedMonth
	Assumptions projection.Assumptions
}

// Rule возвращает рекомендацию и признак срабатывания
type Rule func(in Input) (Advisory, bool)

// Rules - правила в порядке выполнения
var Rules = []Rule{
	Liquidity,
	ProfitabilityTrend,
	MarginTrend,
	InvestmentCapacity,
	PricingStrategy,
	CurrencyRisk,
}

// Evaluate выполняет все правила по порядку
func Evaluate(summary projection.Summary, months []projection.ProjectedMonth, a projection.Assumptions) []Advisory {
	in := Input{Summary: summary, Months: months, Assumptions: a}

	advisories := make([]Advisory, 0, len(Rules))
	for _, rule := range Rules {
		if adv, ok := rule(in); ok {
			advisories = append(advisories, adv)
		}
	}
	return advisories
}

// Liquidity срабатывает, если расходы съедают больше 85% доходов
func Liquidity(in Input) (Advisory, bool) {
	s := in.Summary
	if s.TotalExpense <= 0 {
		return Advisory{}, false
	}
	if s.TotalIncome > 0 && s.TotalExpense/s.TotalIncome <= liquidityThreshold {
		return Advisory{}, false
	}

	return Advisory{
		Severity: SeverityWarning,
		Category: "Ликвидность",
		Message: fmt.Sprintf("Расходы составляют %.1f%% доходов, запас ликвидности минимален.",
			utils.PercentOf(s.TotalExpense, s.TotalIncome)),
		RecommendedAction: "Пересмотрите постоянные расходы и сформируйте резерв на 2-3 месяца.",
	}, true
}

// ProfitabilityTrend сравнивает прибыль последнего прогнозного месяца с текущей
func ProfitabilityTrend(in Input) (Advisory, bool) {
	if len(in.Months) == 0 {
		return Advisory{}, false
	}

	current := in.Summary.CurrentProfit
	last := in.Months[len(in.Months)-1].ProjectedProfit
	growth := utils.SafeDiv(last-current, math.Abs(current))
	inflation := in.Assumptions.MonthlyGeneralInflation

	switch {
	case current == 0 && last < 0:
		return Advisory{
			Severity:          SeverityDanger,
			Category:          "Рентабельность",
			Message:           fmt.Sprintf("Через %d мес. бизнес уйдет в убыток %s.", len(in.Months), utils.FormatMoney(-last)),
			RecommendedAction: "Проверьте структуру затрат и пересмотрите цены раньше, чем вырастут издержки.",
		}, true
	case growth < 0:
		return Advisory{
			Severity:          SeverityDanger,
			Category:          "Рентабельность",
			Message:           fmt.Sprintf("Прибыль через %d мес. снизится на %.1f%%.", len(in.Months), -growth*100),
			RecommendedAction: "Проверьте структуру затрат и пересмотрите цены раньше, чем вырастут издержки.",
		}, true
	case growth > 0 && growth < inflation:
		return Advisory{
			Severity: SeverityWarning,
			Category: "Рентабельность",
			Message: fmt.Sprintf("Прибыль растет на %.1f%%, но медленнее месячной инфляции (%.2f%%): реальная прибыль падает.",
				growth*100, inflation*100),
			RecommendedAction: "Индексируйте цены не реже инфляции и ищите источники роста объема продаж.",
		}, true
	}
	return Advisory{}, false
}

// MarginTrend сравнивает среднюю прогнозную маржу с текущей
func MarginTrend(in Input) (Advisory, bool) {
	if len(in.Months) == 0 {
		return Advisory{}, false
	}

	current := in.Summary.CurrentMarginPct
	projected := projection.AverageMargin(in.Months)

	switch {
	case projected > current:
		return Advisory{
			Severity:          SeveritySuccess,
			Category:          "Маржа",
			Message:           fmt.Sprintf("Средняя маржа вырастет с %.1f%% до %.1f%%.", current, projected),
			RecommendedAction: "Сохраняйте текущую ценовую политику и контроль затрат.",
		}, true
	case projected < current*marginDeclineRatio:
		return Advisory{
			Severity:          SeverityWarning,
			Category:          "Маржа",
			Message:           fmt.Sprintf("Средняя маржа снизится с %.1f%% до %.1f%%.", current, projected),
			RecommendedAction: "Пересмотрите цены поставщиков и наценку на товары с наименьшей маржой.",
		}, true
	}
	return Advisory{}, false
}

// InvestmentCapacity отмечает возможность для инвестиций
func InvestmentCapacity(in Input) (Advisory, bool) {
	s := in.Summary
	projected := projection.AverageMargin(in.Months)
	if s.NetProfit <= s.AvgMonthlyExpense*investmentExpenseMultiple || projected <= investmentMarginPct {
		return Advisory{}, false
	}

	return Advisory{
		Severity: SeveritySuccess,
		Category: "Инвестиции",
		Message: fmt.Sprintf("Чистая прибыль %s превышает два месяца расходов при марже %.1f%%.",
			utils.FormatMoney(s.NetProfit), projected),
		RecommendedAction: "Рассмотрите вложения в запасы или оборудование; оцените кредит в калькуляторе.",
	}, true
}

// PricingStrategy - постоянное напоминание о ценовой политике
func PricingStrategy(in Input) (Advisory, bool) {
	return Advisory{
		Severity: SeverityInfo,
		Category: "Ценообразование",
		Message: fmt.Sprintf("Заложенная индексация цен %.1f%% в месяц при росте издержек %.1f%%.",
			in.Assumptions.MonthlyPriceAdjustment*100, in.Assumptions.MonthlyCostAdjustment*100),
		RecommendedAction: "Обновляйте прайс-лист регулярно и отслеживайте цены конкурентов.",
	}, true
}

// CurrencyRisk срабатывает при ожидаемой девальвации выше 10%
func CurrencyRisk(in Input) (Advisory, bool) {
	expected := in.Assumptions.DevaluationExpectation
	if expected <= devaluationThreshold {
		return Advisory{}, false
	}

	return Advisory{
		Severity:          SeverityWarning,
		Category:          "Валютный риск",
		Message:           fmt.Sprintf("Ожидаемая девальвация %.1f%% превышает порог %.0f%%.", expected*100, devaluationThreshold*100),
		RecommendedAction: "Зафиксируйте цены поставщиков заранее и держите часть резерва в твердой валюте.",
	}, true
}
