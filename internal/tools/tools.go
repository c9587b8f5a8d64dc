package tools

import (
	"context"
	"fmt"
	"sort"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/smb-finance-go/internal/calculations"
	"github.com/cloud-ru/smb-finance-go/internal/config"
	"github.com/cloud-ru/smb-finance-go/internal/forecast"
	"github.com/cloud-ru/smb-finance-go/internal/metrics"
	"github.com/cloud-ru/smb-finance-go/internal/validators"
)

const metricsService = "tools"

// ToolHandler представляет обработчик инструмента
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// Tool - зарегистрированный инструмент
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Handler     ToolHandler `json:"-"`
}

// Registry возвращает все инструменты, отсортированные по имени
func Registry(cfg *config.Config, tracer trace.Tracer) []Tool {
	list := []Tool{
		{
			Name:        "loan_schedule_french",
			Description: "График аннуитетного (французского) кредита",
			Handler:     LoanScheduleFrenchHandler(cfg, tracer),
		},
		{
			Name:        "loan_schedule_german",
			Description: "График дифференцированного (немецкого) кредита",
			Handler:     LoanScheduleGermanHandler(cfg, tracer),
		},
		{
			Name:        "compare_loan_schedules",
			Description: "Сравнение французской и немецкой схем погашения",
			Handler:     CompareLoanSchedulesHandler(cfg, tracer),
		},
		{
			Name:        "loan_viability",
			Description: "Оценка доступности платежа и окупаемости проекта",
			Handler:     LoanViabilityHandler(cfg, tracer),
		},
		{
			Name:        "financial_projection",
			Description: "Прогноз доходов и расходов с учетом инфляции и рекомендации",
			Handler:     FinancialProjectionHandler(cfg, tracer),
		},
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}

// failValidation фиксирует ошибку проверки параметров в спане и метриках
func failValidation(span trace.Span, toolName string, err error) error {
	span.SetAttributes(attribute.String("error", "validation_error"))
	span.SetStatus(codes.Error, err.Error())
	metrics.ToolCalls.WithLabelValues(toolName, "validation_error").Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, "validation").Inc()
	metrics.APICalls.WithLabelValues(metricsService, toolName, "error").Inc()
	return fmt.Errorf("неверные параметры: %w", err)
}

// failCalculation фиксирует ошибку расчета
func failCalculation(span trace.Span, toolName string, err error) error {
	if IsClientError(err) {
		return failValidation(span, toolName, err)
	}
	span.SetAttributes(attribute.String("error", "calculation_error"))
	span.SetStatus(codes.Error, err.Error())
	metrics.ToolCalls.WithLabelValues(toolName, "error").Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, "calculation").Inc()
	metrics.APICalls.WithLabelValues(metricsService, toolName, "error").Inc()
	return fmt.Errorf("ошибка при выполнении расчета: %w", err)
}

func succeed(span trace.Span, toolName string) {
	span.SetAttributes(attribute.Bool("success", true))
	metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
	metrics.APICalls.WithLabelValues(metricsService, toolName, "success").Inc()
}

// loanParams извлекает и проверяет общие параметры кредита
func loanParams(cfg *config.Config, params map[string]interface{}) (calculations.LoanParams, error) {
	var lp calculations.LoanParams

	principal, err := floatParam(params, "principal")
	if err != nil {
		return lp, err
	}
	annualRatePercent, err := floatParam(params, "annual_rate_percent")
	if err != nil {
		return lp, err
	}
	months, err := intParam(params, "months")
	if err != nil {
		return lp, err
	}

	if err := validators.CheckPrincipal(cfg, principal); err != nil {
		return lp, err
	}
	if err := validators.CheckRate(cfg, annualRatePercent); err != nil {
		return lp, err
	}
	if err := validators.CheckMonths(cfg, months); err != nil {
		return lp, err
	}

	return calculations.LoanParams{
		Principal:         principal,
		TermMonths:        months,
		AnnualRatePercent: annualRatePercent,
	}, nil
}

func setLoanAttributes(span trace.Span, lp calculations.LoanParams) {
	span.SetAttributes(
		attribute.Float64("principal", lp.Principal),
		attribute.Float64("annual_rate_percent", lp.AnnualRatePercent),
		attribute.Int("months", lp.TermMonths),
		attribute.String("system", string(lp.System)),
	)
}

// LoanScheduleFrenchHandler обрабатывает запрос на расчет аннуитетного кредита
func LoanScheduleFrenchHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return loanScheduleHandler(cfg, tracer, "loan_schedule_french", calculations.SystemFrench)
}

// LoanScheduleGermanHandler обрабатывает запрос на расчет дифференцированного кредита
func LoanScheduleGermanHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return loanScheduleHandler(cfg, tracer, "loan_schedule_german", calculations.SystemGerman)
}

func loanScheduleHandler(cfg *config.Config, tracer trace.Tracer, toolName string, system calculations.AmortizationSystem) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		metrics.APICalls.WithLabelValues(metricsService, toolName, "started").Inc()

		lp, err := loanParams(cfg, params)
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		lp.System = system
		setLoanAttributes(span, lp)

		result, err := calculations.Schedule(lp)
		if err != nil {
			return nil, failCalculation(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Float64("monthly_payment", result.Summary.MonthlyPayment),
			attribute.Float64("total_paid", result.Summary.TotalPaid),
		)
		succeed(span, toolName)

		return result.Rounded(), nil
	}
}

// CompareLoanSchedulesHandler обрабатывает запрос на сравнение кредитов
func CompareLoanSchedulesHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "compare_loan_schedules"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		metrics.APICalls.WithLabelValues(metricsService, toolName, "started").Inc()

		lp, err := loanParams(cfg, params)
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		setLoanAttributes(span, lp)

		result, err := calculations.CompareLoans(lp.Principal, lp.AnnualRatePercent, lp.TermMonths)
		if err != nil {
			return nil, failCalculation(span, toolName, err)
		}

		span.SetAttributes(attribute.String("cheaper_system", string(result.Comparison.CheaperSystem)))
		succeed(span, toolName)

		return &calculations.ComparisonResult{
			Comparison: result.Comparison,
			French:     result.French.Rounded(),
			German:     result.German.Rounded(),
		}, nil
	}
}

// LoanViabilityHandler обрабатывает запрос на оценку жизнеспособности проекта
func LoanViabilityHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "loan_viability"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		metrics.APICalls.WithLabelValues(metricsService, toolName, "started").Inc()

		lp, err := loanParams(cfg, params)
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if lp.System, err = systemParam(params); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		capacity, err := floatParam(params, "monthly_payment_capacity")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		roi, err := floatParam(params, "minimum_annual_roi_percent")
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckCapacity(cfg, capacity); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckROI(cfg, roi); err != nil {
			return nil, failValidation(span, toolName, err)
		}

		setLoanAttributes(span, lp)
		span.SetAttributes(
			attribute.Float64("monthly_payment_capacity", capacity),
			attribute.Float64("minimum_annual_roi_percent", roi),
		)

		eval, err := calculations.EvaluateLoan(lp, calculations.ViabilityInput{
			MonthlyPaymentCapacity:  capacity,
			MinimumAnnualROIPercent: roi,
		})
		if err != nil {
			return nil, failCalculation(span, toolName, err)
		}

		span.SetAttributes(attribute.String("outcome", string(eval.Viability.Outcome)))
		metrics.ViabilityOutcomes.WithLabelValues(string(eval.Viability.Outcome)).Inc()
		succeed(span, toolName)

		return &calculations.LoanEvaluation{
			CalculationResult: eval.CalculationResult.Rounded(),
			Viability:         eval.Viability.Rounded(),
		}, nil
	}
}

// FinancialProjectionHandler обрабатывает запрос на прогноз по истории транзакций
func FinancialProjectionHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := "financial_projection"

		_, span := tracer.Start(ctx, toolName)
		defer span.End()

		metrics.APICalls.WithLabelValues(metricsService, toolName, "started").Inc()

		horizon, err := optionalInt(params, "horizon", cfg.DefaultHorizon)
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckHorizon(cfg, horizon); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		assumptions, err := assumptionsParam(params, cfg.Assumptions())
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckAssumptions(assumptions); err != nil {
			return nil, failValidation(span, toolName, err)
		}
		txs, err := transactionsParam(params)
		if err != nil {
			return nil, failValidation(span, toolName, err)
		}
		if err := validators.CheckTransactionCount(cfg, len(txs)); err != nil {
			return nil, failValidation(span, toolName, err)
		}

		span.SetAttributes(
			attribute.Int("horizon", horizon),
			attribute.Int("transactions", len(txs)),
			attribute.Float64("monthly_general_inflation", assumptions.MonthlyGeneralInflation),
		)

		report, err := forecast.Build(txs, assumptions, horizon)
		if err != nil {
			return nil, failCalculation(span, toolName, err)
		}

		for _, adv := range report.Recommendations {
			metrics.Advisories.WithLabelValues(string(adv.Severity), adv.Category).Inc()
		}
		span.SetAttributes(
			attribute.Int("months_observed", report.CurrentSummary.MonthsObserved),
			attribute.Float64("growth_rate_pct", report.CurrentSummary.GrowthRatePct),
			attribute.Int("recommendations", len(report.Recommendations)),
		)
		succeed(span, toolName)

		return report, nil
	}
}
