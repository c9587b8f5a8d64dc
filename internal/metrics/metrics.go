package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls счетчик вызовов инструментов
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Общее количество вызовов инструментов",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"tool_name", "error_type"},
	)

	// APICalls счетчик вызовов API
	APICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_calls_total",
			Help: "Вызовы API инструментов",
		},
		[]string{"service", "endpoint", "status"},
	)

	// Advisories счетчик выданных рекомендаций
	Advisories = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisories_total",
			Help: "Рекомендации прогноза по уровню важности",
		},
		[]string{"severity", "category"},
	)

	// ViabilityOutcomes счетчик результатов оценки проектов
	ViabilityOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viability_outcomes_total",
			Help: "Результаты оценки жизнеспособности проектов",
		},
		[]string{"outcome"},
	)

	// HTTPRequestDuration длительность HTTP-запросов
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Длительность обработки HTTP-запросов",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "code"},
	)
)
