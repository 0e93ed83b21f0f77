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

	// ValidationErrors счетчик некорректно заполненных полей
	ValidationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_errors_total",
			Help: "Количество ошибок валидации по полям",
		},
		[]string{"tool_name", "field"},
	)

	// Exports счетчик экспортов и отправок результатов
	Exports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "exports_total",
			Help: "Экспорт результатов расчета",
		},
		[]string{"destination", "status"},
	)

	// UnitMargin распределение маржинальности рассчитанных товаров
	UnitMargin = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "unit_margin_percent",
			Help:    "Маржинальность единицы товара, %",
			Buckets: []float64{-50, -20, -10, 0, 5, 10, 20, 30, 50},
		},
	)

	// APICalls счетчик вызовов API
	APICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_calls_total",
			Help: "Вызовы API инструментов",
		},
		[]string{"service", "endpoint", "status"},
	)
)
