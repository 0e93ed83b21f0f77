package tools

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/cloud-ru/unit-economics-go/internal/calculations"
	"github.com/cloud-ru/unit-economics-go/internal/config"
	"github.com/cloud-ru/unit-economics-go/internal/format"
	"github.com/cloud-ru/unit-economics-go/internal/logger"
	"github.com/cloud-ru/unit-economics-go/internal/metrics"
	"github.com/cloud-ru/unit-economics-go/internal/platform"
	"github.com/cloud-ru/unit-economics-go/internal/report"
	"github.com/cloud-ru/unit-economics-go/internal/validators"
	"github.com/cloud-ru/unit-economics-go/pkg/utils"
)

// Имена инструментов
const (
	ToolCalculate = "unit_economics_calculate"
	ToolShare     = "unit_economics_share"
	ToolExport    = "unit_economics_export"
	ToolExample   = "unit_economics_example"
)

// ToolHandler представляет обработчик инструмента
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// Registry набор инструментов по имени
type Registry map[string]ToolHandler

// NewRegistry регистрирует все инструменты калькулятора
func NewRegistry(cfg *config.Config, tracer trace.Tracer, exporter *platform.Exporter) Registry {
	return Registry{
		ToolCalculate: UnitEconomicsCalculateHandler(cfg, tracer),
		ToolShare:     UnitEconomicsShareHandler(cfg, tracer, exporter),
		ToolExport:    UnitEconomicsExportHandler(cfg, tracer, exporter),
		ToolExample:   UnitEconomicsExampleHandler(cfg, tracer),
	}
}

// Names возвращает отсортированные имена инструментов
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CalculationResponse результат расчета вместе с отформатированными строками
type CalculationResponse struct {
	Inputs   calculations.FormInput          `json:"inputs"`
	Unit     calculations.UnitBreakdown      `json:"unit"`
	Total    calculations.AggregateBreakdown `json:"total"`
	Rendered format.Rendered                 `json:"rendered"`
}

// DeliveryResponse результат отправки или экспорта
type DeliveryResponse struct {
	Delivery platform.Delivery `json:"delivery"`
	Payload  report.Payload    `json:"payload"`
}

// now подменяется в тестах
var now = time.Now

// UnitEconomicsCalculateHandler обрабатывает запрос на расчет юнит-экономики
func UnitEconomicsCalculateHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolCalculate

		_, span, log := startCall(ctx, tracer, toolName)
		defer span.End()

		in, result, err := runCalculation(cfg, span, toolName, params)
		if err != nil {
			log.Info("расчет отклонен", zap.Error(err))
			return nil, err
		}

		succeed(span, toolName)
		log.Debug("расчет выполнен", zap.Float64("margin_percent", result.Unit.MarginPercent))

		return newCalculationResponse(in, result), nil
	}
}

// UnitEconomicsShareHandler рассчитывает и отправляет короткое сообщение через платформу
func UnitEconomicsShareHandler(cfg *config.Config, tracer trace.Tracer, exporter *platform.Exporter) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolShare

		ctx, span, log := startCall(ctx, tracer, toolName)
		defer span.End()

		in, result, err := runCalculation(cfg, span, toolName, params)
		if err != nil {
			log.Info("расчет отклонен", zap.Error(err))
			return nil, err
		}

		snapshot := report.NewShareSnapshot(now(), in, format.Render(result))
		delivery, payload, err := exporter.Share(ctx, snapshot)
		if err != nil {
			fail(span, toolName, "delivery_error")
			return nil, fmt.Errorf("не удалось поделиться результатами: %w", err)
		}

		succeed(span, toolName)
		span.SetAttributes(attribute.String("destination", delivery.Destination))

		return DeliveryResponse{Delivery: delivery, Payload: payload}, nil
	}
}

// UnitEconomicsExportHandler рассчитывает и экспортирует подробный отчет
func UnitEconomicsExportHandler(cfg *config.Config, tracer trace.Tracer, exporter *platform.Exporter) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		toolName := ToolExport

		ctx, span, log := startCall(ctx, tracer, toolName)
		defer span.End()

		in, result, err := runCalculation(cfg, span, toolName, params)
		if err != nil {
			log.Info("расчет отклонен", zap.Error(err))
			return nil, err
		}

		snapshot := report.NewExportSnapshot(now(), in, format.Render(result))
		delivery, payload, err := exporter.Export(ctx, snapshot)
		if err != nil {
			fail(span, toolName, "export_error")
			return nil, fmt.Errorf("ошибка при экспорте результатов: %w", err)
		}

		succeed(span, toolName)
		span.SetAttributes(attribute.String("destination", delivery.Destination))

		return DeliveryResponse{Delivery: delivery, Payload: payload}, nil
	}
}

// UnitEconomicsExampleHandler возвращает пример входных данных и расчет по ним
func UnitEconomicsExampleHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
		toolName := ToolExample

		_, span, _ := startCall(ctx, tracer, toolName)
		defer span.End()

		in, result, err := runCalculation(cfg, span, toolName, ExampleParams())
		if err != nil {
			return nil, err
		}

		succeed(span, toolName)
		return newCalculationResponse(in, result), nil
	}
}

func startCall(ctx context.Context, tracer trace.Tracer, toolName string) (context.Context, trace.Span, *zap.Logger) {
	callID := uuid.NewString()

	ctx, span := tracer.Start(ctx, toolName)
	span.SetAttributes(attribute.String("call_id", callID))

	metrics.APICalls.WithLabelValues("tools", toolName, "started").Inc()

	return ctx, span, logger.With(zap.String("tool", toolName), zap.String("call_id", callID))
}

// runCalculation разбирает параметры, проверяет их и выполняет расчет
func runCalculation(cfg *config.Config, span trace.Span, toolName string,
	params map[string]interface{}) (calculations.FormInput, calculations.Result, error) {

	in, err := ParseFormInput(params)
	if err != nil {
		fail(span, toolName, "invalid_params")
		return calculations.FormInput{}, calculations.Result{}, err
	}

	span.SetAttributes(
		attribute.Float64("units_sold", in.UnitsSold),
		attribute.Float64("purchase_price", in.PurchasePrice),
		attribute.Float64("selling_price", in.SellingPrice),
		attribute.Float64("wb_commission_percent", in.WBCommissionPercent),
		attribute.Float64("redemption_rate_percent", in.RedemptionRatePercent),
	)

	if err := validators.ValidateFormInput(cfg, in); err != nil {
		fields := validators.InvalidFields(err)
		span.SetAttributes(attribute.StringSlice("invalid_fields", fields))
		for _, field := range fields {
			metrics.ValidationErrors.WithLabelValues(toolName, field).Inc()
		}
		fail(span, toolName, "validation_error")
		return calculations.FormInput{}, calculations.Result{}, fmt.Errorf("неверные параметры: %w", err)
	}

	result := calculations.Calculate(in.Normalize())

	metrics.UnitMargin.Observe(result.Unit.MarginPercent)
	span.SetAttributes(
		attribute.Float64("revenue", utils.Round2(result.Unit.Revenue)),
		attribute.Float64("profit_before_tax", utils.Round2(result.Unit.ProfitBeforeTax)),
		attribute.Float64("margin_percent", utils.Round2(result.Unit.MarginPercent)),
	)

	return in, result, nil
}

func newCalculationResponse(in calculations.FormInput, result calculations.Result) CalculationResponse {
	return CalculationResponse{
		Inputs:   in,
		Unit:     result.Unit,
		Total:    result.Total,
		Rendered: format.Render(result),
	}
}

func succeed(span trace.Span, toolName string) {
	span.SetAttributes(attribute.Bool("success", true))
	metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
	metrics.APICalls.WithLabelValues("tools", toolName, "success").Inc()
}

func fail(span trace.Span, toolName, reason string) {
	span.SetAttributes(attribute.String("error", reason))
	metrics.ToolCalls.WithLabelValues(toolName, reason).Inc()
	metrics.APICalls.WithLabelValues("tools", toolName, "error").Inc()
}
