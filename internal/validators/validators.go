package validators

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/unit-economics-go/internal/calculations"
	"github.com/cloud-ru/unit-economics-go/internal/config"
	"github.com/cloud-ru/unit-economics-go/pkg/utils"
)

// FieldError ошибка валидации конкретного поля формы
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidatePositiveNumber проверяет, что число конечное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return &FieldError{Field: name, Err: errors.New("значение не является конечным числом")}
	}
	if value < minInclusive {
		return &FieldError{Field: name, Err: fmt.Errorf("значение должно быть ≥ %g", minInclusive)}
	}
	if value > maxInclusive {
		return &FieldError{Field: name, Err: fmt.Errorf("значение слишком велико (>%g)", maxInclusive)}
	}
	return nil
}

// CheckRequired проверяет обязательное поле: строго больше нуля
func CheckRequired(name string, value, maxInclusive float64) error {
	if utils.IsFinite(value) && value <= 0 {
		return &FieldError{Field: name, Err: errors.New("обязательное поле должно быть больше нуля")}
	}
	return ValidatePositiveNumber(name, value, 0, maxInclusive)
}

// CheckCost проверяет необязательную статью расходов
func CheckCost(cfg *config.Config, name string, value float64) error {
	return ValidatePositiveNumber(name, value, 0.0, cfg.MaxCost)
}

// CheckPercent проверяет процентное поле в диапазоне [0; 100]
func CheckPercent(name string, value float64) error {
	return ValidatePositiveNumber(name, value, 0.0, 100.0)
}

// ValidateFormInput проверяет все поля формы и возвращает ошибки по каждому
// некорректному полю сразу
func ValidateFormInput(cfg *config.Config, in calculations.FormInput) error {
	errs := []error{
		CheckRequired("unitsSold", in.UnitsSold, cfg.MaxUnitsSold),
		CheckRequired("purchasePrice", in.PurchasePrice, cfg.MaxPrice),
		CheckRequired("sellingPrice", in.SellingPrice, cfg.MaxPrice),
		CheckCost(cfg, "logistics", in.Logistics),
		CheckCost(cfg, "fulfillment", in.Fulfillment),
		CheckCost(cfg, "paidAcceptance", in.PaidAcceptance),
		CheckCost(cfg, "storageCost", in.StorageCost),
		CheckCost(cfg, "advertising", in.Advertising),
		CheckPercent("wbCommission", in.WBCommissionPercent),
		CheckPercent("redemptionRate", in.RedemptionRatePercent),
	}
	return errors.Join(errs...)
}

// InvalidFields возвращает имена полей, не прошедших проверку
func InvalidFields(err error) []string {
	if err == nil {
		return nil
	}

	var fields []string
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			fields = append(fields, InvalidFields(e)...)
		}
		return fields
	}

	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		fields = append(fields, fieldErr.Field)
	}
	return fields
}
