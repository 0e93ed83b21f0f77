package tools

import (
	"fmt"

	"github.com/cloud-ru/unit-economics-go/internal/calculations"
)

// Имена параметров инструментов
const (
	ParamUnitsSold             = "units_sold"
	ParamLogistics             = "logistics"
	ParamFulfillment           = "fulfillment"
	ParamPaidAcceptance        = "paid_acceptance"
	ParamWBCommissionPercent   = "wb_commission_percent"
	ParamStorageCost           = "storage_cost"
	ParamAdvertising           = "advertising"
	ParamPurchasePrice         = "purchase_price"
	ParamSellingPrice          = "selling_price"
	ParamRedemptionRatePercent = "redemption_rate_percent"
)

// ParseFormInput извлекает данные формы из параметров инструмента.
// Отсутствующий параметр считается нулем, как пустое поле формы.
func ParseFormInput(params map[string]interface{}) (calculations.FormInput, error) {
	var in calculations.FormInput

	fields := []struct {
		name string
		dst  *float64
	}{
		{ParamUnitsSold, &in.UnitsSold},
		{ParamLogistics, &in.Logistics},
		{ParamFulfillment, &in.Fulfillment},
		{ParamPaidAcceptance, &in.PaidAcceptance},
		{ParamWBCommissionPercent, &in.WBCommissionPercent},
		{ParamStorageCost, &in.StorageCost},
		{ParamAdvertising, &in.Advertising},
		{ParamPurchasePrice, &in.PurchasePrice},
		{ParamSellingPrice, &in.SellingPrice},
		{ParamRedemptionRatePercent, &in.RedemptionRatePercent},
	}

	for _, f := range fields {
		raw, ok := params[f.name]
		if !ok || raw == nil {
			continue
		}
		value, ok := toFloat(raw)
		if !ok {
			return calculations.FormInput{}, fmt.Errorf("invalid parameter: %s", f.name)
		}
		*f.dst = value
	}

	return in, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// ExampleParams параметры с примером заполнения формы
func ExampleParams() map[string]interface{} {
	in := calculations.ExampleFormInput()
	return map[string]interface{}{
		ParamUnitsSold:             in.UnitsSold,
		ParamLogistics:             in.Logistics,
		ParamFulfillment:           in.Fulfillment,
		ParamPaidAcceptance:        in.PaidAcceptance,
		ParamWBCommissionPercent:   in.WBCommissionPercent,
		ParamStorageCost:           in.StorageCost,
		ParamAdvertising:           in.Advertising,
		ParamPurchasePrice:         in.PurchasePrice,
		ParamSellingPrice:          in.SellingPrice,
		ParamRedemptionRatePercent: in.RedemptionRatePercent,
	}
}
