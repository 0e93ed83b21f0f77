package calculations

// InputRecord исходные данные расчета для одной единицы товара.
// Процентные поля уже переведены в десятичные дроби.
type InputRecord struct {
	UnitsSold        float64
	Logistics        float64
	Fulfillment      float64
	PaidAcceptance   float64
	WBCommissionRate float64
	StorageCost      float64
	Advertising      float64
	PurchasePrice    float64
	SellingPrice     float64
	RedemptionRate   float64
}

// FormInput данные в том виде, в котором их вводит пользователь:
// комиссия и процент выкупа указаны в процентах
type FormInput struct {
	UnitsSold             float64 `json:"unitsSold"`
	Logistics             float64 `json:"logistics"`
	Fulfillment           float64 `json:"fulfillment"`
	PaidAcceptance        float64 `json:"paidAcceptance"`
	WBCommissionPercent   float64 `json:"wbCommission"`
	StorageCost           float64 `json:"storageCost"`
	Advertising           float64 `json:"advertising"`
	PurchasePrice         float64 `json:"purchasePrice"`
	SellingPrice          float64 `json:"sellingPrice"`
	RedemptionRatePercent float64 `json:"redemptionRate"`
}

// Normalize переводит проценты в доли и возвращает InputRecord
func (f FormInput) Normalize() InputRecord {
	return InputRecord{
		UnitsSold:        f.UnitsSold,
		Logistics:        f.Logistics,
		Fulfillment:      f.Fulfillment,
		PaidAcceptance:   f.PaidAcceptance,
		WBCommissionRate: f.WBCommissionPercent / 100.0,
		StorageCost:      f.StorageCost,
		Advertising:      f.Advertising,
		PurchasePrice:    f.PurchasePrice,
		SellingPrice:     f.SellingPrice,
		RedemptionRate:   f.RedemptionRatePercent / 100.0,
	}
}

// ExampleFormInput возвращает пример заполнения формы
func ExampleFormInput() FormInput {
	return FormInput{
		UnitsSold:             100,
		Logistics:             25.50,
		Fulfillment:           15.00,
		PaidAcceptance:        8.00,
		WBCommissionPercent:   15.5,
		StorageCost:           5.00,
		Advertising:           50.00,
		PurchasePrice:         200.00,
		SellingPrice:          450.00,
		RedemptionRatePercent: 85,
	}
}
