package calculations

// UnitBreakdown результат расчета для одной единицы товара
type UnitBreakdown struct {
	Revenue         float64         `json:"revenue"`
	Commission      float64         `json:"wb_commission"`
	AcquiringFee    float64         `json:"acquiring"`
	TotalCost       float64         `json:"total_cost"`
	Taxes           ScenarioAmounts `json:"taxes"`
	ProfitBeforeTax float64         `json:"profit_before_tax"`
	Profits         ScenarioAmounts `json:"profits"`
	MarginPercent   float64         `json:"margin_percent"`
	Profitability   float64         `json:"profitability_percent"`
}

// AggregateBreakdown результат расчета для всего объема продаж.
// Маржинальность и рентабельность не масштабируются и берутся из UnitBreakdown.
type AggregateBreakdown struct {
	UnitsSold       float64         `json:"units_sold"`
	Revenue         float64         `json:"total_revenue"`
	Commission      float64         `json:"total_wb_commission"`
	AcquiringFee    float64         `json:"total_acquiring"`
	TotalCost       float64         `json:"total_costs"`
	Taxes           ScenarioAmounts `json:"total_taxes"`
	ProfitBeforeTax float64         `json:"total_profit_before_tax"`
	Profits         ScenarioAmounts `json:"total_profits"`
}

// Result полный результат расчета юнит-экономики
type Result struct {
	Unit  UnitBreakdown      `json:"unit"`
	Total AggregateBreakdown `json:"total"`
}
