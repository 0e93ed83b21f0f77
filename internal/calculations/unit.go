package calculations

// ComputeUnit рассчитывает юнит-экономику одной единицы товара.
// Отрицательная прибыль допустима и означает убыток.
func ComputeUnit(in InputRecord) UnitBreakdown {
	// Выручка с учетом процента выкупа
	revenue := in.SellingPrice * in.RedemptionRate

	commission := revenue * in.WBCommissionRate
	acquiring := revenue * AcquiringRate

	totalCost := in.PurchasePrice + in.Logistics + in.Fulfillment +
		in.PaidAcceptance + in.StorageCost + in.Advertising

	var taxes ScenarioAmounts
	for _, s := range TaxScenarios() {
		taxes[s] = revenue * s.Rate()
	}

	profitBeforeTax := revenue - commission - acquiring - totalCost

	var profits ScenarioAmounts
	for _, s := range TaxScenarios() {
		profits[s] = profitBeforeTax - taxes[s]
	}

	// При нулевом знаменателе показатель равен 0, а не NaN/Inf
	margin := 0.0
	if revenue > 0 {
		margin = (profitBeforeTax / revenue) * 100
	}
	profitability := 0.0
	if totalCost > 0 {
		profitability = (profitBeforeTax / totalCost) * 100
	}

	return UnitBreakdown{
		Revenue:         revenue,
		Commission:      commission,
		AcquiringFee:    acquiring,
		TotalCost:       totalCost,
		Taxes:           taxes,
		ProfitBeforeTax: profitBeforeTax,
		Profits:         profits,
		MarginPercent:   margin,
		Profitability:   profitability,
	}
}
