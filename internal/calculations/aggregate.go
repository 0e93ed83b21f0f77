package calculations

// ComputeAggregate масштабирует денежные показатели единицы на количество проданных единиц
func ComputeAggregate(in InputRecord, unit UnitBreakdown) AggregateBreakdown {
	n := in.UnitsSold

	return AggregateBreakdown{
		UnitsSold:       n,
		Revenue:         unit.Revenue * n,
		Commission:      unit.Commission * n,
		AcquiringFee:    unit.AcquiringFee * n,
		TotalCost:       unit.TotalCost * n,
		Taxes:           unit.Taxes.Scale(n),
		ProfitBeforeTax: unit.ProfitBeforeTax * n,
		Profits:         unit.Profits.Scale(n),
	}
}

// Calculate выполняет полный расчет: сначала единица, затем весь объем
func Calculate(in InputRecord) Result {
	unit := ComputeUnit(in)
	return Result{
		Unit:  unit,
		Total: ComputeAggregate(in, unit),
	}
}
