// Package format готовит числа к показу пользователю: русская локаль,
// разделитель групп разрядов и десятичная запятая.
package format

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/cloud-ru/unit-economics-go/internal/calculations"
	"github.com/cloud-ru/unit-economics-go/pkg/utils"
)

const currencySuffix = " руб."

var printer = message.NewPrinter(language.Russian)

// Number форматирует число с фиксированным количеством знаков после запятой.
// Половина округляется от нуля.
func Number(value float64, decimals int) string {
	if !utils.IsFinite(value) {
		return fmt.Sprint(value)
	}
	rounded, _ := decimal.NewFromFloat(value).Round(int32(decimals)).Float64()
	return printer.Sprintf("%v", number.Decimal(rounded,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// Money форматирует денежную сумму в рублях
func Money(value float64) string {
	return Number(value, 2) + currencySuffix
}

// Percent форматирует уже умноженный на 100 показатель: 2.654 -> "2,65%"
func Percent(value float64) string {
	return Number(value, 2) + "%"
}

// Rendered строки результатов расчета в том виде, в котором их видит пользователь
type Rendered struct {
	Revenue       string `json:"revenue"`
	Commission    string `json:"wbCommission"`
	Acquiring     string `json:"acquiring"`
	TotalCost     string `json:"totalCost"`
	Tax2          string `json:"tax2"`
	Tax5          string `json:"tax5"`
	Tax7          string `json:"tax7"`
	Profit2       string `json:"profit2"`
	Profit5       string `json:"profit5"`
	Profit7       string `json:"profit7"`
	Margin        string `json:"margin"`
	Profitability string `json:"profitability"`

	TotalRevenue         string `json:"totalRevenue"`
	TotalCosts           string `json:"totalCosts"`
	TotalProfitBeforeTax string `json:"totalProfitBeforeTax"`
	BestTotalProfit      string `json:"bestTotalProfit"`
}

// Render форматирует результат расчета
func Render(result calculations.Result) Rendered {
	unit := result.Unit
	total := result.Total

	return Rendered{
		Revenue:       Money(unit.Revenue),
		Commission:    Money(unit.Commission),
		Acquiring:     Money(unit.AcquiringFee),
		TotalCost:     Money(unit.TotalCost),
		Tax2:          Money(unit.Taxes.Get(calculations.TaxLow)),
		Tax5:          Money(unit.Taxes.Get(calculations.TaxMedium)),
		Tax7:          Money(unit.Taxes.Get(calculations.TaxHigh)),
		Profit2:       Money(unit.Profits.Get(calculations.TaxLow)),
		Profit5:       Money(unit.Profits.Get(calculations.TaxMedium)),
		Profit7:       Money(unit.Profits.Get(calculations.TaxHigh)),
		Margin:        Percent(unit.MarginPercent),
		Profitability: Percent(unit.Profitability),

		TotalRevenue:         Money(total.Revenue),
		TotalCosts:           Money(total.TotalCost),
		TotalProfitBeforeTax: Money(total.ProfitBeforeTax),
		BestTotalProfit:      Money(total.Profits.Get(calculations.TaxLow)),
	}
}
