package calculations

import (
	"encoding/json"
	"fmt"
)

// AcquiringRate ставка эквайринга, применяется к выручке
const AcquiringRate = 0.025

// TaxScenario сценарий налогообложения с фиксированной ставкой от выручки
type TaxScenario int

const (
	TaxLow TaxScenario = iota
	TaxMedium
	TaxHigh

	scenarioCount
)

var taxRates = [scenarioCount]float64{
	TaxLow:    0.02,
	TaxMedium: 0.05,
	TaxHigh:   0.07,
}

var scenarioNames = [scenarioCount]string{
	TaxLow:    "low",
	TaxMedium: "medium",
	TaxHigh:   "high",
}

// TaxScenarios возвращает все сценарии в порядке возрастания ставки
func TaxScenarios() []TaxScenario {
	return []TaxScenario{TaxLow, TaxMedium, TaxHigh}
}

// Rate возвращает ставку налога в виде десятичной дроби
func (s TaxScenario) Rate() float64 {
	if !s.valid() {
		return 0
	}
	return taxRates[s]
}

// Percent возвращает ставку в процентах (2, 5, 7)
func (s TaxScenario) Percent() int {
	switch s {
	case TaxLow:
		return 2
	case TaxMedium:
		return 5
	case TaxHigh:
		return 7
	}
	return 0
}

func (s TaxScenario) String() string {
	if !s.valid() {
		return fmt.Sprintf("TaxScenario(%d)", int(s))
	}
	return scenarioNames[s]
}

func (s TaxScenario) valid() bool {
	return s >= TaxLow && s < scenarioCount
}

// ScenarioAmounts суммы по каждому налоговому сценарию
type ScenarioAmounts [scenarioCount]float64

// Get возвращает сумму для сценария
func (a ScenarioAmounts) Get(s TaxScenario) float64 {
	if !s.valid() {
		return 0
	}
	return a[s]
}

// Scale умножает все суммы на множитель
func (a ScenarioAmounts) Scale(factor float64) ScenarioAmounts {
	var out ScenarioAmounts
	for i := range a {
		out[i] = a[i] * factor
	}
	return out
}

// MarshalJSON сериализует суммы в виде {"low":…, "medium":…, "high":…}
func (a ScenarioAmounts) MarshalJSON() ([]byte, error) {
	m := make(map[string]float64, scenarioCount)
	for _, s := range TaxScenarios() {
		m[s.String()] = a[s]
	}
	return json.Marshal(m)
}

// UnmarshalJSON читает суммы из объекта с ключами low/medium/high
func (a *ScenarioAmounts) UnmarshalJSON(data []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	for _, s := range TaxScenarios() {
		a[s] = m[s.String()]
	}
	return nil
}
