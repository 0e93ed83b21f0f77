package utils

import (
	"math"
	"strconv"
)

// Round2 округляет число до 2 знаков после запятой
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// PlainNumber печатает число без лишних нулей: 450 -> "450", 25.5 -> "25.5"
func PlainNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
