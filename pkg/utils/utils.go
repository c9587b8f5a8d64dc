package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

// Round2 округляет число до 2 знаков после запятой
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// CompoundFactor возвращает множитель сложного роста (1+rate)^periods
func CompoundFactor(rate float64, periods int) float64 {
	return math.Pow(1.0+rate, float64(periods))
}

// SafeDiv делит num на den, возвращая 0 при нулевом знаменателе
func SafeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// PercentOf возвращает part/whole*100 или 0, если whole == 0
func PercentOf(part, whole float64) float64 {
	return SafeDiv(part, whole) * 100
}

// FormatMoney форматирует сумму с двумя знаками после запятой
func FormatMoney(value float64) string {
	if !IsFinite(value) {
		return "0.00"
	}
	return decimal.NewFromFloat(value).StringFixed(2)
}
