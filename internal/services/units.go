package services

import "math"

// CelsiusToFahrenheit converts for display and export only; storage and all
// analysis stay in Celsius.
func CelsiusToFahrenheit(celsius float64) float64 {
	return celsius*9/5 + 32
}

func RoundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}
