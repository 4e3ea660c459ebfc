package utils

import "math"

// RoundTo arredonda f para a quantidade de casas decimais informada
func RoundTo(f float64, places int) float64 {
	if f == 0 {
		return 0
	}

	scale := math.Pow(10, float64(places))
	return math.Round(f*scale) / scale
}
