package emissions

import "errors"

// Input kinds accepted by Estimate.
const (
	KindDistance = "Distance"
	KindTime     = "Time"
)

// averageSpeedKmh converts a travel time in minutes into kilometres.
const averageSpeedKmh = 40.0

var ErrUnknownMode = errors.New("unknown transport mode")

// Combustion factors are kg CO2 per km.
var combustionFactors = map[string]float64{
	"3-Wheeler CNG":      0.10768,
	"2-Wheeler (Petrol)": 0.04911,
	"4-Wheeler (Petrol)": 0.187421,
	"4-Wheeler (CNG)":    0.068,
	"Bus (Diesel)":       0.015161,
}

// Electric factors are kg CO2-equivalent per km of consumption.
var electricConsumption = map[string]float64{
	"Electric 2-Wheeler": 0.0319,
	"Electric 4-Wheeler": 0.1277,
}

// Factor returns the per-kilometre emission factor for a transport mode.
func Factor(mode string) (float64, bool) {
	if f, ok := combustionFactors[mode]; ok {
		return f, true
	}
	f, ok := electricConsumption[mode]
	return f, ok
}

// Modes lists every known transport mode, combustion first.
func Modes() []string {
	return []string{
		"3-Wheeler CNG",
		"2-Wheeler (Petrol)",
		"4-Wheeler (Petrol)",
		"4-Wheeler (CNG)",
		"Bus (Diesel)",
		"Electric 2-Wheeler",
		"Electric 4-Wheeler",
	}
}

// DistanceKm normalizes an input quantity to kilometres. For KindTime the
// quantity is minutes travelled at the assumed average speed; anything else
// is already a distance.
func DistanceKm(quantity float64, kind string) float64 {
	if kind == KindTime {
		return quantity / 60 * averageSpeedKmh
	}
	return quantity
}

// Estimate computes total emissions in kg for a trip. frequency multiplies
// the result for repeated trips. An unrecognized mode returns ErrUnknownMode,
// never a zero estimate. No rounding is applied; that is left to callers.
func Estimate(mode string, quantity float64, kind string, frequency int) (float64, error) {
	factor, ok := Factor(mode)
	if !ok {
		return 0, ErrUnknownMode
	}
	return DistanceKm(quantity, kind) * factor * float64(frequency), nil
}
