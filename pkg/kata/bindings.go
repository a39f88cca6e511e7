package kata

import "go.uber.org/zap"

const (
	cityPopulation              int32 = 915_000
	indoorTemperatureFahrenheit int32 = 72
	freezeLevelFahrenheit       int32 = 32
	ThermostatCoreIdentifier          = "THERMOSTAT_CORE"
)

func CityPopulation() int32 {
	population := cityPopulation
	return population
}

// InitTemperature is the default indoor temperature in Fahrenheit.
func InitTemperature() int32 {
	return indoorTemperatureFahrenheit
}

// FreezeLevel is the freezing point in Fahrenheit.
func FreezeLevel() int32 {
	return freezeLevelFahrenheit
}

func ConstIdentifier() string {
	return ThermostatCoreIdentifier
}

// ToggleAlarmState flips a local copy twice, so the caller always gets the
// original state back.
func ToggleAlarmState(initial bool) bool {
	state := initial
	state = !state
	state = !state
	return state
}

func TogglePowerState(current bool) bool {
	next := current
	next = !next
	return next
}

// ComputeInterestRate returns gain/principal. A zero principal yields ±Inf or
// NaN, as float division does.
func ComputeInterestRate(principal, gain float64) float64 {
	rate := gain / principal
	return rate
}

// UnitLogger only has a side effect: it writes message to logger.
func UnitLogger(logger *zap.Logger, message string) {
	if logger == nil {
		return
	}
	logger.Info("unit logger", zap.String("message", message))
}
