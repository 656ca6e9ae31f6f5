// Package bench evaluates score datasets at one or many thresholds.
package bench

// Scale selects how sweep thresholds are spaced.
type Scale string

const (
	ScaleLog    Scale = "log"
	ScaleLinear Scale = "linear"
)

// Config holds evaluation parameters.
type Config struct {
	Threshold  float64
	SweepMin   float64
	SweepMax   float64
	SweepSteps int     // number of thresholds for ScaleLog
	SweepStep  float64 // increment for ScaleLinear
	Scale      Scale
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		Threshold:  1e-3,
		SweepMin:   1e-20,
		SweepMax:   1,
		SweepSteps: 21,
		SweepStep:  0.01,
		Scale:      ScaleLog,
	}
}

// Thresholds returns the sweep thresholds described by cfg.
func (c Config) Thresholds() []float64 {
	if c.Scale == ScaleLinear {
		return SweepThresholds(c.SweepMin, c.SweepMax, c.SweepStep)
	}
	return LogThresholds(c.SweepMin, c.SweepMax, c.SweepSteps)
}
