package sand

import "strconv"

// Params holds tunable constants for the falling-material simulation.
type Params struct {
	Acceleration float64
	MaxVelocity  float64

	GasAcceleration float64
	GasMaxVelocity  float64

	SmokeLifetime int
	SteamLifetime int

	FireSpreadChance    float64
	FireSmokeChance     float64
	SteamCondenseChance float64
	WaterShimmerChance  float64

	PaintTrickleChance float64

	// Reset sprinkle chances for headless runs. All zero leaves the
	// canvas empty for interactive painting.
	SandFillChance  float64
	WaterFillChance float64
	WoodFillChance  float64
}

// Config controls the simulation dimensions and tunables.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  400,
		Height: 300,
		Seed:   1337,
		Params: Params{
			Acceleration:        0.2,
			MaxVelocity:         10.0,
			GasAcceleration:     0.1,
			GasMaxVelocity:      2.0,
			SmokeLifetime:       100,
			SteamLifetime:       50,
			FireSpreadChance:    1.0 / 64.0,
			FireSmokeChance:     0.125,
			SteamCondenseChance: 1.0 / 64.0,
			WaterShimmerChance:  0.125,
			PaintTrickleChance:  0.125,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["acceleration"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Acceleration = parsed
		}
	}
	if v, ok := cfg["max_velocity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.MaxVelocity = parsed
		}
	}
	if v, ok := cfg["gas_acceleration"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.GasAcceleration = parsed
		}
	}
	if v, ok := cfg["gas_max_velocity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.GasMaxVelocity = parsed
		}
	}
	if v, ok := cfg["smoke_lifetime"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SmokeLifetime = parsed
		}
	}
	if v, ok := cfg["steam_lifetime"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SteamLifetime = parsed
		}
	}
	if v, ok := cfg["fire_spread_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.FireSpreadChance = parsed
		}
	}
	if v, ok := cfg["fire_smoke_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.FireSmokeChance = parsed
		}
	}
	if v, ok := cfg["steam_condense_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SteamCondenseChance = parsed
		}
	}
	if v, ok := cfg["water_shimmer_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.WaterShimmerChance = parsed
		}
	}
	if v, ok := cfg["paint_trickle_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.PaintTrickleChance = parsed
		}
	}
	if v, ok := cfg["sand_fill_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SandFillChance = parsed
		}
	}
	if v, ok := cfg["water_fill_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.WaterFillChance = parsed
		}
	}
	if v, ok := cfg["wood_fill_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.WoodFillChance = parsed
		}
	}
	return c
}
