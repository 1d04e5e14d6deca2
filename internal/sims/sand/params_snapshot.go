package sand

import (
	"strconv"

	"sandfall/internal/core"
)

// Parameters reports the current tunables grouped for tooling.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Movement",
			Params: []core.Parameter{
				floatParam("acceleration", "Acceleration", params.Acceleration),
				floatParam("max_velocity", "Max velocity", params.MaxVelocity),
				floatParam("gas_acceleration", "Gas acceleration", params.GasAcceleration),
				floatParam("gas_max_velocity", "Gas max velocity", params.GasMaxVelocity),
			},
		},
		{
			Name: "Reactions",
			Params: []core.Parameter{
				floatParam("fire_spread_chance", "Fire spread chance", params.FireSpreadChance),
				floatParam("fire_smoke_chance", "Fire smoke chance", params.FireSmokeChance),
				floatParam("steam_condense_chance", "Steam condense chance", params.SteamCondenseChance),
				floatParam("water_shimmer_chance", "Water shimmer chance", params.WaterShimmerChance),
				intParam("smoke_lifetime", "Smoke lifetime", params.SmokeLifetime),
				intParam("steam_lifetime", "Steam lifetime", params.SteamLifetime),
			},
		},
		{
			Name: "Brush & Seeding",
			Params: []core.Parameter{
				floatParam("paint_trickle_chance", "Paint trickle chance", params.PaintTrickleChance),
				floatParam("sand_fill_chance", "Sand fill chance", params.SandFillChance),
				floatParam("water_fill_chance", "Water fill chance", params.WaterFillChance),
				floatParam("wood_fill_chance", "Wood fill chance", params.WoodFillChance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// SetFloatParameter updates a floating-point tunable by key. Chances are
// clamped to [0, 1]; movement constants must be non-negative. Reports
// whether the key was recognized and applied.
func (w *World) SetFloatParameter(key string, value float64) bool {
	p := &w.cfg.Params
	switch key {
	case "acceleration":
		p.Acceleration = clampMin(value, 0)
	case "max_velocity":
		p.MaxVelocity = clampMin(value, 0)
	case "gas_acceleration":
		p.GasAcceleration = clampMin(value, 0)
	case "gas_max_velocity":
		p.GasMaxVelocity = clampMin(value, 0)
	case "fire_spread_chance":
		p.FireSpreadChance = clampUnit(value)
	case "fire_smoke_chance":
		p.FireSmokeChance = clampUnit(value)
	case "steam_condense_chance":
		p.SteamCondenseChance = clampUnit(value)
	case "water_shimmer_chance":
		p.WaterShimmerChance = clampUnit(value)
	case "paint_trickle_chance":
		p.PaintTrickleChance = clampUnit(value)
	case "sand_fill_chance":
		p.SandFillChance = clampUnit(value)
	case "water_fill_chance":
		p.WaterFillChance = clampUnit(value)
	case "wood_fill_chance":
		p.WoodFillChance = clampUnit(value)
	default:
		return false
	}
	w.specs = buildSpecs(*p)
	return true
}

// SetIntParameter updates an integer tunable by key.
func (w *World) SetIntParameter(key string, value int) bool {
	if value < 0 {
		value = 0
	}
	p := &w.cfg.Params
	switch key {
	case "smoke_lifetime":
		p.SmokeLifetime = value
	case "steam_lifetime":
		p.SteamLifetime = value
	default:
		return false
	}
	w.specs = buildSpecs(*p)
	return true
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampMin(v, min float64) float64 {
	if v < min {
		return min
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
