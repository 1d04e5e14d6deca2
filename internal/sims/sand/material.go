package sand

// Material enumerates the cell material values.
type Material uint8

const (
	Air Material = iota
	Sand
	Water
	Wood
	Fire
	Smoke
	Steam

	materialCount = int(Steam) + 1
)

// String returns the display label of the material.
func (m Material) String() string {
	switch m {
	case Air:
		return "air"
	case Sand:
		return "sand"
	case Water:
		return "water"
	case Wood:
		return "wood"
	case Fire:
		return "fire"
	case Smoke:
		return "smoke"
	case Steam:
		return "steam"
	default:
		return "unknown"
	}
}

// MaterialSet is a bitmask over materials, used for the fall-through and
// empty sets that gate movement, burning and painting.
type MaterialSet uint8

// NewMaterialSet builds a set containing the listed materials.
func NewMaterialSet(ms ...Material) MaterialSet {
	var s MaterialSet
	for _, m := range ms {
		s |= 1 << m
	}
	return s
}

// Has reports whether the set contains m.
func (s MaterialSet) Has(m Material) bool {
	return s&(1<<m) != 0
}

// materialSpec is the per-material configuration record driving the engine:
// movement constants, lifetime, the set of materials the cell may swap into,
// and how the paintbrush treats it.
type materialSpec struct {
	acceleration float32
	maxVelocity  float32
	lifetime     int
	moveThrough  MaterialSet
	spreads      bool // lateral fluid spread after a failed fall
	inverted     bool // gravity points up (gases)
	paintChance  float64
}

// buildSpecs derives the per-material records from the tunable parameters.
func buildSpecs(p Params) [materialCount]materialSpec {
	var specs [materialCount]materialSpec
	specs[Sand] = materialSpec{
		acceleration: float32(p.Acceleration),
		maxVelocity:  float32(p.MaxVelocity),
		moveThrough:  NewMaterialSet(Air, Water, Steam, Smoke),
		paintChance:  p.PaintTrickleChance,
	}
	specs[Water] = materialSpec{
		acceleration: float32(p.Acceleration),
		maxVelocity:  float32(p.MaxVelocity),
		moveThrough:  NewMaterialSet(Air, Steam, Smoke),
		spreads:      true,
		paintChance:  p.PaintTrickleChance,
	}
	specs[Wood] = materialSpec{paintChance: 1}
	specs[Fire] = materialSpec{paintChance: p.PaintTrickleChance}
	specs[Smoke] = materialSpec{
		acceleration: float32(p.GasAcceleration),
		maxVelocity:  float32(p.GasMaxVelocity),
		lifetime:     p.SmokeLifetime,
		moveThrough:  NewMaterialSet(Air),
		spreads:      true,
		inverted:     true,
		paintChance:  p.PaintTrickleChance,
	}
	specs[Steam] = materialSpec{
		acceleration: float32(p.GasAcceleration),
		maxVelocity:  float32(p.GasMaxVelocity),
		lifetime:     p.SteamLifetime,
		moveThrough:  NewMaterialSet(Air),
		spreads:      true,
		inverted:     true,
		paintChance:  1,
	}
	return specs
}

// paintableOver is the set of materials the brush may overwrite. Solids and
// fire keep their ground.
var paintableOver = NewMaterialSet(Air, Water, Smoke)

// burnable is the set of materials fire spreads into.
var burnable = NewMaterialSet(Wood)
