package engine

// ModeKind selects which tick algorithm a mode instance runs.
type ModeKind string

const (
	ModeRepulsion ModeKind = "repulsion"
	ModeBattle    ModeKind = "battle"
)

// Controls is the per-mode configuration bundle. It is an immutable
// snapshot: the engine never mutates one in place, it only replaces it
// wholesale through SetControls. Values come from trusted internal
// configuration, so out-of-range entries are clamped, not rejected.
type Controls struct {
	Mode        ModeKind `json:"mode"`
	NumDots     int      `json:"numDots"`
	PaletteSize int      `json:"paletteSize"`

	// Physics
	MaxSpeed float64 `json:"maxSpeed"` // velocity magnitude cap
	MinSize  float64 `json:"minSize"`
	MaxSize  float64 `json:"maxSize"`
	Damping  float64 `json:"damping"` // wall bounce energy retention

	// Pairwise forces
	InfluenceRadius float64 `json:"influenceRadius"`
	ForceStrength   float64 `json:"forceStrength"`

	// Optional interactions
	PointerStrength float64 `json:"pointerStrength"` // 0 disables the pointer pass
	DriftStrength   float64 `json:"driftStrength"`   // 0 disables the noise drift pass

	// Battle mode only
	BattleRadius    float64 `json:"battleRadius"`
	ImpulseRadius   float64 `json:"impulseRadius"`
	ImpulseStrength float64 `json:"impulseStrength"`
	ImpulseDuration float64 `json:"impulseDuration"` // logical steps until full decay
}

// DefaultControls returns a playable baseline for the given mode.
func DefaultControls(mode ModeKind) Controls {
	return Controls{
		Mode:            mode,
		NumDots:         800,
		PaletteSize:     4,
		MaxSpeed:        3.0,
		MinSize:         2.0,
		MaxSize:         6.0,
		Damping:         0.8,
		InfluenceRadius: 25.0,
		ForceStrength:   0.12,
		PointerStrength: 0.0,
		DriftStrength:   0.0,
		BattleRadius:    10.0,
		ImpulseRadius:   150.0,
		ImpulseStrength: 4.0,
		ImpulseDuration: 45.0,
	}
}

// Clamped returns a copy with every field pulled into its valid range.
func (c Controls) Clamped() Controls {
	if c.Mode != ModeBattle {
		c.Mode = ModeRepulsion
	}
	if c.NumDots < 0 {
		c.NumDots = 0
	}
	if c.PaletteSize < 0 {
		c.PaletteSize = 0
	}
	c.MaxSpeed = Clamp(c.MaxSpeed, 0, 100)
	c.MinSize = Clamp(c.MinSize, 0.5, 100)
	c.MaxSize = Clamp(c.MaxSize, c.MinSize, 100)
	c.Damping = Clamp(c.Damping, 0.01, 0.99)
	c.InfluenceRadius = Clamp(c.InfluenceRadius, 0, 1000)
	c.ForceStrength = Clamp(c.ForceStrength, 0, 10)
	c.PointerStrength = Clamp(c.PointerStrength, 0, 10)
	c.DriftStrength = Clamp(c.DriftStrength, 0, 10)
	c.BattleRadius = Clamp(c.BattleRadius, 0, 1000)
	c.ImpulseRadius = Clamp(c.ImpulseRadius, 0, 10000)
	c.ImpulseStrength = Clamp(c.ImpulseStrength, 0, 100)
	c.ImpulseDuration = Clamp(c.ImpulseDuration, 1, 100000)
	return c
}
