package sand

import (
	"image/color"
	"strconv"
)

// Params holds the physics constants of the rule engine.
type Params struct {
	Gravity          float64
	Friction         float64
	CollisionDamping float64
	DisplaceDamping  float64
	SettleDecay      float64
	SleepThreshold   float64
	MaxSpread        int

	PaintDensity      float64
	RandomVelocity    bool
	RandomVelocityMax int
}

// Config controls the sand world dimensions, physics and palettes.
type Config struct {
	Width     int
	Height    int
	ChunkSize int

	Seed int64

	Params Params

	Palettes   map[Material][]color.RGBA
	EmptyColor color.RGBA
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:     256,
		Height:    160,
		ChunkSize: 16,
		Seed:      1337,
		Params: Params{
			Gravity:           0.2,
			Friction:          0.02,
			CollisionDamping:  0.5,
			DisplaceDamping:   0.6,
			SettleDecay:       0.7,
			SleepThreshold:    0.6,
			MaxSpread:         4,
			PaintDensity:      1,
			RandomVelocityMax: 5,
		},
		Palettes:   DefaultPalettes(),
		EmptyColor: color.RGBA{A: 255},
	}
}

// DefaultPalettes returns the built-in colour palettes per material.
func DefaultPalettes() map[Material][]color.RGBA {
	return map[Material][]color.RGBA{
		Sand: {
			{R: 210, G: 180, B: 140, A: 255},
			{R: 194, G: 178, B: 128, A: 255},
			{R: 244, G: 213, B: 141, A: 255},
			{R: 178, G: 153, B: 110, A: 255},
		},
		Water: {
			{R: 65, G: 105, B: 225, A: 255},
			{R: 0, G: 0, B: 128, A: 255},
			{R: 25, G: 25, B: 112, A: 255},
		},
		Stone: {
			{R: 190, G: 200, B: 205, A: 255},
			{R: 140, G: 150, B: 155, A: 255},
			{R: 90, G: 100, B: 105, A: 255},
			{R: 50, G: 55, B: 60, A: 255},
		},
		// Key colours of the chromatic gradient, visited in order.
		Chromatic: {
			{R: 255, G: 0, B: 0, A: 255},
			{R: 255, G: 165, B: 0, A: 255},
			{R: 255, G: 255, B: 0, A: 255},
			{R: 0, G: 255, B: 0, A: 255},
			{R: 0, G: 255, B: 255, A: 255},
			{R: 0, G: 0, B: 255, A: 255},
			{R: 255, G: 0, B: 255, A: 255},
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Malformed or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	positiveInt(cfg, "w", &c.Width)
	positiveInt(cfg, "h", &c.Height)
	positiveInt(cfg, "chunk", &c.ChunkSize)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["gravity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Gravity = parsed
		}
	}
	unitFloat(cfg, "friction", &c.Params.Friction)
	unitFloat(cfg, "collision_damping", &c.Params.CollisionDamping)
	unitFloat(cfg, "displace_damping", &c.Params.DisplaceDamping)
	unitFloat(cfg, "settle_decay", &c.Params.SettleDecay)
	unitFloat(cfg, "paint_density", &c.Params.PaintDensity)
	if v, ok := cfg["sleep_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SleepThreshold = parsed
		}
	}
	positiveInt(cfg, "max_spread", &c.Params.MaxSpread)
	if v, ok := cfg["random_velocity"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.RandomVelocity = parsed
		}
	}
	if v, ok := cfg["random_velocity_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.RandomVelocityMax = parsed
		}
	}
	return c
}

// normalize rounds the grid up to whole chunks and fills missing palettes.
func (c Config) normalize() Config {
	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultConfig().ChunkSize
	}
	if c.Width <= 0 {
		c.Width = c.ChunkSize
	}
	if c.Height <= 0 {
		c.Height = c.ChunkSize
	}
	c.Width = roundUp(c.Width, c.ChunkSize)
	c.Height = roundUp(c.Height, c.ChunkSize)
	if c.Params.MaxSpread < 0 {
		c.Params.MaxSpread = 0
	}
	defaults := DefaultPalettes()
	palettes := make(map[Material][]color.RGBA, len(defaults))
	for m, p := range defaults {
		palettes[m] = p
	}
	for m, p := range c.Palettes {
		if len(p) > 0 {
			palettes[m] = p
		}
	}
	c.Palettes = palettes
	return c
}

func roundUp(v, multiple int) int {
	return (v + multiple - 1) / multiple * multiple
}

func positiveInt(cfg map[string]string, key string, dst *int) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			*dst = parsed
		}
	}
}

func unitFloat(cfg map[string]string, key string, dst *float64) {
	if v, ok := cfg[key]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			*dst = parsed
		}
	}
}
