package sand

import (
	"strconv"

	"sandfall/internal/core"
)

// Parameters reports the current configuration grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				intParam("chunk", "Chunk size", w.cfg.ChunkSize),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				floatParam("gravity", "Gravity", params.Gravity),
				floatParam("friction", "Friction", params.Friction),
				floatParam("collision_damping", "Collision damping", params.CollisionDamping),
				floatParam("displace_damping", "Displace damping", params.DisplaceDamping),
				floatParam("settle_decay", "Settle decay", params.SettleDecay),
				floatParam("sleep_threshold", "Sleep threshold", params.SleepThreshold),
				intParam("max_spread", "Max spread", params.MaxSpread),
			},
		},
		{
			Name: "Painting",
			Params: []core.Parameter{
				floatParam("paint_density", "Paint density", params.PaintDensity),
				boolParam("random_velocity", "Random velocity", params.RandomVelocity),
				intParam("random_velocity_max", "Random velocity max", params.RandomVelocityMax),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters adjustable at runtime.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "gravity", Label: "Gravity", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 2, HasMin: true, HasMax: true},
		{Key: "friction", Label: "Friction", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "collision_damping", Label: "Collision damping", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "settle_decay", Label: "Settle decay", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "max_spread", Label: "Max spread", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 32, HasMin: true, HasMax: true},
		{Key: "paint_density", Label: "Paint density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "random_velocity", Label: "Random velocity", Type: core.ParamTypeBool},
	}
}

// SetIntParameter updates an integer parameter. Values are clamped to their
// valid range.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "max_spread":
		w.cfg.Params.MaxSpread = clampInt(value, 0, 32)
	case "random_velocity_max":
		w.cfg.Params.RandomVelocityMax = max(value, 0)
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point parameter. Values are clamped
// to their valid range.
func (w *World) SetFloatParameter(key string, value float64) bool {
	p := &w.cfg.Params
	switch key {
	case "gravity":
		p.Gravity = clampFloat(value, 0, 2)
	case "friction":
		p.Friction = clampFloat(value, 0, 1)
	case "collision_damping":
		p.CollisionDamping = clampFloat(value, 0, 1)
	case "displace_damping":
		p.DisplaceDamping = clampFloat(value, 0, 1)
	case "settle_decay":
		p.SettleDecay = clampFloat(value, 0, 1)
	case "sleep_threshold":
		p.SleepThreshold = max(value, 0)
	case "paint_density":
		p.PaintDensity = clampFloat(value, 0, 1)
	default:
		return false
	}
	return true
}

// SetBoolParameter updates a boolean parameter.
func (w *World) SetBoolParameter(key string, value bool) bool {
	if key != "random_velocity" {
		return false
	}
	w.cfg.Params.RandomVelocity = value
	return true
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

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func clampInt(v, lo, hi int) int { return min(max(v, lo), hi) }

func clampFloat(v, lo, hi float64) float64 { return min(max(v, lo), hi) }
