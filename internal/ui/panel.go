package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"sandfall/internal/core"
)

// Swatch is one selectable material button of the side panel.
type Swatch struct {
	Label string
	Color color.RGBA
}

// knob is one adjustable parameter row. Booleans are held as 0 or 1.
type knob struct {
	ctrl  core.ParameterControl
	value float64
	known bool

	top         int
	minus, plus image.Rectangle
}

func newKnobs(ctrls []core.ParameterControl) []knob {
	knobs := make([]knob, len(ctrls))
	for i, c := range ctrls {
		knobs[i] = knob{ctrl: c}
	}
	return knobs
}

// sync reads the knob's value from a parameter snapshot.
func (k *knob) sync(s core.ParameterSnapshot) {
	k.known = false
	p, ok := s.Lookup(k.ctrl.Key)
	if !ok {
		return
	}
	if k.ctrl.Type == core.ParamTypeBool {
		b, err := strconv.ParseBool(p.Value)
		if err != nil {
			return
		}
		k.value = 0
		if b {
			k.value = 1
		}
		k.known = true
		return
	}
	f, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return
	}
	k.value, k.known = f, true
}

// step returns the value one click in direction dir would set and whether it
// differs from the current one.
func (k *knob) step(dir int) (float64, bool) {
	if !k.known || dir == 0 {
		return k.value, false
	}
	if k.ctrl.Type == core.ParamTypeBool {
		target := 0.0
		if dir > 0 {
			target = 1
		}
		return target, target != k.value
	}
	inc := k.ctrl.Step
	if inc <= 0 {
		inc = 0.05
		if k.ctrl.Type == core.ParamTypeInt {
			inc = 1
		}
	}
	target := k.value + float64(dir)*inc
	if k.ctrl.HasMin {
		target = math.Max(target, k.ctrl.Min)
	}
	if k.ctrl.HasMax {
		target = math.Min(target, k.ctrl.Max)
	}
	if k.ctrl.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	return target, math.Abs(target-k.value) > 1e-9
}

// commit hands target to the setter matching the knob type and records it
// when the simulation accepts it.
func (k *knob) commit(sim any, target float64) bool {
	accepted := false
	switch k.ctrl.Type {
	case core.ParamTypeInt:
		if s, ok := sim.(core.IntParameterSetter); ok {
			accepted = s.SetIntParameter(k.ctrl.Key, int(target))
		}
	case core.ParamTypeFloat:
		if s, ok := sim.(core.FloatParameterSetter); ok {
			accepted = s.SetFloatParameter(k.ctrl.Key, target)
		}
	case core.ParamTypeBool:
		if s, ok := sim.(core.BoolParameterSetter); ok {
			accepted = s.SetBoolParameter(k.ctrl.Key, target != 0)
		}
	}
	if accepted {
		k.value = target
	}
	return accepted
}

func (k *knob) text() string {
	if !k.known {
		return "--"
	}
	switch k.ctrl.Type {
	case core.ParamTypeInt:
		return strconv.Itoa(int(k.value))
	case core.ParamTypeBool:
		if k.value != 0 {
			return "on"
		}
		return "off"
	}
	return strconv.FormatFloat(k.value, 'f', decimals(k.ctrl.Step), 64)
}

func decimals(step float64) int {
	switch {
	case step <= 0:
		return 2
	case step < 0.01:
		return 3
	case step < 0.1:
		return 2
	}
	return 1
}

const (
	padding      = 12
	titleHeight  = 24
	sectionGap   = 22
	swatchSize   = 26
	swatchGap    = 8
	rowHeight    = 30
	buttonSize   = 22
	buttonGap    = 6
	statusHeight = 16
)

// layout positions the swatch row and the knob rows for a panel of the given
// width. It returns the swatch rectangles and the baseline where the status
// block starts.
func layout(width, swatches int, knobs []knob) ([]image.Rectangle, int) {
	y := padding + titleHeight + sectionGap
	rects := make([]image.Rectangle, swatches)
	x := padding
	for i := range rects {
		if x+swatchSize > width-padding && x > padding {
			x = padding
			y += swatchSize + swatchGap
		}
		rects[i] = image.Rect(x, y, x+swatchSize, y+swatchSize)
		x += swatchSize + swatchGap
	}
	if swatches > 0 {
		y += swatchSize
	}
	y += sectionGap * 2
	for i := range knobs {
		k := &knobs[i]
		k.top = y
		by := y + (rowHeight-buttonSize)/2
		k.plus = image.Rect(width-padding-buttonSize, by, width-padding, by+buttonSize)
		k.minus = k.plus.Sub(image.Pt(buttonSize+buttonGap, 0))
		y += rowHeight
	}
	return rects, y + sectionGap*2
}

// hitSwatch returns the index of the swatch under pt, or -1.
func hitSwatch(pt image.Point, rects []image.Rectangle) int {
	for i, r := range rects {
		if pt.In(r) {
			return i
		}
	}
	return -1
}

// hitKnob returns the knob and direction of the button under pt.
func hitKnob(pt image.Point, knobs []knob) (int, int) {
	for i := range knobs {
		switch {
		case pt.In(knobs[i].minus):
			return i, -1
		case pt.In(knobs[i].plus):
			return i, 1
		}
	}
	return -1, 0
}
