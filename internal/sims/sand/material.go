package sand

import "strings"

// Material enumerates the particle kinds. The zero value marks an empty cell.
type Material uint8

const (
	Empty Material = iota
	Sand
	Water
	Stone
	Chromatic

	materialCount
)

type materialInfo struct {
	name    string
	density int
	static  bool
	liquid  bool
	cycles  bool
}

var materials = [materialCount]materialInfo{
	Empty:     {name: "empty"},
	Sand:      {name: "sand", density: 2},
	Water:     {name: "water", density: 1, liquid: true},
	Stone:     {name: "stone", density: 10, static: true},
	Chromatic: {name: "chromatic", density: 10, static: true, cycles: true},
}

// Materials lists the paintable materials in tool order.
func Materials() []Material {
	return []Material{Sand, Water, Stone, Chromatic}
}

// String returns the lower-case material name.
func (m Material) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return materials[m].name
}

// Valid reports whether m is a known material, Empty included.
func (m Material) Valid() bool { return m < materialCount }

// Movable reports whether the rule engine moves particles of this material.
func (m Material) Movable() bool {
	return m != Empty && m.Valid() && !materials[m].static
}

// Static reports whether particles of this material never move.
func (m Material) Static() bool {
	return m.Valid() && materials[m].static
}

// Liquid reports whether the material spreads sideways when it cannot fall.
func (m Material) Liquid() bool {
	return m.Valid() && materials[m].liquid
}

// Cycles reports whether the material's colour runs through a gradient over
// time instead of keeping the colour it was painted with.
func (m Material) Cycles() bool {
	return m.Valid() && materials[m].cycles
}

// Density orders materials for displacement. Empty has density zero.
func (m Material) Density() int {
	if !m.Valid() {
		return 0
	}
	return materials[m].density
}

// Displaces reports whether a particle of material m may trade places with a
// particle of material other that stands in its way.
func (m Material) Displaces(other Material) bool {
	return m.Movable() && other.Movable() && other.Liquid() && m.Density() > other.Density()
}

// ParseMaterial resolves a material name or its tool digit ("1".."4").
func ParseMaterial(s string) (Material, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, m := range Materials() {
		if s == m.String() || (len(s) == 1 && int(s[0]-'1') == i) {
			return m, true
		}
	}
	return Empty, false
}
