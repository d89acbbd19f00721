// Package input provides helpers for the source time field.
package input

// Presets cycles through a fixed list of example times.
// The zero value has no presets and no selection.
type Presets struct {
	values []string
	idx    int // -1 when nothing is selected
}

// NewPresets creates a preset list with nothing selected.
func NewPresets(values []string) Presets {
	return Presets{values: append([]string(nil), values...), idx: -1}
}

// Next selects and returns the following preset, wrapping at the end.
func (p *Presets) Next() (string, bool) {
	if len(p.values) == 0 {
		return "", false
	}
	p.idx = (p.idx + 1) % len(p.values)
	return p.values[p.idx], true
}

// Prev selects and returns the preceding preset, wrapping at the start.
func (p *Presets) Prev() (string, bool) {
	if len(p.values) == 0 {
		return "", false
	}
	if p.idx <= 0 {
		p.idx = len(p.values) - 1
	} else {
		p.idx--
	}
	return p.values[p.idx], true
}

// Reset clears the selection, e.g. after the user types over a preset.
func (p *Presets) Reset() {
	p.idx = -1
}

// Selected returns the index of the selected preset, or -1.
func (p *Presets) Selected() int {
	if len(p.values) == 0 {
		return -1
	}
	return p.idx
}

// Values returns the presets in order.
func (p *Presets) Values() []string {
	return p.values
}
