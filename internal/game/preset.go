package game

import "errors"

// ErrUnknownPreset indicates a preset name outside easy/normal/hard.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// Preset is a named difficulty level.
type Preset struct {
	Name  string
	Rows  int
	Cols  int
	Mines int
}

// Presets lists the built-in difficulty levels in ascending order.
var Presets = []Preset{
	{Name: "easy", Rows: 8, Cols: 8, Mines: 10},
	{Name: "normal", Rows: 16, Cols: 16, Mines: 40},
	{Name: "hard", Rows: 24, Cols: 24, Mines: 99},
}

// PresetByName looks up a preset case-sensitively by its lowercase name.
func PresetByName(name string) (Preset, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
