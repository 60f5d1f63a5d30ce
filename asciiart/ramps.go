package asciiart

import "fmt"

// Ramp is a closed set of glyph ramps. Index 0 of each ramp is the emptiest glyph, the last index is the densest.
type Ramp int

const (
	RampSimple Ramp = iota
	RampDetailed
	RampBlocks

	numRamps
)

const (
	simpleGlyphs   = ` .:-=+*#%@`
	detailedGlyphs = ` .'` + "`" + `^",:;Il!i><~+_-?][}{1)(|\/tfjrxnuvczXYUJCLQ0OZmwqpdbkhao*#MW&8%B@$`
	blocksGlyphs   = ` ░▒▓█`
)

var rampNames = [numRamps]string{
	RampSimple:   "simple",
	RampDetailed: "detailed",
	RampBlocks:   "blocks",
}

var rampGlyphs = [numRamps]string{
	RampSimple:   simpleGlyphs,
	RampDetailed: detailedGlyphs,
	RampBlocks:   blocksGlyphs,
}

// Ramps returns every known ramp in declaration order.
func Ramps() []Ramp {
	return []Ramp{RampSimple, RampDetailed, RampBlocks}
}

/*
ParseRamp maps a ramp name ("simple", "detailed" or "blocks") onto its Ramp. Names are case sensitive. Any other name returns an *UnknownRampError.
*/
func ParseRamp(name string) (Ramp, error) {
	for r, n := range rampNames {
		if n == name {
			return Ramp(r), nil
		}
	}

	return 0, &UnknownRampError{Name: name}
}

func (r Ramp) valid() bool {
	return r >= 0 && r < numRamps
}

func (r Ramp) String() string {
	if !r.valid() {
		return fmt.Sprintf("Ramp(%d)", int(r))
	}

	return rampNames[r]
}

// Glyphs returns a copy of the ramp's glyphs, or nil if r is not a known ramp.
func (r Ramp) Glyphs() []rune {
	if !r.valid() {
		return nil
	}

	return []rune(rampGlyphs[r])
}
