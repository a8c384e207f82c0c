package engine

import "github.com/hajimehoshi/ebiten/v2"

// TickClock reports a fixed step of one ebiten tick.
type TickClock struct{}

// Delta returns 1/TPS seconds.
func (TickClock) Delta() float64 {
	return 1.0 / float64(ebiten.TPS())
}

// FixedClock reports the same delta on every call. Used headless and in tests.
type FixedClock float64

// Delta returns the fixed step.
func (c FixedClock) Delta() float64 { return float64(c) }
