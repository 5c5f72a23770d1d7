package effects

import (
	"math"
	"time"
)

// SymbolKind is the shape of a falling money symbol.
type SymbolKind string

const (
	SymbolDollar SymbolKind = "dollar"
	SymbolCoin   SymbolKind = "coin"
	SymbolBill   SymbolKind = "bill"
)

var symbolKinds = []SymbolKind{SymbolDollar, SymbolCoin, SymbolBill}

const (
	rainTop         = -100.0
	rainSpawnBottom = -20.0
	rainExitMargin  = 50.0
	rainMinSpeed    = 60.0 // px/s
	rainMaxSpeed    = 180.0
	rainMinSize     = 25
	rainMaxSize     = 45
	rainMaxSpin     = 180.0 // deg/s
)

// Symbol is one piece of the background money rain.
type Symbol struct {
	Kind     SymbolKind
	X        float64
	Y0       float64
	Size     int
	Speed    float64
	Rotation float64
	Spin     float64
}

// PlacedSymbol is a symbol positioned for the current tick.
type PlacedSymbol struct {
	Symbol
	PosX  float64
	PosY  float64
	Angle float64
}

// Rain is the ambient money rain shown while a shift is tracking. Symbols fall
// and wrap back to the top once they leave the frame, so the rain never expires.
type Rain struct {
	symbols []Symbol
	start   time.Time
	height  float64
}

// NewRain scatters n symbols above the frame.
func NewRain(rng Rand, n int, width, height float64, start time.Time) Rain {
	w := int(width)
	if w < 1 {
		w = 1
	}
	r := Rain{start: start, height: height}
	if rng == nil {
		return r
	}
	for i := 0; i < n; i++ {
		r.symbols = append(r.symbols, Symbol{
			Kind:     symbolKinds[rng.Intn(len(symbolKinds))],
			X:        float64(rng.Intn(w + 1)),
			Y0:       uniform(rng, rainTop, rainSpawnBottom),
			Size:     rainMinSize + rng.Intn(rainMaxSize-rainMinSize+1),
			Speed:    uniform(rng, rainMinSpeed, rainMaxSpeed),
			Rotation: uniform(rng, 0, 360),
			Spin:     uniform(rng, -rainMaxSpin, rainMaxSpin),
		})
	}
	return r
}

// Len returns the number of symbols.
func (r Rain) Len() int {
	return len(r.symbols)
}

// At positions every symbol at now.
func (r Rain) At(now time.Time) []PlacedSymbol {
	secs := secondsSince(r.start, now)
	span := r.height + rainExitMargin - rainTop
	out := make([]PlacedSymbol, 0, len(r.symbols))
	for _, s := range r.symbols {
		travelled := s.Y0 - rainTop + s.Speed*secs
		out = append(out, PlacedSymbol{
			Symbol: s,
			PosX:   s.X,
			PosY:   rainTop + math.Mod(travelled, span),
			Angle:  math.Mod(s.Rotation+s.Spin*secs, 360),
		})
	}
	return out
}
