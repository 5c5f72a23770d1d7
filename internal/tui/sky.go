package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wagetrack/internal/constants"
	"github.com/julianstephens/wagetrack/internal/effects"
)

const skyRows = 6

var (
	confettiGlyphs = []string{"▪", "◆", "●", "▴"}
	rainGlyphs     = map[effects.SymbolKind]string{
		effects.SymbolDollar: "$",
		effects.SymbolCoin:   "¢",
		effects.SymbolBill:   "▭",
	}
)

type skyCell struct {
	glyph string
	color lipgloss.Color
	bold  bool
}

// sky is a character grid the logical frame is projected onto.
type sky struct {
	cols  int
	rows  int
	cells [][]skyCell
}

func newSky(cols, rows int) *sky {
	s := &sky{cols: cols, rows: rows, cells: make([][]skyCell, rows)}
	for i := range s.cells {
		s.cells[i] = make([]skyCell, cols)
	}
	return s
}

func (s *sky) place(x, y float64, c skyCell) {
	if x < 0 || y < 0 {
		return
	}
	col := int(x / constants.FrameWidth * float64(s.cols))
	row := int(y / constants.FrameHeight * float64(s.rows))
	if col >= s.cols || row >= s.rows {
		return
	}
	s.cells[row][col] = c
}

func (s *sky) String() string {
	lines := make([]string, 0, s.rows)
	for _, row := range s.cells {
		var b strings.Builder
		for _, c := range row {
			if c.glyph == "" {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(c.color).Bold(c.bold).Render(c.glyph))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// renderSky draws the money rain with the confetti on top of it.
func renderSky(particles []effects.LiveParticle, rain []effects.PlacedSymbol, cols int) string {
	if cols <= 0 {
		return ""
	}
	s := newSky(cols, skyRows)
	rainColor := fade(rainHex, 150)
	for _, sym := range rain {
		s.place(sym.PosX, sym.PosY, skyCell{glyph: rainGlyphs[sym.Kind], color: rainColor})
	}
	for _, p := range particles {
		s.place(p.PosX, p.PosY, skyCell{
			glyph: confettiGlyph(p.Angle),
			color: colorOf(p.Color),
			bold:  p.Size >= 8,
		})
	}
	return s.String()
}

func confettiGlyph(angle float64) string {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return confettiGlyphs[int(a/90)%len(confettiGlyphs)]
}
