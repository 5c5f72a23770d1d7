package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/julianstephens/wagetrack/internal/effects"
	"github.com/julianstephens/wagetrack/internal/shift"
)

type stepClock struct {
	t time.Time
}

func (c *stepClock) Now() time.Time {
	return c.t
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func trackingModel(t *testing.T) (Model, *stepClock) {
	t.Helper()
	return clockedInModel(t, "15", "12:00", time.Date(2026, 3, 10, 12, 1, 30, 0, time.UTC))
}

func clockedInModel(t *testing.T, wage, clockIn string, now time.Time) (Model, *stepClock) {
	t.Helper()
	clk := &stepClock{t: now}
	tracker := shift.New(shift.Options{Rand: rand.New(rand.NewSource(1))})
	if err := tracker.ClockIn(shift.Input{Wage: wage, TaxPercent: "25", ClockIn: clockIn}, clk.Now()); err != nil {
		t.Fatalf("ClockIn() error = %v", err)
	}
	m := NewModel(Options{
		Tracker: tracker,
		Clock:   clk,
		Shake:   rand.New(rand.NewSource(2)),
	})
	return m, clk
}

func TestNewModelStartsOnSetup(t *testing.T) {
	m := NewModel(Options{Prefill: shift.Input{Wage: "20"}})
	if m.Frame().State != shift.StateIdle {
		t.Fatalf("State = %s, want idle", m.Frame().State)
	}
	if m.setup.Wage != "20" {
		t.Errorf("prefill lost: %q", m.setup.Wage)
	}
	if !strings.Contains(m.View(), "Wage Tracker") {
		t.Error("setup view missing title")
	}
}

func TestTickRendersEarnings(t *testing.T) {
	m, _ := trackingModel(t)

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}
	f := m.Frame()
	if f.State != shift.StateTracking {
		t.Fatalf("State = %s, want tracking", f.State)
	}
	view := m.View()
	for _, want := range []string{"$0.25", "Earned so far", "$15.00/hr", "Next: a coffee"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestCatchUpKeepsLayoutHeight(t *testing.T) {
	// one minute at $300/hr: one increment and one milestone
	single, _ := clockedInModel(t, "300", "12:00", time.Date(2026, 3, 10, 12, 1, 0, 0, time.UTC))
	want := lipgloss.Height(single.View())

	// eight hours of missed minutes land in a single tick
	backlog, _ := clockedInModel(t, "15", "09:00", time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC))
	f := backlog.Frame()
	if n := len(f.Effects.Of(effects.KindIncrement)); n != 480 {
		t.Fatalf("expected 480 live increments, got %d", n)
	}
	if n := len(f.Effects.Of(effects.KindMilestone)); n != 7 {
		t.Fatalf("expected 7 live milestones, got %d", n)
	}

	view := backlog.View()
	if got := lipgloss.Height(view); got != want {
		t.Errorf("view height = %d after a catch-up, want %d:\n%s", got, want, view)
	}
	for _, s := range []string{"+$0.25 ×480", "You've earned a pair of shoes! (+6)"} {
		if !strings.Contains(view, s) {
			t.Errorf("view missing %q:\n%s", s, view)
		}
	}
}

func TestToggleTaxKey(t *testing.T) {
	m, _ := trackingModel(t)
	m, _ = update(t, m, keyPress('t'))
	if !m.Frame().AfterTax {
		t.Fatal("expected after-tax display")
	}
	view := m.View()
	if !strings.Contains(view, "Earned after tax") || !strings.Contains(view, "$0.19") {
		t.Errorf("after-tax view missing figures:\n%s", view)
	}
}

func TestClockOutAndNewShiftKeys(t *testing.T) {
	m, clk := trackingModel(t)

	clk.t = clk.t.Add(time.Hour)
	m, _ = update(t, m, keyPress('o'))
	if m.Frame().State != shift.StateSummary {
		t.Fatalf("State = %s, want summary", m.Frame().State)
	}
	view := m.View()
	for _, want := range []string{"Shift complete", "Total earned", "$15.25", "1h 1m", "a coffee"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary view missing %q", want)
		}
	}

	// Later ticks keep the summary frozen
	clk.t = clk.t.Add(time.Hour)
	m, _ = update(t, m, TickMsg(clk.t))
	if !strings.Contains(m.View(), "$15.25") {
		t.Error("summary changed after clock-out")
	}

	m, cmd := update(t, m, keyPress('n'))
	if m.Frame().State != shift.StateIdle {
		t.Fatalf("State = %s, want idle", m.Frame().State)
	}
	if cmd == nil {
		t.Error("expected the new form to be initialized")
	}
	if *m.setup != (SetupFormModel{}) {
		t.Errorf("inputs not cleared: %+v", *m.setup)
	}
}

func TestQuitKeys(t *testing.T) {
	m, _ := trackingModel(t)
	m, cmd := update(t, m, keyPress('q'))
	if !m.quitting || cmd == nil {
		t.Error("expected q to quit while tracking")
	}
	if m.View() != "" {
		t.Error("expected an empty view after quitting")
	}

	idle := NewModel(Options{})
	idle, cmd = update(t, idle, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !idle.quitting || cmd == nil {
		t.Error("expected ctrl+c to quit from setup")
	}
}

func TestWindowResize(t *testing.T) {
	m, _ := trackingModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d", m.width, m.height)
	}
	if m.progress.Width != 40 {
		t.Errorf("progress width = %d, want 40", m.progress.Width)
	}
}

func TestShakeOffsetStaysInRange(t *testing.T) {
	m, _ := trackingModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))
	if !m.Frame().Celebrating() {
		t.Fatal("expected a celebration at the first minute")
	}
	for i := 0; i < 50; i++ {
		off := m.shakeOffset()
		if off < 0 || off > 2*maxShakeCells {
			t.Fatalf("shake offset %d out of range", off)
		}
	}
}

func TestRenderSky(t *testing.T) {
	particles := []effects.LiveParticle{
		{Particle: effects.Particle{Color: colorful.Color{R: 1}, Size: 5}, PosX: 300, PosY: 100, Angle: 45},
		{Particle: effects.Particle{Size: 5}, PosX: 300, PosY: -10},
		{Particle: effects.Particle{Size: 5}, PosX: 300, PosY: 900},
	}
	rain := []effects.PlacedSymbol{
		{Symbol: effects.Symbol{Kind: effects.SymbolDollar}, PosX: 0, PosY: 0},
	}

	out := renderSky(particles, rain, 60)
	lines := strings.Split(out, "\n")
	if len(lines) != skyRows {
		t.Fatalf("expected %d rows, got %d", skyRows, len(lines))
	}
	if !strings.HasPrefix(lines[0], "$") {
		t.Errorf("rain symbol missing from the first row: %q", lines[0])
	}
	if !strings.Contains(lines[1], "▪") {
		t.Errorf("confetti missing from the second row: %q", lines[1])
	}
	if renderSky(nil, nil, 0) != "" {
		t.Error("expected nothing for zero width")
	}
}

func TestConfettiGlyph(t *testing.T) {
	tests := []struct {
		angle float64
		want  string
	}{
		{0, "▪"},
		{100, "◆"},
		{200, "●"},
		{300, "▴"},
		{-10, "▴"},
		{720, "▪"},
	}
	for _, tt := range tests {
		if got := confettiGlyph(tt.angle); got != tt.want {
			t.Errorf("confettiGlyph(%v) = %q, want %q", tt.angle, got, tt.want)
		}
	}
}
