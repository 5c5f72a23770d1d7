package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/julianstephens/wagetrack/internal/effects"
	"github.com/julianstephens/wagetrack/internal/shift"
	"github.com/julianstephens/wagetrack/internal/utils"
)

const (
	defaultWidth   = 60
	bannerWidth    = 52
	maxShakeCells  = 3
	incrementLines = 3
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.frame.State {
	case shift.StateTracking:
		content = m.viewTracking()
	case shift.StateSummary:
		content = m.viewSummary()
	default:
		content = m.viewSetup()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.viewError(),
		m.help.View(m),
	)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, ui)
	}
	return ui
}

func (m Model) contentWidth() int {
	if m.width > 0 && m.width < defaultWidth+8 {
		return max(m.width-8, 20)
	}
	return defaultWidth
}

func (m Model) viewError() string {
	if m.errMsg == "" {
		return ""
	}
	return dangerStyle.Render(m.errMsg)
}

func (m Model) viewSetup() string {
	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Wage Tracker"),
		subtitleStyle.Render("Enter your shift details to start earning"),
		"",
		m.form.View(),
	))
}

func (m Model) viewTracking() string {
	f := m.frame
	width := m.contentWidth()

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render("Wage Tracker"),
		renderSky(f.Effects.Particles, f.Rain, width),
		m.viewIncrements(width),
		m.viewEarnings(width),
		m.viewBanners(),
		m.viewInfoCards(),
		m.viewNextMilestone(),
	)

	frameStyle := cardStyle.Width(width + 4)
	if f.Celebrating() {
		frameStyle = frameStyle.BorderForeground(colorOf(effects.RainbowColor(f.Effects.Celebration.Hue + 180)))
	}
	return lipgloss.NewStyle().MarginLeft(m.shakeOffset()).Render(frameStyle.Render(body))
}

// shakeOffset jitters the left margin while a celebration settles.
func (m Model) shakeOffset() int {
	c := m.frame.Effects.Celebration
	if !c.Active || m.shake == nil {
		return maxShakeCells
	}
	amp := int(math.Round(c.Intensity / effects.MaxShake * maxShakeCells))
	if amp <= 0 {
		return maxShakeCells
	}
	return maxShakeCells + m.shake.Intn(2*amp+1) - amp
}

// incrementGroup merges same-amount increments that share a row.
type incrementGroup struct {
	amount decimal.Decimal
	count  int
	alpha  uint8
}

func (m Model) viewIncrements(width int) string {
	rows := make([][]incrementGroup, incrementLines)
	for _, ev := range m.frame.Effects.Of(effects.KindIncrement) {
		row := incrementLines - 1 - int(ev.Progress.OffsetY/effects.IncrementRise*incrementLines)
		row = max(0, min(incrementLines-1, row))
		rows[row] = addIncrement(rows[row], ev.Amount, ev.Progress.Alpha)
	}

	lines := make([]string, incrementLines)
	for i, groups := range rows {
		texts := make([]string, 0, len(groups))
		for _, g := range groups {
			label := "+" + utils.FormatMoney(g.amount)
			if g.count > 1 {
				label += fmt.Sprintf(" ×%d", g.count)
			}
			texts = append(texts, lipgloss.NewStyle().Foreground(fade(incrementHex, g.alpha)).Bold(true).Render(label))
		}
		line := lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(texts, "  "))
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
	}
	return strings.Join(lines, "\n")
}

func addIncrement(groups []incrementGroup, amount decimal.Decimal, alpha uint8) []incrementGroup {
	for i := range groups {
		if groups[i].amount.Equal(amount) {
			groups[i].count++
			groups[i].alpha = max(groups[i].alpha, alpha)
			return groups
		}
	}
	return append(groups, incrementGroup{amount: amount, count: 1, alpha: alpha})
}

func (m Model) viewEarnings(width int) string {
	f := m.frame
	label := "Earned so far"
	if f.AfterTax {
		label = "Earned after tax"
	}

	lines := []string{
		labelStyle.Render(label),
		amountStyle.Render(utils.FormatMoney(f.Display())),
	}
	if f.AfterTax {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("Tax deducted (%s): %s",
			utils.FormatPercent(f.Config.TaxRate), utils.FormatMoney(f.Snapshot.Tax))))
	}
	if f.Celebrating() {
		lines = append(lines, amountStyle.Render(utils.FormatMoney(f.Effects.Celebration.Amount)+"!"))
	} else {
		lines = append(lines, subtitleStyle.Render(utils.FormatHMS(f.Elapsed)))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// viewBanners shows the newest milestone banner. Others unlocked in the same
// burst are folded into a count so a catch-up never grows the layout.
func (m Model) viewBanners() string {
	banners := m.frame.Effects.Of(effects.KindMilestone)
	if len(banners) == 0 {
		return ""
	}
	ev := banners[len(banners)-1]
	label := ev.Label
	if more := len(banners) - 1; more > 0 {
		label += fmt.Sprintf(" (+%d)", more)
	}

	width := int(bannerWidth * ev.Progress.Scale)
	// padding takes 4 cells; keep the text on one line
	label = lipgloss.NewStyle().MaxWidth(width - 4).Render(label)
	color := fade(milestoneHex, ev.Progress.Alpha)
	return bannerStyle.
		Width(width).
		BorderForeground(color).
		Foreground(color).
		Render(label)
}

func (m Model) viewInfoCards() string {
	f := m.frame
	card := func(label, value string) string {
		return infoCardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, labelStyle.Render(label), value))
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		card("Hourly", utils.FormatRate(f.Config.HourlyWage, "hr")),
		card("Per minute", utils.FormatRate(f.Snapshot.PerMinuteRate, "min")),
		card("Clocked in", utils.FormatClock(f.Config.ClockIn)),
	)
}

func (m Model) viewNextMilestone() string {
	f := m.frame
	if !f.HasNext {
		return labelStyle.Render("Every milestone unlocked!")
	}
	return lipgloss.JoinVertical(
		lipgloss.Center,
		labelStyle.Render(fmt.Sprintf("Next: %s at %s", f.Next.Label, utils.FormatMoney(f.Next.Threshold))),
		m.progress.ViewAs(f.NextProgress),
	)
}

func (m Model) viewSummary() string {
	s := m.frame.Summary
	if s == nil {
		return ""
	}

	rows := [][2]string{
		{"Total earned", utils.FormatMoney(s.Snapshot.Earnings)},
		{"After tax", utils.FormatMoney(s.Snapshot.Taxed)},
		{fmt.Sprintf("Tax (%s)", utils.FormatPercent(s.Config.TaxRate)), utils.FormatMoney(s.Snapshot.Tax)},
		{"Hours worked", utils.FormatHoursMinutes(s.Snapshot.Minutes)},
		{"Hourly rate", utils.FormatRate(s.Config.HourlyWage, "hr")},
		{"Clocked in", utils.FormatClock(s.Start)},
		{"Clocked out", utils.FormatClock(s.End)},
	}
	var labels, values []string
	for _, r := range rows {
		labels = append(labels, labelStyle.Render(r[0]))
		values = append(values, amountStyle.Render(r[1]))
	}
	table := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, labels...),
		"    ",
		lipgloss.JoinVertical(lipgloss.Right, values...),
	)

	unlocked := "No milestones this shift"
	if len(s.Unlocked) > 0 {
		names := make([]string, 0, len(s.Unlocked))
		for _, ms := range s.Unlocked {
			names = append(names, ms.Label)
		}
		unlocked = "Milestones: " + strings.Join(names, ", ")
	}

	return cardStyle.Width(m.contentWidth()).Render(lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render("Shift complete"),
		"",
		table,
		"",
		lipgloss.NewStyle().Width(m.contentWidth()-4).Align(lipgloss.Center).Render(warningStyle.Render(unlocked)),
		subtitleStyle.Render("shift "+shortID(s.ShiftID)),
	))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
