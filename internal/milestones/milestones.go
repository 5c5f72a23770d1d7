package milestones

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Milestone is a cumulative-earnings threshold tied to a reward label.
type Milestone struct {
	Threshold decimal.Decimal
	Label     string
}

// Message is the text shown when the milestone unlocks.
func (m Milestone) Message() string {
	return fmt.Sprintf("You've earned %s!", m.Label)
}

func (m Milestone) key() string {
	return m.Threshold.String()
}

// Catalog is an ordered list of milestones with strictly increasing thresholds.
type Catalog struct {
	items []Milestone
}

// NewCatalog validates and wraps the given milestones.
func NewCatalog(items []Milestone) (Catalog, error) {
	for i, m := range items {
		if !m.Threshold.IsPositive() {
			return Catalog{}, fmt.Errorf("milestone %d (%s): threshold must be positive", i, m.Label)
		}
		if m.Label == "" {
			return Catalog{}, fmt.Errorf("milestone %d: label is required", i)
		}
		if i > 0 && !m.Threshold.GreaterThan(items[i-1].Threshold) {
			return Catalog{}, fmt.Errorf("milestone %d (%s): threshold %s must be greater than %s",
				i, m.Label, m.Threshold, items[i-1].Threshold)
		}
	}
	out := make([]Milestone, len(items))
	copy(out, items)
	return Catalog{items: out}, nil
}

// DefaultCatalog returns the built-in reward list.
func DefaultCatalog() Catalog {
	c, err := NewCatalog(defaultItems())
	if err != nil {
		panic(err)
	}
	return c
}

func defaultItems() []Milestone {
	return []Milestone{
		{decimal.NewFromInt(5), "a coffee"},
		{decimal.NewFromInt(10), "a sandwich"},
		{decimal.NewFromInt(15), "a movie ticket"},
		{decimal.NewFromInt(25), "a pizza"},
		{decimal.NewFromInt(50), "a nice dinner"},
		{decimal.NewFromInt(75), "a new video game"},
		{decimal.NewFromInt(100), "a pair of shoes"},
		{decimal.NewFromInt(150), "a smartwatch"},
		{decimal.NewFromInt(200), "a weekend trip"},
		{decimal.NewFromInt(300), "a new phone"},
		{decimal.NewFromInt(500), "a gaming console"},
		{decimal.NewFromInt(750), "a nice laptop"},
		{decimal.NewFromInt(1000), "a used car down payment"},
	}
}

// Items returns a copy of the catalog entries in ascending order.
func (c Catalog) Items() []Milestone {
	out := make([]Milestone, len(c.items))
	copy(out, c.items)
	return out
}

func (c Catalog) Len() int {
	return len(c.items)
}

// Update unlocks every milestone whose threshold is at or below earned and
// which is not already in set. It returns a new set and the newly unlocked
// milestones in ascending threshold order; set itself is not modified.
func (c Catalog) Update(earned decimal.Decimal, set UnlockedSet) (UnlockedSet, []Milestone) {
	next := set.Clone()
	var unlocked []Milestone
	for _, m := range c.items {
		if m.Threshold.GreaterThan(earned) {
			// thresholds are ascending, nothing further can match
			break
		}
		if next.Has(m) {
			continue
		}
		next.add(m)
		unlocked = append(unlocked, m)
	}
	return next, unlocked
}

// Next returns the first milestone not yet in set, if any.
func (c Catalog) Next(set UnlockedSet) (Milestone, bool) {
	for _, m := range c.items {
		if !set.Has(m) {
			return m, true
		}
	}
	return Milestone{}, false
}

// Progress reports how far earned is from the previous unlocked threshold
// toward the next one, in [0, 1]. It is 1 once every milestone is unlocked.
func (c Catalog) Progress(earned decimal.Decimal, set UnlockedSet) float64 {
	next, ok := c.Next(set)
	if !ok {
		return 1
	}
	floor := decimal.Zero
	for _, m := range c.items {
		if m.Threshold.GreaterThanOrEqual(next.Threshold) {
			break
		}
		floor = m.Threshold
	}
	span := next.Threshold.Sub(floor)
	f, _ := earned.Sub(floor).Div(span).Float64()
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
