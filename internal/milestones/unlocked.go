package milestones

// UnlockedSet holds the thresholds crossed during the current shift.
// The zero value is an empty set.
type UnlockedSet struct {
	thresholds map[string]Milestone
	order      []Milestone
}

// Has reports whether m has been unlocked.
func (s UnlockedSet) Has(m Milestone) bool {
	_, ok := s.thresholds[m.key()]
	return ok
}

func (s UnlockedSet) Len() int {
	return len(s.order)
}

// Items returns the unlocked milestones in unlock order.
func (s UnlockedSet) Items() []Milestone {
	out := make([]Milestone, len(s.order))
	copy(out, s.order)
	return out
}

// Clone returns an independent copy of the set.
func (s UnlockedSet) Clone() UnlockedSet {
	c := UnlockedSet{
		thresholds: make(map[string]Milestone, len(s.thresholds)),
		order:      make([]Milestone, len(s.order)),
	}
	for k, v := range s.thresholds {
		c.thresholds[k] = v
	}
	copy(c.order, s.order)
	return c
}

func (s *UnlockedSet) add(m Milestone) {
	if s.thresholds == nil {
		s.thresholds = make(map[string]Milestone)
	}
	if _, ok := s.thresholds[m.key()]; ok {
		return
	}
	s.thresholds[m.key()] = m
	s.order = append(s.order, m)
}
