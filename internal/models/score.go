package models

import "sort"

// Score tracks finished games for a session, keyed by outcome label
type Score struct {
	Played int
	counts map[string]int
}

// Record adds one finished game with the given outcome
func (s *Score) Record(outcome string) {
	if s.counts == nil {
		s.counts = make(map[string]int)
	}
	s.counts[outcome]++
	s.Played++
}

// Count returns how many games ended with outcome
func (s *Score) Count(outcome string) int {
	return s.counts[outcome]
}

// Outcomes returns the recorded outcome labels sorted by count desc, then name
func (s *Score) Outcomes() []string {
	labels := make([]string, 0, len(s.counts))
	for label := range s.counts {
		labels = append(labels, label)
	}
	sort.SliceStable(labels, func(i, j int) bool {
		ci, cj := s.counts[labels[i]], s.counts[labels[j]]
		if ci == cj {
			return labels[i] < labels[j]
		}
		return ci > cj
	})
	return labels
}
