// Package id formats journal entry references.
//
// Every posted transaction gets an entry reference "YYYY-MM-NNN", numbered
// within its calendar month in posting order. The two journal lines of an
// entry append a leg suffix: "a" for the debit line, "b" for the credit line.
package id

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatEntryRef returns an entry reference like "2025-01-001".
func FormatEntryRef(year int, month time.Month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, int(month), seq)
}

// FormatLegRef returns a leg reference like "2025-01-001a" (leg 0='a', 1='b').
func FormatLegRef(entryRef string, leg int) string {
	return entryRef + string(rune('a'+leg))
}

// ParseEntryRef parses "2025-01-001" (with or without leg suffix) into year, month, seq.
func ParseEntryRef(ref string) (year int, month time.Month, seq int, err error) {
	base := EntryGroup(ref)

	parts := strings.SplitN(base, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid entry reference format: %q", ref)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in entry reference %q: %w", ref, err)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, 0, fmt.Errorf("invalid month in entry reference %q", ref)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in entry reference %q: %w", ref, err)
	}

	return year, time.Month(m), seq, nil
}

// EntryGroup strips the leg suffix from a leg reference.
// "2025-01-001a" -> "2025-01-001"
func EntryGroup(legRef string) string {
	i := len(legRef)
	for i > 0 && legRef[i-1] >= 'a' && legRef[i-1] <= 'z' {
		i--
	}
	return legRef[:i]
}

type monthKey struct {
	year  int
	month time.Month
}

// Sequencer hands out per-month entry references. Not safe for concurrent use.
type Sequencer struct {
	last map[monthKey]int
}

// NewSequencer returns a Sequencer with every month starting at 001.
func NewSequencer() *Sequencer {
	return &Sequencer{last: make(map[monthKey]int)}
}

// Peek returns the reference the next call to Next would return for date.
func (s *Sequencer) Peek(date time.Time) string {
	k := monthKey{date.Year(), date.Month()}
	return FormatEntryRef(k.year, k.month, s.last[k]+1)
}

// Next reserves and returns the next reference in date's month.
func (s *Sequencer) Next(date time.Time) string {
	k := monthKey{date.Year(), date.Month()}
	s.last[k]++
	return FormatEntryRef(k.year, k.month, s.last[k])
}
