package id

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEntryRef(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		seq   int
		want  string
	}{
		{2025, time.January, 1, "2025-01-001"},
		{2025, time.December, 99, "2025-12-099"},
		{2025, time.January, 123, "2025-01-123"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatEntryRef(tt.year, tt.month, tt.seq))
	}
}

func TestFormatLegRef(t *testing.T) {
	assert.Equal(t, "2025-01-001a", FormatLegRef("2025-01-001", 0))
	assert.Equal(t, "2025-01-001b", FormatLegRef("2025-01-001", 1))
}

func TestParseEntryRef(t *testing.T) {
	tests := []struct {
		input     string
		wantYear  int
		wantMonth time.Month
		wantSeq   int
	}{
		{"2025-01-001", 2025, time.January, 1},
		{"2025-12-099", 2025, time.December, 99},
		{"2025-01-001a", 2025, time.January, 1},
		{"2025-01-001b", 2025, time.January, 1},
	}
	for _, tt := range tests {
		year, month, seq, err := ParseEntryRef(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.wantYear, year)
		assert.Equal(t, tt.wantMonth, month)
		assert.Equal(t, tt.wantSeq, seq)
	}
}

func TestParseEntryRef_Invalid(t *testing.T) {
	for _, input := range []string{"", "2025", "2025-01", "abcd-01-001", "2025-13-001", "2025-01-xyz1"} {
		_, _, _, err := ParseEntryRef(input)
		assert.Error(t, err, "ParseEntryRef(%q) should fail", input)
	}
}

func TestEntryGroup(t *testing.T) {
	assert.Equal(t, "2025-01-001", EntryGroup("2025-01-001a"))
	assert.Equal(t, "2025-01-001", EntryGroup("2025-01-001"))
	assert.Equal(t, "", EntryGroup(""))
}

func TestSequencer(t *testing.T) {
	seq := NewSequencer()
	jan := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-001", seq.Peek(jan))
	assert.Equal(t, "2024-01-001", seq.Next(jan))
	assert.Equal(t, "2024-01-002", seq.Next(jan))
	assert.Equal(t, "2024-02-001", seq.Next(feb))
	assert.Equal(t, "2024-01-003", seq.Peek(jan))
}
