package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRegNumberGenerator_Sequence(t *testing.T) {
	now := at(2024, time.March, 5, 10, 30)
	cases := []struct {
		count int
		want  string
	}{
		{0, "05032024-001"},
		{1, "05032024-002"},
		{2, "05032024-003"},
		{41, "05032024-042"},
		{999, "05032024-1000"},
	}
	for _, tc := range cases {
		counter := &stubCounter{count: tc.count}
		gen := NewRegNumberGenerator(counter, zap.NewNop())
		assert.Equal(t, tc.want, gen.Generate(context.Background(), now))
		assert.Equal(t, at(2024, time.March, 1, 0, 0), counter.since)
	}
}

func TestRegNumberGenerator_CountFailure(t *testing.T) {
	gen := NewRegNumberGenerator(&stubCounter{err: errStoreDown}, zap.NewNop())
	got := gen.Generate(context.Background(), at(2024, time.December, 31, 23, 59))
	assert.Equal(t, "31122024-ERR", got)
}

func TestFormatRegNumber(t *testing.T) {
	assert.Equal(t, "09112025-007", FormatRegNumber(at(2025, time.November, 9, 8, 0), 7))
	assert.Equal(t, "09112025-12345", FormatRegNumber(at(2025, time.November, 9, 8, 0), 12345))
}
