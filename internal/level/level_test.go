package level

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{1, 1},
		{999, 1},
		{1000, 2},
		{1050, 2},
		{1999, 2},
		{2000, 3},
		{10000, 11},
		{-5, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("xp=%d", tt.xp), func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.xp))
		})
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 0},
		{250, 250},
		{999, 999},
		{1000, 0},
		{1050, 50},
		{-1, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("xp=%d", tt.xp), func(t *testing.T) {
			assert.Equal(t, tt.want, Progress(tt.xp))
		})
	}
}

func TestFraction(t *testing.T) {
	assert.InDelta(t, 0.5, Fraction(500), 1e-9)
	assert.InDelta(t, 0, Fraction(1000), 1e-9)
	assert.InDelta(t, 0.05, Fraction(1050), 1e-9)
}
