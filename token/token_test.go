package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPositionIndexing(t *testing.T) {
	pos := Position{Line: 2, Column: 0}
	// Switches to 1-indexed
	require.Equal(t, 3, pos.LineNumber())
	require.Equal(t, 1, pos.ColumnNumber())
}

func TestPositionAdvance(t *testing.T) {
	pos := Position{Char: 10, LineStart: 8, Line: 1, Column: 2, File: "main.x"}
	adv := pos.Advance(3)
	require.Equal(t, Position{Char: 13, LineStart: 8, Line: 1, Column: 5, File: "main.x"}, adv)
	// The original is unchanged
	require.Equal(t, 10, pos.Char)
}

func TestPositionIsValid(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected bool
	}{
		{
			name:     "zero position",
			pos:      Position{},
			expected: false,
		},
		{
			name:     "nopos sentinel",
			pos:      NoPos,
			expected: false,
		},
		{
			name:     "file only",
			pos:      Position{File: "main.x"},
			expected: true,
		},
		{
			name:     "offset only",
			pos:      Position{Char: 40},
			expected: true,
		},
		{
			name:     "line and column",
			pos:      Position{Line: 3, Column: 7},
			expected: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.pos.IsValid())
		})
	}
}

func TestPositionBefore(t *testing.T) {
	tests := []struct {
		name     string
		p, q     Position
		expected bool
	}{
		{
			name:     "earlier line",
			p:        Position{Line: 1, Column: 9},
			q:        Position{Line: 2, Column: 0},
			expected: true,
		},
		{
			name:     "same line earlier column",
			p:        Position{Line: 2, Column: 3},
			q:        Position{Line: 2, Column: 8},
			expected: true,
		},
		{
			name:     "equal positions",
			p:        Position{Line: 2, Column: 3},
			q:        Position{Line: 2, Column: 3},
			expected: false,
		},
		{
			name:     "later position",
			p:        Position{Line: 4, Column: 0},
			q:        Position{Line: 2, Column: 9},
			expected: false,
		},
		{
			name:     "different files",
			p:        Position{File: "a.x", Line: 1},
			q:        Position{File: "b.x", Line: 5},
			expected: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.p.Before(tt.q))
		})
	}
}

func TestPositionString(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected string
	}{
		{
			name:     "with filename",
			pos:      Position{File: "main.x", Line: 9, Column: 4},
			expected: "main.x:10:5",
		},
		{
			name:     "without filename",
			pos:      Position{Line: 9, Column: 4},
			expected: "10:5",
		},
		{
			name:     "zero position",
			pos:      Position{},
			expected: "1:1",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.pos.String())
		})
	}
}
