package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePercentage(t *testing.T) {
	assert.InDelta(t, 0.5, CalculatePercentage(50, 100), 1e-9)
	assert.InDelta(t, 1, CalculatePercentage(100, 100), 1e-9)
	assert.InDelta(t, 1, CalculatePercentage(150, 100), 1e-9, "clamped above the goal")
	assert.Zero(t, CalculatePercentage(-10, 100))
	assert.Zero(t, CalculatePercentage(50, 0), "zero goal never divides")
	assert.Zero(t, CalculatePercentage(50, -1))
}
