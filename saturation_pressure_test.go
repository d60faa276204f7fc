package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaturationPressureTableAnchorsAgreeWithClosedForm(t *testing.T) {
	table := NewSaturationPressureTable()

	for _, row := range table.rows {
		assert.InEpsilon(t, get_p_vs(row.Temperature), row.Pressure, 0.01,
			"theta=%.0f", row.Temperature)
	}
}

func TestSaturationPressureTableInterpolatesBetweenAnchors(t *testing.T) {
	table := NewSaturationPressureTable()

	// 27 degree C sits between the 25 and 30 degree anchors
	p, err := table.get_p_vs(27.0)
	require.NoError(t, err)
	assert.InDelta(t, 3169.0+0.4*(4246.0-3169.0), p, 0.5)
	assert.Greater(t, p, 3169.0)
	assert.Less(t, p, 4246.0)
}

func TestSaturationPressureTableRoundsTheQuery(t *testing.T) {
	table := NewSaturationPressureTable()

	p1, err := table.get_p_vs(26.85)
	require.NoError(t, err)
	p2, err := table.get_p_vs(27.2)
	require.NoError(t, err)

	// both queries resolve to the 27 degree key
	assert.Equal(t, p1, p2)
}

func TestSaturationPressureTableRange(t *testing.T) {
	table := NewSaturationPressureTable()

	_, err := table.get_p_vs(-1.0)
	assert.ErrorIs(t, err, ErrTableRange)

	_, err = table.get_p_vs(100.6)
	assert.ErrorIs(t, err, ErrTableRange)

	// rounding keeps the edges inside the table
	p, err := table.get_p_vs(100.4)
	require.NoError(t, err)
	assert.InDelta(t, 101325.0, p, 1e-9)

	p, err = table.get_p_vs(-0.4)
	require.NoError(t, err)
	assert.InDelta(t, 611.0, p, 1e-9)
}

func TestRoundToDecimalPlaces(t *testing.T) {
	assert.InDelta(t, 343.5, roundToDecimalPlaces(343.456, 1), 1e-12)
	assert.InDelta(t, 343.4, roundToDecimalPlaces(343.44, 1), 1e-12)
	assert.InDelta(t, 3.0, roundToDecimalPlaces(2.5, 0), 1e-12)
	assert.InDelta(t, -3.0, roundToDecimalPlaces(-2.5, 0), 1e-12)
}
