package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSizing(t *testing.T) {
	prm := scenario_parameters()
	op := &OperatingPoint{p: 200.0}
	vent := &VentilationRequirement{m_dot_a: 0.01, m_dot_w: 4.0e-4}

	sz, err := get_sizing(op, vent, prm, 1.0)
	require.NoError(t, err)

	// 0.01 kg/s * 1005 J/kg K * 38.15 K
	assert.InDelta(t, 383.41, sz.p_need, 0.01)
	assert.InDelta(t, 1000.4, sz.q_evap, 0.1)
	assert.InDelta(t, 1.917, sz.area, 0.001)
	assert.InDelta(t, 1.917, sz.length, 0.001)
}

func TestGetSizingHalvesTheLengthForTwiceTheWidth(t *testing.T) {
	prm := scenario_parameters()
	op := &OperatingPoint{p: 200.0}
	vent := &VentilationRequirement{m_dot_a: 0.01, m_dot_w: 4.0e-4}

	narrow, err := get_sizing(op, vent, prm, 1.0)
	require.NoError(t, err)
	wide, err := get_sizing(op, vent, prm, 2.0)
	require.NoError(t, err)

	assert.InDelta(t, narrow.length/2.0, wide.length, 1e-9)
	assert.InDelta(t, narrow.area, wide.area, 1e-9)
}

func TestGetSizingRejectsNonPositiveCapturedFlux(t *testing.T) {
	prm := scenario_parameters()
	vent := &VentilationRequirement{m_dot_a: 0.01, m_dot_w: 4.0e-4}

	_, err := get_sizing(&OperatingPoint{p: 0.0}, vent, prm, 1.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoCapturedPower)

	_, err = get_sizing(&OperatingPoint{p: -5.0}, vent, prm, 1.0)
	assert.ErrorIs(t, err, ErrNoCapturedPower)
}
