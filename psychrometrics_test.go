package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPV(t *testing.T) {
	assert.InDelta(t, 1584.5, get_p_v(0.5, 3169.0), 1e-9)
	assert.InDelta(t, 0.0, get_p_v(0.0, 3169.0), 1e-9)
}

func TestGetX(t *testing.T) {
	// 0.622 * 2000 / (101325 - 2000)
	assert.InDelta(t, 0.012525, get_x(2000.0), 1e-5)
	assert.InDelta(t, 0.0, get_x(0.0), 1e-12)
}

func TestGetPVsMatchesSteamTableValues(t *testing.T) {
	cases := []struct {
		theta float64 // degree C
		p_vs  float64 // Pa
	}{
		{0.0, 611.0},
		{20.0, 2339.0},
		{60.0, 19941.0},
		{100.0, 101325.0},
	}

	for _, c := range cases {
		assert.InEpsilon(t, c.p_vs, get_p_vs(c.theta), 0.01, "theta=%.0f", c.theta)
	}
}

func TestGetTDpAtSaturationEqualsAirTemperature(t *testing.T) {
	t_dp, err := get_t_dp(26.85, 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 26.85, t_dp, 1e-9)
}

func TestGetTDp(t *testing.T) {
	t_dp, err := get_t_dp(26.85, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 15.556, t_dp, 0.01)

	// drier air condenses later
	t_dp_dry, err := get_t_dp(26.85, 0.3)
	require.NoError(t, err)
	assert.Less(t, t_dp_dry, t_dp)
}

func TestGetTDpRejectsNonPositiveHumidity(t *testing.T) {
	_, err := get_t_dp(26.85, 0.0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDewPointDomain)

	_, err = get_t_dp(26.85, -0.1)
	assert.ErrorIs(t, err, ErrDewPointDomain)
}
