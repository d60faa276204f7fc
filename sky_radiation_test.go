package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEpsSky(t *testing.T) {
	assert.InDelta(t, 0.8158, get_eps_sky(15.556), 5e-4)

	// moister air radiates like a warmer sky
	assert.Greater(t, get_eps_sky(23.0), get_eps_sky(15.556))
}

func TestGetTSkyStaysBelowAmbient(t *testing.T) {
	t_sky := get_t_sky(300.0, 0.81578)
	assert.InDelta(t, 285.1, t_sky, 0.1)
	assert.Less(t, t_sky, 300.0)
}

func TestGetFI(t *testing.T) {
	f_i, err := get_f_i(300.0, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 374.7, f_i, 0.5)
}

func TestGetFIGrowsWithHumidity(t *testing.T) {
	f_dry, err := get_f_i(300.0, 0.3)
	require.NoError(t, err)
	f_wet, err := get_f_i(300.0, 0.8)
	require.NoError(t, err)

	assert.Greater(t, f_wet, f_dry)
}

func TestGetFIRejectsZeroHumidity(t *testing.T) {
	_, err := get_f_i(300.0, 0.0)
	assert.ErrorIs(t, err, ErrDewPointDomain)
}
