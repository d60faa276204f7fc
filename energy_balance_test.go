package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResidualsVanishAtAConstructedRoot(t *testing.T) {
	sgm := get_sgm()
	h := 4.0
	t_max := 338.15
	t_p, t_s := 350.0, 360.0

	// fluxes consistent with the chosen temperatures
	f_p := sgm * math.Pow(t_p, 4.0)
	f_s := sgm * math.Pow(t_s, 4.0)
	p := h*(t_p-t_max) + h*(t_s-t_max)
	f_d := f_s + h*(t_s-t_max) - f_p
	f_i := p + f_p - f_d

	sys := &EnergyBalanceSystem{h: h, f_d: f_d, f_i: f_i, t_max: t_max, sgm: sgm}

	for i, r := range sys.residuals([]float64{p, f_p, f_s, t_p, t_s}) {
		assert.InDelta(t, 0.0, r, 1e-9, "residual %d", i)
	}
}

func TestSolveEnergyBalance(t *testing.T) {
	prm := scenario_parameters()
	finder := NewNewtonRaphson(1e-9, 100)

	sol, err := solve_energy_balance(finder, 3.703, prm)
	require.NoError(t, err)

	assert.True(t, sol.converged)
	assert.Less(t, sol.residual_norm, 1e-6)

	// flux balance of the plate
	assert.InDelta(t, prm.f_d+prm.f_i, sol.p+sol.f_p, 1e-6)

	assert.Greater(t, sol.t_p, prm.t_amb)
	assert.Less(t, sol.t_p, 400.0)
	assert.Greater(t, sol.t_s, prm.t_amb)
	assert.Less(t, sol.t_s, 450.0)
}

func TestSolveEnergyBalanceAcrossParameterSets(t *testing.T) {
	cases := []struct {
		name string
		h    float64
		f_d  float64
	}{
		{"calm morning", 2.0, 400.0},
		{"reference", 3.7, 600.0},
		{"windless noon", 6.0, 800.0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			prm := scenario_parameters()
			prm.f_d = c.f_d

			sol, err := solve_energy_balance(NewNewtonRaphson(1e-9, 100), c.h, prm)
			require.NoError(t, err)

			assert.True(t, sol.converged)
			assert.Less(t, sol.residual_norm, 1e-6)
			assert.InDelta(t, prm.f_d+prm.f_i, sol.p+sol.f_p, 1e-6)
		})
	}
}

func TestBalanceRootIsTheSameFromDifferentSeeds(t *testing.T) {
	prm := scenario_parameters()
	sys := NewEnergyBalanceSystem(3.703, prm)

	newton := NewNewtonRaphson(1e-9, 100)

	ref, err := newton.FindRoot(sys.residuals, get_x0())
	require.NoError(t, err)
	require.True(t, ref.converged)

	seeds := [][]float64{
		{0.0, 0.0, 0.0, 0.0, 0.0},
		{100.0, 500.0, 500.0, 350.0, 350.0},
	}
	for _, seed := range seeds {
		res, err := newton.FindRoot(sys.residuals, seed)
		require.NoError(t, err)

		assert.True(t, res.converged)
		assert.Less(t, res.residual_norm, 1e-6)
		assert.InDelta(t, ref.x[3], res.x[3], 1e-5)
		assert.InDelta(t, ref.x[4], res.x[4], 1e-5)
	}

	// quasi Newton agrees from warm seeds
	broyden := NewBroyden(1e-9, 200)
	warm := [][]float64{
		{100.0, 800.0, 1000.0, 340.0, 380.0},
		{200.0, 700.0, 900.0, 350.0, 370.0},
	}
	for _, seed := range warm {
		res, err := broyden.FindRoot(sys.residuals, seed)
		require.NoError(t, err)

		assert.True(t, res.converged)
		assert.Less(t, res.residual_norm, 1e-6)
		assert.InDelta(t, ref.x[3], res.x[3], 1e-5)
		assert.InDelta(t, ref.x[4], res.x[4], 1e-5)
	}
}
