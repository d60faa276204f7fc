package main

import (
	"math"
)

// radiative convective balance of the dryer for one fixed convection
// coefficient
type EnergyBalanceSystem struct {
	h     float64 // convective heat transfer coefficient, W/m2 K
	f_d   float64 // direct solar flux, W/m2
	f_i   float64 // indirect sky flux, W/m2
	t_max float64 // maximum interior air temperature, K
	sgm   float64 // Stefan-Boltzmann constant, W/m2 K4
}

// solution of the balance together with the root finder diagnostics
type EnergyBalanceSolution struct {
	p             float64 // captured flux, W/m2
	f_p           float64 // flux emitted by the plate, W/m2
	f_s           float64 // flux emitted by the soil, W/m2
	t_p           float64 // plate temperature, K
	t_s           float64 // soil temperature, K
	residual_norm float64 // residual norm at the returned estimate
	iterations    int     // root finder iterations
	converged     bool    // root finder convergence flag
}

func NewEnergyBalanceSystem(h float64, prm *ThermalParameters) *EnergyBalanceSystem {
	return &EnergyBalanceSystem{
		h:     h,
		f_d:   prm.f_d,
		f_i:   prm.f_i,
		t_max: prm.t_max,
		sgm:   prm.sgm,
	}
}

/*
Evaluate the balance residuals.

	Args:
	    x: unknowns in the order P, Fp, Fs, Tp, Ts

	Returns:
	    residuals, [5]

	Notes:
	    F0 = h (Tp - Tmax) + h (Ts - Tmax) - P
	    F1 = sgm Tp^4 - Fp
	    F2 = sgm Ts^4 - Fs
	    F3 = P + Fp - Fd - Fi
	    F4 = Fs + h (Ts - Tmax) - Fd - Fp
*/
func (self *EnergyBalanceSystem) residuals(x []float64) []float64 {
	p, f_p, f_s, t_p, t_s := x[0], x[1], x[2], x[3], x[4]

	return []float64{
		self.h*(t_p-self.t_max) + self.h*(t_s-self.t_max) - p,
		self.sgm*math.Pow(t_p, 4.0) - f_p,
		self.sgm*math.Pow(t_s, 4.0) - f_s,
		p + f_p - self.f_d - self.f_i,
		f_s + self.h*(t_s-self.t_max) - self.f_d - f_p,
	}
}

// seed of the balance solve
func get_x0() []float64 {
	return []float64{1.0, 1.0, 1.0, 1.0, 1.0}
}

/*
Solve the balance for a fixed convection coefficient.

	Args:
	    finder: vector root finder
	    h: convective heat transfer coefficient, W/m2 K
	    prm: fixed physical inputs

	Returns:
	    solution of the balance with diagnostics

	Notes:
	    The solution is only valid together with the h it was solved
	    for. Non convergence is reported through the diagnostics, not
	    as an error.
*/
func solve_energy_balance(finder VectorRootFinder, h float64, prm *ThermalParameters) (*EnergyBalanceSolution, error) {
	sys := NewEnergyBalanceSystem(h, prm)

	res, err := finder.FindRoot(sys.residuals, get_x0())
	if err != nil {
		return nil, err
	}

	return &EnergyBalanceSolution{
		p:             res.x[0],
		f_p:           res.x[1],
		f_s:           res.x[2],
		t_p:           res.x[3],
		t_s:           res.x[4],
		residual_norm: res.residual_norm,
		iterations:    res.iterations,
		converged:     res.converged,
	}, nil
}
