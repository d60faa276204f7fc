package main

import (
	"errors"
	"fmt"
)

// ErrIterationLimit reports an outer loop that exhausted its cap.
var ErrIterationLimit = errors.New("plate temperature loop exceeded the iteration cap")

type LoopState string

const (
	Iterating LoopState = "iterating"
	Converged LoopState = "converged"
)

// assumed plate temperature paired with the convection coefficient
// derived from it
type ConvectionState struct {
	t_plaque float64 // assumed plate temperature, K
	h        float64 // convection coefficient at t_plaque, W/m2 K
}

// settings of the outer plate temperature loop
type ConvergenceSettings struct {
	step           float64 // plate temperature adjustment per iteration, K
	decimals       int     // decimal places compared on termination
	max_iterations int     // outer iteration cap
}

func NewConvergenceSettings() *ConvergenceSettings {
	return &ConvergenceSettings{step: 0.02, decimals: 1, max_iterations: 20000}
}

// converged operating point of the dryer
type OperatingPoint struct {
	t_plaque       float64 // converged plate temperature assumption, K
	h              float64 // convection coefficient at t_plaque, W/m2 K
	p              float64 // captured flux, W/m2
	f_p            float64 // flux emitted by the plate, W/m2
	f_s            float64 // flux emitted by the soil, W/m2
	t_p            float64 // solved plate temperature, K
	t_s            float64 // solved soil temperature, K
	iterations     int     // outer iterations spent
	worst_residual float64 // largest balance residual norm seen
}

// outer loop searching the plate temperature whose balance solution
// reproduces it
type PlateTemperatureController struct {
	prm      *ThermalParameters
	finder   VectorRootFinder
	settings *ConvergenceSettings

	state          LoopState
	conv           ConvectionState
	sol            *EnergyBalanceSolution
	iterations     int
	worst_residual float64
}

func NewPlateTemperatureController(prm *ThermalParameters, finder VectorRootFinder, settings *ConvergenceSettings) *PlateTemperatureController {
	return &PlateTemperatureController{
		prm:      prm,
		finder:   finder,
		settings: settings,
		state:    Iterating,
		conv:     ConvectionState{t_plaque: prm.t_max},
	}
}

/*
Advance the loop by one step.

	Returns:
	    state after the step

	Notes:
	    One step derives h from the assumed plate temperature, solves
	    the balance for that h and compares the rounded assumed and
	    solved plate temperatures. On a match the loop is Converged;
	    otherwise the assumed temperature moves one increment toward
	    the solved one, which invalidates the solution until the next
	    step re-solves. A step in the Converged state changes nothing.
*/
func (self *PlateTemperatureController) step() (LoopState, error) {
	if self.state == Converged {
		return self.state, nil
	}

	self.conv.h = get_h_cv(self.conv.t_plaque, self.prm)

	sol, err := solve_energy_balance(self.finder, self.conv.h, self.prm)
	if err != nil {
		return self.state, err
	}
	self.sol = sol

	if sol.residual_norm > self.worst_residual {
		self.worst_residual = sol.residual_norm
	}

	d := self.settings.decimals
	if roundToDecimalPlaces(self.conv.t_plaque, d) == roundToDecimalPlaces(sol.t_p, d) {
		self.state = Converged
		return self.state, nil
	}

	if self.conv.t_plaque < sol.t_p {
		self.conv.t_plaque += self.settings.step
	} else {
		self.conv.t_plaque -= self.settings.step
	}
	self.iterations++

	return self.state, nil
}

/*
Run the loop to convergence.

	Returns:
	    converged operating point

	Notes:
	    Fails with ErrIterationLimit once the cap from the settings is
	    exhausted.
*/
func (self *PlateTemperatureController) run() (*OperatingPoint, error) {
	for {
		state, err := self.step()
		if err != nil {
			return nil, err
		}

		if state == Converged {
			return self.operating_point(), nil
		}

		if self.iterations >= self.settings.max_iterations {
			return nil, fmt.Errorf("%w: %d iterations, t_plaque %.2f K, t_p %.2f K",
				ErrIterationLimit, self.iterations, self.conv.t_plaque, self.sol.t_p)
		}
	}
}

func (self *PlateTemperatureController) operating_point() *OperatingPoint {
	return &OperatingPoint{
		t_plaque:       self.conv.t_plaque,
		h:              self.conv.h,
		p:              self.sol.p,
		f_p:            self.sol.f_p,
		f_s:            self.sol.f_s,
		t_p:            self.sol.t_p,
		t_s:            self.sol.t_s,
		iterations:     self.iterations,
		worst_residual: self.worst_residual,
	}
}
