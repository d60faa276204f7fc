package main

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// fixed physical inputs of the balance
type ThermalParameters struct {
	t_amb    float64 // ambient air temperature, K
	t_max    float64 // maximum interior air temperature, K
	f_d      float64 // direct solar flux, W/m2
	f_i      float64 // indirect sky flux, W/m2
	lambda_a float64 // air thermal conductivity, W/m K
	nu_a     float64 // air kinematic viscosity, m2/s
	c_a      float64 // air specific heat, J/kg K
	lc       float64 // characteristic length of the plate, m
	sgm      float64 // Stefan-Boltzmann constant, W/m2 K4
}

// scenario input in engineering units
type DryerInput struct {
	ThetaAmb   float64 `validate:"gte=0,lte=50"`                  // ambient air temperature, degree C
	XAmb       float64 `validate:"gt=0,lte=100"`                  // ambient relative humidity, %
	FD         float64 `validate:"gt=0,lte=1500"`                 // direct solar flux, W/m2
	ThetaMax   float64 `validate:"lte=100,gtfield=ThetaAmb"`      // maximum interior air temperature, degree C
	XMax       float64 `validate:"gt=0,lte=100"`                  // interior relative humidity ceiling, %
	Mass       float64 `validate:"gt=0"`                          // wet product mass, kg
	WInitial   float64 `validate:"gt=0,lt=100"`                   // initial moisture content, % wet basis
	WFinal     float64 `validate:"gte=0,ltfield=WInitial"`        // final moisture content, % wet basis
	DryingTime float64 `validate:"gt=0"`                          // drying time, h
	Width      float64 `validate:"gt=0"`                          // dryer width, m
	Lc         float64 `validate:"gte=0"`                         // characteristic length, m; 0 selects the width
	LambdaA    float64 `validate:"gt=0"`                          // air thermal conductivity, W/m K
	NuA        float64 `validate:"gt=0"`                          // air kinematic viscosity, m2/s
}

// numerical settings of the scenario
type SolverInput struct {
	Method          string  `validate:"oneof=newton broyden"` // root finder selection
	Tolerance       float64 `validate:"gt=0"`                 // residual norm target of the balance solve
	InnerIterations int     `validate:"gt=0"`                 // balance solve iteration cap
	Step            float64 `validate:"gt=0"`                 // plate temperature step, K
	Decimals        int     `validate:"gte=0,lte=6"`          // decimal places compared on termination
	MaxIterations   int     `validate:"gt=0"`                 // outer iteration cap
}

/*
Validate the scenario input before any physics runs.

	Args:
	    in: scenario input
	    solver: numerical settings

	Returns:
	    nil when every field is inside its domain
*/
func validate_input(in *DryerInput, solver *SolverInput) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	if err := validate.Struct(solver); err != nil {
		return fmt.Errorf("invalid solver settings: %w", err)
	}

	return nil
}

/*
Convert the scenario input into the fixed physical inputs.

	Args:
	    in: validated scenario input
	    f_i: indirect sky flux, W/m2

	Returns:
	    fixed physical inputs
*/
func get_thermal_parameters(in *DryerInput, f_i float64) *ThermalParameters {
	lc := in.Lc
	if lc == 0.0 {
		lc = in.Width
	}

	return &ThermalParameters{
		t_amb:    in.ThetaAmb + 273.15, // degree C -> K
		t_max:    in.ThetaMax + 273.15, // degree C -> K
		f_d:      in.FD,
		f_i:      f_i,
		lambda_a: in.LambdaA,
		nu_a:     in.NuA,
		c_a:      get_c_a(),
		lc:       lc,
		sgm:      get_sgm(),
	}
}

// root finder selected by the solver settings
func (self *SolverInput) finder() VectorRootFinder {
	if self.Method == "broyden" {
		return NewBroyden(self.Tolerance, self.InnerIterations)
	}

	return NewNewtonRaphson(self.Tolerance, self.InnerIterations)
}

// outer loop settings selected by the solver settings
func (self *SolverInput) convergence_settings() *ConvergenceSettings {
	return &ConvergenceSettings{
		step:           self.Step,
		decimals:       self.Decimals,
		max_iterations: self.MaxIterations,
	}
}
