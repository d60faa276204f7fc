package main

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// scenario input used when no file overrides a key
func default_input() *DryerInput {
	return &DryerInput{
		ThetaAmb:   26.85,
		XAmb:       50.0,
		FD:         600.0,
		ThetaMax:   65.0,
		XMax:       30.0,
		Mass:       50.0,
		WInitial:   80.0,
		WFinal:     15.0,
		DryingTime: 24.0,
		Width:      1.0,
		Lc:         0.5,
		LambdaA:    get_lambda_a(),
		NuA:        get_nu_a(),
	}
}

// solver settings used when no file overrides a key
func default_solver() *SolverInput {
	return &SolverInput{
		Method:          "newton",
		Tolerance:       1.0e-9,
		InnerIterations: 100,
		Step:            0.02,
		Decimals:        1,
		MaxIterations:   20000,
	}
}

/*
Load a scenario from an ini file.

	Args:
	    path: scenario file path; empty keeps the defaults

	Returns:
	    scenario input and solver settings
*/
func load_scenario(path string) (*DryerInput, *SolverInput, error) {
	in := default_input()
	solver := default_solver()

	if path == "" {
		return in, solver, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load scenario `%s`: %w", path, err)
	}

	env := file.Section("environment")
	in.ThetaAmb = env.Key("t_amb").MustFloat64(in.ThetaAmb)
	in.XAmb = env.Key("x_amb").MustFloat64(in.XAmb)
	in.FD = env.Key("f_d").MustFloat64(in.FD)

	product := file.Section("product")
	in.Mass = product.Key("mass").MustFloat64(in.Mass)
	in.WInitial = product.Key("w_initial").MustFloat64(in.WInitial)
	in.WFinal = product.Key("w_final").MustFloat64(in.WFinal)
	in.DryingTime = product.Key("drying_time").MustFloat64(in.DryingTime)

	dryer := file.Section("dryer")
	in.ThetaMax = dryer.Key("t_max").MustFloat64(in.ThetaMax)
	in.XMax = dryer.Key("x_max").MustFloat64(in.XMax)
	in.Width = dryer.Key("width").MustFloat64(in.Width)
	in.Lc = dryer.Key("lc").MustFloat64(in.Lc)

	air := file.Section("air")
	in.LambdaA = air.Key("lambda").MustFloat64(in.LambdaA)
	in.NuA = air.Key("nu").MustFloat64(in.NuA)

	s := file.Section("solver")
	solver.Method = s.Key("method").MustString(solver.Method)
	solver.Tolerance = s.Key("tolerance").MustFloat64(solver.Tolerance)
	solver.InnerIterations = s.Key("inner_iterations").MustInt(solver.InnerIterations)
	solver.Step = s.Key("step").MustFloat64(solver.Step)
	solver.Decimals = s.Key("decimals").MustInt(solver.Decimals)
	solver.MaxIterations = s.Key("max_iterations").MustInt(solver.MaxIterations)

	return in, solver, nil
}
