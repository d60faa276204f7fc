package main

import (
	"errors"
	"fmt"
)

// ErrNoCapturedPower reports an operating point that captures no power.
var ErrNoCapturedPower = errors.New("captured flux is not positive")

// sizing of the collector surface for the required airflow
type SizingResult struct {
	p_need float64 // power to heat the airflow, W
	q_evap float64 // latent duty of the evaporation, W
	area   float64 // collector surface, m2
	length float64 // dryer length, m
}

/*
Size the dryer from the converged operating point.

	Args:
	    op: converged operating point
	    vent: airflow requirement
	    prm: fixed physical inputs
	    width: dryer width, m

	Returns:
	    sizing of the dryer

	Notes:
	    The collector has to heat the airflow from the ambient to the
	    interior temperature; the captured flux P of the operating
	    point supplies that power per square metre.
*/
func get_sizing(op *OperatingPoint, vent *VentilationRequirement, prm *ThermalParameters, width float64) (*SizingResult, error) {
	if op.p <= 0.0 {
		return nil, fmt.Errorf("%w: P = %.1f W/m2", ErrNoCapturedPower, op.p)
	}

	// power to raise the airflow to the interior temperature, W
	p_need := vent.m_dot_a * prm.c_a * (prm.t_max - prm.t_amb)

	// latent heat carried away by the evaporated water, W
	q_evap := vent.m_dot_w * get_l_wtr()

	// collector surface, m2
	area := p_need / op.p

	return &SizingResult{
		p_need: p_need,
		q_evap: q_evap,
		area:   area,
		length: area / width,
	}, nil
}
