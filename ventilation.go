package main

import (
	"errors"
	"fmt"
)

// ErrNoMoisturePickup reports an airflow that cannot absorb any water.
var ErrNoMoisturePickup = errors.New("interior humidity ratio does not exceed the ambient one")

// airflow required to carry the evaporated water out of the dryer
type VentilationRequirement struct {
	m_w     float64 // mass of water to evaporate, kg
	m_dot_w float64 // evaporation rate, kg/s
	m_dot_a float64 // dry air mass flow, kg/s
	v_dot_a float64 // volumetric air flow at the interior temperature, m3/s
}

/*
Calculate the mass of water the drying has to remove.

	Args:
	    m: wet product mass, kg
	    w_i: initial moisture content, wet basis fraction
	    w_f: final moisture content, wet basis fraction

	Returns:
	    mass of water to evaporate, kg
*/
func get_m_w(m, w_i, w_f float64) float64 {
	return m * (w_i - w_f) / (1.0 - w_f)
}

/*
Build the airflow requirement of the dryer.

	Args:
	    m: wet product mass, kg
	    w_i: initial moisture content, wet basis fraction
	    w_f: final moisture content, wet basis fraction
	    t_drying: drying time, s
	    y_max: humidity ratio of the air leaving the dryer, kg/kgDA
	    y_amb: humidity ratio of the ambient air, kg/kgDA
	    t_max: maximum interior air temperature, K

	Returns:
	    airflow requirement

	Notes:
	    Each kilogram of dry air can absorb y_max - y_amb of water, so
	    that difference must be positive.
*/
func NewVentilationRequirement(m, w_i, w_f, t_drying, y_max, y_amb, t_max float64) (*VentilationRequirement, error) {
	if y_max <= y_amb {
		return nil, fmt.Errorf("%w: y_max %.5f kg/kgDA, y_amb %.5f kg/kgDA",
			ErrNoMoisturePickup, y_max, y_amb)
	}

	m_w := get_m_w(m, w_i, w_f)

	// evaporation rate, kg/s
	m_dot_w := m_w / t_drying

	// dry air mass flow, kg/s
	m_dot_a := m_dot_w / (y_max - y_amb)

	return &VentilationRequirement{
		m_w:     m_w,
		m_dot_w: m_dot_w,
		m_dot_a: m_dot_a,
		v_dot_a: m_dot_a / get_rho_a(t_max),
	}, nil
}
