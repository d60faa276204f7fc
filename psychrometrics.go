package main

import (
	"errors"
	"fmt"
	"math"
)

// ErrDewPointDomain reports a relative humidity the dew point is not defined for.
var ErrDewPointDomain = errors.New("dew point undefined for the relative humidity")

/*
Calculate the water vapour pressure from the relative humidity.

	Args:
	    x_rh: relative humidity as a fraction, -
	    p_vs: saturation pressure, Pa

	Returns:
	    water vapour pressure, Pa
*/
func get_p_v(x_rh, p_vs float64) float64 {
	return x_rh * p_vs
}

/*
Calculate the humidity ratio from the water vapour pressure.

	Args:
	    p_v: water vapour pressure, Pa

	Returns:
	    humidity ratio, kg/kgDA
*/
func get_x(p_v float64) float64 {
	f := _get_f()

	return 0.622 * p_v / (f - p_v)
}

/*
Calculate the saturation pressure of water vapour in closed form.

	Args:
	    theta: air temperature, degree C

	Returns:
	    saturation pressure, Pa

	Notes:
	    Wexler type fit, separate coefficient sets over and under 0 degree C.
	    The embedded table is the primary source for lookups; this form
	    serves as the independent check of the table values.
*/
func get_p_vs(theta float64) float64 {
	// absolute temperature, K
	t := theta + 273.15

	const a1 = -6096.9385
	const a2 = 21.2409642
	const a3 = -0.02711193
	const a4 = 0.00001673952
	const a5 = 2.433502
	const b1 = -6024.5282
	const b2 = 29.32707
	const b3 = 0.010613863
	const b4 = -0.000013198825
	const b5 = -0.49382577

	var p_vs float64
	if theta >= 0.0 {
		p_vs = math.Exp(a1/t + a2 + a3*t + a4*t*t + a5*math.Log(t))
	} else {
		p_vs = math.Exp(b1/t + b2 + b3*t + b4*t*t + b5*math.Log(t))
	}

	return p_vs
}

/*
Calculate the dew point temperature with the Magnus formula.

	Args:
	    theta: air temperature, degree C
	    x_rh: relative humidity as a fraction, -

	Returns:
	    dew point temperature, degree C

	Notes:
	    Magnus constants a = 17.625, b = 243.04 degree C.
	    The logarithm is undefined for x_rh <= 0.
*/
func get_t_dp(theta, x_rh float64) (float64, error) {
	if x_rh <= 0.0 {
		return 0.0, fmt.Errorf("%w: %.3f", ErrDewPointDomain, x_rh)
	}

	const a = 17.625
	const b = 243.04

	alpha := math.Log(x_rh) + a*theta/(b+theta)

	return b * alpha / (a - alpha), nil
}

/*
Atmospheric pressure.

	Returns:
	    atmospheric pressure, Pa
*/
func _get_f() float64 {
	return 101325.0
}
