package main

import (
	"math"
)

/*
Calculate the clear sky emissivity from the dew point temperature.

	Args:
	    t_dp: dew point temperature, degree C

	Returns:
	    sky emissivity, -

	Notes:
	    Berdahl and Martin correlation
	    eps = 0.711 + 0.56 (t_dp/100) + 0.73 (t_dp/100)^2
*/
func get_eps_sky(t_dp float64) float64 {
	td := t_dp / 100.0

	return 0.711 + 0.56*td + 0.73*td*td
}

/*
Calculate the equivalent sky temperature.

	Args:
	    t_amb: ambient air temperature, K
	    eps_sky: sky emissivity, -

	Returns:
	    sky temperature, K
*/
func get_t_sky(t_amb, eps_sky float64) float64 {
	return t_amb * math.Pow(eps_sky, 0.25)
}

/*
Calculate the long wave flux received from the sky.

	Args:
	    t_amb: ambient air temperature, K
	    x_amb: ambient relative humidity as a fraction, -

	Returns:
	    indirect sky flux, W/m2

	Notes:
	    The chain is dew point -> sky emissivity -> sky temperature,
	    then Fi = sgm T_sky^4.
*/
func get_f_i(t_amb, x_amb float64) (float64, error) {
	t_dp, err := get_t_dp(t_amb-273.15, x_amb)
	if err != nil {
		return 0.0, err
	}

	t_sky := get_t_sky(t_amb, get_eps_sky(t_dp))

	return get_sgm() * math.Pow(t_sky, 4.0), nil
}
