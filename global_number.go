package main

// specific heat of air, J/kg K
func get_c_a() float64 {
	return 1005.0
}

// specific gas constant of dry air, J/kg K
func get_r_a() float64 {
	return 287.06
}

/*
Calculate the density of dry air from the ideal gas law.

	Args:
	    t: air temperature, K

	Returns:
	    air density, kg/m3
*/
func get_rho_a(t float64) float64 {
	f := _get_f()

	return f / (get_r_a() * t)
}

// latent heat of evaporation of water, J/kg
func get_l_wtr() float64 {
	return 2501000.0
}

// Stefan-Boltzmann constant, W/m2 K4
func get_sgm() float64 {
	return 5.67e-8
}

// gravitational acceleration, m/s2
func get_g() float64 {
	return 9.81
}

// thermal conductivity of air at around 300 K, W/m K
func get_lambda_a() float64 {
	return 0.0262
}

// kinematic viscosity of air at around 300 K, m2/s
func get_nu_a() float64 {
	return 1.57e-5
}
