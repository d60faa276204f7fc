package main

import (
	"math"
)

/*
Calculate the natural convection coefficient over the plate.

	Args:
	    t_plaque: assumed plate temperature, K
	    prm: fixed physical inputs

	Returns:
	    convective heat transfer coefficient, W/m2 K

	Notes:
	    Nu = 0.1 Ra^(1/3) for Ra over 1e7, otherwise Nu = 0.59 Ra^(1/4).
	    Ra equal to 1e7 falls in the laminar branch. The regime is
	    selected again on every call, with no hysteresis.
*/
func get_h_cv(t_plaque float64, prm *ThermalParameters) float64 {
	// thermal diffusivity of air, m2/s
	a := prm.lambda_a / (get_rho_a(prm.t_max) * prm.c_a)

	// Prandtl number, -
	pr := prm.nu_a / a

	// volumetric expansion coefficient, 1/K
	beta := 1.0 / prm.t_max

	// Grashof number, -
	gr := get_g() * beta * (t_plaque - prm.t_amb) * math.Pow(prm.lc, 3.0) / (prm.nu_a * prm.nu_a)

	// Rayleigh number, -
	ra := pr * gr

	nu := get_nusselt(ra)

	return nu * prm.lambda_a / prm.lc
}

/*
Calculate the Nusselt number of the plate.

	Args:
	    ra: Rayleigh number, -

	Returns:
	    Nusselt number, -
*/
func get_nusselt(ra float64) float64 {
	if ra > 1.0e7 {
		// turbulent
		return 0.1 * math.Cbrt(ra)
	}

	// laminar
	return 0.59 * math.Pow(ra, 0.25)
}
