package main

import (
	_ "embed"
	"errors"
	"fmt"
	"math"

	"github.com/gocarina/gocsv"
)

//go:embed saturation_pressure.csv
var saturation_pressure_csv []byte

// ErrTableRange reports a temperature the table cannot answer for.
var ErrTableRange = errors.New("temperature outside the saturation pressure table")

// one anchor row of the embedded table
type SaturationPressureRow struct {
	Temperature float64 `csv:"temperature"` // air temperature, degree C
	Pressure    float64 `csv:"pressure"`    // saturation pressure, Pa
}

// saturation pressure of water vapour keyed by air temperature
type SaturationPressureTable struct {
	rows []*SaturationPressureRow
}

/*
Load the saturation pressure table embedded in the binary.

	Returns:
	    saturation pressure table

	Notes:
	    The rows are steam table anchor points every 5 degree C between
	    0 and 100 degree C, in ascending order.
*/
func NewSaturationPressureTable() *SaturationPressureTable {
	var rows []*SaturationPressureRow
	if err := gocsv.UnmarshalBytes(saturation_pressure_csv, &rows); err != nil {
		panic(err)
	}

	if len(rows) < 2 {
		panic("saturation pressure table requires at least two rows")
	}

	return &SaturationPressureTable{rows: rows}
}

/*
Look up the saturation pressure of water vapour.

	Args:
	    theta: air temperature, degree C

	Returns:
	    saturation pressure, Pa

	Notes:
	    The query is rounded to the nearest whole degree before the
	    lookup; values between anchor rows are interpolated linearly.
*/
func (self *SaturationPressureTable) get_p_vs(theta float64) (float64, error) {
	t := roundToDecimalPlaces(theta, 0)

	first := self.rows[0]
	last := self.rows[len(self.rows)-1]
	if t < first.Temperature || t > last.Temperature {
		return 0.0, fmt.Errorf("%w: %.1f degree C not in [%.0f, %.0f]",
			ErrTableRange, theta, first.Temperature, last.Temperature)
	}

	for i := 1; i < len(self.rows); i++ {
		r0, r1 := self.rows[i-1], self.rows[i]
		if t <= r1.Temperature {
			alpha := (t - r0.Temperature) / (r1.Temperature - r0.Temperature)
			return r0.Pressure + alpha*(r1.Pressure-r0.Pressure), nil
		}
	}

	return last.Pressure, nil
}

func roundToDecimalPlaces(value float64, decimalPlaces int) float64 {
	shift := math.Pow10(decimalPlaces)
	return math.Round(value*shift) / shift
}
