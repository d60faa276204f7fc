package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/phpdave11/gofpdf"
)

// one row of the results file
type ResultRow struct {
	TPlaque    float64 `csv:"t_plaque_k"`
	H          float64 `csv:"h_w_m2k"`
	P          float64 `csv:"p_w_m2"`
	FP         float64 `csv:"f_p_w_m2"`
	FS         float64 `csv:"f_s_w_m2"`
	TP         float64 `csv:"t_p_k"`
	TS         float64 `csv:"t_s_k"`
	Iterations int     `csv:"iterations"`
	Residual   float64 `csv:"residual_norm"`
	WaterMass  float64 `csv:"water_mass_kg"`
	AirFlow    float64 `csv:"air_flow_kg_s"`
	VolumeFlow float64 `csv:"volume_flow_m3_s"`
	PowerNeed  float64 `csv:"power_need_w"`
	LatentDuty float64 `csv:"latent_duty_w"`
	Area       float64 `csv:"area_m2"`
	Length     float64 `csv:"length_m"`
}

func new_result_row(op *OperatingPoint, vent *VentilationRequirement, sz *SizingResult) *ResultRow {
	return &ResultRow{
		TPlaque:    op.t_plaque,
		H:          op.h,
		P:          op.p,
		FP:         op.f_p,
		FS:         op.f_s,
		TP:         op.t_p,
		TS:         op.t_s,
		Iterations: op.iterations,
		Residual:   op.worst_residual,
		WaterMass:  vent.m_w,
		AirFlow:    vent.m_dot_a,
		VolumeFlow: vent.v_dot_a,
		PowerNeed:  sz.p_need,
		LatentDuty: sz.q_evap,
		Area:       sz.area,
		Length:     sz.length,
	}
}

/*
Save the results as a single row CSV file.

	Args:
	    path: output file path
	    row: results of the run
*/
func save_results(path string, row *ResultRow) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	rows := []*ResultRow{row}

	return gocsv.MarshalFile(&rows, file)
}

/*
Write the one page datasheet.

	Args:
	    path: output file path
	    in: scenario input the run was made with
	    row: results of the run
*/
func save_datasheet(path string, in *DryerInput, row *ResultRow) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Solar dryer sizing")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	section := func(title string, lines []string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, l := range lines {
			pdf.Cell(0, 6, l)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	section("Scenario", []string{
		fmt.Sprintf("Ambient: %.1f degree C, %.0f %% RH, direct flux %.0f W/m2", in.ThetaAmb, in.XAmb, in.FD),
		fmt.Sprintf("Interior: %.1f degree C max, %.0f %% RH ceiling", in.ThetaMax, in.XMax),
		fmt.Sprintf("Product: %.1f kg, moisture %.0f %% -> %.0f %% in %.0f h", in.Mass, in.WInitial, in.WFinal, in.DryingTime),
		fmt.Sprintf("Geometry: width %.2f m", in.Width),
	})

	section("Operating point", []string{
		fmt.Sprintf("Convection coefficient h: %.2f W/m2 K", row.H),
		fmt.Sprintf("Captured flux P: %.1f W/m2", row.P),
		fmt.Sprintf("Plate: %.1f K, emitted flux %.1f W/m2", row.TP, row.FP),
		fmt.Sprintf("Soil: %.1f K, emitted flux %.1f W/m2", row.TS, row.FS),
		fmt.Sprintf("Outer iterations: %d, residual norm %.2e", row.Iterations, row.Residual),
	})

	section("Ventilation", []string{
		fmt.Sprintf("Water to evaporate: %.2f kg", row.WaterMass),
		fmt.Sprintf("Air flow: %.4f kg/s (%.1f m3/h)", row.AirFlow, row.VolumeFlow*3600.0),
	})

	section("Sizing", []string{
		fmt.Sprintf("Heating power: %.1f W", row.PowerNeed),
		fmt.Sprintf("Latent duty: %.1f W", row.LatentDuty),
		fmt.Sprintf("Collector surface: %.2f m2", row.Area),
		fmt.Sprintf("Dryer length: %.2f m", row.Length),
	})

	return pdf.OutputFileAndClose(path)
}

// console summary of the run
func print_summary(row *ResultRow) {
	fmt.Printf("h: %.3f W/m2 K\n", row.H)
	fmt.Printf("P: %.1f W/m2\n", row.P)
	fmt.Printf("t_p: %.2f K  f_p: %.1f W/m2\n", row.TP, row.FP)
	fmt.Printf("t_s: %.2f K  f_s: %.1f W/m2\n", row.TS, row.FS)
	fmt.Printf("water mass: %.2f kg\n", row.WaterMass)
	fmt.Printf("air flow: %.4f kg/s\n", row.AirFlow)
	fmt.Printf("power need: %.1f W\n", row.PowerNeed)
	fmt.Printf("length: %.2f m\n", row.Length)
}
