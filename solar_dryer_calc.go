package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

/*
Execute the sizing computation.

	Args:
	    scenario_path: path of the scenario ini file; empty keeps the defaults
	    output_data_dir: path of the output folder
	    is_report_saved: write the PDF datasheet or not
*/
func run(scenario_path string, output_data_dir string, is_report_saved bool) error {
	// ---- preparation ----

	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		os.Mkdir(output_data_dir, 0755)
	}

	if _, err := os.Stat(output_data_dir); os.IsNotExist(err) {
		return fmt.Errorf("`%s` is not a directory", output_data_dir)
	}

	log.WithFields(log.Fields{"scenario": scenario_path}).Info("load scenario")
	in, solver, err := load_scenario(scenario_path)
	if err != nil {
		return err
	}

	if err := validate_input(in, solver); err != nil {
		return err
	}

	// ---- upstream chain ----

	table := NewSaturationPressureTable()

	// humidity ratio of the ambient air, kg/kgDA
	p_vs_amb, err := table.get_p_vs(in.ThetaAmb)
	if err != nil {
		return err
	}
	y_amb := get_x(get_p_v(in.XAmb/100.0, p_vs_amb))

	// humidity ratio of the air leaving the dryer, kg/kgDA
	p_vs_max, err := table.get_p_vs(in.ThetaMax)
	if err != nil {
		return err
	}
	y_max := get_x(get_p_v(in.XMax/100.0, p_vs_max))

	// indirect sky flux, W/m2
	f_i, err := get_f_i(in.ThetaAmb+273.15, in.XAmb/100.0)
	if err != nil {
		return err
	}

	prm := get_thermal_parameters(in, f_i)

	log.WithFields(log.Fields{
		"f_i":   f_i,
		"y_amb": y_amb,
		"y_max": y_max,
	}).Info("upstream chain done")

	vent, err := NewVentilationRequirement(
		in.Mass,
		in.WInitial/100.0,
		in.WFinal/100.0,
		in.DryingTime*3600.0, // h -> s
		y_max,
		y_amb,
		prm.t_max,
	)
	if err != nil {
		return err
	}

	// ---- balance ----

	ctl := NewPlateTemperatureController(prm, solver.finder(), solver.convergence_settings())

	op, err := ctl.run()
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"t_plaque":   op.t_plaque,
		"h":          op.h,
		"iterations": op.iterations,
		"residual":   op.worst_residual,
	}).Info("plate temperature loop converged")

	if op.worst_residual > solver.Tolerance {
		log.WithFields(log.Fields{"residual": op.worst_residual}).Warn("balance solve left residuals above the tolerance")
	}

	// ---- sizing and output ----

	sz, err := get_sizing(op, vent, prm, in.Width)
	if err != nil {
		return err
	}

	row := new_result_row(op, vent, sz)

	print_summary(row)

	results_path := filepath.Join(output_data_dir, "results.csv")
	log.WithFields(log.Fields{"path": results_path}).Info("save results")
	if err := save_results(results_path, row); err != nil {
		return err
	}

	if is_report_saved {
		datasheet_path := filepath.Join(output_data_dir, "datasheet.pdf")
		log.WithFields(log.Fields{"path": datasheet_path}).Info("save datasheet")
		if err := save_datasheet(datasheet_path, in, row); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	var scenario string
	flag.StringVar(&scenario, "scenario", "", "scenario ini file; built in defaults when omitted")

	var output_data_dir string
	flag.StringVar(&output_data_dir, "o", ".", "output folder")

	var report_saved bool
	flag.BoolVar(&report_saved, "report", false, "write the PDF datasheet")

	var logLevel string
	flag.StringVar(&logLevel, "log", "info", "log level")

	flag.Parse()

	lvl, err := log.ParseLevel(logLevel)
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)

	fmt.Printf("scenario: %s\n", scenario)
	fmt.Printf("output_data_dir: %s\n", output_data_dir)
	fmt.Printf("report_saved: %t\n", report_saved)

	start := time.Now()

	if err := run(scenario, output_data_dir, report_saved); err != nil {
		log.Fatal(err)
	}

	log.Infof("elapsed_time: %v", time.Since(start))
}
