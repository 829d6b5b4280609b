package main

import (
	"fmt"
	"log"
	"os"

	"frogjump-go/internal/config"
	"frogjump-go/internal/presenter"
	"frogjump-go/internal/simulator"
)

func main() {
	cfg, err := config.ParseWalk(3, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	log.Println("Starting 3D frog simulation...")
	log.Println("Configuration of the run:")
	log.Println(cfg.ToString())
	log.Println("===END===")

	res, err := simulator.Run(cfg)
	if err != nil {
		log.Fatalf("Simulation failed: %v\n", err)
	}

	presenter.PrintReport(os.Stdout, res)

	if cfg.CSVFile != "" {
		if err := presenter.SaveTrajectoryCSV(res, cfg.CSVFile); err != nil {
			log.Printf("Error saving %s: %v", cfg.CSVFile, err)
		}
	}
	if cfg.PlotFile != "" {
		if err := presenter.GenerateWalkPlot(cfg.PlotFile, res); err != nil {
			log.Fatalf("Error plotting %s: %v\n", cfg.PlotFile, err)
		}
		fmt.Printf("Chart saved to %s\n", cfg.PlotFile)
	}
}
