package main

import (
	"fmt"
	"log"
	"os"

	"frogjump-go/internal/config"
	"frogjump-go/internal/presenter"
	"frogjump-go/pkg/uniform"
)

func main() {
	cfg, err := config.ParseGenerator(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	log.Println("Starting generator...")
	log.Println("Configuration of the run:")
	log.Println(cfg.ToString())
	log.Println("===END===")

	var req uniform.Request
	if cfg.Interactive {
		req, err = promptRequest(os.Stdin, os.Stdout)
	} else {
		req, err = uniform.ParseRequest(cfg.Count, cfg.Max, cfg.Min)
	}
	if err != nil {
		log.Fatalf("Request rejected: %v\n", err)
	}

	samples, err := uniform.Generate(req, nil)
	if err != nil {
		log.Fatalf("Request rejected: %v\n", err)
	}

	if err := presenter.SaveSamples(cfg.RawFile, cfg.ScaledFile, samples); err != nil {
		log.Fatalf("Error saving samples: %v\n", err)
	}
	fmt.Printf("Files '%s' and '%s' generated successfully.\n", cfg.RawFile, cfg.ScaledFile)

	if cfg.Histogram && samples.Len() > 0 {
		fmt.Println("\nHistogram of the raw samples (20 bins):")
		presenter.NewHistogram(samples.Raw, 20, 0, 1).Fprint(os.Stdout, 50)

		lo, hi := uniform.Bounds(samples.Scaled)
		fmt.Printf("Scaled samples span [%g, %g]\n", lo, hi)
	}
}
