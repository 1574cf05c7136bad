package main

import (
	"context"
	"flag"

	log "github.com/sirupsen/logrus"

	"github.com/atomphys/hydrogen/app"
	"github.com/atomphys/hydrogen/entity"
	"github.com/atomphys/hydrogen/entity/format"
	"github.com/atomphys/hydrogen/entity/parameters"
)

func main() {
	params := parameters.Default()

	n := flag.Int("n", 1, "principal quantum number (n >= 1)")
	l := flag.Int("l", 0, "angular momentum quantum number (0 <= l < n)")
	output := flag.String("o", "hydrogen.html", "output file path")
	formatText := flag.String("f", "html", "output format: html or csv")
	points := flag.Int("points", params.Points, "number of radial grid points")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	state, err := entity.NewState(*n, *l)
	if err != nil {
		log.Fatal(err)
	}

	params.Format, err = format.UnmarshalText(*formatText)
	if err != nil {
		log.Fatal(err)
	}
	params.Points = *points

	if err := app.New(state, *output, params).Run(context.Background()); err != nil {
		log.Fatal(err)
	}
	log.WithField("output", *output).Info("Done")
}
