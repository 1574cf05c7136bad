package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/integrate"

	"github.com/atomphys/hydrogen/entity"
	"github.com/atomphys/hydrogen/entity/format"
	"github.com/atomphys/hydrogen/entity/parameters"
	"github.com/atomphys/hydrogen/radial"
)

type App struct {
	State  entity.State
	Output string
	Params *parameters.Parameters
}

func New(state entity.State, output string, params *parameters.Parameters) *App {
	return &App{
		State:  state,
		Output: output,
		Params: params,
	}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"n":      a.State.N,
		"l":      a.State.L,
		"energy": a.State.Energy(),
		"output": a.Output,
		"points": a.Params.Points,
		"rMin":   a.Params.RMin,
		"rMax":   a.Params.RMaxFactor * float64(a.State.N*a.State.N),
	}).Debug("App started")

	r, err := entity.RadialGrid(a.Params, a.State.N)
	if err != nil {
		return fmt.Errorf("failed to build radial grid: %w", err)
	}

	evalTime := time.Now()
	wave, err := radial.Evaluate(a.State, r)
	if err != nil {
		return fmt.Errorf("failed to evaluate radial wavefunction: %w", err)
	}
	log.WithField("time", time.Since(evalTime)).Debug("Wavefunction evaluated")

	density, err := radial.Density(r, wave)
	if err != nil {
		return fmt.Errorf("failed to compute probability density: %w", err)
	}
	log.WithField("integral", integrate.Trapezoidal(r, density)).
		Debug("Normalization check: ∫r²R²dr over the sampled grid")

	f, err := os.Create(a.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	switch a.Params.Format {
	case format.Csv:
		if err := writeCSV(f, r, wave, density); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
		log.WithField("time", time.Since(renderTime)).Info("Series exported")
	default:
		page := a.createCharts(r, wave, density)
		log.Info("Charts created")
		if err := page.Render(f); err != nil {
			return fmt.Errorf("failed to render charts: %w", err)
		}
		log.WithField("time", time.Since(renderTime)).Info("Charts rendered and saved")
	}

	return nil
}

func (a *App) createCharts(r, wave, density []float64) *components.Page {
	startTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(startTime)).Debug("Creating charts")
	}()

	header := fmt.Sprintf("Hydrogen Atom: %s | Energy = %.3f eV", a.State.Label(), a.State.Energy())

	waveLine := a.newPanel("Radial Wavefunction", header, "R(r)")
	waveLine.SetXAxis(r)
	waveLine.AddSeries(a.State.Label(), toLineData(wave),
		// zero-reference line for reading off the radial nodes
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
			Name:  "zero",
			YAxis: 0,
		}),
	)

	densityLine := a.newPanel("Probability Density", header, "r²|R(r)|²")
	densityLine.SetXAxis(r)
	densityLine.AddSeries(a.State.Label(), toLineData(density))

	page := components.NewPage()
	page.PageTitle = header
	page.SetLayout(components.PageCenterLayout)
	page.AddCharts(waveLine, densityLine)
	return page
}

func (a *App) newPanel(title, subtitle, yName string) *charts.Line {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithLegendOpts(opts.Legend{
			Orient:       "horizontal",
			Show:         opts.Bool(true),
			SelectedMode: "multiple",
			Type:         "scroll",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "chart",
					Title: "Save as image",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show:       opts.Bool(true),
					YAxisIndex: "default",
					Title: map[string]string{
						"zoom": "area zooming",
						"back": "restore area zooming",
					},
				},
				DataView: &opts.ToolBoxFeatureDataView{
					Show:  opts.Bool(true),
					Title: "Data view",
					Lang:  []string{"data view", "turn off", "refresh"},
				},
				Restore: &opts.ToolBoxFeatureRestore{
					Show:  opts.Bool(true),
					Title: "refresh",
				},
			},
		}),
		// AXIS
		charts.WithXAxisOpts(opts.XAxis{
			Name: "r (Bohr radii)",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  yName,
			Type:  "value",
			Show:  opts.Bool(true),
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	return line
}

func toLineData(values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}

func writeCSV(f *os.File, r, wave, density []float64) error {
	w := csv.NewWriter(f)

	if err := w.Write([]string{"r", "R", "r2R2"}); err != nil {
		return err
	}
	for i := range r {
		record := []string{
			strconv.FormatFloat(r[i], 'g', -1, 64),
			strconv.FormatFloat(wave[i], 'g', -1, 64),
			strconv.FormatFloat(density[i], 'g', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
