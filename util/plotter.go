package util

import (
	"fmt"
	"io"
	"os"

	"eating-helper/models"
	"eating-helper/nutrition"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderWeeklyChart writes an HTML page with two bar charts for the daily
// window: calories per day, and protein/carbohydrates/fat stacked per day.
func RenderWeeklyChart(w io.Writer, days []models.DailyNutrition) error {
	if err := nutrition.ValidateWindow(days); err != nil {
		return err
	}

	labels := make([]string, len(days))
	calories := make([]opts.BarData, len(days))
	protein := make([]opts.BarData, len(days))
	carbohydrates := make([]opts.BarData, len(days))
	fat := make([]opts.BarData, len(days))
	for i, d := range days {
		row := nutrition.DayRow(i, d)
		labels[i] = row.Name
		calories[i] = opts.BarData{Name: row.Name, Value: row.Calories}
		protein[i] = opts.BarData{Name: row.Name, Value: row.Protein}
		carbohydrates[i] = opts.BarData{Name: row.Name, Value: row.Carbohydrates}
		fat[i] = opts.BarData{Name: row.Name, Value: row.Fat}
	}

	caloriesBar := charts.NewBar()
	caloriesBar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weekly nutrition",
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Calories per day", Subtitle: "kcal"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	caloriesBar.SetXAxis(labels).AddSeries("Calories", calories)

	macrosBar := charts.NewBar()
	macrosBar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  "800px",
			Height: "400px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Macros per day", Subtitle: "grams"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Right: "10%"}),
	)
	stacked := charts.WithBarChartOpts(opts.BarChart{Stack: "macros"})
	macrosBar.SetXAxis(labels).
		AddSeries("Protein", protein, stacked).
		AddSeries("Carbs", carbohydrates, stacked).
		AddSeries("Fat", fat, stacked)

	page := components.NewPage()
	page.PageTitle = "Weekly nutrition"
	page.AddCharts(caloriesBar, macrosBar)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// PlotWeeklyChart renders the weekly chart into an HTML file at path.
func PlotWeeklyChart(path string, days []models.DailyNutrition) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	return RenderWeeklyChart(f, days)
}
