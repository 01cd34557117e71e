package webui

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"wattmap.openenergy.dev/internal/energy"
	"wattmap.openenergy.dev/internal/utils"
)

// Plotting style shared by every chart fragment.
const (
	chartBackground = "#FAFAFA"
	chartWidth      = "100%"
	chartHeight     = "480px"
)

func chartInitialization(pageTitle string) charts.GlobalOpts {
	return charts.WithInitializationOpts(opts.Initialization{
		PageTitle:       pageTitle,
		Width:           chartWidth,
		Height:          chartHeight,
		BackgroundColor: chartBackground,
	})
}

// chartRenderer is the piece of the go-echarts chart API the fragment
// handlers need.
type chartRenderer interface {
	Render(w io.Writer) error
}

// renderChart writes a chart as a standalone HTML document, suitable for
// embedding in one of the dashboard's iframes.
func (webUI *WebUI) renderChart(w http.ResponseWriter, r *http.Request, c chartRenderer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(w); err != nil {
		webUI.Logger.Error("failed to render chart", "error", err, "path", r.URL.Path)
		http.Error(w, "failed to render chart", http.StatusInternalServerError)
	}
}

// emptyChart renders a titled placeholder when a filter matches nothing.
// An empty selection is an expected outcome, not an error.
func (webUI *WebUI) emptyChart(w http.ResponseWriter, r *http.Request, title string) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		chartInitialization(title),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "No data available for the selected filters."}),
	)
	webUI.renderChart(w, r, line)
}

// chartCriteria parses the filter controls' query parameters, tolerating
// absent values: missing source falls back to wind, missing year to the
// latest in the dataset.
func (webUI *WebUI) chartCriteria(r *http.Request) energy.Criteria {
	params := r.URL.Query()
	var criteria energy.Criteria

	if year, ok, _ := utils.ParseIntParam(params, "year", nil); ok {
		criteria.Year = &year
	}
	if start, ok, _ := utils.ParseIntParam(params, "startYear", nil); ok {
		criteria.StartYear = &start
	}
	if end, ok, _ := utils.ParseIntParam(params, "endYear", nil); ok {
		criteria.EndYear = &end
	}
	// Country names end up in chart markup, so strip any tags up front.
	for _, country := range utils.ParseListParam(params, "country") {
		if name := utils.SanitizeInput(country); name != "" {
			criteria.Countries = append(criteria.Countries, name)
		}
	}
	if source := params.Get("source"); source != "" && energy.FindSource(source) != nil {
		criteria.Source = source
	}
	return criteria
}

// mapChartHandler renders the world choropleth for one source and year.
func (webUI *WebUI) mapChartHandler(w http.ResponseWriter, r *http.Request) {
	criteria := webUI.chartCriteria(r)
	if criteria.Source == "" {
		criteria.Source = energy.SourceWind
	}
	if criteria.Year == nil {
		latest := webUI.EnergyManager.LatestYear()
		criteria.Year = &latest
	}
	source := energy.FindSource(criteria.Source)

	matched := energy.Filter(webUI.EnergyManager.Observations(), energy.Criteria{
		Year:   criteria.Year,
		Source: criteria.Source,
	})
	totals := energy.TotalsByCountry(matched)

	title := fmt.Sprintf("Global %s Production in %d", source.Label, *criteria.Year)
	if len(totals) == 0 {
		webUI.emptyChart(w, r, title)
		return
	}

	var max float64
	data := make([]opts.MapData, 0, len(totals))
	for _, t := range totals {
		if t.TWh > max {
			max = t.TWh
		}
		data = append(data, opts.MapData{Name: t.Country, Value: t.TWh})
	}

	worldMap := charts.NewMap()
	worldMap.RegisterMapType("world")
	worldMap.SetGlobalOptions(
		chartInitialization(title),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Formatter: "{b}: {c} TWh"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(max),
			InRange:    &opts.VisualMapInRange{Color: []string{"#E0ECF8", "#2171B5", "#08306B"}},
		}),
	)
	worldMap.AddSeries("TWh", data)

	webUI.renderChart(w, r, worldMap)
}

// trendChartHandler renders per-country TWh lines over a year range.
func (webUI *WebUI) trendChartHandler(w http.ResponseWriter, r *http.Request) {
	criteria := webUI.chartCriteria(r)
	if criteria.Source == "" {
		criteria.Source = energy.SourceWind
	}
	source := energy.FindSource(criteria.Source)

	matched := energy.Filter(webUI.EnergyManager.Observations(), criteria)
	series := energy.SeriesByCountry(matched)

	title := fmt.Sprintf("%s Production Trends", source.Label)
	if len(series) == 0 {
		webUI.emptyChart(w, r, title)
		return
	}

	years := energy.YearsOf(matched)
	xAxis := make([]string, 0, len(years))
	yearIndex := make(map[int]int, len(years))
	for i, y := range years {
		yearIndex[y] = i
		xAxis = append(xAxis, strconv.Itoa(y))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		chartInitialization(title),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "Electricity Production (TWh)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
	)
	line.SetXAxis(xAxis)

	for _, s := range series {
		points := make([]opts.LineData, len(years))
		for i := range points {
			points[i] = opts.LineData{Value: 0.0}
		}
		for _, p := range s.Points {
			points[yearIndex[p.Year]] = opts.LineData{Value: p.TWh}
		}
		line.AddSeries(s.Name, points)
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(true)}))

	webUI.renderChart(w, r, line)
}

// breakdownChartHandler renders the per-source pie for one year.
func (webUI *WebUI) breakdownChartHandler(w http.ResponseWriter, r *http.Request) {
	criteria := webUI.chartCriteria(r)
	criteria.Source = "" // the pie always spans all sources
	if criteria.Year == nil {
		latest := webUI.EnergyManager.LatestYear()
		criteria.Year = &latest
	}

	matched := energy.Filter(webUI.EnergyManager.Observations(), criteria)
	totals := energy.TotalsBySource(matched)

	title := fmt.Sprintf("Production Distribution in %d", *criteria.Year)
	if len(totals) == 0 {
		webUI.emptyChart(w, r, title)
		return
	}

	data := make([]opts.PieData, 0, len(totals))
	for _, t := range totals {
		data = append(data, opts.PieData{Name: t.Label, Value: t.TWh})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		chartInitialization(title),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Formatter: "{b}: {c} TWh ({d}%)"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
	)
	pie.AddSeries("sources", data).
		SetSeriesOptions(charts.WithPieChartOpts(opts.PieChart{Radius: []string{"35%", "60%"}}))

	webUI.renderChart(w, r, pie)
}

// comparisonChartHandler renders grouped bars: one bar group per country,
// one series per source, for one year.
func (webUI *WebUI) comparisonChartHandler(w http.ResponseWriter, r *http.Request) {
	criteria := webUI.chartCriteria(r)
	criteria.Source = ""
	if criteria.Year == nil {
		latest := webUI.EnergyManager.LatestYear()
		criteria.Year = &latest
	}

	matched := energy.Filter(webUI.EnergyManager.Observations(), criteria)

	title := fmt.Sprintf("Production by Country and Source in %d", *criteria.Year)
	if len(matched) == 0 {
		webUI.emptyChart(w, r, title)
		return
	}

	countries := energy.TotalsByCountry(matched)
	names := make([]string, 0, len(countries))
	index := make(map[string]int, len(countries))
	for i, c := range countries {
		index[c.Country] = i
		names = append(names, c.Country)
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		chartInitialization(title),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "Electricity Production (TWh)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
	)
	bar.SetXAxis(names)

	for _, src := range webUI.EnergyManager.Sources() {
		values := make([]opts.BarData, len(names))
		for i := range values {
			values[i] = opts.BarData{Value: 0.0}
		}
		for _, obs := range matched {
			if obs.Source == src.Key {
				i := index[obs.Country]
				values[i] = opts.BarData{Value: obs.TWh}
			}
		}
		bar.AddSeries(src.Label, values)
	}

	webUI.renderChart(w, r, bar)
}

// cumulativeChartHandler renders stacked area series of running totals per
// source, up to an end year.
func (webUI *WebUI) cumulativeChartHandler(w http.ResponseWriter, r *http.Request) {
	criteria := webUI.chartCriteria(r)
	criteria.Source = ""
	criteria.Year = nil
	if criteria.EndYear == nil {
		latest := webUI.EnergyManager.LatestYear()
		criteria.EndYear = &latest
	}

	matched := energy.Filter(webUI.EnergyManager.Observations(), criteria)
	series := energy.SeriesBySource(matched)

	title := fmt.Sprintf("Cumulative Production Through %d", *criteria.EndYear)
	if len(series) == 0 {
		webUI.emptyChart(w, r, title)
		return
	}

	years := energy.YearsOf(matched)
	xAxis := make([]string, 0, len(years))
	yearIndex := make(map[int]int, len(years))
	for i, y := range years {
		yearIndex[y] = i
		xAxis = append(xAxis, strconv.Itoa(y))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		chartInitialization(title),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "Cumulative Electricity Production (TWh)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
	)
	line.SetXAxis(xAxis)

	for _, s := range series {
		cumulative := energy.Cumulative(s.Points)
		points := make([]opts.LineData, len(years))
		for i := range points {
			points[i] = opts.LineData{Value: 0.0}
		}
		for _, p := range cumulative {
			points[yearIndex[p.Year]] = opts.LineData{Value: p.TWh}
		}
		line.AddSeries(s.Name, points)
	}
	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{Stack: "total", ShowSymbol: opts.Bool(false)}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.4)}),
	)

	webUI.renderChart(w, r, line)
}
