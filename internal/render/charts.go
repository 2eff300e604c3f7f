package render

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/sirupsen/logrus"

	"investment-dashboard/internal/model"
	"investment-dashboard/internal/pipeline"
)

const pageTitle = "Public Investment Dashboard"

// Dashboard renders the chart page from the loaded aggregates. Pipeline
// failures render as a user-visible warning page, never as a crash.
type Dashboard struct {
	loader *pipeline.Loader
	log    *logrus.Logger
}

func NewDashboard(loader *pipeline.Loader, log *logrus.Logger) *Dashboard {
	return &Dashboard{loader: loader, log: log}
}

// Index serves the dashboard page.
func (d *Dashboard) Index(w http.ResponseWriter, r *http.Request) {
	ds, err := d.loader.Load(r.Context())
	if err != nil {
		d.renderWarning(w, err)
		return
	}

	regionRows, _ := pipeline.Breakdown(ds.Records, model.DimensionRegion)
	provinceRows, _ := pipeline.Breakdown(ds.Records, model.DimensionProvince)
	serviceRows, _ := pipeline.Breakdown(ds.Records, model.DimensionService)

	page := components.NewPage()
	page.PageTitle = pageTitle
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		annualLine(pipeline.AnnualSeries(ds.Records)),
		breakdownBar(regionRows, "Investment by region"),
		breakdownBar(provinceRows, "Investment by province"),
		servicePie(serviceRows),
		regionScatter(pipeline.ScatterPoints(ds.Records)),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		d.log.WithError(err).Error("chart page render failed")
	}
}

func annualLine(series []model.SeriesPoint) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Annual public investment",
			Subtitle: "thousands of CLP per year",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)

	years := make([]string, 0, len(series))
	data := make([]opts.LineData, 0, len(series))
	for _, p := range series {
		years = append(years, fmt.Sprintf("%d", p.Year))
		data = append(data, opts.LineData{Value: p.Total})
	}
	line.SetXAxis(years).AddSeries("Total investment", data)
	return line
}

func breakdownBar(rows []model.BreakdownRow, title string) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)

	values := make([]string, 0, len(rows))
	data := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		values = append(values, row.Value)
		data = append(data, opts.BarData{Value: row.Total})
	}
	bar.SetXAxis(values).AddSeries("Total investment", data)
	return bar
}

func servicePie(rows []model.BreakdownRow) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Investment by service"}),
	)

	data := make([]opts.PieData, 0, len(rows))
	for _, row := range rows {
		data = append(data, opts.PieData{Name: row.Value, Value: row.Total})
	}
	pie.AddSeries("Service", data)
	return pie
}

// regionScatter plots year against amount, one series per region.
func regionScatter(points []model.ScatterPoint) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Year vs investment amount"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Year", Min: "dataMin"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Amount"}),
	)

	byRegion := make(map[string][]opts.ScatterData)
	order := make([]string, 0)
	for _, p := range points {
		if _, ok := byRegion[p.Region]; !ok {
			order = append(order, p.Region)
		}
		byRegion[p.Region] = append(byRegion[p.Region], opts.ScatterData{
			Value: []interface{}{p.Year, p.Amount},
		})
	}
	for _, region := range order {
		scatter.AddSeries(region, byRegion[region])
	}
	return scatter
}

var warningTmpl = template.Must(template.New("warning").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body>
<h1>{{.Title}}</h1>
<div class="{{.Kind}}">
<p><strong>{{.Headline}}</strong></p>
{{if .Cause}}<p>{{.Cause}}</p>{{end}}
</div>
</body>
</html>
`))

// renderWarning shows the taxonomy-specific message instead of charts.
func (d *Dashboard) renderWarning(w http.ResponseWriter, loadErr error) {
	status, headline, cause := pipeline.UserMessage(loadErr)
	kind := "error"
	if pipeline.IsEmptyResult(loadErr) {
		kind = "warning"
	} else {
		d.log.WithError(loadErr).Error("dataset load failed")
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = warningTmpl.Execute(w, map[string]string{
		"Title":    pageTitle,
		"Kind":     kind,
		"Headline": headline,
		"Cause":    cause,
	})
}
