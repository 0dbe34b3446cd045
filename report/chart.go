package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/GKarbon/crystal-index/hkl"
	"github.com/GKarbon/crystal-index/match"
)

// Chart renders an HTML scatter of the matches to w: x is the accepted
// equivalent's angle to the reference plane, y is the pair's d-spacing
// ratio. One point per match, labelled with the plane pair.
//
// The angle and ratio are recomputed from the match planes; Match
// itself carries only the pair and the zone axis.
func Chart(w io.Writer, matches []match.Match, title string) error {
	data := make([]opts.ScatterData, 0, len(matches))
	for _, m := range matches {
		angle, err := hkl.AngleBetween(m.First, m.Second)
		if err != nil {
			return err
		}
		d1, err := m.First.DSpacing()
		if err != nil {
			return err
		}
		d2, err := m.Second.DSpacing()
		if err != nil {
			return err
		}

		data = append(data, opts.ScatterData{
			Name:  fmt.Sprintf("%s / %s", m.First, m.Second),
			Value: []interface{}{angle, d1 / d2},
		})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title, Width: "900px", Height: "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("matches=%d", len(matches)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "angle (deg)", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "d-spacing ratio", NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("matches", data,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))

	return scatter.Render(w)
}
