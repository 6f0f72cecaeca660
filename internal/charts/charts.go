// Package charts builds the interactive dashboard charts from
// computed statistics.
package charts

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"football-insights/internal/stats"
)

// ChartConfig holds shared presentation options.
type ChartConfig struct {
	Title    string // Chart title
	Subtitle string // Chart subtitle
	Width    string // Chart width (e.g., "900px")
	Height   string // Chart height (e.g., "500px")
	Theme    string // Chart theme
}

// DefaultChartConfig returns the default chart configuration.
func DefaultChartConfig() ChartConfig {
	return ChartConfig{
		Width:  "900px",
		Height: "480px",
		Theme:  "dark",
	}
}

// Result series colors, colorblind friendly: blue win, grey draw,
// orange loss.
const (
	winColor  = "#1f77b4"
	drawColor = "#7f7f7f"
	lossColor = "#ff7f0e"
	homeColor = "#9467bd"
	awayColor = "#2ca02c"
)

func baseOptions(config ChartConfig) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	}
}

// WinRateBar charts a team's win/draw/loss percentage per tournament
// as grouped bars.
func WinRateBar(tallies []stats.TournamentTally, config ChartConfig) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(baseOptions(config)...)

	xLabels := make([]string, len(tallies))
	winData := make([]opts.BarData, len(tallies))
	drawData := make([]opts.BarData, len(tallies))
	lossData := make([]opts.BarData, len(tallies))
	for i, tt := range tallies {
		xLabels[i] = tt.Tournament
		winData[i] = opts.BarData{Value: tt.Percentages.Win}
		drawData[i] = opts.BarData{Value: tt.Percentages.Draw}
		lossData[i] = opts.BarData{Value: tt.Percentages.Loss}
	}

	bar.SetXAxis(xLabels).
		AddSeries("Win", winData, charts.WithItemStyleOpts(opts.ItemStyle{Color: winColor})).
		AddSeries("Draw", drawData, charts.WithItemStyleOpts(opts.ItemStyle{Color: drawColor})).
		AddSeries("Loss", lossData, charts.WithItemStyleOpts(opts.ItemStyle{Color: lossColor}))

	return bar
}

// GoalTrendLine charts average home and away goals per year as a
// smooth filled line.
func GoalTrendLine(yearly []stats.YearlyGoals, config ChartConfig) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(baseOptions(config)...)

	xLabels := make([]string, len(yearly))
	homeData := make([]opts.LineData, len(yearly))
	awayData := make([]opts.LineData, len(yearly))
	for i, y := range yearly {
		xLabels[i] = fmt.Sprintf("%d", y.Year)
		homeData[i] = opts.LineData{Value: y.AvgHomeGoals}
		awayData[i] = opts.LineData{Value: y.AvgAwayGoals}
	}

	areaStyle := charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: opts.Float(0.4)})
	smooth := charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)})

	line.SetXAxis(xLabels).
		AddSeries("Home Goals", homeData, smooth, areaStyle,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: homeColor})).
		AddSeries("Away Goals", awayData, smooth, areaStyle,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: awayColor}))

	return line
}

// HomeAwayBar charts a home-vs-away win/draw/loss percentage split as
// grouped bars.
func HomeAwayBar(split stats.HomeAwaySplit, config ChartConfig) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(baseOptions(config)...)

	bar.SetXAxis([]string{"Home", "Away"}).
		AddSeries("Win", []opts.BarData{{Value: split.Home.Win}, {Value: split.Away.Win}},
			charts.WithItemStyleOpts(opts.ItemStyle{Color: winColor})).
		AddSeries("Draw", []opts.BarData{{Value: split.Home.Draw}, {Value: split.Away.Draw}},
			charts.WithItemStyleOpts(opts.ItemStyle{Color: drawColor})).
		AddSeries("Loss", []opts.BarData{{Value: split.Home.Loss}, {Value: split.Away.Loss}},
			charts.WithItemStyleOpts(opts.ItemStyle{Color: lossColor}))

	return bar
}

// HeadToHeadRadar charts both teams' four-metric profiles on a shared
// 0-100 radar.
func HeadToHeadRadar(summary *stats.HeadToHeadSummary, config ChartConfig) *charts.Radar {
	radar := charts.NewRadar()
	radar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithRadarComponentOpts(opts.RadarComponent{
			Indicator: []*opts.Indicator{
				{Name: "Win Rate", Max: 100},
				{Name: "Home Win Rate", Max: 100},
				{Name: "Clean Sheets", Max: 100},
				{Name: "Recent Form", Max: 100},
			},
		}),
	)

	radar.AddSeries(summary.TeamA, []opts.RadarData{{
		Name: summary.TeamA,
		Value: []float64{
			summary.ProfileA.WinRate,
			summary.ProfileA.HomeWinRate,
			summary.ProfileA.CleanSheets,
			summary.ProfileA.RecentForm,
		},
	}}, charts.WithItemStyleOpts(opts.ItemStyle{Color: homeColor}))

	radar.AddSeries(summary.TeamB, []opts.RadarData{{
		Name: summary.TeamB,
		Value: []float64{
			summary.ProfileB.WinRate,
			summary.ProfileB.HomeWinRate,
			summary.ProfileB.CleanSheets,
			summary.ProfileB.RecentForm,
		},
	}}, charts.WithItemStyleOpts(opts.ItemStyle{Color: awayColor}))

	return radar
}

// HeadToHeadSankey charts the outcome-flow breakdown: hosting team on
// the left, outcome buckets on the right, edge width by match count.
func HeadToHeadSankey(summary *stats.HeadToHeadSummary, config ChartConfig) *charts.Sankey {
	sankey := charts.NewSankey()
	sankey.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  config.Width,
			Height: config.Height,
			Theme:  config.Theme,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    config.Title,
			Subtitle: config.Subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	// Outcome node labels carry the raw counts, as on the original
	// flow diagram.
	winsANode := fmt.Sprintf("%s Wins (%d)", summary.TeamA, summary.WinsA)
	winsBNode := fmt.Sprintf("%s Wins (%d)", summary.TeamB, summary.WinsB)
	drawNode := fmt.Sprintf("Draw (%d)", summary.Draws)

	nodes := []opts.SankeyNode{
		{Name: summary.TeamA, ItemStyle: &opts.ItemStyle{Color: homeColor}},
		{Name: summary.TeamB, ItemStyle: &opts.ItemStyle{Color: awayColor}},
		{Name: winsANode, ItemStyle: &opts.ItemStyle{Color: winColor}},
		{Name: winsBNode, ItemStyle: &opts.ItemStyle{Color: winColor}},
		{Name: drawNode, ItemStyle: &opts.ItemStyle{Color: drawColor}},
	}

	links := make([]opts.SankeyLink, 0, len(summary.Flow))
	for _, edge := range summary.Flow {
		target := drawNode
		switch edge.Winner {
		case summary.TeamA:
			target = winsANode
		case summary.TeamB:
			target = winsBNode
		}
		links = append(links, opts.SankeyLink{
			Source: edge.Host,
			Target: target,
			Value:  float32(edge.Count),
		})
	}

	sankey.AddSeries("outcomes", nodes, links,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}),
	)

	return sankey
}
