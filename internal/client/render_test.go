package client

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polkiloo/healthboard/internal/domain/model"
)

func render(t *testing.T, v View) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, v))
	return buf.String()
}

func TestRenderSummaryKeepsServerOrder(t *testing.T) {
	out := render(t, View{Route: RouteSummary, Priorities: []model.Priority{
		{Name: "Ensure patient safety", Value: 72},
		{Name: "Reduce caregiver burden", Value: 80},
		{Name: "Gain market competitiveness", Value: 0},
	}})

	require.Contains(t, out, summaryTitle)
	require.Contains(t, out, "Poon et al.")
	require.Contains(t, out, summarySource.url)
	require.Less(t, strings.Index(out, "Ensure patient safety"), strings.Index(out, "Reduce caregiver burden"))
	require.Contains(t, out, strings.Repeat("#", 32))
	require.NotContains(t, out, strings.Repeat("#", 33))
}

func TestRenderReports(t *testing.T) {
	out := render(t, View{Route: RouteReports, MarketSeries: []model.MarketSizePoint{
		{Year: 2025, Value: 2},
		{Year: 2034, Value: 8},
	}})

	require.Contains(t, out, reportsTitle)
	require.Contains(t, out, "Precedence Research")
	require.Contains(t, out, "2034")
	require.Contains(t, out, strings.Repeat("#", barWidth))
	require.Contains(t, out, "8.00")
}

func TestRenderEmptyData(t *testing.T) {
	require.Contains(t, render(t, View{Route: RouteSummary}), "(no data)")
	require.Contains(t, render(t, View{Route: RouteReports}), "(no data)")
}

func TestRenderStaticViews(t *testing.T) {
	dash := render(t, View{Route: RouteDashboard})
	require.Contains(t, dash, dashboardTitle)
	require.Contains(t, dash, "Topic: Innovations in Healthcare")
	require.Contains(t, dash, "Deloitte")

	require.Contains(t, render(t, View{Route: RouteLogin}), "login")
}

func TestRenderUnknownRoute(t *testing.T) {
	require.Error(t, Render(&bytes.Buffer{}, View{Route: "/admin"}))
}

func TestBar(t *testing.T) {
	require.Equal(t, "", bar(0, 100))
	require.Equal(t, "", bar(5, 0))
	require.Equal(t, strings.Repeat("#", barWidth), bar(150, 100))
	require.Equal(t, strings.Repeat("#", 20), bar(50, 100))
}
