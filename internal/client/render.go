package client

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
)

const barWidth = 40

type source struct {
	label string
	url   string
}

var (
	dashboardSource = source{"Deloitte", "https://www.deloitte.com/us/en/Industries/life-sciences-health-care/articles/top-10-health-care-innovations.html"}
	summarySource   = source{"Poon et al.", "https://pmc.ncbi.nlm.nih.gov/articles/PMC12202002/#sup1"}
	reportsSource   = source{"Precedence Research", "https://www.precedenceresearch.com/3d-printing-in-healthcare-market"}
)

const (
	dashboardTitle = "Executive Dashboard"
	summaryTitle   = "AI Adoption Priorities in Healthcare"
	reportsTitle   = "3D Printing in Healthcare Market Size Growth (2025-2034)"
)

var dashboardProse = []string{
	"Emerging innovations are poised to transform care delivery over the next decade. " +
		"The main driver is the industry's need to achieve \"more for less\": better value and outcomes at lower cost. " +
		"Value-based care, consumerism and data availability push that shift forward.",
	"Sequencing and immunotherapy enable targeted, personalized treatment, while AI and biosensors change how patient health is monitored. " +
		"Care is moving beyond traditional settings through telehealth and retail clinics. " +
		"3D printing and AI stand out: one allows custom designed healthcare technology, the other helps keep patients and caretakers properly prioritized.",
}

var summaryProse = []string{
	"Results of a 2024 survey of health systems and their leaders on the top priorities for implementing AI technologies. " +
		"Caregiver burden, patient safety and efficiency were cited most often. " +
		"Financial improvement ranked lower but still above patient satisfaction, and no organization named market competitiveness, " +
		"suggesting internal operational benefits outweigh external pressure.",
}

var reportsProse = []string{
	"Projected growth of the 3D printing market in healthcare. " +
		"The market is already close to 2 billion USD in 2025 and is expected to keep growing steadily, " +
		"driven by customized medical devices, pharmaceutical and bioprinting uses, and the rising number of people with chronic disease. " +
		"As regulatory pathways become clearer the market could exceed 8 billion USD by 2034.",
}

// Render writes a text rendition of the view.
func Render(w io.Writer, v View) error {
	var b strings.Builder

	switch v.Route {
	case RouteLogin:
		b.WriteString("Login\n\nRun `healthboard-cli login` to sign in.\n")
	case RouteDashboard:
		heading(&b, dashboardTitle)
		b.WriteString("Topic: Innovations in Healthcare\n\n")
		paragraphs(&b, dashboardProse)
		sourceLine(&b, dashboardSource)
		b.WriteString("\nViews: summary, reports\n")
	case RouteSummary:
		heading(&b, summaryTitle)
		b.WriteString("% of Respondents\n")
		if err := priorityBars(&b, v); err != nil {
			return err
		}
		b.WriteString("\nChart Analysis\n\n")
		paragraphs(&b, summaryProse)
		sourceLine(&b, summarySource)
	case RouteReports:
		heading(&b, reportsTitle)
		b.WriteString("Market Size (USD Billions)\n")
		if err := marketBars(&b, v); err != nil {
			return err
		}
		b.WriteString("\nChart Analysis\n\n")
		paragraphs(&b, reportsProse)
		sourceLine(&b, reportsSource)
	default:
		return fmt.Errorf("unknown route %q", v.Route)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func heading(b *strings.Builder, title string) {
	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", len(title)))
	b.WriteString("\n\n")
}

func paragraphs(b *strings.Builder, items []string) {
	for _, p := range items {
		b.WriteString(p)
		b.WriteString("\n\n")
	}
}

func sourceLine(b *strings.Builder, s source) {
	fmt.Fprintf(b, "Source: %s <%s>\n", s.label, s.url)
}

func priorityBars(b *strings.Builder, v View) error {
	if len(v.Priorities) == 0 {
		b.WriteString("(no data)\n")
		return nil
	}
	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	for _, p := range v.Priorities {
		fmt.Fprintf(tw, "%s\t%s\t%g\n", p.Name, bar(p.Value, 100), p.Value)
	}
	return tw.Flush()
}

func marketBars(b *strings.Builder, v View) error {
	if len(v.MarketSeries) == 0 {
		b.WriteString("(no data)\n")
		return nil
	}
	maxValue := 0.0
	for _, p := range v.MarketSeries {
		maxValue = math.Max(maxValue, p.Value)
	}
	tw := tabwriter.NewWriter(b, 0, 0, 2, ' ', 0)
	for _, p := range v.MarketSeries {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\n", p.Year, bar(p.Value, maxValue), p.Value)
	}
	return tw.Flush()
}

func bar(value, scale float64) string {
	if scale <= 0 || value <= 0 {
		return ""
	}
	n := int(math.Round(value / scale * barWidth))
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("#", n)
}
