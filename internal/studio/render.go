package studio

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"adcraft/internal/engine"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			Width(60)
	cardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	scoreStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)
)

// RenderResult renders a generation result as three bordered cards
// followed by the predicted CTR line.
func RenderResult(res *engine.GenerateResponse) string {
	cards := []struct {
		title string
		body  string
	}{
		{"Ad Copy 1", res.AdCopy1},
		{"Ad Copy 2", res.AdCopy2},
		{"Creative Brief", res.CreativeBrief},
	}

	var b strings.Builder
	for _, card := range cards {
		b.WriteString(cardStyle.Render(cardTitleStyle.Render(card.title) + "\n" + card.body))
		b.WriteString("\n")
	}
	b.WriteString(scoreStyle.Render("Predicted Click-Through Rate (CTR): " + formatScore(res.PerformanceScore) + "%"))
	return b.String()
}

// RenderError renders a failed attempt. The block contains the
// message text and nothing else.
func RenderError(msg string) string {
	return errorStyle.Render(msg)
}

// formatScore drops trailing zeros, so 12.5 renders as "12.5" and 80
// as "80".
func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
