package metrics

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ccff")).Bold(true)
)

// WriteReport prints the metric values and plots of the recorded history.
// Nothing is written when no frame was recorded.
func WriteReport(w io.Writer, s Snapshot) error {
	if s.Frames == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("session: %d frames", s.Frames))); err != nil {
		return err
	}
	for _, name := range s.Names {
		line := fmt.Sprintf("  %s %s", labelStyle.Render(fmt.Sprintf("%-15s", name)), valueStyle.Render(fmt.Sprintf("%.3f", s.Values[name])))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	plots := []struct {
		data    []float64
		caption string
	}{
		{s.StepMs, "step time (ms/frame)"},
		{s.Population, "particles"},
	}
	for _, p := range plots {
		if len(p.data) < 2 {
			continue
		}
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(p.caption),
		)
		if _, err := fmt.Fprintf(w, "\n%s\n", graph); err != nil {
			return err
		}
	}
	return nil
}
