package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/gaprule/gaprule/pkg/masonry"
	"github.com/gaprule/gaprule/pkg/scene"
)

var (
	inspectSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	inspectDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	inspectBarStyle      = lipgloss.NewStyle().Foreground(colorGreen)
)

// inspectCommand creates the inspect command: an interactive stepper through
// masonry placement, one item at a time.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [scene file]",
		Short: "Step through masonry placement interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			if sc.Container.Type != scene.TypeMasonry {
				return fmt.Errorf("inspect needs a masonry scene, got %q", sc.Container.Type)
			}

			model := NewInspectModel(sc)
			_, err = tea.NewProgram(model).Run()
			return err
		},
	}
}

// InspectModel is the bubbletea model for the placement stepper. Step counts
// how many items have been placed; the view recomputes placement for that
// prefix on every render.
type InspectModel struct {
	SceneName string
	Config    masonry.Config
	Items     []masonry.Item
	Step      int
}

// NewInspectModel creates a stepper over the scene's masonry items.
func NewInspectModel(sc *scene.Scene) InspectModel {
	return InspectModel{
		SceneName: sc.Name,
		Config:    sc.MasonryConfig(),
		Items:     sc.MasonryItems(),
		Step:      0,
	}
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "right", "l", " ":
			if m.Step < len(m.Items) {
				m.Step++
			}
		case "left", "h":
			if m.Step > 0 {
				m.Step--
			}
		case "end", "G":
			m.Step = len(m.Items)
		case "home", "g":
			m.Step = 0
		}
	}
	return m, nil
}

func (m InspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Masonry Placement: " + m.SceneName))
	b.WriteString("\n")
	b.WriteString(inspectDimStyle.Render("←/→ step  g/G first/last  q quit"))
	b.WriteString("\n\n")

	result, err := masonry.Place(m.Items[:m.Step], m.Config)
	if err != nil {
		b.WriteString(StyleWarning.Render(fmt.Sprintf("placement error: %v", err)))
		return b.String()
	}

	rows := [][]string{}
	for i, placed := range result.Items {
		marker := "  "
		if i == m.Step-1 {
			marker = "▸ "
		}
		rows = append(rows, []string{
			marker,
			fmt.Sprintf("%d", i),
			fmt.Sprintf("[%d,%d)", placed.Span.Start, placed.Span.End),
			fmt.Sprintf("%.1f", placed.GridOffset),
			fmt.Sprintf("%.1f", placed.StackingOffset),
			fmt.Sprintf("%.1f", m.Items[i].StackingSize),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Item", "Tracks", "Grid", "Offset", "Size").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.Step-1 {
				return inspectSelectedStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(m.frontierView(result))
	b.WriteString("\n")
	b.WriteString(inspectDimStyle.Render(fmt.Sprintf("  [%d/%d placed]  stacking size %.1f",
		m.Step, len(m.Items), result.StackingSize)))

	return b.String()
}

// frontierView draws one bar per track, scaled to the tallest frontier.
func (m InspectModel) frontierView(result masonry.Result) string {
	frontiers := make([]float64, len(m.Config.TrackSizes))
	for i, placed := range result.Items {
		end := placed.StackingOffset + m.Items[i].StackingSize
		for t := placed.Span.Start; t < placed.Span.End; t++ {
			if end > frontiers[t] {
				frontiers[t] = end
			}
		}
	}

	max := 0.0
	for _, f := range frontiers {
		if f > max {
			max = f
		}
	}

	const barWidth = 30
	var b strings.Builder
	for t, f := range frontiers {
		filled := 0
		if max > 0 {
			filled = int(f / max * barWidth)
		}
		b.WriteString(fmt.Sprintf("  track %d ", t))
		b.WriteString(inspectBarStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(inspectDimStyle.Render(strings.Repeat("░", barWidth-filled)))
		b.WriteString(inspectDimStyle.Render(fmt.Sprintf(" %.1f", f)))
		b.WriteString("\n")
	}
	return b.String()
}
