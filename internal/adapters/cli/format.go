package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/project-tracker/internal/domain/project"
	"github.com/jsamuelsen11/project-tracker/internal/domain/result"
)

const colGap = 2

var (
	styleHeader = lipgloss.NewStyle().Bold(true)
	styleDim    = lipgloss.NewStyle().Faint(true)
	styleDone   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c"))
)

// printResult writes a successful result in the session's output format.
// render returns the JSON body and the text rendering of the value.
func printResult[T any](s *session, cmd *cobra.Command, res result.Result[T], render func(T) (any, string)) error {
	return result.Match(res,
		func(v T) error {
			body, text := render(v)
			if s.output == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), body)
			}
			_, err := io.WriteString(cmd.OutOrStdout(), text)
			return err
		},
		func(err error) error { return err },
	)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatProjectList(projects []*project.Project) string {
	if len(projects) == 0 {
		return "No projects.\n"
	}

	rows := make([][]string, len(projects))
	for i, p := range projects {
		rows[i] = []string{p.ID(), p.Name(), p.Priority().String(), p.Status().String(), strconv.Itoa(len(p.Items()))}
	}
	return renderTable([]string{"ID", "NAME", "PRIORITY", "STATUS", "ITEMS"}, rows)
}

func formatProject(p *project.Project) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", styleHeader.Render(p.Name()), styleDim.Render("("+p.ID()+")"))
	fmt.Fprintf(&b, "priority: %s  status: %s\n", p.Priority(), p.Status())

	items := p.Items()
	if len(items) == 0 {
		b.WriteString("No items.\n")
		return b.String()
	}

	b.WriteString("\n")
	rows := make([][]string, len(items))
	for i, item := range items {
		done := "no"
		if item.IsDone {
			done = styleDone.Render("yes")
		}
		contributor := "-"
		if item.ContributorID != nil {
			contributor = *item.ContributorID
		}
		rows[i] = []string{item.ID, item.Title, done, contributor}
	}
	b.WriteString(renderTable([]string{"ID", "TITLE", "DONE", "CONTRIBUTOR"}, rows))
	return b.String()
}

// renderTable pads each column to its widest visible cell.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style *lipgloss.Style) {
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if style != nil {
				cell = style.Render(cell)
			}
			b.WriteString(cell)
			if i < len(headers)-1 {
				b.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, &styleHeader)
	for _, row := range rows {
		writeRow(row, nil)
	}
	return b.String()
}
