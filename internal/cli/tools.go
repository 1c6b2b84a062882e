package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mark3labs/mcp-go/mcp"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// toolSummary is the machine-readable shape of one `tool list` row.
type toolSummary struct {
	Name        string `json:"name" yaml:"name"`
	ReadOnly    bool   `json:"readOnly" yaml:"readOnly"`
	Destructive bool   `json:"destructive" yaml:"destructive"`
	Description string `json:"description" yaml:"description"`
}

func summarize(t mcp.Tool) toolSummary {
	return toolSummary{
		Name:        t.Name,
		ReadOnly:    hint(t.Annotations.ReadOnlyHint),
		Destructive: hint(t.Annotations.DestructiveHint),
		Description: t.Description,
	}
}

func hint(b *bool) bool {
	return b != nil && *b
}

// PrintToolList writes the tool catalogue in the requested format. Tools are
// printed in the order given.
func PrintToolList(w io.Writer, defs []mcp.Tool, format OutputFormat) error {
	summaries := make([]toolSummary, 0, len(defs))
	for _, d := range defs {
		summaries = append(summaries, summarize(d))
	}

	switch format {
	case OutputFormatJSON:
		return writeJSON(w, summaries)
	case OutputFormatYAML:
		raw, err := json.Marshal(summaries)
		if err != nil {
			return err
		}
		return writeYAML(w, string(raw))
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("NAME"),
		text.FgHiCyan.Sprint("EFFECT"),
		text.FgHiCyan.Sprint("DESCRIPTION"),
	})
	for _, s := range summaries {
		t.AppendRow(table.Row{s.Name, effectLabel(s), truncate(s.Description, 60)})
	}
	t.Render()
	fmt.Fprintf(w, "\n%s %d\n", text.FgHiBlue.Sprint("Total:"), len(summaries))
	return nil
}

func effectLabel(s toolSummary) string {
	switch {
	case s.ReadOnly:
		return text.FgGreen.Sprint("read")
	case s.Destructive:
		return text.FgRed.Sprint("destroy")
	default:
		return text.FgYellow.Sprint("write")
	}
}

// DescribeTool writes one tool's description and argument schema.
func DescribeTool(w io.Writer, def mcp.Tool, format OutputFormat) error {
	switch format {
	case OutputFormatJSON:
		return writeJSON(w, def)
	case OutputFormatYAML:
		raw, err := json.Marshal(def)
		if err != nil {
			return err
		}
		return writeYAML(w, string(raw))
	}

	s := summarize(def)
	fmt.Fprintln(w, headerStyle.Render(def.Name))
	fmt.Fprintln(w, def.Description)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n\n", labelStyle.Render("Effect:"), effectLabel(s))
	fmt.Fprintln(w, labelStyle.Render("Arguments:"))

	required := make(map[string]bool, len(def.InputSchema.Required))
	for _, r := range def.InputSchema.Required {
		required[r] = true
	}

	names := make([]string, 0, len(def.InputSchema.Properties))
	for name := range def.InputSchema.Properties {
		names = append(names, name)
	}
	// Required arguments first, then alphabetical.
	sort.Slice(names, func(i, j int) bool {
		if required[names[i]] != required[names[j]] {
			return required[names[i]]
		}
		return names[i] < names[j]
	})

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("NAME"),
		text.FgHiCyan.Sprint("TYPE"),
		text.FgHiCyan.Sprint("REQUIRED"),
		text.FgHiCyan.Sprint("DESCRIPTION"),
	})
	for _, name := range names {
		prop, _ := def.InputSchema.Properties[name].(map[string]any)
		req := mutedStyle.Render("no")
		if required[name] {
			req = "yes"
		}
		t.AppendRow(table.Row{
			name,
			fmt.Sprintf("%v", prop["type"]),
			req,
			truncate(fmt.Sprintf("%v", valueOr(prop["description"], "")), 60),
		})
	}
	t.Render()
	return nil
}

func valueOr(v, fallback any) any {
	if v == nil {
		return fallback
	}
	return v
}

func writeJSON(w io.Writer, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, strings.TrimSpace(string(raw)))
	return err
}
