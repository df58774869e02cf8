package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/openstfoundation/abibin/internal/usecase"
)

// ArtifactsRenderer renders artifact listings
type ArtifactsRenderer struct {
	out   io.Writer
	color bool
}

// NewArtifactsRenderer creates a new artifacts renderer
func NewArtifactsRenderer(out io.Writer, color bool) *ArtifactsRenderer {
	return &ArtifactsRenderer{
		out:   out,
		color: color,
	}
}

// Render renders the list of artifacts as a table
func (r *ArtifactsRenderer) Render(result *usecase.ListArtifactsResult) error {
	if len(result.Artifacts) == 0 {
		fmt.Fprintln(r.out, "No artifacts found")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateRows = false
	t.Style().Box = table.BoxStyle{
		PaddingRight:     "   ",
		MiddleHorizontal: "─",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
	})

	t.AppendHeader(table.Row{"ARTIFACT", "ABI", "BIN"})
	for _, a := range result.Artifacts {
		t.AppendRow(table.Row{
			string(a.Name),
			r.formatSource(a.ABISource),
			r.formatSource(a.BINSource),
		})
	}
	t.Render()

	fmt.Fprintf(r.out, "\n%d artifacts\n", len(result.Artifacts))
	return nil
}

func (r *ArtifactsRenderer) formatSource(source string) string {
	if source == "" {
		return "-"
	}
	label := cases.Title(language.English).String(source)
	if !r.color {
		return label
	}
	switch source {
	case usecase.SourceLocal:
		return color.New(color.FgGreen, color.Bold).Sprint(label)
	default:
		return color.New(color.FgBlue).Sprint(label)
	}
}

var _ Renderer[*usecase.ListArtifactsResult] = (*ArtifactsRenderer)(nil)
