package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"substation/internal/document"
)

type inspectStyle struct {
	Name      string  `json:"name"`
	Fontname  string  `json:"fontname"`
	Fontsize  float64 `json:"fontsize"`
	Primary   string  `json:"primary_colour"`
	Alignment int     `json:"alignment"`
}

type inspectSummary struct {
	Path       string         `json:"path"`
	Title      string         `json:"title,omitempty"`
	ScriptType string         `json:"script_type"`
	PlayResX   int            `json:"play_res_x,omitempty"`
	PlayResY   int            `json:"play_res_y,omitempty"`
	Styles     []inspectStyle `json:"styles"`
	Events     int            `json:"events"`
	Comments   int            `json:"comment_events"`
	Duration   string         `json:"duration"`
	Warnings   int            `json:"warnings"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show a script's metadata, styles, and event counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ctx.loadDocument(args[0])
			if err != nil {
				return err
			}
			summary := summarizeDocument(args[0], doc)
			ctx.log().With("component", "inspect").Debug("inspected script",
				"path", args[0], "events", summary.Events, "styles", len(summary.Styles))

			if jsonOut {
				return writeJSON(cmd, summary)
			}
			printInspectSummary(cmd, summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the summary as JSON")
	return cmd
}

func summarizeDocument(path string, doc *document.Document) inspectSummary {
	summary := inspectSummary{
		Path:       path,
		Title:      doc.Info.GetString("Title"),
		ScriptType: doc.Version.String(),
		PlayResX:   doc.Info.GetInt("PlayResX", 0),
		PlayResY:   doc.Info.GetInt("PlayResY", 0),
		Warnings:   len(doc.Diagnostics.Warnings()),
	}

	var span document.Timecode
	for _, event := range doc.Events {
		if event.Kind == document.CommentEvent {
			summary.Comments++
			continue
		}
		summary.Events++
		if event.End > span {
			span = event.End
		}
	}
	summary.Duration = span.String()

	for _, style := range doc.Styles.All() {
		summary.Styles = append(summary.Styles, inspectStyle{
			Name:      style.Name,
			Fontname:  style.Fontname,
			Fontsize:  style.Fontsize,
			Primary:   style.PrimaryColour.String(),
			Alignment: style.Alignment,
		})
	}
	return summary
}

func printInspectSummary(cmd *cobra.Command, summary inspectSummary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Path:        %s\n", summary.Path)
	if summary.Title != "" {
		fmt.Fprintf(out, "Title:       %s\n", summary.Title)
	}
	fmt.Fprintf(out, "Script type: %s\n", summary.ScriptType)
	if summary.PlayResX > 0 || summary.PlayResY > 0 {
		fmt.Fprintf(out, "Resolution:  %dx%d\n", summary.PlayResX, summary.PlayResY)
	}
	fmt.Fprintf(out, "Events:      %d dialogue, %d comment\n", summary.Events, summary.Comments)
	fmt.Fprintf(out, "Duration:    %s\n", summary.Duration)
	if summary.Warnings > 0 {
		fmt.Fprintf(out, "Warnings:    %d (run 'substation check' for details)\n", summary.Warnings)
	}

	if len(summary.Styles) == 0 {
		return
	}
	rows := make([][]string, 0, len(summary.Styles))
	for _, style := range summary.Styles {
		rows = append(rows, []string{
			style.Name,
			style.Fontname,
			strconv.FormatFloat(style.Fontsize, 'f', -1, 64),
			style.Primary,
			strconv.Itoa(style.Alignment),
		})
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderTable(
		[]string{"Style", "Font", "Size", "Primary", "Align"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignRight},
	))
}
