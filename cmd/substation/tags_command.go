package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"substation/internal/document"
	"substation/internal/extract"
	"substation/internal/tags"
)

func newTagsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Work with override tags",
	}
	cmd.AddCommand(newTagsListCommand())
	cmd.AddCommand(newTagsShowCommand(ctx))
	return cmd
}

func newTagsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "list",
		Short:       "List the known override tags and their conflict policies",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			names := tags.Names()
			rows := make([][]string, 0, len(names))
			for _, name := range names {
				def, ok := tags.Lookup(name)
				if !ok {
					continue
				}
				scope := "inline"
				if def.EventLevel {
					scope = "event"
				}
				policy := "last-wins"
				if def.FirstWins {
					policy = "first-wins"
				}
				form := "value"
				if def.Function {
					form = "function"
				}
				rows = append(rows, []string{
					`\` + name,
					def.Category,
					scope,
					policy,
					form,
					strings.Join(def.Excludes, " "),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Tag", "Category", "Scope", "Policy", "Form", "Excludes"},
				rows,
				nil,
			))
			return nil
		},
	}
}

type tagValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type segmentReport struct {
	Text string     `json:"text"`
	Tags []tagValue `json:"tags,omitempty"`
}

type eventTagReport struct {
	Event     int             `json:"event"`
	Start     string          `json:"start"`
	End       string          `json:"end"`
	EventTags []tagValue      `json:"event_tags,omitempty"`
	Segments  []segmentReport `json:"segments"`
}

func newTagsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var eventIndex int

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Extract event-level tags and styled segments from a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ctx.loadDocument(args[0])
			if err != nil {
				return err
			}
			opts := extract.Options{Strict: ctx.configValue().Load.StrictTags}

			var reports []eventTagReport
			for i, event := range doc.Events {
				if event.Kind != document.Dialogue {
					continue
				}
				if eventIndex >= 0 && i != eventIndex {
					continue
				}
				result, err := event.ExtractTags(opts)
				if err != nil {
					return fmt.Errorf("event %d: %w", i, err)
				}
				reports = append(reports, buildEventTagReport(i, event, result))
			}
			if eventIndex >= 0 && len(reports) == 0 {
				return fmt.Errorf("no dialogue event at index %d", eventIndex)
			}

			if jsonOut {
				return writeJSON(cmd, reports)
			}
			printEventTagReports(cmd, reports)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit results as JSON")
	cmd.Flags().IntVar(&eventIndex, "event", -1, "Only the event at this index")
	return cmd
}

func buildEventTagReport(index int, event *document.Event, result extract.Result) eventTagReport {
	report := eventTagReport{
		Event: index,
		Start: event.Start.String(),
		End:   event.End.String(),
	}
	report.EventTags = tagValues(result.EventTags)
	for _, segment := range result.Segments {
		report.Segments = append(report.Segments, segmentReport{
			Text: segment.Text,
			Tags: tagValues(segment.Tags),
		})
	}
	return report
}

func tagValues(set *extract.TagSet) []tagValue {
	values := make([]tagValue, 0, set.Len())
	for _, name := range set.Names() {
		value, _ := set.Get(name)
		rendered, err := tags.Format(name, value)
		if err != nil {
			rendered = fmt.Sprint(value)
		}
		values = append(values, tagValue{Name: name, Value: rendered})
	}
	return values
}

func printEventTagReports(cmd *cobra.Command, reports []eventTagReport) {
	out := cmd.OutOrStdout()
	for _, report := range reports {
		fmt.Fprintf(out, "event %d (%s - %s)\n", report.Event, report.Start, report.End)
		if len(report.EventTags) > 0 {
			fmt.Fprintf(out, "  event tags: %s\n", joinTagValues(report.EventTags))
		}
		for i, segment := range report.Segments {
			label := strconv.Itoa(i)
			if len(segment.Tags) > 0 {
				fmt.Fprintf(out, "  segment %s [%s]: %q\n", label, joinTagValues(segment.Tags), segment.Text)
			} else {
				fmt.Fprintf(out, "  segment %s: %q\n", label, segment.Text)
			}
		}
	}
}

func joinTagValues(values []tagValue) string {
	parts := make([]string, len(values))
	for i, value := range values {
		parts[i] = `\` + value.Name + value.Value
	}
	return strings.Join(parts, " ")
}
