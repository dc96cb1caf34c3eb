package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"substation/internal/diagnostics"
)

type checkDiagnostic struct {
	Level   string `json:"level"`
	Code    string `json:"code"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
}

type checkReport struct {
	Path        string            `json:"path"`
	OK          bool              `json:"ok"`
	Diagnostics []checkDiagnostic `json:"diagnostics,omitempty"`
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var failOnWarnings bool

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Parse scripts and report structural and semantic diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := make([]checkReport, 0, len(args))
			failed := 0

			for _, path := range args {
				report := checkReport{Path: path, OK: true}

				doc, err := ctx.loadDocument(path)
				switch {
				case err == nil:
					report.Diagnostics = convertDiagnostics(doc.Diagnostics.All())
					if failOnWarnings && len(report.Diagnostics) > 0 {
						report.OK = false
					}
				default:
					var structural *diagnostics.StructuralError
					if !errors.As(err, &structural) {
						return err
					}
					report.OK = false
					report.Diagnostics = convertDiagnostics(structural.Diagnostics.All())
				}

				if !report.OK {
					failed++
				}
				reports = append(reports, report)
			}

			if jsonOut {
				if err := writeJSON(cmd, reports); err != nil {
					return err
				}
			} else {
				printCheckReports(cmd, reports)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d file(s) failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit results as JSON")
	cmd.Flags().BoolVar(&failOnWarnings, "fail-on-warnings", false, "Treat warnings as failures")
	return cmd
}

func convertDiagnostics(list []diagnostics.Diagnostic) []checkDiagnostic {
	out := make([]checkDiagnostic, 0, len(list))
	for _, d := range list {
		out = append(out, checkDiagnostic{
			Level:   d.Level.String(),
			Code:    d.Code,
			Line:    d.Line,
			Message: d.Message,
		})
	}
	return out
}

func printCheckReports(cmd *cobra.Command, reports []checkReport) {
	out := cmd.OutOrStdout()
	for _, report := range reports {
		status := "ok"
		if !report.OK {
			status = "FAILED"
		}
		fmt.Fprintf(out, "%s: %s\n", report.Path, status)
		for _, d := range report.Diagnostics {
			if d.Line > 0 {
				fmt.Fprintf(out, "  %s [%s] line %d: %s\n", d.Level, d.Code, d.Line, d.Message)
			} else {
				fmt.Fprintf(out, "  %s [%s]: %s\n", d.Level, d.Code, d.Message)
			}
		}
	}
}
