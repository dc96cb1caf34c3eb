package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"substation/internal/document"
	"substation/internal/textio"
)

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var inPlace bool

	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Rewrite a script in canonical form",
		Long: "Normalize loads a script and writes it back out with canonical " +
			"section order, schema-complete Format lines, and consistently " +
			"formatted values. Unknown sections and custom records pass " +
			"through untouched.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if inPlace && outputPath != "" {
				return fmt.Errorf("--in-place and --output are mutually exclusive")
			}

			doc, err := ctx.loadDocument(args[0])
			if err != nil {
				return err
			}

			cfg := ctx.configValue()
			rendered := doc.DumpWith(document.DumpOptions{AutoFill: cfg.Output.AutoFill})

			withBOM := doc.HadBOM()
			switch cfg.Output.BOM {
			case "always":
				withBOM = true
			case "never":
				withBOM = false
			}

			target := outputPath
			if inPlace {
				target = args[0]
			}
			if target == "" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), rendered)
				return err
			}
			if err := textio.WriteFile(target, rendered, withBOM); err != nil {
				return err
			}
			ctx.log().With("component", "normalize").Info("wrote normalized script",
				"source", args[0], "target", target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the result to this path instead of stdout")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "Rewrite the input file")
	return cmd
}
