package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/CodMac/go-treesitter-uml-generator/output"
	"github.com/CodMac/go-treesitter-uml-generator/processor"
	"github.com/spf13/cobra"
)

func newDumpCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "dump <file.py>",
		Short: "Write the extracted models as JSON Lines",
		Long: `Dump prints one JSON object per extracted model: CLASS elements first,
then METHOD elements for every function with interactions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline := processor.NewPipeline(a.language(), a.logger)
			classes, sequences, err := pipeline.Extract(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if file != "" {
				f, err := os.Create(file)
				if err != nil {
					return fmt.Errorf("create %s: %w", file, err)
				}
				defer f.Close()
				w = f
			}

			n, err := output.ExportModels(w, args[0], classes, sequences)
			if err != nil {
				return err
			}
			a.logger.Info("Models exported", "elements", n, "output", file)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "write to this file instead of stdout")
	return cmd
}
