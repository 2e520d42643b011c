package cli

import (
	"github.com/CodMac/go-treesitter-uml-generator/processor"
	"github.com/CodMac/go-treesitter-uml-generator/session"
	"github.com/spf13/cobra"
)

func newMenuCmd(a *app) *cobra.Command {
	var choices []string

	cmd := &cobra.Command{
		Use:   "menu <file.py>",
		Short: "Interactive menu: 1 class, 2 sequence, 3 both, 4 exit",
		Long: `Menu reads choices from stdin until "4" (or "exit") or end of input.
Each choice re-reads the source file. With --choice, the given choices are
run in order without prompting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src session.CommandSource
			if len(choices) > 0 {
				src = session.NewSliceSource(choices...)
			} else {
				src = session.NewReaderSource(cmd.InOrStdin(), cmd.OutOrStdout())
			}

			s := session.New(processor.NewPipeline(a.language(), a.logger), args[0], a.classOut(), a.logger)
			results, err := s.Run(cmd.Context(), src)
			for _, r := range results {
				printResult(cmd.OutOrStdout(), r)
			}
			return err
		},
	}

	cmd.Flags().StringSliceVar(&choices, "choice", nil, "run these choices instead of prompting (e.g. --choice 1,3)")
	return cmd
}
