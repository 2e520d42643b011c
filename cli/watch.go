package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/CodMac/go-treesitter-uml-generator/processor"
	"github.com/CodMac/go-treesitter-uml-generator/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var diagram string

	cmd := &cobra.Command{
		Use:   "watch <file.py>",
		Short: "Regenerate diagrams whenever the source file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diagrams, err := parseDiagram(diagram)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w, err := watcher.New(args[0], a.cfg.Watch.Debounce, a.logger)
			if err != nil {
				return err
			}

			pipeline := processor.NewPipeline(a.language(), a.logger)
			req := processor.Request{
				Source:   args[0],
				ClassOut: a.classOut(),
				Diagrams: diagrams,
			}
			out := cmd.OutOrStdout()
			generate := func() {
				printResult(out, pipeline.Run(ctx, req))
			}

			// 启动时先生成一次
			generate()
			return w.Run(ctx, generate)
		},
	}

	cmd.Flags().StringVarP(&diagram, "diagram", "d", "both", "diagrams to generate: class, sequence or both")
	return cmd
}
