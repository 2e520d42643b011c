package cli

import (
	"io"

	"github.com/CodMac/go-treesitter-uml-generator/processor"
	"github.com/spf13/cobra"
)

// newGenerateCmd 创建 class / sequence / both 命令。
// 处理失败只会被记录并反映在输出摘要中，不会使命令失败。
func newGenerateCmd(a *app, name, short string, diagrams processor.Diagram) *cobra.Command {
	var sequenceOut string

	cmd := &cobra.Command{
		Use:   name + " <file.py>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipeline := processor.NewPipeline(a.language(), a.logger)
			res := pipeline.Run(cmd.Context(), processor.Request{
				Source:      args[0],
				ClassOut:    a.classOut(),
				SequenceOut: sequenceOut,
				Diagrams:    diagrams,
			})
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	if diagrams&processor.SequenceDiagram != 0 {
		cmd.Flags().StringVar(&sequenceOut, "sequence-out", "", "sequence diagram path (default derived from the class diagram path)")
	}
	return cmd
}

// printResult 为每个已写出的图打印一行
func printResult(w io.Writer, res processor.Result) {
	for _, o := range res.Outcomes {
		if o.Written() {
			writeLine(w, "%s diagram: %s", o.Diagram, o.Path)
		}
	}
}
