package cli

import (
	"fmt"
	"path/filepath"

	"github.com/CodMac/go-treesitter-uml-generator/processor"
	"github.com/spf13/cobra"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		workers  int
		diagram  string
		includes []string
	)

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Generate diagrams for every Python file under a directory",
		Long: `Batch walks a directory, selects files with the batch.include globs minus the
batch.ignore globs, and processes them in parallel. Each file is handled
independently; outputs mirror the source layout under the output directory:

  src/pets/dog.py -> uml_output/pets/dog.txt, uml_output/pets/dog_sequence.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diagrams, err := parseDiagram(diagram)
			if err != nil {
				return err
			}

			root, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve %s: %w", args[0], err)
			}

			if len(includes) == 0 {
				includes = a.cfg.Batch.Include
			}
			discovery, err := processor.NewFileDiscovery(root, includes, a.cfg.Batch.Ignore)
			if err != nil {
				return fmt.Errorf("invalid glob: %w", err)
			}
			files, err := discovery.DiscoverFiles()
			if err != nil {
				return fmt.Errorf("discover files: %w", err)
			}
			if len(files) == 0 {
				a.logger.Warn("No Python files found", "root", root)
				return nil
			}

			if workers <= 0 {
				workers = a.cfg.Batch.Workers
			}
			fp := processor.NewFileProcessor(a.language(), workers, a.logger)
			results, err := fp.ProcessFiles(cmd.Context(), processor.BatchRequest{
				Root:     root,
				Files:    files,
				OutDir:   a.outDir(),
				Diagrams: diagrams,
			})
			if err != nil {
				return err
			}

			failed := 0
			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Err != nil {
					failed++
				}
				printResult(out, r)
			}
			writeLine(out, "processed %d files, %d failed", len(results), failed)
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of parallel workers (default batch.workers)")
	cmd.Flags().StringVarP(&diagram, "diagram", "d", "both", "diagrams to generate: class, sequence or both")
	cmd.Flags().StringSliceVar(&includes, "include", nil, "include globs relative to <dir> (default batch.include)")
	return cmd
}

func parseDiagram(s string) (processor.Diagram, error) {
	switch s {
	case "class":
		return processor.ClassDiagram, nil
	case "sequence":
		return processor.SequenceDiagram, nil
	case "both", "":
		return processor.BothDiagrams, nil
	}
	return 0, fmt.Errorf("unknown diagram %q (want class, sequence or both)", s)
}
