// Package cli 提供 pyuml 命令行入口
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/CodMac/go-treesitter-uml-generator/config"
	"github.com/CodMac/go-treesitter-uml-generator/logging"
	"github.com/CodMac/go-treesitter-uml-generator/model"
	"github.com/CodMac/go-treesitter-uml-generator/processor"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	// 导入 Python 实现，触发其 init() 注册 Language、Lowerer、Collector 与 Extractor
	_ "github.com/CodMac/go-treesitter-uml-generator/x/python"
)

// Version 在构建时通过 -ldflags 覆盖
var Version = "dev"

// app 是一次命令执行共享的状态，由 PersistentPreRunE 填充
type app struct {
	configFile string
	verbose    bool
	logFormat  string
	out        string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd 创建完整的命令树。每次调用返回互不共享状态的新实例。
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pyuml",
		Short: "Generate PlantUML class and sequence diagrams from Python source",
		Long: `pyuml reverse-engineers Python source into PlantUML text.

The class diagram lists every class with its constructor attributes, self.<field>
assignments in the class body, methods and base classes. The sequence diagram
lists, for every function, the <object>.<method>() call statements in its body.

Examples:
  pyuml both dog.py
  pyuml class dog.py --out dog_classes.txt
  pyuml batch ./src --out uml_output
  pyuml menu dog.py`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default is ./.pyuml.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")
	flags.StringVarP(&a.out, "out", "o", "", "class diagram path, or output directory for batch")

	root.AddCommand(
		newGenerateCmd(a, "class", "Generate the class diagram", processor.ClassDiagram),
		newGenerateCmd(a, "sequence", "Generate the sequence diagram", processor.SequenceDiagram),
		newGenerateCmd(a, "both", "Generate both diagrams", processor.BothDiagrams),
		newBatchCmd(a),
		newWatchCmd(a),
		newMenuCmd(a),
		newDumpCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute 构建命令树并执行，由 main.main() 调用
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup 加载配置并创建带 run_id 的 logger
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.NewLoader(wd, a.configFile).Load()
	if err != nil {
		return err
	}

	if a.verbose {
		cfg.Log.Level = "debug"
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.With("run_id", uuid.NewString(), "command", cmd.Name())
	return nil
}

// classOut 返回单文件命令的类图输出路径
func (a *app) classOut() string {
	if a.out != "" {
		return a.out
	}
	return a.cfg.Output.Class
}

// outDir 返回批量命令的输出目录
func (a *app) outDir() string {
	if a.out != "" {
		return a.out
	}
	return a.cfg.Output.Dir
}

func (a *app) language() model.Language { return model.LangPython }

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// version 不需要配置与日志
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "pyuml %s\n", Version)
			return err
		},
	}
}

func writeLine(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}
