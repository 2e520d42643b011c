package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// ValidationError 汇总配置中发现的所有问题
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// Validate 检查命令无法使用的配置值
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	var problems []string

	if strings.TrimSpace(cfg.Output.Class) == "" {
		problems = append(problems, "output.class must not be empty")
	}
	if strings.TrimSpace(cfg.Output.Dir) == "" {
		problems = append(problems, "output.dir must not be empty")
	}

	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", cfg.Log.Level))
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		problems = append(problems, fmt.Sprintf("log.format %q is not one of text, json", cfg.Log.Format))
	}

	if cfg.Batch.Workers <= 0 {
		problems = append(problems, "batch.workers must be positive")
	}
	if len(cfg.Batch.Include) == 0 {
		problems = append(problems, "batch.include must list at least one pattern")
	}
	for _, p := range append(append([]string{}, cfg.Batch.Include...), cfg.Batch.Ignore...) {
		if _, err := glob.Compile(p, '/'); err != nil {
			problems = append(problems, fmt.Sprintf("invalid glob %q: %v", p, err))
		}
	}

	if cfg.Watch.Debounce < 0 {
		problems = append(problems, "watch.debounce must not be negative")
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
