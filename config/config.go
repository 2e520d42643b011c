package config

import (
	"runtime"
	"time"
)

// Config 是 pyuml 的完整配置，可以来自 .pyuml.yaml 并被 PYUML_* 环境变量覆盖。
type Config struct {
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Batch  BatchConfig  `yaml:"batch" mapstructure:"batch"`
	Watch  WatchConfig  `yaml:"watch" mapstructure:"watch"`
}

// OutputConfig 决定图文本写到哪里
type OutputConfig struct {
	Class string `yaml:"class" mapstructure:"class"` // 单文件模式下类图的输出路径，时序图路径由它推导
	Dir   string `yaml:"dir" mapstructure:"dir"`     // 批量模式下的输出目录
}

// LogConfig 对应 logging.Config
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// BatchConfig 控制目录批量处理
type BatchConfig struct {
	Workers int      `yaml:"workers" mapstructure:"workers"`
	Include []string `yaml:"include" mapstructure:"include"` // 相对目录根的 glob
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`
}

// WatchConfig 控制 watch 命令
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Class: "class_diagram.txt",
			Dir:   "uml_output",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Batch: BatchConfig{
			Workers: runtime.NumCPU(),
			Include: []string{"**/*.py"},
			Ignore:  []string{".*/**", "**/__pycache__/**"},
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
	}
}
