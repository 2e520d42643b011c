package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Loader 负责加载配置
type Loader interface {
	// Load 从配置文件与环境变量加载配置，优先级：默认值 < 配置文件 < 环境变量
	Load() (*Config, error)
}

type loader struct {
	rootDir    string
	configFile string
}

// NewLoader 创建在 rootDir 中查找 .pyuml.yaml 的 Loader。
// configFile 非空时直接使用该文件，且文件必须存在。
func NewLoader(rootDir, configFile string) Loader {
	return &loader{
		rootDir:    rootDir,
		configFile: configFile,
	}
}

// Load 按以下优先级（从高到低）加载配置：
// 1. 环境变量（PYUML_*）
// 2. 配置文件（.pyuml.yaml）
// 3. 默认值
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName(".pyuml")
		v.SetConfigType("yaml")
		v.AddConfigPath(l.rootDir)
	}

	// 允许环境变量覆盖，例如 PYUML_LOG_LEVEL
	v.SetEnvPrefix("PYUML")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("output.class")
	v.BindEnv("output.dir")
	v.BindEnv("log.level")
	v.BindEnv("log.format")
	v.BindEnv("batch.workers")
	v.BindEnv("watch.debounce")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// 未指定配置文件且找不到时，使用默认值与环境变量
		var notFound viper.ConfigFileNotFoundError
		if l.configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults 把默认配置写入 viper
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("output.class", defaults.Output.Class)
	v.SetDefault("output.dir", defaults.Output.Dir)

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)

	v.SetDefault("batch.workers", defaults.Batch.Workers)
	v.SetDefault("batch.include", defaults.Batch.Include)
	v.SetDefault("batch.ignore", defaults.Batch.Ignore)

	v.SetDefault("watch.debounce", defaults.Watch.Debounce)
}
