package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，支持YAML文件、环境变量覆盖与默认值
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Display DisplayConfig `mapstructure:"display"`
	Seed    SeedConfig    `mapstructure:"seed"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Mode string `mapstructure:"mode"` // debug | release
}

// DisplayConfig 控制台表格展示配置
type DisplayConfig struct {
	TitleWidth  int `mapstructure:"title_width"`  // 书名列宽(超出截断加省略号)
	AuthorWidth int `mapstructure:"author_width"` // 作者列宽
}

// SeedConfig 演示数据配置
type SeedConfig struct {
	Enabled bool `mapstructure:"enabled"` // 启动时是否灌入演示图书与订单
}

// TracingConfig 链路追踪配置
type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name"`
	OutputFile  string `mapstructure:"output_file"` // span导出文件,空则丢弃
}

// Load 加载配置文件
// 支持：
// 1. 默认加载config/config.yaml
// 2. 环境变量覆盖（如BOOKSHOP_SEED_ENABLED=false）
// 3. 配置文件缺失时回退到默认值（演示程序开箱即用）
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	setDefaults(v)

	// 配置文件可选:找不到时用默认值,其他错误(格式损坏等)照常报告
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	// 环境变量绑定（自动转换，如BOOKSHOP_DISPLAY_TITLE_WIDTH → display.title_width）
	v.SetEnvPrefix("BOOKSHOP")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults 设置默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "bookshop")
	v.SetDefault("app.mode", "debug")
	v.SetDefault("display.title_width", 30)
	v.SetDefault("display.author_width", 20)
	v.SetDefault("seed.enabled", true)
	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "bookshop")
	v.SetDefault("tracing.output_file", "")
}

// validate 配置校验
func validate(cfg *Config) error {
	if cfg.Display.TitleWidth < 5 {
		return fmt.Errorf("无效的书名列宽: %d", cfg.Display.TitleWidth)
	}
	if cfg.Display.AuthorWidth < 5 {
		return fmt.Errorf("无效的作者列宽: %d", cfg.Display.AuthorWidth)
	}
	if cfg.App.Mode != "debug" && cfg.App.Mode != "release" {
		return fmt.Errorf("无效的运行模式: %s", cfg.App.Mode)
	}
	return nil
}
