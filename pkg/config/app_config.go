package config

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AppConfig 应用配置
//
// 优先级：默认值 < 配置文件 < 命令行参数
type AppConfig struct {
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
	Paths   PathsConfig   `yaml:"paths"`
	Save    SaveConfig    `yaml:"save"`
	Battle  BattleConfig  `yaml:"battle"`
}

// WindowConfig 窗口设置
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// LoggingConfig 日志设置
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// PathsConfig 资源路径
//
// Assets 为空时使用内嵌资源；相对路径都以 Assets 为根。
type PathsConfig struct {
	Assets       string `yaml:"assets"`
	PluginParams string `yaml:"plugin_params"`
	Script       string `yaml:"script"`
}

// SaveConfig 存档设置
type SaveConfig struct {
	Enabled bool   `yaml:"enabled"`
	AppName string `yaml:"app_name"`
}

// BattleConfig 战斗状态窗口演示用数据
type BattleConfig struct {
	DisplayTP    bool          `yaml:"display_tp"`
	CurrencyUnit string        `yaml:"currency_unit"`
	Party        []ActorConfig `yaml:"party"`
}

// ActorConfig 角色配置
type ActorConfig struct {
	ID        int     `yaml:"id"`
	Name      string  `yaml:"name"`
	FaceName  string  `yaml:"face_name"`
	FaceIndex int     `yaml:"face_index"`
	HP        int     `yaml:"hp"`
	MHP       int     `yaml:"mhp"`
	MP        int     `yaml:"mp"`
	MMP       int     `yaml:"mmp"`
	TP        int     `yaml:"tp"`
	ATB       float64 `yaml:"atb"`
	Icons     []int   `yaml:"icons"`
}

// DefaultAppConfig 返回默认配置
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  "Picture Animation",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Paths: PathsConfig{
			PluginParams: "data/plugins.ini",
			Script:       "data/scripts/demo.yaml",
		},
		Save: SaveConfig{
			Enabled: true,
			AppName: "picanim",
		},
		Battle: BattleConfig{
			DisplayTP:    true,
			CurrencyUnit: "G",
		},
	}
}

// Flags 命令行参数
type Flags struct {
	Config  string
	Script  string
	Assets  string
	Debug   bool
	LogFile string
}

// RegisterFlags 在 fs 上注册命令行参数
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.StringVar(&f.Script, "script", "", "Event script to run (.yaml or .lua)")
	fs.StringVar(&f.Assets, "assets", "", "Asset directory (default: embedded assets)")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&f.LogFile, "log-file", "", "Write logs to this file (rotated)")
	return f
}

// LoadAppConfig 加载配置：默认值 < 配置文件 < 命令行参数
//
// flags 为 nil 时只使用默认值和 ./config.yaml（存在时）。
func LoadAppConfig(flags *Flags) (*AppConfig, error) {
	cfg := DefaultAppConfig()

	path := ""
	if flags != nil {
		path = flags.Config
	}
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	if path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg, flags)
	return cfg, nil
}

// ParseAppConfig 从 YAML 数据解析配置，未出现的字段保持默认值
func ParseAppConfig(data []byte) (*AppConfig, error) {
	cfg := DefaultAppConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func loadFromFile(cfg *AppConfig, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func applyFlags(cfg *AppConfig, flags *Flags) {
	if flags == nil {
		return
	}
	if flags.Debug {
		cfg.Logging.Level = "debug"
	}
	if flags.LogFile != "" {
		cfg.Logging.LogFile = flags.LogFile
	}
	if flags.Script != "" {
		cfg.Paths.Script = flags.Script
	}
	if flags.Assets != "" {
		cfg.Paths.Assets = flags.Assets
	}
}
