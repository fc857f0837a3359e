// Command picanim runs an event script that drives animated pictures and
// shows the portrait battle status window.
//
// Usage:
//
//	picanim [flags]
//
// Flags:
//
//	--config <path>    YAML config file (default: ./config.yaml when present)
//	--script <path>    event script inside the asset directory (.yaml or .lua)
//	--assets <dir>     asset directory on disk (default: embedded assets)
//	--debug            enable debug logging
//	--log-file <path>  also write logs to a rotated file
//
// Controls:
//
//	B    - toggle the battle status window
//	F5   - save the screen
//	F9   - load the screen
//	R    - restart the script
//	F11  - toggle fullscreen
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/decker502/picanim/internal/logger"
	"github.com/decker502/picanim/pkg/app"
	"github.com/decker502/picanim/pkg/config"
	"github.com/decker502/picanim/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "picanim: %v\n", err)
		os.Exit(1)
	}
}

func run(flags *config.Flags) error {
	cfg, err := config.LoadAppConfig(flags)
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	assets, err := openAssets(cfg.Paths.Assets)
	if err != nil {
		return err
	}

	gameApp, err := app.NewApp(context.Background(), cfg, assets)
	if err != nil {
		return fmt.Errorf("初始化失败: %w", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Sugar.Infof("[Main] Starting %s (%dx%d)", cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	err = ebiten.RunGame(gameApp)
	gameApp.SaveOnExit()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// openAssets 磁盘目录优先，未指定时使用内嵌资源
func openAssets(dir string) (fs.FS, error) {
	if dir != "" {
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("asset directory %s: %w", dir, err)
		}
		logger.Sugar.Infof("[Main] Using asset directory %s", dir)
		return os.DirFS(dir), nil
	}
	if err := embedded.InitSub(assetsFS, "assets"); err != nil {
		return nil, err
	}
	return embedded.FS(), nil
}
