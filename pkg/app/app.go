// Package app 提供应用的核心包装器
//
// 该包把启动逻辑从 main 包提取出来：读取插件参数、加载事件脚本、
// 构建队伍、打开存档，然后创建场景并实现 ebiten.Game 接口。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io/fs"

	"github.com/decker502/picanim/internal/logger"
	"github.com/decker502/picanim/pkg/config"
	"github.com/decker502/picanim/pkg/game"
	"github.com/decker502/picanim/pkg/plugins/portraits"
	"github.com/decker502/picanim/pkg/scenes"
	"github.com/decker502/picanim/pkg/script"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// SceneName 演示场景名（SceneManager.LoadScene 使用）
const SceneName = "pictures"

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg          *config.AppConfig
	sceneManager *game.SceneManager
	gameState    *game.GameState

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// assets 是资源根目录（包含 img/ 和 data/），磁盘目录或内嵌资源均可。
// 插件参数缺失时使用默认参数；脚本加载失败返回错误。
func NewApp(ctx context.Context, cfg *config.AppConfig, assets fs.FS) (*App, error) {
	if cfg == nil {
		cfg = config.DefaultAppConfig()
	}
	if assets == nil {
		return nil, fmt.Errorf("no asset file system")
	}

	resourceManager := game.NewResourceManager(assets)

	params, err := loadParams(assets, cfg.Paths.PluginParams)
	if err != nil {
		logger.Sugar.Warnf("[App] %v, using default plugin parameters", err)
	}

	commands, err := script.LoadFile(ctx, assets, cfg.Paths.Script)
	if err != nil {
		return nil, fmt.Errorf("脚本加载失败: %w", err)
	}
	logger.Sugar.Infof("[App] Loaded script %s: %d commands", cfg.Paths.Script, len(commands))

	gameState := NewGameState(cfg)

	var saveManager *game.SaveManager
	if cfg.Save.Enabled {
		saveManager, err = game.OpenSaveManager(cfg.Save.AppName)
		if err != nil {
			logger.Sugar.Warnf("[App] %v, screen saves disabled", err)
		}
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) game.Scene {
		if name != SceneName {
			return nil
		}
		return scenes.NewPictureScene(gameState, scenes.PictureSceneOptions{
			Commands:    commands,
			Resources:   resourceManager,
			Params:      params,
			SaveManager: saveManager,
			ShowHelp:    true,
		})
	})
	if !sceneManager.LoadScene(SceneName) {
		return nil, fmt.Errorf("failed to create scene %q", SceneName)
	}

	return &App{
		cfg:          cfg,
		sceneManager: sceneManager,
		gameState:    gameState,
	}, nil
}

// NewGameState 按配置创建运行时状态（货币单位、TP 显示、队伍）
func NewGameState(cfg *config.AppConfig) *game.GameState {
	gs := game.NewGameState()
	gs.DisplayTP = cfg.Battle.DisplayTP
	if cfg.Battle.CurrencyUnit != "" {
		gs.CurrencyUnit = cfg.Battle.CurrencyUnit
	}

	members := make([]*game.Actor, 0, len(cfg.Battle.Party))
	for _, a := range cfg.Battle.Party {
		members = append(members, &game.Actor{
			ID:        a.ID,
			Name:      a.Name,
			FaceName:  a.FaceName,
			FaceIndex: a.FaceIndex,
			HP:        a.HP,
			MHP:       a.MHP,
			MP:        a.MP,
			MMP:       a.MMP,
			TP:        a.TP,
			ATB:       a.ATB,
			Icons:     append([]int(nil), a.Icons...),
		})
	}
	gs.Party = game.NewParty(members)
	return gs
}

// loadParams 从资源目录读取插件参数 INI
func loadParams(assets fs.FS, name string) (portraits.Params, error) {
	if name == "" {
		return portraits.DefaultParams(), nil
	}
	data, err := fs.ReadFile(assets, name)
	if err != nil {
		return portraits.DefaultParams(), fmt.Errorf("failed to read plugin parameters %s: %w", name, err)
	}
	return portraits.LoadParams(data)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Window.Width, a.cfg.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			logger.Sugar.Debugf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update()
	return nil
}

// Draw 绘制画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右 letterbox 填黑，缩放使用线性滤波
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑画面尺寸，与窗口大小无关
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// GetSceneManager 返回场景管理器
// 用于在程序关闭时保存屏幕状态
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// GameState 返回运行时状态
func (a *App) GameState() *game.GameState {
	return a.gameState
}

// SaveOnExit 当前场景支持保存时保存屏幕状态
func (a *App) SaveOnExit() {
	if s, ok := a.sceneManager.GetCurrentScene().(game.Saveable); ok {
		if !s.SaveOnExit() {
			logger.Sugar.Warnf("[App] Save on exit failed")
		}
	}
}
