// Package scenes 包含可运行的场景
//
// PictureScene 把事件解释器、图片动画、图片渲染和战斗状态窗口串成一个
// 按 tick 驱动的场景，用于演示和手动验证脚本。
package scenes

import (
	"image/color"

	"github.com/decker502/picanim/internal/logger"
	"github.com/decker502/picanim/pkg/event"
	"github.com/decker502/picanim/pkg/game"
	"github.com/decker502/picanim/pkg/plugins/pictureanim"
	"github.com/decker502/picanim/pkg/plugins/portraits"
	"github.com/decker502/picanim/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 场景按键
const (
	KeyToggleStatus = ebiten.KeyB
	KeySave         = ebiten.KeyF5
	KeyLoad         = ebiten.KeyF9
	KeyRestart      = ebiten.KeyR
)

var backgroundColor = color.RGBA{R: 32, G: 40, B: 56, A: 255}

// PictureSceneOptions 场景依赖
type PictureSceneOptions struct {
	// Commands 启动时执行的事件指令列表
	Commands []event.Command
	// Resources 图片、头像、图标的加载来源
	Resources *game.ResourceManager
	// Params 战斗状态窗口的插件参数
	Params portraits.Params
	// SaveManager 可为 nil（不支持存档）
	SaveManager *game.SaveManager
	// ShowHelp 在左上角显示按键提示
	ShowHelp bool
}

// PictureScene 图片动画演示场景
//
// 每个 tick 的更新顺序：
//  1. 输入（切换状态窗口、存档、读档、重新开始）
//  2. 事件解释器（执行到需要等待为止）
//  3. 单元格动画系统（推进帧计数和淡入淡出）
//  4. 图片渲染系统（加载新图片的位图、更新就绪状态）
type PictureScene struct {
	gameState   *game.GameState
	interpreter *event.Interpreter
	commands    []event.Command

	cellAnimationSystem *systems.CellAnimationSystem
	pictureRenderSystem *systems.PictureRenderSystem
	statusWindow        *portraits.StatusWindow

	saveManager *game.SaveManager
	showHelp    bool

	// justPressed 按键检测，测试中可替换
	justPressed func(ebiten.Key) bool
}

// NewPictureScene 创建场景并开始执行 Commands
func NewPictureScene(gs *game.GameState, opts PictureSceneOptions) *PictureScene {
	em := gs.EntityManager()
	if opts.Resources == nil {
		opts.Resources = game.NewResourceManager(nil)
	}

	interpreter := event.NewInterpreter(gs)
	interpreter.RegisterPlugin(pictureanim.New(gs))

	s := &PictureScene{
		gameState:           gs,
		interpreter:         interpreter,
		commands:            opts.Commands,
		cellAnimationSystem: systems.NewCellAnimationSystem(em),
		pictureRenderSystem: systems.NewPictureRenderSystem(em, opts.Resources),
		statusWindow:        portraits.NewStatusWindow(portraits.NewLayout(opts.Params, gs.DisplayTP), opts.Resources),
		saveManager:         opts.SaveManager,
		showHelp:            opts.ShowHelp,
		justPressed:         inpututil.IsKeyJustPressed,
	}
	gs.Party.SetMaxBattleMembers(opts.Params.ActorsQuantity)

	s.interpreter.Setup(s.commands)
	logger.Sugar.Infof("[PictureScene] Started with %d commands", len(s.commands))
	return s
}

// Interpreter 返回场景的事件解释器
func (s *PictureScene) Interpreter() *event.Interpreter {
	return s.interpreter
}

// Update 推进一个 tick
func (s *PictureScene) Update() {
	s.handleInput()

	s.interpreter.Update()
	s.cellAnimationSystem.Update()
	s.pictureRenderSystem.Update()
}

func (s *PictureScene) handleInput() {
	if s.justPressed == nil {
		return
	}
	switch {
	case s.justPressed(KeyToggleStatus):
		s.ToggleBattleStatus()
	case s.justPressed(KeySave):
		s.Save()
	case s.justPressed(KeyLoad):
		s.Load()
	case s.justPressed(KeyRestart):
		s.Restart()
	}
}

// ToggleBattleStatus 切换战斗状态窗口的显示
func (s *PictureScene) ToggleBattleStatus() {
	s.gameState.BattleStatusVisible = !s.gameState.BattleStatusVisible
}

// Save 保存屏幕状态，失败只记录日志
func (s *PictureScene) Save() bool {
	if err := s.saveManager.Save(s.gameState); err != nil {
		logger.Sugar.Warnf("[PictureScene] Save failed: %v", err)
		return false
	}
	return true
}

// Load 读取屏幕状态
// 读档只恢复屏幕，不改变正在执行的脚本位置
func (s *PictureScene) Load() bool {
	found, err := s.saveManager.Load(s.gameState)
	if err != nil {
		logger.Sugar.Warnf("[PictureScene] Load failed: %v", err)
		return false
	}
	if !found {
		logger.Sugar.Infof("[PictureScene] No screen save found")
	}
	return found
}

// Restart 清空屏幕并从头执行脚本
func (s *PictureScene) Restart() {
	s.gameState.Screen.Clear()
	s.gameState.Screen.SetInBattle(false)
	s.gameState.BattleStatusVisible = false
	s.interpreter.Setup(s.commands)
	logger.Sugar.Infof("[PictureScene] Restarted")
}

// SaveOnExit 实现 game.Saveable
func (s *PictureScene) SaveOnExit() bool {
	if !s.saveManager.Enabled() {
		return true
	}
	return s.Save()
}

// Draw 绘制图片，然后在需要时绘制战斗状态窗口
func (s *PictureScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s.pictureRenderSystem.Draw(screen)

	if s.gameState.BattleStatusVisible {
		s.statusWindow.Draw(screen, s.gameState.Party.BattleMembers())
	}

	if s.showHelp {
		ebitenutil.DebugPrintAt(screen, "B: status  F5: save  F9: load  R: restart", 4, 4)
	}
}
