package pictureanim

import (
	"github.com/decker502/picanim/internal/logger"
	"github.com/decker502/picanim/pkg/components"
	"github.com/decker502/picanim/pkg/event"
	"github.com/decker502/picanim/pkg/game"
	"github.com/decker502/picanim/pkg/systems"
)

type commandID int

const (
	cmdInit commandID = iota + 1
	cmdStart
	cmdStartLoop
	cmdStop
	cmdStopForce
	cmdSetCell
	cmdProgCell
)

// 参数范围
const (
	maxCellCount     = 99
	maxFrameInterval = 9999
	maxFadeDuration  = 9999
	maxPictureSlot   = 100
	maxCellArg       = 100
)

// commandTable 助记符和日文名称都可以调用同一条指令
var commandTable = map[string]commandID{
	"PA_INIT":        cmdInit,
	"ピクチャのアニメーション準備": cmdInit,

	"PA_START":       cmdStart,
	"ピクチャのアニメーション開始": cmdStart,

	"PA_START_LOOP":     cmdStartLoop,
	"ピクチャのループアニメーション開始": cmdStartLoop,

	"PA_STOP":        cmdStop,
	"ピクチャのアニメーション終了": cmdStop,

	"PA_STOP_FORCE":    cmdStopForce,
	"ピクチャのアニメーション強制終了": cmdStopForce,

	"PA_SET_CELL":      cmdSetCell,
	"ピクチャのアニメーションセル設定": cmdSetCell,

	"PA_PROG_CELL":     cmdProgCell,
	"ピクチャのアニメーションセル進行": cmdProgCell,
}

// Plugin 图片单元格动画插件
//
// 作为插件指令处理器注册到解释器上，不认识的指令原样交给下一个处理器。
// 指令对不存在的图片静默无效。
type Plugin struct {
	gs *game.GameState
}

// New 创建插件
func New(gs *game.GameState) *Plugin {
	return &Plugin{gs: gs}
}

// Lookup 返回指令名是否属于本插件
func Lookup(name string) bool {
	_, ok := commandTable[CommandName(name)]
	return ok
}

// HandlePluginCommand 实现 event.PluginCommandHandler
func (p *Plugin) HandlePluginCommand(it *event.Interpreter, name string, args []string) bool {
	id, ok := commandTable[CommandName(name)]
	if !ok {
		return false
	}

	screen := p.gs.Screen
	switch id {
	case cmdInit:
		cellCount := p.number(args, 0, 1, maxCellCount)
		frameInterval := p.number(args, 1, 1, maxFrameInterval)
		layout := ParseLayout(ArgString(p.gs, arg(args, 2), true))
		fadeDuration := p.number(args, 3, 0, maxFadeDuration)
		screen.StagePictureAnimation(cellCount, frameInterval, layout, fadeDuration)
		logger.Sugar.Debugf("[PictureAnimation] 准备动画: 单元格=%d 间隔=%d 排列=%s 淡入淡出=%d",
			cellCount, frameInterval, layout, fadeDuration)

	case cmdStart, cmdStartLoop:
		slot := p.number(args, 0, 1, maxPictureSlot)
		animType := components.CellAnimationType(p.number(args, 1, 1, 2))
		systems.StartCellAnimation(screen.PictureAnimation(slot), animType, id == cmdStartLoop)

	case cmdStop, cmdStopForce:
		slot := p.number(args, 0, 1, maxPictureSlot)
		systems.StopCellAnimation(screen.PictureAnimation(slot), id == cmdStopForce)

	case cmdSetCell:
		slot := p.number(args, 0, 1, maxPictureSlot)
		cell := p.number(args, 1, 0, maxCellArg)
		if anim := screen.PictureAnimation(slot); anim != nil {
			p.waitIfRequested(it, anim, arg(args, 2))
			systems.SetCell(anim, cell)
		}

	case cmdProgCell:
		slot := p.number(args, 0, 1, maxPictureSlot)
		if anim := screen.PictureAnimation(slot); anim != nil {
			p.waitIfRequested(it, anim, arg(args, 1))
			systems.AdvanceCell(anim)
		}
	}
	return true
}

// waitIfRequested 带"等待"记号时，解释器等待淡入淡出的帧数
func (p *Plugin) waitIfRequested(it *event.Interpreter, anim *components.CellAnimationComponent, token string) {
	if it == nil || !IsWaitToken(ArgString(p.gs, token, false)) {
		return
	}
	it.Wait(anim.Config.FadeDuration)
}

func (p *Plugin) number(args []string, i, lo, hi int) int {
	return ArgNumber(p.gs, arg(args, i), lo, hi)
}

func arg(args []string, i int) string {
	if i < 0 || i >= len(args) {
		return ""
	}
	return args[i]
}
