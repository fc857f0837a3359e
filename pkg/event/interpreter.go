package event

import (
	"fmt"
	"strings"

	"github.com/decker502/picanim/internal/logger"
	"github.com/decker502/picanim/pkg/components"
	"github.com/decker502/picanim/pkg/game"
	"github.com/google/shlex"
)

// PluginCommandHandler 插件指令处理器
//
// 返回 true 表示指令已被处理，不再传给后续处理器；
// 不认识的指令必须返回 false，让链上的下一个处理器有机会处理。
type PluginCommandHandler interface {
	HandlePluginCommand(it *Interpreter, name string, args []string) bool
}

// PluginCommandFunc 函数形式的处理器
type PluginCommandFunc func(it *Interpreter, name string, args []string) bool

// HandlePluginCommand 实现 PluginCommandHandler
func (f PluginCommandFunc) HandlePluginCommand(it *Interpreter, name string, args []string) bool {
	return f(it, name, args)
}

// Interpreter 事件解释器
//
// 每个 tick 调用一次 Update：等待计数大于 0 时只递减计数；
// 否则连续执行指令，直到某条指令要求等待或者列表执行完毕。
// 设置 Wait(n) 后，下一条指令会在跳过恰好 n 个 tick 之后执行。
type Interpreter struct {
	gs       *game.GameState
	list     []Command
	index    int
	waitCnt  int
	running  bool
	handlers []PluginCommandHandler
}

// NewInterpreter 创建解释器
func NewInterpreter(gs *game.GameState) *Interpreter {
	return &Interpreter{gs: gs}
}

// GameState 返回解释器操作的游戏状态
func (it *Interpreter) GameState() *game.GameState {
	return it.gs
}

// RegisterPlugin 在处理器链末尾追加一个插件指令处理器
func (it *Interpreter) RegisterPlugin(h PluginCommandHandler) {
	if h == nil {
		return
	}
	it.handlers = append(it.handlers, h)
}

// Setup 载入指令列表并从头开始执行
func (it *Interpreter) Setup(list []Command) {
	it.list = list
	it.index = 0
	it.waitCnt = 0
	it.running = len(list) > 0
}

// IsRunning 是否还有指令未执行
func (it *Interpreter) IsRunning() bool {
	return it.running
}

// Index 下一条要执行的指令下标
func (it *Interpreter) Index() int {
	return it.index
}

// Wait 让解释器等待 n 个 tick，n <= 0 时不等待
func (it *Interpreter) Wait(n int) {
	if n < 0 {
		n = 0
	}
	it.waitCnt = n
}

// WaitCount 剩余等待的 tick 数
func (it *Interpreter) WaitCount() int {
	return it.waitCnt
}

// Terminate 立即结束执行
func (it *Interpreter) Terminate() {
	it.list = nil
	it.index = 0
	it.waitCnt = 0
	it.running = false
}

// Update 推进一个 tick
func (it *Interpreter) Update() {
	if !it.running {
		return
	}
	if it.waitCnt > 0 {
		it.waitCnt--
		return
	}
	for it.index < len(it.list) {
		cmd := it.list[it.index]
		it.index++
		it.execute(cmd)
		if !it.running {
			return
		}
		if it.waitCnt > 0 {
			return
		}
	}
	it.running = false
	logger.Sugar.Debugf("[Interpreter] 指令列表执行完毕 (%d 条)", len(it.list))
}

func (it *Interpreter) execute(cmd Command) {
	screen := it.gs.Screen
	switch cmd.Code {
	case CodeShowPicture:
		// [编号, 图片名, 原点, x, y, 横向缩放%, 纵向缩放%, 不透明度, 合成方式]
		screen.ShowPicture(
			cmd.Int(0, 0),
			cmd.Str(1, ""),
			components.PictureOrigin(cmd.Int(2, int(components.OriginUpperLeft))),
			cmd.Float(3, 0),
			cmd.Float(4, 0),
			cmd.Float(5, 100),
			cmd.Float(6, 100),
			cmd.Float(7, 255),
			components.PictureBlendMode(cmd.Int(8, int(components.BlendNormal))),
		)
	case CodeErasePicture:
		screen.ErasePicture(cmd.Int(0, 0))
	case CodePlugin:
		it.executePlugin(cmd.Str(0, ""))
	case CodeWait:
		it.Wait(cmd.Int(0, 0))
	case CodeShowBattleStatus:
		it.gs.BattleStatusVisible = true
	case CodeHideBattleStatus:
		it.gs.BattleStatusVisible = false
	case CodeSetVariable:
		it.gs.Variables.SetValue(cmd.Int(0, 0), cmd.Int(1, 0))
	case CodeBattle:
		screen.SetInBattle(cmd.Bool(0, false))
	default:
		logger.Sugar.Warnf("[Interpreter] 未知指令: %s", cmd)
	}
}

// executePlugin 拆分插件指令行并交给处理器链
//
// 按空白拆分，支持引号包含空格的参数。反斜杠原样保留，留给插件展开 \V[n] 等转义字符。
func (it *Interpreter) executePlugin(line string) {
	words, err := shlex.Split(strings.ReplaceAll(line, `\`, `\\`))
	if err != nil {
		logger.Sugar.Warnf("[Interpreter] 插件指令解析失败 %q: %v", line, err)
		return
	}
	if len(words) == 0 {
		return
	}
	it.PluginCommand(words[0], words[1:])
}

// PluginCommand 依次尝试处理器链，返回是否被处理
//
// 处理器 panic 时记录日志并视为已处理，不会传播到游戏循环。
func (it *Interpreter) PluginCommand(name string, args []string) bool {
	for _, h := range it.handlers {
		handled, err := it.callHandler(h, name, args)
		if err != nil {
			logger.Sugar.Errorf("[Interpreter] 插件指令执行出错 %s %v: %v", name, args, err)
			return true
		}
		if handled {
			return true
		}
	}
	logger.Sugar.Debugf("[Interpreter] 没有处理器响应插件指令: %s %v", name, args)
	return false
}

func (it *Interpreter) callHandler(h PluginCommandHandler, name string, args []string) (handled bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h.HandlePluginCommand(it, name, args), nil
}
