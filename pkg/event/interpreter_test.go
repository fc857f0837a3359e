package event

import (
	"testing"

	"github.com/decker502/picanim/pkg/components"
	"github.com/decker502/picanim/pkg/ecs"
	"github.com/decker502/picanim/pkg/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler 记录收到的插件指令，只处理 accept 中的名称
type recordingHandler struct {
	accept map[string]bool
	calls  [][]string
	wait   int
}

func (h *recordingHandler) HandlePluginCommand(it *Interpreter, name string, args []string) bool {
	if !h.accept[name] {
		return false
	}
	h.calls = append(h.calls, append([]string{name}, args...))
	if h.wait > 0 {
		it.Wait(h.wait)
	}
	return true
}

func TestInterpreter_ShowAndErasePicture(t *testing.T) {
	gs := game.NewGameState()
	it := NewInterpreter(gs)
	it.Setup([]Command{
		{Code: CodeShowPicture, Params: []interface{}{3, "Door", 1, 10, 20.5, 50, 150, 128, 1}},
	})
	it.Update()

	id, ok := gs.Screen.Picture(3)
	require.True(t, ok)
	pic, ok := ecs.GetComponent[*components.PictureComponent](gs.EntityManager(), id)
	require.True(t, ok)
	assert.Equal(t, "Door", pic.Name)
	assert.Equal(t, components.OriginCenter, pic.Origin)
	assert.Equal(t, 20.5, pic.Y)
	assert.Equal(t, 150.0, pic.ScaleY)
	assert.Equal(t, 128.0, pic.Opacity)
	assert.Equal(t, components.BlendAdditive, pic.BlendMode)
	assert.False(t, it.IsRunning())

	it.Setup([]Command{{Code: CodeErasePicture, Params: []interface{}{3}}})
	it.Update()
	_, ok = gs.Screen.Picture(3)
	assert.False(t, ok)
}

func TestInterpreter_ShowPictureDefaults(t *testing.T) {
	gs := game.NewGameState()
	it := NewInterpreter(gs)
	it.Setup([]Command{{Code: CodeShowPicture, Params: []interface{}{1, "Only"}}})
	it.Update()

	id, ok := gs.Screen.Picture(1)
	require.True(t, ok)
	pic, _ := ecs.GetComponent[*components.PictureComponent](gs.EntityManager(), id)
	assert.Equal(t, components.OriginUpperLeft, pic.Origin)
	assert.Equal(t, 100.0, pic.ScaleX)
	assert.Equal(t, 255.0, pic.Opacity)
}

// TestInterpreter_WaitSkipsExactTicks wait(n) 之后恰好跳过 n 个 tick
func TestInterpreter_WaitSkipsExactTicks(t *testing.T) {
	gs := game.NewGameState()
	it := NewInterpreter(gs)
	it.Setup([]Command{
		{Code: CodeWait, Params: []interface{}{3}},
		{Code: CodeSetVariable, Params: []interface{}{1, 7}},
	})

	it.Update() // 执行 wait
	assert.Equal(t, 3, it.WaitCount())
	for i := 0; i < 3; i++ {
		it.Update()
		assert.Equal(t, 0, gs.Variables.Value(1), "tick %d should still be waiting", i+1)
	}
	it.Update()
	assert.Equal(t, 7, gs.Variables.Value(1))
	assert.False(t, it.IsRunning())
}

func TestInterpreter_PluginChain(t *testing.T) {
	gs := game.NewGameState()
	it := NewInterpreter(gs)

	first := &recordingHandler{accept: map[string]bool{"A": true}}
	second := &recordingHandler{accept: map[string]bool{"A": true, "B": true}, wait: 2}
	it.RegisterPlugin(first)
	it.RegisterPlugin(second)
	it.RegisterPlugin(nil)

	it.Setup([]Command{
		{Code: CodePlugin, Params: []interface{}{`A 1 "two words"`}},
		{Code: CodePlugin, Params: []interface{}{"B x"}},
		{Code: CodePlugin, Params: []interface{}{"C"}},
		{Code: CodePlugin, Params: []interface{}{""}},
	})
	it.Update()

	require.Len(t, first.calls, 1)
	assert.Equal(t, []string{"A", "1", "two words"}, first.calls[0])
	require.Len(t, second.calls, 1, "B falls through the first handler")
	assert.Equal(t, []string{"B", "x"}, second.calls[0])
	assert.Equal(t, 2, it.WaitCount(), "handler may request a wait")

	it.Update()
	it.Update()
	it.Update()
	assert.False(t, it.IsRunning())
	assert.False(t, it.PluginCommand("C", nil), "no handler accepts C")
}

func TestInterpreter_PluginPanicIsContained(t *testing.T) {
	gs := game.NewGameState()
	it := NewInterpreter(gs)
	after := &recordingHandler{accept: map[string]bool{"BOOM": true}}
	it.RegisterPlugin(PluginCommandFunc(func(it *Interpreter, name string, args []string) bool {
		if name == "BOOM" {
			panic("broken handler")
		}
		return false
	}))
	it.RegisterPlugin(after)

	it.Setup([]Command{
		{Code: CodePlugin, Params: []interface{}{"BOOM"}},
		{Code: CodeSetVariable, Params: []interface{}{2, 5}},
	})
	assert.NotPanics(t, it.Update)
	assert.Empty(t, after.calls, "a failing handler stops the chain")
	assert.Equal(t, 5, gs.Variables.Value(2), "execution continues after the failure")
}

func TestInterpreter_BattleStatusAndBattleFlag(t *testing.T) {
	gs := game.NewGameState()
	it := NewInterpreter(gs)
	it.Setup([]Command{
		{Code: CodeShowBattleStatus},
		{Code: CodeBattle, Params: []interface{}{true}},
	})
	it.Update()
	assert.True(t, gs.BattleStatusVisible)
	assert.True(t, gs.Screen.InBattle())

	it.Setup([]Command{{Code: CodeHideBattleStatus}, {Code: "unknown"}})
	it.Update()
	assert.False(t, gs.BattleStatusVisible)
}

func TestCommand_ParamConversion(t *testing.T) {
	c := Command{Code: "x", Params: []interface{}{"12", 3.9, true, nil, "abc"}}
	assert.Equal(t, 12, c.Int(0, -1))
	assert.Equal(t, 3, c.Int(1, -1))
	assert.Equal(t, 1, c.Int(2, -1))
	assert.Equal(t, -1, c.Int(4, -1))
	assert.Equal(t, -1, c.Int(9, -1))
	assert.Equal(t, 12.0, c.Float(0, 0))
	assert.Equal(t, "3.9", c.Str(1, ""))
	assert.Equal(t, "def", c.Str(3, "def"))
	assert.True(t, c.Bool(2, false))
	assert.True(t, c.Bool(1, false))
}

func TestInterpreter_PluginKeepsBackslashes(t *testing.T) {
	gs := game.NewGameState()
	it := NewInterpreter(gs)
	h := &recordingHandler{accept: map[string]bool{"A": true}}
	it.RegisterPlugin(h)

	it.Setup([]Command{{Code: CodePlugin, Params: []interface{}{`A \V[1] "\N[2] x"`}}})
	it.Update()

	require.Len(t, h.calls, 1)
	assert.Equal(t, []string{"A", `\V[1]`, `\N[2] x`}, h.calls[0])
}
