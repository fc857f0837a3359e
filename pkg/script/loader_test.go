package script

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/decker502/picanim/pkg/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoYAML = `
name: door
commands:
  - code: plugin
    params: ["PA_INIT 4 10 N 20"]
  - code: showPicture
    params: [1, Door00, 1, 408, 312.5]
  - code: plugin
    params: ["PA_START_LOOP 1 2"]
  - code: wait
    params: [60]
  - code: battle
    params: [true]
  - code: showBattleStatus
`

const demoLua = `
plugin("PA_INIT 4 10 N 20")
showPicture(1, "Door00", 1, 408, 312.5)
plugin("PA_START_LOOP 1 2")
wait(60)
battle(true)
showBattleStatus()
`

func TestParseYAML(t *testing.T) {
	cmds, err := ParseYAML([]byte(demoYAML))
	require.NoError(t, err)
	require.Len(t, cmds, 6)

	assert.Equal(t, event.CodeShowPicture, cmds[1].Code)
	assert.Equal(t, 1, cmds[1].Int(0, 0))
	assert.Equal(t, "Door00", cmds[1].Str(1, ""))
	assert.Equal(t, 312.5, cmds[1].Float(4, 0))
	assert.Equal(t, true, cmds[4].Bool(0, false))
	assert.Empty(t, cmds[5].Params)
}

func TestParseYAML_Errors(t *testing.T) {
	_, err := ParseYAML([]byte("commands: [{params: [1]}]"))
	assert.Error(t, err, "missing code")

	_, err = ParseYAML([]byte("commands: {"))
	assert.Error(t, err)
}

// TestLuaAndYAMLProduceSameCommands 两种格式生成相同的指令列表
func TestLuaAndYAMLProduceSameCommands(t *testing.T) {
	fromYAML, err := ParseYAML([]byte(demoYAML))
	require.NoError(t, err)

	fromLua, err := ParseLua(context.Background(), "demo.lua", demoLua)
	require.NoError(t, err)

	require.Len(t, fromLua, len(fromYAML))
	for i := range fromYAML {
		assert.Equal(t, fromYAML[i].Code, fromLua[i].Code, "command %d", i)
		assert.Equal(t, len(fromYAML[i].Params), len(fromLua[i].Params), "command %d", i)
		for j := range fromYAML[i].Params {
			assert.Equal(t, fromYAML[i].Params[j], fromLua[i].Params[j], "command %d param %d", i, j)
		}
	}
}

func TestParseLua_Loops(t *testing.T) {
	src := `
for i = 1, 3 do
  plugin(string.format("PA_PROG_CELL %d WAIT", i))
end
setVariable(1, 2 * 21)
`
	cmds, err := ParseLua(context.Background(), "loop.lua", src)
	require.NoError(t, err)
	require.Len(t, cmds, 4)
	assert.Equal(t, "PA_PROG_CELL 3 WAIT", cmds[2].Str(0, ""))
	assert.Equal(t, 42, cmds[3].Int(1, 0))
}

func TestParseLua_Errors(t *testing.T) {
	_, err := ParseLua(context.Background(), "bad.lua", `showPicture(1)`)
	assert.Error(t, err, "too few arguments")

	_, err = ParseLua(context.Background(), "bad.lua", `wait({})`)
	assert.Error(t, err, "table arguments are not supported")

	_, err = ParseLua(context.Background(), "bad.lua", `io.write("x")`)
	assert.Error(t, err, "io library is not available")

	_, err = ParseLua(context.Background(), "bad.lua", `dofile("other.lua")`)
	assert.Error(t, err, "dofile is removed")

	_, err = ParseLua(context.Background(), "bad.lua", `plugin(`)
	assert.Error(t, err, "syntax error")
}

func TestParseLua_Timeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := ParseLua(ctx, "spin.lua", `while true do end`)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"scripts/demo.yaml": &fstest.MapFile{Data: []byte(demoYAML)},
		"scripts/demo.lua":  &fstest.MapFile{Data: []byte(demoLua)},
		"scripts/demo.txt":  &fstest.MapFile{Data: []byte("x")},
	}
	ctx := context.Background()

	cmds, err := LoadFile(ctx, fsys, "scripts/demo.yaml")
	require.NoError(t, err)
	assert.Len(t, cmds, 6)

	cmds, err = LoadFile(ctx, fsys, "scripts/demo.lua")
	require.NoError(t, err)
	assert.Len(t, cmds, 6)

	_, err = LoadFile(ctx, fsys, "scripts/demo.txt")
	assert.Error(t, err)

	_, err = LoadFile(ctx, fsys, "scripts/missing.yaml")
	assert.Error(t, err)
}
