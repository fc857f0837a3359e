package script

import (
	"context"
	"fmt"
	"math"

	"github.com/decker502/picanim/pkg/event"
	lua "github.com/yuin/gopher-lua"
)

// luaFunctions Lua 全局函数名 -> 指令代码和最少参数个数
var luaFunctions = map[string]struct {
	code    string
	minArgs int
}{
	"showPicture":      {event.CodeShowPicture, 2},
	"erasePicture":     {event.CodeErasePicture, 1},
	"plugin":           {event.CodePlugin, 1},
	"wait":             {event.CodeWait, 1},
	"showBattleStatus": {event.CodeShowBattleStatus, 0},
	"hideBattleStatus": {event.CodeHideBattleStatus, 0},
	"setVariable":      {event.CodeSetVariable, 2},
	"battle":           {event.CodeBattle, 1},
}

// ParseLua 执行 Lua 脚本并收集其调用生成的指令
//
// 脚本只在这里执行一次，生成的列表之后由解释器逐 tick 运行；
// 因此脚本里的循环和变量只用于"生成"指令，不能读取运行时状态。
// ctx 取消或超时会中止脚本。
func ParseLua(ctx context.Context, name, src string) ([]event.Command, error) {
	l := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer l.Close()
	openSafeLibs(l)
	l.SetContext(ctx)

	var cmds []event.Command
	for fn, def := range luaFunctions {
		code, minArgs := def.code, def.minArgs
		l.Register(fn, func(l *lua.LState) int {
			if l.GetTop() < minArgs {
				l.RaiseError("%s: expected at least %d arguments, got %d", fn, minArgs, l.GetTop())
			}
			params := make([]interface{}, 0, l.GetTop())
			for i := 1; i <= l.GetTop(); i++ {
				params = append(params, luaToParam(l, i))
			}
			cmds = append(cmds, event.Command{Code: code, Params: params})
			return 0
		})
	}

	if err := l.DoString(src); err != nil {
		return nil, fmt.Errorf("lua script %s: %w", name, err)
	}
	return cmds, nil
}

// openSafeLibs 只打开不访问文件系统和进程的标准库
func openSafeLibs(l *lua.LState) {
	for _, pair := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		l.Push(l.NewFunction(pair.fn))
		l.Push(lua.LString(pair.name))
		l.Call(1, 0)
	}
	for _, name := range []string{"dofile", "loadfile", "require", "module"} {
		l.SetGlobal(name, lua.LNil)
	}
}

// luaToParam 转换为与 YAML 解码一致的参数类型：整数 int，小数 float64
func luaToParam(l *lua.LState, argi int) interface{} {
	switch v := l.Get(argi).(type) {
	case lua.LNumber:
		f := float64(v)
		if f == math.Trunc(f) && math.Abs(f) <= math.MaxInt32 {
			return int(f)
		}
		return f
	case lua.LBool:
		return bool(v)
	case lua.LString:
		return string(v)
	case *lua.LNilType:
		return nil
	default:
		l.RaiseError("argument %d: unsupported type %s", argi, v.Type().String())
		return nil
	}
}
