package event

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// 事件指令代码
const (
	CodeShowPicture      = "showPicture"
	CodeErasePicture     = "erasePicture"
	CodePlugin           = "plugin"
	CodeWait             = "wait"
	CodeShowBattleStatus = "showBattleStatus"
	CodeHideBattleStatus = "hideBattleStatus"
	CodeSetVariable      = "setVariable"
	CodeBattle           = "battle"
)

// Command 一条事件指令
//
// Params 的元素类型取决于脚本来源：YAML 解码得到 int/float64/string/bool，
// Lua 脚本转换后同样只会出现这几种类型。读取时统一用 Int/Float/String 方法做宽松转换。
type Command struct {
	Code   string        `yaml:"code"`
	Params []interface{} `yaml:"params,omitempty"`
}

// String 用于日志输出
func (c Command) String() string {
	return fmt.Sprintf("%s%v", c.Code, c.Params)
}

// Int 读取第 i 个参数为整数，缺失或无法转换时返回 def
func (c Command) Int(i, def int) int {
	if i < 0 || i >= len(c.Params) {
		return def
	}
	switch v := c.Params[i].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(math.Trunc(v))
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return n
		}
	}
	return def
}

// Float 读取第 i 个参数为浮点数，缺失或无法转换时返回 def
func (c Command) Float(i int, def float64) float64 {
	if i < 0 || i >= len(c.Params) {
		return def
	}
	switch v := c.Params[i].(type) {
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case float64:
		return v
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f
		}
	}
	return def
}

// Str 读取第 i 个参数为字符串，缺失时返回 def
func (c Command) Str(i int, def string) string {
	if i < 0 || i >= len(c.Params) || c.Params[i] == nil {
		return def
	}
	switch v := c.Params[i].(type) {
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Bool 读取第 i 个参数为布尔值，数字非 0 为 true
func (c Command) Bool(i int, def bool) bool {
	if i < 0 || i >= len(c.Params) {
		return def
	}
	switch v := c.Params[i].(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
		return def
	}
	return c.Int(i, 0) != 0
}
