package pictureanim

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/decker502/picanim/pkg/components"
	"github.com/decker502/picanim/pkg/game"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/width"
)

// 参数中可用的转义字符
//
//	\V[n]  变量 n 的值
//	\N[n]  角色 n 的名字
//	\P[n]  队伍第 n 名成员的名字
//	\G     货币单位
//	\\     反斜杠本身
const escapeMark = "\x1b"

var (
	reVariable = regexp.MustCompile(`(?i)\x1bV\[(\d+)\]`)
	reActor    = regexp.MustCompile(`(?i)\x1bN\[(\d+)\]`)
	reMember   = regexp.MustCompile(`(?i)\x1bP\[(\d+)\]`)
	reCurrency = regexp.MustCompile(`(?i)\x1bG`)
	reLeadInt  = regexp.MustCompile(`^[+-]?\d+`)
)

var upper = cases.Upper(language.Und)

// ConvertEscapeCharacters 展开参数中的转义字符
//
// \V[n] 展开两次，支持 \V[\V[1]] 这样的嵌套写法。
func ConvertEscapeCharacters(gs *game.GameState, text string) string {
	text = strings.ReplaceAll(text, `\`, escapeMark)
	text = strings.ReplaceAll(text, escapeMark+escapeMark, `\`)
	if gs == nil {
		return text
	}

	variable := func(m string) string {
		id := submatchInt(reVariable, m)
		return strconv.Itoa(gs.Variables.Value(id))
	}
	text = reVariable.ReplaceAllStringFunc(text, variable)
	text = reVariable.ReplaceAllStringFunc(text, variable)

	text = reActor.ReplaceAllStringFunc(text, func(m string) string {
		n := submatchInt(reActor, m)
		if n < 1 {
			return ""
		}
		if actor := gs.Party.ActorByID(n); actor != nil {
			return actor.Name
		}
		return ""
	})
	text = reMember.ReplaceAllStringFunc(text, func(m string) string {
		n := submatchInt(reMember, m)
		if actor := gs.Party.Member(n - 1); n >= 1 && actor != nil {
			return actor.Name
		}
		return ""
	})
	return reCurrency.ReplaceAllLiteralString(text, gs.CurrencyUnit)
}

func submatchInt(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if len(m) < 2 {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

// ParseLeadingInt 解析字符串开头的整数，前导空白被忽略，解析失败返回 0
//
// 全角数字和符号先转换为半角。
func ParseLeadingInt(s string) int {
	s = strings.TrimSpace(width.Narrow.String(s))
	digits := reLeadInt.FindString(s)
	if digits == "" {
		return 0
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		// 超出 int 范围
		if strings.HasPrefix(digits, "-") {
			return minInt
		}
		return maxInt
	}
	return n
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)

// ArgNumber 转义展开后解析为整数并限制在 [lo, hi]
// 格式错误的参数视为 0 再做限制
func ArgNumber(gs *game.GameState, arg string, lo, hi int) int {
	n := ParseLeadingInt(ConvertEscapeCharacters(gs, arg))
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// ArgString 转义展开后的字符串参数，upperCase 为 true 时转为大写
func ArgString(gs *game.GameState, arg string, upperCase bool) string {
	s := ConvertEscapeCharacters(gs, arg)
	if upperCase {
		return upper.String(s)
	}
	return s
}

// CommandName 指令名统一为大写后再查表
func CommandName(name string) string {
	return upper.String(name)
}

// ParseLayout 解析单元格排列方式
// 空字符串为纵向；无法识别的记号返回 CellLayoutNone（整张图片显示）
func ParseLayout(token string) components.CellLayout {
	switch upper.String(strings.TrimSpace(token)) {
	case "", "縦", "V":
		return components.CellLayoutVertical
	case "横", "H":
		return components.CellLayoutHorizontal
	case "連番", "N":
		return components.CellLayoutSequential
	default:
		return components.CellLayoutNone
	}
}

// IsWaitToken 是否为"等待"记号（ウェイトあり 或不区分大小写的 WAIT）
func IsWaitToken(token string) bool {
	return token == "ウェイトあり" || upper.String(token) == "WAIT"
}
