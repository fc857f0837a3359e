package portraits

import (
	"fmt"

	"github.com/decker502/picanim/internal/logger"
	"gopkg.in/ini.v1"
)

// SectionName 插件参数在 INI 文件中的分节名
const SectionName = "Portraits"

// 参数键名
const (
	KeyBarsHorizontalPadding = "Bars Horizontal Padding"
	KeyWindowVerticalMargin  = "Global Window Vertical Margin"
	KeyActorsQuantity        = "Actors Quantity"
	KeyATBCompatibility      = "ATB Compatibility"
	KeyTPAndATB              = "TP and ATB Enabled"
	KeyWindowWidth           = "Window Width"
)

// Params 战斗状态窗口插件参数，窗口创建时读取一次
type Params struct {
	// BarsHorizontalPadding 槽区域的水平偏移（4 列推荐 -60，6 列 30，8 列 75）
	BarsHorizontalPadding int
	// WindowVerticalMargin 整个窗口的垂直偏移
	WindowVerticalMargin int
	// ActorsQuantity 窗口中的角色槽位数（列数）
	ActorsQuantity int
	// ATBCompatibility 1 时显示 ATB 槽；0 时不显示；其他值不绘制任何槽
	ATBCompatibility int
	// TPAndATB 1 时窗口多出一行，让 TP 和 ATB 槽同时放得下
	TPAndATB int
	// WindowWidth 窗口宽度，0 表示使用默认宽度（画面宽度 - 192）
	WindowWidth int
}

// DefaultParams 返回默认参数
func DefaultParams() Params {
	return Params{
		BarsHorizontalPadding: -60,
		WindowVerticalMargin:  13,
		ActorsQuantity:        4,
		ATBCompatibility:      0,
		TPAndATB:              0,
		WindowWidth:           0,
	}
}

// LoadParams 从 INI 文件或数据读取参数
//
// source 可以是文件路径 (string) 或文件内容 ([]byte)。
// 缺失或无法解析的键使用默认值；读取失败时返回默认参数和错误。
func LoadParams(source interface{}) (Params, error) {
	cfg, err := ini.Load(source)
	if err != nil {
		return DefaultParams(), fmt.Errorf("failed to load plugin parameters: %w", err)
	}
	params := ParamsFromSection(cfg.Section(SectionName))
	logger.Sugar.Debugf("[Portraits] 参数: %+v", params)
	return params, nil
}

// ParamsFromSection 从 INI 分节读取参数
func ParamsFromSection(sec *ini.Section) Params {
	def := DefaultParams()
	return Params{
		BarsHorizontalPadding: sec.Key(KeyBarsHorizontalPadding).MustInt(def.BarsHorizontalPadding),
		WindowVerticalMargin:  sec.Key(KeyWindowVerticalMargin).MustInt(def.WindowVerticalMargin),
		ActorsQuantity:        sec.Key(KeyActorsQuantity).MustInt(def.ActorsQuantity),
		ATBCompatibility:      sec.Key(KeyATBCompatibility).MustInt(def.ATBCompatibility),
		TPAndATB:              sec.Key(KeyTPAndATB).MustInt(def.TPAndATB),
		WindowWidth:           sec.Key(KeyWindowWidth).MustInt(def.WindowWidth),
	}
}
