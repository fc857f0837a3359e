package portraits

import (
	"image"

	"github.com/decker502/picanim/pkg/config"
)

// 固定尺寸
const (
	GaugeAreaWidth  = 330
	basicAreaMargin = 15
	faceDrawWidth   = 110
	faceDrawHeight  = 142
	nameWidth       = 150
	iconsOffsetX    = 156
	gaugeOffsetX    = 156
	gaugeWidth      = 88
	defaultWidthCut = 192
)

// GaugeKind 槽的种类
type GaugeKind int

const (
	GaugeHP GaugeKind = iota
	GaugeMP
	GaugeTP
	GaugeATB
)

// Label 槽左侧的标签
func (k GaugeKind) Label() string {
	switch k {
	case GaugeHP:
		return "HP"
	case GaugeMP:
		return "MP"
	case GaugeTP:
		return "TP"
	case GaugeATB:
		return "AT"
	default:
		return ""
	}
}

// GaugeRow 槽所在的行（行号 x 行高 = 垂直偏移）
type GaugeRow struct {
	Kind GaugeKind
	Row  int
}

// GaugePlacement 槽在窗口内容区域中的位置
type GaugePlacement struct {
	Kind  GaugeKind
	X, Y  int
	Width int
}

// ActorPlacement 一个角色槽位中各元素的位置
type ActorPlacement struct {
	Face   image.Rectangle
	Name   image.Rectangle
	Icons  image.Rectangle
	Gauges []GaugePlacement
}

// Layout 战斗状态窗口布局（纯计算，不持有图像）
//
// 坐标分两种：WindowRect 是画面坐标；其余矩形相对于窗口内容区域（去掉 Padding 后）。
type Layout struct {
	Params    Params
	DisplayTP bool

	BoxWidth    int
	BoxHeight   int
	LineHeight  int
	Padding     int
	TextPadding int
	Spacing     int
}

// NewLayout 用默认画面和窗口尺寸创建布局
func NewLayout(params Params, displayTP bool) Layout {
	return Layout{
		Params:      params,
		DisplayTP:   displayTP,
		BoxWidth:    config.ScreenWidth,
		BoxHeight:   config.ScreenHeight,
		LineHeight:  config.WindowLineHeight,
		Padding:     config.WindowPadding,
		TextPadding: config.WindowTextPadding,
		Spacing:     config.WindowItemSpacing,
	}
}

// WindowWidth 窗口宽度
func (l Layout) WindowWidth() int {
	if l.Params.WindowWidth > 0 {
		return l.Params.WindowWidth
	}
	return l.BoxWidth - defaultWidthCut
}

// WindowHeight 5 行，TP 和 ATB 同时启用时 6 行
func (l Layout) WindowHeight() int {
	lines := 5
	if l.Params.TPAndATB == 1 {
		lines = 6
	}
	return l.LineHeight * lines
}

// WindowRect 窗口在画面中的位置：靠右下，再加上垂直偏移
func (l Layout) WindowRect() image.Rectangle {
	w, h := l.WindowWidth(), l.WindowHeight()
	x := l.BoxWidth - w
	y := l.BoxHeight - h + l.Params.WindowVerticalMargin
	return image.Rect(x, y, x+w, y+h)
}

// MaxCols 列数等于角色槽位数，只显示一行
func (l Layout) MaxCols() int {
	if l.Params.ActorsQuantity < 1 {
		return 1
	}
	return l.Params.ActorsQuantity
}

// ItemWidth 每列宽度
func (l Layout) ItemWidth() int {
	return (l.WindowWidth()-l.Padding*2+l.Spacing)/l.MaxCols() - l.Spacing
}

// ItemRect 第 index 个槽位的矩形，行高等于 LineHeight
func (l Layout) ItemRect(index int) image.Rectangle {
	cols := l.MaxCols()
	w, h := l.ItemWidth(), l.LineHeight
	x := index % cols * (w + l.Spacing)
	y := index / cols * h
	return rect(x, y, x+w, y+h)
}

// rect 与 image.Rect 相同但不交换坐标，保留负宽度
func rect(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}

// ItemRectForText 槽位矩形去掉左右文字留白
func (l Layout) ItemRectForText(index int) image.Rectangle {
	r := l.ItemRect(index)
	r.Min.X += l.TextPadding
	r.Max.X -= l.TextPadding
	return r
}

// BasicAreaRect 头像、名字、状态图标所在区域：文字矩形去掉槽区域宽度和间隔
//
// 列数较多时宽度可能为负，image.Rectangle 不做规范化，按原值参与计算。
func (l Layout) BasicAreaRect(index int) image.Rectangle {
	r := l.ItemRectForText(index)
	r.Max.X -= GaugeAreaWidth + basicAreaMargin
	return r
}

// GaugeAreaRect 槽区域：文字矩形右侧 GaugeAreaWidth 宽，再加水平偏移
func (l Layout) GaugeAreaRect(index int) image.Rectangle {
	r := l.ItemRectForText(index)
	x := r.Min.X + r.Dx() - GaugeAreaWidth + l.Params.BarsHorizontalPadding
	return rect(x, r.Min.Y, x+GaugeAreaWidth, r.Max.Y)
}

// GaugeRows 槽的行号，由"是否显示 TP"和"ATB 兼容"两个开关决定
//
//	显示TP  ATB  HP MP TP ATB
//	是      0    1  2  3  -
//	是      1    1  2  3  4
//	否      0    2  3  -  -
//	否      1    1  2  -  3
//
// ATB 兼容为其他值时不绘制槽。
func (l Layout) GaugeRows() []GaugeRow {
	switch {
	case l.DisplayTP && l.Params.ATBCompatibility == 0:
		return []GaugeRow{{GaugeHP, 1}, {GaugeMP, 2}, {GaugeTP, 3}}
	case l.DisplayTP && l.Params.ATBCompatibility == 1:
		return []GaugeRow{{GaugeHP, 1}, {GaugeMP, 2}, {GaugeTP, 3}, {GaugeATB, 4}}
	case !l.DisplayTP && l.Params.ATBCompatibility == 0:
		return []GaugeRow{{GaugeHP, 2}, {GaugeMP, 3}}
	case !l.DisplayTP && l.Params.ATBCompatibility == 1:
		return []GaugeRow{{GaugeHP, 1}, {GaugeMP, 2}, {GaugeATB, 3}}
	default:
		return nil
	}
}

// ActorPlacement 计算第 index 个槽位中各元素的位置
func (l Layout) ActorPlacement(index int) ActorPlacement {
	basic := l.BasicAreaRect(index)
	gauge := l.GaugeAreaRect(index)

	p := ActorPlacement{
		Face:  image.Rect(basic.Min.X, basic.Min.Y, basic.Min.X+faceDrawWidth, basic.Min.Y+faceDrawHeight),
		Name:  image.Rect(basic.Min.X, basic.Min.Y, basic.Min.X+nameWidth, basic.Min.Y+l.LineHeight),
		Icons: rect(basic.Min.X+iconsOffsetX, basic.Min.Y, basic.Max.X, basic.Min.Y+l.LineHeight),
	}
	for _, row := range l.GaugeRows() {
		p.Gauges = append(p.Gauges, GaugePlacement{
			Kind:  row.Kind,
			X:     gauge.Min.X + gaugeOffsetX,
			Y:     gauge.Min.Y + l.LineHeight*row.Row,
			Width: gaugeWidth,
		})
	}
	return p
}

// GaugeFillWidth 槽的填充宽度 floor(width * rate)
func GaugeFillWidth(width int, rate float64) int {
	if rate <= 0 {
		return 0
	}
	if rate >= 1 {
		return width
	}
	return int(float64(width) * rate)
}
