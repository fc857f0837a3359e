package portraits

import (
	"image"
	"image/color"
	"strconv"

	"github.com/decker502/picanim/internal/logger"
	"github.com/decker502/picanim/pkg/config"
	"github.com/decker502/picanim/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// IconSetName 状态图标集的系统图片名
const IconSetName = "IconSet"

// ImageSource 头像与系统图片的来源
type ImageSource interface {
	LoadFace(name string) (*ebiten.Image, error)
	LoadSystem(name string) (*ebiten.Image, error)
}

// StatusWindow 战斗状态窗口
//
// 每次 Draw 都按当前队伍重新绘制，窗口本身除了参数和图片缓存外没有状态。
type StatusWindow struct {
	layout Layout
	images ImageSource
	face   text.Face

	// 加载失败的图片只记录一次日志
	missing map[string]bool
}

// NewStatusWindow 创建战斗状态窗口，images 可为 nil（不绘制头像和图标）
func NewStatusWindow(layout Layout, images ImageSource) *StatusWindow {
	return &StatusWindow{
		layout:  layout,
		images:  images,
		face:    text.NewGoXFace(basicfont.Face7x13),
		missing: make(map[string]bool),
	}
}

// Layout 返回窗口布局
func (w *StatusWindow) Layout() Layout {
	return w.layout
}

// SetFace 替换文字字体
func (w *StatusWindow) SetFace(face text.Face) {
	if face != nil {
		w.face = face
	}
}

// Draw 绘制窗口和每个参战角色
// 槽位超出队伍人数或角色为 nil 时跳过
func (w *StatusWindow) Draw(screen *ebiten.Image, members []*game.Actor) {
	win := w.layout.WindowRect()
	vector.DrawFilledRect(screen, float32(win.Min.X), float32(win.Min.Y), float32(win.Dx()), float32(win.Dy()), windowBack, false)
	vector.StrokeRect(screen, float32(win.Min.X)+1, float32(win.Min.Y)+1, float32(win.Dx())-2, float32(win.Dy())-2, 2, windowFrame, false)

	origin := win.Min.Add(image.Pt(w.layout.Padding, w.layout.Padding))
	for index := 0; index < w.layout.MaxCols(); index++ {
		if index >= len(members) || members[index] == nil {
			continue
		}
		w.drawItem(screen, origin, index, members[index])
	}
}

func (w *StatusWindow) drawItem(screen *ebiten.Image, origin image.Point, index int, actor *game.Actor) {
	p := w.layout.ActorPlacement(index)

	face := p.Face.Add(origin)
	w.drawFace(screen, actor.FaceName, actor.FaceIndex, face.Min.X, face.Min.Y, face.Dx(), face.Dy())

	name := p.Name.Add(origin)
	w.drawText(screen, actor.Name, float64(name.Min.X), float64(name.Min.Y), nameColor(actor), text.AlignStart)

	icons := p.Icons.Add(origin)
	w.drawIcons(screen, actor.Icons, icons.Min.X, icons.Min.Y, icons.Dx())

	for _, g := range p.Gauges {
		x, y := origin.X+g.X, origin.Y+g.Y
		w.drawGauge(screen, g.Kind, actor, x, y, g.Width)
	}
}

// drawFace 在 (x, y) 绘制 width x height 的头像，源图片中居中裁剪
func (w *StatusWindow) drawFace(screen *ebiten.Image, faceName string, faceIndex, x, y, width, height int) {
	if faceName == "" || w.images == nil {
		return
	}
	img, err := w.images.LoadFace(faceName)
	if err != nil {
		w.reportMissing(faceName, err)
		return
	}

	src, dx, dy := FaceCrop(faceIndex, width, height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x+dx), float64(y+dy))
	screen.DrawImage(img.SubImage(src).(*ebiten.Image), op)
}

// FaceCrop 计算头像源矩形与绘制偏移
//
// 绘制区域比头像小时从中间裁剪，比头像大时居中放置。
func FaceCrop(faceIndex, width, height int) (src image.Rectangle, dx, dy int) {
	fx, fy, pw, ph := config.FaceSourceRect(faceIndex)
	sw, sh := min(width, pw), min(height, ph)
	dx = max(width-pw, 0) / 2
	dy = max(height-ph, 0) / 2
	sx := fx + (pw-sw)/2
	sy := fy + (ph-sh)/2
	return image.Rect(sx, sy, sx+sw, sy+sh), dx, dy
}

func (w *StatusWindow) drawIcons(screen *ebiten.Image, icons []int, x, y, width int) {
	if len(icons) == 0 || w.images == nil || width < config.IconSize {
		return
	}
	sheet, err := w.images.LoadSystem(IconSetName)
	if err != nil {
		w.reportMissing(IconSetName, err)
		return
	}
	n := min(len(icons), width/config.IconSize)
	for i := 0; i < n; i++ {
		sx, sy, sw, sh := config.IconSourceRect(icons[i])
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(x+i*config.IconSize), float64(y+2))
		screen.DrawImage(sheet.SubImage(image.Rect(sx, sy, sx+sw, sy+sh)).(*ebiten.Image), op)
	}
}

// drawGauge 绘制一条槽：背景、渐变填充、标签和数值
func (w *StatusWindow) drawGauge(screen *ebiten.Image, kind GaugeKind, actor *game.Actor, x, y, width int) {
	var rate float64
	switch kind {
	case GaugeHP:
		rate = actor.HPRate()
	case GaugeMP:
		rate = actor.MPRate()
	case GaugeTP:
		rate = actor.TPRate()
	case GaugeATB:
		rate = actor.ATBRate()
	}

	c1, c2 := GaugeColors(kind)
	gaugeY := y + w.layout.LineHeight - config.GaugeOffsetY
	vector.DrawFilledRect(screen, float32(x), float32(gaugeY), float32(width), config.GaugeHeight, gaugeBackColor, false)
	fillGradient(screen, x, gaugeY, GaugeFillWidth(width, rate), config.GaugeHeight, c1, c2)

	fx, fy := float64(x), float64(y)
	w.drawText(screen, kind.Label(), fx, fy, systemColor, text.AlignStart)

	switch kind {
	case GaugeHP:
		w.drawCurrentAndMax(screen, actor.HP, actor.MHP, fx, fy, float64(width), nameColor(actor))
	case GaugeMP:
		w.drawCurrentAndMax(screen, actor.MP, actor.MMP, fx, fy, float64(width), normalColor)
	case GaugeTP:
		w.drawText(screen, strconv.Itoa(actor.TP), fx+float64(width), fy, normalColor, text.AlignEnd)
	}
}

// fillGradient 水平渐变填充，逐列插值
func fillGradient(screen *ebiten.Image, x, y, width, height int, c1, c2 color.RGBA) {
	for i := 0; i < width; i++ {
		t := 0.0
		if width > 1 {
			t = float64(i) / float64(width-1)
		}
		vector.DrawFilledRect(screen, float32(x+i), float32(y), 1, float32(height), lerpColor(c1, c2, t), false)
	}
}

// drawCurrentAndMax 宽度足够时绘制 "当前/最大"，否则只绘制当前值
func (w *StatusWindow) drawCurrentAndMax(screen *ebiten.Image, current, maxValue int, x, y, width float64, currentColor color.Color) {
	labelWidth := text.Advance("HP", w.face)
	valueWidth := text.Advance("0000", w.face)
	slashWidth := text.Advance("/", w.face)

	pl := PlaceCurrentAndMax(x, width, labelWidth, valueWidth, slashWidth)
	w.drawText(screen, strconv.Itoa(current), pl.CurrentRight, y, currentColor, text.AlignEnd)
	if pl.ShowMax {
		w.drawText(screen, "/", pl.SlashX, y, normalColor, text.AlignStart)
		w.drawText(screen, strconv.Itoa(maxValue), pl.MaxRight, y, normalColor, text.AlignEnd)
	}
}

// ValuePlacement 数值的水平位置（Right 为右对齐的右边界）
type ValuePlacement struct {
	ShowMax      bool
	CurrentRight float64
	SlashX       float64
	MaxRight     float64
}

// PlaceCurrentAndMax 计算 "当前/最大" 的位置
func PlaceCurrentAndMax(x, width, labelWidth, valueWidth, slashWidth float64) ValuePlacement {
	x1 := x + width - valueWidth
	x2 := x1 - slashWidth
	x3 := x2 - valueWidth
	if x3 >= x+labelWidth {
		return ValuePlacement{
			ShowMax:      true,
			CurrentRight: x3 + valueWidth,
			SlashX:       x2,
			MaxRight:     x1 + valueWidth,
		}
	}
	return ValuePlacement{CurrentRight: x1 + valueWidth}
}

// drawText 在一行 (LineHeight 高) 内垂直居中绘制文字
func (w *StatusWindow) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y+float64(w.layout.LineHeight)/2)
	op.ColorScale.ScaleWithColor(clr)
	op.LayoutOptions.PrimaryAlign = align
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, w.face, op)
}

func (w *StatusWindow) reportMissing(name string, err error) {
	if w.missing[name] {
		return
	}
	w.missing[name] = true
	logger.Sugar.Warnf("[Portraits] 图片加载失败 %s: %v", name, err)
}

// nameColor 名字和 HP 数值的颜色：死亡红色，濒死黄色
func nameColor(actor *game.Actor) color.Color {
	switch {
	case actor.IsDead():
		return deathColor
	case actor.IsDying():
		return crisisColor
	default:
		return normalColor
	}
}
