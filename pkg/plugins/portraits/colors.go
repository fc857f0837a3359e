package portraits

import (
	"image/color"
	"strconv"
	"strings"
)

// 槽的渐变色
const (
	HPGaugeColor1  = "#ff9933"
	HPGaugeColor2  = "#ffcc66"
	MPGaugeColor1  = "#3399ff"
	MPGaugeColor2  = "#66ccff"
	ATBGaugeColor1 = "#3399ff"
	ATBGaugeColor2 = "#66ccff"
	TPGaugeColor1  = "#ff7f40"
	TPGaugeColor2  = "#ffbf40"
)

var (
	gaugeBackColor = color.RGBA{R: 0x20, G: 0x20, B: 0x40, A: 0xff}
	systemColor    = color.RGBA{R: 0x84, G: 0xaa, B: 0xff, A: 0xff}
	normalColor    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	crisisColor    = color.RGBA{R: 0xff, G: 0xff, B: 0x40, A: 0xff}
	deathColor     = color.RGBA{R: 0xff, G: 0x20, B: 0x20, A: 0xff}
	windowBack     = color.RGBA{R: 0x00, G: 0x00, B: 0x20, A: 0xc0}
	windowFrame    = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}
)

// GaugeColors 返回槽的渐变起止色
func GaugeColors(kind GaugeKind) (color.RGBA, color.RGBA) {
	switch kind {
	case GaugeHP:
		return HexColor(HPGaugeColor1), HexColor(HPGaugeColor2)
	case GaugeMP:
		return HexColor(MPGaugeColor1), HexColor(MPGaugeColor2)
	case GaugeTP:
		return HexColor(TPGaugeColor1), HexColor(TPGaugeColor2)
	default:
		return HexColor(ATBGaugeColor1), HexColor(ATBGaugeColor2)
	}
}

// HexColor 解析 "#rrggbb"，格式错误返回不透明黑色
func HexColor(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.RGBA{A: 0xff}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// lerpColor 在 c1 和 c2 之间线性插值，t 取 0..1
func lerpColor(c1, c2 color.RGBA, t float64) color.RGBA {
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.RGBA{R: lerp(c1.R, c2.R), G: lerp(c1.G, c2.G), B: lerp(c1.B, c2.B), A: lerp(c1.A, c2.A)}
}
