package config

// 布局配置常量
// 本文件定义了画面与窗口的布局参数，数值与常见 816x624 的 RPG 画面一致

// Screen Configuration (画面配置)
const (
	// ScreenWidth 逻辑画面宽度（像素）
	ScreenWidth = 816

	// ScreenHeight 逻辑画面高度（像素）
	ScreenHeight = 624
)

// Window Configuration (窗口配置)
const (
	// WindowLineHeight 窗口中一行文字的高度
	WindowLineHeight = 36

	// WindowPadding 窗口边框到内容区域的距离
	WindowPadding = 18

	// WindowTextPadding 项目矩形内左右两侧留白
	WindowTextPadding = 6

	// WindowItemSpacing 多列窗口中相邻两列的间距
	WindowItemSpacing = 12

	// WindowBackOpacity 窗口底色不透明度 (0-255)
	WindowBackOpacity = 192
)

// Face / Icon Configuration (头像与图标)
const (
	// FaceWidth 头像图片中单个头像的宽度，一张头像图为 4 列 x 2 行
	FaceWidth = 144

	// FaceHeight 单个头像的高度
	FaceHeight = 144

	// FaceColumns 头像图片的列数
	FaceColumns = 4

	// IconSize 状态图标边长
	IconSize = 32

	// IconSetColumns 图标集图片的列数
	IconSetColumns = 16
)

// Gauge Configuration (槽)
const (
	// GaugeHeight 槽的高度
	GaugeHeight = 16

	// GaugeOffsetY 槽相对于行底部的偏移：gaugeY = y + lineHeight - GaugeOffsetY
	GaugeOffsetY = 19

	// GaugeLabelWidth 槽标签 (HP/MP/TP/AT) 的宽度
	GaugeLabelWidth = 44

	// GaugeValueWidth TP 数值右对齐区域宽度
	GaugeValueWidth = 64
)

// FaceSourceRect 返回头像图片中第 index 个头像的源矩形 (x, y, w, h)
func FaceSourceRect(index int) (x, y, w, h int) {
	if index < 0 {
		index = 0
	}
	return (index % FaceColumns) * FaceWidth, (index / FaceColumns) * FaceHeight, FaceWidth, FaceHeight
}

// IconSourceRect 返回图标集中第 index 个图标的源矩形 (x, y, w, h)
func IconSourceRect(index int) (x, y, w, h int) {
	if index < 0 {
		index = 0
	}
	return (index % IconSetColumns) * IconSize, (index / IconSetColumns) * IconSize, IconSize, IconSize
}
