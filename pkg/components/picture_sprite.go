package components

import "github.com/hajimehoshi/ebiten/v2"

// PictureSpriteComponent 图片的渲染侧缓存
//
// 由 PictureRenderSystem 在图片首次出现时填充：
//   - Base: "显示图片"指定的原始图片
//   - Cells: 连番排列时每个单元格一张图片（Cells[0] == Base）
//   - Ready: 所有需要的图片都已就绪，一旦为 true 不再重新检查
//
// LoadedName 用于检测同一实体上的图片名变化（重新加载）。
type PictureSpriteComponent struct {
	LoadedName string
	Base       *ebiten.Image
	Cells      []*ebiten.Image
	Ready      bool
	LoadFailed bool // 有单元格图片加载失败，图片永远不会就绪
}
