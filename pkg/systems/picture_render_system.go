package systems

import (
	"fmt"
	"image"
	"sort"

	"github.com/decker502/picanim/internal/logger"
	"github.com/decker502/picanim/pkg/components"
	"github.com/decker502/picanim/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImageLoader 按图片名加载图片（不含目录和扩展名）
// game.ResourceManager 实现此接口
type ImageLoader interface {
	LoadPicture(name string) (*ebiten.Image, error)
}

// PictureLayer 单个绘制层的计划
//
// 图片绘制分为两层：
//   - 主层：当前可见单元格，使用图片本身的不透明度
//   - 覆盖层：淡入淡出中的上一个单元格，叠在主层之上，不透明度由 FadeBlendOpacity 决定
type PictureLayer struct {
	Image   *ebiten.Image
	Source  image.Rectangle
	Opacity float64 // 0-255
}

// PictureRenderSystem 图片渲染适配器
//
// Update 负责为新显示的图片加载位图并判断就绪状态；
// Draw 根据动画状态选择源矩形（或连番图片）并按两层合成绘制。
type PictureRenderSystem struct {
	entityManager *ecs.EntityManager
	loader        ImageLoader
}

// NewPictureRenderSystem 创建图片渲染系统
func NewPictureRenderSystem(em *ecs.EntityManager, loader ImageLoader) *PictureRenderSystem {
	return &PictureRenderSystem{
		entityManager: em,
		loader:        loader,
	}
}

// SequentialCellName 连番模式下第 index 个单元格的文件名
// 用两位补零的序号替换原文件名的最后两个字符: "Door00" -> "Door01"
func SequentialCellName(base string, index int) string {
	runes := []rune(base)
	if len(runes) >= 2 {
		runes = runes[:len(runes)-2]
	} else {
		runes = runes[:0]
	}
	return fmt.Sprintf("%s%02d", string(runes), index)
}

// CellSourceRect 计算单元格在图片中的源矩形
//
//   - Vertical: 高度均分为 cellCount 份，y = cell * (h / cellCount)
//   - Horizontal: 宽度均分为 cellCount 份，x = cell * (w / cellCount)
//   - 其他（连番 / 未识别）: 整张图片
func CellSourceRect(layout components.CellLayout, cellCount, cell, width, height int) image.Rectangle {
	if cellCount <= 1 {
		return image.Rect(0, 0, width, height)
	}
	switch layout {
	case components.CellLayoutVertical:
		cellH := height / cellCount
		y := cell * cellH
		return image.Rect(0, y, width, y+cellH)
	case components.CellLayoutHorizontal:
		cellW := width / cellCount
		x := cell * cellW
		return image.Rect(x, 0, x+cellW, height)
	default:
		return image.Rect(0, 0, width, height)
	}
}

// Update 为所有图片准备位图
func (s *PictureRenderSystem) Update() {
	entities := ecs.GetEntitiesWith1[*components.PictureComponent](s.entityManager)
	for _, id := range entities {
		pic, _ := ecs.GetComponent[*components.PictureComponent](s.entityManager, id)
		sprite, ok := ecs.GetComponent[*components.PictureSpriteComponent](s.entityManager, id)
		if !ok {
			sprite = &components.PictureSpriteComponent{}
			ecs.AddComponent(s.entityManager, id, sprite)
		}
		if sprite.LoadedName != pic.Name {
			anim, _ := ecs.GetComponent[*components.CellAnimationComponent](s.entityManager, id)
			s.loadBitmaps(pic, anim, sprite)
		}
		s.updateReady(sprite, id)
	}
}

// loadBitmaps 加载图片本体，连番模式下同时加载其余单元格
func (s *PictureRenderSystem) loadBitmaps(pic *components.PictureComponent, anim *components.CellAnimationComponent, sprite *components.PictureSpriteComponent) {
	sprite.LoadedName = pic.Name
	sprite.Base = nil
	sprite.Cells = nil
	sprite.Ready = false
	sprite.LoadFailed = false

	if s.loader == nil || pic.Name == "" {
		return
	}

	base, err := s.loader.LoadPicture(pic.Name)
	if err != nil {
		logger.Sugar.Warnf("[PictureRenderSystem] 图片加载失败 (图片编号: %d): %v", pic.ID, err)
		sprite.LoadFailed = true
		return
	}
	sprite.Base = base

	if anim == nil || anim.Config.Layout != components.CellLayoutSequential || anim.Config.CellCount <= 1 {
		return
	}

	sprite.Cells = make([]*ebiten.Image, anim.Config.CellCount)
	sprite.Cells[0] = base
	for i := 1; i < anim.Config.CellCount; i++ {
		name := SequentialCellName(pic.Name, i)
		img, err := s.loader.LoadPicture(name)
		if err != nil {
			// 缺失的单元格让图片永远处于未就绪状态
			logger.Sugar.Warnf("[PictureRenderSystem] 连番单元格缺失 (图片编号: %d, 文件: %s): %v", pic.ID, name, err)
			sprite.LoadFailed = true
			continue
		}
		sprite.Cells[i] = img
	}
}

// updateReady 检查位图是否全部就绪，结果一旦为 true 即锁定
func (s *PictureRenderSystem) updateReady(sprite *components.PictureSpriteComponent, id ecs.EntityID) {
	if sprite.Ready {
		return
	}
	if sprite.Base == nil {
		return
	}
	for _, cell := range sprite.Cells {
		if cell == nil {
			return
		}
	}
	sprite.Ready = true
	logger.Sugar.Debugf("[PictureRenderSystem] 图片就绪 (实体ID: %d, 单元格图片: %d)", id, len(sprite.Cells))
}

// cellLayer 返回某个单元格对应的图片和源矩形
func cellLayer(anim *components.CellAnimationComponent, sprite *components.PictureSpriteComponent, cell int) (*ebiten.Image, image.Rectangle) {
	if anim == nil || anim.Config.CellCount <= 1 {
		b := sprite.Base.Bounds()
		return sprite.Base, image.Rect(0, 0, b.Dx(), b.Dy())
	}
	if anim.Config.Layout == components.CellLayoutSequential {
		if cell < 0 || cell >= len(sprite.Cells) || sprite.Cells[cell] == nil {
			b := sprite.Base.Bounds()
			return sprite.Base, image.Rect(0, 0, b.Dx(), b.Dy())
		}
		b := sprite.Cells[cell].Bounds()
		return sprite.Cells[cell], image.Rect(0, 0, b.Dx(), b.Dy())
	}
	b := sprite.Base.Bounds()
	return sprite.Base, CellSourceRect(anim.Config.Layout, anim.Config.CellCount, cell, b.Dx(), b.Dy())
}

// PlanPictureLayers 计算一张图片本帧需要绘制的层（纯函数）
//
// 未就绪的图片不绘制；不在淡入淡出时只有主层。
func PlanPictureLayers(pic *components.PictureComponent, anim *components.CellAnimationComponent, sprite *components.PictureSpriteComponent) []PictureLayer {
	if pic == nil || sprite == nil || !sprite.Ready || sprite.Base == nil {
		return nil
	}

	img, src := cellLayer(anim, sprite, VisibleCell(anim))
	layers := []PictureLayer{{Image: img, Source: src, Opacity: pic.Opacity}}

	if IsFading(anim) {
		prevImg, prevSrc := cellLayer(anim, sprite, anim.PrevCellIndex)
		layers = append(layers, PictureLayer{
			Image:   prevImg,
			Source:  prevSrc,
			Opacity: FadeBlendOpacity(anim, pic.Opacity),
		})
	}
	return layers
}

// Draw 按图片编号顺序绘制所有图片
func (s *PictureRenderSystem) Draw(screen *ebiten.Image) {
	entities := ecs.GetEntitiesWith2[*components.PictureComponent, *components.PictureSpriteComponent](s.entityManager)

	type drawItem struct {
		pic    *components.PictureComponent
		layers []PictureLayer
	}
	items := make([]drawItem, 0, len(entities))
	for _, id := range entities {
		pic, _ := ecs.GetComponent[*components.PictureComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.PictureSpriteComponent](s.entityManager, id)
		anim, _ := ecs.GetComponent[*components.CellAnimationComponent](s.entityManager, id)
		layers := PlanPictureLayers(pic, anim, sprite)
		if len(layers) == 0 {
			continue
		}
		items = append(items, drawItem{pic: pic, layers: layers})
	}

	// 编号大的图片在上层
	sort.SliceStable(items, func(i, j int) bool { return items[i].pic.ID < items[j].pic.ID })

	for _, item := range items {
		for _, layer := range item.layers {
			drawPictureLayer(screen, item.pic, layer)
		}
	}
}

// drawPictureLayer 按图片的锚点、缩放、位置绘制一个层
func drawPictureLayer(screen *ebiten.Image, pic *components.PictureComponent, layer PictureLayer) {
	if layer.Opacity <= 0 || layer.Source.Empty() {
		return
	}

	b := layer.Image.Bounds()
	src := layer.Source.Add(b.Min)
	sub := layer.Image.SubImage(src).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	if pic.Origin == components.OriginCenter {
		op.GeoM.Translate(-float64(src.Dx())/2, -float64(src.Dy())/2)
	}
	op.GeoM.Scale(pic.ScaleX/100, pic.ScaleY/100)
	op.GeoM.Translate(pic.X, pic.Y)
	op.ColorScale.ScaleAlpha(float32(layer.Opacity / 255))
	if pic.BlendMode == components.BlendAdditive {
		op.Blend = ebiten.BlendLighter
	}
	screen.DrawImage(sub, op)
}
