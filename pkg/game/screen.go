package game

import (
	"sort"

	"github.com/decker502/picanim/internal/logger"
	"github.com/decker502/picanim/pkg/components"
	"github.com/decker502/picanim/pkg/ecs"
	"github.com/decker502/picanim/pkg/systems"
)

// DefaultMaxPictures 每个场景可用的图片编号数量（1..100）
const DefaultMaxPictures = 100

// Screen 屏幕状态：管理图片编号与实体之间的对应关系
//
// 职责：
//   - 显示/擦除图片，并在图片生命周期内维护其实体
//   - 暂存下一次"显示图片"要绑定的动画配置（一次性）
//   - 战斗中图片编号加上 MaxPictures 偏移，与地图图片互不干扰
type Screen struct {
	entityManager *ecs.EntityManager
	maxPictures   int
	inBattle      bool

	pictures map[int]ecs.EntityID // 实际图片编号 -> 实体

	// 暂存的动画配置，nil 表示没有待绑定的配置
	pendingAnimation *components.CellAnimationConfig
}

// NewScreen 创建屏幕状态
func NewScreen(em *ecs.EntityManager) *Screen {
	return &Screen{
		entityManager: em,
		maxPictures:   DefaultMaxPictures,
		pictures:      make(map[int]ecs.EntityID),
	}
}

// EntityManager 返回图片实体所在的 EntityManager
func (s *Screen) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// MaxPictures 返回可用的图片编号数量
func (s *Screen) MaxPictures() int {
	return s.maxPictures
}

// SetInBattle 切换战斗状态，影响 RealPictureID 的计算
func (s *Screen) SetInBattle(inBattle bool) {
	s.inBattle = inBattle
}

// InBattle 是否处于战斗中
func (s *Screen) InBattle() bool {
	return s.inBattle
}

// RealPictureID 把脚本中的图片编号转换为实际编号
func (s *Screen) RealPictureID(pictureID int) int {
	if s.inBattle {
		return pictureID + s.maxPictures
	}
	return pictureID
}

// validPictureID 检查脚本中的图片编号是否在 1..MaxPictures 范围内
func (s *Screen) validPictureID(pictureID int) bool {
	return pictureID >= 1 && pictureID <= s.maxPictures
}

// StagePictureAnimation 暂存动画配置，供下一次 ShowPicture 使用
// cellCount < 1 时忽略
func (s *Screen) StagePictureAnimation(cellCount, frameInterval int, layout components.CellLayout, fadeDuration int) {
	if cellCount < 1 {
		return
	}
	s.pendingAnimation = &components.CellAnimationConfig{
		CellCount:     cellCount,
		FrameInterval: frameInterval,
		Layout:        layout,
		FadeDuration:  fadeDuration,
	}
}

// ClearPictureAnimation 清除暂存的动画配置
func (s *Screen) ClearPictureAnimation() {
	s.pendingAnimation = nil
}

// PendingAnimation 返回暂存的动画配置（可能为 nil）
func (s *Screen) PendingAnimation() *components.CellAnimationConfig {
	return s.pendingAnimation
}

// ShowPicture 显示图片
//
// 同编号已有图片时先整体替换（旧实体和旧动画状态一起丢弃）。
// 如果之前暂存了单元格数大于 1 的动画配置，则绑定到新图片并清除暂存。
func (s *Screen) ShowPicture(pictureID int, name string, origin components.PictureOrigin,
	x, y, scaleX, scaleY, opacity float64, blendMode components.PictureBlendMode) {
	if !s.validPictureID(pictureID) {
		logger.Sugar.Debugf("[Screen] 图片编号超出范围，忽略: %d", pictureID)
		return
	}
	realID := s.RealPictureID(pictureID)
	s.erase(realID)

	id := s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, id, &components.PictureComponent{
		ID:        realID,
		Name:      name,
		Origin:    origin,
		X:         x,
		Y:         y,
		ScaleX:    scaleX,
		ScaleY:    scaleY,
		Opacity:   opacity,
		BlendMode: blendMode,
	})
	s.pictures[realID] = id

	if s.pendingAnimation == nil {
		return
	}
	if s.pendingAnimation.CellCount > 1 {
		ecs.AddComponent(s.entityManager, id, systems.NewCellAnimation(*s.pendingAnimation))
		logger.Sugar.Debugf("[Screen] 图片 %d 绑定动画: 单元格=%d 间隔=%d 排列=%s 淡入淡出=%d",
			realID, s.pendingAnimation.CellCount, s.pendingAnimation.FrameInterval,
			s.pendingAnimation.Layout, s.pendingAnimation.FadeDuration)
	}
	s.ClearPictureAnimation()
}

// ErasePicture 擦除图片，同时丢弃其动画状态
func (s *Screen) ErasePicture(pictureID int) {
	if !s.validPictureID(pictureID) {
		return
	}
	s.erase(s.RealPictureID(pictureID))
}

func (s *Screen) erase(realID int) {
	if id, ok := s.pictures[realID]; ok {
		s.entityManager.DestroyEntityNow(id)
		delete(s.pictures, realID)
	}
}

// Picture 返回脚本编号对应的图片实体
// 编号超出范围或图片不存在时返回 false
func (s *Screen) Picture(pictureID int) (ecs.EntityID, bool) {
	if !s.validPictureID(pictureID) {
		return 0, false
	}
	id, ok := s.pictures[s.RealPictureID(pictureID)]
	return id, ok
}

// PictureAnimation 返回脚本编号对应图片的动画组件
// 图片不存在或没有绑定动画时返回 nil
func (s *Screen) PictureAnimation(pictureID int) *components.CellAnimationComponent {
	id, ok := s.Picture(pictureID)
	if !ok {
		return nil
	}
	anim, ok := ecs.GetComponent[*components.CellAnimationComponent](s.entityManager, id)
	if !ok {
		return nil
	}
	return anim
}

// PictureIDs 返回当前显示中的实际图片编号（升序）
func (s *Screen) PictureIDs() []int {
	ids := make([]int, 0, len(s.pictures))
	for realID := range s.pictures {
		ids = append(ids, realID)
	}
	sort.Ints(ids)
	return ids
}

// restorePicture 按存档数据恢复图片，动画组件原样挂回
func (s *Screen) restorePicture(pic components.PictureComponent, anim *components.CellAnimationComponent) {
	s.erase(pic.ID)
	id := s.entityManager.CreateEntity()
	picCopy := pic
	ecs.AddComponent(s.entityManager, id, &picCopy)
	if anim != nil {
		ecs.AddComponent(s.entityManager, id, anim)
	}
	s.pictures[pic.ID] = id
}

// Clear 擦除所有图片（场景切换、读档前使用）
func (s *Screen) Clear() {
	for realID := range s.pictures {
		s.erase(realID)
	}
	s.pendingAnimation = nil
}
