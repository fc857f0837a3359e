package game

import (
	"testing"

	"github.com/decker502/picanim/pkg/components"
	"github.com/decker502/picanim/pkg/ecs"
	"github.com/decker502/picanim/pkg/systems"
)

func newTestScreen() *Screen {
	return NewScreen(ecs.NewEntityManager())
}

func showDefault(s *Screen, id int, name string) {
	s.ShowPicture(id, name, components.OriginUpperLeft, 0, 0, 100, 100, 255, components.BlendNormal)
}

// TestScreen_StagedConfigIsOneShot 暂存的配置只绑定到下一张图片
func TestScreen_StagedConfigIsOneShot(t *testing.T) {
	s := newTestScreen()
	s.StagePictureAnimation(4, 10, components.CellLayoutVertical, 20)
	if s.PendingAnimation() == nil {
		t.Fatal("config should be staged")
	}

	showDefault(s, 1, "Door")
	anim := s.PictureAnimation(1)
	if anim == nil {
		t.Fatal("animation should be attached to picture 1")
	}
	if anim.Config.CellCount != 4 || anim.Config.FrameInterval != 10 || anim.Config.FadeDuration != 20 {
		t.Errorf("unexpected config %+v", anim.Config)
	}
	if anim.CellIndex != 0 || anim.FrameCounter != 0 || anim.FadeCounter != 0 || anim.Running {
		t.Errorf("new animation should start idle at cell 0, got %+v", anim)
	}
	if s.PendingAnimation() != nil {
		t.Error("staged config should be cleared after show")
	}

	showDefault(s, 2, "Other")
	if s.PictureAnimation(2) != nil {
		t.Error("second picture must not receive an animation")
	}
}

// TestScreen_SingleCellNotAttached 单元格数 <= 1 的配置不绑定，但仍被消费
func TestScreen_SingleCellNotAttached(t *testing.T) {
	s := newTestScreen()
	s.StagePictureAnimation(1, 10, components.CellLayoutVertical, 0)
	showDefault(s, 1, "Door")
	if s.PictureAnimation(1) != nil {
		t.Error("cellCount 1 should not attach an animation")
	}
	if s.PendingAnimation() != nil {
		t.Error("staged config should be cleared")
	}

	s.StagePictureAnimation(0, 10, components.CellLayoutVertical, 0)
	if s.PendingAnimation() != nil {
		t.Error("cellCount 0 should not be staged")
	}
}

// TestScreen_ReshowDiscardsState 重新显示或擦除图片会丢弃动画状态
func TestScreen_ReshowDiscardsState(t *testing.T) {
	s := newTestScreen()
	s.StagePictureAnimation(3, 1, components.CellLayoutHorizontal, 0)
	showDefault(s, 5, "Door")
	oldID, _ := s.Picture(5)
	systems.SetCell(s.PictureAnimation(5), 2)

	showDefault(s, 5, "Door")
	newID, ok := s.Picture(5)
	if !ok || newID == oldID {
		t.Error("re-show should create a new entity")
	}
	if s.EntityManager().Exists(oldID) {
		t.Error("old entity should be destroyed")
	}
	if s.PictureAnimation(5) != nil {
		t.Error("re-shown picture without staged config has no animation")
	}

	s.ErasePicture(5)
	if _, ok := s.Picture(5); ok {
		t.Error("picture should be erased")
	}
	if s.EntityManager().Exists(newID) {
		t.Error("erased entity should be destroyed")
	}
}

// TestScreen_BattleOffset 战斗中图片编号加上 MaxPictures
func TestScreen_BattleOffset(t *testing.T) {
	s := newTestScreen()
	showDefault(s, 1, "Map")

	s.SetInBattle(true)
	if got := s.RealPictureID(1); got != 101 {
		t.Errorf("RealPictureID in battle = %d, want 101", got)
	}
	showDefault(s, 1, "Battle")

	ids := s.PictureIDs()
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 101 {
		t.Errorf("expected map and battle pictures [1 101], got %v", ids)
	}

	id, _ := s.Picture(1)
	pic, _ := ecs.GetComponent[*components.PictureComponent](s.EntityManager(), id)
	if pic.Name != "Battle" {
		t.Errorf("in battle slot 1 should resolve to the battle picture, got %q", pic.Name)
	}

	s.SetInBattle(false)
	id, _ = s.Picture(1)
	pic, _ = ecs.GetComponent[*components.PictureComponent](s.EntityManager(), id)
	if pic.Name != "Map" {
		t.Errorf("outside battle slot 1 should resolve to the map picture, got %q", pic.Name)
	}
}

// TestScreen_OutOfRange 超出范围的编号什么也不做
func TestScreen_OutOfRange(t *testing.T) {
	s := newTestScreen()
	for _, id := range []int{0, -1, 101} {
		showDefault(s, id, "X")
		s.ErasePicture(id)
		if _, ok := s.Picture(id); ok {
			t.Errorf("slot %d should not exist", id)
		}
		if s.PictureAnimation(id) != nil {
			t.Errorf("slot %d should have no animation", id)
		}
	}
	if s.EntityManager().EntityCount() != 0 {
		t.Error("no entity should be created for out-of-range slots")
	}
}

// TestScreen_Clear 清空所有图片和暂存配置
func TestScreen_Clear(t *testing.T) {
	s := newTestScreen()
	showDefault(s, 1, "A")
	showDefault(s, 2, "B")
	s.StagePictureAnimation(2, 1, components.CellLayoutVertical, 0)

	s.Clear()
	if len(s.PictureIDs()) != 0 {
		t.Error("pictures should be cleared")
	}
	if s.PendingAnimation() != nil {
		t.Error("pending config should be cleared")
	}
}
