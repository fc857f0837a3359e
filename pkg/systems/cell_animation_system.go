package systems

import (
	"github.com/decker502/picanim/internal/logger"
	"github.com/decker502/picanim/pkg/components"
	"github.com/decker502/picanim/pkg/ecs"
)

// CellAnimationSystem 每个 tick 推进所有图片的单元格动画
//
// 推进规则（每帧）：
//  1. 正在淡入淡出(FadeCounter > 0)时只递减 FadeCounter，不推进帧计数
//  2. 否则若正在播放，FrameCounter 按 FrameInterval 取模递增，回到 0 时前进一个单元格
//  3. 非循环播放时，可见单元格回到 0 即停止
type CellAnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewCellAnimationSystem 创建单元格动画系统
func NewCellAnimationSystem(em *ecs.EntityManager) *CellAnimationSystem {
	return &CellAnimationSystem{
		entityManager: em,
	}
}

// Update 推进所有带 CellAnimationComponent 的实体，每个引擎 tick 调用一次
func (s *CellAnimationSystem) Update() {
	entities := ecs.GetEntitiesWith1[*components.CellAnimationComponent](s.entityManager)
	for _, id := range entities {
		anim, ok := ecs.GetComponent[*components.CellAnimationComponent](s.entityManager, id)
		if !ok {
			continue
		}
		wasRunning := anim.Running
		TickCellAnimation(anim)
		if wasRunning && !anim.Running {
			logger.Sugar.Debugf("[CellAnimationSystem] 动画一周结束，停止播放 (实体ID: %d)", id)
		}
	}
}

// NewCellAnimation 创建绑定了配置的动画组件，所有计数器归零、未播放
func NewCellAnimation(config components.CellAnimationConfig) *components.CellAnimationComponent {
	return &components.CellAnimationComponent{
		Config:        config,
		CellIndex:     0,
		FrameCounter:  0,
		FadeCounter:   0,
		PrevCellIndex: 0,
		Type:          components.CellAnimationLoop,
		Running:       false,
		Repeat:        false,
	}
}

// StartCellAnimation 开始播放
// 不重置当前单元格，从当前位置继续
func StartCellAnimation(anim *components.CellAnimationComponent, animType components.CellAnimationType, repeat bool) {
	if anim == nil {
		return
	}
	anim.Type = animType
	anim.Running = true
	anim.Repeat = repeat
}

// StopCellAnimation 停止播放
//
// force=true 立即停在当前单元格；
// force=false 只取消循环，动画播完当前一周、可见单元格回到 0 时自动停止。
func StopCellAnimation(anim *components.CellAnimationComponent, force bool) {
	if anim == nil {
		return
	}
	anim.Repeat = false
	if force {
		anim.Running = false
	}
}

// TickCellAnimation 推进一个 tick
func TickCellAnimation(anim *components.CellAnimationComponent) {
	if anim == nil {
		return
	}
	if IsFading(anim) {
		anim.FadeCounter--
		return
	}
	if !anim.Running {
		return
	}

	interval := anim.Config.FrameInterval
	if interval < 1 {
		interval = 1
	}
	anim.FrameCounter = (anim.FrameCounter + 1) % interval
	if anim.FrameCounter == 0 {
		AdvanceCell(anim)
		if VisibleCell(anim) == 0 && !anim.Repeat {
			anim.Running = false
		}
	}
}

// IsFading 是否处于交叉淡入淡出中
func IsFading(anim *components.CellAnimationComponent) bool {
	return anim != nil && anim.FadeCounter > 0
}

// cellPeriod 返回内部计数的周期
// Loop: CellCount；PingPong: 2*(CellCount-1)，CellCount=1 时退化为 1
func cellPeriod(anim *components.CellAnimationComponent) int {
	period := anim.Config.CellCount
	if anim.Type == components.CellAnimationPingPong {
		period = (anim.Config.CellCount - 1) * 2
	}
	if period < 1 {
		period = 1
	}
	return period
}

// SetCell 直接设置单元格
//
// raw 按周期取模；内部计数发生变化时记录变化前的可见单元格并重新开始淡入淡出。
// 设置为相同的值不会重新触发淡入淡出。
func SetCell(anim *components.CellAnimationComponent, raw int) {
	if anim == nil {
		return
	}
	period := cellPeriod(anim)
	next := raw % period
	if next < 0 {
		next += period
	}
	if next != anim.CellIndex {
		anim.PrevCellIndex = VisibleCell(anim)
		anim.FadeCounter = anim.Config.FadeDuration
	}
	anim.CellIndex = next
}

// AdvanceCell 前进一个单元格
func AdvanceCell(anim *components.CellAnimationComponent) {
	if anim == nil {
		return
	}
	SetCell(anim, anim.CellIndex+1)
}

// VisibleCell 返回当前应显示的单元格
//
// PingPong 模式下把内部计数按 (n-1) 反射：
// n=4 时内部 0,1,2,3,4,5 对应可见 0,1,2,3,2,1。
func VisibleCell(anim *components.CellAnimationComponent) int {
	if anim == nil {
		return 0
	}
	if anim.Type == components.CellAnimationPingPong {
		last := anim.Config.CellCount - 1
		diff := anim.CellIndex - last
		if diff < 0 {
			diff = -diff
		}
		return last - diff
	}
	return anim.CellIndex
}

// FadeBlendOpacity 返回淡出中的上一个单元格（覆盖层）的不透明度
// 从 baseOpacity 线性衰减到 0
func FadeBlendOpacity(anim *components.CellAnimationComponent, baseOpacity float64) float64 {
	if anim == nil || anim.Config.FadeDuration == 0 {
		return 0
	}
	return baseOpacity * float64(anim.FadeCounter) / float64(anim.Config.FadeDuration)
}
