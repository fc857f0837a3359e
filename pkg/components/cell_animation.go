package components

// CellLayout 描述动画单元格(cell)在图片资源中的排列方式
type CellLayout int

const (
	// CellLayoutNone 未识别的排列方式，渲染时按整张图片显示
	CellLayoutNone CellLayout = iota
	// CellLayoutVertical 所有单元格纵向排列在一张图片中（从上到下）
	CellLayoutVertical
	// CellLayoutHorizontal 所有单元格横向排列在一张图片中（从左到右）
	CellLayoutHorizontal
	// CellLayoutSequential 每个单元格是一张独立的图片，文件名末尾两位为序号
	CellLayoutSequential
)

// String 返回排列方式的助记符
func (l CellLayout) String() string {
	switch l {
	case CellLayoutVertical:
		return "V"
	case CellLayoutHorizontal:
		return "H"
	case CellLayoutSequential:
		return "N"
	default:
		return ""
	}
}

// CellAnimationType 动画的播放方式
type CellAnimationType int

const (
	// CellAnimationLoop 类型1: 1→2→3→4→1→2→3→4...
	CellAnimationLoop CellAnimationType = 1
	// CellAnimationPingPong 类型2: 1→2→3→4→3→2→1→2...
	CellAnimationPingPong CellAnimationType = 2
)

// CellAnimationConfig 图片动画的静态配置
//
// 由"动画准备"命令暂存，在下一次"显示图片"时绑定到图片上（一次性）。
type CellAnimationConfig struct {
	CellCount     int        `yaml:"cellCount"`     // 单元格数量 (>=1)
	FrameInterval int        `yaml:"frameInterval"` // 每隔多少帧切换一次单元格 (>=1)
	Layout        CellLayout `yaml:"layout"`        // 单元格排列方式
	FadeDuration  int        `yaml:"fadeDuration"`  // 交叉淡入淡出所需帧数 (0 = 立即切换)
}

// CellAnimationComponent 图片单元格动画组件(纯数据)
//
// 状态机的全部操作在 systems 包中实现（SetCell / TickCellAnimation 等），
// 组件本身只保存计数器。
//
// 字段约束：
//   - CellIndex: Loop 模式下 0..CellCount-1；PingPong 模式下是 0..2*(CellCount-1)-1 的内部计数，
//     对外可见的单元格通过 VisibleCell 反射得到
//   - FrameCounter: 0..FrameInterval-1
//   - FadeCounter: 从 FadeDuration 递减到 0，0 表示没有在淡入淡出
//   - PrevCellIndex: 最近一次单元格变化前的可见单元格
type CellAnimationComponent struct {
	Config CellAnimationConfig `yaml:"config"`

	CellIndex     int               `yaml:"cellIndex"`
	FrameCounter  int               `yaml:"frameCounter"`
	FadeCounter   int               `yaml:"fadeCounter"`
	PrevCellIndex int               `yaml:"prevCellIndex"`
	Type          CellAnimationType `yaml:"type"`
	Running       bool              `yaml:"running"`
	Repeat        bool              `yaml:"repeat"`
}
