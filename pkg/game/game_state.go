package game

import "github.com/decker502/picanim/pkg/ecs"

// DefaultCurrencyUnit 货币单位（文本转义 \G 使用）
const DefaultCurrencyUnit = "G"

// GameState 运行时的全局状态
//
// 与原先的单例不同，这里由 App 创建一份并显式传给场景和插件，
// 方便测试中各自持有独立的状态。
type GameState struct {
	Screen    *Screen
	Party     *Party
	Variables *Variables

	CurrencyUnit string
	// DisplayTP 是否在战斗状态窗口中显示 TP
	DisplayTP bool
	// BattleStatusVisible 战斗状态窗口是否显示（事件脚本控制）
	BattleStatusVisible bool

	entityManager *ecs.EntityManager
}

// NewGameState 创建空的运行时状态
func NewGameState() *GameState {
	em := ecs.NewEntityManager()
	return &GameState{
		Screen:        NewScreen(em),
		Party:         NewParty(nil),
		Variables:     NewVariables(),
		CurrencyUnit:  DefaultCurrencyUnit,
		DisplayTP:     true,
		entityManager: em,
	}
}

// EntityManager 返回全局 EntityManager
func (gs *GameState) EntityManager() *ecs.EntityManager {
	return gs.entityManager
}

// Variables 游戏变量（\V[n] 转义读取）
type Variables struct {
	values map[int]int
}

// NewVariables 创建变量表
func NewVariables() *Variables {
	return &Variables{values: make(map[int]int)}
}

// Value 读取变量，未设置时为 0
func (v *Variables) Value(id int) int {
	return v.values[id]
}

// SetValue 设置变量
func (v *Variables) SetValue(id, value int) {
	v.values[id] = value
}
