package game

// Actor 角色数据（战斗状态窗口使用的最小集合）
type Actor struct {
	ID        int     `yaml:"id"`
	Name      string  `yaml:"name"`
	FaceName  string  `yaml:"faceName"`  // 头像图片名
	FaceIndex int     `yaml:"faceIndex"` // 头像图片中的索引（4列x2行）
	HP        int     `yaml:"hp"`
	MHP       int     `yaml:"mhp"`
	MP        int     `yaml:"mp"`
	MMP       int     `yaml:"mmp"`
	TP        int     `yaml:"tp"`
	ATB       float64 `yaml:"atb"`   // ATB 槽进度 0.0 ~ 1.0
	Icons     []int   `yaml:"icons"` // 状态图标索引
}

// MaxTP TP 上限
const MaxTP = 100

// HPRate HP 比例，最大值为 0 时返回 0
func (a *Actor) HPRate() float64 {
	return rate(a.HP, a.MHP)
}

// MPRate MP 比例，最大值为 0 时返回 0
func (a *Actor) MPRate() float64 {
	return rate(a.MP, a.MMP)
}

// TPRate TP 比例
func (a *Actor) TPRate() float64 {
	return rate(a.TP, MaxTP)
}

// ATBRate ATB 槽比例，限制在 0.0 ~ 1.0
func (a *Actor) ATBRate() float64 {
	return clamp01(a.ATB)
}

// IsDying HP 低于 1/4 视为濒死（用于数值颜色）
func (a *Actor) IsDying() bool {
	return a.MHP > 0 && a.HP > 0 && a.HP*4 < a.MHP
}

// IsDead HP 为 0
func (a *Actor) IsDead() bool {
	return a.HP <= 0
}

func rate(value, max int) float64 {
	if max <= 0 {
		return 0
	}
	return clamp01(float64(value) / float64(max))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Party 队伍
type Party struct {
	members       []*Actor
	maxBattleSize int
}

// DefaultMaxBattleMembers 同时参战的最大人数
const DefaultMaxBattleMembers = 4

// NewParty 创建队伍
func NewParty(members []*Actor) *Party {
	return &Party{
		members:       members,
		maxBattleSize: DefaultMaxBattleMembers,
	}
}

// SetMaxBattleMembers 设置参战人数上限（状态窗口的角色槽位数）
func (p *Party) SetMaxBattleMembers(n int) {
	if n < 1 {
		n = 1
	}
	p.maxBattleSize = n
}

// Members 全部成员
func (p *Party) Members() []*Actor {
	return p.members
}

// BattleMembers 参战成员（前 maxBattleSize 人）
func (p *Party) BattleMembers() []*Actor {
	if len(p.members) <= p.maxBattleSize {
		return p.members
	}
	return p.members[:p.maxBattleSize]
}

// Member 返回第 index 个成员（0-based），越界返回 nil
func (p *Party) Member(index int) *Actor {
	if index < 0 || index >= len(p.members) {
		return nil
	}
	return p.members[index]
}

// ActorByID 按角色ID查找，找不到返回 nil
func (p *Party) ActorByID(id int) *Actor {
	for _, a := range p.members {
		if a != nil && a.ID == id {
			return a
		}
	}
	return nil
}
