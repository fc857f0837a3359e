package game

import "testing"

// TestActorRates 测试比例计算与边界
func TestActorRates(t *testing.T) {
	a := &Actor{HP: 50, MHP: 200, MP: 0, MMP: 0, TP: 150, ATB: -0.5}

	if got := a.HPRate(); got != 0.25 {
		t.Errorf("HPRate = %v, want 0.25", got)
	}
	if got := a.MPRate(); got != 0 {
		t.Errorf("MPRate with zero max = %v, want 0", got)
	}
	if got := a.TPRate(); got != 1 {
		t.Errorf("TPRate should clamp to 1, got %v", got)
	}
	if got := a.ATBRate(); got != 0 {
		t.Errorf("ATBRate should clamp to 0, got %v", got)
	}
}

// TestActorDyingAndDead 测试濒死与死亡判定
func TestActorDyingAndDead(t *testing.T) {
	tests := []struct {
		hp, mhp     int
		dying, dead bool
	}{
		{100, 100, false, false},
		{24, 100, true, false},
		{25, 100, false, false},
		{0, 100, false, true},
	}
	for _, tt := range tests {
		a := &Actor{HP: tt.hp, MHP: tt.mhp}
		if a.IsDying() != tt.dying || a.IsDead() != tt.dead {
			t.Errorf("hp=%d/%d: dying=%v dead=%v", tt.hp, tt.mhp, a.IsDying(), a.IsDead())
		}
	}
}

// TestPartyBattleMembers 测试参战成员截取与查找
func TestPartyBattleMembers(t *testing.T) {
	p := NewParty([]*Actor{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}})

	if len(p.BattleMembers()) != 3 {
		t.Errorf("expected 3 battle members")
	}
	p.SetMaxBattleMembers(2)
	if got := p.BattleMembers(); len(got) != 2 || got[1].Name != "B" {
		t.Errorf("expected first two members, got %v", got)
	}
	p.SetMaxBattleMembers(0)
	if len(p.BattleMembers()) != 1 {
		t.Error("max battle members should be at least 1")
	}

	if p.Member(5) != nil || p.Member(-1) != nil {
		t.Error("out-of-range member should be nil")
	}
	if a := p.ActorByID(3); a == nil || a.Name != "C" {
		t.Error("ActorByID(3) should find C")
	}
	if p.ActorByID(9) != nil {
		t.Error("unknown actor id should be nil")
	}
}
