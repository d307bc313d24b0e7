package gamification

import "testing"

func TestLevelForExperience(t *testing.T) {
	tests := []struct {
		experience int
		want       int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{299, 2},
		{300, 3},
		{600, 4},
		{999, 4},
		{1000, 5},
		{1500, 6},
		{2499, 6},
		{2500, 7},
		{99999, 7},
	}

	for _, tt := range tests {
		if got := LevelForExperience(tt.experience); got != tt.want {
			t.Errorf("LevelForExperience(%d) = %d, want %d", tt.experience, got, tt.want)
		}
	}
}

func TestExperienceForNextLevel(t *testing.T) {
	tests := []struct {
		experience int
		want       int
	}{
		{0, 100},
		{50, 50},
		{100, 200},
		{2500, 0}, // max level
	}

	for _, tt := range tests {
		if got := ExperienceForNextLevel(tt.experience); got != tt.want {
			t.Errorf("ExperienceForNextLevel(%d) = %d, want %d", tt.experience, got, tt.want)
		}
	}
}

func TestStreakMultiplierThresholds(t *testing.T) {
	tests := []struct {
		streak int
		want   float64
	}{
		{0, 1.0},
		{6, 1.0},
		{7, 1.2},
		{13, 1.2},
		{14, 1.4},
		{29, 1.4},
		{30, 1.6},
		{60, 1.8},
		{99, 1.8},
		{100, 2.0},
		{365, 2.0},
	}

	for _, tt := range tests {
		if got := StreakMultiplier(tt.streak); got != tt.want {
			t.Errorf("StreakMultiplier(%d) = %v, want %v", tt.streak, got, tt.want)
		}
	}
}

func TestApplyStreakMultiplier(t *testing.T) {
	if got := ApplyStreakMultiplier(10, 1.2); got != 12 {
		t.Errorf("got %d, want 12", got)
	}
	if got := ApplyStreakMultiplier(15, 1.4); got != 21 {
		t.Errorf("got %d, want 21", got)
	}
	if got := ApplyStreakMultiplier(5, 1.0); got != 5 {
		t.Errorf("got %d, want 5", got)
	}
}

func TestLevelInfoCatalog(t *testing.T) {
	if len(UserLevels) != 7 {
		t.Fatalf("expected 7 levels, got %d", len(UserLevels))
	}

	prev := -1
	for _, l := range UserLevels {
		if l.ExperienceRequired <= prev {
			t.Errorf("level %d threshold %d not increasing", l.Level, l.ExperienceRequired)
		}
		prev = l.ExperienceRequired
	}

	if LevelInfo(3).Title != "Mindful Student" {
		t.Errorf("unexpected level 3 title: %s", LevelInfo(3).Title)
	}
	if LevelInfo(99).Level != 1 {
		t.Error("out-of-range level should fall back to level 1")
	}
}

func TestBadgeCatalog(t *testing.T) {
	if len(Badges) != 17 {
		t.Fatalf("expected 17 badges, got %d", len(Badges))
	}

	seen := map[string]bool{}
	for _, b := range Badges {
		if seen[b.ID] {
			t.Errorf("duplicate badge id %s", b.ID)
		}
		seen[b.ID] = true
	}

	// Every achievement's badge reward must exist in the catalog.
	for _, a := range Achievements {
		if a.Reward.Type != "badge" {
			continue
		}
		if _, ok := badgeByID(a.Reward.Value); !ok {
			t.Errorf("achievement %s rewards unknown badge %s", a.ID, a.Reward.Value)
		}
	}
}
