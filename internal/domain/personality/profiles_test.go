package personality

import "testing"

func TestMatchProfiles(t *testing.T) {
	p := NewPersonality()
	if got := MatchProfiles(p); len(got) != 0 {
		t.Fatalf("expected no profiles for a fresh pet, got %+v", got)
	}

	p.Curiosity = 75
	p.Persistence = 65
	p.SelfRegulation = 72
	p.Sociability = 40
	got := MatchProfiles(p)
	if len(got) != 2 || got[0].ID != "curious_nerd" || got[1].ID != "calm_observer" {
		t.Fatalf("unexpected profiles: %+v", got)
	}
	primary, ok := PrimaryProfile(p)
	if !ok || primary.ID != "curious_nerd" {
		t.Fatalf("unexpected primary profile: %+v", primary)
	}
}

func TestMatchProfiles_MaximumBound(t *testing.T) {
	p := NewPersonality()
	p.Imagination = 80
	p.Sociability = 65
	p.SelfRegulation = 55
	got := MatchProfiles(p)
	if len(got) != 1 || got[0].ID != "playful_creative" {
		t.Fatalf("expected playful_creative at the inclusive bound, got %+v", got)
	}

	p.SelfRegulation = 56
	if got := MatchProfiles(p); len(got) != 0 {
		t.Fatalf("expected no match past the maximum, got %+v", got)
	}
}
