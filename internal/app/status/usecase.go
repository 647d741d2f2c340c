package status

import (
	"context"
	"strings"
	"time"

	"lovepet/internal/app/care"
	"lovepet/internal/app/petstate"
	"lovepet/internal/app/ports"
	"lovepet/internal/domain/growth"
	"lovepet/internal/domain/personality"
)

// UseCase reads the pet without writing. Elapsed time is projected onto the
// snapshot so the page is current, but nothing is saved.
type UseCase struct {
	States petstate.Repository
	Engine care.Engine
	Now    func() time.Time
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	petID := strings.TrimSpace(req.PetID)
	if petID == "" {
		return Response{}, ports.ErrInvalidRequest
	}
	now := time.Now()
	if u.Now != nil {
		now = u.Now()
	}

	snap := u.States.Load(ctx, petID, now)
	snap, _ = u.Engine.Advance(snap, now)
	table := u.Engine.Table()

	resp := Response{
		PetID:      petID,
		Phase:      snap.Pet.Phase,
		PhaseName:  table.Name(snap.Pet.Phase),
		Progress:   growth.ProgressBreakdown(snap.Pet, snap.Metrics, table),
		AgeMinutes: snap.Pet.AgeMinutes,
		Energy:     snap.Pet.Energy,
		Sleeping:   snap.Pet.Sleeping,
		Emotion:    snap.Emotion,
		Mood:       snap.Emotion.Mood(),
		Temperament: TraitSummary{
			Values:      snap.Temperament,
			Descriptors: snap.Temperament.Descriptors(),
		},
		Personality: TraitSummary{
			Values:      snap.Personality,
			Descriptors: snap.Personality.Descriptors(),
		},
		Profiles:     personality.MatchProfiles(snap.Personality),
		StrongHabits: []HabitSummary{},
		Recent:       snap.Memories.Recent(personality.RecentMemories),
		Influence:    snap.Memories.Influence(),
		CareScore:    growth.WeightedInteractions(snap.Metrics),
		Recipes:      len(snap.Recipes),
	}
	if resp.Profiles == nil {
		resp.Profiles = []personality.Profile{}
	}
	if primary, ok := personality.PrimaryProfile(snap.Personality); ok {
		resp.Primary = &primary
	}
	for _, h := range snap.Habits.Strong() {
		resp.StrongHabits = append(resp.StrongHabits, HabitSummary{Type: h.Type, Strength: h.Strength, Description: h.Descriptor()})
	}
	return resp, nil
}
