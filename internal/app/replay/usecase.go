package replay

import (
	"context"
	"strings"

	"lovepet/internal/app/ports"
	"lovepet/internal/domain/event"
	"lovepet/internal/domain/growth"
)

type UseCase struct {
	Events ports.EventRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.PetID) == "" {
		return Response{}, ports.ErrInvalidRequest
	}
	if req.OccurredFrom > 0 && req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo {
		return Response{}, ports.ErrInvalidRequest
	}
	// The limit applies after filtering, so read everything when filters are set.
	limit := req.Limit
	if req.OccurredFrom > 0 || req.OccurredTo > 0 || req.Type != "" {
		limit = 0
	}
	events, err := u.Events.ListByPetID(ctx, req.PetID, limit)
	if err != nil {
		return Response{}, err
	}
	events = filter(events, req.OccurredFrom, req.OccurredTo, strings.TrimSpace(req.Type))
	if req.Limit > 0 && len(events) > req.Limit {
		events = events[:req.Limit]
	}
	latest := reconstruct(events)
	latest.PetID = req.PetID
	return Response{Events: events, LatestState: latest}, nil
}

func filter(events []event.Event, from, to int64, typ string) []event.Event {
	out := make([]event.Event, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		if typ != "" && evt.Type != typ {
			continue
		}
		out = append(out, evt)
	}
	return out
}

// reconstruct reads the newest state_after payload. Events arrive newest first.
func reconstruct(events []event.Event) LatestState {
	for _, evt := range events {
		after, ok := evt.Payload["state_after"].(map[string]any)
		if !ok {
			continue
		}
		sleeping, _ := after["sleeping"].(bool)
		return LatestState{
			Phase:       growth.Phase(num(after["phase"])),
			Energy:      int(num(after["energy"])),
			Sleeping:    sleeping,
			Happiness:   int(num(after["happiness"])),
			Frustration: int(num(after["frustration"])),
			Anxiety:     int(num(after["anxiety"])),
			Security:    int(num(after["security"])),
		}
	}
	return LatestState{}
}

// num accepts both live payloads and ones decoded from JSON.
func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
