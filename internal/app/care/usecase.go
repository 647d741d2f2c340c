package care

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lovepet/internal/app/petstate"
	"lovepet/internal/app/ports"
	"lovepet/internal/domain/event"
	"lovepet/internal/domain/growth"
	"lovepet/internal/domain/personality"
	"lovepet/internal/logging"
)

type UseCase struct {
	TxManager ports.TxManager
	States    petstate.Repository
	EventRepo ports.EventRepository
	Metrics   ports.ActionMetrics
	Engine    Engine
	Now       func() time.Time
	Logger    *slog.Logger
}

// Act applies one caretaker action. Sleep and wake also toggle the pet's sleep.
func (u UseCase) Act(ctx context.Context, req Request) (Response, error) {
	req.PetID = strings.TrimSpace(req.PetID)
	if req.PetID == "" {
		return Response{}, ports.ErrInvalidRequest
	}
	kind, ok := personality.ResolveAction(req.Action)
	if !ok {
		return Response{}, fmt.Errorf("%w: %q", ports.ErrUnknownAction, req.Action)
	}
	return u.run(ctx, req.PetID, kind, req.Event)
}

func (u UseCase) Sleep(ctx context.Context, petID string) (Response, error) {
	return u.run(ctx, strings.TrimSpace(petID), personality.ActionSleep, "")
}

func (u UseCase) Wake(ctx context.Context, petID string) (Response, error) {
	return u.run(ctx, strings.TrimSpace(petID), personality.ActionWake, "")
}

func (u UseCase) run(ctx context.Context, petID string, kind personality.ActionKind, description string) (Response, error) {
	if petID == "" {
		return Response{}, ports.ErrInvalidRequest
	}
	now := u.now()

	var out Response
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		snap := u.States.Load(txCtx, petID, now)
		snap, minutes := u.Engine.Advance(snap, now)

		switch kind {
		case personality.ActionSleep:
			if snap.Pet.Sleeping {
				return fmt.Errorf("%w: pet is already asleep", ports.ErrConflict)
			}
			snap.Pet = growth.StartSleep(snap.Pet, now)
		case personality.ActionWake:
			if !snap.Pet.Sleeping {
				return fmt.Errorf("%w: pet is already awake", ports.ErrConflict)
			}
			snap.Pet, snap.Metrics = growth.EndSleep(snap.Pet, snap.Metrics, now)
		}

		snap, res, err := u.Engine.Apply(txCtx, snap, kind, description, now)
		if err != nil {
			return err
		}
		if err := u.States.Save(txCtx, snap); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, petID, res.Events); err != nil {
			return err
		}
		out = Response{State: snap.View(u.Engine.Table()), Result: res, SettledMinutes: minutes}
		return nil
	})
	if err != nil {
		u.recordError(err)
		return Response{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(string(kind))
	}
	logging.OrDefault(u.Logger).Debug("care action applied", "pet_id", petID, "action", kind, "settled_minutes", out.SettledMinutes)
	return out, nil
}

// Tick settles elapsed time without an action: growth, energy, decay and a
// transition check.
func (u UseCase) Tick(ctx context.Context, petID string) (TickResponse, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return TickResponse{}, ports.ErrInvalidRequest
	}
	now := u.now()

	var out TickResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		snap := u.States.Load(txCtx, petID, now)
		snap, minutes := u.Engine.Advance(snap, now)
		snap, moved, events := u.Engine.CheckTransition(snap, now)
		if err := u.States.Save(txCtx, snap); err != nil {
			return err
		}
		if len(events) > 0 {
			if err := u.EventRepo.Append(txCtx, petID, events); err != nil {
				return err
			}
		}
		out = TickResponse{State: snap.View(u.Engine.Table()), SettledMinutes: minutes, Transitioned: moved}
		return nil
	})
	if err != nil {
		u.recordError(err)
		return TickResponse{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess("tick")
	}
	return out, nil
}

// Reset replaces the pet with a newborn that has a freshly drawn temperament.
func (u UseCase) Reset(ctx context.Context, petID string) (petstate.View, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return petstate.View{}, ports.ErrInvalidRequest
	}
	now := u.now()

	var out petstate.View
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		snap := petstate.Newborn(petID, u.States.Random, now)
		if err := u.States.Save(txCtx, snap); err != nil {
			return err
		}
		evt := event.New(event.TypePetReset, now, map[string]any{
			"pet_id":      petID,
			"temperament": snap.Temperament,
		})
		if err := u.EventRepo.Append(txCtx, petID, []event.Event{evt}); err != nil {
			return err
		}
		out = snap.View(u.Engine.Table())
		return nil
	})
	if err != nil {
		u.recordError(err)
		return petstate.View{}, err
	}
	logging.OrDefault(u.Logger).Info("pet reset", "pet_id", petID, "temperament", out.Temperament)
	return out, nil
}

func (u UseCase) now() time.Time {
	if u.Now == nil {
		return time.Now()
	}
	return u.Now()
}

func (u UseCase) recordError(err error) {
	if u.Metrics == nil {
		return
	}
	if errors.Is(err, ports.ErrConflict) {
		u.Metrics.RecordConflict()
		return
	}
	u.Metrics.RecordFailure()
}
