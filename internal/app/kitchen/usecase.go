package kitchen

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lovepet/internal/app/care"
	"lovepet/internal/app/petstate"
	"lovepet/internal/app/ports"
	"lovepet/internal/domain/chance"
	"lovepet/internal/domain/cooking"
	"lovepet/internal/domain/event"
	"lovepet/internal/domain/personality"
	"lovepet/internal/logging"
)

// UseCase runs cooking sessions and serves food from the pet's inventory.
// It shares the care engine so eating counts toward growth like any other care.
type UseCase struct {
	TxManager ports.TxManager
	States    petstate.Repository
	EventRepo ports.EventRepository
	Metrics   ports.ActionMetrics
	Engine    care.Engine
	Now       func() time.Time
	Logger    *slog.Logger
}

// Cook builds the dish, serves it to the pet and records what came of it.
// A refused dish is an outcome, not an error.
func (u UseCase) Cook(ctx context.Context, req CookRequest) (CookResponse, error) {
	req.PetID = strings.TrimSpace(req.PetID)
	if req.PetID == "" {
		return CookResponse{}, ports.ErrInvalidRequest
	}
	dish, err := prepare(req.Ingredients, req.Actions)
	if err != nil {
		return CookResponse{}, err
	}
	now := u.now()
	logger := logging.OrDefault(u.Logger)

	var out CookResponse
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		snap := u.States.Load(txCtx, req.PetID, now)
		snap, _ = u.Engine.Advance(snap, now)

		eval := cooking.Evaluate(dish, snap.Pet.Phase)
		out = CookResponse{Dish: dish, Evaluation: eval, Reaction: cooking.Reaction(eval)}

		var events []event.Event
		if !eval.Accepted {
			events = append(events, event.New(event.TypeDishRejected, now, map[string]any{
				"pet_id":    req.PetID,
				"reason":    string(eval.Reason),
				"signature": dish.Signature(),
			}))
			logger.Debug("dish rejected", "pet_id", req.PetID, "reason", eval.Reason)
		} else {
			var recipe cooking.Recipe
			snap.Recipes, recipe, out.NewRecipe = snap.Recipes.Discover(dish, snap.Pet.Phase, eval.Quality, u.random(), now)
			snap.Inventory = snap.Inventory.Credit(recipe, eval.Quality)
			out.Recipe = &recipe
			if out.NewRecipe {
				events = append(events, event.New(event.TypeRecipeDiscovered, now, map[string]any{
					"pet_id":    req.PetID,
					"recipe_id": recipe.ID,
					"name":      recipe.Name,
					"quality":   recipe.Quality,
				}))
				logger.Info("recipe discovered", "pet_id", req.PetID, "name", recipe.Name, "quality", recipe.Quality)
			}

			var res care.Result
			var err error
			snap, res, err = u.Engine.Apply(txCtx, snap, personality.ActionCook, "", now)
			if err != nil {
				return err
			}
			events = append(events, res.Events...)
			out.Care = &res
		}

		if err := u.States.Save(txCtx, snap); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.PetID, events); err != nil {
			return err
		}
		out.State = snap.View(u.Engine.Table())
		return nil
	})
	if err != nil {
		u.recordError(err)
		return CookResponse{}, err
	}
	if u.Metrics != nil {
		if out.Evaluation.Accepted {
			u.Metrics.RecordSuccess(string(personality.ActionCook))
		} else {
			u.Metrics.RecordRejection(string(out.Evaluation.Reason))
		}
	}
	return out, nil
}

// prepare resolves the ingredients and actions and cooks the dish. Nothing
// here depends on the pet, so a bad request fails before any state is read.
func prepare(ingredients, actions []string) (cooking.Dish, error) {
	if len(ingredients) > cooking.MaxIngredients {
		return cooking.Dish{}, fmt.Errorf("%w: %d ingredients", ports.ErrDishFull, len(ingredients))
	}
	dish := cooking.NewDish()
	for _, raw := range ingredients {
		ing, ok := cooking.LookupIngredient(raw)
		if !ok {
			return cooking.Dish{}, fmt.Errorf("%w: %q", ports.ErrUnknownIngredient, raw)
		}
		var err error
		if dish, err = dish.Add(ing); err != nil {
			return cooking.Dish{}, err
		}
	}
	for _, raw := range actions {
		a, ok := cooking.ParseAction(raw)
		if !ok {
			return cooking.Dish{}, fmt.Errorf("%w: %q", ports.ErrUnknownAction, raw)
		}
		dish = dish.Apply(a)
	}
	return dish.Finish(), nil
}

// Feed serves one unit of a cooked recipe from the inventory.
func (u UseCase) Feed(ctx context.Context, req FeedRequest) (FeedResponse, error) {
	req.PetID = strings.TrimSpace(req.PetID)
	req.RecipeID = strings.TrimSpace(req.RecipeID)
	if req.PetID == "" || req.RecipeID == "" {
		return FeedResponse{}, ports.ErrInvalidRequest
	}
	now := u.now()

	var out FeedResponse
	err := u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		snap := u.States.Load(txCtx, req.PetID, now)
		snap, _ = u.Engine.Advance(snap, now)

		inv, item, err := snap.Inventory.Consume(req.RecipeID)
		if err != nil {
			return fmt.Errorf("%w: %s", err, req.RecipeID)
		}
		snap.Inventory = inv

		description := fmt.Sprintf("Ate %s", item.Name)
		snap, res, err := u.Engine.Apply(txCtx, snap, personality.ActionFeed, description, now)
		if err != nil {
			return err
		}
		events := append([]event.Event{event.New(event.TypeItemConsumed, now, map[string]any{
			"pet_id":    req.PetID,
			"recipe_id": item.RecipeID,
			"name":      item.Name,
			"effects":   item.Effects,
		})}, res.Events...)

		if err := u.States.Save(txCtx, snap); err != nil {
			return err
		}
		if err := u.EventRepo.Append(txCtx, req.PetID, events); err != nil {
			return err
		}
		out = FeedResponse{Item: item, Effects: item.Effects, Care: res, State: snap.View(u.Engine.Table())}
		return nil
	})
	if err != nil {
		u.recordError(err)
		return FeedResponse{}, err
	}
	if u.Metrics != nil {
		u.Metrics.RecordSuccess(string(personality.ActionFeed))
	}
	return out, nil
}

func (u UseCase) Recipes(ctx context.Context, petID string) (cooking.RecipeBook, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ports.ErrInvalidRequest
	}
	return u.States.Load(ctx, petID, u.now()).Recipes, nil
}

func (u UseCase) Inventory(ctx context.Context, petID string) (cooking.Inventory, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ports.ErrInvalidRequest
	}
	return u.States.Load(ctx, petID, u.now()).Inventory, nil
}

// Ingredients lists what the pet can eat in its current phase.
func (u UseCase) Ingredients(ctx context.Context, petID string) (IngredientsResponse, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return IngredientsResponse{}, ports.ErrInvalidRequest
	}
	phase := u.States.Load(ctx, petID, u.now()).Pet.Phase
	return IngredientsResponse{
		Phase:       int(phase),
		Limit:       cooking.ComplexityLimit(phase),
		Ingredients: cooking.IngredientsFor(phase),
	}, nil
}

func (u UseCase) random() chance.Source {
	if u.Engine.Random == nil {
		return chance.New(0)
	}
	return u.Engine.Random
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
