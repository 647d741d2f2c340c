package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"lovepet/internal/app/care"
	"lovepet/internal/app/kitchen"
	"lovepet/internal/app/ports"
	"lovepet/internal/app/replay"
	"lovepet/internal/app/status"
	"lovepet/internal/logging"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const petIDHeader = "X-Pet-ID"

type Handler struct {
	CareUC    care.UseCase
	KitchenUC kitchen.UseCase
	StatusUC  status.UseCase
	ReplayUC  replay.UseCase
	KPI       kpiSnapshotProvider
	// DefaultPetID serves requests that carry no X-Pet-ID header.
	DefaultPetID string
	Logger       *slog.Logger
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	pet := s.Group("/api/pet")
	pet.POST("/action", h.action)
	pet.POST("/sleep", h.sleep)
	pet.POST("/wake", h.wake)
	pet.POST("/tick", h.tick)
	pet.POST("/reset", h.reset)
	pet.GET("/status", h.status)
	pet.GET("/replay", h.replay)

	k := s.Group("/api/kitchen")
	k.POST("/cook", h.cook)
	k.POST("/feed", h.feed)
	k.GET("/recipes", h.recipes)
	k.GET("/inventory", h.inventory)
	k.GET("/ingredients", h.ingredients)

	s.GET("/ops/kpi", h.kpi)
}

type actionRequest struct {
	Action string `json:"action"`
	Event  string `json:"event,omitempty"`
}

type cookRequest struct {
	Ingredients []string `json:"ingredients"`
	Actions     []string `json:"actions"`
}

type feedRequest struct {
	RecipeID string `json:"recipe_id"`
}

func (h Handler) action(c context.Context, ctx *app.RequestContext) {
	var body actionRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.CareUC.Act(c, care.Request{PetID: h.petID(ctx), Action: body.Action, Event: body.Event})
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) sleep(c context.Context, ctx *app.RequestContext) {
	resp, err := h.CareUC.Sleep(c, h.petID(ctx))
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) wake(c context.Context, ctx *app.RequestContext) {
	resp, err := h.CareUC.Wake(c, h.petID(ctx))
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) tick(c context.Context, ctx *app.RequestContext) {
	resp, err := h.CareUC.Tick(c, h.petID(ctx))
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) reset(c context.Context, ctx *app.RequestContext) {
	resp, err := h.CareUC.Reset(c, h.petID(ctx))
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{PetID: h.petID(ctx)})
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) replay(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	resp, err := h.ReplayUC.Execute(c, replay.Request{
		PetID:        h.petID(ctx),
		Limit:        limit,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
		Type:         string(ctx.Query("type")),
	})
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) cook(c context.Context, ctx *app.RequestContext) {
	var body cookRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.KitchenUC.Cook(c, kitchen.CookRequest{
		PetID:       h.petID(ctx),
		Ingredients: body.Ingredients,
		Actions:     body.Actions,
	})
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) feed(c context.Context, ctx *app.RequestContext) {
	var body feedRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.KitchenUC.Feed(c, kitchen.FeedRequest{PetID: h.petID(ctx), RecipeID: body.RecipeID})
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) recipes(c context.Context, ctx *app.RequestContext) {
	book, err := h.KitchenUC.Recipes(c, h.petID(ctx))
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"recipes": book})
}

func (h Handler) inventory(c context.Context, ctx *app.RequestContext) {
	inv, err := h.KitchenUC.Inventory(c, h.petID(ctx))
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"items": inv})
}

func (h Handler) ingredients(c context.Context, ctx *app.RequestContext) {
	resp, err := h.KitchenUC.Ingredients(c, h.petID(ctx))
	if err != nil {
		h.writeError(c, ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func (h Handler) petID(ctx *app.RequestContext) string {
	if id := strings.TrimSpace(string(ctx.GetHeader(petIDHeader))); id != "" {
		return id
	}
	return h.DefaultPetID
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func (h Handler) writeError(c context.Context, ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ports.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrUnknownAction):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_action", err.Error())
	case errors.Is(err, ports.ErrUnknownIngredient):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_ingredient", err.Error())
	case errors.Is(err, ports.ErrDishFull):
		writeErrorBody(ctx, consts.StatusBadRequest, "dish_full", err.Error())
	case errors.Is(err, ports.ErrItemUnavailable):
		writeErrorBody(ctx, consts.StatusConflict, "item_unavailable", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		logging.OrDefault(h.Logger).ErrorContext(c, "request failed", "path", string(ctx.Path()), "err", err)
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
