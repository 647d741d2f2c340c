package cooking

import (
	"errors"
	"testing"
	"time"

	"lovepet/internal/domain/chance"
	"lovepet/internal/domain/growth"
)

var t0 = time.Date(2026, 5, 2, 18, 0, 0, 0, time.UTC)

func TestNameFor(t *testing.T) {
	if got := NameFor(NewDish(), chance.NewSequence(0)); got != "Mystery Dish" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := NameFor(build(t, "banana"), chance.NewSequence(0.3)); got != "Cream of Banana" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := NameFor(build(t, "milk", "banana", "honey"), chance.NewSequence(0.95)); got != "Mix of Milk with Banana" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestDiscoverIsIdempotentOnSignature(t *testing.T) {
	src := chance.NewSequence(0)
	dish := build(t, "milk", "banana").Apply(ActionMix).Finish()

	var book RecipeBook
	var inv Inventory

	book, first, isNew := book.Discover(dish, growth.PhaseNewborn, 3, src, t0)
	if !isNew || first.Name != "Delight of Milk with Banana" || first.ID != dish.Signature() {
		t.Fatalf("unexpected first discovery: %+v new=%v", first, isNew)
	}
	inv = inv.Credit(first, 3)

	book, second, isNew := book.Discover(dish, growth.PhaseBaby, 5, src, t0.Add(time.Hour))
	if isNew || second.ID != first.ID || second.Quality != 3 {
		t.Fatalf("expected known recipe back, got %+v new=%v", second, isNew)
	}
	inv = inv.Credit(second, 5)

	if len(book) != 1 {
		t.Fatalf("expected one recipe, got %d", len(book))
	}
	if len(inv) != 1 || inv[0].Quantity != 2 {
		t.Fatalf("expected one line with quantity 2, got %+v", inv)
	}
	if inv[0].Effects != (Effects{Hunger: 25, Happiness: 9, Satisfaction: 6}) {
		t.Fatalf("unexpected effects %+v", inv[0].Effects)
	}
}

func TestInventoryConsume(t *testing.T) {
	r := Recipe{ID: "banana|", Name: "Cream of Banana"}
	inv := Inventory{}.Credit(r, 2).Credit(r, 2)

	inv, item, err := inv.Consume(r.ID)
	if err != nil || item.Quantity != 2 || inv[0].Quantity != 1 {
		t.Fatalf("unexpected first consume: inv=%+v item=%+v err=%v", inv, item, err)
	}
	inv, _, err = inv.Consume(r.ID)
	if err != nil || len(inv) != 0 {
		t.Fatalf("expected line removed at zero, got %+v err=%v", inv, err)
	}
	if _, _, err = inv.Consume(r.ID); !errors.Is(err, ErrItemUnavailable) {
		t.Fatalf("expected ErrItemUnavailable, got %v", err)
	}

	stale := Inventory{{RecipeID: "x", Quantity: 0}}
	if _, _, err := stale.Consume("x"); !errors.Is(err, ErrItemUnavailable) {
		t.Fatalf("expected zero-quantity line to be unavailable, got %v", err)
	}
}
