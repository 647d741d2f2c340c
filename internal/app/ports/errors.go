package ports

import (
	"errors"

	"lovepet/internal/domain/cooking"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")

	ErrInvalidRequest    = errors.New("invalid request")
	ErrUnknownAction     = errors.New("unknown action")
	ErrUnknownIngredient = errors.New("unknown ingredient")

	ErrDishFull        = cooking.ErrDishFull
	ErrItemUnavailable = cooking.ErrItemUnavailable
)
