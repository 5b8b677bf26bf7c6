// Package api holds the JSON endpoints of the example app. Endpoint types
// are served under /api with their kebab-cased names as the last segment.
package api

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dmitrymomot/webblocks/pkg/store"
)

const petsKey = "pets"

// GetPetsEndpoint returns the stored pet list at /api/get-pets.
type GetPetsEndpoint struct {
	Store store.Store
}

func (e *GetPetsEndpoint) Handle(ctx context.Context) (any, error) {
	raw, err := e.Store.Get(ctx, petsKey)
	if errors.Is(err, store.ErrNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var pets []string
	if err := json.Unmarshal([]byte(raw), &pets); err != nil {
		return nil, err
	}
	return pets, nil
}

// AddPetEndpoint appends a pet to the stored list at /api/add-pet.
type AddPetEndpoint struct {
	Name  string
	Store store.Store
}

func (e *AddPetEndpoint) Handle(ctx context.Context) (any, error) {
	var pets []string
	raw, err := e.Store.Get(ctx, petsKey)
	if err == nil {
		if err := json.Unmarshal([]byte(raw), &pets); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	pets = append(pets, e.Name)
	data, err := json.Marshal(pets)
	if err != nil {
		return nil, err
	}
	if err := e.Store.Set(ctx, petsKey, string(data)); err != nil {
		return nil, err
	}
	return map[string]any{"count": len(pets)}, nil
}
