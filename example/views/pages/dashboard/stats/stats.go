// Package stats holds the dashboard visit counter block, served at
// /dashboard/stats with a JSON action at /page-api/dashboard/stats/stats.
package stats

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrymomot/webblocks"
	"github.com/dmitrymomot/webblocks/pkg/store"
)

const visitsKey = "dashboard:visits"

// StatsBlock renders the visit counter. Its Handle side-channel increments
// the counter, after which observers are expected to refresh.
type StatsBlock struct {
	Store store.Store
}

func (b *StatsBlock) BlockConfig() webblocks.BlockConfig {
	return webblocks.BlockConfig{Timeout: 2 * time.Second}
}

func (b *StatsBlock) Render(ctx context.Context) (string, error) {
	visits, err := b.visits(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<p>Visits: %d</p>", visits), nil
}

func (b *StatsBlock) Handle(ctx context.Context) (any, error) {
	visits, err := b.visits(ctx)
	if err != nil {
		return nil, err
	}

	visits++
	if err := b.Store.Set(ctx, visitsKey, strconv.Itoa(visits)); err != nil {
		return nil, err
	}
	return map[string]int{"visits": visits}, nil
}

func (b *StatsBlock) visits(ctx context.Context) (int, error) {
	raw, err := b.Store.Get(ctx, visitsKey)
	if errors.Is(err, store.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(raw)
}
