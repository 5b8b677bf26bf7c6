// Package dashboard composes the stats and activity blocks into one page at
// /dashboard, wiring the activity block as an observer of stats.
package dashboard

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/webblocks"
	"github.com/dmitrymomot/webblocks/example/views/pages/dashboard/activity"
	"github.com/dmitrymomot/webblocks/example/views/pages/dashboard/stats"
	"github.com/dmitrymomot/webblocks/pkg/store"
)

// Lookup resolves a dispatch path to its route mapping. The app's registry
// satisfies it; tests can stub it.
type Lookup func(path string) (*webblocks.RouteMapping, bool)

// DashboardPage assembles the dashboard from its blocks.
type DashboardPage struct {
	Store  store.Store
	Routes Lookup
}

func (p *DashboardPage) Render(ctx context.Context) (string, error) {
	statsMapping, ok := p.Routes("/dashboard/stats")
	if !ok {
		return "", fmt.Errorf("dashboard: stats block not registered")
	}
	activityMapping, ok := p.Routes("/dashboard/activity")
	if !ok {
		return "", fmt.Errorf("dashboard: activity block not registered")
	}

	statsBlock := &stats.StatsBlock{Store: p.Store}
	activityBlock := &activity.ActivityBlock{Store: p.Store}

	blocks, err := webblocks.AssembleBlocks(ctx,
		[]webblocks.BlockInstance{
			{Block: statsBlock, Mapping: statsMapping},
			{Block: activityBlock, Mapping: activityMapping},
		},
		[]webblocks.BlockEdge{
			{Observed: statsBlock, Observer: activityBlock},
		},
	)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body>
<h1>Dashboard</h1>
%s
</body>
</html>`, blocks), nil
}
