package internal_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/webblocks/internal"
)

type staticBlock struct {
	html string
	err  error
}

func (b *staticBlock) BlockConfig() internal.BlockConfig {
	return internal.BlockConfig{}
}

func (b *staticBlock) Render(ctx context.Context) (string, error) {
	return b.html, b.err
}

func blockMappings(t *testing.T) (*internal.RouteMapping, *internal.RouteMapping) {
	t.Helper()
	reg, err := internal.BuildRegistry("app", []internal.Registration{
		{
			Prototype: (*CounterBlock)(nil),
			Package:   "app/pages/board/counter",
			New:       func(internal.Args) any { return &CounterBlock{} },
		},
		{
			Prototype: (*CounterBlock)(nil),
			Package:   "app/pages/board/feed",
			New:       func(internal.Args) any { return &CounterBlock{} },
		},
	})
	require.NoError(t, err)
	counter, ok := reg.Lookup("/board/counter")
	require.True(t, ok)
	feed, ok := reg.Lookup("/board/feed")
	require.True(t, ok)
	return counter, feed
}

func TestAssembleBlocks(t *testing.T) {
	t.Parallel()

	counterMapping, feedMapping := blockMappings(t)

	counter := &staticBlock{html: "<p>42</p>"}
	feed := &staticBlock{html: "<p>news</p>"}

	out, err := internal.AssembleBlocks(context.Background(),
		[]internal.BlockInstance{
			{Block: counter, Mapping: counterMapping},
			{Block: feed, Mapping: feedMapping},
		},
		[]internal.BlockEdge{
			{Observed: counter, Observer: feed},
		},
	)
	require.NoError(t, err)

	// both wrappers present, in list order
	require.Regexp(t, `(?s)data-block-path="/board/counter".*data-block-path="/board/feed"`, out)
	require.Contains(t, out, "<p>42</p>")
	require.Contains(t, out, "<p>news</p>")

	// the counter's observer id is the feed wrapper's own id
	idRe := regexp.MustCompile(`id="([^"]+)" data-block-path="/board/feed"`)
	matches := idRe.FindStringSubmatch(out)
	require.Len(t, matches, 2)
	feedID := matches[1]

	obsRe := regexp.MustCompile(`data-block-path="/board/counter" data-observers="([^"]*)"`)
	obsMatches := obsRe.FindStringSubmatch(out)
	require.Len(t, obsMatches, 2)
	require.Equal(t, feedID, obsMatches[1])
}

func TestAssembleBlocksFreshIDs(t *testing.T) {
	t.Parallel()

	counterMapping, _ := blockMappings(t)
	block := &staticBlock{html: "<p>x</p>"}

	idRe := regexp.MustCompile(`id="([^"]+)"`)

	first, err := internal.AssembleBlocks(context.Background(),
		[]internal.BlockInstance{{Block: block, Mapping: counterMapping}}, nil)
	require.NoError(t, err)
	second, err := internal.AssembleBlocks(context.Background(),
		[]internal.BlockInstance{{Block: block, Mapping: counterMapping}}, nil)
	require.NoError(t, err)

	firstID := idRe.FindStringSubmatch(first)
	secondID := idRe.FindStringSubmatch(second)
	require.Len(t, firstID, 2)
	require.Len(t, secondID, 2)
	require.NotEqual(t, firstID[1], secondID[1], "ids are fresh per assembly")
}

func TestAssembleBlocksRenderFailure(t *testing.T) {
	t.Parallel()

	counterMapping, feedMapping := blockMappings(t)

	good := &staticBlock{html: "<p>ok</p>"}
	bad := &staticBlock{err: errors.New("source offline")}

	_, err := internal.AssembleBlocks(context.Background(),
		[]internal.BlockInstance{
			{Block: good, Mapping: counterMapping},
			{Block: bad, Mapping: feedMapping},
		}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "source offline")
}
