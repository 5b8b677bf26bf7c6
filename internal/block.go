package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"
)

// wrapBlock wraps a rendered fragment in the refresh-metadata element the
// client-side script consumes: a fresh opaque id, the comma-joined ids of the
// block's registered observers, the block's own dispatch path, and its bound
// constructor arguments as a JSON string map. The framework only emits this
// metadata; the refresh logic itself is client-side.
func wrapBlock(m *RouteMapping, instance any, args Args, inner string) string {
	ids := newBlockIDs()
	var observers []Block
	if src, ok := instance.(ObserverSource); ok {
		observers = src.Observers()
	}
	return ids.wrap(m.Path, observers, args, inner)
}

// blockIDs assigns one opaque identifier per block instance within a single
// render pass, so a block and its observers reference each other by the same
// ids. A fresh set is created per request or per page assembly; ids are never
// reused across renders.
type blockIDs struct {
	byInstance map[Block]string
}

func newBlockIDs() *blockIDs {
	return &blockIDs{byInstance: make(map[Block]string)}
}

func (b *blockIDs) idFor(block Block) string {
	if id, ok := b.byInstance[block]; ok {
		return id
	}
	id := uuid.NewString()
	b.byInstance[block] = id
	return id
}

func (b *blockIDs) wrap(path string, observers []Block, args Args, inner string) string {
	observerIDs := make([]string, 0, len(observers))
	for _, o := range observers {
		observerIDs = append(observerIDs, b.idFor(o))
	}

	argsJSON, err := json.Marshal(args.StringMap())
	if err != nil {
		argsJSON = []byte("{}")
	}

	var sb strings.Builder
	sb.WriteString(`<div class="wb-block" id="`)
	sb.WriteString(uuid.NewString())
	sb.WriteString(`" data-block-path="`)
	sb.WriteString(html.EscapeString(path))
	sb.WriteString(`" data-observers="`)
	sb.WriteString(html.EscapeString(strings.Join(observerIDs, ",")))
	sb.WriteString(`" data-args="`)
	sb.WriteString(html.EscapeString(string(argsJSON)))
	sb.WriteString(`">`)
	sb.WriteString(inner)
	sb.WriteString(`</div>`)
	return sb.String()
}

// BlockEdge declares that Observer should refresh after Observed completes a
// state-changing action. Page assembly passes edges down explicitly instead
// of blocks holding live references to one another.
type BlockEdge struct {
	Observed Block
	Observer Block
}

// BlockInstance pairs a constructed block with its route mapping and the
// arguments it was built from.
type BlockInstance struct {
	Block   Block
	Mapping *RouteMapping
	Args    Args
}

// AssembleBlocks renders a list of block instances for inclusion in a page,
// sharing one id space so observer references line up across wrappers.
// Blocks render in list order; edges supply the observer relationships.
// A render failure aborts the whole assembly.
func AssembleBlocks(ctx context.Context, instances []BlockInstance, edges []BlockEdge) (string, error) {
	ids := newBlockIDs()

	observersOf := make(map[Block][]Block)
	for _, e := range edges {
		observersOf[e.Observed] = append(observersOf[e.Observed], e.Observer)
	}

	var sb strings.Builder
	for _, inst := range instances {
		inner, err := inst.Block.Render(ctx)
		if err != nil {
			return "", fmt.Errorf("assemble %s: %w", inst.Mapping.TypeName, err)
		}

		observerIDs := make([]string, 0, len(observersOf[inst.Block]))
		for _, o := range observersOf[inst.Block] {
			observerIDs = append(observerIDs, ids.idFor(o))
		}

		argsJSON, err := json.Marshal(inst.Args.StringMap())
		if err != nil {
			argsJSON = []byte("{}")
		}

		sb.WriteString(`<div class="wb-block" id="`)
		sb.WriteString(ids.idFor(inst.Block))
		sb.WriteString(`" data-block-path="`)
		sb.WriteString(html.EscapeString(inst.Mapping.Path))
		sb.WriteString(`" data-observers="`)
		sb.WriteString(html.EscapeString(strings.Join(observerIDs, ",")))
		sb.WriteString(`" data-args="`)
		sb.WriteString(html.EscapeString(string(argsJSON)))
		sb.WriteString(`">`)
		sb.WriteString(inner)
		sb.WriteString(`</div>`)
	}
	return sb.String(), nil
}
