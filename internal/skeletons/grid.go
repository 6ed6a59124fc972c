package skeletons

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/hellofanny/faststore/internal/logging"
	"github.com/hellofanny/faststore/internal/render"
	"github.com/hellofanny/faststore/pkg/interfaces"
)

// Placeholder is one entry of the loading list. Key is the positional index
// and only identifies the entry within a single render.
type Placeholder struct {
	Key  string
	Card Card
}

// GridView is the structural result of a render pass.
type GridView struct {
	Loading      bool
	Placeholders []Placeholder
	Content      render.Renderable
}

// GridOption configures a ProductGridSkeleton.
type GridOption func(*ProductGridSkeleton)

// WithCardRenderer replaces the built-in card placeholder.
func WithCardRenderer(card CardRenderer) GridOption {
	return func(g *ProductGridSkeleton) {
		if card != nil {
			g.card = card
		}
	}
}

// WithMetrics records how many placeholders each loading pass produced.
func WithMetrics(metrics interfaces.SectionMetrics) GridOption {
	return func(g *ProductGridSkeleton) {
		g.metrics = metrics
	}
}

// WithLogger sets the logger used for render failures.
func WithLogger(logger interfaces.Logger) GridOption {
	return func(g *ProductGridSkeleton) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// ProductGridSkeleton stands in for the product grid while a page is loading.
// itemsPerPage must match the page size of the real grid so both states take
// the same space.
type ProductGridSkeleton struct {
	itemsPerPage int
	card         CardRenderer
	metrics      interfaces.SectionMetrics
	logger       interfaces.Logger
}

// NewProductGridSkeleton builds a skeleton sized to itemsPerPage. Negative
// sizes are treated as zero; config validation rejects them upstream.
func NewProductGridSkeleton(itemsPerPage int, opts ...GridOption) *ProductGridSkeleton {
	if itemsPerPage < 0 {
		itemsPerPage = 0
	}
	g := &ProductGridSkeleton{
		itemsPerPage: itemsPerPage,
		card:         CardSkeleton{},
		logger:       logging.NoOp(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ItemsPerPage reports the configured placeholder count.
func (g *ProductGridSkeleton) ItemsPerPage() int {
	return g.itemsPerPage
}

// Build projects state into a GridView without rendering anything.
func (g *ProductGridSkeleton) Build(state GridState) GridView {
	switch s := state.(type) {
	case Loaded:
		return GridView{Content: s.Content}
	case Loading:
		return GridView{Loading: true, Placeholders: g.placeholders(s.AspectRatio)}
	default:
		// nil state behaves like the omitted loading flag
		return GridView{Loading: true, Placeholders: g.placeholders(nil)}
	}
}

func (g *ProductGridSkeleton) placeholders(aspectRatio *float64) []Placeholder {
	out := make([]Placeholder, g.itemsPerPage)
	for i := range out {
		out[i] = Placeholder{
			Key:  strconv.Itoa(i),
			Card: Card{AspectRatio: aspectRatio, Bordered: true},
		}
	}
	return out
}

var gridTemplate = template.Must(template.New("product-grid-skeleton").Parse(
	`<ul class="fs-product-grid" data-fs-product-grid data-fs-product-grid-skeleton>` +
		`{{ range . }}<li data-fs-product-grid-item="{{ .Key }}">{{ .Card }}</li>{{ end }}` +
		`</ul>`))

type gridItem struct {
	Key  string
	Card template.HTML
}

// Render writes the branch selected by state.
func (g *ProductGridSkeleton) Render(ctx context.Context, w io.Writer, state GridState) error {
	view := g.Build(state)
	if !view.Loading {
		if view.Content == nil {
			return nil
		}
		return view.Content.Render(ctx, w)
	}

	items := make([]gridItem, len(view.Placeholders))
	for i, placeholder := range view.Placeholders {
		var card strings.Builder
		if err := g.card.RenderCard(ctx, &card, placeholder.Card); err != nil {
			g.logger.Error("skeletons.grid.card_failed", "key", placeholder.Key, "error", err)
			return fmt.Errorf("skeletons: render card %s: %w", placeholder.Key, err)
		}
		items[i] = gridItem{Key: placeholder.Key, Card: template.HTML(card.String())}
	}
	if err := gridTemplate.Execute(w, items); err != nil {
		return fmt.Errorf("skeletons: render grid: %w", err)
	}
	if g.metrics != nil {
		g.metrics.ObserveSkeleton(len(items))
	}
	return nil
}

// RenderProps is Render for callers holding loose props.
func (g *ProductGridSkeleton) RenderProps(ctx context.Context, w io.Writer, props GridProps) error {
	return g.Render(ctx, w, props.State())
}

// Renderable binds state to the skeleton so it can be nested in other output.
func (g *ProductGridSkeleton) Renderable(state GridState) render.Renderable {
	return render.Func(func(ctx context.Context, w io.Writer) error {
		return g.Render(ctx, w, state)
	})
}
