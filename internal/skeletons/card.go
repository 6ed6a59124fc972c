package skeletons

import (
	"context"
	"html/template"
	"io"
	"strconv"
)

// DefaultCardAspectRatio is used when a card placeholder receives no aspect ratio.
const DefaultCardAspectRatio = 1.0

// Card describes a single product card placeholder.
type Card struct {
	AspectRatio *float64
	Bordered    bool
}

// ResolvedAspectRatio returns the configured ratio or DefaultCardAspectRatio.
func (c Card) ResolvedAspectRatio() float64 {
	if c.AspectRatio == nil || *c.AspectRatio <= 0 {
		return DefaultCardAspectRatio
	}
	return *c.AspectRatio
}

// CardRenderer draws a product card placeholder. The storefront ships
// CardSkeleton; hosts with their own card component can swap it in.
type CardRenderer interface {
	RenderCard(ctx context.Context, w io.Writer, card Card) error
}

// CardSkeleton is the built-in product card placeholder.
type CardSkeleton struct{}

var cardTemplate = template.Must(template.New("product-card-skeleton").Parse(
	`<div data-fs-product-card-skeleton data-fs-product-card-skeleton-aspect-ratio="{{ .Ratio }}"{{ if .Bordered }} data-fs-product-card-bordered="true"{{ end }}>` +
		`<div data-fs-product-card-skeleton-image><div data-fs-skeleton-shimmer></div></div>` +
		`<div data-fs-product-card-skeleton-content>` +
		`<div data-fs-skeleton data-fs-skeleton-variant="text"></div>` +
		`<div data-fs-skeleton data-fs-skeleton-variant="price"></div>` +
		`</div></div>`))

// RenderCard implements CardRenderer.
func (CardSkeleton) RenderCard(_ context.Context, w io.Writer, card Card) error {
	return cardTemplate.Execute(w, struct {
		Ratio    string
		Bordered bool
	}{
		Ratio:    strconv.FormatFloat(card.ResolvedAspectRatio(), 'f', -1, 64),
		Bordered: card.Bordered,
	})
}

var _ CardRenderer = CardSkeleton{}
