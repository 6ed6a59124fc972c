package skeletons

import "github.com/hellofanny/faststore/internal/render"

// GridState selects which branch the product grid skeleton renders. The only
// implementations are Loading and Loaded.
type GridState interface {
	gridState()
}

// Loading renders the placeholder list.
type Loading struct {
	AspectRatio *float64
}

// Loaded renders the supplied content unchanged.
type Loaded struct {
	Content render.Renderable
}

func (Loading) gridState() {}
func (Loaded) gridState()  {}

// GridProps mirrors the loose props a page hands to the skeleton: an optional
// loading flag (nil means loading), an optional aspect ratio, and children.
type GridProps struct {
	Loading     *bool
	AspectRatio *float64
	Children    render.Renderable
}

// State converts the props into a GridState.
func (p GridProps) State() GridState {
	if p.Loading == nil || *p.Loading {
		return Loading{AspectRatio: p.AspectRatio}
	}
	return Loaded{Content: p.Children}
}
