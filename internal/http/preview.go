package http

import (
	"bytes"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hellofanny/faststore/internal/logging"
	"github.com/hellofanny/faststore/internal/metrics"
	"github.com/hellofanny/faststore/internal/render"
	"github.com/hellofanny/faststore/internal/sections"
	"github.com/hellofanny/faststore/internal/skeletons"
	"github.com/hellofanny/faststore/pkg/interfaces"
)

// UnmatchedRoute is the route label for requests no route pattern matched.
const UnmatchedRoute = "unmatched"

// PreviewAPI renders storefront sections and the product grid skeleton.
type PreviewAPI struct {
	registry    *sections.Registry
	resolver    *sections.Resolver
	skeleton    *skeletons.ProductGridSkeleton
	metrics     *metrics.Metrics
	logger      interfaces.Logger
	aspectRatio *float64
}

// Option mutates the PreviewAPI configuration.
type Option func(*PreviewAPI)

// WithRegistry sets the registry listed by GET /sections.
func WithRegistry(registry *sections.Registry) Option {
	return func(api *PreviewAPI) {
		api.registry = registry
	}
}

// WithResolver sets the resolver used to render sections.
func WithResolver(resolver *sections.Resolver) Option {
	return func(api *PreviewAPI) {
		api.resolver = resolver
	}
}

// WithSkeleton sets the product grid skeleton.
func WithSkeleton(skeleton *skeletons.ProductGridSkeleton) Option {
	return func(api *PreviewAPI) {
		api.skeleton = skeleton
	}
}

// WithMetrics enables request metrics and the /metrics route.
func WithMetrics(m *metrics.Metrics) Option {
	return func(api *PreviewAPI) {
		api.metrics = m
	}
}

// WithLogger sets the request logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(api *PreviewAPI) {
		if logger != nil {
			api.logger = logger
		}
	}
}

// WithDefaultAspectRatio sets the card ratio used when a request gives none.
func WithDefaultAspectRatio(ratio float64) Option {
	return func(api *PreviewAPI) {
		if ratio > 0 {
			api.aspectRatio = &ratio
		} else {
			api.aspectRatio = nil
		}
	}
}

// NewPreviewAPI constructs a PreviewAPI. Missing collaborators fall back to an
// empty registry and a twelve item skeleton.
func NewPreviewAPI(opts ...Option) *PreviewAPI {
	api := &PreviewAPI{logger: logging.NoOp()}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	if api.registry == nil {
		api.registry = sections.NewRegistry()
	}
	if api.resolver == nil {
		api.resolver = sections.NewResolver(api.registry)
	}
	if api.skeleton == nil {
		api.skeleton = skeletons.NewProductGridSkeleton(12)
	}
	return api
}

// Router builds a chi mux with the preview routes and standard middleware.
func (api *PreviewAPI) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(api.observe)
	api.Register(r)
	return r
}

// Register mounts the preview routes on r.
func (api *PreviewAPI) Register(r chi.Router) {
	r.Get("/sections", api.listSections)
	r.Get("/sections/{name}", api.renderSection)
	r.Get("/products/skeleton", api.renderSkeleton)
	if api.metrics != nil {
		r.Method(http.MethodGet, "/metrics", api.metrics.Handler())
	}
}

func (api *PreviewAPI) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := logging.ContextWithFields(r.Context(), map[string]any{
			"request_id": middleware.GetReqID(r.Context()),
		})
		r = r.WithContext(ctx)
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := UnmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		if api.metrics != nil {
			api.metrics.RecordHTTPRequest(r.Method, route, status, time.Since(start))
		}
		api.logger.WithContext(ctx).Debug("http.request", "method", r.Method, "route", route, "path", r.URL.Path, "status", status)
	})
}

type sectionSummary struct {
	Section     string   `json:"section"`
	Overridden  bool     `json:"overridden"`
	Implemented bool     `json:"implemented"`
	Components  []string `json:"components,omitempty"`
	Overrides   []string `json:"component_overrides,omitempty"`
}

func (api *PreviewAPI) listSections(w http.ResponseWriter, _ *http.Request) {
	names := sections.Recognized()
	out := make([]sectionSummary, 0, len(names))
	for _, name := range names {
		summary := sectionSummary{Section: name.String(), Components: sections.Components(name)}
		if o, ok := api.registry.Get(name); ok {
			summary.Overridden = true
			summary.Implemented = o.Implemented()
			for _, component := range summary.Components {
				if _, ok := o.Components[component]; ok {
					summary.Overrides = append(summary.Overrides, component)
				}
			}
		}
		out = append(out, summary)
	}
	writeJSON(w, http.StatusOK, out)
}

func (api *PreviewAPI) renderSection(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	data := make(map[string]any)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			data[key] = values[0]
		}
	}

	var buf bytes.Buffer
	if err := api.resolver.Render(r.Context(), &buf, name, data); err != nil {
		writeError(w, err)
		return
	}
	htmlHeader(w)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (api *PreviewAPI) renderSkeleton(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	loading, err := parseOptionalBool(query.Get("loading"))
	if err != nil {
		writeError(w, err)
		return
	}
	ratio, err := parseOptionalRatio(query.Get("aspect_ratio"))
	if err != nil {
		writeError(w, err)
		return
	}
	if ratio == nil {
		ratio = api.aspectRatio
	}

	props := skeletons.GridProps{Loading: loading, AspectRatio: ratio}
	if content := query.Get("content"); content != "" {
		props.Children = render.Text(content)
	}

	var buf bytes.Buffer
	if err := api.skeleton.RenderProps(r.Context(), &buf, props); err != nil {
		writeError(w, err)
		return
	}
	htmlHeader(w)
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
