// Package http serves a storefront preview over chi.
//
// Routes:
//   - GET /sections lists recognized sections and their override state
//   - GET /sections/{name} renders one section; query parameters become section data
//   - GET /products/skeleton renders the product grid placeholder
//     (?loading=false&content=... renders the loaded branch, ?aspect_ratio=1.5 sizes cards)
//   - GET /metrics exposes Prometheus metrics when a recorder is configured
//
// Host applications can mount the handlers on their own chi router via Register.
package http
