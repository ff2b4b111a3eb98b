// Package domain contains the core entities shown on the dashboard: the
// composite view model, its per-category payloads, the fallback baseline and
// the theme preference. These types are intentionally free of transport and
// storage concerns so they can be shared across packages.
package domain
