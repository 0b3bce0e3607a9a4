// Package session holds the per-session core state of the application:
// the paginated search-result cache and the navigation state machine.
//
// SearchSession owns the ordered, deduplicated buffer of recipes fetched
// so far for the active query, the page offset into it, and the
// full-page flag that gates the "load more" affordance. Fetching is pull
// based: EnsurePageLoaded only calls the API when the offset points past
// the loaded buffer, so repeated renders at the same offset never
// re-fetch.
//
// Nav tracks the active screen (input / results / details), the list kind
// being viewed (primary search vs. similar-to), and the reversible
// transitions between them. Impossible combinations self-heal via
// Recover rather than surfacing to the user.
//
// There is no global state; both types are plain values owned by the
// caller (one per interactive session) and are not safe for concurrent
// use, which matches the strictly synchronous one-action-one-fetch flow
// of the UI.
package session
