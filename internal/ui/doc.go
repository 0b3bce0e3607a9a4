// Package ui implements the interactive terminal interface for browsing
// recipe search results.
//
// Built on the Bubble Tea framework with the Model-Update-View pattern,
// the interface is organized into three screens:
//   - Input: free-text query entry
//   - Results: paginated search results, or a flat similar-recipes list
//   - Details: one recipe's ingredients and instructions in a viewport
//
// All screens share a unified container (RenderApplicationContainer) with a
// header, content area, and context-sensitive footer.
//
// # Framework Components
//
//   - bubbles/textinput: query entry
//   - bubbles/list: recipe result cards
//   - bubbles/viewport: scrolling recipe details
//   - bubbles/help + bubbles/key: context-aware key binding help
//   - lipgloss: styling and layout
//   - muesli/reflow: word wrapping for ingredient and instruction text
//
// # Screen Flow
//
// The user enters a query, browses results ten at a time, opens a recipe,
// and can pivot to recipes similar to the one on screen. Navigation state
// lives in session.Nav; the cache of fetched results lives in
// session.SearchSession. The coordinator (AppModel) performs one API fetch
// per user action, inline while handling the key press. There are no
// background fetches.
//
// # Error Handling
//
// A failed fetch never crashes a screen or abandons the session. The error
// is condensed to a short status line shown under the active screen's
// title, and the user keeps whatever results were already loaded.
//
// # Key Bindings
//
//   - Input: Enter search, Ctrl+C quit
//   - Results: ↑/↓ navigate, Enter view, n load more, p previous page,
//     s new search, q quit
//   - Similar list: ↑/↓ navigate, Enter view, esc/b back to recipe, q quit
//   - Details: ↑/↓ scroll, f find similar, esc/b back to results, q quit
package ui
