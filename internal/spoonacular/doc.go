// Package spoonacular provides an HTTP client for the Spoonacular recipe
// search API.
//
// The client covers the three read-only operations the application needs:
//
//   - Search: paginated free-text recipe search (GET /recipes/complexSearch)
//   - GetDetail: full recipe record with nutrition (GET /recipes/{id}/information)
//   - GetSimilar: similar-recipe lookup (GET /recipes/{id}/similar)
//
// # Usage Example
//
//	client := spoonacular.NewClient(os.Getenv(spoonacular.APIKeyEnvVar))
//
//	results, err := client.Search("pasta", 10, 0)
//	if err != nil {
//	    fmt.Println(spoonacular.GetShortErrorMessage(err))
//	    return
//	}
//
// # Retries
//
// Transient failures (timeouts, connection refused, HTTP 5xx) are retried
// with exponential backoff up to MaxRetries. Authentication, quota,
// not-found, and parse failures are never retried.
//
// # Error Handling
//
// All failures are returned as *APIError values carrying a category
// (network, auth, quota, not-found, HTTP, parse). Callers are expected to
// degrade them into user-visible messages; no error from this package
// should ever crash the UI. GetShortErrorMessage and GetTroubleshootingHint
// produce presentation-ready text.
//
// # Thread Safety
//
// Client instances are safe for concurrent use.
package spoonacular
