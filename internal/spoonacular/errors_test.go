package spoonacular

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"
	"testing"
	"time"
)

// timeoutError implements net.Error with Timeout() == true
type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassifyNetworkError_Timeout(t *testing.T) {
	classified := ClassifyNetworkError(timeoutError{}, "/recipes/complexSearch")

	if classified.Type != ErrTypeTimeout {
		t.Errorf("Type = %v, want %v", classified.Type, ErrTypeTimeout)
	}
	if !classified.Retryable {
		t.Error("timeouts should be retryable")
	}
}

func TestClassifyNetworkError_DNS(t *testing.T) {
	dnsErr := &net.DNSError{Name: "api.spoonacular.com", Err: "no such host"}

	classified := ClassifyNetworkError(dnsErr, "/recipes/complexSearch")

	if classified.Type != ErrTypeDNS {
		t.Errorf("Type = %v, want %v", classified.Type, ErrTypeDNS)
	}
	if classified.Retryable {
		t.Error("DNS failures should not be retryable")
	}
	if !strings.Contains(classified.Message, "api.spoonacular.com") {
		t.Errorf("Message = %q, want the failing hostname in it", classified.Message)
	}
}

func TestClassifyNetworkError_ConnectionRefused(t *testing.T) {
	opErr := &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}

	classified := ClassifyNetworkError(opErr, "/recipes/complexSearch")

	if classified.Type != ErrTypeConnectionRefused {
		t.Errorf("Type = %v, want %v", classified.Type, ErrTypeConnectionRefused)
	}
	if !classified.Retryable {
		t.Error("connection refused should be retryable")
	}
}

func TestClassifyNetworkError_UnwrapsURLError(t *testing.T) {
	// http.Client wraps transport failures in *url.Error
	wrapped := &url.Error{
		Op:  "Get",
		URL: "https://api.spoonacular.com/recipes/complexSearch",
		Err: &net.DNSError{Name: "api.spoonacular.com", Err: "no such host"},
	}

	classified := ClassifyNetworkError(wrapped, "/recipes/complexSearch")

	if classified.Type != ErrTypeDNS {
		t.Errorf("Type = %v, want %v (classified through url.Error)", classified.Type, ErrTypeDNS)
	}
}

func TestClassifyNetworkError_GenericFallback(t *testing.T) {
	classified := ClassifyNetworkError(errors.New("something odd"), "/recipes/1/information")

	if classified.Type != ErrTypeNetwork {
		t.Errorf("Type = %v, want %v", classified.Type, ErrTypeNetwork)
	}
	if !classified.Retryable {
		t.Error("generic network errors should be retryable")
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
		want bool
	}{
		{"auth", NewAuthError("bad key"), IsAuthError, true},
		{"quota", NewQuotaError("used up"), IsQuotaError, true},
		{"not found", NewNotFoundError("no recipe"), IsNotFoundError, true},
		{"parse", NewParseError("bad json", errors.New("boom")), IsParseError, true},
		{"network", NewNetworkError("down", errors.New("boom")), IsNetworkError, true},
		{"auth is not quota", NewAuthError("bad key"), IsQuotaError, false},
		{"plain error", errors.New("boom"), IsAuthError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorPredicates_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("search failed: %w", NewQuotaError("used up"))

	if !IsQuotaError(wrapped) {
		t.Error("IsQuotaError should see through fmt.Errorf wrapping")
	}
}

func TestIsRetryable(t *testing.T) {
	if IsRetryable(NewAuthError("bad key")) {
		t.Error("auth errors must not be retried")
	}
	if IsRetryable(NewQuotaError("used up")) {
		t.Error("quota errors must not be retried")
	}
	if IsRetryable(NewHTTPError(400, "bad request")) {
		t.Error("4xx errors must not be retried")
	}
	if !IsRetryable(NewHTTPError(503, "unavailable")) {
		t.Error("5xx errors should be retried")
	}
	if IsRetryable(errors.New("boom")) {
		t.Error("unknown errors must not be retried")
	}
}

func TestAPIError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewNetworkError("request failed", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the underlying cause")
	}
}

func TestGetShortErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{NewAuthError("x"), "Authentication failed - check your API key"},
		{NewQuotaError("x"), "API quota exhausted - try again tomorrow"},
		{NewNotFoundError("x"), "Recipe not found"},
		{NewHTTPError(503, "x"), "Recipe service error (HTTP 503)"},
		{errors.New("plain"), "plain"},
	}

	for _, tt := range tests {
		if got := GetShortErrorMessage(tt.err); got != tt.want {
			t.Errorf("GetShortErrorMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestGetTroubleshootingHint(t *testing.T) {
	hint := GetTroubleshootingHint(NewAuthError("bad key"))
	if !strings.Contains(hint, "SPOONACULAR_API_KEY") {
		t.Errorf("auth hint should name the env var, got:\n%s", hint)
	}

	hint = GetTroubleshootingHint(NewQuotaError("used up"))
	if !strings.Contains(hint, "quota") {
		t.Errorf("quota hint should mention the quota, got:\n%s", hint)
	}
}

func TestRetryDelayDefaultsAreSane(t *testing.T) {
	if DefaultRetryDelay <= 0 || DefaultMaxRetryDelay < DefaultRetryDelay {
		t.Errorf("retry delay defaults inconsistent: %v / %v",
			DefaultRetryDelay, DefaultMaxRetryDelay)
	}
	if DefaultTimeout < time.Second {
		t.Errorf("DefaultTimeout = %v, suspiciously low", DefaultTimeout)
	}
}
