// Package auth supplies the identity collaborator. The core only needs to
// know which user, if any, a request belongs to; how that identity is
// established stays behind this interface.
package auth

import "net/http"

// Provider resolves the user identity for a request, or reports none.
type Provider interface {
	CurrentUser(r *http.Request) (string, bool)
}

// HeaderProvider trusts the X-User-ID header set by the fronting gateway.
type HeaderProvider struct{}

func (HeaderProvider) CurrentUser(r *http.Request) (string, bool) {
	id := r.Header.Get("X-User-ID")
	return id, id != ""
}

// StaticProvider always returns the same user. Test helper.
type StaticProvider struct {
	UserID string
}

func (s StaticProvider) CurrentUser(*http.Request) (string, bool) {
	return s.UserID, s.UserID != ""
}
