// Package oauth exchanges third-party authorization codes for the provider's view of the account.
package oauth

import (
	"context"
	"strings"

	errorvalues "github.com/limbo/clover/internal/error_values"
)

type UserInfo struct {
	ProviderUserID string
	Email          string
	Nickname       string
}

type Provider interface {
	Name() string
	// Exchanges authorization code and fetches the account it was issued for
	Exchange(ctx context.Context, code string) (*UserInfo, error)
}

type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider, len(providers))}
	for _, p := range providers {
		r.providers[strings.ToLower(p.Name())] = p
	}
	return r
}

func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[strings.ToLower(name)]
	if !ok {
		return nil, errorvalues.ErrUnsupportedProvider
	}
	return p, nil
}
