package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// TokenRevoker remembers revoked token ids in an expiring LRU. Entries live
// for maxTTL, which should be at least the token lifetime.
type TokenRevoker struct {
	revoked *expirable.LRU[string, struct{}]
}

func NewTokenRevoker(size int, maxTTL time.Duration) *TokenRevoker {
	return &TokenRevoker{revoked: expirable.NewLRU[string, struct{}](size, nil, maxTTL)}
}

func (r *TokenRevoker) Revoke(_ context.Context, tokenID string, _ time.Duration) error {
	r.revoked.Add(tokenID, struct{}{})
	return nil
}

func (r *TokenRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return r.revoked.Contains(tokenID), nil
}
