// Package auth resolves which Beds24 credential to use and exchanges it for
// an access token, persisting the resulting bundle between runs.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"booking-report-backend/internal/beds24"
	"booking-report-backend/internal/token"
)

// ErrNoCredentials is returned when no credential source is available.
var ErrNoCredentials = errors.New("no authentication credentials provided")

// AuthError wraps a failed exchange or refresh call.
type AuthError struct {
	Op  string
	Err error
}

func (e *AuthError) Error() string { return fmt.Sprintf("%s failed: %v", e.Op, e.Err) }

func (e *AuthError) Unwrap() error { return e.Err }

// Source tags where the access token of a successful authentication came
// from.
type Source string

const (
	SourceStored       Source = "stored"
	SourceRefreshed    Source = "refreshed"
	SourceLongLife     Source = "long_life_token"
	SourceRefreshToken Source = "refresh_token"
	SourceInviteCode   Source = "invite_code"
)

// Credentials are the explicit credential inputs a session resolves from, in
// place of the ambient environment fallback the service used to rely on.
type Credentials struct {
	LongLifeToken string
	RefreshToken  string
	InviteCode    string
}

// Merge fills empty fields from the fallback set. Per-request overrides win
// over configured credentials.
func (c Credentials) Merge(fallback Credentials) Credentials {
	if c.LongLifeToken == "" {
		c.LongLifeToken = fallback.LongLifeToken
	}
	if c.RefreshToken == "" {
		c.RefreshToken = fallback.RefreshToken
	}
	if c.InviteCode == "" {
		c.InviteCode = fallback.InviteCode
	}
	return c
}

// Result is the tagged outcome of a successful authentication.
type Result struct {
	AccessToken string
	Source      Source
}

// Session resolves credentials in a fixed order: stored bundle (refreshing
// if expired), long-life token, refresh token, invite code. The first usable
// source wins; each exchange is a single synchronous call with no retry.
type Session struct {
	store  *token.Store
	client *beds24.Client
	creds  Credentials
	now    func() time.Time
}

// NewSession creates a session over the given token store and API client,
// with configured fallback credentials.
func NewSession(store *token.Store, client *beds24.Client, creds Credentials) *Session {
	return &Session{
		store:  store,
		client: client,
		creds:  creds,
		now:    time.Now,
	}
}

// Authenticate resolves an access token, persisting the full bundle before
// returning. Supplied credentials override the configured ones field-wise.
func (s *Session) Authenticate(ctx context.Context, supplied Credentials) (*Result, error) {
	// 1. Stored bundle, refreshed first when expired.
	if stored := s.store.GetValid(); stored != nil {
		if stored.Expired(s.now()) {
			res, err := s.exchangeRefreshToken(ctx, stored.RefreshToken)
			if err != nil {
				return nil, err
			}
			return &Result{AccessToken: res, Source: SourceRefreshed}, nil
		}
		return &Result{AccessToken: stored.AccessToken, Source: SourceStored}, nil
	}

	creds := supplied.Merge(s.creds)

	// 2. Long-life token needs no exchange.
	if creds.LongLifeToken != "" {
		s.persist(&token.Bundle{
			AccessToken: creds.LongLifeToken,
			TokenType:   token.KindLongLife,
		})
		return &Result{AccessToken: creds.LongLifeToken, Source: SourceLongLife}, nil
	}

	// 3. Refresh token exchange.
	if creds.RefreshToken != "" {
		access, err := s.exchangeRefreshToken(ctx, creds.RefreshToken)
		if err != nil {
			return nil, err
		}
		return &Result{AccessToken: access, Source: SourceRefreshToken}, nil
	}

	// 4. Invite code setup.
	if creds.InviteCode != "" {
		tr, err := s.client.Setup(ctx, creds.InviteCode)
		if err != nil {
			return nil, &AuthError{Op: "invite code setup", Err: err}
		}
		expires := s.now().Add(time.Duration(tr.ExpiresIn) * time.Second)
		s.persist(&token.Bundle{
			AccessToken:  tr.Token,
			RefreshToken: tr.RefreshToken,
			TokenType:    token.KindRefresh,
			ExpiresAt:    &expires,
		})
		return &Result{AccessToken: tr.Token, Source: SourceInviteCode}, nil
	}

	// 5. Nothing left to try.
	return nil, ErrNoCredentials
}

// exchangeRefreshToken mints a new access token and persists it alongside
// the original refresh token, which the upstream does not rotate.
func (s *Session) exchangeRefreshToken(ctx context.Context, refreshToken string) (string, error) {
	tr, err := s.client.Refresh(ctx, refreshToken)
	if err != nil {
		return "", &AuthError{Op: "token refresh", Err: err}
	}
	expires := s.now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	s.persist(&token.Bundle{
		AccessToken:  tr.Token,
		RefreshToken: refreshToken,
		TokenType:    token.KindRefresh,
		ExpiresAt:    &expires,
	})
	return tr.Token, nil
}

// persist saves the bundle; a storage failure is reported but does not abort
// the authentication that produced the token.
func (s *Session) persist(b *token.Bundle) {
	if err := s.store.Save(b); err != nil {
		log.Printf("Warning: could not persist tokens: %v", err)
	}
}

// Clear drops the stored bundle, returning the session to its
// unauthenticated state.
func (s *Session) Clear() error {
	return s.store.Clear()
}
