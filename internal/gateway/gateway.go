// internal/gateway/gateway.go
//
// Remote Data Gateway contract.
//
// Context
// -------
// Every non-trivial capability of Launchpad — persistence, authentication,
// and row-level security — is delegated to an external hosted service.  This
// package defines the thin contract the rest of the app talks to, plus the
// shared error and session types.  Two drivers implement it: `rest` (the
// hosted service's HTTP API) and `sqlstore` (a self-hosted MySQL fallback).
//
// Records cross the contract as raw JSON; the synchronizers own the typed
// models.  Update may legitimately return a nil record on success when a
// row-security policy silently no-ops the write — callers must treat that as
// ambiguous and resynchronize, never as confirmation.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.

package gateway

import (
	"context"
	"encoding/json"
)

// Collection names exposed by the hosted service.
const (
	CollectionPrograms    = "programs"
	CollectionSubscribers = "subscribers"
)

// OrderCreatedAt is the default ordering column for both collections.
const OrderCreatedAt = "created_at"

// Gateway is the full contract: CRUD over named collections plus the auth
// sub-interface.  All methods are synchronous round trips; callers pass a
// context but the service defines no timeout of its own.
type Gateway interface {
	// Select fetches every record of collection ordered by orderBy.
	Select(ctx context.Context, collection, orderBy string, descending bool) ([]json.RawMessage, error)

	// Insert stores record and returns the canonical row with the
	// service-assigned id and timestamp.
	Insert(ctx context.Context, collection string, record any) (json.RawMessage, error)

	// Update replaces the record's mutable fields.  A nil record with a nil
	// error means the service accepted the write but returned nothing; the
	// caller must resynchronize.
	Update(ctx context.Context, collection string, id int64, record any) (json.RawMessage, error)

	// Delete removes the record by id.
	Delete(ctx context.Context, collection string, id int64) error

	Auth
}

// Session is the client-visible slice of an authenticated admin identity.
// The token state itself is owned by the service; we hold only a presence
// signal and the email for display.
type Session struct {
	Email       string `json:"email"`
	AccessToken string `json:"access_token"`
}

// Auth is the gateway's authentication sub-interface.  Session-state
// delivery is push-based: OnSessionChange fires on sign-in, sign-out, and
// any service-side invalidation, last write wins.
type Auth interface {
	Session(ctx context.Context) (*Session, error)
	OnSessionChange(fn func(*Session)) (cancel func())
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context) error
}
