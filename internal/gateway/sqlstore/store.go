// internal/gateway/sqlstore/store.go
//
// Self-hosted MySQL driver for the Remote Data Gateway.
//
// Context
// -------
// Deployments without the hosted service can point Launchpad at their own
// database.  The driver speaks the same contract as the REST driver — raw
// JSON records in and out, the 23505 conflict code on duplicate subscriber
// emails, (nil, nil) from Update when no row was touched — so the
// synchronizers cannot tell the two apart.
//
// Schema
// ------
//	program     (id PK AI, name JSON, description JSON, url, icon,
//	             is_new, created_at)
//	subscriber  (id PK AI, email UNIQUE, created_at)
//	admin_user  (id PK AI, email UNIQUE, password_hash)
//
// The name and description columns hold the localized-object form; legacy
// plain-string rows are tolerated by the model layer, not here.
//
// Notes
// -----
// • MySQL duplicate-key (error 1062) is translated to the service's 23505
//   code so the conflict path stays driver-agnostic.
// • Oxford commas, two spaces after periods.

package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/bimpartner/launchpad/internal/gateway"
	"github.com/bimpartner/launchpad/internal/metrics"
)

// Compile-time assertion: *Store satisfies gateway.Gateway.
var _ gateway.Gateway = (*Store)(nil)

// Store is the MySQL-backed gateway driver.  Safe for concurrent use.
type Store struct {
	db      *sqlx.DB
	session gateway.SessionState
}

// New wraps an open pool.  A nil db yields a driver whose every call
// reports gateway.ErrNotConfigured.
func New(db *sqlx.DB) *Store { return &Store{db: db} }

/*──────────────────────────── row shapes ───────────────────────────────────*/

type programRow struct {
	ID          int64     `db:"id"`
	Name        []byte    `db:"name"`
	Description []byte    `db:"description"`
	URL         string    `db:"url"`
	Icon        string    `db:"icon"`
	IsNew       bool      `db:"is_new"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r programRow) record() map[string]any {
	return map[string]any{
		"id":          r.ID,
		"name":        json.RawMessage(r.Name),
		"description": json.RawMessage(r.Description),
		"url":         r.URL,
		"icon":        r.Icon,
		"is_new":      r.IsNew,
		"created_at":  r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

type subscriberRow struct {
	ID        int64     `db:"id"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

func (r subscriberRow) record() map[string]any {
	return map[string]any{
		"id":         r.ID,
		"email":      r.Email,
		"created_at": r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// programFields is the mutable slice of a program record as sent by callers.
type programFields struct {
	Name        json.RawMessage `json:"name"`
	Description json.RawMessage `json:"description"`
	URL         string          `json:"url"`
	Icon        string          `json:"icon"`
	IsNew       bool            `json:"is_new"`
}

/*──────────────────────────── collections ──────────────────────────────────*/

// Select fetches all records of collection.  Only created_at ordering is
// supported; ties break by id in the same direction so the order is stable.
func (s *Store) Select(ctx context.Context, collection, orderBy string, descending bool) ([]json.RawMessage, error) {
	if s.db == nil {
		return nil, gateway.ErrNotConfigured
	}
	if orderBy != gateway.OrderCreatedAt {
		return nil, fmt.Errorf("sqlstore: unsupported order column %q", orderBy)
	}
	metrics.GatewayRequestsTotal.WithLabelValues(collection, "select").Inc()

	dir := "ASC"
	if descending {
		dir = "DESC"
	}

	switch collection {
	case gateway.CollectionPrograms:
		var rows []programRow
		q := fmt.Sprintf(`SELECT id, name, description, url, icon, is_new, created_at FROM program ORDER BY created_at %s, id %s`, dir, dir)
		if err := s.db.SelectContext(ctx, &rows, q); err != nil {
			return nil, s.fail(collection, "select", err)
		}
		out := make([]json.RawMessage, 0, len(rows))
		for _, r := range rows {
			raw, err := json.Marshal(r.record())
			if err != nil {
				return nil, err
			}
			out = append(out, raw)
		}
		return out, nil

	case gateway.CollectionSubscribers:
		var rows []subscriberRow
		q := fmt.Sprintf(`SELECT id, email, created_at FROM subscriber ORDER BY created_at %s, id %s`, dir, dir)
		if err := s.db.SelectContext(ctx, &rows, q); err != nil {
			return nil, s.fail(collection, "select", err)
		}
		out := make([]json.RawMessage, 0, len(rows))
		for _, r := range rows {
			raw, err := json.Marshal(r.record())
			if err != nil {
				return nil, err
			}
			out = append(out, raw)
		}
		return out, nil
	}
	return nil, fmt.Errorf("sqlstore: unknown collection %q", collection)
}

// Insert stores record and returns the canonical row.
func (s *Store) Insert(ctx context.Context, collection string, record any) (json.RawMessage, error) {
	if s.db == nil {
		return nil, gateway.ErrNotConfigured
	}
	metrics.GatewayRequestsTotal.WithLabelValues(collection, "insert").Inc()

	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	switch collection {
	case gateway.CollectionPrograms:
		var f programFields
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, err
		}
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO program (name, description, url, icon, is_new, created_at) VALUES (?, ?, ?, ?, ?, NOW())`,
			[]byte(f.Name), []byte(f.Description), f.URL, f.Icon, f.IsNew)
		if err != nil {
			return nil, s.fail(collection, "insert", err)
		}
		id, _ := res.LastInsertId()
		return s.fetchProgram(ctx, id)

	case gateway.CollectionSubscribers:
		var f struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, err
		}
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO subscriber (email, created_at) VALUES (?, NOW())`, f.Email)
		if err != nil {
			return nil, s.fail(collection, "insert", err)
		}
		id, _ := res.LastInsertId()
		var row subscriberRow
		if err := s.db.GetContext(ctx, &row,
			`SELECT id, email, created_at FROM subscriber WHERE id = ?`, id); err != nil {
			return nil, s.fail(collection, "insert", err)
		}
		return json.Marshal(row.record())
	}
	return nil, fmt.Errorf("sqlstore: unknown collection %q", collection)
}

// Update replaces the program's mutable fields.  Zero rows touched returns
// (nil, nil) so the caller resynchronizes, mirroring the hosted driver's
// silent-policy behavior.
func (s *Store) Update(ctx context.Context, collection string, id int64, record any) (json.RawMessage, error) {
	if s.db == nil {
		return nil, gateway.ErrNotConfigured
	}
	if collection != gateway.CollectionPrograms {
		return nil, fmt.Errorf("sqlstore: collection %q is not updatable", collection)
	}
	metrics.GatewayRequestsTotal.WithLabelValues(collection, "update").Inc()

	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	var f programFields
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE program SET name = ?, description = ?, url = ?, icon = ?, is_new = ? WHERE id = ?`,
		[]byte(f.Name), []byte(f.Description), f.URL, f.Icon, f.IsNew, id)
	if err != nil {
		return nil, s.fail(collection, "update", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, nil
	}
	return s.fetchProgram(ctx, id)
}

// Delete removes the record by id.
func (s *Store) Delete(ctx context.Context, collection string, id int64) error {
	if s.db == nil {
		return gateway.ErrNotConfigured
	}
	metrics.GatewayRequestsTotal.WithLabelValues(collection, "delete").Inc()

	var table string
	switch collection {
	case gateway.CollectionPrograms:
		table = "program"
	case gateway.CollectionSubscribers:
		table = "subscriber"
	default:
		return fmt.Errorf("sqlstore: unknown collection %q", collection)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id); err != nil {
		return s.fail(collection, "delete", err)
	}
	return nil
}

/*──────────────────────────── helpers ──────────────────────────────────────*/

func (s *Store) fetchProgram(ctx context.Context, id int64) (json.RawMessage, error) {
	var row programRow
	if err := s.db.GetContext(ctx, &row,
		`SELECT id, name, description, url, icon, is_new, created_at FROM program WHERE id = ?`, id); err != nil {
		return nil, s.fail(gateway.CollectionPrograms, "fetch", err)
	}
	return json.Marshal(row.record())
}

// fail counts the error and translates driver-level failures into the
// gateway taxonomy.  MySQL 1062 becomes the 23505 conflict code.
func (s *Store) fail(collection, op string, err error) error {
	metrics.GatewayErrorsTotal.WithLabelValues(collection, op).Inc()

	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == 1062 {
		return &gateway.Error{Code: gateway.CodeUniqueViolation, Message: me.Message}
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &gateway.Error{Message: "record not found"}
	}
	return err
}
