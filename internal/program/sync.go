// internal/program/sync.go
//
// Program synchronizer — the in-memory mirror of the programs collection.
//
// Context
// -------
// Handlers never touch the gateway for reads; they read this mirror.  Every
// mutation round-trips through the gateway first and reconciles the mirror
// from the canonical row the gateway echoes back, so the mirror only ever
// contains gateway-acknowledged state.  An ambiguous update — the gateway
// accepted the request but returned no row — forces a wholesale reload
// instead of guessing.
//
// Workflow
// --------
//	Load    → select all, replace the mirror; on failure the mirror empties.
//	Create  → validate, insert, prepend the canonical row at index 0.
//	Update  → replace mutable fields, swap the matching entry in place.
//	Delete  → remove the matching entry, order of the rest untouched.
//
// Notes
// -----
// • Concurrent Loads are collapsed through singleflight; only one gateway
//   select is in flight at a time.
// • Oxford commas, two spaces after periods.

package program

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/bimpartner/launchpad/internal/gateway"
	"github.com/bimpartner/launchpad/internal/metrics"
)

// validate is shared; validator instances cache struct metadata.
var validate = validator.New()

// Synchronizer owns the mirror.  Safe for concurrent use.
type Synchronizer struct {
	gw gateway.Gateway

	mu   sync.RWMutex
	list []Program

	group singleflight.Group
}

// NewSynchronizer returns an empty mirror bound to gw.  Call Load before
// serving reads.
func NewSynchronizer(gw gateway.Gateway) *Synchronizer {
	return &Synchronizer{gw: gw}
}

/*──────────────────────────── reads ────────────────────────────────────────*/

// Programs returns a copy of the mirror in display order, newest first.
func (s *Synchronizer) Programs() []Program {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Program, len(s.list))
	copy(out, s.list)
	return out
}

// Get returns the mirrored program by id.
func (s *Synchronizer) Get(id int64) (Program, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.list {
		if p.ID == id {
			return p, true
		}
	}
	return Program{}, false
}

/*──────────────────────────── load ─────────────────────────────────────────*/

// Load replaces the mirror with the gateway's full collection, newest
// first.  On any failure the mirror is emptied rather than left stale or
// partially filled.  Concurrent callers share one gateway round-trip.
func (s *Synchronizer) Load(ctx context.Context) error {
	_, err, _ := s.group.Do("load", func() (any, error) {
		rows, err := s.gw.Select(ctx, gateway.CollectionPrograms, gateway.OrderCreatedAt, true)
		if err != nil {
			s.replace(nil)
			zap.S().Errorw("program load failed", "error", err)
			return nil, err
		}

		list := make([]Program, 0, len(rows))
		for _, raw := range rows {
			var p Program
			if err := json.Unmarshal(raw, &p); err != nil {
				s.replace(nil)
				return nil, fmt.Errorf("program: decode record: %w", err)
			}
			list = append(list, p)
		}
		s.replace(list)
		return nil, nil
	})
	return err
}

/*──────────────────────────── mutations ────────────────────────────────────*/

// Create validates p, inserts it, and prepends the canonical row so it is
// list index 0.  Validation failures never reach the gateway.
func (s *Synchronizer) Create(ctx context.Context, p Program) (Program, error) {
	if err := validate.Struct(p); err != nil {
		return Program{}, err
	}

	row, err := s.gw.Insert(ctx, gateway.CollectionPrograms, mutableOf(p))
	if err != nil {
		return Program{}, err
	}

	var created Program
	if err := json.Unmarshal(row, &created); err != nil {
		return Program{}, fmt.Errorf("program: decode created record: %w", err)
	}

	s.mu.Lock()
	s.list = prepend(s.list, created)
	metrics.CachedPrograms.Set(float64(len(s.list)))
	s.mu.Unlock()
	return created, nil
}

// Update replaces the mutable fields of the record identified by p.ID.  An
// ambiguous gateway reply — accepted but no row echoed — triggers a full
// Load so the mirror reflects whatever the store actually did.
func (s *Synchronizer) Update(ctx context.Context, p Program) (Program, error) {
	if err := validate.Struct(p); err != nil {
		return Program{}, err
	}

	row, err := s.gw.Update(ctx, gateway.CollectionPrograms, p.ID, mutableOf(p))
	if err != nil {
		return Program{}, err
	}
	if row == nil {
		zap.S().Warnw("ambiguous program update, resynchronizing", "id", p.ID)
		if err := s.Load(ctx); err != nil {
			return Program{}, err
		}
		got, ok := s.Get(p.ID)
		if !ok {
			return Program{}, fmt.Errorf("program: record %d vanished after update", p.ID)
		}
		return got, nil
	}

	var updated Program
	if err := json.Unmarshal(row, &updated); err != nil {
		return Program{}, fmt.Errorf("program: decode updated record: %w", err)
	}

	s.mu.Lock()
	s.list = replaceByID(s.list, updated)
	s.mu.Unlock()
	return updated, nil
}

// Delete removes the record by id from the store and then from the mirror.
func (s *Synchronizer) Delete(ctx context.Context, id int64) error {
	if err := s.gw.Delete(ctx, gateway.CollectionPrograms, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.list = removeByID(s.list, id)
	metrics.CachedPrograms.Set(float64(len(s.list)))
	s.mu.Unlock()
	return nil
}

/*──────────────────────────── reconciliation ───────────────────────────────*/

func (s *Synchronizer) replace(list []Program) {
	s.mu.Lock()
	s.list = list
	metrics.CachedPrograms.Set(float64(len(list)))
	s.mu.Unlock()
}

func prepend(list []Program, p Program) []Program {
	out := make([]Program, 0, len(list)+1)
	out = append(out, p)
	return append(out, list...)
}

func replaceByID(list []Program, p Program) []Program {
	for i := range list {
		if list[i].ID == p.ID {
			list[i] = p
			break
		}
	}
	return list
}

func removeByID(list []Program, id int64) []Program {
	for i := range list {
		if list[i].ID == id {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
