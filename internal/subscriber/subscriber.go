// internal/subscriber/subscriber.go
//
// Subscriber records and the newsletter sign-up path.
//
// Context
// -------
// The public site offers a one-field email capture; the admin console lists
// and prunes the resulting records.  Sign-up is the only anonymous write in
// the system, so its failure modes are user-facing: a duplicate email maps
// to the signupConflict message key, anything else to signupError.  The
// mirror mechanics match the program synchronizer — gateway-acknowledged
// state only, wholesale replace on load, empty on failure.
//
// Notes
// -----
// • Email syntax is checked locally before the gateway sees it; the store's
//   UNIQUE constraint remains the source of truth for duplicates.
// • Oxford commas, two spaces after periods.

package subscriber

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/bimpartner/launchpad/internal/gateway"
	"github.com/bimpartner/launchpad/internal/metrics"
)

var validate = validator.New()

// Subscriber is one captured newsletter email.
type Subscriber struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// signup is the wire shape of the anonymous insert.
type signup struct {
	Email string `json:"email" validate:"required,email"`
}

// Result classifies a sign-up attempt for the message layer.  The values
// double as translation keys.
type Result string

const (
	ResultSuccess  Result = "signupSuccess"
	ResultConflict Result = "signupConflict"
	ResultInvalid  Result = "invalidEmail"
	ResultFailure  Result = "signupError"
)

// Synchronizer mirrors the subscribers collection.  Safe for concurrent use.
type Synchronizer struct {
	gw gateway.Gateway

	mu   sync.RWMutex
	list []Subscriber

	group singleflight.Group
}

// NewSynchronizer returns an empty mirror bound to gw.
func NewSynchronizer(gw gateway.Gateway) *Synchronizer {
	return &Synchronizer{gw: gw}
}

// Subscribers returns a copy of the mirror, newest first.
func (s *Synchronizer) Subscribers() []Subscriber {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Subscriber, len(s.list))
	copy(out, s.list)
	return out
}

// Count returns the mirror size without copying.
func (s *Synchronizer) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.list)
}

// Load replaces the mirror with the gateway's full collection.  Failure
// empties the mirror; concurrent callers share one round-trip.
func (s *Synchronizer) Load(ctx context.Context) error {
	_, err, _ := s.group.Do("load", func() (any, error) {
		rows, err := s.gw.Select(ctx, gateway.CollectionSubscribers, gateway.OrderCreatedAt, true)
		if err != nil {
			s.replace(nil)
			zap.S().Errorw("subscriber load failed", "error", err)
			return nil, err
		}

		list := make([]Subscriber, 0, len(rows))
		for _, raw := range rows {
			var sub Subscriber
			if err := json.Unmarshal(raw, &sub); err != nil {
				s.replace(nil)
				return nil, fmt.Errorf("subscriber: decode record: %w", err)
			}
			list = append(list, sub)
		}
		s.replace(list)
		return nil, nil
	})
	return err
}

// Signup captures email.  The returned Result is the translation key the
// caller should surface; err carries the underlying cause for the log line
// and is nil for ResultSuccess and ResultInvalid.
func (s *Synchronizer) Signup(ctx context.Context, email string) (Result, error) {
	email = strings.TrimSpace(email)
	if err := validate.Struct(signup{Email: email}); err != nil {
		return ResultInvalid, nil
	}

	row, err := s.gw.Insert(ctx, gateway.CollectionSubscribers, signup{Email: email})
	if err != nil {
		if gateway.IsConflict(err) {
			metrics.SignupConflictTotal.Inc()
			return ResultConflict, err
		}
		return ResultFailure, err
	}

	var created Subscriber
	if err := json.Unmarshal(row, &created); err != nil {
		return ResultFailure, fmt.Errorf("subscriber: decode created record: %w", err)
	}

	s.mu.Lock()
	s.list = append([]Subscriber{created}, s.list...)
	metrics.CachedSubscribers.Set(float64(len(s.list)))
	s.mu.Unlock()
	metrics.SignupTotal.Inc()
	return ResultSuccess, nil
}

// Delete removes the record by id from the store and then from the mirror.
func (s *Synchronizer) Delete(ctx context.Context, id int64) error {
	if err := s.gw.Delete(ctx, gateway.CollectionSubscribers, id); err != nil {
		return err
	}
	s.mu.Lock()
	for i := range s.list {
		if s.list[i].ID == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			break
		}
	}
	metrics.CachedSubscribers.Set(float64(len(s.list)))
	s.mu.Unlock()
	return nil
}

func (s *Synchronizer) replace(list []Subscriber) {
	s.mu.Lock()
	s.list = list
	metrics.CachedSubscribers.Set(float64(len(list)))
	s.mu.Unlock()
}
