// Package newsletter manages storefront mailing list signups.
package newsletter

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bijou-shop/bijou-api/internal/platform/httpx"
)

// Subscription records a confirmed signup.
type Subscription struct {
	ID           uuid.UUID
	Email        string
	SubscribedAt time.Time
}

// Service keeps the subscriber set in process memory. Unlike the catalog this
// state is mutable, so access is guarded by a mutex.
type Service struct {
	mu     sync.Mutex
	byMail map[string]Subscription
	now    func() time.Time
}

func NewService() *Service {
	return &Service{
		byMail: make(map[string]Subscription),
		now:    time.Now,
	}
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) {
	s.now = now
}

// Subscribe adds an email to the subscriber set. Emails are compared
// case-insensitively after trimming. A repeated signup is a duplicate error.
func (s *Service) Subscribe(ctx context.Context, email string) (Subscription, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	if key == "" {
		return Subscription{}, fmt.Errorf("email is required: %w", httpx.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byMail[key]; ok {
		return Subscription{}, fmt.Errorf("email is already subscribed: %w", httpx.ErrDuplicate)
	}
	sub := Subscription{
		ID:           uuid.New(),
		Email:        key,
		SubscribedAt: s.now(),
	}
	s.byMail[key] = sub
	return sub, nil
}

// Count reports the current number of subscribers.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byMail)
}
