// Package contact receives storefront contact form submissions.
package contact

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Submission is one contact form entry.
type Submission struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Message    string
	ReceivedAt time.Time
}

// Service records submissions in process memory for later pickup.
type Service struct {
	mu          sync.Mutex
	submissions []Submission
	now         func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

// WithNow overrides the clock, for tests.
func (s *Service) WithNow(now func() time.Time) {
	s.now = now
}

// Submit stores a submission and returns the recorded entry.
func (s *Service) Submit(ctx context.Context, name, email, message string) (Submission, error) {
	sub := Submission{
		ID:         uuid.New(),
		Name:       name,
		Email:      email,
		Message:    message,
		ReceivedAt: s.now(),
	}
	s.mu.Lock()
	s.submissions = append(s.submissions, sub)
	s.mu.Unlock()
	return sub, nil
}

// Submissions returns a snapshot of recorded entries in arrival order.
func (s *Service) Submissions() []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Submission, len(s.submissions))
	copy(out, s.submissions)
	return out
}
