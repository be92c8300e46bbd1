// Package session keeps in-progress assessment sessions outside the process
// so any instance can serve the next request of an attempt.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/SAP-F-2025/kumi-math-service/internal/quiz"
)

var ErrSessionNotFound = errors.New("session not found")

// DefaultTTL bounds how long an abandoned session is kept.
const DefaultTTL = 24 * time.Hour

type Store interface {
	Save(ctx context.Context, s *quiz.Session) error
	Get(ctx context.Context, id string) (*quiz.Session, error)
	Delete(ctx context.Context, id string) error
}
