package waitlist

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/titans986/waiting-list-site/internal/logging"
)

// Store records a waitlist signup. Implementations must be safe for
// concurrent use; the handler reports success regardless of the result.
type Store interface {
	Record(ctx context.Context, email string) error
}

// LogStore records signups as log lines only. It stands in until a real
// mailing-list provider is plugged in behind Store.
type LogStore struct {
	newID func() uuid.UUID
}

func NewLogStore() *LogStore {
	return &LogStore{newID: uuid.New}
}

// Record logs the email with a fresh signup id on the request's logger.
func (s *LogStore) Record(ctx context.Context, email string) error {
	logging.FromContext(ctx).WithFields(logrus.Fields{
		"email":     email,
		"signup_id": s.newID().String(),
	}).Info("Received email")
	return nil
}
