package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Service records and reads audit events.
type Service struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger, now: time.Now}
}

// Record appends an event. Failures are logged and swallowed so the calling
// operation's outcome never depends on the trail. Safe on a nil receiver.
func (s *Service) Record(ctx context.Context, action, subject, actor, detail string) {
	if s == nil {
		return
	}
	event := Event{
		ID:        uuid.New(),
		Timestamp: s.now().UTC(),
		Action:    action,
		Subject:   subject,
		Actor:     actor,
		Detail:    detail,
	}
	if err := s.store.Append(ctx, event); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to append audit event",
			"action", action,
			"subject", subject,
			"error", err.Error(),
		)
	}
}

// Recent returns up to limit events, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]Event, error) {
	return s.store.ListRecent(ctx, limit)
}
