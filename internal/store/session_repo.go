package store

import (
	"context"
	"fmt"

	"github.com/plaroindia/Pearl/ent"
	"github.com/plaroindia/Pearl/ent/session"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, s *Session) error {
	_, err := r.client.Session.Create().
		SetSessionID(s.SessionID).
		SetUserID(s.UserID).
		SetGoal(s.Goal).
		SetSkills(s.Skills).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*Session, error) {
	row, err := r.client.Session.Query().
		Where(session.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("session %q: %w", sessionID, ErrNotFound)
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return &Session{
		SessionID: row.SessionID,
		UserID:    row.UserID,
		Goal:      row.Goal,
		Skills:    row.Skills,
		CreatedAt: row.CreatedAt,
	}, nil
}
