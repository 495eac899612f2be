package application

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/autoplus/concesionaria/internal/domain/entity"
	"github.com/autoplus/concesionaria/pkg/helpers"
)

func nowRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// startSession materializes the Session for an authenticated user, signs its
// token and mirrors it to Redis when configured.
func (s *Service) startSession(ctx context.Context, u *entity.User) (*entity.Session, error) {
	sess := &entity.Session{
		ID:           uuid.NewString(),
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		RegisteredAt: u.RegisteredAt,
	}

	if s.JWT != nil {
		token, exp, err := s.JWT.GenerateSessionToken(sess.ID, sess.Email, sess.Role.String())
		if err != nil {
			s.log().WithError(err).WithField("email", u.Email).Error("generate session token failed")
			return nil, err
		}
		sess.Token, sess.ExpiresAt = token, exp
	}

	if s.Redis != nil {
		fields := map[string]any{
			"user_id":    u.ID,
			"email":      u.Email,
			"name":       u.Name,
			"role":       u.Role.String(),
			"sid":        sess.ID,
			"created_at": nowRFC3339(s.now()),
		}
		ttl := 24 * time.Hour
		if s.JWT != nil && s.JWT.TTL > 0 {
			ttl = s.JWT.TTL
		}
		if err := helpers.RedisPutSession(ctx, s.Redis, sess.ID, fields, ttl); err != nil {
			s.log().WithError(err).WithField("key", helpers.SessionKey(sess.ID)).Warn("redis pipeline failed")
		}
	}

	s.log().WithField("sid", sess.ID).WithField("email", sess.Email).WithField("role", sess.Role.String()).Info("session started")
	return sess, nil
}

// VerifySession checks that sess is still valid. Sessions without a token are
// accepted when no JWT manager is configured.
func (s *Service) VerifySession(ctx context.Context, sess *entity.Session) error {
	if sess == nil {
		return ErrForbidden
	}
	if s.JWT == nil {
		return nil
	}
	claims, err := s.JWT.ParseSessionToken(sess.Token)
	if err != nil {
		s.log().WithError(err).WithField("sid", sess.ID).Info("session expired")
		return ErrSessionExpired
	}
	if claims.SessionID != sess.ID || claims.Email != sess.Email || claims.Role != sess.Role.String() {
		return ErrSessionExpired
	}
	return nil
}

// Logout discards the session's Redis mirror. The caller drops sess.
func (s *Service) Logout(ctx context.Context, sess *entity.Session) {
	if sess == nil {
		return
	}
	if s.Redis != nil {
		if err := helpers.RedisDel(ctx, s.Redis, helpers.SessionKey(sess.ID)); err != nil {
			s.log().WithError(err).WithField("sid", sess.ID).Warn("redis delete failed")
		}
	}
	s.log().WithField("sid", sess.ID).Info("session closed")
}
