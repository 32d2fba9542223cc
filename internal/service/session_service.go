package service

import (
	"fmt"
	"time"

	"watchlist/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultSessionTTL = 30 * 24 * time.Hour

// sessionClaims is the signed payload of the session cookie.
type sessionClaims struct {
	jwt.RegisteredClaims
	UserID  int      `json:"uid,omitempty"`
	Flashes []string `json:"flashes,omitempty"`
}

// SessionService signs sessions with HS256.
type SessionService struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewSessionService(secretKey string, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionService{key: []byte(secretKey), ttl: ttl, now: time.Now}
}

// TTL is the lifetime of an encoded session.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

func (s *SessionService) EncodeSession(sess models.Session) (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID:  sess.UserID,
		Flashes: sess.Flashes,
	})
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

// DecodeSession verifies the signature and expiry. Any failure is reported
// as ErrInvalidSession.
func (s *SessionService) DecodeSession(raw string) (models.Session, error) {
	token, err := jwt.ParseWithClaims(raw, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return models.Session{}, ErrInvalidSession
	}
	return models.Session{UserID: claims.UserID, Flashes: claims.Flashes}, nil
}
