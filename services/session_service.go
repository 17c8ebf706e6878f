package services

import (
	"encoding/json"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/QUARTER-salon/practice-tracker/models"
	"github.com/QUARTER-salon/practice-tracker/utils"
)

// SessionService owns the server-side session slots. Each session row
// holds a JSON snapshot of the staff record taken at login; the caller
// carries an HS256-signed token whose subject is the session ID.
type SessionService struct {
	db     *gorm.DB
	logger *zap.Logger
	secret []byte
	ttl    time.Duration
}

// NewSessionService builds a session service. ttlMinutes falls back to
// 60 when not positive.
func NewSessionService(db *gorm.DB, logger *zap.Logger, secret string, ttlMinutes int) *SessionService {
	if ttlMinutes <= 0 {
		ttlMinutes = 60
	}
	return &SessionService{
		db:     db,
		logger: logger,
		secret: []byte(secret),
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Create stores a session snapshot for the staff record and returns a
// signed token that references it.
func (s *SessionService) Create(staff *models.Staff) (string, error) {
	snapshot, err := json.Marshal(staff)
	if err != nil {
		return "", utils.NewPersistence(err)
	}

	now := time.Now()
	session := models.Session{
		ID:         uuid.NewString(),
		EmployeeID: staff.EmployeeID,
		Snapshot:   string(snapshot),
		CreatedAt:  now,
		ExpiresAt:  now.Add(s.ttl),
	}
	if err := s.db.Create(&session).Error; err != nil {
		return "", utils.NewPersistence(err)
	}

	claims := &sessionClaims{
		SessionID: session.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", utils.NewPersistence(err)
	}
	return signed, nil
}

// Resolve maps a token back to the staff snapshot. Missing, expired,
// or corrupt sessions all resolve to anonymous; a corrupt snapshot is
// deleted on sight and never surfaces a parse error to the caller.
func (s *SessionService) Resolve(token string) (*models.Staff, string, bool) {
	if token == "" {
		return nil, "", false
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.SessionID == "" {
		return nil, "", false
	}

	var session models.Session
	if err := s.db.First(&session, "id = ?", claims.SessionID).Error; err != nil {
		return nil, "", false
	}

	if session.Expired(time.Now()) {
		s.drop(session.ID)
		return nil, "", false
	}

	var staff models.Staff
	if err := json.Unmarshal([]byte(session.Snapshot), &staff); err != nil || staff.EmployeeID == "" {
		s.logger.Warn("deleting corrupt session snapshot", zap.String("session_id", session.ID))
		s.drop(session.ID)
		return nil, "", false
	}

	return &staff, session.ID, true
}

// Destroy removes a session slot. It is idempotent: destroying an
// absent session succeeds.
func (s *SessionService) Destroy(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.db.Delete(&models.Session{}, "id = ?", sessionID).Error; err != nil {
		return utils.NewPersistence(err)
	}
	return nil
}

// drop deletes a session row, logging failures only.
func (s *SessionService) drop(sessionID string) {
	if err := s.db.Delete(&models.Session{}, "id = ?", sessionID).Error; err != nil {
		s.logger.Warn("failed to delete session", zap.String("session_id", sessionID), zap.Error(err))
	}
}
