package services

import (
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/QUARTER-salon/practice-tracker/models"
	"github.com/QUARTER-salon/practice-tracker/utils"
)

// AuthService resolves caller identities against the staff roster and
// manages the login/logout lifecycle.
type AuthService struct {
	db       *gorm.DB
	logger   *zap.Logger
	sessions *SessionService
}

// NewAuthService builds an auth service.
func NewAuthService(db *gorm.DB, logger *zap.Logger, sessions *SessionService) *AuthService {
	return &AuthService{db: db, logger: logger, sessions: sessions}
}

// LoginWithCredentials checks an employee-ID/password pair and opens a
// session. The employee ID matches loosely, so "0042" finds a roster
// row stored as 42. Password verification is bcrypt only.
func (a *AuthService) LoginWithCredentials(employeeID, password string) (*models.Staff, string, error) {
	if strings.TrimSpace(employeeID) == "" || password == "" {
		return nil, "", utils.NewValidationError("employee ID and password are required")
	}

	staff, err := a.FindByEmployeeID(employeeID)
	if err != nil {
		return nil, "", err
	}
	if staff == nil {
		return nil, "", utils.NewNotFound("staff record not found")
	}

	if utils.ComparePassword(staff.PasswordHash, password) != nil {
		return nil, "", utils.NewInvalidCredentials()
	}

	token, err := a.sessions.Create(staff)
	if err != nil {
		return nil, "", err
	}
	a.logger.Info("login", zap.String("employee_id", staff.EmployeeID), zap.String("method", "credentials"))
	return staff, token, nil
}

// LoginWithFederatedEmail opens a session for a verified email taken
// from the identity provider's validated token. The email is trusted;
// it is never user-supplied.
func (a *AuthService) LoginWithFederatedEmail(email string) (*models.Staff, string, error) {
	if email == "" {
		return nil, "", utils.NewValidationError("the identity provider did not supply an email address")
	}

	var staff models.Staff
	if err := a.db.Where("email = ?", email).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", utils.NewNotFound("staff record not found, contact the system administrator")
		}
		return nil, "", utils.NewPersistence(err)
	}

	token, err := a.sessions.Create(&staff)
	if err != nil {
		return nil, "", err
	}
	a.logger.Info("login", zap.String("employee_id", staff.EmployeeID), zap.String("method", "federated"))
	return &staff, token, nil
}

// Logout destroys the session slot; it always succeeds unless the
// store itself errors.
func (a *AuthService) Logout(sessionID string) error {
	return a.sessions.Destroy(sessionID)
}

// IsAdminEmail resolves the email against the roster and evaluates the
// admin flag. Any lookup failure answers false; the check fails
// closed.
func (a *AuthService) IsAdminEmail(email string) bool {
	if email == "" {
		return false
	}
	var staff models.Staff
	if err := a.db.Where("email = ?", email).First(&staff).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			a.logger.Warn("admin lookup failed", zap.Error(err))
		}
		return false
	}
	return staff.IsAdmin()
}

// FindByEmployeeID scans the roster with the legacy loose equality.
// The roster is small; a linear scan mirrors the original lookup.
func (a *AuthService) FindByEmployeeID(employeeID string) (*models.Staff, error) {
	var all []models.Staff
	if err := a.db.Find(&all).Error; err != nil {
		return nil, utils.NewPersistence(err)
	}
	for i := range all {
		if models.EmployeeIDEqual(all[i].EmployeeID, employeeID) {
			return &all[i], nil
		}
	}
	return nil, nil
}
