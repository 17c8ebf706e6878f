package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/QUARTER-salon/practice-tracker/middleware"
	"github.com/QUARTER-salon/practice-tracker/services"
	"github.com/QUARTER-salon/practice-tracker/utils"
)

// AuthController exposes the login/logout operations.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController builds an auth controller.
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// LoginRequest is the credential-login request body.
type LoginRequest struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}

// Login handles POST /api/v1/auth/login - employee-ID/password login.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request data"))
		return
	}

	staff, token, err := ac.auth.LoginWithCredentials(req.EmployeeID, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	setSessionCookie(c, token)
	utils.RespondData(c, staff)
}

// FederatedLogin handles POST /api/v1/auth/federated - login with the
// verified email extracted from the identity provider's token by the
// identity middleware.
func (ac *AuthController) FederatedLogin(c *gin.Context) {
	email, ok := middleware.FederatedEmail(c)
	if !ok {
		utils.RespondError(c, utils.NewValidationError("failed to obtain the account email from the identity provider"))
		return
	}

	staff, token, err := ac.auth.LoginWithFederatedEmail(email)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	setSessionCookie(c, token)
	utils.RespondData(c, staff)
}

// Logout handles POST /api/v1/auth/logout. Logging out without a
// session is still a success.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.auth.Logout(middleware.CurrentSessionID(c)); err != nil {
		utils.RespondError(c, err)
		return
	}
	clearSessionCookie(c)
	utils.RespondMessage(c, "logged out")
}

// Session handles GET /api/v1/auth/session - returns the current
// session's staff snapshot, or null data when anonymous.
func (ac *AuthController) Session(c *gin.Context) {
	if staff, ok := middleware.CurrentStaff(c); ok {
		utils.RespondData(c, staff)
		return
	}
	utils.RespondData(c, nil)
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookieName, token, 0, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
}
