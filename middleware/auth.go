package middleware

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/gin-gonic/gin"

	"github.com/QUARTER-salon/practice-tracker/config"
	"github.com/QUARTER-salon/practice-tracker/models"
	"github.com/QUARTER-salon/practice-tracker/services"
	"github.com/QUARTER-salon/practice-tracker/utils"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

const (
	ctxStaffKey          = "staff"
	ctxSessionIDKey      = "session_id"
	ctxFederatedEmailKey = "federated_email"
)

// SessionAuth resolves the caller's session, if any, and stores the
// staff snapshot in the Gin context. It never aborts; anonymous
// requests pass through and the handlers decide what needs a login.
func SessionAuth(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if staff, sessionID, ok := sessions.Resolve(token); ok {
			c.Set(ctxStaffKey, staff)
			c.Set(ctxSessionIDKey, sessionID)
		}
		c.Next()
	}
}

// sessionToken reads the session token from the cookie or, failing
// that, a bearer Authorization header.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// CurrentStaff extracts the session's staff snapshot from the context.
func CurrentStaff(c *gin.Context) (*models.Staff, bool) {
	value, exists := c.Get(ctxStaffKey)
	if !exists {
		return nil, false
	}
	staff, ok := value.(*models.Staff)
	return staff, ok
}

// CurrentSessionID extracts the session ID from the context.
func CurrentSessionID(c *gin.Context) string {
	return c.GetString(ctxSessionIDKey)
}

// RequireLogin aborts anonymous requests with the generic
// authorization failure.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentStaff(c); !ok {
			utils.RespondError(c, utils.NewLoginRequired())
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts requests whose session does not resolve to a
// roster row with a truthy admin flag. The check fails closed and the
// message never says why access was denied.
func RequireAdmin(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		staff, ok := CurrentStaff(c)
		if !ok || !auth.IsAdminEmail(staff.Email) {
			utils.RespondError(c, utils.NewAdminRequired())
			c.Abort()
			return
		}
		c.Next()
	}
}

// federatedClaims contains the custom claims read from the identity
// provider's token.
type federatedClaims struct {
	Email string `json:"email"`
}

// Validate satisfies the validator.CustomClaims interface.
func (c *federatedClaims) Validate(ctx context.Context) error {
	return nil
}

// EnsureValidIdentityToken validates the federated identity token
// (Google sign-in via the configured OIDC domain) and stores the
// verified email in the Gin context. The email comes from the token's
// validated claims; it is never caller-supplied.
func EnsureValidIdentityToken(cfg *config.Config) gin.HandlerFunc {
	issuerURL, err := url.Parse("https://" + cfg.OIDCDomain + "/")
	if err != nil {
		log.Fatalf("Failed to parse the issuer url: %v", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)

	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{cfg.OIDCAudience},
		validator.WithCustomClaims(
			func() validator.CustomClaims {
				return &federatedClaims{}
			},
		),
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		log.Fatalf("Failed to set up the jwt validator")
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("Encountered error while validating JWT: %v", err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		if _, writeErr := w.Write([]byte(`{"success":false,"message":"failed to validate the identity token"}`)); writeErr != nil {
			log.Printf("Failed to write error response: %v", writeErr)
		}
	}

	mw := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
	)

	return func(c *gin.Context) {
		var handler http.HandlerFunc = func(w http.ResponseWriter, r *http.Request) {
			token := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)

			if claims, ok := token.CustomClaims.(*federatedClaims); ok {
				c.Set(ctxFederatedEmailKey, claims.Email)
			}

			c.Next()
		}

		mw.CheckJWT(handler).ServeHTTP(c.Writer, c.Request)
	}
}

// FederatedEmail extracts the verified email set by the identity
// middleware.
func FederatedEmail(c *gin.Context) (string, bool) {
	email := c.GetString(ctxFederatedEmailKey)
	return email, email != ""
}

// SetFederatedEmailForTesting seeds the context the way the identity
// middleware does (used by tests and mocks).
func SetFederatedEmailForTesting(c *gin.Context, email string) {
	c.Set(ctxFederatedEmailKey, email)
}

// SetStaffForTesting seeds the context the way SessionAuth does (used
// by tests and mocks).
func SetStaffForTesting(c *gin.Context, staff *models.Staff, sessionID string) {
	c.Set(ctxStaffKey, staff)
	c.Set(ctxSessionIDKey, sessionID)
}
