package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/QUARTER-salon/practice-tracker/middleware"
	"github.com/QUARTER-salon/practice-tracker/services"
)

// PageController maps an inbound page request plus the session state
// to one of three views. Requests that do not meet the page's session
// or role requirement fall back to the index view with a reason
// message.
type PageController struct {
	auth *services.AuthService
}

// NewPageController builds a page controller.
func NewPageController(auth *services.AuthService) *PageController {
	return &PageController{auth: auth}
}

// Render handles GET /?page=index|app|admin
func (pc *PageController) Render(c *gin.Context) {
	page := c.Query("page")
	if page == "" {
		page = "index"
	}
	staff, loggedIn := middleware.CurrentStaff(c)

	switch page {
	case "app":
		if !loggedIn {
			c.HTML(http.StatusOK, "index.html", gin.H{"redirectMessage": "login is required"})
			return
		}
		c.HTML(http.StatusOK, "app.html", gin.H{"userInfo": staff})

	case "admin":
		if !loggedIn || !pc.auth.IsAdminEmail(staff.Email) {
			c.HTML(http.StatusOK, "index.html", gin.H{"redirectMessage": "administrator privileges are required"})
			return
		}
		c.HTML(http.StatusOK, "admin.html", gin.H{"userInfo": staff})

	default:
		c.HTML(http.StatusOK, "index.html", gin.H{"redirectMessage": ""})
	}
}
