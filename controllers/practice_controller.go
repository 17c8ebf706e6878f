package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/QUARTER-salon/practice-tracker/middleware"
	"github.com/QUARTER-salon/practice-tracker/services"
	"github.com/QUARTER-salon/practice-tracker/utils"
)

// PracticeController serves the practice form: its lookup data and the
// record submission itself. Every route requires a session.
type PracticeController struct {
	practice *services.PracticeService
	form     *services.FormService
	master   *services.MasterService
}

// NewPracticeController builds a practice controller.
func NewPracticeController(practice *services.PracticeService, form *services.FormService, master *services.MasterService) *PracticeController {
	return &PracticeController{practice: practice, form: form, master: master}
}

// Submit handles POST /api/v1/practice-records
func (pc *PracticeController) Submit(c *gin.Context) {
	staff, ok := middleware.CurrentStaff(c)
	if !ok {
		utils.RespondError(c, utils.NewLoginRequired())
		return
	}

	var sub services.PracticeSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request data"))
		return
	}

	message, err := pc.practice.Submit(staff, sub)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, message)
}

// Trainers handles GET /api/v1/trainers - trainers grouped into the
// user's store and other stores.
func (pc *PracticeController) Trainers(c *gin.Context) {
	staff, ok := middleware.CurrentStaff(c)
	if !ok {
		utils.RespondError(c, utils.NewLoginRequired())
		return
	}
	groups, err := pc.form.TrainersFor(staff.Store)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, groups)
}

// TechCategories handles GET /api/v1/tech-categories - categories
// available to the user's role.
func (pc *PracticeController) TechCategories(c *gin.Context) {
	staff, ok := middleware.CurrentStaff(c)
	if !ok {
		utils.RespondError(c, utils.NewLoginRequired())
		return
	}
	names, err := pc.form.CategoriesFor(staff.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, names)
}

// TechDetails handles GET /api/v1/tech-details?category= - details in
// a category available to the user's role.
func (pc *PracticeController) TechDetails(c *gin.Context) {
	staff, ok := middleware.CurrentStaff(c)
	if !ok {
		utils.RespondError(c, utils.NewLoginRequired())
		return
	}
	names, err := pc.form.DetailsFor(c.Query("category"), staff.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, names)
}

// Inventory handles GET /api/v1/inventory - wig stock per store for
// any logged-in user.
func (pc *PracticeController) Inventory(c *gin.Context) {
	if _, ok := middleware.CurrentStaff(c); !ok {
		utils.RespondError(c, utils.NewLoginRequired())
		return
	}
	rows, err := pc.master.Inventory()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, rows)
}
