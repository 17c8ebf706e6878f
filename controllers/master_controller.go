package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/QUARTER-salon/practice-tracker/services"
	"github.com/QUARTER-salon/practice-tracker/utils"
)

// MasterController exposes the admin CRUD screens' operations over the
// master tables. Every route here sits behind the admin gate.
type MasterController struct {
	master *services.MasterService
}

// NewMasterController builds a master-data controller.
func NewMasterController(master *services.MasterService) *MasterController {
	return &MasterController{master: master}
}

// ---------- Stores ----------

// GetStores handles GET /api/v1/admin/stores
func (mc *MasterController) GetStores(c *gin.Context) {
	stores, err := mc.master.Stores()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, stores)
}

// NameRequest carries a single entity name.
type NameRequest struct {
	Name string `json:"name"`
}

// RenameRequest carries an entity rename.
type RenameRequest struct {
	OriginalName string `json:"original_name"`
	NewName      string `json:"new_name"`
}

// AddStore handles POST /api/v1/admin/stores
func (mc *MasterController) AddStore(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request data"))
		return
	}
	message, err := mc.master.AddStore(req.Name)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, message)
}

// RenameStore handles PUT /api/v1/admin/stores
func (mc *MasterController) RenameStore(c *gin.Context) {
	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request data"))
		return
	}
	message, err := mc.master.RenameStore(req.OriginalName, req.NewName)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, message)
}

// DeleteStore handles DELETE /api/v1/admin/stores?name=
func (mc *MasterController) DeleteStore(c *gin.Context) {
	message, err := mc.master.DeleteStore(c.Query("name"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, message)
}

// ---------- Roles ----------

// GetRoles handles GET /api/v1/admin/roles
func (mc *MasterController) GetRoles(c *gin.Context) {
	roles, err := mc.master.Roles()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, roles)
}

// AddRole handles POST /api/v1/admin/roles
func (mc *MasterController) AddRole(c *gin.Context) {
	var req NameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request data"))
		return
	}
	message, err := mc.master.AddRole(req.Name)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, message)
}

// RenameRole handles PUT /api/v1/admin/roles
func (mc *MasterController) RenameRole(c *gin.Context) {
	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request data"))
		return
	}
	message, err := mc.master.RenameRole(req.OriginalName, req.NewName)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, message)
}

// DeleteRole handles DELETE /api/v1/admin/roles?name=
func (mc *MasterController) DeleteRole(c *gin.Context) {
	message, err := mc.master.DeleteRole(c.Query("name"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, message)
}

// ---------- Trainers ----------

// TrainerRequest carries a trainer's composite key.
type TrainerRequest struct {
	Name  string `json:"name"`
	Store string `json:"store"`
}

// GetTrainers handles GET /api/v1/admin/trainers
func (mc *MasterController) GetTrainers(c *gin.Context) {
	trainers, err := mc.master.Trainers()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, trainers)
}

// AddTrainer handles POST /api/v1/admin/trainers
func (mc *MasterController) AddTrainer(c *gin.Context) {
	var req TrainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request data"))
		return
	}
	message, err := mc.master.AddTrainer(req.Name, req.Store)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, message)
}

// DeleteTrainer handles DELETE /api/v1/admin/trainers?name=&store=
func (mc *MasterController) DeleteTrainer(c *gin.Context) {
	message, err := mc.master.DeleteTrainer(c.Query("name"), c.Query("store"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, message)
}

// ---------- Tech categories ----------

// TechCategoryRequest carries a category add.
type TechCategoryRequest struct {
	Name        string `json:"name"`
	TargetRoles string `json:"target_roles"`
}

// TechCategoryUpdateRequest carries a category update.
type TechCategoryUpdateRequest struct {
	OriginalName string `json:"original_name"`
	NewName      string `json:"new_name"`
	TargetRoles  string `json:"target_roles"`
}

// GetTechCategories handles GET /api/v1/admin/tech-categories
func (mc *MasterController) GetTechCategories(c *gin.Context) {
	categories, err := mc.master.TechCategories()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, categories)
}

// AddTechCategory handles POST /api/v1/admin/tech-categories
func (mc *MasterController) AddTechCategory(c *gin.Context) {
	var req TechCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request data"))
		return
	}
	message, err := mc.master.AddTechCategory(req.Name, req.TargetRoles)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, message)
}

// UpdateTechCategory handles PUT /api/v1/admin/tech-categories
func (mc *MasterController) UpdateTechCategory(c *gin.Context) {
	var req TechCategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request data"))
		return
	}
	message, err := mc.master.UpdateTechCategory(req.OriginalName, req.NewName, req.TargetRoles)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, message)
}

// DeleteTechCategory handles DELETE /api/v1/admin/tech-categories?name=
func (mc *MasterController) DeleteTechCategory(c *gin.Context) {
	message, err := mc.master.DeleteTechCategory(c.Query("name"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, message)
}

// ---------- Tech details ----------

// TechDetailRequest carries a detail add.
type TechDetailRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	TargetRoles string `json:"target_roles"`
}

// TechDetailUpdateRequest carries a detail update addressed by its
// original composite key.
type TechDetailUpdateRequest struct {
	OriginalName     string `json:"original_name"`
	OriginalCategory string `json:"original_category"`
	NewName          string `json:"new_name"`
	NewCategory      string `json:"new_category"`
	TargetRoles      string `json:"target_roles"`
}

// GetTechDetails handles GET /api/v1/admin/tech-details
func (mc *MasterController) GetTechDetails(c *gin.Context) {
	details, err := mc.master.TechDetails()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, details)
}

// AddTechDetail handles POST /api/v1/admin/tech-details
func (mc *MasterController) AddTechDetail(c *gin.Context) {
	var req TechDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request data"))
		return
	}
	message, err := mc.master.AddTechDetail(req.Name, req.Category, req.TargetRoles)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, message)
}

// UpdateTechDetail handles PUT /api/v1/admin/tech-details
func (mc *MasterController) UpdateTechDetail(c *gin.Context) {
	var req TechDetailUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError("invalid request data"))
		return
	}
	message, err := mc.master.UpdateTechDetail(req.OriginalName, req.OriginalCategory, req.NewName, req.NewCategory, req.TargetRoles)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, message)
}

// DeleteTechDetail handles DELETE /api/v1/admin/tech-details?name=&category=
func (mc *MasterController) DeleteTechDetail(c *gin.Context) {
	message, err := mc.master.DeleteTechDetail(c.Query("name"), c.Query("category"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, message)
}

// ---------- Wig inventory ----------

// WigStockRequest carries an absolute stocktake for one store.
type WigStockRequest struct {
	Store      string `json:"store"`
	StockCount *int   `json:"stock_count"`
}

// GetInventory handles GET /api/v1/admin/inventory
func (mc *MasterController) GetInventory(c *gin.Context) {
	rows, err := mc.master.Inventory()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondData(c, rows)
}

// SetWigStock handles PUT /api/v1/admin/inventory
func (mc *MasterController) SetWigStock(c *gin.Context) {
	var req WigStockRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.StockCount == nil {
		utils.RespondError(c, utils.NewValidationError("a store and a stock count are required"))
		return
	}
	message, err := mc.master.SetWigStock(req.Store, *req.StockCount)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondMessage(c, message)
}
