package services

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/QUARTER-salon/practice-tracker/models"
	"github.com/QUARTER-salon/practice-tracker/utils"
)

// MasterService provides CRUD over the master tables. Name lookups and
// uniqueness checks are case-insensitive after trimming; the stored
// value keeps its original casing. Renames of a Store, Role, or
// TechCategory cascade to every dependent table inside one
// transaction, so the legacy partial-apply state can no longer occur.
type MasterService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewMasterService builds a master-data service.
func NewMasterService(db *gorm.DB, logger *zap.Logger) *MasterService {
	return &MasterService{db: db, logger: logger}
}

// foldKey normalizes a name for comparisons.
func foldKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

const foldedExpr = "LOWER(TRIM(%s)) = ?"

func foldedWhere(column string) string {
	return fmt.Sprintf(foldedExpr, column)
}

// ---------- Stores ----------

// Stores returns every store name in insertion order.
func (m *MasterService) Stores() ([]string, error) {
	var stores []models.Store
	if err := m.db.Order("id").Find(&stores).Error; err != nil {
		return nil, utils.NewPersistence(err)
	}
	names := make([]string, 0, len(stores))
	for _, s := range stores {
		names = append(names, s.Name)
	}
	return names, nil
}

// AddStore creates a store and seeds its inventory row at zero stock.
// A failed seed is logged and swallowed; the add still succeeds.
func (m *MasterService) AddStore(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", utils.NewValidationError("a store name is required")
	}

	var count int64
	if err := m.db.Model(&models.Store{}).Where(foldedWhere("name"), foldKey(name)).Count(&count).Error; err != nil {
		return "", utils.NewPersistence(err)
	}
	if count > 0 {
		return "", utils.NewDuplicate("this store name is already registered")
	}
	if err := m.db.Create(&models.Store{Name: name}).Error; err != nil {
		return "", utils.NewPersistence(err)
	}

	// Inventory seeding is a secondary write; its failure never fails
	// the add.
	var invCount int64
	err := m.db.Model(&models.WigInventory{}).Where(foldedWhere("store"), foldKey(name)).Count(&invCount).Error
	if err == nil && invCount == 0 {
		err = m.db.Create(&models.WigInventory{Store: name, StockCount: 0}).Error
	}
	if err != nil {
		m.logger.Warn("failed to seed inventory row", zap.String("store", name), zap.Error(err))
	}

	return fmt.Sprintf("store %q has been added", name), nil
}

// RenameStore renames a store and rewrites every dependent reference
// (inventory, trainers, staff) atomically.
func (m *MasterService) RenameStore(oldName, newName string) (string, error) {
	oldName, newName = strings.TrimSpace(oldName), strings.TrimSpace(newName)
	if oldName == "" || newName == "" {
		return "", utils.NewValidationError("both the current and the new store name are required")
	}
	if strings.EqualFold(oldName, newName) {
		return "store name unchanged", nil
	}

	var updated []string
	err := m.db.Transaction(func(tx *gorm.DB) error {
		var store models.Store
		if err := tx.Where(foldedWhere("name"), foldKey(oldName)).First(&store).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound(fmt.Sprintf("store %q was not found", oldName))
			}
			return utils.NewPersistence(err)
		}
		var dup int64
		if err := tx.Model(&models.Store{}).Where(foldedWhere("name"), foldKey(newName)).Where("id <> ?", store.ID).Count(&dup).Error; err != nil {
			return utils.NewPersistence(err)
		}
		if dup > 0 {
			return utils.NewDuplicate(fmt.Sprintf("store %q already exists", newName))
		}

		// The primary write.
		if err := tx.Model(&store).Update("name", newName).Error; err != nil {
			return utils.NewPersistence(err)
		}
		updated = append(updated, "stores")

		deps := []struct {
			label string
			model interface{}
		}{
			{"inventory", &models.WigInventory{}},
			{"trainers", &models.Trainer{}},
			{"staff", &models.Staff{}},
		}
		for _, dep := range deps {
			column := "store"
			res := tx.Model(dep.model).Where(foldedWhere(column), foldKey(oldName)).Update(column, newName)
			if res.Error != nil {
				return utils.NewPersistence(res.Error)
			}
			if res.RowsAffected > 0 {
				updated = append(updated, fmt.Sprintf("%s (%d)", dep.label, res.RowsAffected))
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("store renamed from %q to %q; updated: %s", oldName, newName, strings.Join(updated, ", ")), nil
}

// DeleteStore removes a store and its inventory row. Deletion is
// blocked while trainers or staff are still assigned to the store.
func (m *MasterService) DeleteStore(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", utils.NewValidationError("a store name is required")
	}

	err := m.db.Transaction(func(tx *gorm.DB) error {
		var store models.Store
		if err := tx.Where(foldedWhere("name"), foldKey(name)).First(&store).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound("the specified store was not found")
			}
			return utils.NewPersistence(err)
		}

		inUse, err := m.storeInUse(tx, name)
		if err != nil {
			return err
		}
		if inUse {
			return utils.NewConflict("this store is still assigned to trainers or staff and cannot be deleted")
		}

		if err := tx.Delete(&store).Error; err != nil {
			return utils.NewPersistence(err)
		}
		if err := tx.Where(foldedWhere("store"), foldKey(name)).Delete(&models.WigInventory{}).Error; err != nil {
			return utils.NewPersistence(err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("store %q has been deleted", name), nil
}

func (m *MasterService) storeInUse(tx *gorm.DB, name string) (bool, error) {
	var trainers int64
	if err := tx.Model(&models.Trainer{}).Where(foldedWhere("store"), foldKey(name)).Count(&trainers).Error; err != nil {
		return false, utils.NewPersistence(err)
	}
	if trainers > 0 {
		return true, nil
	}
	var staff int64
	if err := tx.Model(&models.Staff{}).Where(foldedWhere("store"), foldKey(name)).Count(&staff).Error; err != nil {
		return false, utils.NewPersistence(err)
	}
	return staff > 0, nil
}

// ---------- Roles ----------

// Roles returns every role name in insertion order.
func (m *MasterService) Roles() ([]string, error) {
	var roles []models.Role
	if err := m.db.Order("id").Find(&roles).Error; err != nil {
		return nil, utils.NewPersistence(err)
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names, nil
}

// AddRole creates a role.
func (m *MasterService) AddRole(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", utils.NewValidationError("a role name is required")
	}
	var count int64
	if err := m.db.Model(&models.Role{}).Where(foldedWhere("name"), foldKey(name)).Count(&count).Error; err != nil {
		return "", utils.NewPersistence(err)
	}
	if count > 0 {
		return "", utils.NewDuplicate("this role name is already registered")
	}
	if err := m.db.Create(&models.Role{Name: name}).Error; err != nil {
		return "", utils.NewPersistence(err)
	}
	return fmt.Sprintf("role %q has been added", name), nil
}

// RenameRole renames a role and rewrites every dependent reference:
// the staff column as a single value, and the category/detail
// target-role lists element-wise. The ALL sentinel is never rewritten.
func (m *MasterService) RenameRole(oldName, newName string) (string, error) {
	oldName, newName = strings.TrimSpace(oldName), strings.TrimSpace(newName)
	if oldName == "" || newName == "" {
		return "", utils.NewValidationError("both the current and the new role name are required")
	}
	if strings.EqualFold(oldName, newName) {
		return "role name unchanged", nil
	}

	var updated []string
	err := m.db.Transaction(func(tx *gorm.DB) error {
		var role models.Role
		if err := tx.Where(foldedWhere("name"), foldKey(oldName)).First(&role).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound(fmt.Sprintf("role %q was not found", oldName))
			}
			return utils.NewPersistence(err)
		}
		var dup int64
		if err := tx.Model(&models.Role{}).Where(foldedWhere("name"), foldKey(newName)).Where("id <> ?", role.ID).Count(&dup).Error; err != nil {
			return utils.NewPersistence(err)
		}
		if dup > 0 {
			return utils.NewDuplicate(fmt.Sprintf("role %q already exists", newName))
		}

		if err := tx.Model(&role).Update("name", newName).Error; err != nil {
			return utils.NewPersistence(err)
		}
		updated = append(updated, "roles")

		res := tx.Model(&models.Staff{}).Where(foldedWhere("role"), foldKey(oldName)).Update("role", newName)
		if res.Error != nil {
			return utils.NewPersistence(res.Error)
		}
		if res.RowsAffected > 0 {
			updated = append(updated, fmt.Sprintf("staff (%d)", res.RowsAffected))
		}

		n, err := rewriteRoleLists(tx, &models.TechCategory{}, oldName, newName)
		if err != nil {
			return err
		}
		if n > 0 {
			updated = append(updated, fmt.Sprintf("tech categories (%d)", n))
		}

		n, err = rewriteRoleLists(tx, &models.TechDetail{}, oldName, newName)
		if err != nil {
			return err
		}
		if n > 0 {
			updated = append(updated, fmt.Sprintf("tech details (%d)", n))
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("role renamed from %q to %q; updated: %s", oldName, newName, strings.Join(updated, ", ")), nil
}

// rewriteRoleLists replaces oldName with newName inside the
// comma-separated target-role lists of either the category or the
// detail table, leaving the ALL sentinel untouched.
func rewriteRoleLists(tx *gorm.DB, model interface{}, oldName, newName string) (int, error) {
	updatedRows := 0
	switch model.(type) {
	case *models.TechCategory:
		var categories []models.TechCategory
		if err := tx.Find(&categories).Error; err != nil {
			return 0, utils.NewPersistence(err)
		}
		for i := range categories {
			if rewritten, changed := replaceRoleElement(categories[i].TargetRoles, oldName, newName); changed {
				if err := tx.Model(&categories[i]).Update("target_roles", rewritten).Error; err != nil {
					return 0, utils.NewPersistence(err)
				}
				updatedRows++
			}
		}
	case *models.TechDetail:
		var details []models.TechDetail
		if err := tx.Find(&details).Error; err != nil {
			return 0, utils.NewPersistence(err)
		}
		for i := range details {
			if rewritten, changed := replaceRoleElement(details[i].TargetRoles, oldName, newName); changed {
				if err := tx.Model(&details[i]).Update("target_roles", rewritten).Error; err != nil {
					return 0, utils.NewPersistence(err)
				}
				updatedRows++
			}
		}
	}
	return updatedRows, nil
}

// replaceRoleElement rewrites one element of an encoded role list.
func replaceRoleElement(encoded, oldName, newName string) (string, bool) {
	roles := models.SplitRoles(encoded)
	changed := false
	for i, r := range roles {
		if strings.EqualFold(r, models.RoleAll) {
			continue
		}
		if strings.EqualFold(r, oldName) {
			roles[i] = newName
			changed = true
		}
	}
	if !changed {
		return encoded, false
	}
	return models.JoinRoles(roles), true
}

// DeleteRole removes a role. Deletion is blocked while staff hold the
// role or a category/detail targets it.
func (m *MasterService) DeleteRole(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", utils.NewValidationError("a role name is required")
	}

	err := m.db.Transaction(func(tx *gorm.DB) error {
		var role models.Role
		if err := tx.Where(foldedWhere("name"), foldKey(name)).First(&role).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound("the specified role was not found")
			}
			return utils.NewPersistence(err)
		}

		inUse, err := m.roleInUse(tx, name)
		if err != nil {
			return err
		}
		if inUse {
			return utils.NewConflict("this role is still referenced by staff or technique settings and cannot be deleted")
		}

		if err := tx.Delete(&role).Error; err != nil {
			return utils.NewPersistence(err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("role %q has been deleted", name), nil
}

func (m *MasterService) roleInUse(tx *gorm.DB, name string) (bool, error) {
	var staff int64
	if err := tx.Model(&models.Staff{}).Where(foldedWhere("role"), foldKey(name)).Count(&staff).Error; err != nil {
		return false, utils.NewPersistence(err)
	}
	if staff > 0 {
		return true, nil
	}

	var categories []models.TechCategory
	if err := tx.Find(&categories).Error; err != nil {
		return false, utils.NewPersistence(err)
	}
	for _, c := range categories {
		if roleListed(c.TargetRoles, name) {
			return true, nil
		}
	}
	var details []models.TechDetail
	if err := tx.Find(&details).Error; err != nil {
		return false, utils.NewPersistence(err)
	}
	for _, d := range details {
		if roleListed(d.TargetRoles, name) {
			return true, nil
		}
	}
	return false, nil
}

// roleListed checks for the literal role, not the ALL sentinel: a
// category open to all roles does not pin any specific role down.
func roleListed(encoded, role string) bool {
	for _, r := range models.SplitRoles(encoded) {
		if strings.EqualFold(r, role) {
			return true
		}
	}
	return false
}

// ---------- Trainers ----------

// Trainers returns all trainers in insertion order.
func (m *MasterService) Trainers() ([]models.Trainer, error) {
	var trainers []models.Trainer
	if err := m.db.Order("id").Find(&trainers).Error; err != nil {
		return nil, utils.NewPersistence(err)
	}
	return trainers, nil
}

// AddTrainer creates a trainer, unique on the (name, store) pair.
func (m *MasterService) AddTrainer(name, store string) (string, error) {
	name, store = strings.TrimSpace(name), strings.TrimSpace(store)
	if name == "" || store == "" {
		return "", utils.NewValidationError("a trainer name and a store are required")
	}
	var count int64
	if err := m.db.Model(&models.Trainer{}).
		Where(foldedWhere("name"), foldKey(name)).
		Where(foldedWhere("store"), foldKey(store)).
		Count(&count).Error; err != nil {
		return "", utils.NewPersistence(err)
	}
	if count > 0 {
		return "", utils.NewDuplicate("this trainer is already registered for the store")
	}
	if err := m.db.Create(&models.Trainer{Name: name, Store: store}).Error; err != nil {
		return "", utils.NewPersistence(err)
	}
	return fmt.Sprintf("trainer %q (%s) has been added", name, store), nil
}

// DeleteTrainer removes a trainer by its composite key.
func (m *MasterService) DeleteTrainer(name, store string) (string, error) {
	name, store = strings.TrimSpace(name), strings.TrimSpace(store)
	if name == "" || store == "" {
		return "", utils.NewValidationError("a trainer name and a store are required")
	}
	res := m.db.
		Where(foldedWhere("name"), foldKey(name)).
		Where(foldedWhere("store"), foldKey(store)).
		Delete(&models.Trainer{})
	if res.Error != nil {
		return "", utils.NewPersistence(res.Error)
	}
	if res.RowsAffected == 0 {
		return "", utils.NewNotFound("the specified trainer was not found")
	}
	return fmt.Sprintf("trainer %q (%s) has been deleted", name, store), nil
}

// ---------- Tech categories ----------

// TechCategories returns all categories in insertion order.
func (m *MasterService) TechCategories() ([]models.TechCategory, error) {
	var categories []models.TechCategory
	if err := m.db.Order("id").Find(&categories).Error; err != nil {
		return nil, utils.NewPersistence(err)
	}
	return categories, nil
}

// AddTechCategory creates a category with its target-role list.
func (m *MasterService) AddTechCategory(name, targetRoles string) (string, error) {
	name, targetRoles = strings.TrimSpace(name), strings.TrimSpace(targetRoles)
	if name == "" || targetRoles == "" {
		return "", utils.NewValidationError("a category name and target roles are required")
	}
	var count int64
	if err := m.db.Model(&models.TechCategory{}).Where(foldedWhere("name"), foldKey(name)).Count(&count).Error; err != nil {
		return "", utils.NewPersistence(err)
	}
	if count > 0 {
		return "", utils.NewDuplicate("this category name is already registered")
	}
	if err := m.db.Create(&models.TechCategory{Name: name, TargetRoles: targetRoles}).Error; err != nil {
		return "", utils.NewPersistence(err)
	}
	return fmt.Sprintf("technique category %q has been added", name), nil
}

// UpdateTechCategory renames a category and/or replaces its
// target-role list. Detail rows referencing the category are rewritten
// only when the name actually changed.
func (m *MasterService) UpdateTechCategory(originalName, newName, targetRoles string) (string, error) {
	originalName = strings.TrimSpace(originalName)
	newName = strings.TrimSpace(newName)
	targetRoles = strings.TrimSpace(targetRoles)
	if originalName == "" || newName == "" || targetRoles == "" {
		return "", utils.NewValidationError("the category names and target roles are required")
	}

	var updated []string
	err := m.db.Transaction(func(tx *gorm.DB) error {
		var category models.TechCategory
		if err := tx.Where(foldedWhere("name"), foldKey(originalName)).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound(fmt.Sprintf("category %q was not found", originalName))
			}
			return utils.NewPersistence(err)
		}

		nameChanged := !strings.EqualFold(originalName, newName)
		if nameChanged {
			var dup int64
			if err := tx.Model(&models.TechCategory{}).Where(foldedWhere("name"), foldKey(newName)).Where("id <> ?", category.ID).Count(&dup).Error; err != nil {
				return utils.NewPersistence(err)
			}
			if dup > 0 {
				return utils.NewDuplicate(fmt.Sprintf("category %q already exists", newName))
			}
		}
		if !nameChanged && category.TargetRoles == targetRoles {
			updated = nil
			return nil
		}

		if err := tx.Model(&category).Updates(map[string]interface{}{
			"name":         newName,
			"target_roles": targetRoles,
		}).Error; err != nil {
			return utils.NewPersistence(err)
		}
		updated = append(updated, "tech categories")

		if nameChanged {
			res := tx.Model(&models.TechDetail{}).Where(foldedWhere("category"), foldKey(originalName)).Update("category", newName)
			if res.Error != nil {
				return utils.NewPersistence(res.Error)
			}
			if res.RowsAffected > 0 {
				updated = append(updated, fmt.Sprintf("tech details (%d)", res.RowsAffected))
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if len(updated) == 0 {
		return "category unchanged", nil
	}
	return fmt.Sprintf("technique category updated; updated: %s", strings.Join(updated, ", ")), nil
}

// DeleteTechCategory removes a category. Deletion is blocked while
// detail rows still reference it.
func (m *MasterService) DeleteTechCategory(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", utils.NewValidationError("a category name is required")
	}

	err := m.db.Transaction(func(tx *gorm.DB) error {
		var category models.TechCategory
		if err := tx.Where(foldedWhere("name"), foldKey(name)).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound("the specified category was not found")
			}
			return utils.NewPersistence(err)
		}

		var details int64
		if err := tx.Model(&models.TechDetail{}).Where(foldedWhere("category"), foldKey(name)).Count(&details).Error; err != nil {
			return utils.NewPersistence(err)
		}
		if details > 0 {
			return utils.NewConflict("this category still has technique details and cannot be deleted")
		}

		if err := tx.Delete(&category).Error; err != nil {
			return utils.NewPersistence(err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("technique category %q has been deleted", name), nil
}

// ---------- Tech details ----------

// TechDetails returns all details in insertion order.
func (m *MasterService) TechDetails() ([]models.TechDetail, error) {
	var details []models.TechDetail
	if err := m.db.Order("id").Find(&details).Error; err != nil {
		return nil, utils.NewPersistence(err)
	}
	return details, nil
}

// AddTechDetail creates a detail, unique on the (name, category) pair.
func (m *MasterService) AddTechDetail(name, category, targetRoles string) (string, error) {
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	targetRoles = strings.TrimSpace(targetRoles)
	if name == "" || category == "" || targetRoles == "" {
		return "", utils.NewValidationError("a detail name, category, and target roles are required")
	}
	var count int64
	if err := m.db.Model(&models.TechDetail{}).
		Where(foldedWhere("name"), foldKey(name)).
		Where(foldedWhere("category"), foldKey(category)).
		Count(&count).Error; err != nil {
		return "", utils.NewPersistence(err)
	}
	if count > 0 {
		return "", utils.NewDuplicate("this detail is already registered for the category")
	}
	if err := m.db.Create(&models.TechDetail{Name: name, Category: category, TargetRoles: targetRoles}).Error; err != nil {
		return "", utils.NewPersistence(err)
	}
	return fmt.Sprintf("technique detail %q (%s) has been added", name, category), nil
}

// UpdateTechDetail updates a detail addressed by its composite key.
func (m *MasterService) UpdateTechDetail(originalName, originalCategory, newName, newCategory, targetRoles string) (string, error) {
	originalName = strings.TrimSpace(originalName)
	originalCategory = strings.TrimSpace(originalCategory)
	newName = strings.TrimSpace(newName)
	newCategory = strings.TrimSpace(newCategory)
	targetRoles = strings.TrimSpace(targetRoles)
	if originalName == "" || originalCategory == "" || newName == "" || newCategory == "" || targetRoles == "" {
		return "", utils.NewValidationError("the detail names, categories, and target roles are required")
	}

	err := m.db.Transaction(func(tx *gorm.DB) error {
		var detail models.TechDetail
		if err := tx.
			Where(foldedWhere("name"), foldKey(originalName)).
			Where(foldedWhere("category"), foldKey(originalCategory)).
			First(&detail).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NewNotFound(fmt.Sprintf("detail %q (%s) was not found", originalName, originalCategory))
			}
			return utils.NewPersistence(err)
		}

		var dup int64
		if err := tx.Model(&models.TechDetail{}).
			Where(foldedWhere("name"), foldKey(newName)).
			Where(foldedWhere("category"), foldKey(newCategory)).
			Where("id <> ?", detail.ID).
			Count(&dup).Error; err != nil {
			return utils.NewPersistence(err)
		}
		if dup > 0 {
			return utils.NewDuplicate(fmt.Sprintf("detail %q already exists in category %q", newName, newCategory))
		}

		if err := tx.Model(&detail).Updates(map[string]interface{}{
			"name":         newName,
			"category":     newCategory,
			"target_roles": targetRoles,
		}).Error; err != nil {
			return utils.NewPersistence(err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return "technique detail updated", nil
}

// DeleteTechDetail removes a detail by its composite key.
func (m *MasterService) DeleteTechDetail(name, category string) (string, error) {
	name, category = strings.TrimSpace(name), strings.TrimSpace(category)
	if name == "" || category == "" {
		return "", utils.NewValidationError("a detail name and category are required")
	}
	res := m.db.
		Where(foldedWhere("name"), foldKey(name)).
		Where(foldedWhere("category"), foldKey(category)).
		Delete(&models.TechDetail{})
	if res.Error != nil {
		return "", utils.NewPersistence(res.Error)
	}
	if res.RowsAffected == 0 {
		return "", utils.NewNotFound("the specified detail was not found")
	}
	return fmt.Sprintf("technique detail %q (%s) has been deleted", name, category), nil
}

// ---------- Wig inventory ----------

// Inventory returns the stock rows for every store.
func (m *MasterService) Inventory() ([]models.WigInventory, error) {
	var rows []models.WigInventory
	if err := m.db.Order("id").Find(&rows).Error; err != nil {
		return nil, utils.NewPersistence(err)
	}
	return rows, nil
}

// SetWigStock sets a store's stock to an absolute count. Unlike the
// practice-submit decrement, stocktaking requires a non-negative
// integer. A store missing from the table is inserted.
func (m *MasterService) SetWigStock(store string, stockCount int) (string, error) {
	store = strings.TrimSpace(store)
	if store == "" {
		return "", utils.NewValidationError("a store is required")
	}
	if stockCount < 0 {
		return "", utils.NewValidationError("the stock count must be an integer of 0 or more")
	}

	var row models.WigInventory
	err := m.db.Where(foldedWhere("store"), foldKey(store)).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := m.db.Create(&models.WigInventory{Store: store, StockCount: stockCount}).Error; err != nil {
			return "", utils.NewPersistence(err)
		}
		return fmt.Sprintf("store %q has been added with a stock of %d", store, stockCount), nil
	}
	if err != nil {
		return "", utils.NewPersistence(err)
	}
	if err := m.db.Model(&row).Update("stock_count", stockCount).Error; err != nil {
		return "", utils.NewPersistence(err)
	}
	return fmt.Sprintf("the stock for store %q has been updated to %d", store, stockCount), nil
}
