package services

import (
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/QUARTER-salon/practice-tracker/models"
	"github.com/QUARTER-salon/practice-tracker/utils"
)

// FormService serves the lookup data the practice form needs, scoped
// to the logged-in user's store and role.
type FormService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewFormService builds a form-data service.
func NewFormService(db *gorm.DB, logger *zap.Logger) *FormService {
	return &FormService{db: db, logger: logger}
}

// TrainerGroups splits the trainer list relative to the user's store.
type TrainerGroups struct {
	UserStoreTrainers  []models.Trainer `json:"user_store_trainers"`
	OtherStoreTrainers []models.Trainer `json:"other_store_trainers"`
}

// TrainersFor returns the trainers grouped into the user's own store
// and every other store.
func (f *FormService) TrainersFor(userStore string) (*TrainerGroups, error) {
	var trainers []models.Trainer
	if err := f.db.Order("id").Find(&trainers).Error; err != nil {
		return nil, utils.NewPersistence(err)
	}

	groups := &TrainerGroups{
		UserStoreTrainers:  []models.Trainer{},
		OtherStoreTrainers: []models.Trainer{},
	}
	for _, t := range trainers {
		if strings.EqualFold(strings.TrimSpace(t.Store), strings.TrimSpace(userStore)) {
			groups.UserStoreTrainers = append(groups.UserStoreTrainers, t)
		} else {
			groups.OtherStoreTrainers = append(groups.OtherStoreTrainers, t)
		}
	}
	return groups, nil
}

// CategoriesFor returns the category names offered to the role, either
// listed explicitly or through the ALL sentinel.
func (f *FormService) CategoriesFor(role string) ([]string, error) {
	if role == "" {
		return nil, utils.NewValidationError("the user's role information is missing")
	}
	var categories []models.TechCategory
	if err := f.db.Order("id").Find(&categories).Error; err != nil {
		return nil, utils.NewPersistence(err)
	}
	names := []string{}
	for i := range categories {
		if categories[i].AppliesToRole(role) {
			names = append(names, categories[i].Name)
		}
	}
	return names, nil
}

// DetailsFor returns the detail names within a category offered to the
// role.
func (f *FormService) DetailsFor(category, role string) ([]string, error) {
	if strings.TrimSpace(category) == "" {
		return nil, utils.NewValidationError("a category is required")
	}
	if role == "" {
		return nil, utils.NewValidationError("the user's role information is missing")
	}
	var details []models.TechDetail
	if err := f.db.Order("id").Find(&details).Error; err != nil {
		return nil, utils.NewPersistence(err)
	}
	names := []string{}
	for i := range details {
		if details[i].Category == category && details[i].AppliesToRole(role) {
			names = append(names, details[i].Name)
		}
	}
	return names, nil
}
