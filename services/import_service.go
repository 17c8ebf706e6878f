package services

import (
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/QUARTER-salon/practice-tracker/models"
	"github.com/QUARTER-salon/practice-tracker/utils"
)

// ImportService ingests a legacy spreadsheet workbook into the typed
// schema. This is the only place where application logic touches the
// legacy natural-language sheet and header names; everything else in
// the system works off the typed models.
type ImportService struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewImportService builds an importer.
func NewImportService(db *gorm.DB, logger *zap.Logger) *ImportService {
	return &ImportService{db: db, logger: logger}
}

// legacy sheet names live alongside their English equivalents; a
// workbook may use either.
var (
	storeSheetNames     = []string{"店舗マスター", "Stores"}
	roleSheetNames      = []string{"役職マスター", "Roles"}
	trainerSheetNames   = []string{"トレーナーマスター", "Trainers"}
	categorySheetNames  = []string{"技術カテゴリーマスター", "TechCategories"}
	detailSheetNames    = []string{"詳細技術項目マスター", "TechDetails"}
	staffSheetNames     = []string{"スタッフマスター", "Staff"}
	inventorySheetNames = []string{"ウィッグ在庫", "WigInventory"}
)

// legacyRoleAll is the legacy spelling of the ALL sentinel.
const legacyRoleAll = "全て"

// ImportWorkbook reads the workbook and inserts any rows not already
// present. Existing rows are never overwritten. It returns the number
// of imported rows per table.
func (im *ImportService) ImportWorkbook(r io.Reader) (map[string]int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, utils.NewValidationError("the uploaded file is not a readable workbook")
	}
	defer f.Close()

	counts := map[string]int{}

	if rows, ok := im.sheetRows(f, storeSheetNames); ok {
		counts["stores"] = im.importStores(rows)
	}
	if rows, ok := im.sheetRows(f, roleSheetNames); ok {
		counts["roles"] = im.importRoles(rows)
	}
	if rows, ok := im.sheetRows(f, trainerSheetNames); ok {
		counts["trainers"] = im.importTrainers(rows)
	}
	if rows, ok := im.sheetRows(f, categorySheetNames); ok {
		counts["tech_categories"] = im.importCategories(rows)
	}
	if rows, ok := im.sheetRows(f, detailSheetNames); ok {
		counts["tech_details"] = im.importDetails(rows)
	}
	if rows, ok := im.sheetRows(f, staffSheetNames); ok {
		counts["staff"] = im.importStaff(rows)
	}
	if rows, ok := im.sheetRows(f, inventorySheetNames); ok {
		counts["wig_inventory"] = im.importInventory(rows)
	}

	if len(counts) == 0 {
		return nil, utils.NewValidationError("the workbook contains no recognized sheets")
	}
	return counts, nil
}

// sheetRows finds the first present sheet among the candidate names.
func (im *ImportService) sheetRows(f *excelize.File, candidates []string) ([][]string, bool) {
	for _, name := range candidates {
		rows, err := f.GetRows(name)
		if err == nil && len(rows) > 0 {
			return rows, true
		}
	}
	return nil, false
}

// headerIndex maps each candidate header to its column, matching
// case-insensitively after trimming.
func headerIndex(header []string, candidates ...string) int {
	for i, h := range header {
		for _, c := range candidates {
			if strings.EqualFold(strings.TrimSpace(h), c) {
				return i
			}
		}
	}
	return -1
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// normalizeRoles maps the legacy ALL spelling onto the sentinel.
func normalizeRoles(encoded string) string {
	roles := models.SplitRoles(encoded)
	for i, r := range roles {
		if r == legacyRoleAll || strings.EqualFold(r, models.RoleAll) {
			roles[i] = models.RoleAll
		}
	}
	return models.JoinRoles(roles)
}

func (im *ImportService) importStores(rows [][]string) int {
	nameIdx := headerIndex(rows[0], "店舗名", "name")
	if nameIdx < 0 {
		return 0
	}
	imported := 0
	for _, row := range rows[1:] {
		name := cellAt(row, nameIdx)
		if name == "" {
			continue
		}
		var count int64
		if im.db.Model(&models.Store{}).Where(foldedWhere("name"), foldKey(name)).Count(&count); count > 0 {
			continue
		}
		if err := im.db.Create(&models.Store{Name: name}).Error; err != nil {
			im.logger.Warn("import: store row skipped", zap.String("name", name), zap.Error(err))
			continue
		}
		imported++
	}
	return imported
}

func (im *ImportService) importRoles(rows [][]string) int {
	nameIdx := headerIndex(rows[0], "役職名", "name")
	if nameIdx < 0 {
		return 0
	}
	imported := 0
	for _, row := range rows[1:] {
		name := cellAt(row, nameIdx)
		if name == "" {
			continue
		}
		var count int64
		if im.db.Model(&models.Role{}).Where(foldedWhere("name"), foldKey(name)).Count(&count); count > 0 {
			continue
		}
		if err := im.db.Create(&models.Role{Name: name}).Error; err != nil {
			im.logger.Warn("import: role row skipped", zap.String("name", name), zap.Error(err))
			continue
		}
		imported++
	}
	return imported
}

func (im *ImportService) importTrainers(rows [][]string) int {
	nameIdx := headerIndex(rows[0], "名前", "name")
	storeIdx := headerIndex(rows[0], "店舗", "store")
	if nameIdx < 0 || storeIdx < 0 {
		return 0
	}
	imported := 0
	for _, row := range rows[1:] {
		name, store := cellAt(row, nameIdx), cellAt(row, storeIdx)
		if name == "" || store == "" {
			continue
		}
		var count int64
		im.db.Model(&models.Trainer{}).
			Where(foldedWhere("name"), foldKey(name)).
			Where(foldedWhere("store"), foldKey(store)).
			Count(&count)
		if count > 0 {
			continue
		}
		if err := im.db.Create(&models.Trainer{Name: name, Store: store}).Error; err != nil {
			im.logger.Warn("import: trainer row skipped", zap.String("name", name), zap.Error(err))
			continue
		}
		imported++
	}
	return imported
}

func (im *ImportService) importCategories(rows [][]string) int {
	nameIdx := headerIndex(rows[0], "カテゴリー名", "name")
	rolesIdx := headerIndex(rows[0], "対象役職", "target_roles")
	if nameIdx < 0 || rolesIdx < 0 {
		return 0
	}
	imported := 0
	for _, row := range rows[1:] {
		name := cellAt(row, nameIdx)
		if name == "" {
			continue
		}
		var count int64
		if im.db.Model(&models.TechCategory{}).Where(foldedWhere("name"), foldKey(name)).Count(&count); count > 0 {
			continue
		}
		category := models.TechCategory{Name: name, TargetRoles: normalizeRoles(cellAt(row, rolesIdx))}
		if err := im.db.Create(&category).Error; err != nil {
			im.logger.Warn("import: category row skipped", zap.String("name", name), zap.Error(err))
			continue
		}
		imported++
	}
	return imported
}

func (im *ImportService) importDetails(rows [][]string) int {
	nameIdx := headerIndex(rows[0], "項目名", "name")
	categoryIdx := headerIndex(rows[0], "カテゴリー", "category")
	rolesIdx := headerIndex(rows[0], "対象役職", "target_roles")
	if nameIdx < 0 || categoryIdx < 0 || rolesIdx < 0 {
		return 0
	}
	imported := 0
	for _, row := range rows[1:] {
		name, category := cellAt(row, nameIdx), cellAt(row, categoryIdx)
		if name == "" || category == "" {
			continue
		}
		var count int64
		im.db.Model(&models.TechDetail{}).
			Where(foldedWhere("name"), foldKey(name)).
			Where(foldedWhere("category"), foldKey(category)).
			Count(&count)
		if count > 0 {
			continue
		}
		detail := models.TechDetail{Name: name, Category: category, TargetRoles: normalizeRoles(cellAt(row, rolesIdx))}
		if err := im.db.Create(&detail).Error; err != nil {
			im.logger.Warn("import: detail row skipped", zap.String("name", name), zap.Error(err))
			continue
		}
		imported++
	}
	return imported
}

func (im *ImportService) importStaff(rows [][]string) int {
	empIdx := headerIndex(rows[0], "社員番号", "employee_id")
	emailIdx := headerIndex(rows[0], "メールアドレス", "email")
	nameIdx := headerIndex(rows[0], "名前", "name")
	storeIdx := headerIndex(rows[0], "店舗", "store")
	roleIdx := headerIndex(rows[0], "Role", "役職", "role")
	adminIdx := headerIndex(rows[0], "管理者フラグ", "admin_flag")
	passwordIdx := headerIndex(rows[0], "PasswordHash", "password")
	if empIdx < 0 || emailIdx < 0 || nameIdx < 0 {
		return 0
	}
	imported := 0
	for _, row := range rows[1:] {
		employeeID, email := cellAt(row, empIdx), cellAt(row, emailIdx)
		if employeeID == "" || email == "" {
			continue
		}
		var count int64
		im.db.Model(&models.Staff{}).
			Where("employee_id = ? OR email = ?", employeeID, email).
			Count(&count)
		if count > 0 {
			continue
		}

		// Legacy rosters stored plaintext passwords; they are hashed
		// on the way in and the plaintext is discarded.
		passwordHash := ""
		if plain := cellAt(row, passwordIdx); plain != "" {
			hashed, err := utils.HashPassword(plain)
			if err != nil {
				im.logger.Warn("import: staff row skipped, password hash failed", zap.String("employee_id", employeeID))
				continue
			}
			passwordHash = hashed
		}

		staff := models.Staff{
			EmployeeID:   employeeID,
			Email:        email,
			Name:         cellAt(row, nameIdx),
			Store:        cellAt(row, storeIdx),
			Role:         cellAt(row, roleIdx),
			AdminFlag:    cellAt(row, adminIdx),
			PasswordHash: passwordHash,
		}
		if err := im.db.Create(&staff).Error; err != nil {
			im.logger.Warn("import: staff row skipped", zap.String("employee_id", employeeID), zap.Error(err))
			continue
		}
		imported++
	}
	return imported
}

func (im *ImportService) importInventory(rows [][]string) int {
	storeIdx := headerIndex(rows[0], "店舗", "store")
	stockIdx := headerIndex(rows[0], "在庫数", "stock_count")
	if storeIdx < 0 || stockIdx < 0 {
		return 0
	}
	imported := 0
	for _, row := range rows[1:] {
		store := cellAt(row, storeIdx)
		if store == "" {
			continue
		}
		var count int64
		if im.db.Model(&models.WigInventory{}).Where(foldedWhere("store"), foldKey(store)).Count(&count); count > 0 {
			continue
		}
		stock, err := strconv.Atoi(cellAt(row, stockIdx))
		if err != nil {
			stock = 0
		}
		if err := im.db.Create(&models.WigInventory{Store: store, StockCount: stock}).Error; err != nil {
			im.logger.Warn("import: inventory row skipped", zap.String("store", store), zap.Error(err))
			continue
		}
		imported++
	}
	return imported
}
