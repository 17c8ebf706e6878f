package controllers

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/QUARTER-salon/practice-tracker/services"
	"github.com/QUARTER-salon/practice-tracker/utils"
)

// ImportController handles the one-time legacy data migration upload.
type ImportController struct {
	importer *services.ImportService
}

// NewImportController builds an import controller.
func NewImportController(importer *services.ImportService) *ImportController {
	return &ImportController{importer: importer}
}

// Import handles POST /api/v1/admin/import - a multipart .xlsx upload
// of the legacy spreadsheet. Returns per-table imported row counts.
func (ic *ImportController) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("a workbook file is required"))
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".xlsx") {
		utils.RespondError(c, utils.NewValidationError("only .xlsx workbooks are supported"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondError(c, utils.NewValidationError("failed to open the uploaded file"))
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("warning: failed to close upload: %v", closeErr)
		}
	}()

	counts, err := ic.importer.ImportWorkbook(file)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondDataMessage(c, counts, "legacy data imported")
}
