// internal/handlers/report.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fanwell/fanwell-backend/internal/i18n"
	"github.com/fanwell/fanwell-backend/internal/services"
	"github.com/fanwell/fanwell-backend/internal/utils"
)

type ReportHandler struct {
	reportService  *services.ReportService
	storageService *services.StorageService
}

func NewReportHandler(reportService *services.ReportService, storageService *services.StorageService) *ReportHandler {
	return &ReportHandler{
		reportService:  reportService,
		storageService: storageService,
	}
}

// POST /reports
func (h *ReportHandler) CreateReport(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	reporterID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var input services.CreateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&input)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	report, err := h.reportService.CreateReport(reporterID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRateLimited):
			utils.TooManyRequestsResponse(c, i18n.T(lang, i18n.KeyReportRateLimited))
		case errors.Is(err, services.ErrTargetNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND",
				i18n.T(lang, i18n.KeyReportTargetNotFound), nil)
		case errors.Is(err, services.ErrSelfReport):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyReportSelfReport), nil)
		case errors.Is(err, services.ErrDuplicateReport):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyReportDuplicate))
		case errors.Is(err, services.ErrInvalidReportInput):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "report"), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.CreatedResponse(c, gin.H{
		"report":  report,
		"message": i18n.T(lang, i18n.KeyReportCreated),
	})
}

// POST /reports/evidence
func (h *ReportHandler) UploadEvidence(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if _, ok := currentUserID(c); !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "file"), nil)
		return
	}
	defer file.Close()

	result, err := h.storageService.UploadFile(file, header, services.EvidenceUploadOptions())
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{"upload": result})
}

// GET /reports/mine
func (h *ReportHandler) GetMyReports(c *gin.Context) {
	reporterID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	params := utils.GetPaginationParams(c)
	reports, total, err := h.reportService.GetReportsByReporter(reporterID, params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(reports, total, params)
	utils.PaginatedResponse(c, result)
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	idStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
