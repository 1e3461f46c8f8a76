// internal/handlers/admin.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fanwell/fanwell-backend/internal/i18n"
	"github.com/fanwell/fanwell-backend/internal/models"
	"github.com/fanwell/fanwell-backend/internal/services"
	"github.com/fanwell/fanwell-backend/internal/utils"
)

type AdminHandler struct {
	reportService      *services.ReportService
	enforcementService *services.EnforcementService
	credibilityService *services.CredibilityService
	suspensionService  *services.SuspensionService
	storageService     *services.StorageService
}

func NewAdminHandler(reportService *services.ReportService, enforcementService *services.EnforcementService, credibilityService *services.CredibilityService, suspensionService *services.SuspensionService, storageService *services.StorageService) *AdminHandler {
	return &AdminHandler{
		reportService:      reportService,
		enforcementService: enforcementService,
		credibilityService: credibilityService,
		suspensionService:  suspensionService,
		storageService:     storageService,
	}
}

// GET /admin/reports
func (h *AdminHandler) GetReports(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := services.ReportQueueFilter{
		PaginationParams: params,
	}

	// The queue defaults to pending; "all" lifts the restriction.
	status := c.DefaultQuery("status", string(models.ReportStatusPending))
	if status != "all" {
		s := models.ReportStatus(status)
		filter.Status = &s
	}

	if reportType := c.Query("report_type"); reportType != "" && reportType != "all" {
		t := models.ReportType(reportType)
		filter.ReportType = &t
	}

	if reason := c.Query("reason"); reason != "" && reason != "all" {
		r := models.ReportReason(reason)
		filter.Reason = &r
	}

	reports, total, err := h.reportService.GetReports(filter)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(reports, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /admin/reports/:id
func (h *AdminHandler) GetReportDetail(c *gin.Context) {
	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid report ID", nil)
		return
	}

	detail, err := h.reportService.GetReportDetail(reportID)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			utils.NotFoundResponse(c, "report")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	// Evidence lives in a private bucket; hand the reviewer presigned reads.
	for i, url := range detail.Report.EvidenceURLs {
		detail.Report.EvidenceURLs[i] = h.storageService.EvidenceViewURL(url)
	}

	utils.SuccessResponse(c, detail)
}

// PUT /admin/reports/:id/review
func (h *AdminHandler) ReviewReport(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	reportID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid report ID", nil)
		return
	}

	adminID, ok := currentUserID(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return
	}

	var input services.ReviewReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&input)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	input.IPAddress = c.ClientIP()

	if err := h.enforcementService.ReviewReport(reportID, adminID, input); err != nil {
		switch {
		case errors.Is(err, services.ErrReportNotFound):
			utils.NotFoundResponse(c, "report")
		case errors.Is(err, services.ErrAlreadyResolved):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyReportAlreadyResolved))
		case errors.Is(err, services.ErrMissingSuspensionContext):
			utils.ErrorResponse(c, http.StatusUnprocessableEntity, "MISSING_SUSPENSION_CONTEXT", err.Error(), nil)
		case errors.Is(err, services.ErrInvalidReportInput):
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "action"), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	messageKey := i18n.KeyReportResolved
	if input.Action == models.ActionDismissed {
		messageKey = i18n.KeyReportDismissed
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, messageKey),
	})
}

// GET /admin/reporters/:id/credibility
func (h *AdminHandler) GetReporterCredibility(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	cred, err := h.credibilityService.Get(userID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	if cred == nil {
		utils.NotFoundResponse(c, "user")
		return
	}

	utils.SuccessResponse(c, gin.H{"credibility": cred})
}

// GET /admin/users/:id/suspensions
func (h *AdminHandler) GetSuspensionHistory(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	suspensions, err := h.suspensionService.GetHistory(userID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"suspensions": suspensions})
}

// GET /admin/audit-logs
func (h *AdminHandler) GetAuditLogs(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := services.AuditLogFilter{
		Action:     c.Query("action"),
		TargetType: c.Query("target_type"),
		Page:       params.Page,
		Limit:      params.Limit,
	}

	if adminIDStr := c.Query("admin_id"); adminIDStr != "" {
		if adminID, err := uuid.Parse(adminIDStr); err == nil {
			filter.AdminID = &adminID
		}
	}

	logs, total, err := h.enforcementService.GetAuditLogs(filter)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(logs, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /admin/dashboard/stats
func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.reportService.GetDashboardStats()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{"stats": stats})
}
