// internal/middleware/suspension.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fanwell/fanwell-backend/internal/i18n"
	"github.com/fanwell/fanwell-backend/internal/services"
	"github.com/fanwell/fanwell-backend/internal/utils"
)

// SuspensionGate rejects requests from suspended users. Expired temporary
// suspensions are deactivated lazily on first sight, so an expired record
// never blocks access past its ends_at.
func SuspensionGate(suspensionService *services.SuspensionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr, exists := utils.GetUserIDFromContext(c)
		if !exists {
			c.Next()
			return
		}

		userID, err := uuid.Parse(idStr)
		if err != nil {
			c.Next()
			return
		}

		suspension, err := suspensionService.CheckAccess(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check account status"})
			c.Abort()
			return
		}

		if suspension != nil {
			lang := utils.GetLangFromContext(c)
			c.JSON(http.StatusForbidden, gin.H{
				"error":   i18n.T(lang, i18n.KeySuspensionActive),
				"reason":  suspension.Reason,
				"type":    suspension.Type,
				"ends_at": suspension.EndsAt,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
