package middleware

import (
	"encoding/json"
	"strings"
	"time"

	"valvetrace/internal/core/domain"
	"valvetrace/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog creates an audit middleware that logs successful write operations.
// It maps HTTP methods and paths to audit actions.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		if c.Request.Method == "GET" || c.Request.Method == "HEAD" || c.Request.Method == "OPTIONS" {
			return
		}

		action, resourceType := mapPathToAction(c.Request.URL.Path, c.Request.Method)
		if action == "" {
			return
		}

		var actorID *uuid.UUID
		if aid, exists := c.Get(CtxActorID); exists {
			if id, ok := aid.(uuid.UUID); ok {
				actorID = &id
			}
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			ActorID:      actorID,
			Action:       action,
			ResourceType: resourceType,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapPathToAction(path, method string) (domain.AuditAction, string) {
	if method != "POST" {
		return "", ""
	}
	switch {
	case path == "/api/v1/auth/register":
		return domain.AuditActionRegister, "actor"
	case path == "/api/v1/auth/login":
		return domain.AuditActionLogin, "session"
	case path == "/api/v1/assets":
		return domain.AuditActionTokenize, "asset"
	case path == "/api/v1/returns":
		return domain.AuditActionReturnRequest, "return_request"
	case strings.HasPrefix(path, "/api/v1/returns/") && strings.HasSuffix(path, "/approve"):
		return domain.AuditActionReturnDecision, "return_request"
	case strings.HasPrefix(path, "/api/v1/assets/") && strings.HasSuffix(path, "/transfers"):
		return domain.AuditActionTransfer, "asset"
	case strings.HasPrefix(path, "/api/v1/assets/") && strings.HasSuffix(path, "/burn"):
		return domain.AuditActionBurn, "asset"
	case strings.HasPrefix(path, "/api/v1/assets/") && strings.HasSuffix(path, "/restore"):
		return domain.AuditActionRestore, "asset"
	}
	return "", ""
}
