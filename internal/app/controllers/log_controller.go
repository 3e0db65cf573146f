package controllers

import (
	"strconv"

	"pdrims-http-service/internal/domain/services"
	"pdrims-http-service/internal/domain/services/container"
	"pdrims-http-service/internal/error/code"
	"pdrims-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// LogController serves the audit trail and the resident inbox
type LogController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewLogController creates a new log controller
func NewLogController(ctx *gin.Context, container *container.ServiceContainer) *LogController {
	return &LogController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleLogFunc returns a gin handler for log and inbox requests
func HandleLogFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewLogController(ctx, container)

		switch method {
		case "getLogs":
			controller.GetLogs()
		case "getInbox":
			controller.GetInbox()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// 1. GetLogs lists recent audit entries
// @Summary List audit log
// @Description At most 100 entries, newest first.
// @Tags Log
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries, 1-100"
// @Success 200 {array} models.SystemLog
// @Failure 403 {object} response.ErrorResponse
// @Router /logs [get]
func (c *LogController) GetLogs() {
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", strconv.Itoa(services.MaxLogEntries)))

	auditService := c.Container.GetService("audit").(services.InterfaceAuditService)
	logs, err := auditService.ListLogs(c.Ctx.Request.Context(), limit)
	if err != nil {
		response.HandleError(c.Ctx, err, 0)
		return
	}
	response.Success(c.Ctx, logs)
}

// 2. GetInbox lists resident inquiries
// @Summary List inbox
// @Description Newest first.
// @Tags Inbox
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.InboxMessage
// @Failure 403 {object} response.ErrorResponse
// @Router /inbox [get]
func (c *LogController) GetInbox() {
	inboxService := c.Container.GetService("inbox").(services.InterfaceInboxService)
	messages, err := inboxService.ListInbox(c.Ctx.Request.Context())
	if err != nil {
		response.HandleError(c.Ctx, err, 0)
		return
	}
	response.Success(c.Ctx, messages)
}
