package controllers

import (
	"pdrims-http-service/internal/domain/services"
	"pdrims-http-service/internal/domain/services/container"
	"pdrims-http-service/internal/error/code"
	"pdrims-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// AidRecordController handles aid distribution requests
type AidRecordController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAidRecordController creates a new aid record controller
func NewAidRecordController(ctx *gin.Context, container *container.ServiceContainer) *AidRecordController {
	return &AidRecordController{
		Ctx:       ctx,
		Container: container,
	}
}

// AidRecordRequest is the body of an aid distribution or edit.
// recipient_id is ignored on edit.
type AidRecordRequest struct {
	RecipientID     string `json:"recipient_id" example:"3F9K2Q7ZL0AB"`
	AidType         string `json:"aid_type" example:"Food Pack"`
	Quantity        string `json:"quantity" example:"2 boxes"`
	DateDistributed string `json:"date_distributed" example:"2025-01-01"`
	DistributedBy   string `json:"distributed_by" example:"LGU"`
	Notes           string `json:"notes"`
	OfficialName    string `json:"official_name"`
}

func (r *AidRecordRequest) toInput(actor string) services.AidInput {
	return services.AidInput{
		AidType:         r.AidType,
		Quantity:        r.Quantity,
		DateDistributed: r.DateDistributed,
		DistributedBy:   r.DistributedBy,
		Notes:           r.Notes,
		OfficialName:    actor,
	}
}

// HandleAidRecordFunc returns a gin handler for aid record requests
func HandleAidRecordFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAidRecordController(ctx, container)

		switch method {
		case "getAidRecords":
			controller.GetAidRecords()
		case "createAidRecord":
			controller.CreateAidRecord()
		case "updateAidRecord":
			controller.UpdateAidRecord()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

func (c *AidRecordController) service() services.InterfaceAidRecordService {
	return c.Container.GetService("aid_record").(services.InterfaceAidRecordService)
}

// 1. GetAidRecords lists aid records
// @Summary List aid records
// @Description Newest first.
// @Tags AidRecord
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AidRecord
// @Failure 401 {object} response.ErrorResponse
// @Router /aid-records [get]
func (c *AidRecordController) GetAidRecords() {
	records, err := c.service().ListAid(c.Ctx.Request.Context())
	if err != nil {
		response.HandleError(c.Ctx, err, code.ErrAidRecordNotFound)
		return
	}
	response.Success(c.Ctx, records)
}

// 2. CreateAidRecord records a distribution
// @Summary Record aid
// @Description The recipient must be an existing household.
// @Tags AidRecord
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AidRecordRequest true "Aid record"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Router /aid-records [post]
func (c *AidRecordController) CreateAidRecord() {
	var req AidRecordRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	id, err := c.service().RecordAid(c.Ctx.Request.Context(), req.RecipientID, req.toInput(actorName(c.Ctx, req.OfficialName)))
	if err != nil {
		response.HandleError(c.Ctx, err, code.ErrAidRecordNotFound)
		return
	}
	response.Created(c.Ctx, id)
}

// 3. UpdateAidRecord edits a distribution
// @Summary Update aid record
// @Tags AidRecord
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Aid record ID"
// @Param request body AidRecordRequest true "Aid record"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /aid-records/{id} [put]
func (c *AidRecordController) UpdateAidRecord() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		return
	}
	var req AidRecordRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	if err := c.service().UpdateAid(c.Ctx.Request.Context(), id, req.toInput(actorName(c.Ctx, req.OfficialName))); err != nil {
		response.HandleError(c.Ctx, err, code.ErrAidRecordNotFound)
		return
	}
	response.OK(c.Ctx)
}
