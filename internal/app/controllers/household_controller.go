package controllers

import (
	"pdrims-http-service/internal/domain/services"
	"pdrims-http-service/internal/domain/services/container"
	"pdrims-http-service/internal/error/code"
	"pdrims-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceHouseholdController defines the household controller interface
type InterfaceHouseholdController interface {
	GetHouseholds()
	GetHousehold()
	CreateHousehold()
	UpdateHousehold()
}

// HouseholdController handles household requests
type HouseholdController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHouseholdController creates a new household controller
func NewHouseholdController(ctx *gin.Context, container *container.ServiceContainer) *HouseholdController {
	return &HouseholdController{
		Ctx:       ctx,
		Container: container,
	}
}

// HouseholdRequest is the body of a household intake or edit
type HouseholdRequest struct {
	HeadName      string                 `json:"head_name" example:"Juan Dela Cruz"`
	Purok         string                 `json:"purok" example:"Purok 3"`
	DamageStatus  string                 `json:"damage_status" example:"Moderate"`
	HeadAge       FlexibleInt            `json:"head_age" swaggertype:"integer" example:"50"`
	ContactNumber string                 `json:"contact_number" example:"0917000001"`
	FamilyMembers services.FamilyMembers `json:"family_members" swaggertype:"array,object"`
	InitialNeeds  string                 `json:"initial_needs" example:"Water"`
	OfficialName  string                 `json:"official_name" example:"Kagawad Santos"`
}

func (r *HouseholdRequest) toInput(actor string) services.HouseholdInput {
	return services.HouseholdInput{
		HeadName:      r.HeadName,
		Purok:         r.Purok,
		DamageStatus:  r.DamageStatus,
		HeadAge:       r.HeadAge.Value,
		ContactNumber: r.ContactNumber,
		FamilyMembers: r.FamilyMembers,
		InitialNeeds:  r.InitialNeeds,
		OfficialName:  actor,
	}
}

// HandleHouseholdFunc returns a gin handler for household requests
func HandleHouseholdFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHouseholdController(ctx, container)

		switch method {
		case "getHouseholds":
			controller.GetHouseholds()
		case "getHousehold":
			controller.GetHousehold()
		case "createHousehold":
			controller.CreateHousehold()
		case "updateHousehold":
			controller.UpdateHousehold()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

func (c *HouseholdController) service() services.InterfaceHouseholdService {
	return c.Container.GetService("household").(services.InterfaceHouseholdService)
}

// 1. GetHouseholds lists every household
// @Summary List households
// @Description Every household in intake order, with family members decoded. A record whose stored family data is unreadable carries familyMembersError.
// @Tags Household
// @Produce json
// @Security BearerAuth
// @Success 200 {array} services.HouseholdView
// @Failure 401 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Failure 504 {object} response.ErrorResponse
// @Router /households [get]
func (c *HouseholdController) GetHouseholds() {
	households, err := c.service().ListHouseholds(c.Ctx.Request.Context())
	if err != nil {
		response.HandleError(c.Ctx, err, code.ErrHouseholdNotFound)
		return
	}
	response.Success(c.Ctx, households)
}

// 2. GetHousehold reads one household
// @Summary Get household
// @Tags Household
// @Produce json
// @Security BearerAuth
// @Param id path string true "Household ID"
// @Success 200 {object} services.HouseholdView
// @Failure 404 {object} response.ErrorResponse
// @Router /households/{id} [get]
func (c *HouseholdController) GetHousehold() {
	household, err := c.service().GetHousehold(c.Ctx.Request.Context(), c.Ctx.Param("id"))
	if err != nil {
		response.HandleError(c.Ctx, err, code.ErrHouseholdNotFound)
		return
	}
	response.Success(c.Ctx, household)
}

// 3. CreateHousehold registers a household
// @Summary Create household
// @Description head_age accepts a number or a numeric string.
// @Tags Household
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body HouseholdRequest true "Household"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Router /households [post]
func (c *HouseholdController) CreateHousehold() {
	var req HouseholdRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	id, err := c.service().CreateHousehold(c.Ctx.Request.Context(), req.toInput(actorName(c.Ctx, req.OfficialName)))
	if err != nil {
		response.HandleError(c.Ctx, err, code.ErrHouseholdNotFound)
		return
	}
	response.Created(c.Ctx, id)
}

// 4. UpdateHousehold overwrites a household
// @Summary Update household
// @Tags Household
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Household ID"
// @Param request body HouseholdRequest true "Household"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /households/{id} [put]
func (c *HouseholdController) UpdateHousehold() {
	var req HouseholdRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	err := c.service().UpdateHousehold(c.Ctx.Request.Context(), c.Ctx.Param("id"), req.toInput(actorName(c.Ctx, req.OfficialName)))
	if err != nil {
		response.HandleError(c.Ctx, err, code.ErrHouseholdNotFound)
		return
	}
	response.OK(c.Ctx)
}
