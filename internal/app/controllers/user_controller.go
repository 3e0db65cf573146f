package controllers

import (
	"pdrims-http-service/internal/domain/models"
	"pdrims-http-service/internal/domain/services"
	"pdrims-http-service/internal/domain/services/container"
	"pdrims-http-service/internal/error/code"
	"pdrims-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceUserController defines the user controller interface
type InterfaceUserController interface {
	GetUsers()
	CreateUser()
	ApproveUser()
	DeleteUser()
}

// UserController handles account administration
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController creates a new user controller
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateUserRequest is the body of an admin-created account
type CreateUserRequest struct {
	Surname       string      `json:"surname" example:"Dela Cruz"`
	FirstName     string      `json:"first_name" example:"Maria"`
	MiddleInitial string      `json:"middle_initial" example:"S"`
	Email         string      `json:"email" example:"maria@barangay.gov.ph"`
	Password      string      `json:"password" example:"secret123"`
	Role          models.Role `json:"role" example:"official"`
	Position      string      `json:"position" example:"Kagawad"`
	ContactNumber string      `json:"contact_number" example:"0917-000-0001"`
	Age           FlexibleInt `json:"age" swaggertype:"integer" example:"35"`
	Purok         string      `json:"purok" example:"Purok 1"`
	HouseholdHead string      `json:"household_head"`
	IsHead        bool        `json:"is_head"`
	Verified      *bool       `json:"verified"`
	AdminName     string      `json:"adminName"`
}

// AdminActionRequest optionally names the acting admin
type AdminActionRequest struct {
	AdminName string `json:"adminName" example:"Kyle Grant G. Lapid"`
}

// HandleUserFunc returns a gin handler for user requests
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "createUser":
			controller.CreateUser()
		case "approveUser":
			controller.ApproveUser()
		case "deleteUser":
			controller.DeleteUser()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

func (c *UserController) service() services.InterfaceUserService {
	return c.Container.GetService("user").(services.InterfaceUserService)
}

// 1. GetUsers lists accounts
// @Summary      List users
// @Description  Newest first, with a display name.
// @Tags         User
// @Produce      json
// @Success      200  {array}   services.UserView
// @Failure      403  {object}  response.ErrorResponse
// @Router       /users [get]
// @Security     BearerAuth
func (c *UserController) GetUsers() {
	users, err := c.service().ListUsers(c.Ctx.Request.Context())
	if err != nil {
		response.HandleError(c.Ctx, err, code.ErrUserNotFound)
		return
	}
	response.Success(c.Ctx, users)
}

// 2. CreateUser adds an account
// @Summary      Create user
// @Description  Role defaults to viewer. The account is active unless verified is false.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body CreateUserRequest true "Account"
// @Success      200  {object}  response.SuccessResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      409  {object}  response.ErrorResponse
// @Router       /users [post]
// @Security     BearerAuth
func (c *UserController) CreateUser() {
	var req CreateUserRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}

	input := services.CreateUserInput{
		Surname:       req.Surname,
		FirstName:     req.FirstName,
		MiddleInitial: req.MiddleInitial,
		Email:         req.Email,
		Password:      req.Password,
		Role:          req.Role,
		Position:      req.Position,
		ContactNumber: req.ContactNumber,
		Age:           req.Age.Value,
		Purok:         req.Purok,
		HouseholdHead: req.HouseholdHead,
		IsHead:        req.IsHead,
		Verified:      req.Verified,
		Actor:         req.AdminName,
	}
	id, err := c.service().CreateUser(c.Ctx.Request.Context(), input)
	if err != nil {
		response.HandleError(c.Ctx, err, code.ErrUserNotFound)
		return
	}
	response.Created(c.Ctx, id)
}

// 3. ApproveUser activates a pending account
// @Summary      Approve user
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        id path int true "User ID"
// @Param        request body AdminActionRequest false "Acting admin"
// @Success      200  {object}  response.SuccessResponse
// @Failure      404  {object}  response.ErrorResponse
// @Router       /users/approve/{id} [post]
// @Security     BearerAuth
func (c *UserController) ApproveUser() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		return
	}
	var req AdminActionRequest
	if !bindOptionalJSON(c.Ctx, &req) {
		return
	}

	if err := c.service().ApproveUser(c.Ctx.Request.Context(), id, actorName(c.Ctx, req.AdminName)); err != nil {
		response.HandleError(c.Ctx, err, code.ErrUserNotFound)
		return
	}
	response.OK(c.Ctx)
}

// 4. DeleteUser removes an account
// @Summary      Delete user
// @Description  The last admin cannot be deleted.
// @Tags         User
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200  {object}  response.SuccessResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      409  {object}  response.ErrorResponse
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (c *UserController) DeleteUser() {
	id, ok := parseUintParam(c.Ctx, "id")
	if !ok {
		return
	}
	var req AdminActionRequest
	if !bindOptionalJSON(c.Ctx, &req) {
		return
	}

	if err := c.service().DeleteUser(c.Ctx.Request.Context(), id, actorName(c.Ctx, req.AdminName)); err != nil {
		response.HandleError(c.Ctx, err, code.ErrUserNotFound)
		return
	}
	response.OK(c.Ctx)
}
