package controllers

import (
	"strings"
	"time"

	"pdrims-http-service/internal/app/middleware"
	"pdrims-http-service/internal/domain/models"
	"pdrims-http-service/internal/domain/services"
	"pdrims-http-service/internal/domain/services/container"
	"pdrims-http-service/internal/error/code"
	"pdrims-http-service/internal/error/response"

	"github.com/gin-gonic/gin"
)

// JWTController handles login and logout
type JWTController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJWTController creates a new auth controller
func NewJWTController(ctx *gin.Context, container *container.ServiceContainer) *JWTController {
	return &JWTController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is the login body. username carries the email, as the web
// client sends it; email is accepted too.
type LoginRequest struct {
	Username string `json:"username" example:"admin@pdrims.gov"`
	Email    string `json:"email"`
	Password string `json:"password" example:"admin123"`
}

// LoginData is the authenticated user plus a session token
type LoginData struct {
	models.User
	Name      string    `json:"name" example:"Administrator, System"`
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time `json:"expires_at"`
}

// HandleJWTFunc returns a gin handler for auth requests
func HandleJWTFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJWTController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "logout":
			controller.Logout()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "invalid method")
		}
	}
}

// Login authenticates a user
// @Summary      User Login
// @Description  Returns the user and a bearer token. Accounts pending approval are refused.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  LoginData
// @Failure      400  {object}  response.ErrorResponse
// @Failure      401  {object}  response.ErrorResponse
// @Failure      403  {object}  response.ErrorResponse
// @Router       /login [post]
func (c *JWTController) Login() {
	var req LoginRequest
	if !bindJSON(c.Ctx, &req) {
		return
	}
	email := req.Username
	if strings.TrimSpace(email) == "" {
		email = req.Email
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.Authenticate(c.Ctx.Request.Context(), email, req.Password)
	if err != nil {
		response.HandleError(c.Ctx, err, code.ErrUserPasswordIncorrect)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, expiresAt, err := jwtService.GenerateToken(user)
	if err != nil {
		response.HandleError(c.Ctx, err, 0)
		return
	}

	response.Success(c.Ctx, LoginData{
		User:      *user,
		Name:      user.DisplayName(),
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// Logout revokes the current token
// @Summary      User Logout
// @Tags         Auth
// @Produce      json
// @Success      200  {object}  response.SuccessResponse
// @Failure      401  {object}  response.ErrorResponse
// @Router       /logout [post]
// @Security     BearerAuth
func (c *JWTController) Logout() {
	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	if err := jwtService.RevokeToken(c.Ctx.Request.Context(), middleware.CurrentClaims(c.Ctx)); err != nil {
		response.HandleError(c.Ctx, err, 0)
		return
	}
	response.OK(c.Ctx)
}
