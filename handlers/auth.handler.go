package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"rentease-backend/domain"
	"rentease-backend/services"
	"rentease-backend/utils"
)

type AuthHandler struct {
	userService services.UserService
	secret      string
	Tracer      trace.Tracer
	logger      *logrus.Logger
}

func NewAuthHandler(userService services.UserService, secret string, tr trace.Tracer, logger *logrus.Logger) AuthHandler {
	return AuthHandler{userService, secret, tr, logger}
}

func (ac *AuthHandler) Registration(ctx *gin.Context) {
	spanCtx, span := ac.Tracer.Start(ctx.Request.Context(), "AuthHandler.Registration")
	defer span.End()

	var input *domain.RegisterInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	existing, err := ac.userService.FindUserByEmail(spanCtx, input.Email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	if existing != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": domain.ErrUserAlreadyExists().Error()})
		return
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	user := &domain.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashedPassword,
		UserRole: domain.Guest,
	}

	if _, err := ac.userService.CreateUser(spanCtx, user); err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ac.logger.WithFields(logrus.Fields{"email": user.Email}).Info("user registered")
	ctx.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (ac *AuthHandler) Login(ctx *gin.Context) {
	spanCtx, span := ac.Tracer.Start(ctx.Request.Context(), "AuthHandler.Login")
	defer span.End()

	var credentials *domain.LoginInput

	if err := ctx.ShouldBindJSON(&credentials); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := ac.userService.FindUserByEmail(spanCtx, credentials.Email)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	// the same message for an unknown email and a wrong password
	if user == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": domain.ErrInvalidCredentials().Error()})
		return
	}

	if err := utils.VerifyPassword(user.Password, credentials.Password); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": domain.ErrInvalidCredentials().Error()})
		return
	}

	accessToken, err := utils.CreateToken(user, ac.secret)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ac.logger.WithFields(logrus.Fields{"email": user.Email}).Info("user logged in")
	ctx.JSON(http.StatusOK, gin.H{"token": accessToken, "user": user.ToResponse()})
}

// Logout acknowledges the request; tokens are stateless and expire on
// their own.
func (ac *AuthHandler) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
