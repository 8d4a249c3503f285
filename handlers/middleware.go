package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"rentease-backend/domain"
	"rentease-backend/services"
	"rentease-backend/utils"
)

// AuthMiddleware resolves the bearer credential to a user and stores it in
// the request context. Every ownership check downstream reads the resolved
// user, never a client-supplied id.
func AuthMiddleware(userService services.UserService, secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var accessToken string
		cookie, err := ctx.Cookie("access_token")

		authorizationHeader := ctx.Request.Header.Get("Authorization")
		fields := strings.Fields(authorizationHeader)

		if len(fields) > 1 && fields[0] == "Bearer" {
			accessToken = fields[1]
		} else if err == nil {
			accessToken = cookie
		}

		if accessToken == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
			return
		}

		claims, err := utils.ValidateToken(accessToken, secret)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token."})
			return
		}

		user, err := userService.FindUserById(ctx.Request.Context(), claims.ID)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "The user belonging to this token no longer exists"})
			return
		}

		ctx.Set("currentUser", user)
		ctx.Next()
	}
}

// CurrentUser reads the user resolved by AuthMiddleware.
func CurrentUser(ctx *gin.Context) *domain.User {
	value, exists := ctx.Get("currentUser")
	if !exists {
		return nil
	}
	user, ok := value.(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// RequestIDMiddleware tags every request with an id for log correlation.
func RequestIDMiddleware(logger *logrus.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Writer.Header().Set("X-Request-Id", requestID)
		ctx.Set("requestID", requestID)

		logger.WithFields(logrus.Fields{
			"requestId": requestID,
			"method":    ctx.Request.Method,
			"path":      ctx.Request.URL.Path,
		}).Info("request received")

		ctx.Next()
	}
}
