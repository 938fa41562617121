package middleware

import (
	"strconv"

	"github.com/akshayraj-industries/website-backend/errors"
	"github.com/akshayraj-industries/website-backend/logger"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the context into the uniform
// response envelope. Handlers call c.Error(err) and return; this middleware
// owns the status code and body.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*errors.AppError); ok {
			statusCode := appError.GetHTTPStatus()

			log.Infow("Request failed",
				"type", appError.Type,
				"status", statusCode,
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"client_ip", c.ClientIP())

			if appError.RetryAfterSeconds > 0 {
				c.Header("Retry-After", strconv.Itoa(appError.RetryAfterSeconds))
			}

			message := appError.Message
			// Validation details are client-fixable, everything else stays
			// server-side.
			if appError.Type == errors.ValidationError && appError.Detail != "" {
				message = appError.Message + ": " + appError.Detail
			}

			c.JSON(statusCode, types.NewError(message))
			return
		}

		// Gin binding failures surface as 422 like any other invalid input.
		if c.Errors.Last().Type == gin.ErrorTypeBind {
			log.Infow("Request binding failed",
				"error", err,
				"path", c.Request.URL.Path)
			c.JSON(422, types.NewError("Invalid request body"))
			return
		}

		log.Errorw("Unhandled request error",
			"error", err,
			"path", c.Request.URL.Path,
			"method", c.Request.Method)
		c.JSON(500, types.NewError("An error occurred while processing your request. Please try again later."))
	}
}
