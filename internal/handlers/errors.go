package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/wellbeing/backend/internal/apierror"
	"github.com/JonnyWalker81/wellbeing/backend/internal/logger"
	"github.com/JonnyWalker81/wellbeing/backend/internal/repository"
	"github.com/JonnyWalker81/wellbeing/backend/internal/service"
	"github.com/JonnyWalker81/wellbeing/backend/internal/wellbeing"
)

// writeServiceError maps a service error onto a problem response
func writeServiceError(c *gin.Context, err error, op string) {
	requestID := apierror.GetRequestID(c)
	log := logger.Ctx(c.Request.Context())

	switch {
	case errors.Is(err, service.ErrInvalidUserID):
		log.Warn("authenticated user id is not a uuid", logger.String("op", op), logger.Err(err))
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(requestID))
	case errors.Is(err, wellbeing.ErrInvalidRange):
		apierror.WriteProblem(c, apierror.NewValidationError(requestID, []apierror.FieldError{apierror.InvalidRange()}))
	case errors.Is(err, repository.ErrUpstream):
		log.Error("record store failed", logger.String("op", op), logger.Err(err))
		apierror.WriteProblem(c, apierror.NewBadGatewayError(requestID))
	default:
		log.Error("request failed", logger.String("op", op), logger.Err(err))
		apierror.WriteProblem(c, apierror.NewInternalError(requestID))
	}
}

// requireUser returns the authenticated user id or writes a 401
func requireUser(c *gin.Context) (string, bool) {
	userID := c.GetString("user_id")
	if userID == "" {
		apierror.WriteProblem(c, apierror.NewUnauthorizedError(apierror.GetRequestID(c)))
		return "", false
	}
	return userID, true
}

// bindQuery parses the query parameters or writes a 400
func bindQuery(c *gin.Context, withRange bool) (service.Query, bool) {
	q, errs := parseQuery(c, withRange)
	if len(errs) > 0 {
		apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), errs))
		return q, false
	}
	return q, true
}
