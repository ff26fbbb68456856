package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lshigami/selfcheck/internal/apperror"
	"github.com/lshigami/selfcheck/internal/dto"
	"github.com/rs/zerolog/log"
)

// RespondError writes err as the API's error body with the status of its kind.
// Server-side failures are logged here and hidden from the client.
func RespondError(ctx *gin.Context, op string, err error) {
	status := apperror.HTTPStatus(err)
	message, details := apperror.PublicMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", ctx.FullPath()).Msg(op + ": Service error")
	} else {
		log.Warn().Err(err).Str("path", ctx.FullPath()).Msg(op + ": Request rejected")
	}
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: details})
}

// RespondBindError reports a request body that failed binding, one detail per field.
func RespondBindError(ctx *gin.Context, op string, err error) {
	log.Warn().Err(err).Msg(op + ": Failed to bind JSON")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: bindDetails(err)})
}

func bindDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			details = append(details, fmt.Sprintf("%s failed on '%s=%s'", fe.Namespace(), fe.Tag(), fe.Param()))
		} else {
			details = append(details, fmt.Sprintf("%s failed on '%s'", fe.Namespace(), fe.Tag()))
		}
	}
	return details
}

// UintParam parses a numeric path parameter, answering 400 when it is not one.
func UintParam(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: fmt.Sprintf("Invalid %s format", name)})
		return 0, false
	}
	return uint(val), true
}
