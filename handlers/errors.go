package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/Present111/Hotel-Booking/services/booking"
	"github.com/Present111/Hotel-Booking/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

func init() {
	// Report binding failures under the JSON names clients send.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

var kindStatus = map[booking.ErrorKind]int{
	booking.KindNotFound:            http.StatusNotFound,
	booking.KindValidation:          http.StatusBadRequest,
	booking.KindIntentMismatch:      http.StatusBadRequest,
	booking.KindPaymentNotSucceeded: http.StatusBadRequest,
	booking.KindGateway:             http.StatusBadGateway,
	booking.KindStore:               http.StatusInternalServerError,
	booking.KindForbidden:           http.StatusForbidden,
	booking.KindConflict:            http.StatusConflict,
}

// StatusForKind maps an engine error kind to its HTTP status.
func StatusForKind(kind booking.ErrorKind) int {
	if status, ok := kindStatus[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// respondError writes err as an ErrorResponse. Internal causes are logged, never returned.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var be *booking.BookingError
	if !errors.As(err, &be) {
		logger.Error("Unexpected error", zap.String("path", c.FullPath()), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "Something went wrong"})
		return
	}

	status := StatusForKind(be.Kind)
	fields := []zap.Field{
		zap.String("path", c.FullPath()),
		zap.String("kind", string(be.Kind)),
		zap.Int("status", status),
	}
	if be.Err != nil {
		fields = append(fields, zap.Error(be.Err))
	}
	if status >= http.StatusInternalServerError {
		logger.Error(be.Message, fields...)
	} else {
		logger.Info(be.Message, fields...)
	}
	c.AbortWithStatusJSON(status, utils.ErrorResponse{Message: be.Message, Errors: be.Fields})
}

// respondBindError converts a gin binding failure into a per-field 400.
func respondBindError(c *gin.Context, err error) {
	utils.JSONValidationError(c, "invalid request body", bindingFieldErrors(err))
}

func bindingFieldErrors(err error) []utils.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]utils.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, utils.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []utils.FieldError{{Field: typeErr.Field, Message: fmt.Sprintf("must be a %s", typeErr.Type)}}
	}
	return []utils.FieldError{{Field: "body", Message: "malformed JSON"}}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}
