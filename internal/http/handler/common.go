package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"
	"github.com/sendsafe/sendsafe-api/internal/domain"
	"github.com/sendsafe/sendsafe-api/internal/service"
	"go.uber.org/zap"
)

var validate = newValidator()

// newValidator reports fields under their JSON names so error keys match the request body
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// decodeAndValidate reads a JSON body into target and runs struct validation.
// It writes the error response itself and reports whether the handler may continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(target); err != nil {
		respondValidationError(w, err)
		return false
	}
	return true
}

func parseIDParam(w http.ResponseWriter, r *http.Request, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Invalid %s ID: must be a valid UUID", label))
		return uuid.Nil, false
	}
	return id, true
}

func respondValidationError(w http.ResponseWriter, err error) {
	fields := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = validationMessage(fe)
		}
	}

	respondJSONError(w, http.StatusBadRequest, domain.APIError{
		Type:   domain.ErrorTypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
		Detail: "One or more fields failed validation",
		Errors: fields,
	})
}

// messages for tags that carry a parameter
var paramMessages = map[string]string{
	"max":   "Must be at most %s",
	"min":   "Must be at least %s",
	"gte":   "Must be greater than or equal to %s",
	"lte":   "Must be less than or equal to %s",
	"oneof": "Must be one of: %s",
}

func validationMessage(fe validator.FieldError) string {
	if format, ok := paramMessages[fe.Tag()]; ok {
		unit := ""
		if fe.Kind() == reflect.String && fe.Tag() != "oneof" {
			unit = " characters"
		}
		return fmt.Sprintf(format, fe.Param()) + unit
	}
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "notblank":
		return fe.Field() + " must not be blank"
	}
	return domain.GetValidationMessage(fe.Tag())
}

// sentinel errors of the service layer and the status each maps to, checked in order
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrInvalidInput, http.StatusBadRequest},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrConflict, http.StatusConflict},
}

// handleServiceError maps service errors to problem responses.
// Unmapped errors are logged and reported as 500 without their text.
func handleServiceError(w http.ResponseWriter, logger *zap.Logger, err error, action string) {
	var quotaErr *service.QuotaExceededError
	if errors.As(err, &quotaErr) {
		remaining := quotaErr.Remaining
		respondJSONError(w, http.StatusPaymentRequired, domain.APIError{
			Type:      domain.ErrorTypeQuotaExceeded,
			Title:     "Quota Exceeded",
			Status:    http.StatusPaymentRequired,
			Detail:    quotaErr.Error(),
			Remaining: &remaining,
		})
		return
	}

	var transportErr *service.TransportError
	if errors.As(err, &transportErr) {
		logger.Warn("mail provider rejected request", zap.String("action", action), zap.Error(err))
		respondWithError(w, http.StatusBadGateway, transportErr.Err.Error())
		return
	}

	for _, m := range errorStatuses {
		if errors.Is(err, m.err) {
			detail := err.Error()
			if m.status == http.StatusUnauthorized {
				detail = "Authentication required"
			}
			respondWithError(w, m.status, detail)
			return
		}
	}

	logger.Error("failed to "+action, zap.Error(err))
	respondWithError(w, http.StatusInternalServerError, "Failed to "+action)
}

var errorTypes = map[int]string{
	http.StatusBadRequest:      domain.ErrorTypeBadRequest,
	http.StatusUnauthorized:    domain.ErrorTypeUnauthorized,
	http.StatusPaymentRequired: domain.ErrorTypeQuotaExceeded,
	http.StatusForbidden:       domain.ErrorTypeForbidden,
	http.StatusNotFound:        domain.ErrorTypeNotFound,
	http.StatusConflict:        domain.ErrorTypeConflict,
	http.StatusTooManyRequests: domain.ErrorTypeRateLimited,
	http.StatusBadGateway:      domain.ErrorTypeUpstream,
}

func respondWithError(w http.ResponseWriter, status int, message string) {
	errType, ok := errorTypes[status]
	if !ok {
		errType = domain.ErrorTypeInternal
	}
	respondJSONError(w, status, domain.APIError{
		Type:   errType,
		Title:  http.StatusText(status),
		Status: status,
		Detail: message,
	})
}

func respondJSONError(w http.ResponseWriter, status int, apiErr domain.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(apiErr)
}
