package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"otigox-task/internal/domain"
	"otigox-task/internal/transport/http/response"
)

// fail is the single error-to-status translation point. Validation and
// uniqueness violations are client errors; anything unexpected is logged
// and hidden behind a generic 500.
func fail(c *gin.Context, l *zap.Logger, err error) {
	var ve *domain.ValidationError
	var ce *domain.ConflictError
	switch {
	case errors.As(err, &ve):
		response.Fail(c, http.StatusBadRequest, ve.Msg)
	case errors.As(err, &ce):
		response.Fail(c, http.StatusBadRequest, ce.Msg)
	case errors.Is(err, domain.ErrNotFound):
		response.Fail(c, http.StatusNotFound, err.Error())
	default:
		l.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		response.Fail(c, http.StatusInternalServerError, "internal error")
	}
}

// bindErr turns a gin binding failure into a ValidationError whose
// message names the field and the violated constraint, e.g.
// "email must be a well-formed email address".
func bindErr(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "email":
			return domain.Validation(field + " must be a well-formed email address")
		case "required":
			return domain.Validation(field + " must not be empty")
		}
		return domain.Validation(field + " is invalid")
	}
	return domain.Validation(err.Error())
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Fail(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return id, true
}

func intQuery(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

// pageQuery reads ?page&size with the listing defaults.
func pageQuery(c *gin.Context) (page, size int) {
	return intQuery(c, "page", 0), intQuery(c, "size", 10)
}
