package helper

import (
	"errors"
	"math"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"go.uber.org/zap"

	"newsportal/logging"
	"newsportal/models"
)

const internalErrorMessage = "Internal server error"

// HTTPHelper writes JSON responses. Every error body is {"error": message}.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper hooks English translations and JSON field names into gin's
// binding validator.
func NewHTTPHelper() *HTTPHelper {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")

	h := &HTTPHelper{Translator: trans}
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
		if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
			logging.L().Warn("failed to register validation translations", zap.Error(err))
		}
		h.Validate = v
	}
	return h
}

func jsonFieldName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// GetStatusCode maps domain errors to HTTP statuses. Anything unrecognised
// is a 500.
func (u *HTTPHelper) GetStatusCode(err error) int {
	var (
		validation   models.ErrorValidation
		conflict     models.ErrorConflict
		notFound     models.ErrorNotFound
		unauthorized models.ErrorUnauthorized
		forbidden    models.ErrorForbidden
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validation), errors.As(err, &conflict):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &unauthorized):
		return http.StatusUnauthorized
	case errors.As(err, &forbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// SendError writes err with its mapped status. Internal errors are logged
// and replaced by a generic message.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status := u.GetStatusCode(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logging.L().Error("request failed",
			zap.Error(err),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", requestid.Get(c)),
		)
		message = internalErrorMessage
	}
	u.SendErrorMessage(c, status, message)
}

// SendErrorMessage aborts the chain with status and {"error": message}.
func (u *HTTPHelper) SendErrorMessage(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// SendBindError reports a request that failed to bind. Validation failures
// are translated into one readable sentence per field.
func (u *HTTPHelper) SendBindError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && u.Translator != nil {
		messages := make([]string, 0, len(validationErrors))
		for _, fe := range validationErrors {
			messages = append(messages, fe.Translate(u.Translator))
		}
		u.SendErrorMessage(c, http.StatusBadRequest, strings.Join(messages, "; "))
		return
	}
	u.SendErrorMessage(c, http.StatusBadRequest, "Invalid request: "+err.Error())
}

// SendSuccess writes data as the response body.
func (u *HTTPHelper) SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// ParseID reads a positive integer path parameter.
func (u *HTTPHelper) ParseID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, models.NewValidationError("invalid %s", name)
	}
	return uint(id), nil
}

// GeneratePaging builds the pagination block of list responses.
func (u *HTTPHelper) GeneratePaging(page, limit int, total int64) models.Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
