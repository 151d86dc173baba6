package handler

import (
	"errors"
	"net/http"
	"reflect"

	"shipledger/internal/apierror"
	"shipledger/internal/ledger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError maps the ledger error taxonomy onto HTTP statuses:
// validation and state errors → 400, missing resources → 404, name
// conflicts → 409, storage failures → 500 with the detail kept in the log.
func respondError(c *gin.Context, err error) {
	var (
		validation *ledger.ValidationError
		duplicate  *ledger.DuplicateError
		state      *ledger.StateError
		notFound   *ledger.NotFoundError
		storage    *ledger.StorageError
		overAlloc  *ledger.OverAllocationError
		incomplete *ledger.IncompleteAllocationError
	)
	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, apierror.New(validation.Error()))
	case errors.As(err, &state):
		c.JSON(http.StatusBadRequest, apierror.New(state.Error()))
	case errors.As(err, &overAlloc):
		c.JSON(http.StatusBadRequest, apierror.New(overAlloc.Error()))
	case errors.As(err, &incomplete):
		c.JSON(http.StatusBadRequest, apierror.New(incomplete.Error()))
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, apierror.New(notFound.Error()))
	case errors.As(err, &duplicate):
		c.JSON(http.StatusConflict, apierror.New(duplicate.Error()))
	case errors.As(err, &storage):
		log.Error().Err(storage.Err).Str("path", c.FullPath()).Msg("storage error")
		c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, apierror.New("Internal server error"))
	}
}
