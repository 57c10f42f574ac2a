package http

import (
	"errors"
	"net/http"

	"mortgage-rates/internal/domain/lender"
	"mortgage-rates/internal/domain/quote"
	"mortgage-rates/internal/domain/rate"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Map domain errors → HTTP codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, lender.ErrNotFound), errors.Is(err, rate.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, lender.ErrInvalidInput), errors.Is(err, rate.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, quote.ErrInvalidProfile):
		return http.StatusUnprocessableEntity
	case errors.Is(err, quote.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, log *zap.Logger, err error) error {
	code := statusFor(err)
	msg := err.Error()
	switch code {
	case http.StatusInternalServerError:
		log.Error("request failed", zap.String("route", c.Path()), zap.Error(err))
		msg = "internal error"
	case http.StatusServiceUnavailable:
		// collaborator details stay in the logs
		log.Error("rate catalog unavailable", zap.String("route", c.Path()), zap.Error(err))
		msg = quote.ErrCatalogUnavailable.Error()
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return true, nil
}
