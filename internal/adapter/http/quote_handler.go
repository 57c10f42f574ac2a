package http

import (
	"net/http"

	"mortgage-rates/internal/usecase/quote"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type QuoteHandler struct {
	uc  *quote.Usecase
	log *zap.Logger
}

func NewQuoteHandler(uc *quote.Usecase, log *zap.Logger) *QuoteHandler {
	return &QuoteHandler{uc: uc, log: orNop(log)}
}

// Field order and types must stay in sync with quote.ComputeQuotesInput.
type computeQuotesReq struct {
	LoanAmount        float64  `json:"loan_amount"          validate:"gt=0,dec2"`
	PropertyValue     float64  `json:"property_value"       validate:"gt=0,dec2"`
	DownPayment       float64  `json:"down_payment"         validate:"gt=0,dec2"`
	CreditScore       int      `json:"credit_score"         validate:"gte=300,lte=850"`
	LoanType          string   `json:"loan_type"            validate:"required,oneof=conventional fha va usda jumbo"`
	LoanTerm          int      `json:"loan_term"            validate:"required,oneof=15 20 25 30"`
	PropertyType      string   `json:"property_type"        validate:"required,oneof=single_family condo townhouse multi_family"`
	OccupancyType     string   `json:"occupancy_type"       validate:"required,oneof=primary secondary investment"`
	ZipCode           string   `json:"zip_code"             validate:"zip5"`
	DebtToIncomeRatio *float64 `json:"debt_to_income_ratio" validate:"omitempty,gte=0,lte=100,dec2"`
}

func (h *QuoteHandler) ComputeQuotes(c echo.Context) error {
	var req computeQuotesReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Compute(c.Request().Context(), quote.ComputeQuotesInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
