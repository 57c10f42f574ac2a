package http

import (
	"net/http"

	"mortgage-rates/internal/usecase/rate"
	"mortgage-rates/pkg/id"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type RateHandler struct {
	uc  *rate.Usecase
	log *zap.Logger
}

func NewRateHandler(uc *rate.Usecase, log *zap.Logger) *RateHandler {
	return &RateHandler{uc: uc, log: orNop(log)}
}

type createRateReq struct {
	LoanType              string   `json:"loan_type"                validate:"required,oneof=conventional fha va usda jumbo"`
	LoanTerm              int      `json:"loan_term"                validate:"required,oneof=15 20 25 30"`
	InterestRate          float64  `json:"interest_rate"            validate:"gte=0,lte=100,dec3"`
	APR                   float64  `json:"apr"                      validate:"gte=0,lte=100,dec3"`
	Points                float64  `json:"points"                   validate:"gte=0,lte=100,dec2"`
	MinCreditScore        int      `json:"min_credit_score"         validate:"gte=300,lte=850"`
	MaxLoanAmount         float64  `json:"max_loan_amount"          validate:"gt=0,dec2"`
	MinDownPaymentPercent float64  `json:"min_down_payment_percent" validate:"gte=0,lte=100,dec2"`
	ClosingCosts          *float64 `json:"closing_costs"            validate:"omitempty,gte=0,dec2"`
	Active                *bool    `json:"active"`
}

type updateRateReq struct {
	InterestRate          *float64 `json:"interest_rate"            validate:"omitempty,gte=0,lte=100,dec3"`
	APR                   *float64 `json:"apr"                      validate:"omitempty,gte=0,lte=100,dec3"`
	Points                *float64 `json:"points"                   validate:"omitempty,gte=0,lte=100,dec2"`
	MinCreditScore        *int     `json:"min_credit_score"         validate:"omitempty,gte=300,lte=850"`
	MaxLoanAmount         *float64 `json:"max_loan_amount"          validate:"omitempty,gt=0,dec2"`
	MinDownPaymentPercent *float64 `json:"min_down_payment_percent" validate:"omitempty,gte=0,lte=100,dec2"`
	ClosingCosts          *float64 `json:"closing_costs"            validate:"omitempty,gte=0,dec2"`
	ClearClosingCosts     bool     `json:"clear_closing_costs"`
}

func rateParam(c echo.Context) (string, bool) {
	v := c.Param("rate_id")
	return v, id.Valid(v)
}

func (h *RateHandler) Create(c echo.Context) error {
	lenderID, ok := lenderParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lender_id path param"})
	}
	var req createRateReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), lenderID, rate.CreateRateInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RateHandler) ListByLender(c echo.Context) error {
	lenderID, ok := lenderParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lender_id path param"})
	}
	out, err := h.uc.ListByLender(c.Request().Context(), lenderID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"rates": out, "count": len(out)})
}

func (h *RateHandler) Get(c echo.Context) error {
	rateID, ok := rateParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid rate_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), rateID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RateHandler) Update(c echo.Context) error {
	rateID, ok := rateParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid rate_id path param"})
	}
	var req updateRateReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Update(c.Request().Context(), rateID, rate.UpdateRateInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RateHandler) Activate(c echo.Context) error   { return h.setActive(c, true) }
func (h *RateHandler) Deactivate(c echo.Context) error { return h.setActive(c, false) }

func (h *RateHandler) setActive(c echo.Context, active bool) error {
	rateID, ok := rateParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid rate_id path param"})
	}
	dto, err := h.uc.SetActive(c.Request().Context(), rateID, active)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
