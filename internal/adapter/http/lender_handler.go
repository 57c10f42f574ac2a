package http

import (
	"net/http"
	"strconv"

	"mortgage-rates/internal/usecase/lender"
	"mortgage-rates/pkg/id"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type LenderHandler struct {
	uc  *lender.Usecase
	log *zap.Logger
}

func NewLenderHandler(uc *lender.Usecase, log *zap.Logger) *LenderHandler {
	return &LenderHandler{uc: uc, log: orNop(log)}
}

type createLenderReq struct {
	Name    string  `json:"name"     validate:"required,max=255"`
	LogoURL *string `json:"logo_url" validate:"omitempty,url"`
	Website *string `json:"website"  validate:"omitempty,url"`
	Phone   *string `json:"phone"    validate:"omitempty,max=32"`
	Email   *string `json:"email"    validate:"omitempty,email"`
	Active  *bool   `json:"active"`
}

// "" clears an optional field, so only lengths are checked here.
type updateLenderReq struct {
	Name    *string `json:"name"     validate:"omitempty,max=255"`
	LogoURL *string `json:"logo_url" validate:"omitempty,max=2048"`
	Website *string `json:"website"  validate:"omitempty,max=2048"`
	Phone   *string `json:"phone"    validate:"omitempty,max=32"`
	Email   *string `json:"email"    validate:"omitempty,max=255"`
}

func lenderParam(c echo.Context) (string, bool) {
	v := c.Param("lender_id")
	return v, id.Valid(v)
}

func (h *LenderHandler) Create(c echo.Context) error {
	var req createLenderReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), lender.CreateLenderInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LenderHandler) Get(c echo.Context) error {
	lenderID, ok := lenderParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lender_id path param"})
	}
	dto, err := h.uc.Get(c.Request().Context(), lenderID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// List serves the admin listing; ?active=true narrows it to active lenders.
func (h *LenderHandler) List(c echo.Context) error {
	activeOnly := false
	if raw := c.QueryParam("active"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid active query param"})
		}
		activeOnly = v
	}
	return h.list(c, activeOnly)
}

// ListPublic never exposes inactive lenders.
func (h *LenderHandler) ListPublic(c echo.Context) error { return h.list(c, true) }

func (h *LenderHandler) list(c echo.Context, activeOnly bool) error {
	out, err := h.uc.List(c.Request().Context(), activeOnly)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"lenders": out, "count": len(out)})
}

func (h *LenderHandler) Update(c echo.Context) error {
	lenderID, ok := lenderParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lender_id path param"})
	}
	var req updateLenderReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Update(c.Request().Context(), lenderID, lender.UpdateLenderInput(req))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LenderHandler) Activate(c echo.Context) error   { return h.setActive(c, true) }
func (h *LenderHandler) Deactivate(c echo.Context) error { return h.setActive(c, false) }

func (h *LenderHandler) setActive(c echo.Context, active bool) error {
	lenderID, ok := lenderParam(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid lender_id path param"})
	}
	dto, err := h.uc.SetActive(c.Request().Context(), lenderID, active)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, dto)
}
