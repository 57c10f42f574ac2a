package http

import "github.com/labstack/echo/v4"

type Handlers struct {
	Health  *Handler
	Quotes  *QuoteHandler
	Lenders *LenderHandler
	Rates   *RateHandler
}

// RouteMiddleware is applied per route group. Nil entries are skipped.
type RouteMiddleware struct {
	QuoteLimiter echo.MiddlewareFunc
	Admin        []echo.MiddlewareFunc
}

func RegisterRoutes(e *echo.Echo, h Handlers, mw RouteMiddleware) {
	e.GET("/health", h.Health.Health)

	var quoteMW []echo.MiddlewareFunc
	if mw.QuoteLimiter != nil {
		quoteMW = append(quoteMW, mw.QuoteLimiter)
	}
	e.POST("/quotes", h.Quotes.ComputeQuotes, quoteMW...)
	e.GET("/lenders", h.Lenders.ListPublic)

	admin := e.Group("/admin", mw.Admin...)
	admin.POST("/lenders", h.Lenders.Create)
	admin.GET("/lenders", h.Lenders.List)
	admin.GET("/lenders/:lender_id", h.Lenders.Get)
	admin.PATCH("/lenders/:lender_id", h.Lenders.Update)
	admin.POST("/lenders/:lender_id/activate", h.Lenders.Activate)
	admin.POST("/lenders/:lender_id/deactivate", h.Lenders.Deactivate)

	admin.POST("/lenders/:lender_id/rates", h.Rates.Create)
	admin.GET("/lenders/:lender_id/rates", h.Rates.ListByLender)
	admin.GET("/rates/:rate_id", h.Rates.Get)
	admin.PATCH("/rates/:rate_id", h.Rates.Update)
	admin.POST("/rates/:rate_id/activate", h.Rates.Activate)
	admin.POST("/rates/:rate_id/deactivate", h.Rates.Deactivate)
}
