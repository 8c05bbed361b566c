package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/altfolio/portfolio-api/internal/api/metrics"
	"github.com/altfolio/portfolio-api/internal/core/ports"
)

// InvestmentHandler handles HTTP requests for investment operations. All
// service errors are surfaced to the central HTTPErrorHandler for mapping.
type InvestmentHandler struct {
	service ports.InvestmentService
}

func NewInvestmentHandler(service ports.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{service: service}
}

// List handles GET /v1/investments.
//
// @Summary      List visible active investments
// @Tags         investments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listInvestmentsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/investments [get]
func (h *InvestmentHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	details, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	data := make([]investmentResponse, 0, len(details))
	for i := range details {
		data = append(data, toInvestmentResponse(&details[i]))
	}
	return c.JSON(http.StatusOK, listInvestmentsResponse{Data: data, Count: len(data)})
}

// Get handles GET /v1/investments/:id.
//
// @Summary      Get an investment by id
// @Tags         investments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Investment id"
// @Success      200  {object}  investmentResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/investments/{id} [get]
func (h *InvestmentHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvestmentResponse(detail))
}

// Create handles POST /v1/investments.
//
// @Summary      Record a new investment
// @Tags         investments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInvestmentRequest  true  "Investment details"
// @Success      201   {object}  investmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/investments [post]
func (h *InvestmentHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createInvestmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	detail, err := h.service.Create(c.Request().Context(), actor, ports.CreateInvestmentInput{
		AssetName:      req.AssetName,
		AssetType:      req.AssetType,
		InvestedAmount: req.InvestedAmount,
		CurrentValue:   req.CurrentValue,
		InvestmentDate: req.InvestmentDate,
		Owners:         req.Owners,
		Description:    req.Description,
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.InvestmentsCreatedTotal.WithLabelValues(string(detail.Investment.AssetType)).Inc()
	return c.JSON(http.StatusCreated, toInvestmentResponse(detail))
}

// Update handles PUT /v1/investments/:id with a partial payload.
//
// @Summary      Update an investment
// @Tags         investments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Investment id"
// @Param        body  body      updateInvestmentRequest  true  "Fields to change"
// @Success      200   {object}  investmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/investments/{id} [put]
func (h *InvestmentHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateInvestmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	detail, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.UpdateInvestmentInput{
		AssetName:      req.AssetName,
		AssetType:      req.AssetType,
		InvestedAmount: req.InvestedAmount,
		CurrentValue:   req.CurrentValue,
		InvestmentDate: req.InvestmentDate,
		Owners:         req.Owners,
		Description:    req.Description,
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toInvestmentResponse(detail))
}

// Delete handles DELETE /v1/investments/:id (soft delete).
//
// @Summary      Soft-delete an investment
// @Tags         investments
// @Security     BearerAuth
// @Param        id  path  string  true  "Investment id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /v1/investments/{id} [delete]
func (h *InvestmentHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.SoftDelete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	metrics.InvestmentsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// Summary handles GET /v1/portfolio/summary.
//
// @Summary      Portfolio totals and asset-type allocation
// @Tags         portfolio
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  portfolioViewResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/portfolio/summary [get]
func (h *InvestmentHandler) Summary(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	view, err := h.service.PortfolioSummary(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPortfolioViewResponse(view))
}

// Simulate handles GET /v1/portfolio/simulation.
//
// @Summary      What-if portfolio view with randomised market perturbation
// @Tags         portfolio
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  simulationResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/portfolio/simulation [get]
func (h *InvestmentHandler) Simulate(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	view, err := h.service.Simulate(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	metrics.SimulationsTotal.Inc()
	return c.JSON(http.StatusOK, toSimulationResponse(view))
}
