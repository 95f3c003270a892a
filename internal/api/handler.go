package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/lemonstand/internal/domain/dto"
	"github.com/guttosm/lemonstand/internal/middleware"
	"github.com/guttosm/lemonstand/internal/service"
)

// Handler provides HTTP handlers for the stand's menu, sales and aggregates.
//
// Responsibilities:
//   - Bind and validate request bodies and path parameters
//   - Call the stand service
//   - Translate results into response DTOs
//
// Domain errors are attached with c.Error and rendered by middleware.ErrorHandler.
type Handler struct {
	svc service.StandService
}

// NewHandler constructs a new Handler instance around the stand service.
func NewHandler(svc service.StandService) *Handler {
	return &Handler{svc: svc}
}

// GetStand godoc
// @Summary      Stand summary
// @Description  Returns the stand name, number of recorded days, menu and total profit
// @Tags         stand
// @Produce      json
// @Success      200  {object}  dto.StandResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/v1/stand [get]
func (h *Handler) GetStand(c *gin.Context) {
	ctx := c.Request.Context()

	days, err := h.svc.Days(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}
	menu, err := h.svc.Menu(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}
	profit, err := h.svc.TotalProfit(ctx)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.StandResponse{
		Name:        h.svc.Name(),
		Days:        days,
		Menu:        dto.NewMenuResponse(menu),
		TotalProfit: profit,
	})
}

// ListMenu godoc
// @Summary      List menu
// @Tags         menu
// @Produce      json
// @Success      200  {array}   dto.MenuItemResponse
// @Router       /api/v1/menu [get]
func (h *Handler) ListMenu(c *gin.Context) {
	menu, err := h.svc.Menu(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMenuResponse(menu))
}

// AddMenuItem godoc
// @Summary      Add or replace a menu item
// @Description  Puts an item on the menu; an item with the same name is replaced
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        item  body      dto.MenuItemRequest  true  "Menu item"
// @Success      201   {object}  dto.MenuItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/v1/menu [post]
func (h *Handler) AddMenuItem(c *gin.Context) {
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid menu item", err)
		return
	}

	item := req.ToModel()
	if err := h.svc.AddMenuItem(c.Request.Context(), item); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewMenuItemResponse(item))
}

// GetMenuItem godoc
// @Summary      Get a menu item
// @Tags         menu
// @Produce      json
// @Param        item  path      string  true  "Item name"  example(lemonade)
// @Success      200   {object}  dto.MenuItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/menu/{item} [get]
func (h *Handler) GetMenuItem(c *gin.Context) {
	name := itemParam(c)
	item, ok, err := h.svc.MenuItem(c.Request.Context(), name)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("menu item not found", nil))
		return
	}
	c.JSON(http.StatusOK, dto.NewMenuItemResponse(item))
}

// RecordSales godoc
// @Summary      Record today's sales
// @Description  Appends the next day to the history. Every item must be on the menu, otherwise nothing is recorded.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        sales  body      dto.SalesRequest  true  "Units sold per item"
// @Success      201    {object}  dto.RecordSalesResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      422    {object}  dto.ErrorResponse
// @Router       /api/v1/sales [post]
func (h *Handler) RecordSales(c *gin.Context) {
	var req dto.SalesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := req.Validate(); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid sales", err)
		return
	}

	day, err := h.svc.RecordSalesForToday(c.Request.Context(), req.Quantities)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, dto.RecordSalesResponse{Day: day})
}

// ListSales godoc
// @Summary      Sales history
// @Tags         sales
// @Produce      json
// @Success      200  {array}  dto.DailySalesResponse
// @Router       /api/v1/sales [get]
func (h *Handler) ListSales(c *gin.Context) {
	history, err := h.svc.History(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewHistoryResponse(history))
}

// GetUnitsSoldFor godoc
// @Summary      Units sold on a day
// @Description  Returns 0 when the item was not sold that day; 404 when the day was never recorded
// @Tags         sales
// @Produce      json
// @Param        day   path      int     true  "Day index"  example(0)
// @Param        item  path      string  true  "Item name"  example(lemonade)
// @Success      200   {object}  dto.UnitsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/sales/{day}/items/{item} [get]
func (h *Handler) GetUnitsSoldFor(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "day must be an integer", err)
		return
	}
	name := itemParam(c)

	units, err := h.svc.UnitsSoldFor(c.Request.Context(), day, name)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.UnitsResponse{Item: name, Day: &day, Units: units})
}

// GetTotalUnitsSold godoc
// @Summary      Units sold over the whole history
// @Tags         items
// @Produce      json
// @Param        item  path      string  true  "Item name"  example(lemonade)
// @Success      200   {object}  dto.UnitsResponse
// @Router       /api/v1/items/{item}/units [get]
func (h *Handler) GetTotalUnitsSold(c *gin.Context) {
	name := itemParam(c)
	units, err := h.svc.TotalUnitsSold(c.Request.Context(), name)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.UnitsResponse{Item: name, Units: units})
}

// GetItemProfit godoc
// @Summary      Profit on one item
// @Description  Uses the item's current price and cost; 0 for items not on the menu
// @Tags         items
// @Produce      json
// @Param        item  path      string  true  "Item name"  example(lemonade)
// @Success      200   {object}  dto.ProfitResponse
// @Router       /api/v1/items/{item}/profit [get]
func (h *Handler) GetItemProfit(c *gin.Context) {
	name := itemParam(c)
	profit, err := h.svc.TotalProfitFor(c.Request.Context(), name)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ProfitResponse{Item: name, Profit: profit})
}

// GetTotalProfit godoc
// @Summary      Profit on the whole menu
// @Tags         items
// @Produce      json
// @Success      200  {object}  dto.ProfitResponse
// @Router       /api/v1/profit [get]
func (h *Handler) GetTotalProfit(c *gin.Context) {
	profit, err := h.svc.TotalProfit(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.ProfitResponse{Profit: profit})
}

func itemParam(c *gin.Context) string {
	return strings.TrimSpace(c.Param("item"))
}
