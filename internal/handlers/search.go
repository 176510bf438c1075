package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shopora/shop-backend/internal/service/search"
	"github.com/shopora/shop-backend/internal/util"
)

type SearchHandler struct {
	Index *search.ESIndex
}

func (h *SearchHandler) Handler(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": "missing query"})
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	from, size := util.Calculate(page, size)

	total, products, err := h.Index.Search(c.Request().Context(), q, from, size)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
