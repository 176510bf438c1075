package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/shopora/shop-backend/internal/models"
	"github.com/shopora/shop-backend/internal/mykafka"
	"github.com/shopora/shop-backend/internal/service/search"
)

// popularLimit caps the category view, matching the storefront section size.
const popularLimit = 4

type ProductHandler struct {
	DB       *gorm.DB
	Producer mykafka.Publisher
	Search   search.Indexer
}

func (h *ProductHandler) publish(c echo.Context, event map[string]interface{}) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "product_events", fmt.Sprint(event["productID"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *ProductHandler) AddProduct(c echo.Context) error {
	var req struct {
		Name     string  `json:"name"`
		Image    string  `json:"image"`
		Category string  `json:"category"`
		NewPrice float64 `json:"new_price"`
		OldPrice float64 `json:"old_price"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": err.Error()})
	}

	product := models.Product{
		Name:      req.Name,
		Image:     req.Image,
		Category:  req.Category,
		NewPrice:  req.NewPrice,
		OldPrice:  req.OldPrice,
		Available: true,
	}
	if err := h.DB.Create(&product).Error; err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": err.Error()})
	}

	if h.Search != nil {
		if err := h.Search.IndexProduct(c.Request().Context(), product); err != nil {
			c.Logger().Errorf("Search index error: %v", err)
		}
	}

	h.publish(c, map[string]interface{}{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true, "name": product.Name})
}

// RemoveProduct deletes by business id. Deleting an id that does not exist
// is a no-op and still answers success, so the operation is idempotent; the
// echoed name is empty in that case.
func (h *ProductHandler) RemoveProduct(c echo.Context) error {
	var req struct {
		ID int `json:"id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": err.Error()})
	}

	var product models.Product
	if err := h.DB.First(&product, req.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusOK, echo.Map{"success": true, "name": ""})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": err.Error()})
	}

	if err := h.DB.Delete(&models.Product{}, req.ID).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": err.Error()})
	}

	if h.Search != nil {
		if err := h.Search.DeleteProduct(c.Request().Context(), req.ID); err != nil {
			c.Logger().Errorf("Search index error: %v", err)
		}
	}

	h.publish(c, map[string]interface{}{
		"type":      "product_deleted",
		"productID": req.ID,
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true, "name": product.Name})
}

func (h *ProductHandler) AllProducts(c echo.Context) error {
	var products []models.Product
	if err := h.DB.Order("id ASC").Find(&products).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": err.Error()})
	}
	return c.JSON(http.StatusOK, products)
}

// NewCollections keeps the storefront's historical slicing: drop the oldest
// product, then take the last 8 of what remains.
func (h *ProductHandler) NewCollections(c echo.Context) error {
	var products []models.Product
	if err := h.DB.Order("id ASC").Find(&products).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": err.Error()})
	}

	collection := []models.Product{}
	if len(products) > 1 {
		collection = products[1:]
		if len(collection) > 8 {
			collection = collection[len(collection)-8:]
		}
	}

	return c.JSON(http.StatusOK, collection)
}

func (h *ProductHandler) PopularInWomen(c echo.Context) error {
	return h.popularInCategory(c, "women")
}

func (h *ProductHandler) PopularInCategory(c echo.Context) error {
	return h.popularInCategory(c, c.Param("category"))
}

func (h *ProductHandler) popularInCategory(c echo.Context, category string) error {
	products := []models.Product{}
	if err := h.DB.Where("category = ?", category).Order("id ASC").Limit(popularLimit).Find(&products).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": err.Error()})
	}
	return c.JSON(http.StatusOK, products)
}
