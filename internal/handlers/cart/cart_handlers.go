package cart

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	authmw "github.com/shopora/shop-backend/internal/middleware/auth"
	"github.com/shopora/shop-backend/internal/models"
	"github.com/shopora/shop-backend/internal/mykafka"
)

type CartHandler struct {
	DB       *gorm.DB
	Producer mykafka.Publisher
}

type cartRequest struct {
	ItemID int `json:"itemId"`
}

func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	var req cartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": err.Error()})
	}

	key := strconv.Itoa(req.ItemID)
	if _, err := h.updateCart(userID, func(cart models.CartData) {
		cart[key]++
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": err.Error()})
	}

	h.publish(c, map[string]interface{}{
		"type":   "cart_item_added",
		"userID": userID,
		"itemId": req.ItemID,
	})

	return c.String(http.StatusOK, "Added")
}

// RemoveFromCart decrements the slot, clamped at zero. The plaintext reply
// is "Added" for both mutations; that is the published interface contract.
func (h *CartHandler) RemoveFromCart(c echo.Context) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	var req cartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": err.Error()})
	}

	key := strconv.Itoa(req.ItemID)
	if _, err := h.updateCart(userID, func(cart models.CartData) {
		if cart[key] > 0 {
			cart[key]--
		}
	}); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": err.Error()})
	}

	h.publish(c, map[string]interface{}{
		"type":   "cart_item_removed",
		"userID": userID,
		"itemId": req.ItemID,
	})

	return c.String(http.StatusOK, "Added")
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID, err := authmw.UserID(c)
	if err != nil {
		return err
	}

	var user models.User
	if err := h.DB.First(&user, userID).Error; err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": err.Error()})
	}
	if user.CartData == nil {
		user.CartData = models.CartData{}
	}

	return c.JSON(http.StatusOK, user.CartData)
}
