package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopora/shop-backend/internal/models"
)

const casAttempts = 5

// updateCart applies mutate under a compare-and-swap on the serialized cart
// column, so concurrent mutations from the same user cannot lose updates.
// The swap only succeeds when the stored cart still matches the one read;
// on a conflict the read-modify-write is retried.
func (h *CartHandler) updateCart(userID uint, mutate func(models.CartData)) (models.CartData, error) {
	for i := 0; i < casAttempts; i++ {
		var user models.User
		if err := h.DB.First(&user, userID).Error; err != nil {
			return nil, err
		}
		if user.CartData == nil {
			user.CartData = models.CartData{}
		}

		old, err := user.CartData.Value()
		if err != nil {
			return nil, err
		}

		mutate(user.CartData)

		res := h.DB.Model(&models.User{}).
			Where("id = ? AND cart_data = ?", userID, old).
			Update("cart_data", user.CartData)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 1 {
			return user.CartData, nil
		}
	}
	return nil, errors.New("cart update conflict")
}

func (h *CartHandler) publish(c echo.Context, event map[string]interface{}) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "cart_events", fmt.Sprint(event["userID"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}
