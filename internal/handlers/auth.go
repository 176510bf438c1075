package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/shopora/shop-backend/internal/hash"
	"github.com/shopora/shop-backend/internal/models"
	"github.com/shopora/shop-backend/internal/mykafka"
	"github.com/shopora/shop-backend/internal/service/token"
)

type AuthHandler struct {
	DB        *gorm.DB
	JWTSecret []byte
	Producer  mykafka.Publisher
}

func (h *AuthHandler) publish(c echo.Context, event map[string]interface{}) {
	if h.Producer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "user_events", fmt.Sprint(event["userID"]), event); err != nil {
		c.Logger().Errorf("Kafka publish error: %v", err)
	}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": err.Error()})
	}

	var existing models.User
	result := h.DB.Where("email = ?", req.Email).First(&existing)
	if result.Error == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"errors":  "existing user found with same email address",
		})
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": result.Error.Error()})
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": err.Error()})
	}

	user := models.User{
		Name:         req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		CartData:     models.NewCartData(),
	}
	if err := h.DB.Create(&user).Error; err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": err.Error()})
	}

	tok, err := token.Sign(user.ID, h.JWTSecret)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": err.Error()})
	}

	h.publish(c, map[string]interface{}{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true, "token": tok})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": err.Error()})
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": "wrong email id"})
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": "wrong password"})
	}

	tok, err := token.Sign(user.ID, h.JWTSecret)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": err.Error()})
	}

	h.publish(c, map[string]interface{}{
		"type":   "user_logged_in",
		"userID": user.ID,
		"email":  user.Email,
	})

	return c.JSON(http.StatusOK, echo.Map{"success": true, "token": tok})
}
