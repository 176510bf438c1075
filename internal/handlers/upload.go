package handlers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
)

// uploadField is the multipart field name the storefront sends.
const uploadField = "product"

type UploadHandler struct {
	Dir     string
	BaseURL string
}

func (h *UploadHandler) Upload(c echo.Context) error {
	file, err := c.FormFile(uploadField)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": "no file attached"})
	}

	src, err := file.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"success": false, "errors": err.Error()})
	}
	defer src.Close()

	name := fmt.Sprintf("%s_%d%s", uploadField, time.Now().UnixMilli(), filepath.Ext(file.Filename))

	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": err.Error()})
	}

	dst, err := os.Create(filepath.Join(h.Dir, name))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": err.Error()})
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"success": false, "errors": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"image_url": fmt.Sprintf("%s/images/%s", h.BaseURL, name),
	})
}
