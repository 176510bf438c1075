package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/shopora/shop-backend/internal/handlers"
	"github.com/shopora/shop-backend/internal/handlers/cart"
	authmw "github.com/shopora/shop-backend/internal/middleware/auth"
)

type Deps struct {
	DB             *gorm.DB
	JWTSecret      []byte
	UploadDir      string
	AuthHandler    *handlers.AuthHandler
	ProductHandler *handlers.ProductHandler
	UploadHandler  *handlers.UploadHandler
	CartHandler    *cart.CartHandler
	SearchHandler  *handlers.SearchHandler
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "Shop backend is running") })

	e.Static("/images", d.UploadDir)
	e.POST("/upload", d.UploadHandler.Upload)

	e.POST("/addproduct", d.ProductHandler.AddProduct)
	e.POST("/removeproduct", d.ProductHandler.RemoveProduct)
	e.GET("/allproducts", d.ProductHandler.AllProducts)
	e.GET("/newcollections", d.ProductHandler.NewCollections)
	e.GET("/popularinwomen", d.ProductHandler.PopularInWomen)
	e.GET("/popular/:category", d.ProductHandler.PopularInCategory)

	if d.SearchHandler != nil {
		e.GET("/search", d.SearchHandler.Handler)
	}

	e.POST("/signup", d.AuthHandler.Signup)
	e.POST("/login", d.AuthHandler.Login)

	protected := e.Group("", authmw.FetchUser(d.JWTSecret))
	protected.POST("/addtocart", d.CartHandler.AddToCart)
	protected.POST("/removefromcart", d.CartHandler.RemoveFromCart)
	protected.POST("/getcart", d.CartHandler.GetCart)
}
