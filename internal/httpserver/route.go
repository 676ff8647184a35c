package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/clothing_store/internal/middleware/auth"
)

type Deps struct {
	Goods      *GoodsHTTP
	Categories *CategoriesHTTP
	Feedbacks  *FeedbacksHTTP
	Cart       *CartHTTP
	Orders     *OrdersHTTP
	Auth       *AuthHTTP
	JWTSecret  []byte
	// Ready reports whether backing stores are reachable. Nil means always ready.
	Ready func(c echo.Context) error
}

func Register(e *echo.Echo, d *Deps) {
	e.HTTPErrorHandler = ErrorHandler

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if d.Ready != nil {
			if err := d.Ready(c); err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "not ready")
			}
		}
		return c.NoContent(http.StatusOK)
	})

	authMW := auth.New(d.JWTSecret)

	goods := e.Group("/goods")
	goods.GET("", d.Goods.ListGoods)
	goods.GET("/:goodId", d.Goods.GetGood)
	goods.POST("", d.Goods.CreateGood, authMW.RequireAdmin)
	goods.PATCH("/:goodId", d.Goods.PatchGood, authMW.RequireAdmin)

	e.GET("/categories", d.Categories.ListCategories)

	e.GET("/feedbacks", d.Feedbacks.ListFeedbacks)
	e.POST("/feedbacks", d.Feedbacks.CreateFeedback)

	cart := e.Group("/cart", authMW.OptionalAuth)
	cart.GET("", d.Cart.GetCart)
	cart.POST("/items", d.Cart.AddItem)

	e.POST("/orders", d.Orders.CreateOrder, authMW.OptionalAuth)

	e.POST("/auth/register", d.Auth.Register)
	e.POST("/auth/login", d.Auth.Login)
	e.GET("/users/me", d.Auth.Me, authMW.RequireAuth)
}
