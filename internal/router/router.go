package router

import (
	"github.com/giftkart-next/internal/config"
	"github.com/giftkart-next/internal/http/handlers/shop"
	"github.com/giftkart-next/internal/logger"
	"github.com/giftkart-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// New 构建本地接口路由
func New(cfg *config.Config, container *provider.Container) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestIDMiddleware())
	engine.Use(LoggerMiddleware(logger.Z()))
	engine.Use(CORSMiddleware(cfg.CORS))

	shopHandler := shop.New(container)

	api := engine.Group("/api")
	{
		session := api.Group("/session")
		{
			session.POST("", shopHandler.EstablishSession)
			session.GET("", shopHandler.GetSession)
			session.DELETE("", shopHandler.ClearSession)
		}

		cart := api.Group("/cart")
		{
			cart.GET("", shopHandler.GetCart)
			cart.POST("", shopHandler.AddCartItem)
			cart.PUT("/:row_id", shopHandler.UpdateCartQuantity)
			cart.DELETE("/:row_id", shopHandler.DeleteCartItem)
		}

		wishlist := api.Group("/wishlist")
		{
			wishlist.GET("", shopHandler.GetWishlist)
			wishlist.POST("", shopHandler.AddWishlistItem)
			wishlist.DELETE("/:product_id", shopHandler.RemoveWishlistItem)
			wishlist.POST("/variant", shopHandler.ToggleWishlistVariant)
			wishlist.POST("/hydrate", shopHandler.HydrateWishlist)
		}

		api.POST("/quote", shopHandler.QuoteCart)

		checkout := api.Group("/checkout")
		{
			checkout.POST("/draft", shopHandler.BuildCheckoutDraft)
			checkout.GET("/draft", shopHandler.GetCheckoutDraft)
			checkout.POST("/order", shopHandler.PlaceOrder)
		}

		api.GET("/products", shopHandler.ListProducts)

		api.GET("/orders", shopHandler.ListOrders)
		api.POST("/returns", shopHandler.RequestReturn)

		api.GET("/suggestions", shopHandler.SearchSuggestions)
	}

	return engine
}
