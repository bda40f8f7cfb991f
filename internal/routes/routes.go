package routes

import (
	"github.com/gin-gonic/gin"

	"tienda-arte/internal/handlers"
	"tienda-arte/internal/identity"
)

func RegisterRoutes(router *gin.Engine, h *handlers.StorefrontHandler, verifier *identity.Verifier) {
	v1 := router.Group("/v1")
	v1.Use(identity.Middleware(verifier))
	{
		v1.GET("/storefront", h.GetStorefront)
		v1.GET("/storefront/:merchantId", h.GetStorefrontByMerchant)
		v1.GET("/products/:id", h.GetProduct)
		v1.GET("/me", h.Me)
	}
}
