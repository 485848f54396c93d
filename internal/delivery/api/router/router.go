// Package router contains routing for the catalog HTTP API.
package router

import (
	"catalog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AttributeHandler *handler.AttributeHandler
	ProductHandler   *handler.ProductHandler
	VariantHandler   *handler.VariantHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	attributeHandler *handler.AttributeHandler
	productHandler   *handler.ProductHandler
	variantHandler   *handler.VariantHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		attributeHandler: params.AttributeHandler,
		productHandler:   params.ProductHandler,
		variantHandler:   params.VariantHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	attributesGroup := apiV1.Group("/attributes")
	{
		attributesGroup.POST("", r.attributeHandler.CreateAttribute)
		attributesGroup.GET("", r.attributeHandler.ListAttributes)
		attributesGroup.POST("/:id/values", r.attributeHandler.ResolveValue)
	}

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.PUT("/:id/discount", r.productHandler.SetDiscount)

		productsGroup.GET("/:id/required-attributes", r.productHandler.ListRequiredAttributes)
		productsGroup.POST("/:id/required-attributes", r.productHandler.AddRequiredAttribute)
		productsGroup.DELETE("/:id/required-attributes/:attributeId", r.productHandler.RemoveRequiredAttribute)

		productsGroup.GET("/:id/variants", r.variantHandler.ListVariants)
		productsGroup.POST("/:id/variants", r.variantHandler.CreateVariant)
		productsGroup.GET("/:id/default-variant", r.variantHandler.GetDefaultVariant)
		productsGroup.PUT("/:id/default-variant", r.variantHandler.SetDefaultVariant)
	}

	variantsGroup := apiV1.Group("/variants")
	{
		variantsGroup.GET("/:id", r.variantHandler.GetVariant)
		variantsGroup.PUT("/:id", r.variantHandler.UpdateVariant)
		variantsGroup.DELETE("/:id", r.variantHandler.DeleteVariant)
		variantsGroup.PUT("/:id/attributes", r.variantHandler.SetAttributes)
		variantsGroup.POST("/:id/toggle-status", r.variantHandler.ToggleStatus)
		variantsGroup.PUT("/:id/stock", r.variantHandler.SetStock)
		variantsGroup.PUT("/:id/price", r.variantHandler.SetPrice)
	}
}
