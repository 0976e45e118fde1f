package controller

import (
	"log"
	"net/http"
	"time"

	"pos/src/pos/application/response"
	"pos/src/pos/application/usecase"

	"github.com/gin-gonic/gin"
)

// ProductPriceController maneja las consultas de precios de productos
type ProductPriceController struct {
	getProductPriceUC   *usecase.GetProductPriceUseCase
	listProductPricesUC *usecase.ListProductPricesUseCase
}

// NewProductPriceController crea una nueva instancia del controlador
func NewProductPriceController(
	getProductPriceUC *usecase.GetProductPriceUseCase,
	listProductPricesUC *usecase.ListProductPricesUseCase,
) *ProductPriceController {
	return &ProductPriceController{
		getProductPriceUC:   getProductPriceUC,
		listProductPricesUC: listProductPricesUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProductPriceController) RegisterRoutes(router *gin.RouterGroup) {
	prices := router.Group("/product-prices")
	{
		prices.GET("", c.GetProductPrice)
		prices.GET("/list", c.ListProductPrices)
		prices.DELETE("/cache", c.PurgeCache)
	}

	log.Println("Rutas ProductPrice disponibles:")
	log.Println("  GET    /api/v1/product-prices")
	log.Println("  GET    /api/v1/product-prices/list")
	log.Println("  DELETE /api/v1/product-prices/cache")
}

// GetProductPrice resuelve el precio vigente de un producto para una
// terminal
func (c *ProductPriceController) GetProductPrice(ctx *gin.Context) {
	query := usecase.GetProductPriceQuery{
		SearchValue:   ctx.Query("search_value"),
		UPC:           ctx.Query("upc"),
		Value:         ctx.Query("value"),
		Name:          ctx.Query("name"),
		PosUUID:       ctx.Query("pos_uuid"),
		PriceListUUID: ctx.Query("price_list_uuid"),
		PartnerUUID:   ctx.Query("business_partner_uuid"),
		WarehouseUUID: ctx.Query("warehouse_uuid"),
	}
	if validFrom := ctx.Query("valid_from"); validFrom != "" {
		if parsed, err := time.Parse("2006-01-02", validFrom); err == nil {
			query.ValidFrom = parsed
		}
	}

	pricing, err := c.getProductPriceUC.Execute(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewProductPriceResponse(pricing))
}

// PurgeCache invalida la memoización de productos. Se invoca tras
// cambios de catálogo hechos por fuera del servicio.
func (c *ProductPriceController) PurgeCache(ctx *gin.Context) {
	c.getProductPriceUC.PurgeCache()
	log.Println("🧹 Cache de productos invalidado")
	ctx.Status(http.StatusNoContent)
}

// ListProductPrices pagina el catálogo con precio vigente de una terminal
func (c *ProductPriceController) ListProductPrices(ctx *gin.Context) {
	query := usecase.ListProductPricesQuery{
		PosUUID:       ctx.Query("pos_uuid"),
		PriceListUUID: ctx.Query("price_list_uuid"),
		PartnerUUID:   ctx.Query("business_partner_uuid"),
		WarehouseUUID: ctx.Query("warehouse_uuid"),
		SearchValue:   ctx.Query("search_value"),
		SessionID:     sessionID(ctx),
		PageToken:     ctx.Query("page_token"),
	}
	if validFrom := ctx.Query("valid_from"); validFrom != "" {
		if parsed, err := time.Parse("2006-01-02", validFrom); err == nil {
			query.ValidFrom = parsed
		}
	}

	result, err := c.listProductPricesUC.Execute(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	prices := make([]response.ProductPriceResponse, 0, len(result.Prices))
	for _, pricing := range result.Prices {
		prices = append(prices, response.NewProductPriceResponse(pricing))
	}
	ctx.JSON(http.StatusOK, response.ListProductPricesResponse{
		RecordCount:   result.RecordCount,
		ProductPrices: prices,
		NextPageToken: result.NextPageToken,
	})
}
