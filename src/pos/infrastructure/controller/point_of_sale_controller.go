package controller

import (
	"log"
	"net/http"

	"pos/src/pos/application/response"
	"pos/src/pos/application/usecase"

	"github.com/gin-gonic/gin"
)

// PointOfSaleController maneja las consultas de terminales de venta
type PointOfSaleController struct {
	getPointOfSaleUC   *usecase.GetPointOfSaleUseCase
	listPointOfSalesUC *usecase.ListPointOfSalesUseCase
}

// NewPointOfSaleController crea una nueva instancia del controlador
func NewPointOfSaleController(
	getPointOfSaleUC *usecase.GetPointOfSaleUseCase,
	listPointOfSalesUC *usecase.ListPointOfSalesUseCase,
) *PointOfSaleController {
	return &PointOfSaleController{
		getPointOfSaleUC:   getPointOfSaleUC,
		listPointOfSalesUC: listPointOfSalesUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *PointOfSaleController) RegisterRoutes(router *gin.RouterGroup) {
	terminals := router.Group("/pos-terminals")
	{
		terminals.GET("", c.ListPointOfSales)
		terminals.GET("/:pos_uuid", c.GetPointOfSale)
	}

	log.Println("Rutas PointOfSale disponibles:")
	log.Println("  GET    /api/v1/pos-terminals")
	log.Println("  GET    /api/v1/pos-terminals/:pos_uuid")
}

// GetPointOfSale retorna la configuración de una terminal
func (c *PointOfSaleController) GetPointOfSale(ctx *gin.Context) {
	pos, err := c.getPointOfSaleUC.Execute(ctx.Request.Context(), ctx.Param("pos_uuid"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewPointOfSaleResponse(pos))
}

// ListPointOfSales lista las terminales visibles para el vendedor
func (c *PointOfSaleController) ListPointOfSales(ctx *gin.Context) {
	result, err := c.listPointOfSalesUC.Execute(ctx.Request.Context(), actingUserID(ctx), sessionID(ctx), ctx.Query("page_token"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	terminals := make([]response.PointOfSaleResponse, 0, len(result.PointOfSales))
	for i := range result.PointOfSales {
		terminals = append(terminals, response.NewPointOfSaleResponse(&result.PointOfSales[i]))
	}
	ctx.JSON(http.StatusOK, response.ListPointOfSalesResponse{
		RecordCount:   result.RecordCount,
		PointOfSales:  terminals,
		NextPageToken: result.NextPageToken,
	})
}
