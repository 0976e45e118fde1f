package controller

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"pos/src/pos/application/request"
	"pos/src/pos/application/response"
	"pos/src/pos/application/usecase"

	"github.com/gin-gonic/gin"
)

// OrderController maneja las peticiones HTTP para órdenes y sus líneas
type OrderController struct {
	createOrderUC     *usecase.CreateOrderUseCase
	updateOrderUC     *usecase.UpdateOrderUseCase
	deleteOrderUC     *usecase.DeleteOrderUseCase
	getOrderUC        *usecase.GetOrderUseCase
	listOrdersUC      *usecase.ListOrdersUseCase
	assignPartnerUC   *usecase.AssignBusinessPartnerUseCase
	addOrderLineUC    *usecase.AddOrderLineUseCase
	updateOrderLineUC *usecase.UpdateOrderLineUseCase
	deleteOrderLineUC *usecase.DeleteOrderLineUseCase
	listOrderLinesUC  *usecase.ListOrderLinesUseCase
}

// NewOrderController crea una nueva instancia del controlador
func NewOrderController(
	createOrderUC *usecase.CreateOrderUseCase,
	updateOrderUC *usecase.UpdateOrderUseCase,
	deleteOrderUC *usecase.DeleteOrderUseCase,
	getOrderUC *usecase.GetOrderUseCase,
	listOrdersUC *usecase.ListOrdersUseCase,
	assignPartnerUC *usecase.AssignBusinessPartnerUseCase,
	addOrderLineUC *usecase.AddOrderLineUseCase,
	updateOrderLineUC *usecase.UpdateOrderLineUseCase,
	deleteOrderLineUC *usecase.DeleteOrderLineUseCase,
	listOrderLinesUC *usecase.ListOrderLinesUseCase,
) *OrderController {
	return &OrderController{
		createOrderUC:     createOrderUC,
		updateOrderUC:     updateOrderUC,
		deleteOrderUC:     deleteOrderUC,
		getOrderUC:        getOrderUC,
		listOrdersUC:      listOrdersUC,
		assignPartnerUC:   assignPartnerUC,
		addOrderLineUC:    addOrderLineUC,
		updateOrderLineUC: updateOrderLineUC,
		deleteOrderLineUC: deleteOrderLineUC,
		listOrderLinesUC:  listOrderLinesUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *OrderController) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.POST("", c.CreateOrder)
		orders.GET("", c.ListOrders)
		orders.GET("/:order_uuid", c.GetOrder)
		orders.PATCH("/:order_uuid", c.UpdateOrder)
		orders.DELETE("/:order_uuid", c.DeleteOrder)
		orders.POST("/:order_uuid/business-partner", c.AssignBusinessPartner)
		orders.POST("/:order_uuid/lines", c.AddOrderLine)
		orders.GET("/:order_uuid/lines", c.ListOrderLines)
	}

	lines := router.Group("/order-lines")
	{
		lines.PATCH("/:line_uuid", c.UpdateOrderLine)
		lines.DELETE("/:line_uuid", c.DeleteOrderLine)
	}

	log.Println("Rutas Order disponibles:")
	log.Println("  POST   /api/v1/orders")
	log.Println("  GET    /api/v1/orders")
	log.Println("  GET    /api/v1/orders/:order_uuid")
	log.Println("  PATCH  /api/v1/orders/:order_uuid")
	log.Println("  DELETE /api/v1/orders/:order_uuid")
	log.Println("  POST   /api/v1/orders/:order_uuid/business-partner")
	log.Println("  POST   /api/v1/orders/:order_uuid/lines")
	log.Println("  GET    /api/v1/orders/:order_uuid/lines")
	log.Println("  PATCH  /api/v1/order-lines/:line_uuid")
	log.Println("  DELETE /api/v1/order-lines/:line_uuid")
}

// CreateOrder abre (o reutiliza) una orden en borrador para una terminal
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	var req request.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := c.createOrderUC.Execute(ctx.Request.Context(), req, actingUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response.NewOrderResponse(order))
}

// UpdateOrder modifica la cabecera de una orden en borrador
func (c *OrderController) UpdateOrder(ctx *gin.Context) {
	var req request.UpdateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := c.updateOrderUC.Execute(ctx.Request.Context(), ctx.Param("order_uuid"), req, actingUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewOrderResponse(order))
}

// DeleteOrder elimina una orden en borrador con sus líneas
func (c *OrderController) DeleteOrder(ctx *gin.Context) {
	if err := c.deleteOrderUC.Execute(ctx.Request.Context(), ctx.Param("order_uuid")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetOrder retorna una orden con sus líneas
func (c *OrderController) GetOrder(ctx *gin.Context) {
	order, err := c.getOrderUC.Execute(ctx.Request.Context(), ctx.Param("order_uuid"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewOrderResponse(order))
}

// ListOrders lista las órdenes de una terminal con filtros opcionales
func (c *OrderController) ListOrders(ctx *gin.Context) {
	query := usecase.ListOrdersQuery{
		PosUUID:             ctx.Query("pos_uuid"),
		DocumentNo:          ctx.Query("document_no"),
		BusinessPartnerUUID: ctx.Query("business_partner_uuid"),
		OnlyProcessed:       ctx.Query("is_only_processed") == "true",
		OnlyUnprocessed:     ctx.Query("is_only_unprocessed") == "true",
		GrandTotalFrom:      ctx.Query("grand_total_from"),
		GrandTotalTo:        ctx.Query("grand_total_to"),
		SessionID:           sessionID(ctx),
		PageToken:           ctx.Query("page_token"),
	}
	if salesRep := ctx.Query("sales_rep_id"); salesRep != "" {
		if parsed, err := strconv.ParseInt(salesRep, 10, 64); err == nil {
			query.SalesRepID = parsed
		}
	}
	if from := ctx.Query("date_ordered_from"); from != "" {
		if parsed, err := time.Parse("2006-01-02", from); err == nil {
			query.DateOrderedFrom = parsed
		}
	}
	if to := ctx.Query("date_ordered_to"); to != "" {
		if parsed, err := time.Parse("2006-01-02", to); err == nil {
			query.DateOrderedTo = parsed
		}
	}

	result, err := c.listOrdersUC.Execute(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, err)
		return
	}

	orders := make([]response.OrderResponse, 0, len(result.Orders))
	for _, order := range result.Orders {
		orders = append(orders, response.NewOrderResponse(order))
	}
	ctx.JSON(http.StatusOK, response.ListOrdersResponse{
		RecordCount:   result.RecordCount,
		Orders:        orders,
		NextPageToken: result.NextPageToken,
	})
}

// AssignBusinessPartner asigna el cliente de una orden y reprecia todas
// sus líneas
func (c *OrderController) AssignBusinessPartner(ctx *gin.Context) {
	var req struct {
		CustomerUUID string `json:"customer_uuid"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := c.assignPartnerUC.Execute(ctx.Request.Context(), ctx.Param("order_uuid"), req.CustomerUUID, actingUserID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewOrderResponse(order))
}

// AddOrderLine agrega (o fusiona) una línea en una orden en borrador
func (c *OrderController) AddOrderLine(ctx *gin.Context) {
	var req request.CreateOrderLineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line, err := c.addOrderLineUC.Execute(ctx.Request.Context(), ctx.Param("order_uuid"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, response.NewOrderLineResponse(line))
}

// UpdateOrderLine modifica cantidad, precio o descuento de una línea
func (c *OrderController) UpdateOrderLine(ctx *gin.Context) {
	var req request.UpdateOrderLineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	line, err := c.updateOrderLineUC.Execute(ctx.Request.Context(), ctx.Param("line_uuid"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, response.NewOrderLineResponse(line))
}

// DeleteOrderLine elimina una línea de una orden en borrador
func (c *OrderController) DeleteOrderLine(ctx *gin.Context) {
	if err := c.deleteOrderLineUC.Execute(ctx.Request.Context(), ctx.Param("line_uuid")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListOrderLines lista las líneas de una orden con paginación
func (c *OrderController) ListOrderLines(ctx *gin.Context) {
	result, err := c.listOrderLinesUC.Execute(ctx.Request.Context(), ctx.Param("order_uuid"), sessionID(ctx), ctx.Query("page_token"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	lines := make([]response.OrderLineResponse, 0, len(result.Lines))
	for i := range result.Lines {
		lines = append(lines, response.NewOrderLineResponse(&result.Lines[i]))
	}
	ctx.JSON(http.StatusOK, response.ListOrderLinesResponse{
		RecordCount:   result.RecordCount,
		OrderLines:    lines,
		NextPageToken: result.NextPageToken,
	})
}
