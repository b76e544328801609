package http

import (
	"net/http"
	"time"

	"github.com/blossomkart/blossomkart/internal/core/domain"
	"github.com/blossomkart/blossomkart/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type OrderHandler struct {
	Handler
	service port.Service
}

func NewOrderHandler(service port.Service, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type createOrderRequest struct {
	PurchaseDate     string `json:"purchaseDate"`
	DeliveryTime     string `json:"deliveryTime"`
	DeliveryLocation string `json:"deliveryLocation"`
	ProductName      string `json:"productName"`
	Quantity         int    `json:"quantity"`
	Message          string `json:"message"`
}

type orderResponse struct {
	ID               string      `json:"id"`
	Username         string      `json:"username"`
	PurchaseDate     string      `json:"purchaseDate"`
	DeliveryTime     string      `json:"deliveryTime"`
	DeliveryLocation string      `json:"deliveryLocation"`
	ProductName      string      `json:"productName"`
	Quantity         int         `json:"quantity"`
	Message          string      `json:"message"`
	TotalAmount      jsonDecimal `json:"totalAmount"`
	Status           string      `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt"`
}

func newOrderResponse(order *domain.Order) orderResponse {
	return orderResponse{
		ID:               order.ID,
		Username:         order.Username,
		PurchaseDate:     order.PurchaseDate.Format(dateLayout),
		DeliveryTime:     string(order.DeliveryTime),
		DeliveryLocation: order.DeliveryLocation,
		ProductName:      order.ProductName,
		Quantity:         order.Quantity,
		Message:          order.Message,
		TotalAmount:      jsonDecimal(order.TotalAmount),
		Status:           string(order.Status),
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse(dateLayout, value)
	if err == nil {
		return date, nil
	}
	return time.Parse(time.RFC3339, value)
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	req := createOrderRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	purchaseDate, err := parseDate(req.PurchaseDate)
	if err != nil {
		oh.handleError(ctx, domain.NewValidationError("purchaseDate", "must be a valid date"))
		return
	}

	username := getAuthPayload(ctx).Username

	order := &domain.Order{
		Username:         username,
		PurchaseDate:     purchaseDate,
		DeliveryTime:     domain.DeliveryTime(req.DeliveryTime),
		DeliveryLocation: req.DeliveryLocation,
		ProductName:      req.ProductName,
		Quantity:         req.Quantity,
		Message:          req.Message,
	}

	created, err := oh.service.CreateOrder(ctx, order)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, gin.H{
		"message": "Order created successfully",
		"order":   newOrderResponse(created),
	}, http.StatusCreated)
}

func (oh *OrderHandler) ListMyOrders(ctx *gin.Context) {
	username := getAuthPayload(ctx).Username

	orders, err := oh.service.ListOrders(ctx, username)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	result := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, newOrderResponse(o))
	}

	oh.handleSuccess(ctx, gin.H{
		"count":  len(result),
		"orders": result,
	})
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	username := getAuthPayload(ctx).Username

	order, err := oh.service.GetOrder(ctx, username, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, gin.H{"order": newOrderResponse(order)})
}

type updateOrderRequest struct {
	Message *string `json:"message"`
}

func (oh *OrderHandler) UpdateOrder(ctx *gin.Context) {
	req := updateOrderRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	if req.Message == nil {
		oh.handleError(ctx, domain.ErrNoUpdatedData)
		return
	}

	username := getAuthPayload(ctx).Username

	order, err := oh.service.UpdateOrderMessage(ctx, username, ctx.Param("id"), *req.Message)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, gin.H{
		"message": "Order updated successfully",
		"order":   newOrderResponse(order),
	})
}

func (oh *OrderHandler) CancelOrder(ctx *gin.Context) {
	username := getAuthPayload(ctx).Username

	order, err := oh.service.CancelOrder(ctx, username, ctx.Param("id"))
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, gin.H{
		"message": "Order cancelled successfully",
		"order":   newOrderResponse(order),
	})
}

func (oh *OrderHandler) OrderStats(ctx *gin.Context) {
	username := getAuthPayload(ctx).Username

	stats, err := oh.service.OrderStats(ctx, username)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	breakdown := make([]gin.H, 0, len(stats.StatusBreakdown))
	for _, sc := range stats.StatusBreakdown {
		breakdown = append(breakdown, gin.H{
			"status":      string(sc.Status),
			"count":       sc.Count,
			"totalAmount": jsonDecimal(sc.TotalAmount),
		})
	}

	oh.handleSuccess(ctx, gin.H{
		"stats": gin.H{
			"totalOrders":     stats.TotalOrders,
			"totalSpent":      jsonDecimal(stats.TotalSpent),
			"statusBreakdown": breakdown,
		},
	})
}

func (oh *OrderHandler) AvailableDeliveryTimes(ctx *gin.Context) {
	value := ctx.Query("date")
	if value == "" {
		oh.handleError(ctx, domain.NewValidationError("date", "is required"))
		return
	}

	date, err := parseDate(value)
	if err != nil {
		oh.handleError(ctx, domain.NewValidationError("date", "must be a valid date"))
		return
	}

	times, err := oh.service.AvailableDeliveryTimes(ctx, date)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, gin.H{
		"availableTimes": times,
		"date":           domain.NormalizeDate(date).Format(dateLayout),
	})
}
