package http

import (
	"strconv"

	"github.com/blossomkart/blossomkart/internal/core/domain"
	"github.com/blossomkart/blossomkart/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CartHandler struct {
	Handler
	service port.Service
}

func NewCartHandler(service port.Service, logger *zap.Logger) (*CartHandler, error) {
	return &CartHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type cartItemResponse struct {
	ProductID uint64           `json:"productId"`
	Quantity  int              `json:"quantity"`
	Product   *productResponse `json:"product,omitempty"`
}

func newCartResponse(items []*domain.CartItem) []cartItemResponse {
	result := make([]cartItemResponse, 0, len(items))
	for _, item := range items {
		resp := cartItemResponse{ProductID: item.ProductID, Quantity: item.Quantity}
		if item.Product != nil {
			p := newProductResponse(item.Product)
			resp.Product = &p
		}
		result = append(result, resp)
	}
	return result
}

func (ch *CartHandler) GetCart(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	items, err := ch.service.GetCart(ctx, userID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, gin.H{"cart": newCartResponse(items)})
}

type addToCartRequest struct {
	ProductID uint64 `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (ch *CartHandler) AddToCart(ctx *gin.Context) {
	req := addToCartRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	userID := getAuthPayload(ctx).UserID

	items, err := ch.service.AddToCart(ctx, userID, req.ProductID, req.Quantity)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, gin.H{
		"message": "Product added to cart",
		"cart":    newCartResponse(items),
	})
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

func (ch *CartHandler) UpdateCartItem(ctx *gin.Context) {
	productID, err := strconv.ParseUint(ctx.Param("productId"), 10, 64)
	if err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	req := updateCartRequest{}
	err = ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	userID := getAuthPayload(ctx).UserID

	items, err := ch.service.UpdateCartItem(ctx, userID, productID, req.Quantity)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, gin.H{"cart": newCartResponse(items)})
}

func (ch *CartHandler) ClearCart(ctx *gin.Context) {
	userID := getAuthPayload(ctx).UserID

	if err := ch.service.ClearCart(ctx, userID); err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, gin.H{
		"message": "Cart cleared",
		"cart":    []cartItemResponse{},
	})
}

func (ch *CartHandler) RemoveFromCart(ctx *gin.Context) {
	productID, err := strconv.ParseUint(ctx.Param("productId"), 10, 64)
	if err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	userID := getAuthPayload(ctx).UserID

	items, err := ch.service.RemoveFromCart(ctx, userID, productID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	ch.handleSuccess(ctx, gin.H{
		"message": "Product removed from cart",
		"cart":    newCartResponse(items),
	})
}
