package http

import (
	"net/http"
	"strconv"

	"github.com/blossomkart/blossomkart/internal/core/domain"
	"github.com/blossomkart/blossomkart/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type ProductHandler struct {
	Handler
	service port.Service
}

func NewProductHandler(service port.Service, logger *zap.Logger) (*ProductHandler, error) {
	return &ProductHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type productResponse struct {
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       jsonDecimal `json:"price"`
	Category    string      `json:"category"`
	Stock       int         `json:"stock"`
}

func newProductResponse(product *domain.Product) productResponse {
	return productResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       jsonDecimal(product.Price),
		Category:    product.Category,
		Stock:       product.Stock,
	}
}

func (ph *ProductHandler) ListProducts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "5"))

	filter := port.ProductFilter{
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
		Page:     page,
		Limit:    limit,
	}

	products, total, err := ph.service.ListProducts(ctx, filter)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]productResponse, 0, len(products))
	for _, p := range products {
		result = append(result, newProductResponse(p))
	}

	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	ph.handleSuccess(ctx, gin.H{
		"count":      len(result),
		"total":      total,
		"page":       page,
		"totalPages": totalPages,
		"products":   result,
	})
}

func (ph *ProductHandler) GetProduct(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	product, err := ph.service.GetProduct(ctx, id)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, gin.H{"product": newProductResponse(product)})
}

type productRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

func (ph *ProductHandler) CreateProduct(ctx *gin.Context) {
	req := productRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	price, err := decimal.NewFromFloat64(req.Price)
	if err != nil {
		ph.handleError(ctx, domain.NewValidationError("price", "is not a valid amount"))
		return
	}

	actorID := getAuthPayload(ctx).UserID

	product, err := ph.service.CreateProduct(ctx, actorID, &domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Category:    req.Category,
		Stock:       req.Stock,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccessWithStatus(ctx, gin.H{"product": newProductResponse(product)}, http.StatusCreated)
}

func (ph *ProductHandler) UpdateProduct(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	req := productRequest{}
	err = ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	price, err := decimal.NewFromFloat64(req.Price)
	if err != nil {
		ph.handleError(ctx, domain.NewValidationError("price", "is not a valid amount"))
		return
	}

	actorID := getAuthPayload(ctx).UserID

	product, err := ph.service.UpdateProduct(ctx, actorID, &domain.Product{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		Category:    req.Category,
		Stock:       req.Stock,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, gin.H{"product": newProductResponse(product)})
}

func (ph *ProductHandler) DeleteProduct(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ph.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	actorID := getAuthPayload(ctx).UserID

	err = ph.service.DeleteProduct(ctx, actorID, id)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, gin.H{"message": "Product deleted successfully"})
}
