package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bazaarly/marketplace-system/internal/core/domain"
	"github.com/bazaarly/marketplace-system/internal/core/ports"
)

// ProductHandler serves the vendor-owned catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"required,min=10"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Category    string  `json:"category"    validate:"required"`
	Quantity    int     `json:"quantity"    validate:"gte=0"`
	SKU         string  `json:"sku"         validate:"required"`
	Publish     bool    `json:"publish"`
}

type listProductsResponse struct {
	Products []domain.Product `json:"products"`
}

// Create handles POST /v1/products — vendors add catalog entries they own.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Quantity:    req.Quantity,
		SKU:         req.SKU,
		VendorID:    userID,
		Publish:     req.Publish,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSlug) {
			return c.JSON(http.StatusConflict, errorResponse{Error: "a product with this name already exists"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, product)
}

// List handles GET /v1/products — published catalog, no auth required.
//
// @Summary      List published products
// @Tags         products
// @Produce      json
// @Success      200  {object}  listProductsResponse
// @Router       /v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListPublished(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listProductsResponse{Products: products})
}

// ListMine handles GET /v1/vendor/products — the calling vendor's catalog,
// drafts included.
//
// @Summary      List own products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listProductsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/vendor/products [get]
func (h *ProductHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	products, err := h.service.ListByVendor(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listProductsResponse{Products: products})
}
