package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/akshayraj-industries/website-backend/errors"
	"github.com/akshayraj-industries/website-backend/internal/images"
	"github.com/akshayraj-industries/website-backend/internal/sanitize"
	"github.com/akshayraj-industries/website-backend/store"
	"github.com/akshayraj-industries/website-backend/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductHandler serves the public catalog and the admin product CRUD.
type ProductHandler struct {
	products store.ProductStore
	uploader *images.Uploader
}

func NewProductHandler(products store.ProductStore, uploader *images.Uploader) *ProductHandler {
	return &ProductHandler{products: products, uploader: uploader}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.Error(errors.ValidationFailed("Invalid id", c.Param("id")))
		return 0, false
	}
	return id, true
}

// List handles GET /v1/products.
func (h *ProductHandler) List(c *gin.Context) {
	filter := types.ProductFilter{
		Category: sanitize.String(c.Query("category"), 100),
		Search:   sanitize.String(c.Query("search"), 100),
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil {
		filter.Offset = offset
	}

	products, err := h.products.List(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(errors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, types.NewSuccess("Products retrieved", products))
}

// Get handles GET /v1/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.products.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == store.ErrNotFound {
			_ = c.Error(errors.NotFound("Product", id))
		} else {
			_ = c.Error(errors.NewDatabaseError(err))
		}
		return
	}

	c.JSON(http.StatusOK, types.NewSuccess("Product retrieved", product))
}

// Create handles POST /v1/admin/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req types.ProductCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	product, appErr := productFromCreate(&req)
	if appErr != nil {
		_ = c.Error(appErr)
		return
	}

	id, err := h.products.Create(c.Request.Context(), product)
	if err != nil {
		_ = c.Error(errors.NewDatabaseError(err))
		return
	}
	product.ID = id

	c.JSON(http.StatusCreated, types.NewSuccess("Product created", product))
}

func productFromCreate(req *types.ProductCreate) (*types.Product, *errors.AppError) {
	price := decimal.Zero
	if req.Price != "" {
		parsed, err := decimal.NewFromString(req.Price)
		if err != nil || parsed.IsNegative() {
			return nil, errors.ValidationFailed("Invalid price", req.Price)
		}
		price = parsed
	}

	features := make([]string, 0, len(req.Features))
	for _, f := range req.Features {
		if cleaned := sanitize.String(f, 255); cleaned != "" {
			features = append(features, cleaned)
		}
	}

	return &types.Product{
		Title:       sanitize.String(req.Title, 255),
		Description: sanitize.LimitedHTML(req.Description),
		Category:    sanitize.String(req.Category, 100),
		Capacity:    sanitize.String(req.Capacity, 100),
		Features:    features,
		Price:       price,
		IsActive:    true,
	}, nil
}

// Update handles PATCH /v1/admin/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req types.ProductUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(errors.ValidationFailed("Invalid request body", err.Error()))
		return
	}

	if req.Price != nil {
		if parsed, err := decimal.NewFromString(*req.Price); err != nil || parsed.IsNegative() {
			_ = c.Error(errors.ValidationFailed("Invalid price", *req.Price))
			return
		}
	}
	if req.Title != nil {
		cleaned := sanitize.String(*req.Title, 255)
		req.Title = &cleaned
	}
	if req.Description != nil {
		cleaned := sanitize.LimitedHTML(*req.Description)
		req.Description = &cleaned
	}
	if req.Category != nil {
		cleaned := sanitize.String(*req.Category, 100)
		req.Category = &cleaned
	}
	if req.Capacity != nil {
		cleaned := sanitize.String(*req.Capacity, 100)
		req.Capacity = &cleaned
	}
	if req.Features != nil {
		features := make([]string, 0, len(*req.Features))
		for _, f := range *req.Features {
			if cleaned := sanitize.String(f, 255); cleaned != "" {
				features = append(features, cleaned)
			}
		}
		req.Features = &features
	}

	if err := h.products.Update(c.Request.Context(), id, &req); err != nil {
		if err == store.ErrNotFound {
			_ = c.Error(errors.NotFound("Product", id))
		} else {
			_ = c.Error(errors.NewDatabaseError(err))
		}
		return
	}

	c.JSON(http.StatusOK, types.NewSuccess("Product updated", nil))
}

// Delete handles DELETE /v1/admin/products/:id. Products are deactivated,
// not removed, so existing references stay resolvable.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		if err == store.ErrNotFound {
			_ = c.Error(errors.NotFound("Product", id))
		} else {
			_ = c.Error(errors.NewDatabaseError(err))
		}
		return
	}

	c.JSON(http.StatusOK, types.NewSuccess("Product deleted", nil))
}

// UploadImage handles POST /v1/admin/products/:id/image with a multipart
// "image" field.
func (h *ProductHandler) UploadImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if h.uploader == nil {
		_ = c.Error(errors.InternalServerError("Image uploads are not configured"))
		return
	}

	if _, err := h.products.GetByID(c.Request.Context(), id); err != nil {
		if err == store.ErrNotFound {
			_ = c.Error(errors.NotFound("Product", id))
		} else {
			_ = c.Error(errors.NewDatabaseError(err))
		}
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		_ = c.Error(errors.ValidationFailed("Image file required", err.Error()))
		return
	}

	f, err := file.Open()
	if err != nil {
		_ = c.Error(errors.InternalServerError("Failed to read upload"))
		return
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		_ = c.Error(errors.InternalServerError("Failed to read upload"))
		return
	}

	ref, err := h.uploader.UploadProductImage(c.Request.Context(), id, data)
	if err != nil {
		_ = c.Error(errors.ValidationFailed("Image rejected", err.Error()))
		return
	}

	if err := h.products.SetImage(c.Request.Context(), id, ref); err != nil {
		_ = c.Error(errors.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, types.NewSuccess("Image uploaded", ref))
}
