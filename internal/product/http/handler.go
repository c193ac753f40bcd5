package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shopfleet/shopfleet/internal/auth"
	"github.com/shopfleet/shopfleet/internal/pagination"
	"github.com/shopfleet/shopfleet/internal/product/domain"
	"github.com/shopfleet/shopfleet/internal/product/repository"
	"github.com/shopfleet/shopfleet/internal/product/service"
)

type Handler struct {
	service *service.ProductService
}

func NewHandler(s *service.ProductService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, resolver auth.IdentityResolver) {
	resolve := auth.ResolveIdentity(resolver)
	manage := auth.RequireCapability(auth.CapManageProducts)

	r.GET("/product", h.ListProducts)
	r.POST("/product", resolve, manage, h.CreateProduct)
	r.DELETE("/product", resolve, manage, h.DeactivateProducts)
	r.GET("/product/:id", h.GetProduct)
	r.PATCH("/product/:id", resolve, manage, h.UpdateProduct)
	r.GET("/product/:id/stock", h.GetStock)
	r.PATCH("/product/:id/stock", resolve, manage, h.AdjustStock)
	r.POST("/product/stock", resolve, h.ApplyStockDeltas)
	r.POST("/product/stock/check", h.CheckStock)
	r.GET("/product/category", h.ListCategories)
	r.POST("/product/category", resolve, manage, h.CreateCategory)
	r.DELETE("/product/category", resolve, manage, h.DeactivateCategories)
	r.PUT("/product/category/:id", resolve, manage, h.RenameCategory)
	r.DELETE("/product/category/:id", resolve, manage, h.DeleteCategory)
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	p, err := h.service.GetProduct(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	details, _ := strconv.ParseBool(c.Query("details"))
	if !details {
		c.JSON(http.StatusOK, summaryResponse(p))
		return
	}
	images, err := h.service.GetProductImages(p.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, detailResponse(p, images))
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	var req ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.service.UpdateProduct(id, service.ProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Stock:       req.Stock,
		IsActive:    req.IsActive,
	})
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, summaryResponse(p))
}

func (h *Handler) ListProducts(c *gin.Context) {
	page := pagination.Parse(c.Query("page"), c.Query("per_page"))
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)
	products, total, err := h.service.ListProducts(c.Query("query"), categoryID, page.Offset(), page.PerPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	out := make([]gin.H, 0, len(products))
	for i := range products {
		out = append(out, summaryResponse(&products[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"products":    out,
		"page":        page.Number,
		"per_page":    page.PerPage,
		"total_pages": pagination.TotalPages(total, page.PerPage),
	})
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := h.service.CreateProduct(service.ProductInput{
		Name:        &req.Name,
		Price:       &req.Price,
		Description: &req.Description,
		CategoryID:  &req.CategoryID,
		Stock:       &req.Stock,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, summaryResponse(p))
}

// DeactivateProducts is the bulk soft delete: the body is a bare list of
// product ids, the response reports per-id success and failure.
func (h *Handler) DeactivateProducts(c *gin.Context) {
	var ids []uint64
	if err := c.ShouldBindJSON(&ids); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	success, failure := h.service.DeactivateProducts(ids)
	c.JSON(http.StatusAccepted, gin.H{"success": success, "failure": failure})
}

func (h *Handler) GetStock(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	p, err := h.service.GetProduct(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product_id": p.ID, "stock": p.Stock})
}

func (h *Handler) AdjustStock(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	var req StockChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.AdjustStock(id, req.Change); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusAccepted)
}

// ApplyStockDeltas is the canonical bulk stock endpoint: the whole batch is
// applied atomically or rejected. Reserved for sibling services and admins.
func (h *Handler) ApplyStockDeltas(c *gin.Context) {
	identity := auth.IdentityFrom(c)
	if !auth.IsCrossService(c) && !identity.Can(auth.CapManageProducts) {
		c.JSON(http.StatusForbidden, gin.H{"detail": "permission denied"})
		return
	}
	var entries []StockDeltaEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.ApplyStockDeltas(toDeltas(entries)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

// CheckStock validates availability without reserving anything. A 400 names
// the first insufficient product.
func (h *Handler) CheckStock(c *gin.Context) {
	var entries []StockDeltaEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.CheckStock(toDeltas(entries)); err != nil {
		var insufficient *service.InsufficientStockError
		if errors.As(err, &insufficient) {
			c.JSON(http.StatusBadRequest, gin.H{
				"product_id": insufficient.ProductID,
				"detail":     insufficient.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := h.service.CreateCategory(req.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *Handler) DeactivateCategories(c *gin.Context) {
	var ids []uint64
	if err := c.ShouldBindJSON(&ids); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	success, failure := h.service.DeactivateCategories(ids)
	c.JSON(http.StatusAccepted, gin.H{"success": success, "failure": failure})
}

func (h *Handler) RenameCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}
	var req CategoryRenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	category, err := h.service.RenameCategory(id, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, category)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return
	}
	if err := h.service.DeleteCategory(id); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusAccepted)
}

func toDeltas(entries []StockDeltaEntry) []repository.StockDelta {
	deltas := make([]repository.StockDelta, 0, len(entries))
	for _, e := range entries {
		deltas = append(deltas, repository.StockDelta{ProductID: e.ProductID, Quantity: e.Quantity})
	}
	return deltas
}

func summaryResponse(p *domain.Product) gin.H {
	return gin.H{
		"id":          p.ID,
		"name":        p.Name,
		"price":       p.Price,
		"category_id": p.CategoryID,
		"stock":       p.Stock,
		"is_active":   p.IsActive,
	}
}

func detailResponse(p *domain.Product, images []domain.ProductImage) gin.H {
	resp := summaryResponse(p)
	resp["description"] = p.Description
	paths := make([]string, 0, len(images))
	for _, img := range images {
		paths = append(paths, img.Path)
	}
	resp["images"] = paths
	return resp
}
