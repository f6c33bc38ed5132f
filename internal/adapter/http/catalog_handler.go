package http

import (
	"net/http"
	"strconv"

	domain "github.com/Calebyte11/Boqbox-landing/internal/entity"
	"github.com/Calebyte11/Boqbox-landing/internal/usecase"
	"github.com/gin-gonic/gin"
)

// CatalogHandler proxies the cursor-paginated item and vendor
// listings. Forward-only: the client walks nextCursor until null.
type CatalogHandler struct {
	catalog      usecase.Catalog
	defaultLimit int
}

func NewCatalogHandler(catalog usecase.Catalog, defaultLimit int) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, defaultLimit: defaultLimit}
}

func (h *CatalogHandler) limit(c *gin.Context) int {
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return h.defaultLimit
}

func (h *CatalogHandler) Items(c *gin.Context) {
	ctx, cancel := ctxWithTimeout(c)
	defer cancel()

	page, err := h.catalog.ListItems(ctx, h.limit(c), c.Query("cursor"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}
	if page.Data == nil {
		page.Data = []domain.GiftItem{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "nextCursor": nullable(page.NextCursor), "data": page.Data})
}

func (h *CatalogHandler) Vendors(c *gin.Context) {
	ctx, cancel := ctxWithTimeout(c)
	defer cancel()

	page, err := h.catalog.ListVendors(ctx, h.limit(c), c.Query("cursor"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": err.Error()})
		return
	}
	if page.Data == nil {
		page.Data = []domain.CatalogVendor{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "nextCursor": nullable(page.NextCursor), "data": page.Data})
}

// nullable keeps the wire contract: an exhausted cursor is null, not "".
func nullable(cursor string) any {
	if cursor == "" {
		return nil
	}
	return cursor
}
