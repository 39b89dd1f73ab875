package session

import (
	"net/http"

	"flavoria/internal/core/catalog"
	"flavoria/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FilterRequest 篩選請求，category 與 search 必須恰好一個
type FilterRequest struct {
	Category *string `json:"category"`
	Search   *string `json:"search"`
}

func (r FilterRequest) filter() (catalog.Filter, bool) {
	switch {
	case r.Category != nil && r.Search == nil:
		return catalog.Category(*r.Category), true
	case r.Search != nil && r.Category == nil:
		return catalog.Search(*r.Search), true
	default:
		return catalog.Filter{}, false
	}
}

// GetCatalog 回傳目前的目錄
func (h *Handler) GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, current(c).App().Catalog.Current())
}

// ApplyFilter 套用分類或搜尋並回傳最新目錄
func (h *Handler) ApplyFilter(c *gin.Context) {
	var req FilterRequest
	if !h.bindJSON(c, &req) {
		return
	}

	f, ok := req.filter()
	if !ok {
		h.respondError(c, common.NewError(common.ErrCodeInvalidRequest,
			"exactly one of category or search is required", http.StatusBadRequest, nil))
		return
	}

	s := current(c)
	listing := s.App().Catalog.Apply(c.Request.Context(), f)

	common.LogDebug("Filter applied",
		zap.String("session_id", s.ID),
		zap.String("filter", f.String()),
		zap.Int("recipes", len(listing.Recipes)),
	)
	c.JSON(http.StatusOK, listing)
}

// ListCategories 回傳分類列表
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": h.recipes.ListCategories(c.Request.Context()),
	})
}
