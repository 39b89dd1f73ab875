package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SelectRequest 選擇食譜
type SelectRequest struct {
	RecipeID string `json:"recipe_id"`
}

// SelectRecipe 開啟詳細頁
func (h *Handler) SelectRecipe(c *gin.Context) {
	var req SelectRequest
	if !h.bindJSON(c, &req) {
		return
	}

	state, err := current(c).Navigation().SelectRecipe(req.RecipeID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// OpenProfile 開啟個人資料頁
func (h *Handler) OpenProfile(c *gin.Context) {
	state, err := current(c).Navigation().OpenProfile()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// Back 回到列表頁
func (h *Handler) Back(c *gin.Context) {
	c.JSON(http.StatusOK, current(c).Navigation().Back())
}
