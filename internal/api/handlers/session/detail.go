package session

import (
	"fmt"
	"net/http"

	"flavoria/internal/core/mealdb"
	"flavoria/internal/core/navigation"
	"flavoria/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// DetailResponse 詳細頁內容
type DetailResponse struct {
	Recipe      *mealdb.Recipe          `json:"recipe"`
	Ingredients []mealdb.IngredientSlot `json:"ingredients"`
	Steps       []string                `json:"steps"`
	Tags        []string                `json:"tags"`
	Favorited   bool                    `json:"favorited"`
}

// GetDetail 取得選定食譜的詳細資料
func (h *Handler) GetDetail(c *gin.Context) {
	s := current(c)
	nav := s.Navigation().Current()
	if nav.Screen != navigation.Detail {
		h.respondError(c, fmt.Errorf("%w: detail requested on %s", navigation.ErrInvalidTransition, nav.Screen))
		return
	}

	recipe := h.recipes.GetByID(c.Request.Context(), nav.SelectedRecipeID)
	if recipe == nil {
		h.respondError(c, common.ErrRecipeNotFound)
		return
	}

	c.JSON(http.StatusOK, DetailResponse{
		Recipe:      recipe,
		Ingredients: recipe.Ingredients(),
		Steps:       recipe.Steps(),
		Tags:        recipe.TagList(),
		Favorited:   s.App().Favorites.IsFavorite(recipe.ID),
	})
}
