package session

import (
	"net/http"

	"flavoria/internal/core/mealdb"
	"flavoria/internal/core/navigation"
	sessionCore "flavoria/internal/core/session"
	"flavoria/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ToggleRequest 切換收藏；recipe_id 省略時使用詳細頁選定的食譜
type ToggleRequest struct {
	RecipeID string `json:"recipe_id"`
}

// ToggleFavorite 切換收藏狀態
func (h *Handler) ToggleFavorite(c *gin.Context) {
	var req ToggleRequest
	if c.Request.ContentLength != 0 && !h.bindJSON(c, &req) {
		return
	}

	s := current(c)
	id := req.RecipeID
	if id == "" {
		nav := s.Navigation().Current()
		if nav.Screen != navigation.Detail {
			h.respondError(c, navigation.ErrMissingRecipeID)
			return
		}
		id = nav.SelectedRecipeID
	}

	recipe := h.resolveRecipe(c, s, id)
	if recipe == nil {
		h.respondError(c, common.ErrRecipeNotFound)
		return
	}

	favorited := s.App().Favorites.Toggle(*recipe)
	common.LogDebug("Favorite toggled",
		zap.String("session_id", s.ID),
		zap.String("recipe_id", id),
		zap.Bool("favorited", favorited),
	)

	c.JSON(http.StatusOK, gin.H{
		"recipe_id": id,
		"favorited": favorited,
		"count":     s.App().Favorites.Count(),
	})
}

// resolveRecipe finds the recipe to toggle: the stored favorite, then the
// current listing, then the remote catalog.
func (h *Handler) resolveRecipe(c *gin.Context, s *sessionCore.Session, id string) *mealdb.Recipe {
	state := s.App()
	for _, r := range state.Favorites.List() {
		if r.ID == id {
			return &r
		}
	}
	for _, r := range state.Catalog.Current().Recipes {
		if r.ID == id {
			return &r
		}
	}
	return h.recipes.GetByID(c.Request.Context(), id)
}

// ListFavorites 回傳收藏列表
func (h *Handler) ListFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"favorites": current(c).App().Favorites.List(),
	})
}
