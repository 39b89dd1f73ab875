package session

import (
	"net/http"

	"flavoria/internal/core/mealdb"
	"flavoria/internal/core/profile"
	"flavoria/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileResponse 個人資料頁內容
type ProfileResponse struct {
	Profile   ProfileView     `json:"profile"`
	Favorites []mealdb.Recipe `json:"favorites"`
}

// UpdateProfileRequest 更新個人資料；avatar_ref 省略時保留原值
type UpdateProfileRequest struct {
	DisplayName string  `json:"display_name" binding:"required,notblank"`
	AvatarRef   *string `json:"avatar_ref"`
}

// GetProfile 取得個人資料與收藏
func (h *Handler) GetProfile(c *gin.Context) {
	state := current(c).App()
	c.JSON(http.StatusOK, ProfileResponse{
		Profile:   newProfileView(state.Profile.Current()),
		Favorites: state.Favorites.List(),
	})
}

// UpdateProfile 整筆替換個人資料
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if !h.bindJSON(c, &req) {
		return
	}

	s := current(c)
	store := s.App().Profile
	next := profile.Profile{
		DisplayName: req.DisplayName,
		AvatarRef:   store.Current().AvatarRef,
	}
	if req.AvatarRef != nil {
		next.AvatarRef = *req.AvatarRef
	}

	if err := store.Update(next); err != nil {
		h.respondError(c, err)
		return
	}

	common.LogInfo("Profile updated",
		zap.String("session_id", s.ID),
		zap.String("display_name", next.DisplayName),
	)
	c.JSON(http.StatusOK, newProfileView(store.Current()))
}
