// Package session exposes the per-session screens over HTTP.
package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"flavoria/internal/core/mealdb"
	"flavoria/internal/core/navigation"
	"flavoria/internal/core/profile"
	sessionCore "flavoria/internal/core/session"
	"flavoria/internal/infrastructure/config"
	"flavoria/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionKey = "session"

// RecipeLookup 取得單一食譜的遠端查詢
type RecipeLookup interface {
	GetByID(ctx context.Context, id string) *mealdb.Recipe
	ListCategories(ctx context.Context) []mealdb.Category
}

// Handler 工作階段處理器
type Handler struct {
	config   *config.Config
	sessions *sessionCore.Manager
	recipes  RecipeLookup
}

// NewHandler 創建處理器
func NewHandler(cfg *config.Config, sessions *sessionCore.Manager, recipes RecipeLookup) *Handler {
	return &Handler{
		config:   cfg,
		sessions: sessions,
		recipes:  recipes,
	}
}

// ProfileView 個人資料與衍生的電子郵件
type ProfileView struct {
	DisplayName string `json:"display_name"`
	AvatarRef   string `json:"avatar_ref"`
	Email       string `json:"email"`
}

func newProfileView(p profile.Profile) ProfileView {
	return ProfileView{
		DisplayName: p.DisplayName,
		AvatarRef:   p.AvatarRef,
		Email:       p.Email(),
	}
}

// View 工作階段摘要
type View struct {
	ID            string           `json:"id"`
	Welcome       bool             `json:"welcome"`
	Navigation    navigation.State `json:"navigation"`
	Profile       ProfileView      `json:"profile"`
	FavoriteCount int              `json:"favorite_count"`
	CreatedAt     time.Time        `json:"created_at"`
}

func newView(s *sessionCore.Session) View {
	state := s.App()
	return View{
		ID:            s.ID,
		Welcome:       s.Welcome(),
		Navigation:    s.Navigation().Current(),
		Profile:       newProfileView(state.Profile.Current()),
		FavoriteCount: state.Favorites.Count(),
		CreatedAt:     s.CreatedAt,
	}
}

// LoadSession 依路徑參數載入工作階段
func (h *Handler) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		s, err := h.sessions.Get(c.Param("id"))
		if err != nil {
			h.respondError(c, err)
			c.Abort()
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

func current(c *gin.Context) *sessionCore.Session {
	return c.MustGet(sessionKey).(*sessionCore.Session)
}

// CreateSession 建立工作階段並完成首次目錄載入
func (h *Handler) CreateSession(c *gin.Context) {
	s := h.sessions.Create(c.Request.Context())
	c.JSON(http.StatusCreated, newView(s))
}

// GetSession 回傳工作階段摘要
func (h *Handler) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, newView(current(c)))
}

// DeleteSession 結束工作階段
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.sessions.End(c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// respondError maps domain errors to the API error body.
func (h *Handler) respondError(c *gin.Context, err error) {
	var ce *common.CustomError
	switch {
	case errors.As(err, &ce):
	case errors.Is(err, sessionCore.ErrNotFound):
		ce = common.ErrSessionNotFound.WithErr(err)
	case errors.Is(err, navigation.ErrInvalidTransition):
		ce = common.ErrInvalidNavigation.WithErr(err)
	case errors.Is(err, navigation.ErrMissingRecipeID), errors.Is(err, profile.ErrEmptyDisplayName):
		ce = common.ErrInvalidRequest.WithErr(err)
	default:
		ce = common.ErrInternalError.WithErr(err)
	}

	fields := []zap.Field{
		zap.String("code", ce.Code),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", requestid.Get(c)),
		zap.Error(err),
	}
	if ce.Status >= http.StatusInternalServerError {
		common.LogError("Request failed", fields...)
	} else {
		common.LogDebug("Request rejected", fields...)
	}

	c.JSON(ce.Status, ce.Response(h.config.App.Debug))
}

// bindJSON 解析請求體，失敗時回應 400
func (h *Handler) bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.respondError(c, common.ErrInvalidRequest.WithErr(err))
		return false
	}
	return true
}
