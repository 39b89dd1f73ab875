package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flavoria/internal/core/mealdb"
	sessionCore "flavoria/internal/core/session"
	"flavoria/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	wellington = `{"idMeal":"52803","strMeal":"Beef Wellington","strMealThumb":"https://img/w.jpg","strCategory":"Beef","strInstructions":"Heat the oven to 200C.\r\nSeal the beef in a hot pan.","strTags":"Meat,Pie","strIngredient1":"Beef Fillet","strMeasure1":"1kg"}`
	salmon     = `{"idMeal":"52959","strMeal":"Baked salmon","strMealThumb":"https://img/s.jpg","strCategory":"Seafood"}`
)

func fakeCatalog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch r.URL.Path {
	case "/search.php":
		switch q.Get("s") {
		case "":
			w.Write([]byte(`{"meals":[` + wellington + `,` + salmon + `]}`))
		case "wellington":
			w.Write([]byte(`{"meals":[` + wellington + `]}`))
		default:
			w.Write([]byte(`{"meals":null}`))
		}
	case "/lookup.php":
		if q.Get("i") == "52803" {
			w.Write([]byte(`{"meals":[` + wellington + `]}`))
			return
		}
		w.Write([]byte(`{"meals":null}`))
	case "/filter.php":
		if q.Get("c") == "Seafood" {
			w.Write([]byte(`{"meals":[` + salmon + `]}`))
			return
		}
		w.Write([]byte(`{"meals":null}`))
	case "/categories.php":
		w.Write([]byte(`{"categories":[{"idCategory":"1","strCategory":"Beef"},{"idCategory":"2","strCategory":"Seafood"}]}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(fakeCatalog))
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.MealDB.BaseURL = srv.URL
	cfg.Session.SplashDelay = 0
	cfg.RateLimit.Enabled = false

	client := mealdb.NewClient(&cfg.MealDB, nil)
	sessions := sessionCore.NewManager(cfg, client)
	t.Cleanup(func() { sessions.Close() })

	router, err := SetupRouter(cfg, client, sessions, nil)
	require.NoError(t, err)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func createSession(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w, out := do(t, router, http.MethodPost, "/api/v1/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	return out["id"].(string)
}

func TestSetupRouterRequiresDependencies(t *testing.T) {
	_, err := SetupRouter(config.Default(), nil, nil, nil)
	assert.Error(t, err)
}

func TestHealthEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	w, out := do(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", out["status"])
	assert.EqualValues(t, 0, out["sessions"])

	w, _ = do(t, router, http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, router, http.MethodGet, "/live", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateSession(t *testing.T) {
	router := setupTestRouter(t)

	w, out := do(t, router, http.MethodPost, "/api/v1/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, out["id"])
	assert.Equal(t, false, out["welcome"])
	assert.EqualValues(t, 0, out["favorite_count"])
	assert.Equal(t, map[string]interface{}{"screen": "listing"}, out["navigation"])

	p := out["profile"].(map[string]interface{})
	assert.Equal(t, "Salwa", p["display_name"])
	assert.Equal(t, "salwa@flavoria.com", p["email"])

	id := out["id"].(string)
	w, out = do(t, router, http.MethodGet, "/api/v1/sessions/"+id+"/catalog", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "all", out["filter"])
	assert.Equal(t, "All", out["selected_category"])
	assert.Len(t, out["recipes"], 2)
	assert.Len(t, out["categories"], 2)
	assert.NotNil(t, out["featured"])
}

func TestUnknownSession(t *testing.T) {
	router := setupTestRouter(t)

	w, out := do(t, router, http.MethodGet, "/api/v1/sessions/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "SESSION_NOT_FOUND", out["code"])
}

func TestDeleteSession(t *testing.T) {
	router := setupTestRouter(t)
	id := createSession(t, router)

	w, _ := do(t, router, http.MethodDelete, "/api/v1/sessions/"+id, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = do(t, router, http.MethodGet, "/api/v1/sessions/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestApplyFilter(t *testing.T) {
	router := setupTestRouter(t)
	base := "/api/v1/sessions/" + createSession(t, router)

	w, out := do(t, router, http.MethodPut, base+"/catalog/filter", `{"category":"Seafood"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "category", out["filter"])
	assert.Equal(t, "Seafood", out["selected_category"])
	assert.Len(t, out["recipes"], 1)

	w, out = do(t, router, http.MethodPut, base+"/catalog/filter", `{"search":"wellington"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "search", out["filter"])
	assert.Equal(t, "", out["selected_category"])
	assert.Equal(t, "wellington", out["search_text"])
	assert.Nil(t, out["featured"])
	assert.Len(t, out["recipes"], 1)

	w, out = do(t, router, http.MethodPut, base+"/catalog/filter", `{"search":"zzz"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, out["recipes"])
	assert.Equal(t, false, out["loading"])

	w, _ = do(t, router, http.MethodPut, base+"/catalog/filter", `{"category":"Beef","search":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = do(t, router, http.MethodPut, base+"/catalog/filter", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCategories(t *testing.T) {
	router := setupTestRouter(t)

	w, out := do(t, router, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, out["categories"], 2)
}

func TestNavigationAndDetail(t *testing.T) {
	router := setupTestRouter(t)
	base := "/api/v1/sessions/" + createSession(t, router)

	w, _ := do(t, router, http.MethodGet, base+"/detail", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w, out := do(t, router, http.MethodPost, base+"/navigation/select", `{"recipe_id":"52803"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "detail", out["screen"])
	assert.Equal(t, "52803", out["selected_recipe_id"])

	w, out = do(t, router, http.MethodGet, base+"/detail", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Beef Wellington", out["recipe"].(map[string]interface{})["name"])
	assert.Equal(t, []interface{}{"Heat the oven to 200C.", "Seal the beef in a hot pan."}, out["steps"])
	assert.Equal(t, []interface{}{"Meat", "Pie"}, out["tags"])
	assert.Len(t, out["ingredients"], 1)
	assert.Equal(t, false, out["favorited"])

	w, out = do(t, router, http.MethodPost, base+"/navigation/profile", "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "INVALID_NAVIGATION", out["code"])

	w, out = do(t, router, http.MethodPost, base+"/navigation/back", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{"screen": "listing"}, out)

	w, out = do(t, router, http.MethodPost, base+"/navigation/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "profile", out["screen"])

	w, _ = do(t, router, http.MethodPost, base+"/navigation/select", `{"recipe_id":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDetailUnknownRecipe(t *testing.T) {
	router := setupTestRouter(t)
	base := "/api/v1/sessions/" + createSession(t, router)

	do(t, router, http.MethodPost, base+"/navigation/select", `{"recipe_id":"1"}`)
	w, out := do(t, router, http.MethodGet, base+"/detail", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "RECIPE_NOT_FOUND", out["code"])
}

func TestToggleFavorite(t *testing.T) {
	router := setupTestRouter(t)
	base := "/api/v1/sessions/" + createSession(t, router)

	w, _ := do(t, router, http.MethodPost, base+"/favorites/toggle", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	do(t, router, http.MethodPost, base+"/navigation/select", `{"recipe_id":"52803"}`)

	w, out := do(t, router, http.MethodPost, base+"/favorites/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, out["favorited"])
	assert.EqualValues(t, 1, out["count"])

	_, out = do(t, router, http.MethodGet, base+"/detail", "")
	assert.Equal(t, true, out["favorited"])

	w, out = do(t, router, http.MethodPost, base+"/favorites/toggle", `{"recipe_id":"52959"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, out["count"])

	_, out = do(t, router, http.MethodGet, base+"/favorites", "")
	favs := out["favorites"].([]interface{})
	require.Len(t, favs, 2)
	assert.Equal(t, "52803", favs[0].(map[string]interface{})["id"])

	w, out = do(t, router, http.MethodPost, base+"/favorites/toggle", `{"recipe_id":"52803"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, out["favorited"])
	assert.EqualValues(t, 1, out["count"])

	w, _ = do(t, router, http.MethodPost, base+"/favorites/toggle", `{"recipe_id":"999"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProfile(t *testing.T) {
	router := setupTestRouter(t)
	base := "/api/v1/sessions/" + createSession(t, router)

	do(t, router, http.MethodPost, base+"/favorites/toggle", `{"recipe_id":"52803"}`)

	w, out := do(t, router, http.MethodPut, base+"/profile", `{"display_name":"Chef Sal"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Chef Sal", out["display_name"])
	assert.Equal(t, "chefsal@flavoria.com", out["email"])
	assert.Equal(t, "assets/images/salwa.jpeg", out["avatar_ref"])

	w, out = do(t, router, http.MethodGet, base+"/profile", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Chef Sal", out["profile"].(map[string]interface{})["display_name"])
	assert.Len(t, out["favorites"], 1)

	w, _ = do(t, router, http.MethodPut, base+"/profile", `{"display_name":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w, _ = do(t, router, http.MethodPut, base+"/profile", `{"avatar_ref":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNoRoute(t *testing.T) {
	router := setupTestRouter(t)

	w, out := do(t, router, http.MethodGet, "/api/v1/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", out["code"])
}
