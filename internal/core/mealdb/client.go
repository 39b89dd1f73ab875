package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"flavoria/internal/core/cache"
	"flavoria/internal/infrastructure/config"
	"flavoria/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	endpointSearch     = "/search.php"
	endpointLookup     = "/lookup.php"
	endpointCategories = "/categories.php"
	endpointFilter     = "/filter.php"

	fieldMeals      = "meals"
	fieldCategories = "categories"
)

// Client 遠端食譜目錄的唯讀客戶端。
// 任何失敗都只記錄日誌，呼叫者拿到的是空結果。
type Client struct {
	client *resty.Client
	cache  cache.Store
}

// NewClient 創建客戶端；store 為 nil 時不快取
func NewClient(cfg *config.MealDBConfig, store cache.Store) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &Client{
		client: client,
		cache:  store,
	}
}

// ListAll returns every recipe the catalog lists by default.
func (c *Client) ListAll(ctx context.Context) []Recipe {
	return c.recipes(ctx, endpointSearch, url.Values{"s": {""}})
}

// GetByID returns the recipe with the given id, or nil when it is unknown
// or the catalog could not be reached.
func (c *Client) GetByID(ctx context.Context, id string) *Recipe {
	recipes := c.recipes(ctx, endpointLookup, url.Values{"i": {id}})
	if len(recipes) == 0 {
		return nil
	}
	return &recipes[0]
}

// Search returns recipes whose name matches term. Matching is done remotely.
func (c *Client) Search(ctx context.Context, term string) []Recipe {
	return c.recipes(ctx, endpointSearch, url.Values{"s": {term}})
}

// ListByCategory returns recipes tagged with the category name.
func (c *Client) ListByCategory(ctx context.Context, name string) []Recipe {
	return c.recipes(ctx, endpointFilter, url.Values{"c": {name}})
}

// ListCategories returns the category labels with a thumbnail each.
func (c *Client) ListCategories(ctx context.Context) []Category {
	records, err := c.fetchRecords(ctx, endpointCategories, url.Values{}, fieldCategories)
	if err != nil {
		return []Category{}
	}

	categories := make([]Category, 0, len(records))
	for _, r := range records {
		categories = append(categories, r.toCategory())
	}
	return categories
}

// Close 關閉閒置連線
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}

func (c *Client) recipes(ctx context.Context, endpoint string, params url.Values) []Recipe {
	records, err := c.fetchRecords(ctx, endpoint, params, fieldMeals)
	if err != nil {
		return []Recipe{}
	}

	recipes := make([]Recipe, 0, len(records))
	for _, r := range records {
		recipes = append(recipes, r.toRecipe())
	}
	return recipes
}

// fetchRecords 取得並解析 field 陣列；欄位缺少或為 null 時回傳空結果
func (c *Client) fetchRecords(ctx context.Context, endpoint string, params url.Values, field string) ([]rawRecord, error) {
	start := time.Now()
	key := endpoint + "?" + params.Encode()

	body, cached := c.fromCache(ctx, key)
	if !cached {
		var err error
		body, err = c.get(ctx, endpoint, params)
		if err != nil {
			common.LogFetch(key, time.Since(start), err)
			return nil, err
		}
	}

	records, err := decodeRecords(body, field)
	if err != nil {
		err = fmt.Errorf("%w: decode %s: %v", common.ErrFetchFailed, field, err)
		common.LogFetch(key, time.Since(start), err)
		return nil, err
	}

	if !cached {
		c.toCache(ctx, key, body)
	}
	common.LogFetch(key, time.Since(start), nil)
	return records, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %v", common.ErrFetchFailed, err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("%w: catalog returned status %d", common.ErrFetchFailed, resp.StatusCode())
	}

	return resp.Body(), nil
}

func decodeRecords(body []byte, field string) ([]rawRecord, error) {
	var envelope map[string]json.RawMessage
	if err := common.ParseJSONBytes(body, &envelope); err != nil {
		return nil, err
	}

	raw, ok := envelope[field]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return []rawRecord{}, nil
	}

	var records []rawRecord
	if err := common.ParseJSONBytes(raw, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *Client) fromCache(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	body, err := c.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			common.LogWarn("Cache lookup failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return body, true
}

func (c *Client) toCache(ctx context.Context, key string, body []byte) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, body); err != nil {
		common.LogWarn("Cache store failed", zap.String("key", key), zap.Error(err))
	}
}
