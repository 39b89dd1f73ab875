package catalog

import (
	"context"
	"sync"

	"flavoria/internal/core/mealdb"
	"flavoria/internal/pkg/common"

	"go.uber.org/zap"
)

// Fetcher 是 view model 需要的遠端查詢
type Fetcher interface {
	ListAll(ctx context.Context) []mealdb.Recipe
	Search(ctx context.Context, term string) []mealdb.Recipe
	ListByCategory(ctx context.Context, name string) []mealdb.Recipe
	ListCategories(ctx context.Context) []mealdb.Category
}

// Featured is the recipe promoted in the banner above the listing.
type Featured struct {
	RecipeID string `json:"recipe_id"`
	Title    string `json:"title"`
}

// Listing 是畫面要顯示的目錄快照
type Listing struct {
	Filter           Kind              `json:"filter"`
	SelectedCategory string            `json:"selected_category"`
	SearchText       string            `json:"search_text"`
	Recipes          []mealdb.Recipe   `json:"recipes"`
	Loading          bool              `json:"loading"`
	Categories       []mealdb.Category `json:"categories"`
	Featured         *Featured         `json:"featured,omitempty"`
	Version          uint64            `json:"version"`
}

// Empty reports whether the empty-state placeholder should be shown.
func (l Listing) Empty() bool {
	return !l.Loading && len(l.Recipes) == 0
}

// ViewModel composes fetch results with the active filter.
//
// Every filter change bumps a version and tags the fetch it starts. A
// result is applied only if its tag still equals the current version, so a
// slow fetch for an older filter can never overwrite a newer one.
type ViewModel struct {
	fetcher  Fetcher
	featured Featured

	mu         sync.RWMutex
	filter     Filter
	version    uint64
	recipes    []mealdb.Recipe
	categories []mealdb.Category
	loading    bool
}

// NewViewModel creates a view model with the unfiltered selection.
func NewViewModel(fetcher Fetcher, featured Featured) *ViewModel {
	return &ViewModel{
		fetcher:    fetcher,
		featured:   featured,
		filter:     All(),
		recipes:    []mealdb.Recipe{},
		categories: []mealdb.Category{},
	}
}

// Init performs the initial load: the unfiltered list and the category
// list, fetched concurrently.
func (vm *ViewModel) Init(ctx context.Context) Listing {
	version := vm.begin(All())

	var (
		wg         sync.WaitGroup
		recipes    []mealdb.Recipe
		categories []mealdb.Category
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		recipes = vm.fetcher.ListAll(ctx)
	}()
	go func() {
		defer wg.Done()
		categories = vm.fetcher.ListCategories(ctx)
	}()
	wg.Wait()

	vm.mu.Lock()
	vm.categories = categories
	vm.mu.Unlock()

	vm.commit(version, recipes)
	return vm.Current()
}

// SelectCategory switches to a category, clearing any search text.
func (vm *ViewModel) SelectCategory(ctx context.Context, name string) Listing {
	return vm.Apply(ctx, Category(name))
}

// Search switches to a search term, clearing the selected category.
func (vm *ViewModel) Search(ctx context.Context, text string) Listing {
	return vm.Apply(ctx, Search(text))
}

// Apply makes f the active filter, fetches its recipes and returns the
// listing. The returned listing always reflects the latest filter, which
// may be newer than f.
func (vm *ViewModel) Apply(ctx context.Context, f Filter) Listing {
	version := vm.begin(f)
	recipes := vm.fetch(ctx, f.resolve())
	vm.commit(version, recipes)
	return vm.Current()
}

// Current returns the listing without fetching.
func (vm *ViewModel) Current() Listing {
	vm.mu.RLock()
	defer vm.mu.RUnlock()

	listing := Listing{
		Filter:           vm.filter.Kind,
		SelectedCategory: vm.filter.CategoryLabel(),
		SearchText:       vm.filter.SearchText(),
		Recipes:          append([]mealdb.Recipe(nil), vm.recipes...),
		Loading:          vm.loading,
		Categories:       append([]mealdb.Category(nil), vm.categories...),
		Version:          vm.version,
	}
	if listing.Recipes == nil {
		listing.Recipes = []mealdb.Recipe{}
	}
	if listing.Categories == nil {
		listing.Categories = []mealdb.Category{}
	}
	// 搜尋框有文字時隱藏推薦橫幅
	if listing.SearchText == "" && vm.featured.RecipeID != "" {
		featured := vm.featured
		listing.Featured = &featured
	}
	return listing
}

// Filter returns the active filter.
func (vm *ViewModel) Filter() Filter {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.filter
}

func (vm *ViewModel) begin(f Filter) uint64 {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	vm.version++
	vm.filter = f
	vm.loading = true
	return vm.version
}

// commit applies recipes if version is still current and reports whether
// it did.
func (vm *ViewModel) commit(version uint64, recipes []mealdb.Recipe) bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()

	if version != vm.version {
		common.LogDebug("Discarding stale catalog result",
			zap.Uint64("result_version", version),
			zap.Uint64("current_version", vm.version),
		)
		return false
	}

	if recipes == nil {
		recipes = []mealdb.Recipe{}
	}
	vm.recipes = recipes
	vm.loading = false
	return true
}

func (vm *ViewModel) fetch(ctx context.Context, q query) []mealdb.Recipe {
	switch q.op {
	case BySearchTerm:
		return vm.fetcher.Search(ctx, q.arg)
	case ByCategory:
		return vm.fetcher.ListByCategory(ctx, q.arg)
	default:
		return vm.fetcher.ListAll(ctx)
	}
}
