package mealdb

import (
	"fmt"
	"strings"
)

// MaxIngredientSlots is the number of positional ingredient/measure pairs a
// catalog record carries.
const MaxIngredientSlots = 20

// IngredientSlot 食材欄位，任何欄位都可能為空
type IngredientSlot struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// Blank reports whether the slot holds no ingredient.
func (s IngredientSlot) Blank() bool {
	return strings.TrimSpace(s.Name) == ""
}

// Recipe 食譜。ID 是唯一識別，所有比對都只看 ID。
// 選填欄位缺少時為空字串。
type Recipe struct {
	ID              string                             `json:"id"`
	Name            string                             `json:"name"`
	ThumbnailURL    string                             `json:"thumbnail_url"`
	Category        string                             `json:"category,omitempty"`
	Area            string                             `json:"area,omitempty"`
	Instructions    string                             `json:"instructions,omitempty"`
	Tags            string                             `json:"tags,omitempty"`
	YoutubeURL      string                             `json:"youtube_url,omitempty"`
	SourceURL       string                             `json:"source_url,omitempty"`
	IngredientSlots [MaxIngredientSlots]IngredientSlot `json:"-"`
}

// Ingredients returns the non-blank slots in position order.
func (r Recipe) Ingredients() []IngredientSlot {
	out := make([]IngredientSlot, 0, MaxIngredientSlots)
	for _, slot := range r.IngredientSlots {
		if slot.Blank() {
			continue
		}
		out = append(out, IngredientSlot{
			Name:    strings.TrimSpace(slot.Name),
			Measure: strings.TrimSpace(slot.Measure),
		})
	}
	return out
}

// TagList splits the comma separated tags.
func (r Recipe) TagList() []string {
	var out []string
	for _, tag := range strings.Split(r.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// Category 分類
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail_url"`
	Description  string `json:"description,omitempty"`
}

// rawRecord 是遠端回傳的單筆資料，值可能是字串或 null
type rawRecord map[string]interface{}

func (r rawRecord) str(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func (r rawRecord) toRecipe() Recipe {
	recipe := Recipe{
		ID:           r.str("idMeal"),
		Name:         r.str("strMeal"),
		ThumbnailURL: r.str("strMealThumb"),
		Category:     r.str("strCategory"),
		Area:         r.str("strArea"),
		Instructions: r.str("strInstructions"),
		Tags:         r.str("strTags"),
		YoutubeURL:   r.str("strYoutube"),
		SourceURL:    r.str("strSource"),
	}
	for i := 0; i < MaxIngredientSlots; i++ {
		recipe.IngredientSlots[i] = IngredientSlot{
			Name:    r.str(fmt.Sprintf("strIngredient%d", i+1)),
			Measure: r.str(fmt.Sprintf("strMeasure%d", i+1)),
		}
	}
	return recipe
}

func (r rawRecord) toCategory() Category {
	return Category{
		ID:           r.str("idCategory"),
		Name:         r.str("strCategory"),
		ThumbnailURL: r.str("strCategoryThumb"),
		Description:  r.str("strCategoryDescription"),
	}
}
