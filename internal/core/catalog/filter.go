package catalog

import (
	"fmt"
	"strings"
)

// AllCategory is the category label that means "no category filter".
const AllCategory = "All"

// Kind 篩選條件種類，三者互斥
type Kind int

const (
	AllRecipes Kind = iota
	ByCategory
	BySearchTerm
)

func (k Kind) String() string {
	switch k {
	case ByCategory:
		return "category"
	case BySearchTerm:
		return "search"
	default:
		return "all"
	}
}

// MarshalText 讓 Kind 以字串輸出到 JSON
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Filter selects which recipes are listed. A Filter holds exactly one
// variant, so choosing a category drops any search text and vice versa.
type Filter struct {
	Kind  Kind
	Value string
}

// All lists the whole catalog.
func All() Filter {
	return Filter{Kind: AllRecipes}
}

// Category lists recipes tagged with name. Category(AllCategory) lists
// everything.
func Category(name string) Filter {
	return Filter{Kind: ByCategory, Value: name}
}

// Search lists recipes matching text.
func Search(text string) Filter {
	return Filter{Kind: BySearchTerm, Value: text}
}

// CategoryLabel is the selected category as shown in the category bar:
// "All", the category name, or "" while searching.
func (f Filter) CategoryLabel() string {
	switch f.Kind {
	case ByCategory:
		return f.Value
	case BySearchTerm:
		return ""
	default:
		return AllCategory
	}
}

// SearchText is the text in the search box.
func (f Filter) SearchText() string {
	if f.Kind == BySearchTerm {
		return f.Value
	}
	return ""
}

func (f Filter) String() string {
	if f.Kind == AllRecipes {
		return f.Kind.String()
	}
	return fmt.Sprintf("%s(%q)", f.Kind, f.Value)
}

// query 是篩選條件解析後實際要呼叫的遠端操作
type query struct {
	op  Kind
	arg string
}

// resolve applies the precedence: non-blank search text, then a category
// other than "All", then the full list.
func (f Filter) resolve() query {
	switch f.Kind {
	case BySearchTerm:
		if term := strings.TrimSpace(f.Value); term != "" {
			return query{op: BySearchTerm, arg: f.Value}
		}
	case ByCategory:
		if f.Value != AllCategory && f.Value != "" {
			return query{op: ByCategory, arg: f.Value}
		}
	}
	return query{op: AllRecipes}
}
