package recipe

import (
	"recipe-app/domain"
	"sort"
	"strings"
)

// FilterRecipes applies q to recipes and returns a new slice; the input is
// not modified.
func FilterRecipes(recipes []domain.Recipe, q domain.RecipeQuery) []domain.Recipe {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		if q.Cuisine != "" && !strings.EqualFold(r.Cuisine, q.Cuisine) {
			continue
		}
		if q.Difficulty != "" && !strings.EqualFold(r.Difficulty(), q.Difficulty) {
			continue
		}
		if q.Category != "" && !strings.EqualFold(r.Category, q.Category) {
			continue
		}
		if q.MaxTotalTime > 0 && r.TotalTime() > q.MaxTotalTime {
			continue
		}
		out = append(out, r)
	}

	SortRecipes(out, q.Sort)
	return out
}

func matchesSearch(r domain.Recipe, search string) bool {
	return strings.Contains(strings.ToLower(r.Name), search) ||
		strings.Contains(strings.ToLower(r.Description), search) ||
		strings.Contains(strings.ToLower(r.Cuisine), search)
}

// SortRecipes orders recipes in place. Unknown keys and SortDefault keep the
// existing order.
func SortRecipes(recipes []domain.Recipe, key string) {
	switch key {
	case domain.SortRating:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].Rating > recipes[j].Rating
		})
	case domain.SortTime:
		sort.SliceStable(recipes, func(i, j int) bool {
			return recipes[i].TotalTime() < recipes[j].TotalTime()
		})
	case domain.SortName:
		sort.SliceStable(recipes, func(i, j int) bool {
			return strings.ToLower(recipes[i].Name) < strings.ToLower(recipes[j].Name)
		})
	}
}
