package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRecipeFromDocumentDefaults(t *testing.T) {
	r := RecipeFromDocument("r1", bson.M{"name": "Toast"})

	assert.Equal(t, "r1", r.ID)
	assert.Equal(t, "Toast", r.Name)
	assert.Equal(t, 0, r.PrepTime)
	assert.Equal(t, 0, r.CookTime)
	assert.Equal(t, 4, r.Servings)
	assert.Equal(t, 0.0, r.Rating)
	assert.Equal(t, "", r.DifficultyLevel)
	assert.False(t, r.IsFavorite)
}

func TestRecipeFromDocumentMissingListsAreEmpty(t *testing.T) {
	r := RecipeFromDocument("r1", bson.M{})

	assert.NotNil(t, r.Ingredients)
	assert.Empty(t, r.Ingredients)
	assert.NotNil(t, r.Instructions)
	assert.Empty(t, r.Instructions)
	assert.NotNil(t, r.DietaryTags)
	assert.Empty(t, r.DietaryTags)
}

func TestRecipeFromDocumentNumericTypes(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  int
	}{
		{"int", 12, 12},
		{"int32", int32(15), 15},
		{"int64", int64(20), 20},
		{"float64", float64(25), 25},
		{"float32", float32(30), 30},
		{"string", "40", 0},
		{"bool", true, 0},
		{"nil", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := RecipeFromDocument("r", bson.M{"prepTime": tc.value, "cookTime": tc.value})
			assert.Equal(t, tc.want, r.PrepTime)
			assert.Equal(t, tc.want, r.CookTime)
		})
	}
}

func TestRecipeFromDocumentMistypedServingsFallsBack(t *testing.T) {
	r := RecipeFromDocument("r", bson.M{"servings": "six"})
	assert.Equal(t, 4, r.Servings)

	r = RecipeFromDocument("r", bson.M{"servings": int32(6)})
	assert.Equal(t, 6, r.Servings)
}

func TestRecipeFromDocumentDropsNonStringListElements(t *testing.T) {
	doc := bson.M{
		"ingredients":  primitive.A{"2 eggs", int32(3), "flour", nil, bson.M{"name": "x"}},
		"instructions": []interface{}{"Mix", 1.5, "Bake"},
		"dietaryTags":  []string{"Vegetarian"},
	}

	r := RecipeFromDocument("r", doc)

	assert.Equal(t, []string{"2 eggs", "flour"}, r.Ingredients)
	assert.Equal(t, []string{"Mix", "Bake"}, r.Instructions)
	assert.Equal(t, []string{"Vegetarian"}, r.DietaryTags)
}

func TestRecipeFromDocumentListWrongType(t *testing.T) {
	r := RecipeFromDocument("r", bson.M{"ingredients": "eggs, flour"})
	assert.Equal(t, []string{}, r.Ingredients)
}

func TestRecipeFromDocumentFullRecord(t *testing.T) {
	doc := bson.M{
		"_id":         "abc",
		"name":        "Spaghetti Carbonara",
		"description": "Classic",
		"imageUrl":    "recipes/carbonara.jpg",
		"prepTime":    int64(15),
		"cookTime":    int64(20),
		"servings":    int64(2),
		"difficulty":  "Medium",
		"cuisine":     "Italian",
		"category":    "Dinner",
		"rating":      4.5,
		"userId":      "u1",
	}

	r := RecipeFromDocument(DocumentID(doc), doc)

	assert.Equal(t, "abc", r.ID)
	assert.Equal(t, "recipes/carbonara.jpg", r.ImageURL)
	assert.Equal(t, 2, r.Servings)
	assert.Equal(t, "Medium", r.DifficultyLevel)
	assert.Equal(t, "Italian", r.Cuisine)
	assert.Equal(t, "Dinner", r.Category)
	assert.Equal(t, 4.5, r.Rating)
	assert.Equal(t, "u1", r.UserID)
}

func TestDocumentID(t *testing.T) {
	oid := primitive.NewObjectID()

	assert.Equal(t, "abc", DocumentID(bson.M{"_id": "abc"}))
	assert.Equal(t, oid.Hex(), DocumentID(bson.M{"_id": oid}))
	assert.Equal(t, "", DocumentID(bson.M{"_id": 42}))
	assert.Equal(t, "", DocumentID(bson.M{}))
}

func TestRecipeToDocumentOmitsUnsetDifficulty(t *testing.T) {
	doc := RecipeToDocument(RecipeFromDocument("r", bson.M{"name": "Soup"}))

	_, hasDifficulty := doc["difficulty"]
	assert.False(t, hasDifficulty)
	assert.Equal(t, []string{}, doc["ingredients"])
	assert.Contains(t, doc, "timestamp")

	back := RecipeFromDocument("r", doc)
	assert.Equal(t, "", back.DifficultyLevel)
	assert.Equal(t, 4, back.Servings)
}
