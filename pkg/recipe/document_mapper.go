package recipe

import (
	"recipe-app/domain"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field names as stored in the recipes collection.
const (
	fieldID           = "_id"
	fieldName         = "name"
	fieldDescription  = "description"
	fieldImageURL     = "imageUrl"
	fieldPrepTime     = "prepTime"
	fieldCookTime     = "cookTime"
	fieldServings     = "servings"
	fieldIngredients  = "ingredients"
	fieldInstructions = "instructions"
	fieldDifficulty   = "difficulty"
	fieldCuisine      = "cuisine"
	fieldCategory     = "category"
	fieldRating       = "rating"
	fieldDietaryTags  = "dietaryTags"
	fieldUserID       = "userId"
	fieldTimestamp    = "timestamp"
)

// RecipeFromDocument converts a stored document into a Recipe. Missing or
// mistyped fields fall back to defaults; it never fails. IsFavorite is left
// false.
func RecipeFromDocument(id string, doc map[string]interface{}) domain.Recipe {
	return domain.Recipe{
		ID:              id,
		UserID:          stringField(doc, fieldUserID),
		Name:            stringField(doc, fieldName),
		Description:     stringField(doc, fieldDescription),
		ImageURL:        stringField(doc, fieldImageURL),
		PrepTime:        intField(doc, fieldPrepTime, 0),
		CookTime:        intField(doc, fieldCookTime, 0),
		Servings:        intField(doc, fieldServings, domain.DefaultServings),
		Cuisine:         stringField(doc, fieldCuisine),
		Category:        stringField(doc, fieldCategory),
		DifficultyLevel: stringField(doc, fieldDifficulty),
		Rating:          floatField(doc, fieldRating),
		Ingredients:     stringListField(doc, fieldIngredients),
		Instructions:    stringListField(doc, fieldInstructions),
		DietaryTags:     stringListField(doc, fieldDietaryTags),
	}
}

// RecipeToDocument is the stored form of r. The id is not included; callers
// address the document by it.
func RecipeToDocument(r domain.Recipe) bson.M {
	doc := bson.M{
		fieldName:         r.Name,
		fieldDescription:  r.Description,
		fieldImageURL:     r.ImageURL,
		fieldPrepTime:     r.PrepTime,
		fieldCookTime:     r.CookTime,
		fieldServings:     r.Servings,
		fieldIngredients:  stringsOrEmpty(r.Ingredients),
		fieldInstructions: stringsOrEmpty(r.Instructions),
		fieldCuisine:      r.Cuisine,
		fieldCategory:     r.Category,
		fieldRating:       r.Rating,
		fieldDietaryTags:  stringsOrEmpty(r.DietaryTags),
		fieldTimestamp:    time.Now().UnixMilli(),
	}
	// an unset difficulty stays absent so reads keep deriving it
	if r.DifficultyLevel != "" {
		doc[fieldDifficulty] = r.DifficultyLevel
	}
	if r.UserID != "" {
		doc[fieldUserID] = r.UserID
	}
	return doc
}

// DocumentID reads the document's _id as a string. ObjectIDs from older
// documents are rendered as hex.
func DocumentID(doc map[string]interface{}) string {
	switch v := doc[fieldID].(type) {
	case string:
		return v
	case primitive.ObjectID:
		return v.Hex()
	default:
		return ""
	}
}

func stringField(doc map[string]interface{}, key string) string {
	s, _ := doc[key].(string)
	return s
}

func intField(doc map[string]interface{}, key string, def int) int {
	switch v := doc[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	default:
		return def
	}
}

func floatField(doc map[string]interface{}, key string) float64 {
	switch v := doc[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// stringListField keeps only the string elements of a list field.
func stringListField(doc map[string]interface{}, key string) []string {
	var items []interface{}
	switch v := doc[key].(type) {
	case []string:
		return append([]string{}, v...)
	case primitive.A:
		items = v
	case []interface{}:
		items = v
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func stringsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
