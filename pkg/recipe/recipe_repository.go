package recipe

import (
	"context"
	"errors"
	"recipe-app/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const CollectionName = "recipes"

type (
	RecipeRepository interface {
		GetRecipeByID(ctx context.Context, id string) (domain.Recipe, error)
		GetRecipes(ctx context.Context) ([]domain.Recipe, error)
		GetRecipesByField(ctx context.Context, field, value string) ([]domain.Recipe, error)
		SaveRecipe(ctx context.Context, recipe domain.Recipe) error
		UpdateImageURL(ctx context.Context, id, imageURL string) error
		CountRecipes(ctx context.Context) (int64, error)
	}

	recipeRepository struct {
		collection *mongo.Collection
	}
)

func NewRecipeRepository(db *mongo.Database) RecipeRepository {
	return &recipeRepository{collection: db.Collection(CollectionName)}
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (domain.Recipe, error) {
	var doc bson.M
	err := r.collection.FindOne(ctx, idFilter(id)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Recipe{}, domain.ErrRecipeNotFound
		}
		return domain.Recipe{}, domain.Remote(err)
	}
	return RecipeFromDocument(DocumentID(doc), doc), nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return r.find(ctx, bson.M{})
}

// GetRecipesByField returns recipes whose field equals value exactly.
// field is one of the stored names, e.g. "category" or "cuisine".
func (r *recipeRepository) GetRecipesByField(ctx context.Context, field, value string) ([]domain.Recipe, error) {
	return r.find(ctx, bson.M{field: value})
}

func (r *recipeRepository) find(ctx context.Context, filter bson.M) ([]domain.Recipe, error) {
	opts := options.Find().SetSort(bson.D{{Key: fieldTimestamp, Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, domain.Remote(err)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domain.Remote(err)
	}

	recipes := make([]domain.Recipe, 0, len(docs))
	for _, doc := range docs {
		recipes = append(recipes, RecipeFromDocument(DocumentID(doc), doc))
	}
	return recipes, nil
}

// SaveRecipe replaces the document with the recipe's id, inserting it when
// absent.
func (r *recipeRepository) SaveRecipe(ctx context.Context, recipe domain.Recipe) error {
	doc := RecipeToDocument(recipe)
	doc[fieldID] = recipe.ID

	_, err := r.collection.ReplaceOne(ctx, bson.M{fieldID: recipe.ID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return domain.Remote(err)
	}
	return nil
}

func (r *recipeRepository) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	res, err := r.collection.UpdateOne(ctx, idFilter(id), bson.M{"$set": bson.M{fieldImageURL: imageURL}})
	if err != nil {
		return domain.Remote(err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// idFilter matches id as stored, or as an ObjectID for documents written
// before ids were strings.
func idFilter(id string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{fieldID: bson.M{"$in": bson.A{id, oid}}}
	}
	return bson.M{fieldID: id}
}

func (r *recipeRepository) CountRecipes(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, domain.Remote(err)
	}
	return count, nil
}
