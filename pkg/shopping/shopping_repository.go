package shopping

import (
	"context"
	"errors"
	"recipe-app/domain"
	"recipe-app/entities"

	"gorm.io/gorm"
)

type (
	ShoppingRepository interface {
		CreateItems(ctx context.Context, items []*entities.ShoppingListItem) error
		GetItems(ctx context.Context, userID string) ([]*entities.ShoppingListItem, error)
		GetItemByID(ctx context.Context, userID, itemID string) (*entities.ShoppingListItem, error)
		UpdateChecked(ctx context.Context, userID, itemID string, checked bool) error
		DeleteItem(ctx context.Context, userID, itemID string) error
	}

	shoppingRepository struct {
		db *gorm.DB
	}
)

func NewShoppingRepository(db *gorm.DB) ShoppingRepository {
	return &shoppingRepository{db: db}
}

// CreateItems inserts items in one transaction.
func (r *shoppingRepository) CreateItems(ctx context.Context, items []*entities.ShoppingListItem) error {
	if len(items) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&items).Error
	})
	if err != nil {
		return domain.Remote(err)
	}
	return nil
}

func (r *shoppingRepository) GetItems(ctx context.Context, userID string) ([]*entities.ShoppingListItem, error) {
	var items []*entities.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("checked asc, created_at asc").
		Find(&items).Error; err != nil {
		return nil, domain.Remote(err)
	}
	return items, nil
}

func (r *shoppingRepository) GetItemByID(ctx context.Context, userID, itemID string) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShoppingItemNotFound
		}
		return nil, domain.Remote(err)
	}
	return &item, nil
}

func (r *shoppingRepository) UpdateChecked(ctx context.Context, userID, itemID string, checked bool) error {
	res := r.db.WithContext(ctx).
		Model(&entities.ShoppingListItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("checked", checked)
	if res.Error != nil {
		return domain.Remote(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrShoppingItemNotFound
	}
	return nil
}

func (r *shoppingRepository) DeleteItem(ctx context.Context, userID, itemID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&entities.ShoppingListItem{})
	if res.Error != nil {
		return domain.Remote(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrShoppingItemNotFound
	}
	return nil
}
