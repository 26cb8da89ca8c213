package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"GetList-App/internal/domain/model"
	"GetList-App/internal/domain/repository"
)

// ShoppingListUseCase 買い物リストの取得と編集に関するユースケース
type ShoppingListUseCase interface {
	// EnsureList リストが存在しない場合のみ作成する（冪等）
	EnsureList(ctx context.Context, listID string) error

	// GetList リストを取得する（存在しない場合は空の配列を返す）
	GetList(ctx context.Context, listID string) ([]model.ShoppingList, error)

	// AddItem アイテムをタグ付けしてリストに追加する
	AddItem(ctx context.Context, listID, itemText string) error

	// UpdateItem IDが一致するアイテムを新しいテキストで再タグ付けして置き換える
	UpdateItem(ctx context.Context, listID, itemID, newText string) error

	// RemoveItem テキストが一致するアイテムをすべて削除する
	RemoveItem(ctx context.Context, listID, itemText string) error
}

// shoppingListUseCaseImpl ShoppingListUseCaseの実装
type shoppingListUseCaseImpl struct {
	listsRepo       repository.ListsRepository
	taggingProvider repository.TaggingProvider
}

// NewShoppingListUseCase 新しいShoppingListUseCaseインスタンスを作成
func NewShoppingListUseCase(listsRepo repository.ListsRepository, taggingProvider repository.TaggingProvider) ShoppingListUseCase {
	return &shoppingListUseCaseImpl{
		listsRepo:       listsRepo,
		taggingProvider: taggingProvider,
	}
}

// EnsureList リストが存在しない場合のみ作成する
func (u *shoppingListUseCaseImpl) EnsureList(ctx context.Context, listID string) error {
	if err := u.listsRepo.EnsureExists(ctx, listID); err != nil {
		return fmt.Errorf("リストの作成に失敗: %w", err)
	}
	return nil
}

// GetList リストを取得する
// クライアント互換のため、結果は0件または1件の配列で返す
func (u *shoppingListUseCaseImpl) GetList(ctx context.Context, listID string) ([]model.ShoppingList, error) {
	list, err := u.listsRepo.GetList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("リストの取得に失敗: %w", err)
	}
	if list == nil {
		return []model.ShoppingList{}, nil
	}
	return []model.ShoppingList{*list}, nil
}

// normalizeTag grocery系のタグを正規の grocery_or_supermarket に正規化する
func normalizeTag(tag string) string {
	if strings.Contains(tag, "grocery") || strings.Contains(tag, "supermarket") {
		return model.CanonicalGroceryTag
	}
	return tag
}

// AddItem アイテムをタグ付けしてリストに追加する
func (u *shoppingListUseCaseImpl) AddItem(ctx context.Context, listID, itemText string) error {
	tag, err := u.taggingProvider.TagItem(ctx, itemText)
	if err != nil {
		return fmt.Errorf("アイテムのタグ付けに失敗: %w", err)
	}

	tag = normalizeTag(tag)
	item := model.NewListItem(itemText, tag)

	log.Printf("アイテムを追加: %s (tag: %s, id: %s)", item.Item, item.Tag, item.ID)

	if err := u.listsRepo.PushItem(ctx, listID, item); err != nil {
		return fmt.Errorf("アイテムの追加に失敗: %w", err)
	}
	return nil
}

// UpdateItem IDが一致するアイテムを再タグ付けして置き換える
// 追加時と異なり、タグの正規化は行わない
func (u *shoppingListUseCaseImpl) UpdateItem(ctx context.Context, listID, itemID, newText string) error {
	tag, err := u.taggingProvider.TagItem(ctx, newText)
	if err != nil {
		return fmt.Errorf("アイテムのタグ付けに失敗: %w", err)
	}

	newItem := model.NewListItem(newText, tag)

	if err := u.listsRepo.ReplaceItemByID(ctx, listID, itemID, newItem); err != nil {
		return fmt.Errorf("アイテムの更新に失敗: %w", err)
	}
	return nil
}

// RemoveItem テキストが一致するアイテムをすべて削除する
func (u *shoppingListUseCaseImpl) RemoveItem(ctx context.Context, listID, itemText string) error {
	if err := u.listsRepo.RemoveItemsByText(ctx, listID, itemText); err != nil {
		return fmt.Errorf("アイテムの削除に失敗: %w", err)
	}
	return nil
}
