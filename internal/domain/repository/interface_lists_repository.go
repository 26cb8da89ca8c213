package repository

import (
	"context"

	"GetList-App/internal/domain/model"
)

// ListsRepository 買い物リストの永続化を提供するリポジトリ
// 各操作は単一のリストドキュメントのみを対象とする
type ListsRepository interface {
	// GetList リストを取得する。存在しない場合は (nil, nil) を返す（エラー扱いしない）
	GetList(ctx context.Context, listID string) (*model.ShoppingList, error)

	// EnsureExists リストが存在しない場合のみ空のリストを作成する（冪等）
	EnsureExists(ctx context.Context, listID string) error

	// PushItem リストの末尾にアイテムを追加する
	PushItem(ctx context.Context, listID string, item model.ListItem) error

	// RemoveItemsByText テキストが一致するアイテムをすべて削除する（ID非依存）
	RemoveItemsByText(ctx context.Context, listID string, text string) error

	// ReplaceItemByID IDが一致するアイテムを新しいアイテムで置き換える
	ReplaceItemByID(ctx context.Context, listID string, itemID string, newItem model.ListItem) error
}
