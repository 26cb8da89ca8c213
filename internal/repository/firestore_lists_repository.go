package repository

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"

	"GetList-App/internal/domain/model"
	"GetList-App/internal/domain/repository"
)

// listsCollection 買い物リストを保存するFirestoreコレクション名
const listsCollection = "lists"

// FirestoreListsRepository Firestoreを使用した買い物リストリポジトリ
// リスト1件につき1ドキュメント（ドキュメントIDはlist_id）
type FirestoreListsRepository struct {
	client *firestore.Client
}

// NewFirestoreListsRepository 新しいFirestoreListsRepositoryインスタンスを作成
func NewFirestoreListsRepository(client *firestore.Client) repository.ListsRepository {
	return &FirestoreListsRepository{
		client: client,
	}
}

func (r *FirestoreListsRepository) docRef(listID string) *firestore.DocumentRef {
	return r.client.Collection(listsCollection).Doc(listID)
}

// isNotFound Firestoreのnot foundエラーかチェック
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "NotFound") || strings.Contains(msg, "not found")
}

// GetList リストを取得する。存在しない場合は (nil, nil) を返す
func (r *FirestoreListsRepository) GetList(ctx context.Context, listID string) (*model.ShoppingList, error) {
	doc, err := r.docRef(listID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("リストの取得に失敗しました: %w", err)
	}

	var list model.ShoppingList
	if err := doc.DataTo(&list); err != nil {
		return nil, fmt.Errorf("リストデータの変換に失敗しました: %w", err)
	}

	return &list, nil
}

// EnsureExists リストが存在しない場合のみ空のリストを作成する（冪等）
func (r *FirestoreListsRepository) EnsureExists(ctx context.Context, listID string) error {
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ref := r.docRef(listID)
		_, err := tx.Get(ref)
		if err == nil {
			// 既に存在する場合は何もしない
			return nil
		}
		if !isNotFound(err) {
			return err
		}
		return tx.Set(ref, model.ShoppingList{
			ListID: listID,
			Items:  []model.ListItem{},
		})
	})
	if err != nil {
		return fmt.Errorf("リストの作成に失敗しました: %w", err)
	}
	return nil
}

// mutateItems 単一ドキュメントのitems配列をトランザクション内で書き換える
// MongoDBの単一ドキュメント原子更新（$push/$pull/$set）に相当する
func (r *FirestoreListsRepository) mutateItems(ctx context.Context, listID string, mutate func([]model.ListItem) []model.ListItem) error {
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ref := r.docRef(listID)
		doc, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				// リストが存在しない場合は変更対象なし（エラー扱いしない）
				return nil
			}
			return err
		}

		var list model.ShoppingList
		if err := doc.DataTo(&list); err != nil {
			return err
		}

		list.Items = mutate(list.Items)
		if list.Items == nil {
			list.Items = []model.ListItem{}
		}
		return tx.Set(ref, list)
	})
}

// PushItem リストの末尾にアイテムを追加する
func (r *FirestoreListsRepository) PushItem(ctx context.Context, listID string, item model.ListItem) error {
	err := r.mutateItems(ctx, listID, func(items []model.ListItem) []model.ListItem {
		return append(items, item)
	})
	if err != nil {
		return fmt.Errorf("アイテムの追加に失敗しました: %w", err)
	}
	return nil
}

// RemoveItemsByText テキストが一致するアイテムをすべて削除する
func (r *FirestoreListsRepository) RemoveItemsByText(ctx context.Context, listID string, text string) error {
	err := r.mutateItems(ctx, listID, func(items []model.ListItem) []model.ListItem {
		var kept []model.ListItem
		for _, item := range items {
			if item.Item != text {
				kept = append(kept, item)
			}
		}
		return kept
	})
	if err != nil {
		return fmt.Errorf("アイテムの削除に失敗しました: %w", err)
	}
	return nil
}

// ReplaceItemByID IDが一致するアイテムを新しいアイテムで置き換える
func (r *FirestoreListsRepository) ReplaceItemByID(ctx context.Context, listID string, itemID string, newItem model.ListItem) error {
	err := r.mutateItems(ctx, listID, func(items []model.ListItem) []model.ListItem {
		for i, item := range items {
			if item.ID == itemID {
				items[i] = newItem
				break
			}
		}
		return items
	})
	if err != nil {
		return fmt.Errorf("アイテムの更新に失敗しました: %w", err)
	}
	return nil
}
