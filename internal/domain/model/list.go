package model

import (
	"hash/fnv"
	"strconv"
)

// ListItem 買い物リスト内のアイテム
type ListItem struct {
	Item string `json:"item" firestore:"item"` // アイテムのテキスト
	Tag  string `json:"tag" firestore:"tag"`   // タグ付けサービスが割り当てた店舗カテゴリ
	ID   string `json:"id" firestore:"id"`     // テキストから決定的に導出されるID
}

// ShoppingList ユーザー1人が所有する買い物リスト
type ShoppingList struct {
	ListID string     `json:"list_id" firestore:"list_id"`
	Items  []ListItem `json:"items" firestore:"items"`
}

// ItemIDFromText アイテムテキストから決定的なIDを導出する
// 同じテキストは常に同じIDになる（リスト内で一意、グローバル一意は保証しない）
func ItemIDFromText(text string) string {
	h := fnv.New64a()
	h.Write([]byte(text))
	return strconv.FormatUint(h.Sum64(), 10)
}

// NewListItem テキストとタグから新しいListItemを作成
func NewListItem(text, tag string) ListItem {
	return ListItem{
		Item: text,
		Tag:  tag,
		ID:   ItemIDFromText(text),
	}
}
