package repository

import "context"

// TaggingProvider アイテムのテキストを店舗カテゴリに分類する外部サービスのプロバイダ
type TaggingProvider interface {
	// TagItem アイテムテキストを分類して店舗カテゴリのタグを返す
	TagItem(ctx context.Context, itemText string) (string, error)
}
