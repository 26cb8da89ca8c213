package test

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"GetList-App/internal/domain/model"
	"GetList-App/internal/infrastructure/firestore"
	repoimpl "GetList-App/internal/repository"
)

// TestFirestoreListsRepository 実際のFirestoreに対するリストCRUDの統合テスト
func TestFirestoreListsRepository(t *testing.T) {
	requireEnv(t, "FIRESTORE_PROJECT_ID")

	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	log.Printf("🔧 テスト設定:")
	log.Printf("   FIRESTORE_PROJECT_ID: %s", projectID)
	log.Printf("   GOOGLE_APPLICATION_CREDENTIALS: %s", os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))

	ctx := context.Background()
	client, err := firestore.NewFirestoreClient(ctx, projectID)
	require.NoError(t, err, "Firestoreクライアントの初期化に失敗")
	defer client.Close()

	log.Println("✅ Firestoreクライアント初期化成功")

	repo := repoimpl.NewFirestoreListsRepository(client.GetClient())
	listID := fmt.Sprintf("integration-test-%d", time.Now().UnixNano())

	// 存在しないリストは (nil, nil)
	list, err := repo.GetList(ctx, listID)
	require.NoError(t, err)
	assert.Nil(t, list, "未作成のリストはnilであるべき")

	// 作成は冪等
	require.NoError(t, repo.EnsureExists(ctx, listID))
	require.NoError(t, repo.EnsureExists(ctx, listID))

	list, err = repo.GetList(ctx, listID)
	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Equal(t, listID, list.ListID)
	assert.Empty(t, list.Items)

	// アイテムの追加
	milk := model.NewListItem("milk", model.CanonicalGroceryTag)
	require.NoError(t, repo.PushItem(ctx, listID, milk))

	list, err = repo.GetList(ctx, listID)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "milk", list.Items[0].Item)

	// IDによる置き換え
	bread := model.NewListItem("bread", "bakery")
	require.NoError(t, repo.ReplaceItemByID(ctx, listID, milk.ID, bread))

	list, err = repo.GetList(ctx, listID)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "bread", list.Items[0].Item)
	assert.Equal(t, "bakery", list.Items[0].Tag)

	// テキストによる削除
	require.NoError(t, repo.RemoveItemsByText(ctx, listID, "bread"))

	list, err = repo.GetList(ctx, listID)
	require.NoError(t, err)
	assert.Empty(t, list.Items)

	log.Println("✅ FirestoreListsRepositoryテスト完了")
}
