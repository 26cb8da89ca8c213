package test

import (
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"

	"GetList-App/internal/domain/repository"
	"GetList-App/internal/infrastructure/database"
	repoimpl "GetList-App/internal/repository"
)

// setupTestEnvironment は統一されたテスト環境のセットアップを行う
func setupTestEnvironment() {
	if err := godotenv.Load("../.env"); err != nil {
		// CI環境等では.envが存在しない場合があるため警告のみ
	}
}

// requireEnv 必要な環境変数が揃っていなければテストをスキップする
func requireEnv(t *testing.T, vars ...string) {
	t.Helper()
	setupTestEnvironment()

	for _, envVar := range vars {
		if os.Getenv(envVar) == "" {
			t.Skipf("環境変数 %s が未設定のためスキップ", envVar)
		}
	}
}

// setupTestLocationsRepository は統一された店舗リポジトリのセットアップを行う（リトライ付き）
func setupTestLocationsRepository(t *testing.T) (repository.LocationsRepository, func()) {
	t.Helper()
	requireEnv(t, "SUPABASE_DB_PASSWORD")

	// 接続テストでは短いリトライ間隔を使用
	postgresClient, err := database.NewPostgreSQLClientWithRetry(5, 1*time.Second)
	if err != nil {
		t.Fatalf("PostgreSQLクライアントの初期化に失敗: %v", err)
	}

	cleanup := func() {
		postgresClient.Close()
	}

	return repoimpl.NewPostgresLocationsRepository(postgresClient), cleanup
}
