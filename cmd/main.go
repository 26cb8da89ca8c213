package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"GetList-App/internal/domain/repository"
	"GetList-App/internal/domain/service"
	"GetList-App/internal/handler"
	"GetList-App/internal/infrastructure/ai"
	"GetList-App/internal/infrastructure/database"
	"GetList-App/internal/infrastructure/firestore"
	"GetList-App/internal/infrastructure/maps"
	"GetList-App/internal/infrastructure/push"
	repoimpl "GetList-App/internal/repository"
	"GetList-App/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found, using system environment variables")
	}

	placesAPIKey := os.Getenv("PLACES_API_KEY")
	modelManagerHost := os.Getenv("MODEL_MANAGER_HOST")
	firestoreProjectID := os.Getenv("FIRESTORE_PROJECT_ID")

	if placesAPIKey == "" || modelManagerHost == "" || firestoreProjectID == "" {
		fmt.Println("⚠️  環境変数が設定されていません:")
		fmt.Println("必要な環境変数: PLACES_API_KEY, MODEL_MANAGER_HOST, FIRESTORE_PROJECT_ID")
		fmt.Println("店舗データ用に DATABASE_URL または SUPABASE_URL + SUPABASE_DB_PASSWORD / SUPABASE_ANON_KEY")
		fmt.Println("\n.envファイルを作成するか、環境変数を設定してください")
		log.Fatal("Environment variables not set")
	}

	ctx := context.Background()

	// 店舗位置情報ストアの初期化
	// PostgreSQLの接続情報があればPostGIS実装、なければSupabase (PostgREST) 実装を使用
	locationsRepo, cleanup, err := setupLocationsRepository(ctx)
	if err != nil {
		log.Fatalf("店舗位置情報ストアの初期化失敗: %v", err)
	}
	defer cleanup()

	// リストストア（Firestore）の初期化
	fmt.Println("Initializing Firestore client...")
	firestoreClient, err := firestore.NewFirestoreClient(ctx, firestoreProjectID)
	if err != nil {
		log.Fatalf("Firestoreクライアント初期化失敗: %v", err)
	}
	defer firestoreClient.Close()

	// 外部サービスプロバイダの初期化
	placesProvider := maps.NewGooglePlacesProvider(placesAPIKey)
	taggingProvider := ai.NewTaggingClient(modelManagerHost)
	pushProvider := push.NewExpoPushProvider()

	// Dependency injection
	listsRepo := repoimpl.NewFirestoreListsRepository(firestoreClient.GetClient())
	cacheService := service.NewLocationCacheService(locationsRepo, placesProvider)
	nearbyService := service.NewNearbyItemsService(cacheService, listsRepo)

	listUseCase := usecase.NewShoppingListUseCase(listsRepo, taggingProvider)
	nearbyUseCase := usecase.NewNearbyItemsUseCase(nearbyService, locationsRepo, placesProvider)
	notificationUseCase := usecase.NewNotificationUseCase(nearbyService, pushProvider)

	listHandler := handler.NewListHandler(listUseCase)
	nearbyHandler := handler.NewNearbyHandler(nearbyUseCase)
	notificationHandler := handler.NewNotificationHandler(notificationUseCase)

	r := handler.SetupRouter(listHandler, nearbyHandler, notificationHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Printf("GetList-App server starting on :%s...\n", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("サーバーの起動に失敗: %v", err)
	}
}

// setupLocationsRepository 環境変数に応じて店舗位置情報リポジトリを初期化する
func setupLocationsRepository(ctx context.Context) (repository.LocationsRepository, func(), error) {
	if os.Getenv("DATABASE_URL") != "" || os.Getenv("SUPABASE_DB_PASSWORD") != "" {
		fmt.Println("Initializing PostgreSQL (PostGIS) locations store...")
		postgresClient, err := database.NewPostgreSQLClient()
		if err != nil {
			return nil, nil, err
		}

		repo := repoimpl.NewPostgresLocationsRepository(postgresClient)
		if err := repo.EnsureGeoIndex(ctx); err != nil {
			postgresClient.Close()
			return nil, nil, err
		}

		fmt.Println("✅ PostgreSQL connection successful!")
		return repo, func() { postgresClient.Close() }, nil
	}

	fmt.Println("Initializing Supabase locations store...")
	supabaseClient, err := database.NewSupabaseClient()
	if err != nil {
		return nil, nil, err
	}
	if err := supabaseClient.HealthCheck(); err != nil {
		return nil, nil, err
	}

	fmt.Println("✅ Supabase connection successful!")
	return repoimpl.NewSupabaseLocationsRepository(supabaseClient), func() {}, nil
}
