package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"GetList-App/internal/domain/model"
	"GetList-App/internal/domain/repository"
	"GetList-App/internal/infrastructure/database"
)

// PostgresLocationsRepository PostGISを使用した店舗位置情報リポジトリ
type PostgresLocationsRepository struct {
	client *database.PostgreSQLClient
}

// NewPostgresLocationsRepository 新しいPostgresLocationsRepositoryインスタンスを作成
func NewPostgresLocationsRepository(client *database.PostgreSQLClient) repository.LocationsRepository {
	return &PostgresLocationsRepository{
		client: client,
	}
}

// locationResult PostGIS関数の結果を受け取るための構造体
type locationResult struct {
	ID             string
	Types          string
	Name           string
	Vicinity       sql.NullString
	PlaceID        sql.NullString
	Lat            float64
	Lng            float64
	DistanceMeters float64
}

// toStoreLocation locationResultをmodel.StoreLocationに変換
func (lr *locationResult) toStoreLocation() (*model.StoreLocation, error) {
	var types []string
	if err := json.Unmarshal([]byte(lr.Types), &types); err != nil {
		return nil, fmt.Errorf("types JSONBパースエラー: %w", err)
	}

	loc := &model.StoreLocation{
		ID:       lr.ID,
		Types:    types,
		Name:     lr.Name,
		Location: model.NewPointGeometry(lr.Lat, lr.Lng),
	}
	if lr.Vicinity.Valid {
		loc.Vicinity = lr.Vicinity.String
	}
	if lr.PlaceID.Valid {
		loc.PlaceID = lr.PlaceID.String
	}
	return loc, nil
}

// FindNearby 指定座標から半径radiusMeters以内の店舗を距離順で取得する
func (r *PostgresLocationsRepository) FindNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]model.StoreLocation, error) {
	query := `
		SELECT
			l.id, l.types, l.name, l.vicinity, l.place_id,
			ST_Y(l.location::geometry) AS lat,
			ST_X(l.location::geometry) AS lng,
			ST_Distance(
				ST_GeogFromText('POINT(' || $2 || ' ' || $1 || ')'),
				l.location
			) AS distance_meters
		FROM locations l
		WHERE ST_DWithin(
			ST_GeogFromText('POINT(' || $2 || ' ' || $1 || ')'),
			l.location,
			$3
		)
		ORDER BY distance_meters
	`

	rows, err := r.client.DB.QueryContext(ctx, query, lat, lng, radiusMeters)
	if err != nil {
		return nil, fmt.Errorf("周辺店舗検索失敗: %w", err)
	}
	defer rows.Close()

	var locations []model.StoreLocation
	for rows.Next() {
		var result locationResult
		err := rows.Scan(&result.ID, &result.Types, &result.Name, &result.Vicinity,
			&result.PlaceID, &result.Lat, &result.Lng, &result.DistanceMeters)
		if err != nil {
			return nil, fmt.Errorf("店舗データスキャンエラー: %w", err)
		}

		loc, err := result.toStoreLocation()
		if err != nil {
			return nil, err
		}
		locations = append(locations, *loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("店舗データの読み取りエラー: %w", err)
	}

	return locations, nil
}

// InsertMany 複数の店舗位置情報を保存する
func (r *PostgresLocationsRepository) InsertMany(ctx context.Context, locations []model.StoreLocation) (int, error) {
	if len(locations) == 0 {
		return 0, nil
	}

	tx, err := r.client.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("トランザクションの開始に失敗: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO locations (id, types, name, vicinity, place_id, location)
		VALUES ($1, $2, $3, $4, $5, ST_SetSRID(ST_MakePoint($7, $6), 4326)::geography)
	`

	count := 0
	for _, loc := range locations {
		typesJSON, err := json.Marshal(loc.Types)
		if err != nil {
			return 0, fmt.Errorf("typesのJSONシリアライズに失敗: %w", err)
		}

		id := loc.ID
		if id == "" {
			id = uuid.New().String()
		}

		point := loc.ToLocation()
		if _, err := tx.ExecContext(ctx, query, id, string(typesJSON), loc.Name,
			loc.Vicinity, loc.PlaceID, point.Latitude, point.Longitude); err != nil {
			return 0, fmt.Errorf("店舗データの保存に失敗: %w", err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("トランザクションのコミットに失敗: %w", err)
	}

	return count, nil
}

// EnsureGeoIndex locationsテーブルと地理空間インデックスの存在を保証する
func (r *PostgresLocationsRepository) EnsureGeoIndex(ctx context.Context) error {
	createTable := `
		CREATE TABLE IF NOT EXISTS locations (
			id TEXT PRIMARY KEY,
			types JSONB NOT NULL,
			name TEXT NOT NULL,
			vicinity TEXT,
			place_id TEXT,
			location GEOGRAPHY(POINT, 4326) NOT NULL
		)
	`
	if _, err := r.client.DB.ExecContext(ctx, createTable); err != nil {
		return fmt.Errorf("locationsテーブルの作成に失敗: %w", err)
	}

	createIndex := `
		CREATE INDEX IF NOT EXISTS locations_location_gist
		ON locations USING GIST (location)
	`
	if _, err := r.client.DB.ExecContext(ctx, createIndex); err != nil {
		return fmt.Errorf("地理空間インデックスの作成に失敗: %w", err)
	}

	return nil
}
