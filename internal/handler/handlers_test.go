package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainmodel "GetList-App/internal/domain/model"
)

// fakeListUseCase 操作を記録するShoppingListUseCaseのフェイク
type fakeListUseCase struct {
	ensured   []string
	added     [][2]string
	removed   [][2]string
	updated   [][3]string
	returning []domainmodel.ShoppingList
}

func (f *fakeListUseCase) EnsureList(ctx context.Context, listID string) error {
	f.ensured = append(f.ensured, listID)
	return nil
}

func (f *fakeListUseCase) GetList(ctx context.Context, listID string) ([]domainmodel.ShoppingList, error) {
	return f.returning, nil
}

func (f *fakeListUseCase) AddItem(ctx context.Context, listID, itemText string) error {
	f.added = append(f.added, [2]string{listID, itemText})
	return nil
}

func (f *fakeListUseCase) UpdateItem(ctx context.Context, listID, itemID, newText string) error {
	f.updated = append(f.updated, [3]string{listID, itemID, newText})
	return nil
}

func (f *fakeListUseCase) RemoveItem(ctx context.Context, listID, itemText string) error {
	f.removed = append(f.removed, [2]string{listID, itemText})
	return nil
}

// fakeNearbyUseCase NearbyItemsUseCaseのフェイク
type fakeNearbyUseCase struct {
	items      []domainmodel.NearbyItem
	lastListID string
	lastRadius int
	loaded     int
}

func (f *fakeNearbyUseCase) ItemsNearby(ctx context.Context, listID string, lat, lng float64, radiusMeters int) []domainmodel.NearbyItem {
	f.lastListID = listID
	f.lastRadius = radiusMeters
	return f.items
}

func (f *fakeNearbyUseCase) LoadLocations(ctx context.Context, lat, lng float64) (int, error) {
	f.loaded++
	return 3, nil
}

// fakeNotificationUseCase NotificationUseCaseのフェイク
type fakeNotificationUseCase struct {
	notified   int
	lastRadius int
	pushed     []string
}

func (f *fakeNotificationUseCase) NotifyNearbyItems(ctx context.Context, listID string, lat, lng float64, radiusMeters int, token string) error {
	f.notified++
	f.lastRadius = radiusMeters
	return nil
}

func (f *fakeNotificationUseCase) SendPush(ctx context.Context, token, message string) error {
	f.pushed = append(f.pushed, message)
	return nil
}

func setupTestRouter(listUC *fakeListUseCase, nearbyUC *fakeNearbyUseCase, notifyUC *fakeNotificationUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter(
		NewListHandler(listUC),
		NewNearbyHandler(nearbyUC),
		NewNotificationHandler(notifyUC),
	)
}

func TestListHandler(t *testing.T) {
	t.Run("create_listはlist_idが必須", func(t *testing.T) {
		router := setupTestRouter(&fakeListUseCase{}, &fakeNearbyUseCase{}, &fakeNotificationUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/create_list", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create_listはOKを返す", func(t *testing.T) {
		listUC := &fakeListUseCase{}
		router := setupTestRouter(listUC, &fakeNearbyUseCase{}, &fakeNotificationUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/create_list?list_id=L1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `"OK"`, w.Body.String())
		assert.Equal(t, []string{"L1"}, listUC.ensured)
	})

	t.Run("add_list_itemはアイテムを追加する", func(t *testing.T) {
		listUC := &fakeListUseCase{}
		router := setupTestRouter(listUC, &fakeNearbyUseCase{}, &fakeNotificationUseCase{})

		body := `{"item": "milk", "list_id": "L1"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/add_list_item", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, listUC.added, 1)
		assert.Equal(t, [2]string{"L1", "milk"}, listUC.added[0])
	})

	t.Run("update_list_itemはidが必須", func(t *testing.T) {
		router := setupTestRouter(&fakeListUseCase{}, &fakeNearbyUseCase{}, &fakeNotificationUseCase{})

		body := `{"item": "milk", "list_id": "L1"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/update_list_item", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("remove_list_itemはテキストで削除する", func(t *testing.T) {
		listUC := &fakeListUseCase{}
		router := setupTestRouter(listUC, &fakeNearbyUseCase{}, &fakeNotificationUseCase{})

		body := `{"item": "apple", "list_id": "L1"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/remove_list_item", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, listUC.removed, 1)
		assert.Equal(t, [2]string{"L1", "apple"}, listUC.removed[0])
	})
}

func TestNearbyHandler_ItemsNearby(t *testing.T) {
	t.Run("検索結果をJSONで返す", func(t *testing.T) {
		nearbyUC := &fakeNearbyUseCase{
			items: []domainmodel.NearbyItem{
				{
					Item: "milk",
					ID:   "12345",
					Stores: []domainmodel.StoreEntry{
						{
							Name: "ACME",
							Location: domainmodel.StoreLocationDetail{
								Address: "1 Main St",
								PlaceID: "acme-1",
								Coords:  []float64{43.81, -79.46},
							},
						},
					},
				},
			},
		}
		router := setupTestRouter(&fakeListUseCase{}, nearbyUC, &fakeNotificationUseCase{})

		body := `{"location": {"latitude": "43.8101", "longitude": "-79.4599"}, "list_id": "L1", "radius": 500}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/items_nearby", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "L1", nearbyUC.lastListID)
		assert.Equal(t, 500, nearbyUC.lastRadius)

		var got []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "milk", got[0]["item"])
		assert.Equal(t, "12345", got[0]["id"])
	})

	t.Run("radius未指定時はデフォルト半径を使う", func(t *testing.T) {
		nearbyUC := &fakeNearbyUseCase{}
		router := setupTestRouter(&fakeListUseCase{}, nearbyUC, &fakeNotificationUseCase{})

		body := `{"location": {"latitude": "43.8101", "longitude": "-79.4599"}, "list_id": "L1"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/items_nearby", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domainmodel.DefaultSearchRadiusMeters, nearbyUC.lastRadius)
	})

	t.Run("緯度経度が不正な場合は400", func(t *testing.T) {
		router := setupTestRouter(&fakeListUseCase{}, &fakeNearbyUseCase{}, &fakeNotificationUseCase{})

		body := `{"location": {"latitude": "north", "longitude": "-79.4599"}, "list_id": "L1"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/items_nearby", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestNotificationHandler_GeoLocation(t *testing.T) {
	t.Run("通知ユースケースを呼び出す", func(t *testing.T) {
		notifyUC := &fakeNotificationUseCase{}
		router := setupTestRouter(&fakeListUseCase{}, &fakeNearbyUseCase{}, notifyUC)

		body := `{"location": {"latitude": "43.8101", "longitude": "-79.4599"}, "list_id": "L1", "token": "tok"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/geolocation", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, notifyUC.notified)
		// radius未指定時は通知用デフォルト半径
		assert.Equal(t, domainmodel.DefaultNotifyRadiusMeters, notifyUC.lastRadius)
	})

	t.Run("send_pushはtokenが必須", func(t *testing.T) {
		router := setupTestRouter(&fakeListUseCase{}, &fakeNearbyUseCase{}, &fakeNotificationUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/send_push", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("send_pushはhelloを送る", func(t *testing.T) {
		notifyUC := &fakeNotificationUseCase{}
		router := setupTestRouter(&fakeListUseCase{}, &fakeNearbyUseCase{}, notifyUC)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/send_push?token=tok", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"hello"}, notifyUC.pushed)
	})
}
