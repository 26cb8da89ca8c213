package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"GetList-App/internal/domain/repository"
)

// TaggingClient はモデルマネージャーの分類APIと通信するクライアント
// アイテムのテキストを店舗カテゴリのタグに分類する
type TaggingClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewTaggingClient は新しいTaggingClientインスタンスを作成
func NewTaggingClient(modelManagerHost string) repository.TaggingProvider {
	return &TaggingClient{
		baseURL: fmt.Sprintf("%s/api/tag_item", modelManagerHost),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// TagItem はアイテムテキストを分類してタグを取得する
func (c *TaggingClient) TagItem(ctx context.Context, itemText string) (string, error) {
	reqURL := fmt.Sprintf("%s?item=%s", c.baseURL, url.QueryEscape(itemText))

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("タグ付けAPIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("タグ付けAPIからエラーステータスが返されました: %s", resp.Status)
	}

	// レスポンスはタグのJSON文字列（例: "grocery_or_supermarket"）
	var tag string
	if err := json.NewDecoder(resp.Body).Decode(&tag); err != nil {
		return "", fmt.Errorf("タグのJSONパースに失敗: %w", err)
	}

	return tag, nil
}
