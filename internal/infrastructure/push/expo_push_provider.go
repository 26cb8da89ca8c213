package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"GetList-App/internal/domain/repository"
)

// ExpoPushProvider はExpo Push APIを使用したプッシュ通知配信の実装
type ExpoPushProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewExpoPushProvider は新しいプロバイダを生成する
func NewExpoPushProvider() repository.PushProvider {
	return &ExpoPushProvider{
		baseURL:    "https://exp.host/--/api/v2/push/send",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewExpoPushProviderWithBaseURL テスト用にベースURLを差し替えられるコンストラクタ
func NewExpoPushProviderWithBaseURL(baseURL string) repository.PushProvider {
	return &ExpoPushProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// expoPushMessage Expo Push APIへのリクエスト構造体
type expoPushMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// expoPushResponse Expo Push APIからのレスポンス構造体
type expoPushResponse struct {
	Data struct {
		Status  string `json:"status"`
		Message string `json:"message,omitempty"`
	} `json:"data"`
}

// SendPush は指定デバイストークンへメッセージを1回だけ送信する
func (p *ExpoPushProvider) SendPush(ctx context.Context, token, message string) error {
	reqBody, err := json.Marshal(expoPushMessage{
		To:   token,
		Body: message,
	})
	if err != nil {
		return fmt.Errorf("リクエストのシリアライズに失敗: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL, bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("リクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("プッシュ通知の送信に失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Push APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp expoPushResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("レスポンスのパースに失敗: %w", err)
	}

	if apiResp.Data.Status == "error" {
		return fmt.Errorf("プッシュ通知のチケットがエラーを返しました: %s", apiResp.Data.Message)
	}

	return nil
}
