package repository

import "context"

// PushProvider プッシュ通知の配信を提供するプロバイダ
type PushProvider interface {
	// SendPush 指定デバイストークンへメッセージを1回だけ送信する（自動リトライなし）
	SendPush(ctx context.Context, token, message string) error
}
