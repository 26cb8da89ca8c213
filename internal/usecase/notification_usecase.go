package usecase

import (
	"context"
	"fmt"
	"log"

	"GetList-App/internal/domain/repository"
	"GetList-App/internal/domain/service"
)

// NotificationUseCase 周辺アイテムの検索結果に応じてプッシュ通知を送るユースケース
type NotificationUseCase interface {
	// NotifyNearbyItems 周辺アイテムを検索し、見つかった場合のみ通知を送る
	NotifyNearbyItems(ctx context.Context, listID string, lat, lng float64, radiusMeters int, token string) error

	// SendPush 任意のメッセージを指定トークンへ送信する
	SendPush(ctx context.Context, token, message string) error
}

// notificationUseCaseImpl NotificationUseCaseの実装
type notificationUseCaseImpl struct {
	nearbyService service.NearbyItemsService
	pushProvider  repository.PushProvider
}

// NewNotificationUseCase 新しいNotificationUseCaseインスタンスを作成
func NewNotificationUseCase(nearbyService service.NearbyItemsService, pushProvider repository.PushProvider) NotificationUseCase {
	return &notificationUseCaseImpl{
		nearbyService: nearbyService,
		pushProvider:  pushProvider,
	}
}

// NotifyNearbyItems 周辺アイテムを検索し、件数に応じた文面で通知を送る
// 見つからなかった場合は通知しない（空の結果は正常ケース）
func (u *notificationUseCaseImpl) NotifyNearbyItems(ctx context.Context, listID string, lat, lng float64, radiusMeters int, token string) error {
	items := u.nearbyService.FindNearbyItems(ctx, listID, lat, lng, radiusMeters)
	if len(items) == 0 {
		log.Printf("周辺にアイテムが見つからなかったため通知しません (list: %s)", listID)
		return nil
	}

	var message string
	switch {
	case len(items) == 1 && len(items[0].Stores) == 1:
		message = fmt.Sprintf("%s was found at %s near you", items[0].Item, items[0].Stores[0].Name)
	case len(items) == 1:
		message = fmt.Sprintf("%s was found at %d stores near you", items[0].Item, len(items[0].Stores))
	default:
		message = fmt.Sprintf("%d items found near you", len(items))
	}

	if err := u.pushProvider.SendPush(ctx, token, message); err != nil {
		return fmt.Errorf("プッシュ通知の送信に失敗: %w", err)
	}

	log.Printf("✅ プッシュ通知を送信しました: %s", message)
	return nil
}

// SendPush 任意のメッセージを送信する
func (u *notificationUseCaseImpl) SendPush(ctx context.Context, token, message string) error {
	if err := u.pushProvider.SendPush(ctx, token, message); err != nil {
		return fmt.Errorf("プッシュ通知の送信に失敗: %w", err)
	}
	return nil
}
