package notify

import (
	"context"
	"fmt"

	"molle-settlement/config"
	"molle-settlement/internal/model"
	"molle-settlement/pkg/logger"

	pubnub "github.com/pubnub/go/v7"
	"go.uber.org/zap"
)

type Notifier interface {
	// TicketsIssued 通知買家票券已開立
	TicketsIssued(ctx context.Context, userID int, result *model.SettlementResult) error
}

type PubNubNotifier struct {
	pn *pubnub.PubNub
}

// NewNotifier 未設定 PubNub key 時回傳不做事的 notifier
func NewNotifier(cfg config.NotifyConfig) Notifier {
	if cfg.PubNubPublishKey == "" {
		logger.WithComponent("notify").Info("pubnub not configured, notifications disabled")
		return NoopNotifier{}
	}

	pnConfig := pubnub.NewConfigWithUserId(pubnub.UserId(cfg.PubNubUserID))
	pnConfig.PublishKey = cfg.PubNubPublishKey
	pnConfig.SubscribeKey = cfg.PubNubSubscribeKey

	return &PubNubNotifier{pn: pubnub.NewPubNub(pnConfig)}
}

func (n *PubNubNotifier) TicketsIssued(ctx context.Context, userID int, result *model.SettlementResult) error {
	channel := fmt.Sprintf("user-%d", userID)
	_, _, err := n.pn.Publish().
		Channel(channel).
		Message(map[string]any{
			"type":         "tickets_issued",
			"booking_id":   result.BookingID,
			"ticket_count": result.TicketCount,
		}).
		Execute()
	if err != nil {
		logger.WithComponent("notify").Warn("publish failed", zap.String("channel", channel), zap.Error(err))
		return err
	}
	return nil
}

type NoopNotifier struct{}

func (NoopNotifier) TicketsIssued(context.Context, int, *model.SettlementResult) error {
	return nil
}
