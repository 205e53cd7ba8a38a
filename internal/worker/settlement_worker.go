package worker

import (
	"context"
	"errors"

	"molle-settlement/internal/queue"
	"molle-settlement/internal/service"
	apperrors "molle-settlement/pkg/app_errors"
	"molle-settlement/pkg/logger"

	"go.uber.org/zap"
)

type SettlementWorker interface {
	// Start 訂閱結算隊列並在背景處理，ctx 結束時停止
	Start(ctx context.Context) error
}

type SettlementWorkerImpl struct {
	service service.SettlementService
	queue   queue.SettlementQueue
	done    chan struct{}
}

func NewSettlementWorker(service service.SettlementService, queue queue.SettlementQueue) *SettlementWorkerImpl {
	return &SettlementWorkerImpl{
		service: service,
		queue:   queue,
		done:    make(chan struct{}),
	}
}

func (w *SettlementWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		defer close(w.done)
		for msg := range msgs {
			w.handle(ctx, msg)
		}
	}()
	return nil
}

// Done 訂閱結束且最後一筆處理完畢後關閉
func (w *SettlementWorkerImpl) Done() <-chan struct{} {
	return w.done
}

func (w *SettlementWorkerImpl) handle(ctx context.Context, msg queue.Delivery) {
	log := logger.WithComponent("worker").With(zap.String("order_id", msg.Data.OrderID()))

	result, err := w.service.ApplySettlement(ctx, *msg.Data)
	switch {
	case err == nil:
		log.Info("settlement processed", zap.Int("booking_id", result.BookingID), zap.Int("tickets", result.TicketCount))
		msg.Ack()
	case isPermanent(err):
		log.Warn("settlement rejected, dropping message", zap.Error(err))
		msg.Ack()
	default:
		log.Error("settlement failed, will retry", zap.Error(err))
		msg.Nack(true)
	}
}

// isPermanent 重試也不會成功的錯誤
func isPermanent(err error) bool {
	return errors.Is(err, apperrors.ErrBookingNotFound) ||
		errors.Is(err, apperrors.ErrPaymentNotSuccessful) ||
		errors.Is(err, apperrors.ErrMissingOrderID) ||
		errors.Is(err, apperrors.ErrInvalidStatus) ||
		errors.Is(err, apperrors.ErrNoTicketsIssued)
}
