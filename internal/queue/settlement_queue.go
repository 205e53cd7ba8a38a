package queue

import (
	"context"

	"molle-settlement/internal/model"
)

type Delivery struct {
	Data *model.SettlementCommand
	Ack  func()
	Nack func(requeue bool)
}

type SettlementQueue interface {
	// 發送結算指令到隊列
	Publish(ctx context.Context, cmd *model.SettlementCommand) error
	// 訂閱結算隊列
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

// MemorySettlementQueueImpl 單一程序內使用的 channel 版隊列
type MemorySettlementQueueImpl struct {
	ch chan *model.SettlementCommand
}

func NewMemorySettlementQueue(bufferSize int) SettlementQueue {
	return &MemorySettlementQueueImpl{
		ch: make(chan *model.SettlementCommand, bufferSize),
	}
}

func (q *MemorySettlementQueueImpl) Publish(ctx context.Context, cmd *model.SettlementCommand) error {
	select {
	case q.ch <- cmd:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemorySettlementQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case cmd, ok := <-q.ch:
				if !ok {
					return
				}

				d := Delivery{
					Data: cmd,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if !requeue {
							return
						}
						// 隊列已滿時丟棄，避免阻塞 worker
						select {
						case q.ch <- cmd:
						default:
						}
					},
				}

				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
