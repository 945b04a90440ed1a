package producer_test

import (
	"context"
	"errors"
	"testing"

	"go-comp/internal/messaging/kafka"
	"go-comp/internal/messaging/kafka/mock"
	"go-comp/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	WriteFn func(ctx context.Context, msgs ...kafkago.Message) error
	written []kafkago.Message
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	if f.WriteFn != nil {
		if err := f.WriteFn(ctx, msgs...); err != nil {
			return err
		}
	}
	f.written = append(f.written, msgs...)
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		event := kafka.OutboxEvent{
			ID:            "e1",
			RequestID:     "rid-9",
			AggregateType: "bonus_cycle",
			AggregateID:   "cycle-1",
			EventType:     "bonus_cycle_released",
			Topic:         "hr.bonus.cycle.released.v1",
			Payload:       []byte(`{}`),
		}
		repo.EXPECT().ListPending(ctx, 25).Return([]kafka.OutboxEvent{event}, nil)
		repo.EXPECT().MarkSent(ctx, "e1").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop(), 25)

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		assert.Len(t, writer.written, 1)
		assert.Equal(t, "cycle-1", string(writer.written[0].Key))
		assert.Equal(t, "hr.bonus.cycle.released.v1", writer.written[0].Topic)
		assert.Len(t, writer.written[0].Headers, 3)
	})

	t.Run("failed publish is marked for retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{WriteFn: func(context.Context, ...kafkago.Message) error {
			return errors.New("broker unavailable")
		}}

		event := kafka.OutboxEvent{ID: "e2", Topic: "t", Payload: []byte(`{}`), RetryCount: 2}
		repo.EXPECT().ListPending(ctx, 50).Return([]kafka.OutboxEvent{event}, nil)
		repo.EXPECT().MarkFailed(ctx, event, "broker unavailable").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop(), 50)

		assert.NoError(t, err)
		assert.Equal(t, 0, sent)
	})

	t.Run("list error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockOutboxRepository(ctrl)

		repo.EXPECT().ListPending(ctx, 50).Return(nil, errors.New("db down"))

		_, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop(), 50)

		assert.EqualError(t, err, "db down")
	})
}
