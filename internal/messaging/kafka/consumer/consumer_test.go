package consumer_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go-comp/internal/messaging/kafka/consumer"
	"go-comp/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRecalculator struct {
	RecalculateFn func(ctx context.Context, companyID, employeeID string) (int, error)
}

func (f *fakeRecalculator) RecalculateForEmployee(ctx context.Context, companyID, employeeID string) (int, error) {
	return f.RecalculateFn(ctx, companyID, employeeID)
}

type fakeReader struct {
	mu        sync.Mutex
	messages  []kafkago.Message
	committed []kafkago.Message
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	f.mu.Lock()
	if len(f.messages) > 0 {
		msg := f.messages[0]
		f.messages = f.messages[1:]
		f.mu.Unlock()
		return msg, nil
	}
	f.mu.Unlock()
	<-ctx.Done()
	return kafkago.Message{}, ctx.Err()
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.committed = append(f.committed, msgs...)
	return nil
}

func (f *fakeReader) committedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.committed)
}

func TestHandleCompensationChanged(t *testing.T) {
	ctx := context.Background()

	t.Run("recalculates with system actor", func(t *testing.T) {
		rec := &fakeRecalculator{RecalculateFn: func(ctx context.Context, companyID, employeeID string) (int, error) {
			assert.Equal(t, "c1", companyID)
			assert.Equal(t, "e1", employeeID)
			assert.Equal(t, contextutil.SystemActor, contextutil.GetActorID(ctx))
			assert.Equal(t, "rid-1", contextutil.GetRequestID(ctx))
			return 2, nil
		}}

		msg := kafkago.Message{Value: []byte(`{"company_id":"c1","employee_id":"e1","request_id":"rid-1"}`)}
		n, err := consumer.HandleCompensationChanged(ctx, msg, rec)

		assert.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("undecodable payload is poison", func(t *testing.T) {
		_, err := consumer.HandleCompensationChanged(ctx, kafkago.Message{Value: []byte(`{`)}, &fakeRecalculator{})
		assert.ErrorIs(t, err, consumer.ErrPoisonMessage)
	})

	t.Run("missing ids are poison", func(t *testing.T) {
		_, err := consumer.HandleCompensationChanged(ctx, kafkago.Message{Value: []byte(`{"company_id":"c1"}`)}, &fakeRecalculator{})
		assert.ErrorIs(t, err, consumer.ErrPoisonMessage)
	})
}

func TestConsumeCompensationChanged(t *testing.T) {
	reader := &fakeReader{messages: []kafkago.Message{
		{Key: []byte("e1"), Value: []byte(`{"company_id":"c1","employee_id":"e1"}`)},
		{Key: []byte("e2"), Value: []byte(`{"company_id":"c1","employee_id":"e2"}`)},
		{Key: []byte("bad"), Value: []byte(`not json`)},
	}}
	rec := &fakeRecalculator{RecalculateFn: func(_ context.Context, _, employeeID string) (int, error) {
		if employeeID == "e2" {
			return 0, errors.New("db down")
		}
		return 1, nil
	}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		consumer.ConsumeCompensationChanged(ctx, reader, rec, zap.NewNop())
		close(done)
	}()

	assert.Eventually(t, func() bool { return reader.committedCount() == 2 }, time.Second, 10*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, "e1", string(reader.committed[0].Key))
	assert.Equal(t, "bad", string(reader.committed[1].Key))
}
