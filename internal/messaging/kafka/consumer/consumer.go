package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-comp/internal/events"
	"go-comp/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Recalculator refreshes bonus amounts for one employee.
type Recalculator interface {
	RecalculateForEmployee(ctx context.Context, companyID, employeeID string) (int, error)
}

// ErrPoisonMessage marks a message that can never be processed. It is
// committed so the partition keeps moving.
var ErrPoisonMessage = errors.New("undecodable compensation event")

func ConsumeCompensationChanged(
	ctx context.Context,
	reader MessageReader,
	recalculator Recalculator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.compensation_changed")
	log.Info("compensation changed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("compensation changed consumer stopped")
				return
			}
			log.Error("fetch compensation changed message failed", zap.Error(err))
			continue
		}

		updated, err := HandleCompensationChanged(ctx, msg, recalculator)
		if err != nil && !errors.Is(err, ErrPoisonMessage) {
			// left uncommitted so the group redelivers it
			log.Error("recalculate bonus assignments failed",
				zap.ByteString("key", msg.Key),
				zap.Error(err),
			)
			continue
		}
		if err != nil {
			log.Error("dropping compensation changed message", zap.ByteString("key", msg.Key), zap.Error(err))
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit compensation changed message failed", zap.Error(err))
			continue
		}

		if updated > 0 {
			log.Info("bonus assignments recalculated",
				zap.ByteString("employee_id", msg.Key),
				zap.Int("updated", updated),
			)
		}
	}
}

// HandleCompensationChanged decodes one message and recalculates the
// employee's open bonus assignments.
func HandleCompensationChanged(ctx context.Context, msg kafkago.Message, recalculator Recalculator) (int, error) {
	var event events.EmployeeCompensationChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPoisonMessage, err)
	}
	if event.CompanyID == "" || event.EmployeeID == "" {
		return 0, fmt.Errorf("%w: missing company or employee id", ErrPoisonMessage)
	}

	if event.RequestID != "" {
		ctx = contextutil.WithRequestID(ctx, event.RequestID)
	}
	ctx = contextutil.WithCompanyID(ctx, event.CompanyID)
	ctx = contextutil.WithActorID(ctx, contextutil.SystemActor)

	return recalculator.RecalculateForEmployee(ctx, event.CompanyID, event.EmployeeID)
}
