package scoring

import (
	"context"
	"fmt"

	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/event"
	"github.com/dynatrace-oss/Perform-Hackathon-2026/internal/logger"
)

// RegisterEventHandlers subscribes the recorder to settled rounds so game
// services never wait on persistence. Returned errors flow back into the
// resilient publisher's retry loop.
func RegisterEventHandlers(bus event.Bus, svc Service) {
	bus.Subscribe(event.RoundSettled, func(ctx context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[event.RoundSettledPayloadV1](evt.Payload)
		if err != nil {
			return fmt.Errorf("decoding %s payload: %w", evt.Type, err)
		}

		if _, err := svc.Record(ctx, payload.Result); err != nil {
			logger.FromContext(ctx).Error(LogMsgRecordHandlerFailed,
				"player_id", payload.Result.PlayerID,
				"game", payload.Result.Game,
				"error", err)
			return err
		}
		return nil
	})
}
