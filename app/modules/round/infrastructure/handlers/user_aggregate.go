package roundhandlers

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/watermill/message"

	roundevents "github.com/fore-golf/fore-api/app/modules/round/events"
)

// HandleRoundPersistedForUser prepends the round to the submitting
// user's history and recomputes their handicap index when enough rounds
// exist. Redeliveries are absorbed by the repository's guarded update.
func (h *RoundHandlers) HandleRoundPersistedForUser(msg *message.Message) error {
	wrapped := h.handlerWrapper(
		"HandleRoundPersistedForUser",
		&roundevents.RoundPersistedPayloadV1{},
		func(ctx context.Context, msg *message.Message, payload interface{}) error {
			persisted, ok := payload.(*roundevents.RoundPersistedPayloadV1)
			if !ok {
				return errors.New("unexpected payload type")
			}
			return h.userService.UpdateAfterRound(ctx, persisted.UserID, persisted.RoundID, persisted.DatePosted)
		},
	)
	return wrapped(msg)
}
