package roundhandlers

import (
	"context"
	"errors"

	"github.com/ThreeDotsLabs/watermill/message"

	roundevents "github.com/fore-golf/fore-api/app/modules/round/events"
)

// HandleRoundPersistedForCourse prepends the round to the course's
// played-rounds history.
func (h *RoundHandlers) HandleRoundPersistedForCourse(msg *message.Message) error {
	wrapped := h.handlerWrapper(
		"HandleRoundPersistedForCourse",
		&roundevents.RoundPersistedPayloadV1{},
		func(ctx context.Context, msg *message.Message, payload interface{}) error {
			persisted, ok := payload.(*roundevents.RoundPersistedPayloadV1)
			if !ok {
				return errors.New("unexpected payload type")
			}
			return h.courseService.AttachRound(ctx, persisted.CourseID, persisted.RoundID)
		},
	)
	return wrapped(msg)
}
