package roundhandlers

import (
	"github.com/ThreeDotsLabs/watermill/message"
)

// Handlers consumes round lifecycle events and applies the eventually
// consistent aggregate updates. Both handlers are idempotent so the
// router's retry middleware can redeliver safely.
type Handlers interface {
	HandleRoundPersistedForUser(msg *message.Message) error
	HandleRoundPersistedForCourse(msg *message.Message) error
}
