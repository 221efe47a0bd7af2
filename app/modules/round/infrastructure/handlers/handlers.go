package roundhandlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	courseservice "github.com/fore-golf/fore-api/app/modules/course/application"
	userservice "github.com/fore-golf/fore-api/app/modules/user/application"
	"github.com/fore-golf/fore-api/internal/attr"
	"github.com/fore-golf/fore-api/internal/observability"
)

// RoundHandlers applies round events to the user and course aggregates.
type RoundHandlers struct {
	userService    userservice.Service
	courseService  courseservice.Service
	logger         *slog.Logger
	metrics        observability.Metrics
	tracer         trace.Tracer
	handlerWrapper func(handlerName string, unmarshalTo interface{}, handlerFunc func(ctx context.Context, msg *message.Message, payload interface{}) error) message.NoPublishHandlerFunc
}

// NewRoundHandlers creates a new RoundHandlers.
func NewRoundHandlers(
	userService userservice.Service,
	courseService courseservice.Service,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
) Handlers {
	return &RoundHandlers{
		userService:   userService,
		courseService: courseService,
		logger:        logger,
		metrics:       metrics,
		tracer:        tracer,
		handlerWrapper: func(handlerName string, unmarshalTo interface{}, handlerFunc func(ctx context.Context, msg *message.Message, payload interface{}) error) message.NoPublishHandlerFunc {
			return handlerWrapper(handlerName, unmarshalTo, handlerFunc, logger, metrics, tracer)
		},
	}
}

// handlerWrapper is a standalone function that handles common tracing,
// logging and metrics for handlers.
func handlerWrapper(
	handlerName string,
	unmarshalTo interface{},
	handlerFunc func(ctx context.Context, msg *message.Message, payload interface{}) error,
	logger *slog.Logger,
	metrics observability.Metrics,
	tracer trace.Tracer,
) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		ctx, span := tracer.Start(msg.Context(), handlerName)
		defer span.End()

		metrics.RecordHandlerAttempt(handlerName)

		startTime := time.Now()
		defer func() {
			metrics.RecordHandlerDuration(handlerName, time.Since(startTime).Seconds())
		}()

		logger.InfoContext(ctx, handlerName+" triggered",
			attr.CorrelationIDFromMsg(msg),
			attr.String("message_id", msg.UUID),
		)

		if unmarshalTo != nil {
			if err := json.Unmarshal(msg.Payload, unmarshalTo); err != nil {
				logger.ErrorContext(ctx, "Failed to unmarshal payload",
					attr.CorrelationIDFromMsg(msg),
					attr.Error(err),
				)
				metrics.RecordHandlerFailure(handlerName)
				return fmt.Errorf("failed to unmarshal payload: %w", err)
			}
		}

		if err := handlerFunc(ctx, msg, unmarshalTo); err != nil {
			logger.ErrorContext(ctx, "Error in "+handlerName,
				attr.CorrelationIDFromMsg(msg),
				attr.Error(err),
			)
			metrics.RecordHandlerFailure(handlerName)
			return err
		}

		logger.InfoContext(ctx, handlerName+" completed successfully", attr.CorrelationIDFromMsg(msg))
		metrics.RecordHandlerSuccess(handlerName)
		return nil
	}
}
