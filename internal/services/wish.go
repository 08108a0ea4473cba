package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-wish-tree/internal/logger"
	"github.com/sbilibin2017/gw-wish-tree/internal/models"
)

var (
	// ErrWishUnavailable is returned when a wish cannot be fulfilled because it
	// was already fulfilled or does not exist.
	ErrWishUnavailable = errors.New("wish is already fulfilled")
)

//go:generate mockgen -source=wish.go -destination=mock_wish.go -package=services

// WishReader defines methods for reading wishes.
type WishReader interface {
	List(ctx context.Context) ([]models.WishDB, error) // Returns all wishes, newest first
}

// WishWriter defines methods for changing wishes.
type WishWriter interface {
	Save(ctx context.Context, wish models.NewWish) (int64, error)                             // Inserts a wish and returns its id
	Fulfill(ctx context.Context, id int64, fulfilledBy string, contact *string) (bool, error) // Conditionally fulfills an available wish
	ResetFulfilled(ctx context.Context) (int64, error)                                        // Returns fulfilled wishes to available
	Delete(ctx context.Context, id int64) (int64, error)                                      // Deletes a wish by id
}

// WishCache caches the public wish list.
type WishCache interface {
	GetList(ctx context.Context) ([]models.Wish, error)                     // Returns the cached list
	Version(ctx context.Context) (int64, error)                             // Returns the current list version
	SetList(ctx context.Context, version int64, wishes []models.Wish) error // Stores the list if version is still current
	Invalidate(ctx context.Context) error                                   // Bumps the version and drops the cached list
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// WishService handles wish operations, list caching and event publishing.
type WishService struct {
	reader      WishReader
	writer      WishWriter
	cache       WishCache
	kafkaWriter KafkaWriter
}

// NewWishService creates a new WishService. cache and kafkaWriter may be nil.
func NewWishService(
	reader WishReader,
	writer WishWriter,
	cache WishCache,
	kafkaWriter KafkaWriter,
) *WishService {
	return &WishService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// List returns the public view of all wishes, newest first.
func (s *WishService) List(ctx context.Context) ([]models.Wish, error) {
	log := logger.FromContext(ctx)

	// The version is read before the database so a list that raced a
	// mutation is never written back.
	cacheable := false
	var version int64
	if s.cache != nil {
		wishes, err := s.cache.GetList(ctx)
		if err == nil {
			return wishes, nil
		}
		log.Debugw("wish list cache miss", "error", err)

		if version, err = s.cache.Version(ctx); err != nil {
			log.Warnw("failed to read wish list version", "error", err)
		} else {
			cacheable = true
		}
	}

	rows, err := s.reader.List(ctx)
	if err != nil {
		log.Errorw("failed to list wishes", "error", err)
		return nil, err
	}

	wishes := make([]models.Wish, 0, len(rows))
	for _, row := range rows {
		wishes = append(wishes, row.ToWish())
	}

	if cacheable {
		if err := s.cache.SetList(ctx, version, wishes); err != nil {
			log.Warnw("failed to cache wish list", "error", err)
		}
	}

	return wishes, nil
}

// Create stores a new available wish and returns its id.
func (s *WishService) Create(ctx context.Context, wish models.NewWish) (int64, error) {
	id, err := s.writer.Save(ctx, wish)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to save wish", "childName", wish.ChildName, "error", err)
		return 0, err
	}

	s.afterChange(ctx, models.WishEvent{WishID: id, Operation: models.OperationCreated, Affected: 1})
	return id, nil
}

// Fulfill books an available wish for a benefactor. At most one caller wins;
// everyone else gets ErrWishUnavailable.
func (s *WishService) Fulfill(ctx context.Context, id int64, fulfilledBy string, contact *string) error {
	ok, err := s.writer.Fulfill(ctx, id, fulfilledBy, contact)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to fulfill wish", "id", id, "error", err)
		return err
	}
	if !ok {
		logger.FromContext(ctx).Infow("wish is not available", "id", id)
		return ErrWishUnavailable
	}

	s.afterChange(ctx, models.WishEvent{
		WishID:      id,
		Operation:   models.OperationFulfilled,
		FulfilledBy: &fulfilledBy,
		Affected:    1,
	})
	return nil
}

// ResetFulfilled returns all fulfilled wishes to available and reports how many changed.
func (s *WishService) ResetFulfilled(ctx context.Context) (int64, error) {
	n, err := s.writer.ResetFulfilled(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to reset fulfilled wishes", "error", err)
		return 0, err
	}

	s.afterChange(ctx, models.WishEvent{Operation: models.OperationResetFulfilled, Affected: n})
	return n, nil
}

// Delete removes a wish. Deleting a missing wish succeeds.
func (s *WishService) Delete(ctx context.Context, id int64) error {
	n, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete wish", "id", id, "error", err)
		return err
	}

	s.afterChange(ctx, models.WishEvent{WishID: id, Operation: models.OperationDeleted, Affected: n})
	return nil
}

// afterChange drops the cached list and publishes the event. Failures are logged only.
func (s *WishService) afterChange(ctx context.Context, event models.WishEvent) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.FromContext(ctx).Warnw("failed to invalidate wish list cache", "error", err)
		}
	}

	event.EventID = uuid.NewString()
	event.Timestamp = time.Now().Unix()
	s.publishEvent(ctx, event)
}

// publishEvent publishes a wish event to Kafka.
func (s *WishService) publishEvent(ctx context.Context, event models.WishEvent) {
	log := logger.FromContext(ctx)

	if s.kafkaWriter == nil {
		log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal wish event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.WishID, 10)),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish wish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		log.Infow("Wish event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}
