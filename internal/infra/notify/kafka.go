package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"drop-arbiter/internal/domain/event"
	"drop-arbiter/internal/pkg/config"
	"drop-arbiter/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

const (
	defaultQueueSize   = 256
	defaultMaxAttempts = 3
	baseBackoff        = 100 * time.Millisecond
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaSink writes events keyed by operator id so one operator's events
// stay ordered within a partition. Enqueue drops events when the queue is full.
type KafkaSink struct {
	writer      messageWriter
	queue       chan event.Event
	stopped     chan struct{}
	done        chan struct{}
	maxAttempts int
	logger      *slog.Logger

	startOnce sync.Once
	stopOnce  sync.Once
}

func NewKafkaSink(cfg config.KafkaConfig, logger *slog.Logger) *KafkaSink {
	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:      cfg.Brokers,
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
		WriteTimeout: 10 * time.Second,
	})
	return newKafkaSink(w, cfg.QueueSize, logger)
}

func newKafkaSink(w messageWriter, queueSize int, logger *slog.Logger) *KafkaSink {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &KafkaSink{
		writer:      w,
		queue:       make(chan event.Event, queueSize),
		stopped:     make(chan struct{}),
		done:        make(chan struct{}),
		maxAttempts: defaultMaxAttempts,
		logger:      logger,
	}
}

func (s *KafkaSink) Enqueue(e event.Event) {
	select {
	case <-s.stopped:
		return
	default:
	}

	select {
	case s.queue <- e:
	default:
		s.logger.Warn("kafka sink queue full, dropping event",
			"operator_id", e.OperatorID.String(),
			"event_type", string(e.Type))
	}
}

func (s *KafkaSink) Start() {
	s.startOnce.Do(func() {
		go s.run()
	})
}

// Stop flushes what is already queued, then closes the writer.
func (s *KafkaSink) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		close(s.stopped)
	})
	s.Start()

	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := s.writer.Close(); err != nil {
		return errs.Wrap(err, "close kafka writer")
	}
	return nil
}

func (s *KafkaSink) run() {
	defer close(s.done)
	for {
		select {
		case e := <-s.queue:
			s.write(e)
		case <-s.stopped:
			for {
				select {
				case e := <-s.queue:
					s.write(e)
				default:
					return
				}
			}
		}
	}
}

func (s *KafkaSink) write(e event.Event) {
	msg, err := toMessage(e)
	if err != nil {
		s.logger.Error("encode event for kafka", "event_id", e.ID.String(), "error", err.Error())
		return
	}

	var lastErr error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		lastErr = s.writer.WriteMessages(ctx, msg)
		cancel()
		if lastErr == nil {
			return
		}
		if attempt < s.maxAttempts {
			select {
			case <-time.After(baseBackoff * time.Duration(attempt)):
			case <-s.stopped:
			}
		}
	}
	s.logger.Error("kafka write failed",
		"event_id", e.ID.String(),
		"event_type", string(e.Type),
		"attempts", s.maxAttempts,
		"error", lastErr.Error())
}

func toMessage(e event.Event) (kafka.Message, error) {
	value, err := json.Marshal(e)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(e.OperatorID.String()),
		Value: value,
		Time:  e.CreatedAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(e.Type)},
		},
	}, nil
}
