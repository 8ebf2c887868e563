package logging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kickstartvisuals/studio-backend/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	sinkQueueSize = 256
	sinkBatchSize = 50
	flushInterval = 5 * time.Second
	pruneInterval = 24 * time.Hour
	retentionDays = 30
)

// DBSink is an slog.Handler that persists ERROR+ records into system_logs.
// Writes go through a buffered channel so logging never blocks a request;
// a single goroutine batches inserts and prunes rows past retention. If the
// queue is full the record is dropped (stdout still has it via the tee).
type DBSink struct {
	db      *gorm.DB
	records chan models.SystemLog
	done    chan struct{}
	wg      sync.WaitGroup
}

func NewDBSink(db *gorm.DB) *DBSink {
	s := &DBSink{
		db:      db,
		records: make(chan models.SystemLog, sinkQueueSize),
		done:    make(chan struct{}),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

func (s *DBSink) run() {
	defer s.wg.Done()

	batch := make([]models.SystemLog, 0, sinkBatchSize)
	flushTicker := time.NewTicker(flushInterval)
	pruneTicker := time.NewTicker(pruneInterval)
	defer flushTicker.Stop()
	defer pruneTicker.Stop()

	for {
		select {
		case entry := <-s.records:
			batch = append(batch, entry)
			if len(batch) >= sinkBatchSize {
				s.insert(batch)
				batch = batch[:0]
			}
		case <-flushTicker.C:
			if len(batch) > 0 {
				s.insert(batch)
				batch = batch[:0]
			}
		case <-pruneTicker.C:
			s.prune()
		case <-s.done:
			// Drain whatever is queued before the final insert.
			for {
				select {
				case entry := <-s.records:
					batch = append(batch, entry)
				default:
					if len(batch) > 0 {
						s.insert(batch)
					}
					return
				}
			}
		}
	}
}

func (s *DBSink) insert(batch []models.SystemLog) {
	if err := s.db.CreateInBatches(batch, sinkBatchSize).Error; err != nil {
		slog.Warn("failed to persist system logs", "error", err, "count", len(batch))
	}
}

func (s *DBSink) prune() {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	result := s.db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Warn("log retention prune failed", "error", result.Error)
	} else if result.RowsAffected > 0 {
		slog.Info("log retention prune completed", "deleted", result.RowsAffected)
	}
}

// Stop flushes pending records and stops the background goroutine.
func (s *DBSink) Stop() {
	close(s.done)
	s.wg.Wait()
}

func (s *DBSink) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelError
}

func (s *DBSink) Handle(_ context.Context, record slog.Record) error {
	entry := models.SystemLog{
		ID:        uuid.New(),
		Timestamp: record.Time,
		Level:     record.Level.String(),
		Message:   record.Message,
	}

	extra := make(map[string]interface{})
	record.Attrs(func(a slog.Attr) bool {
		switch a.Key {
		case "request_id":
			entry.RequestID = a.Value.String()
		case "user_id":
			v := a.Value.String()
			entry.UserID = &v
		case "action":
			entry.Action = a.Value.String()
		case "error":
			entry.Error = a.Value.String()
		default:
			extra[a.Key] = a.Value.Any()
		}
		return true
	})

	if len(extra) > 0 {
		if b, err := json.Marshal(extra); err == nil {
			entry.Extra = datatypes.JSON(b)
		}
	}

	select {
	case s.records <- entry:
	default:
		// Queue full; drop rather than block the request path.
	}
	return nil
}

func (s *DBSink) WithAttrs([]slog.Attr) slog.Handler { return s }

func (s *DBSink) WithGroup(string) slog.Handler { return s }
