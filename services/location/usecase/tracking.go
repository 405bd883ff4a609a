package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengjek-fare/internal/pkg/logger"
	"github.com/piresc/nebengjek-fare/internal/pkg/models"
	"github.com/piresc/nebengjek-fare/services/location"
)

// TrackingSession samples one trip's position on a ticker until stopped
type TrackingSession struct {
	id       string
	tripID   string
	interval time.Duration
	source   location.PositionSource
	uc       *LocationUC

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once

	samples  atomic.Int64
	failures atomic.Int64
}

// StartTracking starts a sampling loop for tripID. The loop ends when the returned
// session is stopped or ctx is cancelled. interval <= 0 uses the configured sample interval.
func (uc *LocationUC) StartTracking(ctx context.Context, tripID string, source location.PositionSource, interval time.Duration) (location.Session, error) {
	tripID = strings.TrimSpace(tripID)
	if tripID == "" {
		return nil, fmt.Errorf("%w: trip_id is required", models.ErrInvalidLocation)
	}
	if source == nil {
		return nil, fmt.Errorf("position source is required")
	}
	if interval <= 0 {
		interval = uc.cfg.SampleInterval
	}
	if interval <= 0 {
		interval = models.DefaultLocationConfig().SampleInterval
	}

	loopCtx, cancel := context.WithCancel(ctx)
	s := &TrackingSession{
		id:       uuid.New().String(),
		tripID:   tripID,
		interval: interval,
		source:   source,
		uc:       uc,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	logger.Info("Started trip tracking",
		logger.String("session_id", s.id),
		logger.String("trip_id", tripID),
		logger.Duration("interval", interval))

	go s.run(loopCtx)
	return s, nil
}

func (s *TrackingSession) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Stopped trip tracking",
				logger.String("session_id", s.id),
				logger.String("trip_id", s.tripID),
				logger.Int64("samples", s.samples.Load()),
				logger.Int64("failures", s.failures.Load()))
			return
		case <-ticker.C:
			s.sample(ctx)
		}
	}
}

func (s *TrackingSession) sample(ctx context.Context) {
	point, err := s.source.Position(ctx, s.tripID)
	if err != nil {
		s.failures.Add(1)
		logger.Warn("Failed to read trip position",
			logger.String("trip_id", s.tripID),
			logger.Err(err))
		return
	}

	if _, err := s.uc.AppendPoint(ctx, s.tripID, point); err != nil {
		s.failures.Add(1)
		logger.Warn("Failed to record trip position",
			logger.String("trip_id", s.tripID),
			logger.Err(err))
		return
	}
	s.samples.Add(1)
}

func (s *TrackingSession) ID() string { return s.id }

func (s *TrackingSession) TripID() string { return s.tripID }

// Stop cancels the loop and blocks until it has exited
func (s *TrackingSession) Stop() {
	s.stopOnce.Do(s.cancel)
	<-s.done
}

func (s *TrackingSession) Done() <-chan struct{} { return s.done }

func (s *TrackingSession) Stats() models.TrackingStats {
	return models.TrackingStats{
		Samples:  s.samples.Load(),
		Failures: s.failures.Load(),
	}
}
