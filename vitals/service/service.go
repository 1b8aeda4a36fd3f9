package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/carelink/vitals/baselines"
	"github.com/carelink/vitals/config"
	"github.com/carelink/vitals/outbox"
	"github.com/carelink/vitals/pointer"
	"github.com/carelink/vitals/records"
	"github.com/carelink/vitals/users"
	"github.com/carelink/vitals/vitals"
)

type service struct {
	directory     users.Directory
	records       records.Repository
	baselines     baselines.Repository
	outbox        outbox.Repository
	logger        *zap.SugaredLogger
	location      *time.Location
	alertsEnabled bool
	now           func() time.Time
}

type Params struct {
	fx.In

	Config    *config.Config
	Directory users.Directory
	Records   records.Repository
	Baselines baselines.Repository
	Outbox    outbox.Repository
	Logger    *zap.SugaredLogger

	Clock func() time.Time `optional:"true"`
}

var _ vitals.Service = &service{}

func NewService(p Params) (vitals.Service, error) {
	location, err := p.Config.Location()
	if err != nil {
		return nil, err
	}

	now := p.Clock
	if now == nil {
		now = time.Now
	}

	return &service{
		directory:     p.Directory,
		records:       p.Records,
		baselines:     p.Baselines,
		outbox:        p.Outbox,
		logger:        p.Logger,
		location:      location,
		alertsEnabled: p.Config.AlertsEnabled,
		now:           now,
	}, nil
}

func (s *service) Ingest(ctx context.Context, userId string, readings vitals.Readings) (*records.Measurement, error) {
	user, err := s.directory.Resolve(ctx, userId)
	if err != nil {
		return nil, err
	}

	baseline, err := s.findBaseline(ctx, *user.Id)
	if err != nil {
		return nil, err
	}

	if readings.HasPartialBloodPressure() {
		s.logger.Debugw("blood pressure pair is incomplete and won't be classified", "userId", userId)
	}

	measurement := vitals.Classify(readings, baseline)
	measurement.UserId = *user.Id

	created, err := s.records.Create(ctx, measurement)
	if err != nil {
		return nil, fmt.Errorf("unable to create measurement: %w", err)
	}

	// The measurement is not rolled back if the baseline can't be updated
	if _, err := s.updateBaseline(ctx, *user.Id, baseline, readings); err != nil {
		s.logger.Errorw("unable to update baseline", "userId", userId, "measurementId", created.Id.Hex(), zap.Error(err))
		return nil, fmt.Errorf("unable to update baseline: %w", err)
	}

	if created.OverallAbnormal {
		s.notifyAnomaly(ctx, userId, created)
	}

	s.logger.Infow("measurement ingested",
		"userId", userId,
		"measurementId", created.Id.Hex(),
		"overallAbnormal", created.OverallAbnormal,
		"anomalyType", pointer.ToString(created.AnomalyType),
	)

	return created, nil
}

func (s *service) GetBaselineSummary(ctx context.Context, userId string) (*vitals.BaselineSummary, error) {
	user, err := s.directory.Resolve(ctx, userId)
	if err != nil {
		return nil, err
	}

	baseline, err := s.findBaseline(ctx, *user.Id)
	if err != nil {
		return nil, err
	}

	latest, err := s.records.FindMostRecentByUser(ctx, *user.Id)
	if errors.Is(err, records.ErrNotFound) {
		latest = nil
	} else if err != nil {
		return nil, fmt.Errorf("unable to find most recent measurement: %w", err)
	}

	if baseline == nil && latest == nil {
		return nil, vitals.ErrEmptySummary
	}

	return vitals.NewBaselineSummary(baseline, latest), nil
}

func (s *service) GetInsights(ctx context.Context, userId string, rangeToken string) (*vitals.Series, error) {
	days := vitals.ParseRange(rangeToken)
	now := s.now().In(s.location)

	user, err := s.directory.Resolve(ctx, userId)
	if errors.Is(err, users.ErrNotFound) {
		s.logger.Debugw("returning empty insights for unknown user", "userId", userId)
		return vitals.Aggregate(nil, now, days), nil
	} else if err != nil {
		return nil, err
	}

	start, end := vitals.Window(now, days)
	measurements, err := s.records.FindByUserAndTimeRange(ctx, *user.Id, start, end)
	if err != nil {
		return nil, fmt.Errorf("unable to find measurements: %w", err)
	}

	return vitals.Aggregate(measurements, now, days), nil
}

func (s *service) findBaseline(ctx context.Context, userId primitive.ObjectID) (*baselines.Summary, error) {
	baseline, err := s.baselines.FindByUser(ctx, userId)
	if errors.Is(err, baselines.ErrNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("unable to find baseline: %w", err)
	}
	return baseline, nil
}

func (s *service) notifyAnomaly(ctx context.Context, userId string, measurement *records.Measurement) {
	if !s.alertsEnabled {
		return
	}

	event, err := outbox.NewEvent(outbox.EventTypeHealthAnomaly, outbox.HealthAnomalyPayload{
		UserId:        userId,
		MeasurementId: measurement.Id.Hex(),
		AnomalyType:   pointer.ToString(measurement.AnomalyType),
		AnomalyReason: pointer.ToString(measurement.AnomalyReason),
		MeasuredAt:    measurement.MeasuredAt,
	})
	if err == nil {
		err = s.outbox.Create(ctx, event)
	}
	if err != nil {
		s.logger.Warnw("unable to record health anomaly event", "userId", userId, "measurementId", measurement.Id.Hex(), zap.Error(err))
	}
}
