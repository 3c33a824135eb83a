package service

import (
	"context"
	"time"

	"github.com/samirchaudhary/portfolio-api/internal/modules/model"
	"github.com/samirchaudhary/portfolio-api/internal/modules/repo"
	"go.uber.org/zap"
)

// Recorder appends activity-log entries. The signature has no error on
// purpose: recording is detached from the parent request, and a failed
// write only reaches the operator logs.
type Recorder interface {
	Record(activity, details string, typ model.ActivityType)
}

type activityRecorder struct {
	r   repo.ActivityRepo
	log *zap.Logger
}

func NewRecorder(r repo.ActivityRepo, log *zap.Logger) Recorder {
	return &activityRecorder{r: r, log: log}
}

func (s *activityRecorder) Record(activity, details string, typ model.ActivityType) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entry := &model.Activity{Activity: activity, Details: details, Type: typ}
	if err := s.r.Create(ctx, entry); err != nil {
		s.log.Sugar().Warnw("activity log write failed",
			"activity", activity,
			"type", typ,
			"err", err,
		)
	}
}
