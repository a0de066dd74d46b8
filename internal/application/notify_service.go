package application

import (
	"context"
	"errors"
	"fmt"
	"html"

	"fcclubs/internal/models"

	"github.com/google/uuid"
)

type NotifyResult struct {
	Total  int
	Sent   int
	Failed int
}

func (r NotifyResult) Message() string {
	if r.Total == 0 {
		return "No subscribed users to notify."
	}
	return fmt.Sprintf("Notifications sent to %d users. %d failed.", r.Sent, r.Failed)
}

// NotifyService pushes one club report to every subscriber.
type NotifyService struct {
	reports       *ReportService
	subscriptions *SubscriptionService
	broadcaster   Broadcaster
	logger        Logger
}

func NewNotifyService(reports *ReportService, subscriptions *SubscriptionService, broadcaster Broadcaster, logger Logger) *NotifyService {
	return &NotifyService{
		reports:       reports,
		subscriptions: subscriptions,
		broadcaster:   broadcaster,
		logger:        logger,
	}
}

// Notify builds the report once and fans it out. A club without matches still
// produces a notice for subscribers; any other report failure aborts the run.
func (s *NotifyService) Notify(ctx context.Context, clubName string) (NotifyResult, error) {
	runID := uuid.NewString()
	s.logger.Info("notify run %s for club %q", runID, clubName)

	report, err := s.reports.BuildReport(ctx, clubName, "")
	switch {
	case errors.Is(err, ErrNotFound):
		notice := fmt.Sprintf("⚠️ No matches found for the club <b>%s</b>.", html.EscapeString(clubName))
		report = Report{
			Club:     models.ClubRef{Name: clubName},
			HTML:     notice,
			Markdown: fmt.Sprintf("⚠️ No matches found for the club **%s**.", markdownEscaper.Replace(clubName)),
			Plain:    fmt.Sprintf("⚠️ No matches found for the club %s.", clubName),
		}
	case err != nil:
		s.logger.Error("notify run %s: build report: %v", runID, err)
		return NotifyResult{}, err
	}

	recipients, err := s.subscriptions.Recipients(ctx)
	if err != nil {
		s.logger.Error("notify run %s: %v", runID, err)
		return NotifyResult{}, err
	}

	sent, failed := s.broadcaster.Broadcast(ctx, recipients, report)
	res := NotifyResult{Total: len(recipients), Sent: sent, Failed: failed}
	s.logger.Info("notify run %s done: total=%d sent=%d failed=%d", runID, res.Total, res.Sent, res.Failed)

	return res, nil
}
