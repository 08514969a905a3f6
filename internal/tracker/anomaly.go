package tracker

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"lifetracker/internal/messaging"
	"lifetracker/internal/models"
	"lifetracker/internal/providers"
	"lifetracker/internal/services"
	"lifetracker/internal/structures"
)

const JobSpending = "spending_alert"

// SpendingMonitor is the event-driven anomaly check the sync endpoint
// runs inline on every push. The average is total expenses over a
// fixed window of days, not an actual date span — that is the ledger
// the clients were built against, so the window stays a config knob
// rather than a computed range. There is deliberately no cross-sync
// guard: syncing twice past the threshold alerts twice.
type SpendingMonitor struct {
	service  services.TrackerServiceInterface
	notifier messaging.NotifierInterface
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	floor    decimal.Decimal
	ratio    decimal.Decimal
	window   decimal.Decimal
	now      func() time.Time
}

func NewSpendingMonitor(conf *structures.Config, service services.TrackerServiceInterface, notifier messaging.NotifierInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *SpendingMonitor {
	return &SpendingMonitor{
		service:  service,
		notifier: notifier,
		logger:   logger,
		metrics:  metrics,
		floor:    decimal.NewFromFloat(conf.Notifications.SpendFloor),
		ratio:    decimal.NewFromFloat(conf.Notifications.SpendRatio),
		window:   decimal.NewFromInt(int64(conf.Notifications.SpendWindowDays)),
		now:      time.Now,
	}
}

// Check evaluates the freshly-synced transaction list for the user.
// Any failure is logged and swallowed: the enclosing sync must always
// succeed regardless of the outcome here.
func (m *SpendingMonitor) Check(ctx context.Context, userID string, transactions []models.Transaction) {
	if len(transactions) == 0 {
		return
	}

	today := models.DayKey(m.now())

	todaySpend := decimal.Zero
	totalSpend := decimal.Zero
	for _, t := range transactions {
		if t.Type != models.TransactionExpense {
			continue
		}
		totalSpend = totalSpend.Add(t.Amount)
		if strings.HasPrefix(t.Date, today) {
			todaySpend = todaySpend.Add(t.Amount)
		}
	}

	avgDaily := decimal.Zero
	if m.window.IsPositive() {
		avgDaily = totalSpend.Div(m.window)
	}

	if !todaySpend.GreaterThan(m.floor) || !todaySpend.GreaterThan(avgDaily.Mul(m.ratio)) {
		return
	}

	user, ok := m.service.GetUser(userID)
	if !ok || !user.NotificationsEnabled {
		return
	}

	err := m.notifier.Send(ctx, messaging.Notification{
		RecipientID: user.ID,
		TemplateKey: messaging.KeySpendingAlert,
		Params: map[string]string{
			"amount": "$" + todaySpend.StringFixed(2),
			"avg":    "$" + avgDaily.StringFixed(2),
		},
		Language: user.Language,
	})
	if err != nil {
		m.metrics.IncNotificationErrors(JobSpending)
		m.logger.Errorf(providers.TypeJob, "Error in spending alert for %s: %s", userID, err)
		return
	}

	m.metrics.IncNotificationsSent(JobSpending)
	m.logger.Infof(providers.TypeJob, "Sent spending alert to %s", userID)
}
