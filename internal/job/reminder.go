package job

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Reminder is the periodic reminder task. A tick only records that it ran;
// no reminders are sent yet.
type Reminder struct {
	interval time.Duration
	log      logrus.FieldLogger
}

func NewReminder(interval time.Duration, log logrus.FieldLogger) *Reminder {
	return &Reminder{interval: interval, log: log.WithField("job", "reminder")}
}

// Run blocks, ticking every interval, until ctx is done.
func (r *Reminder) Run(ctx context.Context) {
	r.log.WithField("interval", r.interval.String()).Info("reminder job scheduled")
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			r.log.Info("reminder job stopped")
			return
		case <-t.C:
			r.tick()
		}
	}
}

func (r *Reminder) tick() {
	r.log.Debug("running reminder job")
}
