// Package notify formats lead summaries and fans them out to the configured
// notification targets.
package notify

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lidorubov/neurosales/domain"
)

// Sender delivers one formatted message to one target.
type Sender interface {
	Send(ctx context.Context, target, text string) error
}

// Dispatcher fans a lead summary out to every configured target. Targets fail
// independently: a refused delivery never blocks the others, and no failure
// is reported past the dispatcher.
type Dispatcher struct {
	sender  Sender
	targets []string
	company string
	logger  *zap.Logger
	now     func() time.Time
}

// NewDispatcher creates a dispatcher for the given targets. An empty target
// list is valid: leads are then logged locally instead of delivered.
func NewDispatcher(sender Sender, targets []string, company string, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		targets: targets,
		company: company,
		logger:  logger,
		now:     time.Now,
	}
}

// Dispatch delivers sig to every target and waits for all deliveries to
// settle. At most one attempt is made per target per lead event.
func (d *Dispatcher) Dispatch(ctx context.Context, sig domain.LeadSignal) {
	text := FormatLead(sig, d.company, d.now())

	if len(d.targets) == 0 {
		d.logger.Info("no notification targets configured, logging lead locally",
			zap.String("stage", sig.Stage),
			zap.String("lead", text))
		return
	}

	var (
		mu        sync.Mutex
		delivered int
	)

	var g errgroup.Group
	for _, target := range d.targets {
		target := target
		g.Go(func() error {
			if err := d.sender.Send(ctx, target, text); err != nil {
				d.logger.Warn("lead notification delivery failed",
					zap.String("target", target),
					zap.Error(err))
				return nil
			}
			mu.Lock()
			delivered++
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	d.logger.Info("lead notification dispatched",
		zap.String("stage", sig.Stage),
		zap.Int("delivered", delivered),
		zap.Int("targets", len(d.targets)))
}

// FormatLead renders the fixed notification template for a lead.
func FormatLead(sig domain.LeadSignal, company string, at time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎯 NEW LEAD | %s\n", company)
	b.WriteString("──────────────\n")
	fmt.Fprintf(&b, "⏰ Time: %s\n", at.Format(time.RFC3339))
	fmt.Fprintf(&b, "📊 Stage: %s\n", sig.Stage)

	if sig.Contacts.HasContacts() {
		fmt.Fprintf(&b, "📞 Phones: %s\n", strings.Join(sig.Contacts.Phones, ", "))
		fmt.Fprintf(&b, "📧 Emails: %s\n", strings.Join(sig.Contacts.Emails, ", "))
	} else {
		b.WriteString("Contacts: none provided\n")
	}

	fmt.Fprintf(&b, "💬 Message: %q\n", sig.SourceMessage)
	b.WriteString("📜 Recent history:\n")
	for _, msg := range sig.RecentHistory {
		fmt.Fprintf(&b, "%s: %s\n", msg.Role, msg.Content)
	}

	return strings.TrimRight(b.String(), "\n")
}
