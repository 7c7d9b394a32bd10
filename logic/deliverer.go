package logic

import (
	"context"
	"fmt"
	"sync"
	"time"

	"inkwell/dal"
	"inkwell/dto"
	"inkwell/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_deliverer.go -package mocks inkwell/logic IDeliverer

// DeliveryTier is the caller's failure classification of a recipient
// batch. A failed primary delivery is a hard error for the originating
// request; a failed secondary one is logged and forgotten.
type DeliveryTier int

const (
	TierPrimary DeliveryTier = iota
	TierSecondary
)

func (t DeliveryTier) String() string {
	if t == TierPrimary {
		return "primary"
	}
	return "secondary"
}

type DeliveryResult struct {
	Ok    bool
	Error string
}

type DeliveryReport struct {
	Tier         DeliveryTier
	PerRecipient map[string]DeliveryResult
}

func (r *DeliveryReport) FailedCount() int {
	n := 0
	for _, res := range r.PerRecipient {
		if !res.Ok {
			n++
		}
	}
	return n
}

// Inboxes returns every delivery target the report covers, successful or
// not. Callers use it to subtract already-notified inboxes from follow-up
// batches.
func (r *DeliveryReport) Inboxes() map[string]struct{} {
	res := make(map[string]struct{}, len(r.PerRecipient))
	for inbox := range r.PerRecipient {
		res[inbox] = struct{}{}
	}
	return res
}

// IDeliverer fans one activity out to a set of recipients. Each recipient
// gets exactly one POST attempt; there is no retry or backoff. Deliveries
// within a batch run concurrently on a bounded worker pool, and the whole
// batch is cut off by a timeout after which unfinished recipients are
// recorded as errors rather than blocking the caller.
type IDeliverer interface {
	Deliver(ctx context.Context, activity *dto.ActivityOut, recipients []*dal.Actor, tier DeliveryTier) (*DeliveryReport, error)
}

type deliverer struct {
	cfg      *shared.Config
	logger   shared.ILogger
	resolver IActorResolver
	sender   IActivitySender
	metrics  IMetrics
}

func NewDeliverer(
	cfg *shared.Config,
	logger shared.ILogger,
	resolver IActorResolver,
	sender IActivitySender,
	metrics IMetrics,
) IDeliverer {
	return &deliverer{cfg, logger, resolver, sender, metrics}
}

type recipientOutcome struct {
	inbox  string
	result DeliveryResult
}

func (d *deliverer) Deliver(
	ctx context.Context,
	activity *dto.ActivityOut,
	recipients []*dal.Actor,
	tier DeliveryTier,
) (*DeliveryReport, error) {

	report := &DeliveryReport{
		Tier:         tier,
		PerRecipient: make(map[string]DeliveryResult),
	}

	// Local recipients are not federation targets; their bookkeeping
	// happens in-process at the call site
	var targets []string
	for _, rcpt := range recipients {
		if rcpt.IsLocal() {
			continue
		}
		inbox, err := d.resolver.InboxUrl(rcpt)
		if err != nil {
			report.PerRecipient[rcpt.Handle+"@"+rcpt.Host] = DeliveryResult{Ok: false, Error: err.Error()}
			continue
		}
		if _, dup := report.PerRecipient[inbox]; dup {
			continue
		}
		report.PerRecipient[inbox] = DeliveryResult{}
		targets = append(targets, inbox)
	}

	if len(targets) != 0 {
		batchCtx, cancel := context.WithTimeout(ctx, time.Duration(d.cfg.Delivery.TimeoutSec)*time.Second)
		defer cancel()

		jobs := make(chan string)
		outcomes := make(chan recipientOutcome)

		workers := d.cfg.Delivery.Workers
		if workers > len(targets) {
			workers = len(targets)
		}
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for inbox := range jobs {
					// A dead batch context stops new POSTs but never
					// unwinds ones already on the wire
					if batchCtx.Err() != nil {
						outcomes <- recipientOutcome{inbox, DeliveryResult{Ok: false, Error: "timeout"}}
						continue
					}
					err := d.sender.Send(batchCtx, inbox, activity)
					if err != nil {
						outcomes <- recipientOutcome{inbox, DeliveryResult{Ok: false, Error: err.Error()}}
					} else {
						outcomes <- recipientOutcome{inbox, DeliveryResult{Ok: true}}
					}
				}
			}()
		}

		go func() {
			for _, inbox := range targets {
				jobs <- inbox
			}
			close(jobs)
		}()
		go func() {
			wg.Wait()
			close(outcomes)
		}()

		for outcome := range outcomes {
			report.PerRecipient[outcome.inbox] = outcome.result
		}
	}

	failed := report.FailedCount()
	if failed != 0 {
		d.metrics.DeliveryFailed(tier.String())
		if tier == TierPrimary {
			return report, fmt.Errorf("%w: %d of %d %s deliveries of %s failed",
				ErrTransport, failed, len(report.PerRecipient), tier, activity.Type)
		}
		d.logger.Warnf("%d of %d %s deliveries of %s failed; continuing",
			failed, len(report.PerRecipient), tier, activity.Type)
	}
	return report, nil
}
