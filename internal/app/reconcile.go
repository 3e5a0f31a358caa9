/**
 * @description
 * This file implements the reconciliation loop: after pawaPay has accepted a
 * deposit submission, the final outcome is only discoverable by polling the
 * status endpoint. The loop walks a fixed backoff schedule, classifies each
 * response, and stops at the first terminal outcome or when the schedule is
 * exhausted.
 *
 * Key features:
 * - The schedule is literal configuration data, not computed backoff. Its
 *   sum bounds a fully pending run at roughly 316 seconds.
 * - A gateway error on an individual poll is recorded but never aborts the
 *   run; the loop proceeds to the next scheduled wait. Every attempt lands
 *   in the result's attempt log so this masking stays observable.
 *
 * @dependencies
 * - context, fmt, log, time: Standard Go libraries.
 * - internal/domain: The status taxonomy and attempt log types.
 */

package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dave-evans-pawapay/deposit-service/internal/domain"
)

// DefaultBackoffSchedule is the ordered sequence of waits applied before
// each status poll. It must stay exactly [0.1s, 1s, 15s, 30s, 90s, 180s].
var DefaultBackoffSchedule = []time.Duration{
	100 * time.Millisecond,
	1 * time.Second,
	15 * time.Second,
	30 * time.Second,
	90 * time.Second,
	180 * time.Second,
}

// waitWithContext blocks for d or until ctx is cancelled.
func waitWithContext(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// reconcile polls the gateway for depositID until a terminal outcome is
// observed or the schedule runs out. It mutates result in place: the state
// starts as the pending warning and each classified poll overwrites it, so
// an exhausted schedule leaves the standard timeout message behind.
func (s *Service) reconcile(ctx context.Context, depositID string, result *domain.DepositResult) {
	result.Status = domain.SeverityWarning
	result.Message = domain.MessageTimeout

	for i, backoff := range s.schedule {
		if err := s.wait(ctx, backoff); err != nil {
			result.ErrorMessage = fmt.Sprintf("Error from pawaPay: %v", err)
			log.Printf("level=warn component=service flow=deposit_reconcile msg=\"run cancelled\" deposit_id=%s attempt=%d err=%v", depositID, i+1, err)
			return
		}

		record, err := s.gateway.FetchDepositStatus(ctx, depositID)
		if err != nil {
			// Swallowed on purpose: a transient poll failure must not end
			// the run. The attempt log keeps the error visible.
			result.ErrorMessage = fmt.Sprintf("Error from pawaPay: %v", err)
			result.Attempts = append(result.Attempts, domain.PollAttempt{Attempt: i + 1, Err: err.Error()})
			log.Printf("level=warn component=service flow=deposit_reconcile msg=\"status check failed; continuing\" deposit_id=%s attempt=%d err=%v", depositID, i+1, err)
			continue
		}

		failureMessage := ""
		if record.FailureReason != nil {
			failureMessage = record.FailureReason.FailureMessage
		}
		outcome := domain.MapPollStatus(record.Status, failureMessage)
		result.Attempts = append(result.Attempts, domain.PollAttempt{Attempt: i + 1, RawStatus: record.Status, Outcome: outcome})
		result.Status = outcome.Severity
		result.Message = outcome.Message
		log.Printf("level=info component=service flow=deposit_reconcile msg=\"status check\" deposit_id=%s attempt=%d status=%s severity=%s", depositID, i+1, record.Status, outcome.Severity)

		if outcome.Terminal() {
			return
		}
	}
}
