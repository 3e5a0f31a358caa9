/**
 * @description
 * This file contains the core business logic for the deposit-service. The
 * `Service` struct orchestrates the deposit lifecycle: building the
 * canonical idempotent request, submitting it to pawaPay exactly once, and
 * handing inconclusive submissions to the reconciliation loop.
 *
 * Key features:
 * - Validation failures are aggregated and surfaced, but do not block
 *   submission; the caller sees both the validation message and whatever
 *   the gateway answered.
 * - A transport or API error during submission is terminal: the run ends in
 *   danger with the wrapped error and no polling happens.
 *
 * @dependencies
 * - context, fmt, log, time: Standard Go libraries.
 * - internal/domain: Domain models and the status taxonomy.
 * - pkg/pawapay: Gateway client types.
 */

package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dave-evans-pawapay/deposit-service/internal/domain"
	"github.com/dave-evans-pawapay/deposit-service/pkg/pawapay"
)

// Gateway is the slice of the pawaPay client the service depends on.
// SubmitDeposit must be called at most once per logical payment;
// FetchDepositStatus is an idempotent read.
type Gateway interface {
	SubmitDeposit(ctx context.Context, deposit *domain.Deposit) (*pawapay.SubmitResult, error)
	FetchDepositStatus(ctx context.Context, depositID string) (*pawapay.StatusRecord, error)
}

// Service provides the core business logic for deposits. Each CreateDeposit
// run is strictly sequential; concurrent runs share nothing but the
// gateway's connection pool.
type Service struct {
	gateway  Gateway
	schedule []time.Duration
	wait     func(ctx context.Context, d time.Duration) error
}

// NewService creates a new deposit service instance using the default
// reconciliation backoff schedule.
func NewService(gateway Gateway) *Service {
	return &Service{
		gateway:  gateway,
		schedule: DefaultBackoffSchedule,
		wait:     waitWithContext,
	}
}

// CreateDeposit runs the full deposit flow for one request and always
// returns a renderable result: echoed input, a defined severity and message,
// and the deposit identifier, even on total failure. The run blocks for up
// to the sum of the backoff schedule unless ctx is cancelled first.
func (s *Service) CreateDeposit(ctx context.Context, input domain.DepositInput) *domain.DepositResult {
	result := &domain.DepositResult{
		Msisdn:        input.Msisdn,
		Amount:        input.Amount,
		Description:   input.Description,
		Country:       input.Country,
		Correspondent: input.Correspondent,
	}

	deposit, validationErr := domain.BuildDeposit(input)
	result.DepositID = deposit.DepositID
	if validationErr != nil {
		result.ErrorMessage = validationErr.Error()
		log.Printf("level=warn component=service flow=deposit msg=\"validation failed; submitting anyway\" deposit_id=%s missing=%q", deposit.DepositID, validationErr.Fields)
	}

	submitResult, err := s.gateway.SubmitDeposit(ctx, deposit)
	if err != nil {
		result.ErrorMessage = fmt.Sprintf("Error from pawaPay: %v", err)
		result.Status = domain.SeverityDanger
		log.Printf("level=error component=service flow=deposit msg=\"submission failed\" deposit_id=%s err=%v", deposit.DepositID, err)
		return result
	}

	rejectionCode := ""
	if submitResult.RejectionReason != nil {
		rejectionCode = submitResult.RejectionReason.RejectionCode
	}
	outcome := domain.MapSubmitStatus(submitResult.Status, rejectionCode)
	result.Status = outcome.Severity
	result.Message = outcome.Message
	log.Printf("level=info component=service flow=deposit msg=\"submission answered\" deposit_id=%s status=%s severity=%s", deposit.DepositID, submitResult.Status, outcome.Severity)

	if outcome.Severity != domain.SeveritySuccess {
		return result
	}

	s.reconcile(ctx, deposit.DepositID, result)
	return result
}
