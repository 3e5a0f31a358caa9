/**
 * @description
 * This file defines the outcome taxonomy for the deposit flow: the 3-level
 * severity shown to the user and the total mappings from pawaPay's raw
 * status vocabularies (submission-time and poll-time are distinct) onto a
 * severity plus a display message.
 *
 * @notes
 * - Both mappers are total and deterministic: unrecognized provider values
 *   map to danger/"Unknown error" instead of failing, so the caller always
 *   receives a renderable outcome.
 */

package domain

// Severity classifies a deposit outcome for display. Warning only appears
// while a submission has been accepted but no terminal status is known yet,
// or as the final state when the polling schedule is exhausted unresolved.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityDanger  Severity = "danger"
)

// Submission-phase statuses returned by POST /deposits.
const (
	SubmitStatusAccepted         = "ACCEPTED"
	SubmitStatusRejected         = "REJECTED"
	SubmitStatusDuplicateIgnored = "DUPLICATE_IGNORED"
)

// Poll-phase statuses returned by GET /deposits/{depositId}.
const (
	PollStatusCompleted = "COMPLETED"
	PollStatusSubmitted = "SUBMITTED"
	PollStatusFailed    = "FAILED"
	PollStatusEnqueued  = "ENQUEUED"
)

// Display messages for the closed set of outcomes.
const (
	MessageSubmitted = "Deposit request sent successfully"
	MessageDuplicate = "Duplicate request"
	MessageUnknown   = "Unknown error"
	MessageCompleted = "Deposit request completed successfully"
	MessageTimeout   = "Transaction Timeout or Unknown Error"
	MessageEnqueued  = "Transaction enqueued request"
)

// Outcome pairs a severity with its user-facing message.
type Outcome struct {
	Severity Severity
	Message  string
}

// Terminal reports whether no further polling should happen after this
// outcome. Warning is the only non-terminal classification.
func (o Outcome) Terminal() bool {
	return o.Severity == SeveritySuccess || o.Severity == SeverityDanger
}

// MapSubmitStatus classifies a submission-phase status. ACCEPTED counts as
// success of the submission itself; whether the payment went through is only
// known after reconciliation.
func MapSubmitStatus(status, rejectionCode string) Outcome {
	switch status {
	case SubmitStatusAccepted:
		return Outcome{Severity: SeveritySuccess, Message: MessageSubmitted}
	case SubmitStatusRejected:
		return Outcome{Severity: SeverityDanger, Message: rejectionCode}
	case SubmitStatusDuplicateIgnored:
		return Outcome{Severity: SeverityDanger, Message: MessageDuplicate}
	default:
		return Outcome{Severity: SeverityDanger, Message: MessageUnknown}
	}
}

// MapPollStatus classifies a poll-phase status. ENQUEUED is treated as a
// terminal failure even though the name suggests the payment is still in
// flight; product has to confirm whether that is intended before it changes.
func MapPollStatus(status, failureMessage string) Outcome {
	switch status {
	case PollStatusCompleted:
		return Outcome{Severity: SeveritySuccess, Message: MessageCompleted}
	case PollStatusSubmitted:
		return Outcome{Severity: SeverityWarning, Message: MessageTimeout}
	case PollStatusFailed:
		return Outcome{Severity: SeverityDanger, Message: failureMessage}
	case PollStatusEnqueued:
		return Outcome{Severity: SeverityDanger, Message: MessageEnqueued}
	default:
		return Outcome{Severity: SeverityDanger, Message: MessageUnknown}
	}
}
