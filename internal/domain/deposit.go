/**
 * @description
 * This file defines the core domain models for the deposit-service: the raw
 * form input, the canonical immutable deposit request sent to pawaPay, and
 * the render model returned to the web layer after reconciliation.
 *
 * @notes
 * - The deposit identifier doubles as the idempotency key. It is generated
 *   exactly once, at construction, and is reused for every status lookup so
 *   the gateway recognizes repeated submissions as duplicates instead of
 *   creating parallel payments.
 * - Amounts are carried as exact strings end to end; parsing them into
 *   floats would introduce rounding the provider does not tolerate.
 */

package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PayerTypeMSISDN is the only payer descriptor kind the deposit flow uses.
const PayerTypeMSISDN = "MSISDN"

// StatementDescriptionLimit is the provider-imposed maximum length of the
// free-text narrative attached to a deposit.
const StatementDescriptionLimit = 22

// DepositInput carries the raw form fields handed over by the web layer.
type DepositInput struct {
	Msisdn               string
	Amount               string
	Description          string
	Country              string
	Correspondent        string // operator selected via the MNO_<country> field
	PreAuthorisationCode string
}

// Address wraps the payer's mobile subscriber number.
type Address struct {
	Value string `json:"value"`
}

// Payer is the typed payer descriptor required by the gateway.
type Payer struct {
	Type    string  `json:"type"`
	Address Address `json:"address"`
}

// Deposit is the canonical payment request. Every field is fixed at
// construction; nothing mutates it afterwards.
type Deposit struct {
	DepositID            string // UUIDv4, 36 characters
	Amount               string
	Currency             string // empty when the country is unrecognized
	Country              string
	Correspondent        string
	Payer                Payer
	CustomerTimestamp    string // RFC3339 with offset
	StatementDescription string // at most StatementDescriptionLimit characters
	PreAuthorisationCode string
}

// ValidationError aggregates every missing required field into one message
// instead of failing on the first.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Please complete %s fields", strings.Join(e.Fields, ", "))
}

// BuildDeposit validates the raw input and constructs the canonical deposit
// request. The deposit is built even when required fields are missing — the
// caller decides whether to proceed despite the validation error, matching
// the existing product behavior. An unrecognized country leaves the currency
// empty rather than failing.
func BuildDeposit(input DepositInput) (*Deposit, *ValidationError) {
	var missing []string
	if input.Msisdn == "" {
		missing = append(missing, "MSISDN")
	}
	if input.Amount == "" {
		missing = append(missing, "Amount")
	}
	if input.Description == "" {
		missing = append(missing, "StatementDescription")
	}
	if input.Country == "" {
		missing = append(missing, "Country")
	}

	currency, _ := ResolveCurrency(input.Country)

	deposit := &Deposit{
		DepositID:     uuid.NewString(),
		Amount:        input.Amount,
		Currency:      currency,
		Country:       input.Country,
		Correspondent: input.Correspondent,
		Payer: Payer{
			Type:    PayerTypeMSISDN,
			Address: Address{Value: input.Msisdn},
		},
		CustomerTimestamp:    time.Now().Format(time.RFC3339),
		StatementDescription: input.Description,
		PreAuthorisationCode: input.PreAuthorisationCode,
	}

	if len(missing) > 0 {
		return deposit, &ValidationError{Fields: missing}
	}
	return deposit, nil
}

// PollAttempt records the outcome of one status poll so the reconciliation
// run's history — including swallowed gateway errors — stays visible.
type PollAttempt struct {
	Attempt   int
	RawStatus string
	Err       string
	Outcome   Outcome
}

// DepositResult is the render model handed back to the web layer. It echoes
// the submitted fields and always carries a defined severity and message,
// even when everything failed.
type DepositResult struct {
	Msisdn        string
	Amount        string
	Description   string
	Country       string
	Correspondent string
	ErrorMessage  string
	Status        Severity
	Message       string
	DepositID     string
	Attempts      []PollAttempt
}
