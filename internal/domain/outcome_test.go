package domain

import "testing"

func TestMapSubmitStatus(t *testing.T) {
	tests := []struct {
		name          string
		status        string
		rejectionCode string
		want          Outcome
	}{
		{
			name:   "accepted",
			status: "ACCEPTED",
			want:   Outcome{Severity: SeveritySuccess, Message: "Deposit request sent successfully"},
		},
		{
			name:          "rejected carries the rejection code",
			status:        "REJECTED",
			rejectionCode: "INSUFFICIENT_FUNDS",
			want:          Outcome{Severity: SeverityDanger, Message: "INSUFFICIENT_FUNDS"},
		},
		{
			name:   "duplicate ignored",
			status: "DUPLICATE_IGNORED",
			want:   Outcome{Severity: SeverityDanger, Message: "Duplicate request"},
		},
		{
			name:   "unrecognized status",
			status: "SOMETHING_NEW",
			want:   Outcome{Severity: SeverityDanger, Message: "Unknown error"},
		},
		{
			name:   "empty status",
			status: "",
			want:   Outcome{Severity: SeverityDanger, Message: "Unknown error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapSubmitStatus(tt.status, tt.rejectionCode)
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestMapPollStatus(t *testing.T) {
	tests := []struct {
		name           string
		status         string
		failureMessage string
		want           Outcome
	}{
		{
			name:   "completed",
			status: "COMPLETED",
			want:   Outcome{Severity: SeveritySuccess, Message: "Deposit request completed successfully"},
		},
		{
			name:   "submitted stays pending",
			status: "SUBMITTED",
			want:   Outcome{Severity: SeverityWarning, Message: "Transaction Timeout or Unknown Error"},
		},
		{
			name:           "failed carries the provider message",
			status:         "FAILED",
			failureMessage: "PAYER_LIMIT_REACHED",
			want:           Outcome{Severity: SeverityDanger, Message: "PAYER_LIMIT_REACHED"},
		},
		{
			name:   "enqueued is terminal danger",
			status: "ENQUEUED",
			want:   Outcome{Severity: SeverityDanger, Message: "Transaction enqueued request"},
		},
		{
			name:   "unrecognized status",
			status: "IN_REVIEW",
			want:   Outcome{Severity: SeverityDanger, Message: "Unknown error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapPollStatus(tt.status, tt.failureMessage)
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestOutcomeTerminal(t *testing.T) {
	if !(Outcome{Severity: SeveritySuccess}).Terminal() {
		t.Fatal("success must be terminal")
	}
	if !(Outcome{Severity: SeverityDanger}).Terminal() {
		t.Fatal("danger must be terminal")
	}
	if (Outcome{Severity: SeverityWarning}).Terminal() {
		t.Fatal("warning must not be terminal")
	}
}
