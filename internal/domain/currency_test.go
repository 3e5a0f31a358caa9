package domain

import "testing"

func TestResolveCurrency_KnownCountries(t *testing.T) {
	tests := []struct {
		country  string
		currency string
	}{
		{"BEN", "XOF"},
		{"CMR", "XAF"},
		{"CIV", "XOF"},
		{"COD", "CDF"},
		{"GHA", "GHS"},
		{"KEN", "KES"},
		{"MWI", "MWK"},
		{"RWA", "RWF"},
		{"SEN", "XOF"},
		{"TZA", "TZS"},
		{"UGA", "UGX"},
		{"ZMB", "ZMW"},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			// Resolved twice: the table is immutable and the lookup deterministic.
			for i := 0; i < 2; i++ {
				currency, ok := ResolveCurrency(tt.country)
				if !ok {
					t.Fatalf("expected %s to resolve", tt.country)
				}
				if currency != tt.currency {
					t.Fatalf("expected %s for %s, got %s", tt.currency, tt.country, currency)
				}
			}
		})
	}
}

func TestResolveCurrency_UnknownCountry(t *testing.T) {
	for _, country := range []string{"", "USA", "zmb", "XYZ"} {
		currency, ok := ResolveCurrency(country)
		if ok {
			t.Fatalf("expected %q to be unresolved", country)
		}
		if currency != "" {
			t.Fatalf("expected empty currency for %q, got %s", country, currency)
		}
	}
}

func TestCountries_CoversFullTableSorted(t *testing.T) {
	options := Countries()
	if len(options) != 12 {
		t.Fatalf("expected 12 countries, got %d", len(options))
	}
	for i := 1; i < len(options); i++ {
		if options[i-1].Code >= options[i].Code {
			t.Fatalf("expected sorted country codes, got %s before %s", options[i-1].Code, options[i].Code)
		}
	}
	for _, option := range options {
		currency, ok := ResolveCurrency(option.Code)
		if !ok || currency != option.Currency {
			t.Fatalf("country %s option currency %s disagrees with resolver %s", option.Code, option.Currency, currency)
		}
		if len(option.Correspondents) == 0 {
			t.Fatalf("expected at least one correspondent for %s", option.Code)
		}
	}
}
