/**
 * @description
 * This file holds the static market data for the deposit-service: the
 * country-to-settlement-currency table and the catalog of mobile network
 * operators (correspondents) available per country. Both tables are
 * read-only and safe for unsynchronized concurrent reads.
 *
 * @notes
 * - Country codes are ISO 3166-1 alpha-3, currency codes ISO 4217.
 * - Correspondent identifiers follow pawaPay's correspondent naming.
 */

package domain

import "sort"

// currencyByCountry maps each supported country to its settlement currency.
var currencyByCountry = map[string]string{
	"BEN": "XOF",
	"CMR": "XAF",
	"CIV": "XOF",
	"COD": "CDF",
	"GHA": "GHS",
	"KEN": "KES",
	"MWI": "MWK",
	"RWA": "RWF",
	"SEN": "XOF",
	"TZA": "TZS",
	"UGA": "UGX",
	"ZMB": "ZMW",
}

// correspondentsByCountry lists the mobile network operators that can act as
// the payment intermediary in each supported country.
var correspondentsByCountry = map[string][]string{
	"BEN": {"MTN_MOMO_BEN", "MOOV_BEN"},
	"CMR": {"MTN_MOMO_CMR", "ORANGE_CMR"},
	"CIV": {"MTN_MOMO_CIV", "ORANGE_CIV"},
	"COD": {"VODACOM_MPESA_COD", "AIRTEL_COD", "ORANGE_COD"},
	"GHA": {"MTN_MOMO_GHA", "AIRTELTIGO_GHA", "VODAFONE_GHA"},
	"KEN": {"MPESA_KEN"},
	"MWI": {"AIRTEL_MWI", "TNM_MWI"},
	"RWA": {"MTN_MOMO_RWA", "AIRTEL_RWA"},
	"SEN": {"FREE_SEN", "ORANGE_SEN", "EXPRESSO_SEN"},
	"TZA": {"VODACOM_TZA", "TIGO_TZA", "HALOTEL_TZA", "AIRTEL_TZA"},
	"UGA": {"MTN_MOMO_UGA", "AIRTEL_OAPI_UGA"},
	"ZMB": {"MTN_MOMO_ZMB", "AIRTEL_OAPI_ZMB", "ZAMTEL_ZMB"},
}

// ResolveCurrency returns the settlement currency for a country code. The
// second return value is false when the country is not supported; callers
// decide whether an unresolved currency is fatal.
func ResolveCurrency(country string) (string, bool) {
	currency, ok := currencyByCountry[country]
	return currency, ok
}

// CountryOption describes one supported country for UI consumption.
type CountryOption struct {
	Code           string
	Currency       string
	Correspondents []string
}

// Countries returns the supported countries sorted by code.
func Countries() []CountryOption {
	options := make([]CountryOption, 0, len(currencyByCountry))
	for code, currency := range currencyByCountry {
		options = append(options, CountryOption{
			Code:           code,
			Currency:       currency,
			Correspondents: correspondentsByCountry[code],
		})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Code < options[j].Code })
	return options
}
