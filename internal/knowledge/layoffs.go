package knowledge

import (
	"strings"

	"github.com/jonathan/career-analyzer/internal/patterns"
)

// Layoff window covered by the company set below. Tenure at one of
// these companies ending inside the window is treated as a layoff
// rather than a voluntary short stint.
const (
	LayoffWindowStart = 2022
	LayoffWindowEnd   = 2024
)

// layoffCompanies lists companies with publicly documented mass layoffs
// in the 2022-2024 window, global tech plus Brazilian tech.
var layoffCompanies = map[string]bool{
	"meta":            true,
	"facebook":        true,
	"amazon":          true,
	"google":          true,
	"alphabet":        true,
	"microsoft":       true,
	"twitter":         true,
	"x corp":          true,
	"salesforce":      true,
	"snap":            true,
	"snapchat":        true,
	"shopify":         true,
	"stripe":          true,
	"coinbase":        true,
	"robinhood":       true,
	"peloton":         true,
	"netflix":         true,
	"intel":           true,
	"cisco":           true,
	"dell":            true,
	"hp":              true,
	"ibm":             true,
	"oracle":          true,
	"paypal":          true,
	"ebay":            true,
	"linkedin":        true,
	"lyft":            true,
	"uber":            true,
	"airbnb":          true,
	"doordash":        true,
	"instacart":       true,
	"spotify":         true,
	"zoom":            true,
	"docusign":        true,
	"twilio":          true,
	"datadog":         true,
	"mongodb":         true,
	"cloudflare":      true,
	"snowflake":       true,
	"palantir":        true,
	"unity":           true,
	"roblox":          true,
	"dropbox":         true,
	"box":             true,
	"asana":           true,
	"notion":          true,
	"figma":           true,
	"canva":           true,
	"airtable":        true,
	"hubspot":         true,
	"zendesk":         true,
	"atlassian":       true,
	"github":          true,
	"nubank":          true,
	"ifood":           true,
	"99":              true,
	"quinto andar":    true,
	"quintoandar":     true,
	"loft":            true,
	"creditas":        true,
	"ebanx":           true,
	"stone":           true,
	"pagseguro":       true,
	"mercado livre":   true,
	"magazineluiza":   true,
	"americanas":      true,
	"vtex":            true,
	"gympass":         true,
	"wellhub":         true,
	"loggi":           true,
	"madeira madeira": true,
}

// IsLayoffCompany reports whether the company name matches the layoff
// set, either exactly or as a whole word inside a longer name such as
// "Google Brasil". Whole-word matching keeps "box" from matching
// "Dropbox".
func IsLayoffCompany(company string) bool {
	name := strings.ToLower(strings.TrimSpace(company))
	if name == "" {
		return false
	}
	if layoffCompanies[name] {
		return true
	}
	for _, word := range strings.FieldsFunc(name, func(r rune) bool {
		return r == ' ' || r == ',' || r == '(' || r == ')' || r == '-' || r == '/'
	}) {
		if layoffCompanies[word] {
			return true
		}
	}
	// Multi-word entries like "mercado livre" inside "Mercado Livre Brasil".
	for key := range layoffCompanies {
		if strings.Contains(key, " ") && patterns.ContainsWord(name, key) {
			return true
		}
	}
	return false
}

// InLayoffWindow reports whether an end year falls inside the tracked
// layoff window.
func InLayoffWindow(endYear int) bool {
	return endYear >= LayoffWindowStart && endYear <= LayoffWindowEnd
}
