package assistant

import "strings"

// affirmations is the complete set of replies that confirm a proposal.
var affirmations = map[string]struct{}{
	"yes":       {},
	"y":         {},
	"sure":      {},
	"ok":        {},
	"okay":      {},
	"confirm":   {},
	"proceed":   {},
	"go ahead":  {},
	"do it":     {},
	"create it": {},
	"add it":    {},
	"yeah":      {},
	"yep":       {},
	"alright":   {},
}

// confirmationFingerprints are phrases every confirmation prompt contains.
var confirmationFingerprints = []string{
	"would you like me to",
	`reply "yes" to confirm`,
}

// IsAffirmation reports whether msg, trimmed and case-folded, is exactly one
// of the affirmation words.
func IsAffirmation(msg string) bool {
	_, ok := affirmations[strings.ToLower(strings.TrimSpace(msg))]
	return ok
}

// LooksLikeConfirmation reports whether an assistant reply asked the user to
// confirm something, either by wording or by carrying an envelope.
func LooksLikeConfirmation(text string) bool {
	lower := strings.ToLower(text)
	for _, f := range confirmationFingerprints {
		if strings.Contains(lower, f) {
			return true
		}
	}
	_, ok := FindEnvelope(text)
	return ok
}
