package plan

import "regexp"

// RedactedToken replaces scrubbed dollar amounts.
const RedactedToken = "[redacted]"

// moneyPattern matches money-like substrings: an optional dollar sign,
// digits with optional thousands separators, and optional two-decimal
// cents. Bare integers without a $, separators, or cents are left alone
// so day counts and form numbers survive.
var moneyPattern = regexp.MustCompile(
	`\$\d+(?:,\d{3})*(?:\.\d{2})?|\b\d{1,3}(?:,\d{3})+(?:\.\d{2})?\b|\b\d+\.\d{2}\b`)

// RedactAmounts replaces embedded dollar amounts with RedactedToken.
// Applied selectively to monetary item details, never to titles.
func RedactAmounts(s string) string {
	return moneyPattern.ReplaceAllString(s, RedactedToken)
}
