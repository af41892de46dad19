package risk

import (
	"fmt"
	"regexp"
	"strings"
)

// Severity bands theft by the Hong Kong dollar amount involved.
type Severity string

const (
	SeverityUnknown Severity = "unknown"
	SeverityPetty   Severity = "petty"   // under HK$100
	SeverityMinor   Severity = "minor"   // HK$100 to HK$5,000
	SeveritySerious Severity = "serious" // over HK$5,000
)

// SeverityAssessment is the banding of a theft plus the circumstances
// that push the sentence up or down.
type SeverityAssessment struct {
	Amount         int64
	HasAmount      bool
	Severity       Severity
	Category       string
	Considerations []string
	Aggravating    []string
	Mitigating     []string
	Advice         []string
}

var (
	severityWeaponPattern = regexp.MustCompile(`(?i)\b(?:weapon|knife|gun|force|threat|violence)`)
	nightPattern          = regexp.MustCompile(`(?i)\b(?:night|darkness|evening)`)
	breakInPattern        = regexp.MustCompile(`(?i)\b(?:break|broke|enter|trespass)`)
	admissionPattern      = regexp.MustCompile(`(?i)\b(?:admit|confess|remorse|sorry)`)
	cleanRecordPattern    = regexp.MustCompile(`(?i)\b(?:first.{0,10}offence|first.{0,10}offense|no.{0,10}prior|clean record)`)
	returnedPattern       = regexp.MustCompile(`(?i)\b(?:return|give.{0,10}back|restore)`)
)

// AssessTheftSeverity bands a theft by amount and collects aggravating
// and mitigating circumstances from the account.
func AssessTheftSeverity(text string, amount int64, hasAmount bool) SeverityAssessment {
	a := SeverityAssessment{
		Amount:    amount,
		HasAmount: hasAmount,
		Severity:  SeverityUnknown,
	}

	if hasAmount {
		switch {
		case amount < 100:
			a.Severity = SeverityPetty
			a.Category = "Petty Theft"
			a.Considerations = append(a.Considerations,
				fmt.Sprintf("Low value amount (HK$%d)", amount),
				"Prosecution may exercise discretion for trivial amounts")
			a.Mitigating = append(a.Mitigating, "Minimal financial loss")
			a.Advice = append(a.Advice,
				"Return the item immediately if possible",
				"First-time offenders may receive a caution instead of prosecution")
		case amount < 5000:
			a.Severity = SeverityMinor
			a.Category = "Minor Theft"
			a.Considerations = append(a.Considerations,
				fmt.Sprintf("Moderate value amount (HK$%d)", amount),
				"Likely to result in prosecution if reported")
			a.Mitigating = append(a.Mitigating, "Relatively low value")
			a.Advice = append(a.Advice,
				"Seek legal counsel immediately",
				"Consider restitution as mitigation")
		default:
			a.Severity = SeveritySerious
			a.Category = "Serious Theft"
			a.Considerations = append(a.Considerations,
				fmt.Sprintf("High value amount (HK$%s)", groupDigits(amount)),
				"Prosecution is highly likely",
				"May face custodial sentence if convicted")
			a.Advice = append(a.Advice,
				"Engage a qualified criminal defense lawyer immediately",
				"Do not make any statements without legal representation")
		}
	}

	if severityWeaponPattern.MatchString(text) {
		a.Aggravating = append(a.Aggravating, "Use of weapons/force (may constitute robbery, not theft)")
	}
	if nightPattern.MatchString(text) {
		a.Aggravating = append(a.Aggravating, "Committed at night")
	}
	if breakInPattern.MatchString(text) {
		a.Aggravating = append(a.Aggravating, "Involved breaking and entering (may constitute burglary)")
	}

	if admissionPattern.MatchString(text) {
		a.Mitigating = append(a.Mitigating, "Admission/confession")
	}
	if cleanRecordPattern.MatchString(text) {
		a.Mitigating = append(a.Mitigating, "No prior criminal record")
	}
	if returnedPattern.MatchString(text) {
		a.Mitigating = append(a.Mitigating, "Attempted to return items")
	}

	return a
}

// groupDigits inserts thousands separators, e.g. 500000 -> "500,000".
func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
