package risk

import (
	"regexp"
	"strings"
)

// Factors are the circumstances that move prosecution likelihood and
// sentence length away from the base rates.
type Factors struct {
	// Evidence
	CCTVEvidence     bool
	CaughtRedHanded  bool
	WitnessTestimony bool
	Confession       bool

	// Offender history
	PriorConviction bool
	FirstOffence    bool

	// Victim
	VictimComplaint   bool
	NoVictimComplaint bool

	// Value
	HighValue bool
	LowValue  bool

	// Aggravating
	Weapon           bool
	Violence         bool
	Planning         bool
	VulnerableVictim bool

	// Mitigating
	Remorse     bool
	GuiltyPlea  bool
	Restitution bool
}

// StrongEvidence reports two or more independent evidence sources.
func (f Factors) StrongEvidence() bool {
	return f.evidenceCount() >= 2
}

// WeakEvidence reports no evidence source at all.
func (f Factors) WeakEvidence() bool {
	return f.evidenceCount() == 0
}

func (f Factors) evidenceCount() int {
	n := 0
	for _, b := range []bool{f.CCTVEvidence, f.WitnessTestimony, f.Confession} {
		if b {
			n++
		}
	}
	return n
}

var (
	weaponPattern     = regexp.MustCompile(`weapon|knife|gun|firearm`)
	violencePattern   = regexp.MustCompile(`violence|assault|attack|injur|harm`)
	planningPattern   = regexp.MustCompile(`plan|premeditat|calculat`)
	vulnerablePattern = regexp.MustCompile(`elderly|child|vulnerable|disabled`)
)

// DetectFactors reads the circumstances out of a free-text account.
// hasAmount and amount come from the extractor; the value factors track
// the theft severity bands.
func DetectFactors(text string, amount int64, hasAmount bool) Factors {
	lower := strings.ToLower(text)
	contains := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(lower, s) {
				return true
			}
		}
		return false
	}

	f := Factors{
		CCTVEvidence:     contains("cctv", "camera"),
		CaughtRedHanded:  contains("caught in the act", "red-handed", "red handed"),
		WitnessTestimony: contains("witness", "saw"),
		Confession:       contains("admit", "confess"),

		PriorConviction: contains("prior", "previous", "convicted before"),
		FirstOffence:    contains("first time", "first offense", "first offence", "no prior"),

		VictimComplaint:   contains("complaint", "reported to police"),
		NoVictimComplaint: contains("no complaint", "did not report", "not reported"),

		Weapon:           weaponPattern.MatchString(lower),
		Violence:         violencePattern.MatchString(lower),
		Planning:         planningPattern.MatchString(lower),
		VulnerableVictim: vulnerablePattern.MatchString(lower),

		Remorse:     contains("remorse", "sorry", "regret"),
		GuiltyPlea:  contains("plead guilty", "guilty plea"),
		Restitution: contains("return", "restitution", "compensat"),
	}

	if hasAmount {
		if amount > 5000 {
			f.HighValue = true
		} else if amount < 100 {
			f.LowValue = true
		}
	}
	return f
}
