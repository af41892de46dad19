// Package risk estimates prosecution likelihood, sentence ranges, and
// case outcomes for Hong Kong criminal offences. Base rates come from
// statutory tables; where the precedent corpus has sentencing data for
// an offence, the prediction is grounded on it instead.
package risk

import (
	"fmt"
	"strings"

	"github.com/openlaw-hk/counsel/pkg/counsel/store"
)

// Adjustment records one factor that moved an estimate, with the delta
// it applied.
type Adjustment struct {
	Delta  string
	Reason string
}

// Prosecution is the likelihood of being charged.
type Prosecution struct {
	Likelihood  int
	Category    string
	BaseRate    int
	Adjustments []Adjustment
}

// SentencePrediction is the expected custodial range in months.
type SentencePrediction struct {
	LowMonths     int
	TypicalMonths int
	HighMonths    int
	FineRange     string
	FineOnly      bool
	Confidence    int
	Basis         string
	Adjustments   []string
}

// Outcomes holds the probability of each disposal.
type Outcomes struct {
	ConvictionLikelihood int
	CustodialSentence    int
	NonCustodial         int
	AppealSuccessRate    int
}

// Level grades the overall exposure.
type Level string

const (
	LevelLow      Level = "LOW"
	LevelModerate Level = "MODERATE"
	LevelHigh     Level = "HIGH"
	LevelVeryHigh Level = "VERY HIGH"
)

// Overall combines the component estimates into one grade.
type Overall struct {
	Level Level
	Score int
}

// Assessment is the full risk picture for one consultation.
type Assessment struct {
	OffenceType string
	Factors     Factors
	Severity    SeverityAssessment
	Prosecution Prosecution
	Sentence    SentencePrediction
	Outcomes    Outcomes
	Overall     Overall
}

// Assessor produces risk assessments, blending statutory tables with
// precedent analytics.
type Assessor struct {
	analytics   *Analytics
	prosecution map[string]int
	statutory   map[string]StatutoryPenalty
}

// Option adjusts an Assessor.
type Option func(*Assessor)

// WithProsecutionRates overlays base prosecution rates per offence type.
func WithProsecutionRates(rates map[string]int) Option {
	return func(a *Assessor) {
		for k, v := range rates {
			a.prosecution[k] = v
		}
	}
}

// WithStatutoryPenalties overlays statutory penalty entries per offence
// type.
func WithStatutoryPenalties(penalties map[string]StatutoryPenalty) Option {
	return func(a *Assessor) {
		for k, v := range penalties {
			a.statutory[k] = v
		}
	}
}

// NewAssessor builds an assessor over the case corpus. A nil or empty
// corpus falls back to statutory tables alone.
func NewAssessor(cases []store.Case, opts ...Option) *Assessor {
	a := &Assessor{
		analytics:   NewAnalytics(cases),
		prosecution: make(map[string]int, len(prosecutionRates)),
		statutory:   make(map[string]StatutoryPenalty, len(statutoryPenalties)),
	}
	for k, v := range prosecutionRates {
		a.prosecution[k] = v
	}
	for k, v := range statutoryPenalties {
		a.statutory[k] = v
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analytics exposes the underlying corpus analytics.
func (a *Assessor) Analytics() *Analytics { return a.analytics }

// ProsecutionLikelihood estimates the chance of being charged, starting
// from the base rate for the offence and adjusting for the factors.
func (a *Assessor) ProsecutionLikelihood(offenceType string, f Factors) Prosecution {
	base, ok := a.prosecution[offenceType]
	if !ok {
		base = defaultProsecutionRate
	}

	likelihood := base
	var adjustments []Adjustment
	adjust := func(delta int, reason string) {
		likelihood += delta
		adjustments = append(adjustments, Adjustment{
			Delta:  fmt.Sprintf("%+d%%", delta),
			Reason: reason,
		})
	}

	if f.CCTVEvidence {
		adjust(15, "CCTV evidence available")
	}
	if f.CaughtRedHanded {
		adjust(20, "Caught in the act")
	}
	if f.WitnessTestimony {
		adjust(10, "Witness testimony")
	}
	if f.Confession {
		adjust(5, "Confession obtained")
	}
	if f.PriorConviction {
		adjust(10, "Prior criminal conviction")
	}
	if f.FirstOffence {
		adjust(-10, "First offence")
	}
	if f.VictimComplaint {
		adjust(15, "Victim filed complaint")
	}
	if f.NoVictimComplaint {
		adjust(-20, "No victim complaint")
	}
	if f.HighValue {
		adjust(15, "High value involved")
	}
	if f.LowValue {
		adjust(-15, "Low value (petty offence)")
	}
	if f.Restitution {
		adjust(-10, "Restitution made to victim")
	}

	likelihood = clamp(likelihood, 5, 99)

	return Prosecution{
		Likelihood:  likelihood,
		Category:    likelihoodCategory(likelihood),
		BaseRate:    base,
		Adjustments: adjustments,
	}
}

// PredictSentence estimates the custodial range. Precedent keywords are
// looked up first; the statutory table is the fallback.
func (a *Assessor) PredictSentence(offenceType string, f Factors, keywords []string) SentencePrediction {
	statutory, ok := a.statutory[offenceType]
	if !ok {
		statutory = defaultStatutoryPenalty
	}

	if statutory.FineOnly {
		return SentencePrediction{
			FineRange:   statutory.FineRange,
			FineOnly:    true,
			Confidence:  95,
			Basis:       fmt.Sprintf("Fixed penalty offence under Hong Kong law (HK$%s)", statutory.FineRange),
			Adjustments: []string{"Fine-only offence, no imprisonment"},
		}
	}

	var (
		low, typical, high int
		confidence         int
		basis              string
	)
	if r, found := a.analytics.SentenceRangeFor(keywords); found {
		low, typical, high = r.LowMonths, r.TypicalMonths, r.HighMonths
		confidence = r.Confidence
		basis = fmt.Sprintf("Based on %d comparable cases in the corpus", r.BasedOnCases)
	} else {
		low = statutory.TypicalLow
		high = statutory.TypicalHigh
		typical = (low + high) / 2
		confidence = 50
		basis = "Based on statutory penalties and general sentencing guidelines"
	}

	multiplier := 1.0
	var adjustments []string
	apply := func(m float64, note string) {
		multiplier *= m
		adjustments = append(adjustments, note)
	}

	if f.Weapon {
		apply(1.5, "Weapon used (+50%)")
	}
	if f.Violence {
		apply(1.3, "Violence involved (+30%)")
	}
	if f.PriorConviction {
		apply(1.3, "Prior conviction (+30%)")
	}
	if f.Planning {
		apply(1.2, "Premeditation (+20%)")
	}
	if f.VulnerableVictim {
		apply(1.3, "Vulnerable victim (+30%)")
	}
	if f.GuiltyPlea {
		apply(0.67, "Guilty plea (-33% discount)")
	}
	if f.Remorse {
		apply(0.9, "Genuine remorse (-10%)")
	}
	if f.FirstOffence {
		apply(0.85, "First offence (-15%)")
	}
	if f.Restitution {
		apply(0.85, "Restitution made (-15%)")
	}

	return SentencePrediction{
		LowMonths:     int(float64(low) * multiplier),
		TypicalMonths: int(float64(typical) * multiplier),
		HighMonths:    int(float64(high) * multiplier),
		Confidence:    confidence,
		Basis:         basis,
		Adjustments:   adjustments,
	}
}

// PredictOutcomes estimates conviction and custody probabilities.
func (a *Assessor) PredictOutcomes(offenceType string, f Factors) Outcomes {
	conviction, ok := convictionRates[offenceType]
	if !ok {
		conviction = defaultConvictionRate
	}
	if f.StrongEvidence() {
		conviction = min(95, conviction+15)
	}
	if f.WeakEvidence() {
		conviction = max(30, conviction-20)
	}

	custodial, ok := custodialRates[offenceType]
	if !ok {
		custodial = defaultCustodialRate
	}
	if f.PriorConviction {
		custodial += 20
	}
	if f.FirstOffence {
		custodial -= 15
	}
	if f.GuiltyPlea {
		custodial -= 10
	}
	custodial = clamp(custodial, 5, 99)

	return Outcomes{
		ConvictionLikelihood: conviction,
		CustodialSentence:    custodial,
		NonCustodial:         100 - custodial,
		AppealSuccessRate:    int(a.analytics.AppealSuccessRate() + 0.5),
	}
}

// Assess runs the complete assessment over a free-text account. The
// amount comes from the extractor; defaultOffence is used when the text
// does not identify a more specific offence type.
func (a *Assessor) Assess(text string, amount int64, hasAmount bool, defaultOffence string) Assessment {
	f := DetectFactors(text, amount, hasAmount)
	severity := AssessTheftSeverity(text, amount, hasAmount)

	offenceType := DetectOffenceType(text, defaultOffence)
	if offenceType == "theft" {
		switch severity.Severity {
		case SeverityPetty:
			offenceType = "petty_theft"
		case SeverityMinor:
			offenceType = "minor_theft"
		case SeveritySerious:
			offenceType = "serious_theft"
		}
	}

	keywords := precedentKeywords(text)
	prosecution := a.ProsecutionLikelihood(offenceType, f)
	sentence := a.PredictSentence(offenceType, f, keywords)
	outcomes := a.PredictOutcomes(offenceType, f)

	return Assessment{
		OffenceType: offenceType,
		Factors:     f,
		Severity:    severity,
		Prosecution: prosecution,
		Sentence:    sentence,
		Outcomes:    outcomes,
		Overall:     overallRisk(prosecution, outcomes),
	}
}

// DetectOffenceType classifies the account into an offence type key,
// falling back to the given default.
func DetectOffenceType(text, defaultType string) string {
	lower := strings.ToLower(text)
	contains := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(lower, s) {
				return true
			}
		}
		return false
	}

	switch {
	case contains("smok", "cigarette", "cigar", "tobacco", "vap"):
		return "smoking"
	case contains("litter", "throw trash", "threw rubbish"):
		return "littering"
	case contains("spit"):
		return "spitting"
	case contains("noise", "loud music", "noisy"):
		return "noise"
	}

	if contains("kill", "harm", "abuse", "torture", "hurt", "beat") &&
		contains("cat", "dog", "animal", "pet", "puppy", "kitten") {
		return "animal_cruelty"
	}
	if contains("murder") || (contains("kill") && contains("person", "man", "woman", "someone", "people")) {
		return "murder"
	}
	if contains("rob") && contains("force", "threat", "weapon") {
		return "robbery"
	}
	if contains("burgl", "break in", "broke in") {
		return "burglary"
	}
	if contains("drug") && contains("trafficking", "dealing", "distribute", "sell") {
		return "drug_trafficking"
	}
	return defaultType
}

// precedentKeywords picks corpus lookup keywords out of the account.
func precedentKeywords(text string) []string {
	lower := strings.ToLower(text)
	var kws []string
	if strings.Contains(lower, "drug") {
		kws = append(kws, "drug")
	}
	if strings.Contains(lower, "trafficking") || strings.Contains(lower, "distribute") {
		kws = append(kws, "trafficking")
	}
	if strings.Contains(lower, "rob") {
		kws = append(kws, "robbery")
	}
	if strings.Contains(lower, "theft") || strings.Contains(lower, "stole") || strings.Contains(lower, "steal") {
		kws = append(kws, "theft")
	}
	if strings.Contains(lower, "assault") || strings.Contains(lower, "attack") {
		kws = append(kws, "assault")
	}
	return kws
}

func overallRisk(p Prosecution, o Outcomes) Overall {
	score := int(float64(p.Likelihood)*0.3 +
		float64(o.ConvictionLikelihood)*0.3 +
		float64(o.CustodialSentence)*0.4 + 0.5)

	var level Level
	switch {
	case score > 80:
		level = LevelVeryHigh
	case score > 60:
		level = LevelHigh
	case score > 40:
		level = LevelModerate
	default:
		level = LevelLow
	}
	return Overall{Level: level, Score: score}
}

func likelihoodCategory(pct int) string {
	switch {
	case pct > 80:
		return "Very Likely"
	case pct > 60:
		return "Likely"
	case pct > 40:
		return "Possible"
	case pct > 20:
		return "Unlikely"
	default:
		return "Very Unlikely"
	}
}

// FormatMonths renders a custodial term for humans.
func FormatMonths(months int) string {
	switch {
	case months == 0:
		return "Fine only (no prison)"
	case months >= lifeMonths:
		return "Life imprisonment"
	case months >= 12 && months%12 == 0:
		years := months / 12
		if years == 1 {
			return "1 year"
		}
		return fmt.Sprintf("%d years", years)
	case months >= 12:
		return fmt.Sprintf("%.1f years", float64(months)/12)
	default:
		return fmt.Sprintf("%d months", months)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
