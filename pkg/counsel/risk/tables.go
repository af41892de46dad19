package risk

// prosecutionRates holds base prosecution likelihood percentages by
// offence type. Fixed-penalty regulatory offences sit at the bottom,
// offences against the person at the top.
var prosecutionRates = map[string]int{
	"smoking":   25,
	"littering": 20,
	"spitting":  15,
	"noise":     10,

	"animal_cruelty": 80,

	"petty_theft":   30,
	"minor_theft":   70,
	"serious_theft": 95,
	"shoplifting":   60,
	"burglary":      95,
	"robbery":       98,

	"assault_minor":   75,
	"assault_serious": 95,

	"drug_possession":  85,
	"drug_trafficking": 99,

	"fraud":        80,
	"sexual":       95,
	"murder":       99,
	"manslaughter": 98,
}

// defaultProsecutionRate applies to offence types without an entry.
const defaultProsecutionRate = 70

// StatutoryPenalty is the sentencing range an ordinance allows, in
// months of imprisonment. FineOnly offences carry no custodial term.
type StatutoryPenalty struct {
	MaxMonths     int
	TypicalLow    int
	TypicalHigh   int
	FineRange     string
	FineOnly      bool
	LifeMandatory bool
}

// lifeMonths stands in for an indeterminate life sentence.
const lifeMonths = 9999

var statutoryPenalties = map[string]StatutoryPenalty{
	"smoking":   {FineRange: "1,500-5,000", FineOnly: true},
	"littering": {FineRange: "1,500-25,000", FineOnly: true},
	"spitting":  {FineRange: "1,500-10,000", FineOnly: true},
	"noise":     {FineRange: "up to 10,000", FineOnly: true},

	"animal_cruelty": {MaxMonths: 36, TypicalLow: 3, TypicalHigh: 12, FineRange: "up to 200,000"},

	"theft":         {MaxMonths: 120, TypicalLow: 6, TypicalHigh: 24},
	"petty_theft":   {MaxMonths: 12, TypicalLow: 0, TypicalHigh: 3},
	"minor_theft":   {MaxMonths: 24, TypicalLow: 3, TypicalHigh: 12},
	"serious_theft": {MaxMonths: 120, TypicalLow: 12, TypicalHigh: 48},
	"robbery":       {MaxMonths: 168, TypicalLow: 36, TypicalHigh: 84},
	"burglary":      {MaxMonths: 168, TypicalLow: 24, TypicalHigh: 60},

	"assault_minor":   {MaxMonths: 36, TypicalLow: 3, TypicalHigh: 12},
	"assault_serious": {MaxMonths: 84, TypicalLow: 24, TypicalHigh: 60},

	"drug_trafficking": {MaxMonths: lifeMonths, TypicalLow: 60, TypicalHigh: 180},

	"fraud":  {MaxMonths: 168, TypicalLow: 12, TypicalHigh: 48},
	"murder": {MaxMonths: lifeMonths, LifeMandatory: true},
}

var defaultStatutoryPenalty = StatutoryPenalty{MaxMonths: 120, TypicalLow: 6, TypicalHigh: 36}

// convictionRates holds base conviction percentages if prosecuted.
var convictionRates = map[string]int{
	"smoking":        90,
	"littering":      85,
	"spitting":       80,
	"noise":          70,
	"animal_cruelty": 75,

	"petty_theft":   60,
	"minor_theft":   75,
	"serious_theft": 85,
	"robbery":       90,
	"burglary":      85,

	"drug_trafficking": 95,
	"assault_minor":    70,
	"assault_serious":  85,
	"fraud":            80,
	"murder":           90,
}

const defaultConvictionRate = 75

// custodialRates holds base custodial-sentence percentages on
// conviction. Fixed-penalty offences never imprison.
var custodialRates = map[string]int{
	"smoking":        0,
	"littering":      0,
	"spitting":       0,
	"noise":          0,
	"animal_cruelty": 40,

	"petty_theft":   10,
	"minor_theft":   30,
	"serious_theft": 70,
	"robbery":       90,
	"burglary":      75,

	"drug_trafficking": 95,
	"assault_minor":    40,
	"assault_serious":  80,
	"fraud":            50,
	"murder":           100,
}

const defaultCustodialRate = 50
