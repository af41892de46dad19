package extract

// Lexicon maps surface keywords in a scenario description onto the
// canonical fact vocabulary consumed by the inference engine, and onto
// offence categories for issue spotting. Keyword matching is substring
// based over the lowercased text; stems like "appropriat" deliberately
// cover several inflections.
type Lexicon struct {
	// FactTriggers maps a canonical fact to the keywords that assert it.
	FactTriggers map[string][]string
	// CategoryKeywords maps an offence category to its indicator words.
	CategoryKeywords map[string][]string
	// Issues maps an offence category to the legal questions it raises.
	Issues map[string][]string
}

// DefaultLexicon returns the built-in keyword tables for Hong Kong
// criminal scenarios.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		FactTriggers: map[string][]string{
			// Actions.
			"appropriates_property":     {"took", "taken", "steal", "stole", "stolen", "appropriat", "shoplifting", "without paying"},
			"uses_force_or_threat":      {"threaten", "force", "violence", "weapon", "knife", "gun", "scared", "fear"},
			"enters_building":           {"enter", "break in", "broke in", "trespass"},
			"causes_actual_bodily_harm": {"injur", "bruise", "bleeding", "pain", "hospital"},
			"unlawfully_wounds_or_causes_gbh": {"serious injur", "severe harm", "fracture", "permanent", "surgery", "grievous"},
			"in_public_place":           {"public", "street", "park", "beach", "sidewalk", "pavement", "outdoor", "plaza"},
			"disposes_of_litter":        {"litter", "threw", "dropped", "dumped", "discarded"},
			"makes_false_representation": {"false representation", "lied", "pretended", "scam", "mislead", "impersonat"},
			"possesses_dangerous_drugs": {"cocaine", "heroin", "methamphetamine", "cannabis", "ketamine", "dangerous drugs"},

			// Circumstances.
			"property_belongs_to_another": {"belong to", "owned by", "property of", "not his", "not hers", "someone else"},
			"victim_does_not_consent":     {"no consent", "refused", "said no", "unwilling", "against will"},
			"acts_unlawfully":             {"unlawful", "illegal", "without authority"},
			"as_trespasser":               {"trespass", "not allowed", "uninvited"},
			"force_immediately_before_or_during_theft": {"during the robbery", "while stealing", "demanded", "at knifepoint", "at gunpoint"},

			// Mental elements.
			"acts_dishonestly":              {"dishonest", "without permission", "without consent", "secretly", "deceit", "cheat"},
			"intent_to_permanently_deprive": {"keep", "permanently", "never return", "sell it", "steal"},
			"acts_maliciously":              {"malicious", "deliberate", "intentional"},
			"acts_recklessly":               {"reckless", "careless", "disregard"},
			"intent_to_defraud":             {"defraud", "fraud", "scam", "cheat"},
		},
		CategoryKeywords: map[string][]string{
			"theft":           {"took", "steal", "stole", "stolen", "appropriat", "without paying", "shoplifting"},
			"robbery":         {"rob", "force", "threat", "weapon", "knife", "gun", "demanded"},
			"assault":         {"punch", "hit", "struck", "attack", "beat", "assault", "injur", "harm"},
			"homicide":        {"kill", "murder", "stab", "shot", "death", "died", "fatal"},
			"drugs":           {"drug", "cocaine", "heroin", "methamphetamine", "cannabis", "possess", "trafficking"},
			"fraud":           {"fraud", "deceit", "false representation", "scam", "cheat", "mislead"},
			"property_damage": {"damage", "destroy", "vandal", "arson", "fire", "burn"},
			"burglary":        {"burgl", "break", "enter", "trespass", "residence"},
			"public_order":    {"litter", "spit", "noise", "loud", "nuisance", "disturbance"},
		},
		Issues: map[string][]string{
			"theft": {
				"Was there dishonest appropriation of property?",
				"Did the property belong to another?",
				"Was there intent to permanently deprive?",
			},
			"robbery": {
				"Was force or threat of force used?",
				"Was the force used immediately before or during the theft?",
				"Does this constitute robbery under s. 10 Cap. 210?",
			},
			"assault": {
				"What level of harm was caused?",
				"Was there intent to cause harm?",
				"Was the assault lawful, for example self-defense?",
			},
			"homicide": {
				"Was the killing unlawful?",
				"Was there malice aforethought?",
				"Are there partial defenses such as provocation or diminished responsibility?",
			},
			"drugs": {
				"Was the defendant in possession of dangerous drugs?",
				"Did the defendant know the substance was a drug?",
				"Was there intent to supply or traffic?",
			},
			"fraud": {
				"Was there a false representation?",
				"Did the defendant act dishonestly?",
				"Was there intent to gain or to cause loss?",
			},
			"burglary": {
				"Did the defendant enter as a trespasser?",
				"Was there intent to steal or cause harm on entry?",
			},
			"property_damage": {
				"Was property destroyed or damaged without lawful excuse?",
				"Was the damage intentional or reckless?",
			},
			"public_order": {
				"Did the act occur in a public place?",
				"Were there health or safety implications?",
			},
		},
	}
}
