package rules

// DefaultBase returns the built-in Hong Kong criminal rulebase. It covers the
// core offence families (theft, violence, fraud, drugs, property damage,
// computer misuse, public order, child protection) plus the common-law and
// statutory defenses. Deployments extend or replace it via the YAML loader.
func DefaultBase() *Base {
	return NewBase(DefaultRules(), DefaultDefenses())
}

// DefaultRules returns the built-in offence rules in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:   "THEFT_001",
			Name: "Basic Theft",
			Kind: KindOffence,
			Conditions: []string{
				"appropriates_property",
				"property_belongs_to_another",
				"acts_dishonestly",
				"intent_to_permanently_deprive",
			},
			Conclusion:  "guilty_of_theft",
			Citation:    "Cap. 210, s. 2",
			Penalty:     "10 years imprisonment",
			Confidence:  1.0,
			Explanation: "All elements of theft are satisfied: dishonest appropriation of another's property with intent to permanently deprive.",
		},
		{
			ID:   "THEFT_002",
			Name: "Robbery",
			Kind: KindOffence,
			Conditions: []string{
				"guilty_of_theft",
				"uses_force_or_threat",
				"force_immediately_before_or_during_theft",
			},
			Conclusion:  "guilty_of_robbery",
			Citation:    "Cap. 200, s. 10",
			Penalty:     "14 years imprisonment",
			Confidence:  1.0,
			Explanation: "Theft combined with use of force or threat of force constitutes robbery.",
		},
		{
			ID:   "THEFT_003",
			Name: "Burglary",
			Kind: KindOffence,
			Conditions: []string{
				"enters_building",
				"as_trespasser",
				"intent_to_steal_or_assault_or_damage",
			},
			Conclusion:  "guilty_of_burglary",
			Citation:    "Cap. 200, s. 11",
			Penalty:     "14 years imprisonment",
			Confidence:  1.0,
			Explanation: "Entry into building as trespasser with criminal intent constitutes burglary.",
		},
		{
			ID:   "THEFT_004",
			Name: "Aggravated Burglary",
			Kind: KindOffence,
			Conditions: []string{
				"guilty_of_burglary",
				"has_weapon_or_explosive",
			},
			Conclusion:  "guilty_of_aggravated_burglary",
			Citation:    "Cap. 200, s. 12",
			Penalty:     "Life imprisonment",
			Confidence:  1.0,
			Explanation: "Burglary while carrying a weapon, firearm, or explosive is aggravated burglary.",
		},
		{
			ID:   "THEFT_005",
			Name: "Handling Stolen Goods",
			Kind: KindOffence,
			Conditions: []string{
				"receives_or_handles_goods",
				"knows_or_believes_goods_stolen",
				"acts_dishonestly",
			},
			Conclusion:  "guilty_of_handling_stolen_goods",
			Citation:    "Cap. 210, s. 18",
			Penalty:     "14 years imprisonment",
			Confidence:  1.0,
			Explanation: "Dishonestly receiving or handling goods knowing or believing them to be stolen.",
		},
		{
			ID:   "THEFT_006",
			Name: "Taking Conveyance Without Authority",
			Kind: KindOffence,
			Conditions: []string{
				"takes_vehicle",
				"without_owner_consent",
				"for_own_or_another_use",
			},
			Conclusion:  "guilty_of_taking_conveyance",
			Citation:    "Cap. 210, s. 23",
			Penalty:     "3 years imprisonment or fine",
			Confidence:  1.0,
			Explanation: "Taking a vehicle without consent of the owner.",
		},
		{
			ID:   "ASSAULT_001",
			Name: "Common Assault",
			Kind: KindOffence,
			Conditions: []string{
				"assaults_or_beats",
				"another_person",
				"unlawfully",
			},
			Conclusion:  "guilty_of_common_assault",
			Citation:    "Cap. 200, s. 40",
			Penalty:     "1 year imprisonment",
			Confidence:  1.0,
			Explanation: "Unlawful assault or battery of another person.",
		},
		{
			ID:   "ASSAULT_002",
			Name: "Assault Occasioning Actual Bodily Harm",
			Kind: KindOffence,
			Conditions: []string{
				"assaults_another_person",
				"causes_actual_bodily_harm",
			},
			Conclusion:  "guilty_of_assault_occasioning_abh",
			Citation:    "Cap. 200, s. 39",
			Penalty:     "3 years imprisonment",
			Confidence:  1.0,
			Explanation: "Assault that results in actual bodily harm to the victim.",
		},
		{
			ID:   "ASSAULT_003",
			Name: "Grievous Bodily Harm with Intent",
			Kind: KindOffence,
			Conditions: []string{
				"unlawfully_wounds_or_causes_gbh",
				"acts_maliciously",
				"intent_to_cause_gbh",
			},
			Conclusion:  "guilty_of_gbh_with_intent",
			Citation:    "Cap. 200, s. 36",
			Penalty:     "Life imprisonment",
			Confidence:  1.0,
			Explanation: "Unlawfully and maliciously causing grievous bodily harm with specific intent.",
		},
		{
			ID:   "ASSAULT_004",
			Name: "Murder",
			Kind: KindOffence,
			Conditions: []string{
				"unlawfully_kills",
				"another_person",
				"with_malice_aforethought",
			},
			Conclusion:  "guilty_of_murder",
			Citation:    "Cap. 200, s. 17",
			Penalty:     "Life imprisonment",
			Confidence:  1.0,
			Explanation: "Unlawful killing of another person with malice aforethought.",
		},
		{
			ID:   "ASSAULT_005",
			Name: "Manslaughter",
			Kind: KindOffence,
			Conditions: []string{
				"unlawfully_kills",
				"another_person",
				"no_malice_aforethought",
			},
			Conclusion:  "guilty_of_manslaughter",
			Citation:    "Cap. 200, s. 18",
			Penalty:     "Life imprisonment",
			Confidence:  1.0,
			Explanation: "Unlawful killing without malice aforethought.",
		},
		{
			ID:   "ASSAULT_006",
			Name: "Kidnapping",
			Kind: KindOffence,
			Conditions: []string{
				"takes_and_carries_away",
				"another_person",
				"by_force_or_fraud",
				"without_consent",
			},
			Conclusion:  "guilty_of_kidnapping",
			Citation:    "Cap. 200, s. 42",
			Penalty:     "14 years imprisonment",
			Confidence:  1.0,
			Explanation: "Taking and carrying away a person by force or fraud without consent.",
		},
		{
			ID:   "ASSAULT_007",
			Name: "Assault with Intent to Resist Arrest",
			Kind: KindOffence,
			Conditions: []string{
				"assaults_another_person",
				"intent_to_resist_arrest",
			},
			Conclusion:  "guilty_of_assault_resisting_arrest",
			Citation:    "Cap. 201, s. 39",
			Penalty:     "2 years imprisonment",
			Confidence:  1.0,
			Explanation: "Assaulting another person to resist or prevent lawful arrest.",
		},
		{
			ID:   "FRAUD_001",
			Name: "Basic Fraud",
			Kind: KindOffence,
			Conditions: []string{
				"makes_false_representation",
				"acts_dishonestly",
				"intent_to_gain_or_cause_loss",
			},
			Conclusion:  "guilty_of_fraud",
			Citation:    "Cap. 210, s. 16A",
			Penalty:     "14 years imprisonment",
			Confidence:  1.0,
			Explanation: "Dishonest false representation with intent to gain or cause loss.",
		},
		{
			ID:   "FRAUD_002",
			Name: "Obtaining Property by Deception",
			Kind: KindOffence,
			Conditions: []string{
				"obtains_property",
				"by_deception",
				"acts_dishonestly",
				"intent_to_permanently_deprive",
			},
			Conclusion:  "guilty_of_obtaining_by_deception",
			Citation:    "Cap. 200, s. 161",
			Penalty:     "10 years imprisonment",
			Confidence:  1.0,
			Explanation: "Dishonestly obtaining property through deception with intent to permanently deprive.",
		},
		{
			ID:   "FRAUD_003",
			Name: "False Accounting",
			Kind: KindOffence,
			Conditions: []string{
				"falsifies_accounting_document",
				"acts_dishonestly",
				"view_to_gain_or_cause_loss",
			},
			Conclusion:  "guilty_of_false_accounting",
			Citation:    "Cap. 210, s. 17",
			Penalty:     "10 years imprisonment",
			Confidence:  1.0,
			Explanation: "Dishonestly falsifying accounting documents with view to gain or cause loss.",
		},
		{
			ID:   "FRAUD_004",
			Name: "Blackmail",
			Kind: KindOffence,
			Conditions: []string{
				"makes_unwarranted_demand",
				"with_menaces",
				"view_to_gain_or_cause_loss",
			},
			Conclusion:  "guilty_of_blackmail",
			Citation:    "Cap. 200, s. 16",
			Penalty:     "14 years imprisonment",
			Confidence:  1.0,
			Explanation: "Making unwarranted demand with menaces for gain or to cause loss.",
		},
		{
			ID:   "DRUG_001",
			Name: "Drug Possession",
			Kind: KindOffence,
			Conditions: []string{
				"possesses_substance",
				"substance_is_dangerous_drug",
			},
			Conclusion:  "guilty_of_drug_possession",
			Citation:    "Cap. 134, s. 8",
			Penalty:     "7 years imprisonment and $1,000,000 fine",
			Confidence:  1.0,
			Explanation: "Possession of a dangerous drug.",
		},
		{
			ID:   "DRUG_002",
			Name: "Drug Trafficking",
			Kind: KindOffence,
			Conditions: []string{
				"manufactures_or_sells_or_distributes",
				"dangerous_drug",
			},
			Conclusion:  "guilty_of_drug_trafficking",
			Citation:    "Cap. 134, s. 4",
			Penalty:     "Life imprisonment and $5,000,000 fine",
			Confidence:  1.0,
			Explanation: "Manufacturing, selling, or distributing dangerous drugs constitutes trafficking.",
		},
		{
			ID:   "DRUG_003",
			Name: "Drug Import/Export",
			Kind: KindOffence,
			Conditions: []string{
				"imports_or_exports",
				"dangerous_drug",
			},
			Conclusion:  "guilty_of_drug_import_export",
			Citation:    "Cap. 134, s. 4",
			Penalty:     "Life imprisonment and $5,000,000 fine",
			Confidence:  1.0,
			Explanation: "Importing or exporting dangerous drugs.",
		},
		{
			ID:   "DRUG_004",
			Name: "Consuming Dangerous Drugs",
			Kind: KindOffence,
			Conditions: []string{
				"smokes_or_consumes",
				"dangerous_drug",
			},
			Conclusion:  "guilty_of_consuming_drugs",
			Citation:    "Cap. 134, s. 8",
			Penalty:     "7 years imprisonment and $1,000,000 fine",
			Confidence:  1.0,
			Explanation: "Smoking or consuming dangerous drugs.",
		},
		{
			ID:   "PROPERTY_001",
			Name: "Criminal Damage",
			Kind: KindOffence,
			Conditions: []string{
				"destroys_or_damages_property",
				"property_belongs_to_another",
				"no_lawful_excuse",
				"intentionally_or_recklessly",
			},
			Conclusion:  "guilty_of_criminal_damage",
			Citation:    "Cap. 200, s. 60",
			Penalty:     "10 years imprisonment",
			Confidence:  1.0,
			Explanation: "Intentionally or recklessly destroying or damaging another's property without lawful excuse.",
		},
		{
			ID:   "PROPERTY_002",
			Name: "Arson",
			Kind: KindOffence,
			Conditions: []string{
				"sets_fire",
				"to_building_or_structure",
				"unlawfully",
				"maliciously",
			},
			Conclusion:  "guilty_of_arson",
			Citation:    "Cap. 200, s. 59",
			Penalty:     "Life imprisonment",
			Confidence:  1.0,
			Explanation: "Unlawfully and maliciously setting fire to a building or structure.",
		},
		{
			ID:   "PROPERTY_003",
			Name: "Threats to Damage Property",
			Kind: KindOffence,
			Conditions: []string{
				"makes_threat",
				"to_destroy_or_damage_property",
				"intends_victim_would_fear",
				"no_lawful_excuse",
			},
			Conclusion:  "guilty_of_threats_to_damage_property",
			Citation:    "Cap. 200, s. 61",
			Penalty:     "10 years imprisonment",
			Confidence:  1.0,
			Explanation: "Making threats to destroy or damage property intending the victim would fear the threat.",
		},
		{
			ID:   "COMPUTER_001",
			Name: "Unauthorized Computer Access",
			Kind: KindOffence,
			Conditions: []string{
				"obtains_access_to_computer",
				"with_criminal_or_dishonest_intent",
			},
			Conclusion:  "guilty_of_unauthorized_computer_access",
			Citation:    "Cap. 200, s. 161",
			Penalty:     "5 years imprisonment",
			Confidence:  1.0,
			Explanation: "Obtaining access to computer with criminal or dishonest intent.",
		},
		{
			ID:   "PUBLIC_001",
			Name: "Unlawful Assembly",
			Kind: KindOffence,
			Conditions: []string{
				"three_or_more_persons_assembled",
				"disorderly_or_intimidating_conduct",
				"likely_to_cause_breach_of_peace",
			},
			Conclusion:  "guilty_of_unlawful_assembly",
			Citation:    "Cap. 245, s. 18",
			Penalty:     "5 years imprisonment",
			Confidence:  1.0,
			Explanation: "Three or more persons assembled with disorderly conduct likely to breach the peace.",
		},
		{
			ID:   "PUBLIC_002",
			Name: "Riot",
			Kind: KindOffence,
			Conditions: []string{
				"guilty_of_unlawful_assembly",
				"actual_breach_of_peace",
			},
			Conclusion:  "guilty_of_riot",
			Citation:    "Cap. 245, s. 19",
			Penalty:     "10 years imprisonment",
			Confidence:  1.0,
			Explanation: "Unlawful assembly that makes an actual breach of the peace.",
		},
		{
			ID:   "CHILD_001",
			Name: "Abandoning Child Under 2",
			Kind: KindOffence,
			Conditions: []string{
				"abandons_or_exposes_child",
				"child_under_2_years",
				"endangers_life_or_health",
			},
			Conclusion:  "guilty_of_abandoning_child",
			Citation:    "Cap. 212, s. 26",
			Penalty:     "5 years imprisonment",
			Confidence:  1.0,
			Explanation: "Unlawfully abandoning or exposing a child under 2 years endangering their life or health.",
		},
	}
}

// DefaultDefenses returns the built-in defenses in evaluation order.
func DefaultDefenses() []Defense {
	return []Defense{
		{
			ID:   "DEF_001",
			Name: "Self-Defense",
			Conditions: []string{
				"defendant_faced_unlawful_force",
				"force_used_was_reasonable",
				"force_used_was_necessary",
			},
			Effect:        "Complete defense",
			BurdenOfProof: "Evidential burden on defendant, prosecution must disprove",
			LegalBasis:    "Common law",
			Explanation:   "A person may use reasonable force to defend themselves, others, or property from unlawful attack.",
		},
		{
			ID:   "DEF_002",
			Name: "Duress by Threats",
			Conditions: []string{
				"threat_of_death_or_serious_injury",
				"threat_was_immediate",
				"no_reasonable_opportunity_to_escape",
				"reasonable_person_would_have_acted_similarly",
			},
			Effect:        "Complete defense (except murder)",
			BurdenOfProof: "Evidential burden on defendant, prosecution must disprove",
			LegalBasis:    "Common law",
			Explanation:   "A person forced to commit a crime under immediate threat of death or serious harm may have a defense (not available for murder).",
		},
		{
			ID:   "DEF_003",
			Name: "Duress of Circumstances",
			Conditions: []string{
				"faced_imminent_peril",
				"no_reasonable_alternative",
				"response_was_proportionate",
			},
			Effect:        "Complete defense (except murder)",
			BurdenOfProof: "Evidential burden on defendant, prosecution must disprove",
			LegalBasis:    "Common law",
			Explanation:   "Acting under pressure of circumstances to avoid imminent peril.",
		},
		{
			ID:   "DEF_004",
			Name: "Necessity",
			Conditions: []string{
				"acted_to_prevent_greater_harm",
				"no_reasonable_alternative",
				"harm_caused_less_than_harm_prevented",
			},
			Effect:        "Complete defense (limited application)",
			BurdenOfProof: "Defendant must establish",
			LegalBasis:    "Common law",
			Explanation:   "Acting to prevent a greater harm where there was no reasonable alternative.",
		},
		{
			ID:   "DEF_005",
			Name: "Mistake of Fact",
			Conditions: []string{
				"genuinely_believed_facts",
				"belief_was_reasonable",
				"if_facts_were_true_no_offence",
			},
			Effect:        "Complete defense",
			BurdenOfProof: "Evidential burden on defendant",
			LegalBasis:    "Common law",
			Explanation:   "An honest and reasonable mistake about facts that, if true, would make the act lawful.",
		},
		{
			ID:   "DEF_006",
			Name: "Intoxication (Involuntary)",
			Conditions: []string{
				"defendant_was_intoxicated",
				"intoxication_was_involuntary",
				"offence_requires_specific_intent",
			},
			Effect:        "Defense to specific intent crimes only",
			BurdenOfProof: "Evidential burden on defendant",
			LegalBasis:    "Common law",
			Explanation:   "Involuntary intoxication may negate specific intent required for certain offences.",
		},
		{
			ID:   "DEF_008",
			Name: "Insanity",
			Conditions: []string{
				"defendant_had_mental_disease_or_defect",
				"did_not_know_nature_of_act",
			},
			Effect:        "Not guilty by reason of insanity",
			BurdenOfProof: "Defendant must prove on balance of probabilities",
			LegalBasis:    "Common law (M'Naghten Rules)",
			Explanation:   "Mental disease or defect that prevented defendant from knowing nature or wrongness of act.",
		},
		{
			ID:   "DEF_009",
			Name: "Diminished Responsibility",
			Conditions: []string{
				"abnormality_of_mental_functioning",
				"substantially_impaired_ability",
				"offence_is_murder",
			},
			Effect:        "Reduces murder to manslaughter",
			BurdenOfProof: "Defendant must prove on balance of probabilities",
			LegalBasis:    "Statutory (Cap. 339, s. 3)",
			Explanation:   "Abnormality of mind that substantially impairs responsibility reduces murder to manslaughter.",
		},
		{
			ID:   "DEF_011",
			Name: "Provocation",
			Conditions: []string{
				"defendant_was_provoked",
				"lost_self_control",
				"reasonable_person_might_have_acted_similarly",
				"offence_is_murder",
			},
			Effect:        "Reduces murder to manslaughter",
			BurdenOfProof: "Evidential burden on defendant, prosecution must disprove",
			LegalBasis:    "Common law",
			Explanation:   "Provocation causing loss of self-control reduces murder to manslaughter.",
		},
		{
			ID:   "DEF_012",
			Name: "Consent (Assault)",
			Conditions: []string{
				"victim_consented",
				"offence_is_common_assault_or_battery",
				"not_involving_serious_harm",
			},
			Effect:        "Complete defense to minor assault",
			BurdenOfProof: "Prosecution must prove lack of consent",
			LegalBasis:    "Common law",
			Explanation:   "Valid consent is a defense to common assault or battery (not available for serious harm).",
		},
		{
			ID:   "DEF_013",
			Name: "Lawful Excuse (Property Damage)",
			Conditions: []string{
				"believed_had_consent_of_owner",
				"belief_was_honest",
			},
			Effect:        "Complete defense to criminal damage",
			BurdenOfProof: "Evidential burden on defendant",
			LegalBasis:    "Statutory (Cap. 200, s. 64)",
			Explanation:   "Honest belief in consent or acting to protect property is lawful excuse for damage.",
		},
		{
			ID:   "DEF_014",
			Name: "Claim of Right (Theft)",
			Conditions: []string{
				"believed_had_legal_right_to_property",
				"belief_was_honest",
			},
			Effect:        "Negates dishonesty element of theft",
			BurdenOfProof: "Evidential burden on defendant",
			LegalBasis:    "Statutory (Cap. 210, s. 3)",
			Explanation:   "Honest belief in legal right to property negates dishonesty required for theft.",
		},
	}
}
