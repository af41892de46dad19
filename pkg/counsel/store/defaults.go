package store

// DefaultCases is the built-in precedent corpus used when no external case
// database is configured.
func DefaultCases() []Case {
	return []Case{
		{
			ID:    "THEFT_001",
			Name:  "HKSAR v. Chan Tai Man",
			Year:  2019,
			Court: "District Court",
			Facts: "The defendant entered a convenience store at 2 AM. He took several cartons of " +
				"cigarettes worth HK$8,000 and left without paying. CCTV footage clearly showed him " +
				"concealing the items in his bag.",
			Charges:       []string{"Theft contrary to s. 2 of the Theft Ordinance, Cap. 210"},
			OrdinanceRefs: []string{"Cap. 210, s. 2"},
			Outcome:       "Guilty",
			Sentence:      "6 months imprisonment",
			Principles:    []string{"All elements of theft proven: appropriation, property belonging to another, dishonesty, intent to permanently deprive"},
			Keywords:      []string{"theft", "shop theft", "dishonesty"},
		},
		{
			ID:    "ROBBERY_001",
			Name:  "HKSAR v. Wong Siu Ming",
			Year:  2020,
			Court: "Court of First Instance",
			Facts: "The defendant approached a pedestrian on Nathan Road at night. He brandished a " +
				"knife and demanded the victim hand over his wallet and mobile phone.",
			Charges:       []string{"Robbery contrary to s. 10 of the Theft Ordinance, Cap. 210"},
			OrdinanceRefs: []string{"Cap. 210, s. 10"},
			Outcome:       "Guilty",
			Sentence:      "5 years imprisonment",
			Principles:    []string{"Robbery established: theft combined with use of force or threat of force"},
			Keywords:      []string{"robbery", "knife", "threat of force", "weapon"},
		},
		{
			ID:    "ASSAULT_001",
			Name:  "HKSAR v. Lee Ka Ho",
			Year:  2021,
			Court: "District Court",
			Facts: "Following an argument outside a bar in Wan Chai, the defendant punched the victim " +
				"repeatedly, causing a fractured jaw requiring surgery. The attack continued after the " +
				"victim fell to the ground.",
			Charges:       []string{"Wounding with intent contrary to s. 17 of the Offences against the Person Ordinance, Cap. 212"},
			OrdinanceRefs: []string{"Cap. 212, s. 17"},
			Outcome:       "Guilty",
			Sentence:      "4 years imprisonment",
			Principles:    []string{"Sustained attack on a fallen victim evidences intent to cause grievous bodily harm"},
			Keywords:      []string{"assault", "gbh", "wounding", "intent"},
		},
		{
			ID:    "ASSAULT_002",
			Name:  "HKSAR v. Cheung Man Kit",
			Year:  2018,
			Court: "Magistrates' Court",
			Facts: "The defendant slapped a taxi driver during a fare dispute in Mong Kok. The driver " +
				"suffered bruising. The defendant pleaded guilty at the first opportunity and expressed remorse.",
			Charges:       []string{"Common assault contrary to s. 40 of the Offences against the Person Ordinance, Cap. 212"},
			OrdinanceRefs: []string{"Cap. 212, s. 40"},
			Outcome:       "Guilty",
			Sentence:      "Fine of HK$3,000",
			Principles:    []string{"Early guilty plea and minor injury justify a non-custodial sentence"},
			Keywords:      []string{"assault", "common assault", "minor injury", "guilty plea"},
		},
		{
			ID:    "DRUG_001",
			Name:  "HKSAR v. Tsang Wai Lun",
			Year:  2020,
			Court: "Court of First Instance",
			Facts: "Customs officers found 48 grams of ketamine concealed in the defendant's backpack " +
				"at Lo Wu. Packaging and a weighing scale indicated the drugs were not for personal use.",
			Charges:       []string{"Trafficking in a dangerous drug contrary to s. 4 of the Dangerous Drugs Ordinance, Cap. 134"},
			OrdinanceRefs: []string{"Cap. 134, s. 4"},
			Outcome:       "Guilty",
			Sentence:      "6 years imprisonment",
			Principles:    []string{"Quantity and paraphernalia support the inference of trafficking rather than possession"},
			Keywords:      []string{"drugs", "trafficking", "ketamine", "dangerous drugs"},
		},
		{
			ID:    "FRAUD_001",
			Name:  "HKSAR v. Lam Pui Shan",
			Year:  2022,
			Court: "District Court",
			Facts: "The defendant ran an online shop that took payment for phones she never intended " +
				"to deliver. Forty-two victims lost a total of HK$380,000. She used the proceeds to pay " +
				"gambling debts.",
			Charges:       []string{"Obtaining property by deception contrary to s. 17 of the Theft Ordinance, Cap. 210"},
			OrdinanceRefs: []string{"Cap. 210, s. 17"},
			Outcome:       "Guilty",
			Sentence:      "30 months imprisonment",
			Principles:    []string{"A continuing false representation of intent to deliver goods constitutes deception"},
			Keywords:      []string{"fraud", "deception", "online shopping", "false representation"},
		},
		{
			ID:    "BURGLARY_001",
			Name:  "HKSAR v. Ho Chun Yin",
			Year:  2019,
			Court: "District Court",
			Facts: "The defendant climbed through an unlocked window of a flat in Sham Shui Po while " +
				"the occupants slept and took cash and jewellery worth HK$60,000.",
			Charges:       []string{"Burglary contrary to s. 11 of the Theft Ordinance, Cap. 210"},
			OrdinanceRefs: []string{"Cap. 210, s. 11"},
			Outcome:       "Guilty",
			Sentence:      "40 months imprisonment",
			Principles:    []string{"Entry as a trespasser with intent to steal completes the offence of burglary"},
			Keywords:      []string{"burglary", "trespasser", "dwelling", "night"},
		},
		{
			ID:    "EMP_001",
			Name:  "HKSAR v. XYZ Restaurant Limited",
			Year:  2020,
			Court: "Magistrates' Court",
			Facts: "The employer failed to pay wages to 8 employees for 3 consecutive months. Total " +
				"outstanding wages were HK$240,000. The employer claimed business difficulties but had " +
				"not filed for bankruptcy.",
			Charges:       []string{"Failure to pay wages contrary to Cap. 57, s. 23"},
			OrdinanceRefs: []string{"Cap. 57, s. 23"},
			Outcome:       "Guilty",
			Sentence:      "Fine of HK$200,000 and ordered to pay outstanding wages",
			Principles: []string{
				"Wages must be paid within 7 days of the end of the wage period",
				"Financial difficulty does not excuse non-payment of wages",
			},
			Keywords: []string{"employment", "wages", "non-payment", "prosecution"},
		},
	}
}
