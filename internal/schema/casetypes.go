package schema

// VAWA is the self-petition case type under the Violence Against Women Act.
var VAWA = CaseType{
	ID:   "vawa",
	Name: "VAWA Self-Petition",
	Questions: []Question{
		{ID: "client_full_name", Label: "Client Full Name", Type: TypeText, ExtractKey: "full_name", Token: "CLIENT_NAME", Required: true, Placeholder: "Full legal name"},
		{ID: "client_gender", Label: "Client Gender", Type: TypeSelect, ExtractKey: "gender", Vocab: VocabGender, Options: []string{SelectSentinel, "Male", "Female"}},
		{ID: "client_dob", Label: "Date of Birth", Type: TypeDate, ExtractKey: "date_of_birth", Token: "CLIENT_DOB", Required: true, Placeholder: "MM/DD/YYYY"},
		{ID: "client_country", Label: "Country of Birth", Type: TypeText, ExtractKey: "country_of_birth", Token: "COUNTRY_OF_BIRTH"},
		{ID: "client_a_number", Label: "A-Number", Type: TypeText, ExtractKey: "a_number", Token: "A_NUMBER", Placeholder: "A-000-000-000"},
		{ID: "abuser_full_name", Label: "Abuser Full Name", Type: TypeText, ExtractKey: "abuser_name", Token: "ABUSER_NAME"},
		{ID: "abuser_status", Label: "Abuser Immigration Status", Type: TypeSelect, ExtractKey: "abuser_status", Token: "ABUSER_STATUS",
			Options: []string{SelectSentinel, "U.S. Citizen", "Lawful Permanent Resident"}},
		{ID: "relationship", Label: "Relationship to Abuser", Type: TypeSelect, ExtractKey: "relationship", Vocab: VocabRelationship, Token: "RELATIONSHIP",
			Options: []string{SelectSentinel, "Spouse", "Parent", "Child"}},
		{ID: "marital_status", Label: "Marital Status", Type: TypeSelect, ExtractKey: "marital_status", Vocab: VocabMarital, Token: "MARITAL_STATUS",
			Options: []string{SelectSentinel, "Single", "Married", "Separated", "Divorced", "Widowed"}},
		{ID: "marriage_date", Label: "Date of Marriage", Type: TypeDate, ExtractKey: "marriage_date", Token: "MARRIAGE_DATE"},
		{ID: "entry_date", Label: "Date of Last Entry", Type: TypeDate, ExtractKey: "date_of_entry", Token: "ENTRY_DATE"},
		{ID: "current_address", Label: "Current Address", Type: TypeTextArea, ExtractKey: "current_address", Token: "CLIENT_ADDRESS"},
		{ID: "lives_with_abuser", Label: "Currently Lives With Abuser", Type: TypeCheckbox, ExtractKey: "lives_with_abuser"},
		{ID: "abuse_summary", Label: "Summary of Abuse", Type: TypeTextArea, ExtractKey: "abuse_summary"},
	},
	Tabs: []Tab{
		{Label: "A", Title: "Identity Documents"},
		{Label: "B", Title: "Relationship Evidence"},
		{Label: "C", Title: "Abuse Evidence"},
		{Label: "D", Title: "Good Moral Character"},
		{Label: "E", Title: "Residence Evidence"},
		{Label: "F", Title: "Supporting Statements"},
	},
	DefaultTab: "F",
	Template:   vawaTemplate,
	Tokens:     vawaTokens,
}

// UVisa is the U nonimmigrant status certification package case type.
var UVisa = CaseType{
	ID:   "uvisa",
	Name: "U Visa Certification Package",
	Questions: []Question{
		{ID: "client_full_name", Label: "Client Full Name", Type: TypeText, ExtractKey: "full_name", Token: "CLIENT_NAME", Required: true, Placeholder: "Full legal name"},
		{ID: "client_gender", Label: "Client Gender", Type: TypeSelect, ExtractKey: "gender", Vocab: VocabGender, Options: []string{SelectSentinel, "Male", "Female"}},
		{ID: "client_dob", Label: "Date of Birth", Type: TypeDate, ExtractKey: "date_of_birth", Token: "CLIENT_DOB", Required: true, Placeholder: "MM/DD/YYYY"},
		{ID: "client_country", Label: "Country of Birth", Type: TypeText, ExtractKey: "country_of_birth", Token: "COUNTRY_OF_BIRTH"},
		{ID: "crime_type", Label: "Qualifying Crime", Type: TypeSelect, ExtractKey: "crime_type", Token: "CRIME_TYPE",
			Options: []string{SelectSentinel, "Domestic Violence", "Felonious Assault", "Sexual Assault", "Kidnapping", "Extortion", "Other"}},
		{ID: "crime_date", Label: "Date of Crime", Type: TypeDate, ExtractKey: "crime_date", Token: "CRIME_DATE"},
		{ID: "crime_location", Label: "Location of Crime", Type: TypeText, ExtractKey: "crime_location", Token: "CRIME_LOCATION"},
		{ID: "police_report_filed", Label: "Police Report Filed", Type: TypeCheckbox, ExtractKey: "police_report_filed"},
		{ID: "certifying_agency", Label: "Certifying Agency", Type: TypeText, ExtractKey: "certifying_agency", Token: "CERTIFYING_AGENCY"},
		{ID: "injury_summary", Label: "Summary of Harm Suffered", Type: TypeTextArea, ExtractKey: "injury_summary"},
		{ID: "helpfulness_summary", Label: "Assistance to Law Enforcement", Type: TypeTextArea, ExtractKey: "helpfulness_summary"},
	},
	Tabs: []Tab{
		{Label: "A", Title: "Identity Documents"},
		{Label: "B", Title: "Crime Documentation"},
		{Label: "C", Title: "Harm Evidence"},
		{Label: "D", Title: "Helpfulness Evidence"},
		{Label: "E", Title: "Supporting Statements"},
		{Label: "F", Title: "Other Evidence"},
	},
	DefaultTab: "F",
	Template:   uvisaTemplate,
	Tokens:     uvisaTokens,
}
