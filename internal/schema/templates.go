package schema

// Template token vocabularies are fixed per case type. The assembler
// substitutes every token below; any other {{...}} text in a template is a
// configuration defect and fails assembly.
//
// Older template revisions used a typographic apostrophe (U+2019) in the
// CLIENT'S_STATEMENT token; both glyphs still appear in circulating templates
// and must resolve to the same value.

var vawaTokens = []string{
	"CLIENT_NAME", "CLIENT_DOB", "COUNTRY_OF_BIRTH", "A_NUMBER",
	"ABUSER_NAME", "ABUSER_STATUS", "RELATIONSHIP", "MARITAL_STATUS",
	"MARRIAGE_DATE", "ENTRY_DATE", "CLIENT_ADDRESS",
	"SUBJECT_PRONOUN", "SUBJECT_PRONOUN_CAP", "OBJECT_PRONOUN", "POSSESSIVE_PRONOUN",
	"NARRATIVE", "CLIENT'S_STATEMENT", "TODAY_DATE",
	"TAB_A_DOCS", "TAB_B_DOCS", "TAB_C_DOCS", "TAB_D_DOCS", "TAB_E_DOCS", "TAB_F_DOCS",
}

var uvisaTokens = []string{
	"CLIENT_NAME", "CLIENT_DOB", "COUNTRY_OF_BIRTH",
	"CRIME_TYPE", "CRIME_DATE", "CRIME_LOCATION", "CERTIFYING_AGENCY",
	"SUBJECT_PRONOUN", "SUBJECT_PRONOUN_CAP", "OBJECT_PRONOUN", "POSSESSIVE_PRONOUN",
	"NARRATIVE", "CLIENT'S_STATEMENT", "TODAY_DATE",
	"TAB_A_DOCS", "TAB_B_DOCS", "TAB_C_DOCS", "TAB_D_DOCS", "TAB_E_DOCS", "TAB_F_DOCS",
}

const vawaTemplate = `UNITED STATES CITIZENSHIP AND IMMIGRATION SERVICES

RE:   Self-Petition Under the Violence Against Women Act
      Petitioner: {{CLIENT_NAME}}
      A-Number:   {{A_NUMBER}}
      Date:       {{TODAY_DATE}}

Dear Sir or Madam:

This filing is submitted on behalf of {{CLIENT_NAME}}, a native of
{{COUNTRY_OF_BIRTH}} born on {{CLIENT_DOB}}, who self-petitions as the
{{RELATIONSHIP}} of {{ABUSER_NAME}}, a {{ABUSER_STATUS}}.
{{SUBJECT_PRONOUN_CAP}} last entered the United States on {{ENTRY_DATE}} and
currently resides at {{CLIENT_ADDRESS}}. {{SUBJECT_PRONOUN_CAP}} reports
{{POSSESSIVE_PRONOUN}} marital status as {{MARITAL_STATUS}}; the marriage to
{{ABUSER_NAME}} took place on {{MARRIAGE_DATE}}.

STATEMENT OF FACTS

{{NARRATIVE}}

The abuse {{CLIENT_NAME}} endured, and the effect it has had on
{{OBJECT_PRONOUN}}, is described in detail in {{CLIENT’S_STATEMENT}},
submitted at Tab F together with {{POSSESSIVE_PRONOUN}} corroborating
evidence.

INDEX OF SUPPORTING DOCUMENTS

Tab A - Identity Documents
{{TAB_A_DOCS}}

Tab B - Relationship Evidence
{{TAB_B_DOCS}}

Tab C - Abuse Evidence
{{TAB_C_DOCS}}

Tab D - Good Moral Character
{{TAB_D_DOCS}}

Tab E - Residence Evidence
{{TAB_E_DOCS}}

Tab F - Supporting Statements, including {{CLIENT'S_STATEMENT}}
{{TAB_F_DOCS}}

For the reasons set forth above and in the attached evidence,
{{CLIENT_NAME}} respectfully requests that {{POSSESSIVE_PRONOUN}}
self-petition be approved.

Respectfully submitted,

Attorney for {{CLIENT_NAME}}
`

const uvisaTemplate = `UNITED STATES CITIZENSHIP AND IMMIGRATION SERVICES

RE:   Petition for U Nonimmigrant Status
      Petitioner: {{CLIENT_NAME}}
      Date:       {{TODAY_DATE}}

Dear Sir or Madam:

This package is submitted on behalf of {{CLIENT_NAME}}, a native of
{{COUNTRY_OF_BIRTH}} born on {{CLIENT_DOB}}. {{SUBJECT_PRONOUN_CAP}} was the
victim of {{CRIME_TYPE}} on {{CRIME_DATE}} in {{CRIME_LOCATION}}, and
{{SUBJECT_PRONOUN}} has been, and remains, helpful to {{CERTIFYING_AGENCY}}
in the detection, investigation, and prosecution of that criminal activity.

STATEMENT OF FACTS

{{NARRATIVE}}

The harm done to {{OBJECT_PRONOUN}} and {{POSSESSIVE_PRONOUN}} continued
cooperation with law enforcement are described in {{CLIENT’S_STATEMENT}},
submitted at Tab E.

INDEX OF SUPPORTING DOCUMENTS

Tab A - Identity Documents
{{TAB_A_DOCS}}

Tab B - Crime Documentation
{{TAB_B_DOCS}}

Tab C - Harm Evidence
{{TAB_C_DOCS}}

Tab D - Helpfulness Evidence
{{TAB_D_DOCS}}

Tab E - Supporting Statements, including {{CLIENT'S_STATEMENT}}
{{TAB_E_DOCS}}

Tab F - Other Evidence
{{TAB_F_DOCS}}

For the reasons set forth above, {{CLIENT_NAME}} respectfully requests
favorable exercise of discretion on {{POSSESSIVE_PRONOUN}} petition.

Respectfully submitted,

Attorney for {{CLIENT_NAME}}
`
