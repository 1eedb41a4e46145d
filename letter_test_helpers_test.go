package visaletter

func testConfig() *ConferenceConfig {
	return &ConferenceConfig{
		ConferenceName:      "PGConf Europe 2026",
		ConferenceStartDate: "2026-10-20",
		ConferenceEndDate:   "2026-10-23",
		ConferenceLocation:  "Lisbon, Portugal",
		ConferenceInfo:      "The annual European PostgreSQL community conference.",
		ConferenceContact:   "secretary@example.org",
		Organization: Organization{
			Name:    "PostgreSQL Europe",
			Address: "61, rue de Lyon\n75012 Paris\nFrance",
			Website: "https://www.postgresql.eu/",
			Email:   "board@postgresql.eu",
		},
		Signer: Signer{
			Name:        "Jane Example",
			Title:       "Conference Secretary",
			ContactInfo: "secretary@example.org",
		},
	}
}

func testRequest() *ApplicantRequest {
	return &ApplicantRequest{
		FullNamePassport: "John Q. Doe",
		DateOfBirth:      "1988-04-02",
		Nationality:      "Examplandian",
		PassportNumber:   "X1234567",
		Gender:           "male",
		Address:          "12 Example Street, Exampleville",
		EmbassyName:      "Embassy of Portugal in Examplandia",
		EmbassyAddress:   "1 Consular Avenue\nExampleville",
		StayAt:           "Hotel Lisboa, Av. da Liberdade 100, Lisbon",
		Contact:          "+351 900 000 000",
		EntryDate:        "2026-10-19",
		ExitDate:         "2026-10-24",
	}
}
