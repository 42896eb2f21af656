package config

import "time"

// Default returns the compiled-in configuration: the tracked player table,
// the news source table, the keyword lists, and the prediction rule table.
// Downstream scores are behavioral contracts over these exact literals.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Output:  OutputConfig{Path: "data/political_war_data.json"},
		Fetch: FetchConfig{
			Timeout:   30 * time.Second,
			UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		},
		Players: []PlayerConfig{
			{
				ID:    "anura",
				Names: []string{"anura", "kumara", "dissanayake", "akd", "npp", "jvp", "president"},
				Party: "NPP",
				Role:  "President",
			},
			{
				ID:    "dilith",
				Names: []string{"dilith", "jayaweera", "mjp", "derana", "sarwajana", "sarwajana balaya"},
				Party: "MJP",
				Role:  "Opposition Leader (de facto)",
			},
			{
				ID:    "sajith",
				Names: []string{"sajith", "premadasa", "sjb", "samagi", "samagi balawegaya"},
				Party: "SJB",
				Role:  "Opposition Leader (official)",
			},
			{
				ID:    "namal",
				Names: []string{"namal", "rajapaksa", "slpp", "mahinda", "gotabaya", "basil", "gota"},
				Party: "SLPP",
				Role:  "Dynasty Scion",
			},
			{
				ID:    "ranil",
				Names: []string{"ranil", "wickremesinghe", "unp", "wickremasinghe", "old president"},
				Party: "UNP",
				Role:  "Former President (jailed)",
			},
		},
		Sources: []SourceConfig{
			{ID: "adaderana", URL: "https://www.adaderana.lk/news.php"},
			{ID: "dailymirror", URL: "https://www.dailymirror.lk/news"},
			{ID: "themorning", URL: "https://www.themorning.lk"},
			{ID: "newsfirst", URL: "https://www.newsfirst.lk"},
		},
		Keywords: KeywordConfig{
			Positive: []string{
				"win", "victory", "success", "good", "great", "excellent", "superb",
				"achieve", "deliver", "promise kept", "ජයග්‍රහණය", "සුපිරි", "නියම",
			},
			Negative: []string{
				"fail", "loss", "bad", "worst", "corrupt", "lie", "cheat", "disaster",
				"crisis", "broken", "useless", "pathetic", "පාවී", "අසමත්", "වැරදි",
			},
			Crisis: []string{
				"protest", "strike", "uprising", "revolution", "topple", "overthrow",
				"emergency", "crisis", "collapse", "imf", "tariff", "unemployment",
				"උද්ඝෝෂණ", "වර්ජන", "අර්බුදය",
			},
		},
		Predictions: PredictionConfig{
			Moves: []MoveRuleConfig{
				{
					Player:    "anura",
					WhenTrend: "falling",
					Then: MoveConfig{
						Move:       "Emergency populist measure (fuel subsidy/teacher wage hike)",
						Confidence: 0.82,
						Timing:     "24-48 hours",
					},
					Else: MoveConfig{
						Move:       "Continue IMF path, ignore opposition",
						Confidence: 0.75,
						Timing:     "Ongoing",
					},
				},
				{
					Player:    "dilith",
					WhenTrend: "rising",
					Then: MoveConfig{
						Move:       "Escalate attacks, formalize opposition coalition",
						Confidence: 0.79,
						Timing:     "Next week",
					},
					Else: MoveConfig{
						Move:       "Consolidate gains, prepare for Budget battle",
						Confidence: 0.71,
						Timing:     "2 weeks",
					},
				},
			},
			Coalition: CoalitionRuleConfig{
				Members:        []string{"dilith", "sajith", "namal"},
				ShareThreshold: 0.6,
				Then: CoalitionOutcomeConfig{
					FormationProbability: 0.73,
					Timeline:             "2-4 weeks",
					Leader:               "dilith",
				},
				Else: CoalitionOutcomeConfig{
					FormationProbability: 0.45,
					Timeline:             "Uncertain",
					Leader:               "none",
				},
			},
		},
	}
}
