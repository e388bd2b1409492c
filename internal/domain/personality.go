package domain

// PersonalityReport вложенный отчёт о личности; любое поле может отсутствовать
type PersonalityReport struct {
	OverallSummary   *OverallSummary   `json:"overall_summary,omitempty"`
	DominantPlanet   *DominantPlanet   `json:"dominant_planet,omitempty"`
	DetailedAnalysis *DetailedAnalysis `json:"detailed_analysis,omitempty"`
	MoonBased        *SignalTraits     `json:"moon_based,omitempty"`
	SunBased         *SignalTraits     `json:"sun_based,omitempty"`
	LagnaBased       *SignalTraits     `json:"lagna_based,omitempty"`
}

type OverallSummary struct {
	CoreTraits      []string `json:"core_traits,omitempty"`
	CoreTraitsHindi []string `json:"core_traits_hindi,omitempty"`
	LifeApproach    string   `json:"life_approach,omitempty"`
	DominantElement string   `json:"dominant_element,omitempty"`
	DominantGuna    string   `json:"dominant_guna,omitempty"`
}

type DominantPlanet struct {
	Planet               string `json:"planet"`
	Influence            string `json:"influence,omitempty"`
	InfluenceHindi       string `json:"influence_hindi,omitempty"`
	Characteristics      string `json:"characteristics,omitempty"`
	CharacteristicsHindi string `json:"characteristics_hindi,omitempty"`
}

type DetailedAnalysis struct {
	EmotionalNature  string   `json:"emotional_nature,omitempty"`
	CoreIdentity     string   `json:"core_identity,omitempty"`
	OuterPersonality string   `json:"outer_personality,omitempty"`
	Strengths        []string `json:"strengths,omitempty"`
	GrowthAreas      []string `json:"growth_areas,omitempty"`
}

// SignalTraits черты по одному сигналу (Луна, Солнце, Лагна)
type SignalTraits struct {
	Traits      []string `json:"traits,omitempty"`
	TraitsHindi []string `json:"traits_hindi,omitempty"`
	Nature      string   `json:"nature,omitempty"`
	NatureHindi string   `json:"nature_hindi,omitempty"`
	Element     string   `json:"element,omitempty"`
	Guna        string   `json:"guna,omitempty"`
}
