package domain

const MaxGunaScore = 36

type Koota struct {
	Name          string  `json:"name"`
	NameHindi     string  `json:"name_hindi"`
	ObtainedScore float64 `json:"obtained_score"`
	MaxScore      float64 `json:"max_score"`
	Compatible    bool    `json:"compatible"`
}

type Dosha struct {
	Name      string `json:"name"`
	NameHindi string `json:"name_hindi"`
}

// MatchedPerson краткая сводка по одному из партнёров
type MatchedPerson struct {
	Name      string `json:"name"`
	Rashi     string `json:"rashi"`
	Nakshatra string `json:"nakshatra"`
}

// MatchingResult результат Гун Милан; не изменяется после получения
type MatchingResult struct {
	Person1      *MatchedPerson `json:"person1,omitempty"`
	Person2      *MatchedPerson `json:"person2,omitempty"`
	TotalScore   float64        `json:"total_score"`
	MaxScore     float64        `json:"max_score,omitempty"`
	Percentage   float64        `json:"percentage"`
	Verdict      string         `json:"verdict"`
	VerdictHindi string         `json:"verdict_hindi"`
	Kootas       []Koota        `json:"kootas"`
	Doshas       []Dosha        `json:"doshas"`
}
