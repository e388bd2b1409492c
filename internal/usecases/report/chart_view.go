package report

import (
	"fmt"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/locale"
	"github.com/admin/jyotish/vedic-client/internal/usecases/chart"
)

type SignView struct {
	Label  string `json:"label"`
	Sign   string `json:"sign"`
	Degree string `json:"degree,omitempty"`
}

type NakshatraView struct {
	Label string `json:"label"`
	Name  string `json:"name"`
	Pada  int    `json:"pada"`
	Text  string `json:"text"`
}

type WesternZodiacView struct {
	Label  string `json:"label"`
	Symbol string `json:"symbol"`
	Sign   string `json:"sign"`
	Dates  string `json:"dates"`
}

type PlanetRow struct {
	Planet string `json:"planet"`
	Rashi  string `json:"rashi"`
	Degree string `json:"degree"`
}

type HouseRow struct {
	HouseNum int    `json:"house_num"`
	Rashi    string `json:"rashi"`
}

// Section заголовок и текст одного блока отчёта
type Section struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// ListSection заголовок и список пунктов
type ListSection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type SummaryView struct {
	Title           string       `json:"title"`
	CoreTraits      *ListSection `json:"core_traits,omitempty"`
	LifeApproach    *Section     `json:"life_approach,omitempty"`
	DominantElement *Section     `json:"dominant_element,omitempty"`
	DominantGuna    string       `json:"dominant_guna,omitempty"`
}

type DominantPlanetView struct {
	Title           string `json:"title"`
	Planet          string `json:"planet"`
	Influence       string `json:"influence,omitempty"`
	Characteristics string `json:"characteristics,omitempty"`
}

type DetailedView struct {
	Title    string        `json:"title"`
	Sections []Section     `json:"sections"`
	Lists    []ListSection `json:"lists"`
}

type SignalView struct {
	Title   string   `json:"title"`
	Traits  []string `json:"traits,omitempty"`
	Nature  string   `json:"nature,omitempty"`
	Element string   `json:"element,omitempty"`
	Guna    string   `json:"guna,omitempty"`
}

// PersonalityView отображение отчёта о личности; отсутствующие разделы равны nil
type PersonalityView struct {
	Title          string              `json:"title"`
	Summary        *SummaryView        `json:"summary,omitempty"`
	DominantPlanet *DominantPlanetView `json:"dominant_planet,omitempty"`
	Detailed       *DetailedView       `json:"detailed,omitempty"`
	Signals        []SignalView        `json:"signals,omitempty"`
}

// ChartView готовая к показу натальная карта
type ChartView struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Gender        string             `json:"gender"`
	DateOfBirth   string             `json:"date_of_birth"`
	TimeOfBirth   string             `json:"time_of_birth"`
	PlaceOfBirth  string             `json:"place_of_birth"`
	Lagna         SignView           `json:"lagna"`
	MoonSign      SignView           `json:"moon_sign"`
	Nakshatra     NakshatraView      `json:"nakshatra"`
	WesternZodiac *WesternZodiacView `json:"western_zodiac,omitempty"`
	Planets       []PlanetRow        `json:"planets"`
	Houses        []HouseRow         `json:"houses"`
	Diagram       chart.Diagram      `json:"diagram"`
	Personality   *PersonalityView   `json:"personality,omitempty"`
}

// BuildChartView собирает представление карты. Не возвращает ошибок:
// отсутствующие необязательные данные дают пустые разделы.
func BuildChartView(ctx locale.Context, c domain.ChartResult) ChartView {
	lang := ctx.Lang

	view := ChartView{
		ID:           c.ID,
		Name:         c.Name,
		Gender:       genderLabel(ctx, c.Gender),
		DateOfBirth:  c.DateOfBirth,
		TimeOfBirth:  c.TimeOfBirth,
		PlaceOfBirth: c.PlaceOfBirth,
		Lagna: SignView{
			Label:  ctx.T("lagna"),
			Sign:   rashiLabel(lang, c.Lagna.Rashi, c.Lagna.RashiHindi, c.Lagna.RashiNum),
			Degree: FormatDegree(c.Lagna.Degree),
		},
		MoonSign: SignView{
			Label: ctx.T("moonSign"),
			Sign:  locale.Select(lang, c.MoonRashi, c.MoonRashiHindi),
		},
		Nakshatra: NakshatraView{
			Label: ctx.T("nakshatra"),
			Name:  c.Nakshatra.Name,
			Pada:  c.Nakshatra.Pada,
			Text:  fmt.Sprintf("%s (%s %d)", c.Nakshatra.Name, ctx.T("pada"), c.Nakshatra.Pada),
		},
		Planets: make([]PlanetRow, 0, c.Planets.Len()),
		Houses:  make([]HouseRow, 0, len(c.Houses)),
		Diagram: chart.Build(c.Houses, c.Planets),
	}

	if c.WesternZodiac != nil {
		view.WesternZodiac = &WesternZodiacView{
			Label:  ctx.T("westernZodiac"),
			Symbol: c.WesternZodiac.Symbol,
			Sign:   locale.Select(lang, c.WesternZodiac.Sign, c.WesternZodiac.SignHindi),
			Dates:  c.WesternZodiac.Dates,
		}
	}

	c.Planets.Each(func(name string, pos domain.PlanetPosition) {
		view.Planets = append(view.Planets, PlanetRow{
			Planet: name,
			Rashi:  rashiLabel(lang, pos.Rashi, pos.RashiHindi, pos.RashiNum),
			Degree: FormatDegree(pos.Degree),
		})
	})

	for _, h := range c.Houses {
		view.Houses = append(view.Houses, HouseRow{
			HouseNum: h.HouseNum,
			Rashi:    rashiLabel(lang, h.Rashi, h.RashiHindi, h.RashiNum),
		})
	}

	view.Personality = BuildPersonalityView(ctx, c.Personality)
	return view
}

// BuildPersonalityView возвращает nil, если отчёта нет или в нём нет ни одного раздела
func BuildPersonalityView(ctx locale.Context, p *domain.PersonalityReport) *PersonalityView {
	if p == nil {
		return nil
	}
	lang := ctx.Lang
	view := &PersonalityView{Title: ctx.T("personality")}

	if s := p.OverallSummary; s != nil {
		summary := &SummaryView{Title: ctx.T("personality"), DominantGuna: s.DominantGuna}
		if traits := nonEmpty(locale.Select(lang, s.CoreTraits, s.CoreTraitsHindi)); traits != nil {
			summary.CoreTraits = &ListSection{Title: ctx.T("coreTraits"), Items: traits}
		}
		if s.LifeApproach != "" {
			summary.LifeApproach = &Section{Title: ctx.T("lifeApproach"), Text: s.LifeApproach}
		}
		if s.DominantElement != "" {
			summary.DominantElement = &Section{Title: ctx.T("dominantElement"), Text: s.DominantElement}
		}
		view.Summary = summary
	}

	if dp := p.DominantPlanet; dp != nil && dp.Planet != "" {
		view.DominantPlanet = &DominantPlanetView{
			Title:           ctx.T("dominantPlanet"),
			Planet:          dp.Planet,
			Influence:       locale.Select(lang, dp.Influence, dp.InfluenceHindi),
			Characteristics: locale.Select(lang, dp.Characteristics, dp.CharacteristicsHindi),
		}
	}

	if d := p.DetailedAnalysis; d != nil {
		detailed := &DetailedView{Title: ctx.T("detailedAnalysis")}
		for _, sec := range []Section{
			{Title: ctx.T("emotionalNature"), Text: d.EmotionalNature},
			{Title: ctx.T("coreIdentity"), Text: d.CoreIdentity},
			{Title: ctx.T("outerPersonality"), Text: d.OuterPersonality},
		} {
			if sec.Text != "" {
				detailed.Sections = append(detailed.Sections, sec)
			}
		}
		for _, list := range []ListSection{
			{Title: ctx.T("strengths"), Items: nonEmpty(d.Strengths)},
			{Title: ctx.T("growthAreas"), Items: nonEmpty(d.GrowthAreas)},
		} {
			if len(list.Items) > 0 {
				detailed.Lists = append(detailed.Lists, list)
			}
		}
		if len(detailed.Sections) > 0 || len(detailed.Lists) > 0 {
			view.Detailed = detailed
		}
	}

	for _, signal := range []struct {
		key    string
		traits *domain.SignalTraits
	}{
		{key: "moonBased", traits: p.MoonBased},
		{key: "sunBased", traits: p.SunBased},
		{key: "lagnaBased", traits: p.LagnaBased},
	} {
		if signal.traits == nil {
			continue
		}
		view.Signals = append(view.Signals, SignalView{
			Title:   ctx.T(signal.key),
			Traits:  nonEmpty(locale.Select(lang, signal.traits.Traits, signal.traits.TraitsHindi)),
			Nature:  locale.Select(lang, signal.traits.Nature, signal.traits.NatureHindi),
			Element: signal.traits.Element,
			Guna:    signal.traits.Guna,
		})
	}

	if view.Summary == nil && view.DominantPlanet == nil && view.Detailed == nil && len(view.Signals) == 0 {
		return nil
	}
	return view
}
