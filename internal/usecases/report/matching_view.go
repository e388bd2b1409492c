package report

import (
	"strconv"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/locale"
)

type KootaView struct {
	Name       string `json:"name"`
	Score      string `json:"score"`
	Compatible bool   `json:"compatible"`
	Status     string `json:"status"`
}

type PersonSummaryView struct {
	Label     string `json:"label"`
	Name      string `json:"name"`
	Rashi     string `json:"rashi,omitempty"`
	Nakshatra string `json:"nakshatra,omitempty"`
}

// MatchingView готовый к показу результат Гун Милан
type MatchingView struct {
	Title          string             `json:"title"`
	Score          string             `json:"score"`
	Percentage     float64            `json:"percentage"`
	PercentageText string             `json:"percentage_text"`
	Verdict        string             `json:"verdict"`
	Person1        *PersonSummaryView `json:"person1,omitempty"`
	Person2        *PersonSummaryView `json:"person2,omitempty"`
	KootasTitle    string             `json:"kootas_title"`
	Kootas         []KootaView        `json:"kootas"`
	DoshasTitle    string             `json:"doshas_title"`
	Doshas         []string           `json:"doshas"`
}

// FormatPercentage проценты из ответа сервиса без пересчёта: 78 -> "78% compatibility"
func FormatPercentage(ctx locale.Context, percentage float64) string {
	return strconv.FormatFloat(percentage, 'f', -1, 64) + "% " + ctx.T("compatibility")
}

func BuildMatchingView(ctx locale.Context, m domain.MatchingResult) MatchingView {
	lang := ctx.Lang

	maxScore := m.MaxScore
	if maxScore <= 0 {
		maxScore = domain.MaxGunaScore
	}

	view := MatchingView{
		Title:          ctx.T("gunMilan"),
		Score:          FormatScore(m.TotalScore, maxScore),
		Percentage:     m.Percentage,
		PercentageText: FormatPercentage(ctx, m.Percentage),
		Verdict:        locale.Select(lang, m.Verdict, m.VerdictHindi),
		Person1:        personSummary(ctx.T("person1"), m.Person1),
		Person2:        personSummary(ctx.T("person2"), m.Person2),
		KootasTitle:    ctx.T("kootas"),
		Kootas:         make([]KootaView, 0, len(m.Kootas)),
		Doshas:         make([]string, 0, len(m.Doshas)),
	}

	for _, k := range m.Kootas {
		status := ctx.T("incompatible")
		if k.Compatible {
			status = ctx.T("compatible")
		}
		view.Kootas = append(view.Kootas, KootaView{
			Name:       locale.Select(lang, k.Name, k.NameHindi),
			Score:      FormatScore(k.ObtainedScore, k.MaxScore),
			Compatible: k.Compatible,
			Status:     status,
		})
	}

	for _, d := range m.Doshas {
		view.Doshas = append(view.Doshas, locale.Select(lang, d.Name, d.NameHindi))
	}
	if len(view.Doshas) == 0 {
		view.DoshasTitle = ctx.T("noDoshas")
	} else {
		view.DoshasTitle = ctx.T("doshas")
	}

	return view
}

func personSummary(label string, p *domain.MatchedPerson) *PersonSummaryView {
	if p == nil {
		return nil
	}
	return &PersonSummaryView{
		Label:     label,
		Name:      p.Name,
		Rashi:     p.Rashi,
		Nakshatra: p.Nakshatra,
	}
}
