package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/locale"
	"github.com/admin/jyotish/vedic-client/internal/usecases/chart"
	"github.com/admin/jyotish/vedic-client/internal/usecases/report"
)

func field(label, value string) string {
	return styleLabel.Render(label+":") + " " + styleValue.Render(value)
}

func grid(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style { return styleTable }).
		Headers(headers...).
		Rows(rows...).
		String()
}

func joinBlocks(blocks ...string) string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			out = append(out, b)
		}
	}
	return strings.Join(out, "\n\n") + "\n"
}

// RenderChart карта рождения для терминала
func RenderChart(ctx locale.Context, v report.ChartView) string {
	header := []string{
		styleTitle.Render(v.Name),
		field(ctx.T("gender"), v.Gender),
		field(ctx.T("dateOfBirth"), v.DateOfBirth),
		field(ctx.T("timeOfBirth"), v.TimeOfBirth),
		field(ctx.T("placeOfBirth"), v.PlaceOfBirth),
	}

	lagna := v.Lagna.Sign
	if v.Lagna.Degree != "" {
		lagna += " " + v.Lagna.Degree
	}
	signs := []string{
		field(v.Lagna.Label, lagna),
		field(v.MoonSign.Label, v.MoonSign.Sign),
		field(v.Nakshatra.Label, v.Nakshatra.Text),
	}
	if v.WesternZodiac != nil {
		signs = append(signs, field(v.WesternZodiac.Label,
			strings.TrimSpace(v.WesternZodiac.Symbol+" "+v.WesternZodiac.Sign+" "+v.WesternZodiac.Dates)))
	}

	planetRows := make([][]string, 0, len(v.Planets))
	for _, p := range v.Planets {
		planetRows = append(planetRows, []string{p.Planet, p.Rashi, p.Degree})
	}

	houseRows := make([][]string, 0, len(v.Diagram.Slots))
	for _, slot := range v.Diagram.Slots {
		occupants := make([]string, 0, len(slot.Occupants))
		for _, g := range slot.Occupants {
			occupants = append(occupants, g.Label)
		}
		houseRows = append(houseRows, []string{
			strconv.Itoa(slot.HouseNum),
			houseRashi(v.Houses, slot.HouseNum),
			strings.Join(occupants, " "),
		})
	}

	return joinBlocks(
		strings.Join(header, "\n"),
		strings.Join(signs, "\n"),
		styleHeading.Render(ctx.T("planets"))+"\n"+
			grid([]string{ctx.T("planet"), ctx.T("rashi"), ctx.T("degree")}, planetRows),
		styleHeading.Render(ctx.T("houses"))+"\n"+
			grid([]string{"#", ctx.T("rashi"), ctx.T("planets")}, houseRows),
		renderPersonality(v.Personality),
	)
}

func houseRashi(houses []report.HouseRow, num int) string {
	for _, h := range houses {
		if h.HouseNum == num {
			return h.Rashi
		}
	}
	return ""
}

func renderPersonality(p *report.PersonalityView) string {
	if p == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styleHeading.Render(p.Title))
	if s := p.Summary; s != nil {
		if s.CoreTraits != nil && len(s.CoreTraits.Items) > 0 {
			fmt.Fprintf(&b, "\n%s %s", styleLabel.Render(s.CoreTraits.Title+":"), strings.Join(s.CoreTraits.Items, ", "))
		}
		for _, sec := range []*report.Section{s.LifeApproach, s.DominantElement} {
			if sec != nil && sec.Text != "" {
				fmt.Fprintf(&b, "\n%s %s", styleLabel.Render(sec.Title+":"), sec.Text)
			}
		}
	}
	if dp := p.DominantPlanet; dp != nil {
		fmt.Fprintf(&b, "\n%s", field(dp.Title, dp.Planet))
		if dp.Influence != "" {
			fmt.Fprintf(&b, "\n  %s", dp.Influence)
		}
	}
	if d := p.Detailed; d != nil {
		for _, sec := range d.Sections {
			fmt.Fprintf(&b, "\n%s %s", styleLabel.Render(sec.Title+":"), sec.Text)
		}
		for _, list := range d.Lists {
			fmt.Fprintf(&b, "\n%s %s", styleLabel.Render(list.Title+":"), strings.Join(list.Items, ", "))
		}
	}
	return b.String()
}

// RenderMatching результат Гун Милан
func RenderMatching(ctx locale.Context, v report.MatchingView) string {
	summary := []string{
		styleTitle.Render(v.Title),
		field(v.Score, v.PercentageText),
	}
	if v.Verdict != "" {
		summary = append(summary, styleValue.Render(v.Verdict))
	}
	for _, p := range []*report.PersonSummaryView{v.Person1, v.Person2} {
		if p == nil {
			continue
		}
		details := strings.TrimSpace(strings.Join([]string{p.Rashi, p.Nakshatra}, " "))
		line := field(p.Label, p.Name)
		if details != "" {
			line += " " + styleLabel.Render("("+details+")")
		}
		summary = append(summary, line)
	}

	rows := make([][]string, 0, len(v.Kootas))
	for _, k := range v.Kootas {
		status := styleBad.Render(k.Status)
		if k.Compatible {
			status = styleGood.Render(k.Status)
		}
		rows = append(rows, []string{k.Name, k.Score, status})
	}

	doshas := styleHeading.Render(v.DoshasTitle)
	for _, d := range v.Doshas {
		doshas += "\n• " + d
	}

	return joinBlocks(
		strings.Join(summary, "\n"),
		styleHeading.Render(v.KootasTitle)+"\n"+grid(nil, rows),
		doshas,
	)
}

// RenderHoroscope гороскоп на день
func RenderHoroscope(v report.HoroscopeView) string {
	header := []string{
		styleTitle.Render(v.Title + " · " + v.Rashi),
		styleLabel.Render(v.Date),
		field(v.LuckyNumber.Title, v.LuckyNumber.Text),
		field(v.LuckyColor.Title, v.LuckyColor.Text),
		field(v.Rating.Title, v.Rating.Text),
	}

	sections := make([]string, 0, len(v.Sections))
	for _, s := range v.Sections {
		sections = append(sections, styleHeading.Render(s.Title)+"\n"+s.Text)
	}

	return joinBlocks(strings.Join(header, "\n"), strings.Join(sections, "\n\n"))
}

// RenderSuggestions нумерованный список подсказок мест
func RenderSuggestions(suggestions []string) string {
	var b strings.Builder
	for i, s := range suggestions {
		fmt.Fprintf(&b, "%s %s\n", styleLabel.Render(fmt.Sprintf("%2d.", i+1)), s)
	}
	return b.String()
}

// RenderRashis список знаков с номерами на активном языке
func RenderRashis(ctx locale.Context) string {
	rows := make([][]string, 0, domain.HousesCount)
	for i := range domain.Rashis {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			domain.Rashis[i],
			locale.Select(ctx.Lang, domain.Rashis[i], domain.RashisHindi[i]),
		})
	}
	return grid([]string{"#", "rashi", ctx.T("rashi")}, rows) + "\n"
}

// RenderTurn одна реплика стенограммы
func RenderTurn(ctx locale.Context, turn domain.ConversationTurn) string {
	if turn.Role == domain.RoleUser {
		return styleUser.Render(ctx.T("you")+":") + " " + turn.Content + "\n"
	}
	return styleAstro.Render(ctx.T("assistant")+":") + " " + turn.Content + "\n"
}

// RenderDiagram SVG диаграммы, готовый к записи в файл
func RenderDiagram(v report.ChartView) []byte {
	return chart.RenderSVG(v.Diagram)
}
