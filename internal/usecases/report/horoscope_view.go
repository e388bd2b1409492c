package report

import (
	"strconv"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/locale"
)

const MaxRating = 10

type HoroscopeView struct {
	Title       string    `json:"title"`
	Rashi       string    `json:"rashi"`
	Date        string    `json:"date"`
	LuckyNumber Section   `json:"lucky_number"`
	LuckyColor  Section   `json:"lucky_color"`
	Rating      Section   `json:"rating"`
	Sections    []Section `json:"sections"`
}

func BuildHoroscopeView(ctx locale.Context, h domain.DailyHoroscope) HoroscopeView {
	rashi := h.Rashi
	if num, ok := domain.RashiNumber(h.Rashi); ok {
		rashi = rashiLabel(ctx.Lang, "", "", num)
	}

	view := HoroscopeView{
		Title:       ctx.T("dailyHoroscope"),
		Rashi:       rashi,
		Date:        h.Date,
		LuckyNumber: Section{Title: ctx.T("luckyNumber"), Text: strconv.Itoa(h.LuckyNumber)},
		LuckyColor:  Section{Title: ctx.T("luckyColor"), Text: h.LuckyColor},
		Rating:      Section{Title: ctx.T("overallRating"), Text: strconv.Itoa(h.OverallRating) + "/" + strconv.Itoa(MaxRating)},
	}
	if h.LuckyColor == "" {
		view.LuckyColor.Text = ctx.T("notAvailable")
	}

	for _, sec := range []Section{
		{Title: ctx.T("career"), Text: h.Career},
		{Title: ctx.T("finance"), Text: h.Finance},
		{Title: ctx.T("health"), Text: h.Health},
		{Title: ctx.T("relationships"), Text: h.Relationships},
	} {
		if sec.Text != "" {
			view.Sections = append(view.Sections, sec)
		}
	}

	return view
}
