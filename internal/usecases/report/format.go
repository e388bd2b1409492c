package report

import (
	"strings"

	"github.com/admin/jyotish/vedic-client/internal/domain"
	"github.com/admin/jyotish/vedic-client/internal/pkg/locale"
	"github.com/shopspring/decimal"
)

// FormatDegree градусы ровно с двумя знаками после запятой
func FormatDegree(deg float64) string {
	return decimal.NewFromFloat(deg).StringFixed(2) + "°"
}

// formatNumber число без лишних нулей: 28 -> "28", 27.5 -> "27.5"
func formatNumber(v float64) string {
	return decimal.NewFromFloat(v).String()
}

// FormatScore "полученный/максимальный"
func FormatScore(obtained, max float64) string {
	return formatNumber(obtained) + "/" + formatNumber(max)
}

// rashiLabel имя знака для языка; при отсутствии имени в ответе берётся из справочника по номеру
func rashiLabel(lang domain.Language, name, nameHindi string, num int) string {
	if name == "" || nameHindi == "" {
		if en, hi, ok := domain.RashiName(num); ok {
			if name == "" {
				name = en
			}
			if nameHindi == "" {
				nameHindi = hi
			}
		}
	}
	return locale.Select(lang, name, nameHindi)
}

func genderLabel(ctx locale.Context, g domain.Gender) string {
	switch g {
	case domain.GenderMale:
		return ctx.T("male")
	case domain.GenderFemale:
		return ctx.T("female")
	case domain.GenderOther:
		return ctx.T("other")
	}
	return string(g)
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
