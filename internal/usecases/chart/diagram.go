package chart

import "github.com/admin/jyotish/vedic-client/internal/domain"

// Glyph подпись планеты внутри дома
type Glyph struct {
	Planet string `json:"planet"`
	Label  string `json:"label"`
	At     Point  `json:"at"`
}

// Slot одна позиция дома на диаграмме
type Slot struct {
	HouseNum  int     `json:"house_num"`
	RashiNum  int     `json:"rashi_num,omitempty"`
	Position  Point   `json:"position"`
	Occupants []Glyph `json:"occupants"`
}

// Diagram готовая к отрисовке карта; слотов всегда двенадцать
type Diagram struct {
	Size    int                      `json:"size"`
	Outline [4]Point                 `json:"outline"`
	Lines   [4]Line                  `json:"lines"`
	Slots   [domain.HousesCount]Slot `json:"slots"`
}

// OccupantsOf возвращает планеты, чей rashi_num совпадает со знаком дома houseNum,
// в порядке отображения планет. Если дом отсутствует в houses, результат пуст.
func OccupantsOf(houseNum int, houses []domain.House, planets domain.Planets) []string {
	sign, ok := domain.SignOfHouse(houses, houseNum)
	if !ok {
		return nil
	}

	var occupants []string
	planets.Each(func(name string, pos domain.PlanetPosition) {
		if pos.RashiNum == sign {
			occupants = append(occupants, name)
		}
	})
	return occupants
}

// Build раскладывает дома и планеты по диаграмме.
// Пустые houses или planets дают скелет карты без глифов.
func Build(houses []domain.House, planets domain.Planets) Diagram {
	d := Diagram{
		Size:    ViewBoxSize,
		Outline: Outline,
		Lines:   GridLines,
	}

	for i, pos := range LayoutPositions() {
		houseNum := i + 1
		slot := Slot{
			HouseNum:  houseNum,
			Position:  pos,
			Occupants: []Glyph{},
		}
		if sign, ok := domain.SignOfHouse(houses, houseNum); ok {
			slot.RashiNum = sign
		}

		for idx, planet := range OccupantsOf(houseNum, houses, planets) {
			slot.Occupants = append(slot.Occupants, Glyph{
				Planet: planet,
				Label:  glyphLabel(planet),
				At:     Point{X: pos.X, Y: pos.Y + GlyphOffset + idx*GlyphStep},
			})
		}
		d.Slots[i] = slot
	}

	return d
}

func glyphLabel(planet string) string {
	runes := []rune(planet)
	if len(runes) > GlyphRunes {
		runes = runes[:GlyphRunes]
	}
	return string(runes)
}

// FromChart строит диаграмму по результату расчёта; nil даёт пустой скелет
func FromChart(c *domain.ChartResult) Diagram {
	if c == nil {
		return Build(nil, domain.Planets{})
	}
	return Build(c.Houses, c.Planets)
}
