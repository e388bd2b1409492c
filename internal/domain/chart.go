package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const HousesCount = 12

// Rashis названия знаков в порядке номеров 1..12
var Rashis = [HousesCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// RashisHindi названия знаков на хинди в том же порядке
var RashisHindi = [HousesCount]string{
	"मेष", "वृषभ", "मिथुन", "कर्क", "सिंह", "कन्या",
	"तुला", "वृश्चिक", "धनु", "मकर", "कुंभ", "मीन",
}

// RashiNumber возвращает номер знака 1..12 по английскому имени без учёта регистра
func RashiNumber(name string) (int, bool) {
	for i, r := range Rashis {
		if strings.EqualFold(r, name) {
			return i + 1, true
		}
	}
	return 0, false
}

// RashiName возвращает имена знака по номеру
func RashiName(num int) (string, string, bool) {
	if num < 1 || num > HousesCount {
		return "", "", false
	}
	return Rashis[num-1], RashisHindi[num-1], true
}

// IsRashi проверяет, что имя совпадает с одним из двенадцати знаков
func IsRashi(name string) bool {
	for _, r := range Rashis {
		if r == name {
			return true
		}
	}
	return false
}

// PlanetPosition положение планеты в знаке
type PlanetPosition struct {
	Rashi      string  `json:"rashi"`
	RashiHindi string  `json:"rashi_hindi"`
	RashiNum   int     `json:"rashi_num"`
	Degree     float64 `json:"degree"`
	Longitude  float64 `json:"longitude,omitempty"`
}

// Planets упорядоченное отображение "планета -> положение".
// Порядок ключей совпадает с порядком в ответе сервиса.
type Planets struct {
	order  []string
	byName map[string]PlanetPosition
}

// NamedPlanet пара для построения Planets в заданном порядке
type NamedPlanet struct {
	Name     string
	Position PlanetPosition
}

func NewPlanets(entries ...NamedPlanet) Planets {
	var p Planets
	for _, e := range entries {
		p.put(e.Name, e.Position)
	}
	return p
}

func (p *Planets) put(name string, pos PlanetPosition) {
	if p.byName == nil {
		p.byName = make(map[string]PlanetPosition)
	}
	if _, exists := p.byName[name]; !exists {
		p.order = append(p.order, name)
	}
	p.byName[name] = pos
}

func (p Planets) Len() int {
	return len(p.order)
}

// Names возвращает имена планет в исходном порядке
func (p Planets) Names() []string {
	names := make([]string, len(p.order))
	copy(names, p.order)
	return names
}

func (p Planets) Get(name string) (PlanetPosition, bool) {
	pos, ok := p.byName[name]
	return pos, ok
}

// Each обходит планеты в исходном порядке
func (p Planets) Each(fn func(name string, pos PlanetPosition)) {
	for _, name := range p.order {
		fn(name, p.byName[name])
	}
}

// UnmarshalJSON разбирает объект планет с сохранением порядка ключей
func (p *Planets) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("planets: invalid json")
	}

	result := gjson.ParseBytes(data)
	if result.Type == gjson.Null {
		*p = Planets{}
		return nil
	}
	if !result.IsObject() {
		return fmt.Errorf("planets: expected object, got %s", result.Type)
	}

	var (
		parsed  Planets
		itemErr error
	)
	result.ForEach(func(key, value gjson.Result) bool {
		var pos PlanetPosition
		if err := json.Unmarshal([]byte(value.Raw), &pos); err != nil {
			itemErr = fmt.Errorf("planets: %s: %w", key.String(), err)
			return false
		}
		parsed.put(key.String(), pos)
		return true
	})
	if itemErr != nil {
		return itemErr
	}

	*p = parsed
	return nil
}

// MarshalJSON сериализует планеты в исходном порядке
func (p Planets) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(p.byName[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// House фиксированная позиция карты и знак, который её занимает
type House struct {
	HouseNum   int    `json:"house_num"`
	RashiNum   int    `json:"rashi_num"`
	Rashi      string `json:"rashi,omitempty"`
	RashiHindi string `json:"rashi_hindi,omitempty"`
}

type Lagna struct {
	Rashi      string  `json:"rashi"`
	RashiHindi string  `json:"rashi_hindi"`
	RashiNum   int     `json:"rashi_num"`
	Degree     float64 `json:"degree"`
}

type Nakshatra struct {
	Name string `json:"nakshatra"`
	Num  int    `json:"nakshatra_num,omitempty"`
	Pada int    `json:"pada"`
}

type WesternZodiac struct {
	Symbol    string `json:"symbol"`
	Sign      string `json:"sign"`
	SignHindi string `json:"sign_hindi"`
	Dates     string `json:"dates"`
}

// ChartResult результат расчёта натальной карты; не изменяется после получения
type ChartResult struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Gender         Gender             `json:"gender"`
	DateOfBirth    string             `json:"date_of_birth"`
	TimeOfBirth    string             `json:"time_of_birth"`
	PlaceOfBirth   string             `json:"place_of_birth"`
	Latitude       float64            `json:"latitude,omitempty"`
	Longitude      float64            `json:"longitude,omitempty"`
	Lagna          Lagna              `json:"lagna"`
	MoonRashi      string             `json:"moon_rashi"`
	MoonRashiHindi string             `json:"moon_rashi_hindi"`
	Nakshatra      Nakshatra          `json:"nakshatra"`
	WesternZodiac  *WesternZodiac     `json:"western_zodiac,omitempty"`
	Houses         []House            `json:"houses"`
	Planets        Planets            `json:"planets"`
	Ayanamsa       float64            `json:"ayanamsa,omitempty"`
	Personality    *PersonalityReport `json:"personality,omitempty"`
	CreatedAt      *time.Time         `json:"created_at,omitempty"`
}

// SignOfHouse возвращает номер знака, занимающего дом houseNum
func (c ChartResult) SignOfHouse(houseNum int) (int, bool) {
	return SignOfHouse(c.Houses, houseNum)
}

func SignOfHouse(houses []House, houseNum int) (int, bool) {
	for _, h := range houses {
		if h.HouseNum == houseNum {
			return h.RashiNum, true
		}
	}
	return 0, false
}
