package chart

import "github.com/admin/jyotish/vedic-client/internal/domain"

const (
	ViewBoxSize = 300

	// HouseMarkerRadius радиус кружка с номером дома
	HouseMarkerRadius = 12
	// GlyphOffset смещение первого глифа планеты вниз от центра дома
	GlyphOffset = 20
	// GlyphStep шаг по вертикали между глифами в одном доме
	GlyphStep = 12
	// GlyphRunes количество символов имени планеты в глифе
	GlyphRunes = 2
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Line struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// housePositions позиции домов 1..12 северо-индийской карты
var housePositions = [domain.HousesCount]Point{
	{X: 150, Y: 10},  // 1 верх
	{X: 220, Y: 50},  // 2
	{X: 260, Y: 120}, // 3
	{X: 260, Y: 180}, // 4
	{X: 220, Y: 250}, // 5
	{X: 150, Y: 290}, // 6 низ
	{X: 80, Y: 250},  // 7
	{X: 40, Y: 180},  // 8
	{X: 40, Y: 120},  // 9
	{X: 80, Y: 50},   // 10
	{X: 110, Y: 80},  // 11
	{X: 190, Y: 80},  // 12
}

// Outline внешний ромб
var Outline = [4]Point{
	{X: 150, Y: 0},
	{X: 300, Y: 150},
	{X: 150, Y: 300},
	{X: 0, Y: 150},
}

// GridLines две ортогональные и две диагональные линии внутри ромба
var GridLines = [4]Line{
	{From: Point{X: 0, Y: 150}, To: Point{X: 300, Y: 150}},
	{From: Point{X: 150, Y: 0}, To: Point{X: 150, Y: 300}},
	{From: Point{X: 75, Y: 75}, To: Point{X: 225, Y: 225}},
	{From: Point{X: 225, Y: 75}, To: Point{X: 75, Y: 225}},
}

// LayoutPositions возвращает фиксированные координаты домов; индекс i соответствует дому i+1
func LayoutPositions() [domain.HousesCount]Point {
	return housePositions
}
