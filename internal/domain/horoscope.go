package domain

// HoroscopeDateLayout формат даты гороскопа, YYYY-MM-DD
const HoroscopeDateLayout = "2006-01-02"

type DailyHoroscope struct {
	Rashi         string `json:"rashi"`
	Date          string `json:"date"`
	LuckyNumber   int    `json:"lucky_number"`
	LuckyColor    string `json:"lucky_color"`
	OverallRating int    `json:"overall_rating"`
	Career        string `json:"career"`
	Finance       string `json:"finance"`
	Health        string `json:"health"`
	Relationships string `json:"relationships"`
}
