package astroApi

import "encoding/json"

// BirthDetails данные рождения в формате сервиса
type BirthDetails struct {
	Name         string `json:"name"`
	Gender       string `json:"gender"`
	DateOfBirth  string `json:"date_of_birth"`
	TimeOfBirth  string `json:"time_of_birth"`
	PlaceOfBirth string `json:"place_of_birth"`
}

type CitiesResponse struct {
	Cities []string `json:"cities"`
}

type MatchingRequest struct {
	Person1 BirthDetails `json:"person1"`
	Person2 BirthDetails `json:"person2"`
}

// MatchingResponse обёртка ответа; сам результат разбирается уровнем сервиса
type MatchingResponse struct {
	MatchingResult json.RawMessage `json:"matching_result"`
}

type ChatRequest struct {
	Message   string  `json:"message"`
	SessionID string  `json:"session_id"`
	ChartID   *string `json:"chart_id"`
}

type ChatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

type ChatHistoryMessage struct {
	SessionID   string  `json:"session_id"`
	ChartID     *string `json:"chart_id"`
	UserMessage string  `json:"user_message"`
	AIResponse  string  `json:"ai_response"`
	Timestamp   string  `json:"timestamp"`
}

type ChatHistoryResponse struct {
	SessionID string               `json:"session_id"`
	Messages  []ChatHistoryMessage `json:"messages"`
}
