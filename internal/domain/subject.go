package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateOfBirthLayout = "02-01-2006"
	TimeOfBirthLayout = "15:04"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// BirthSubject данные рождения, отправляемые во внешний сервис
type BirthSubject struct {
	Name         string `json:"name" validate:"required,notblank"`
	Gender       Gender `json:"gender" validate:"required,oneof=Male Female Other"`
	DateOfBirth  string `json:"date_of_birth" validate:"required,ddmmyyyy"`
	TimeOfBirth  string `json:"time_of_birth" validate:"required,hhmm"`
	PlaceOfBirth string `json:"place_of_birth" validate:"required,notblank"`
}

// Normalized возвращает копию с обрезанными пробелами
func (s BirthSubject) Normalized() BirthSubject {
	return BirthSubject{
		Name:         strings.TrimSpace(s.Name),
		Gender:       Gender(strings.TrimSpace(string(s.Gender))),
		DateOfBirth:  strings.TrimSpace(s.DateOfBirth),
		TimeOfBirth:  strings.TrimSpace(s.TimeOfBirth),
		PlaceOfBirth: strings.TrimSpace(s.PlaceOfBirth),
	}
}

// BirthMoment собирает локальное время рождения из даты и времени
func (s BirthSubject) BirthMoment() (time.Time, error) {
	moment, err := time.Parse(DateOfBirthLayout+" "+TimeOfBirthLayout, s.DateOfBirth+" "+s.TimeOfBirth)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid birth moment %q %q: %w", s.DateOfBirth, s.TimeOfBirth, err)
	}
	return moment, nil
}

// MatchingRequest пара субъектов для расчёта совместимости
type MatchingRequest struct {
	Person1 BirthSubject `json:"person1" validate:"required"`
	Person2 BirthSubject `json:"person2" validate:"required"`
}
