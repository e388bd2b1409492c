package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrRequestInFlight = errors.New("previous request is still in flight")
	ErrStaleResult     = errors.New("result arrived after the view was reset")
	ErrChartNotFound   = errors.New("chart not found")
	ErrSessionNotFound = errors.New("chat session not found")
	ErrUnknownRashi    = errors.New("unknown rashi")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
)

// ServiceError ошибка запроса к внешнему сервису расчётов.
// Status == 0 означает, что сервис недоступен (ошибка транспорта).
type ServiceError struct {
	Status int
	Detail string
	Err    error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("astro service unavailable: %v", e.Err)
	}
	if e.Detail == "" {
		return fmt.Sprintf("astro service error [status=%d]", e.Status)
	}
	return fmt.Sprintf("astro service error [status=%d]: %s", e.Status, e.Detail)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// AsServiceError извлекает ServiceError из цепочки ошибок
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// BusinessError ошибка бизнес-логики, которая уже залогирована в UseCase
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}
