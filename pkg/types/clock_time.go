package types

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidClockTime базовая ошибка для некорректной строки времени
var ErrInvalidClockTime = errors.New("invalid clock time format")

// ClockLayout формат 12-часового времени, в котором фиксируется въезд ("9:30 AM")
const ClockLayout = "3:04 PM"

// ParseError ошибка разбора строки времени формата "H:MM AM|PM"
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse clock time %q: %s", e.Input, e.Reason)
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrInvalidClockTime)
func (e *ParseError) Unwrap() error {
	return ErrInvalidClockTime
}

// ClockTime строка времени в 12-часовом формате ("9:30 AM", "12:05 pm")
type ClockTime string

// NewClockTime форматирует момент времени в ClockTime
func NewClockTime(t time.Time) ClockTime {
	return ClockTime(t.Format(ClockLayout))
}

// String возвращает строковое представление
func (c ClockTime) String() string {
	return string(c)
}

// IsZero возвращает true, если время не задано
func (c ClockTime) IsZero() bool {
	return strings.TrimSpace(string(c)) == ""
}

// Validate проверяет формат без привязки к дате
func (c ClockTime) Validate() error {
	_, _, err := c.clock()
	return err
}

// On привязывает время к календарному дню ref (год, месяц, день и часовой пояс берутся из ref).
// Сессии, переходящие через полночь, этим методом восстановить нельзя.
func (c ClockTime) On(ref time.Time) (time.Time, error) {
	hour, minute, err := c.clock()
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location()), nil
}

// ParseClockTime разбирает строку "H:MM AM|PM" относительно дня ref
func ParseClockTime(s string, ref time.Time) (time.Time, error) {
	return ClockTime(s).On(ref)
}

// FormatClockTime форматирует момент времени в виде "3:04 PM"
func FormatClockTime(t time.Time) string {
	return t.Format(ClockLayout)
}

// clock возвращает час (0-23) и минуту
func (c ClockTime) clock() (int, int, error) {
	input := string(c)

	parts := strings.Split(strings.TrimSpace(input), " ")
	if len(parts) != 2 {
		return 0, 0, &ParseError{Input: input, Reason: "expected \"H:MM AM|PM\""}
	}

	hm := strings.Split(parts[0], ":")
	if len(hm) != 2 {
		return 0, 0, &ParseError{Input: input, Reason: "missing ':' separator"}
	}

	hour, err := strconv.Atoi(hm[0])
	if err != nil || len(hm[0]) > 2 {
		return 0, 0, &ParseError{Input: input, Reason: "hour is not a number"}
	}
	if hour < 1 || hour > 12 {
		return 0, 0, &ParseError{Input: input, Reason: "hour out of range 1-12"}
	}

	if len(hm[1]) != 2 {
		return 0, 0, &ParseError{Input: input, Reason: "minute must have two digits"}
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil {
		return 0, 0, &ParseError{Input: input, Reason: "minute is not a number"}
	}
	if minute < 0 || minute > 59 {
		return 0, 0, &ParseError{Input: input, Reason: "minute out of range 0-59"}
	}

	switch strings.ToUpper(parts[1]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return 0, 0, &ParseError{Input: input, Reason: "meridiem must be AM or PM"}
	}

	return hour, minute, nil
}
