package value

import (
	"strings"

	"scoreboard/internal/domain"
	"scoreboard/pkg/errcodes"
)

// Direction задаёт, в какую сторону меняется счёт.
type Direction string

const (
	Increase Direction = "increase"
	Decrease Direction = "decrease"
)

func (d Direction) String() string {
	return string(d)
}

func (d Direction) Valid() bool {
	return d == Increase || d == Decrease
}

// ParseDirection принимает "increase"/"decrease" и короткие "+"/"-".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "increase", "inc", "+", "plus":
		return Increase, nil
	case "decrease", "dec", "-", "minus":
		return Decrease, nil
	}

	return "", domain.NewError(errcodes.InvalidDirection, "unknown score direction "+s)
}
