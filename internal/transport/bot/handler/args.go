package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	// MaxTeamNameLen ограничивает ввод в боте; реестр принимает любое непустое имя.
	MaxTeamNameLen = 64
	// MaxScoreDelta ограничивает одно изменение счёта.
	MaxScoreDelta = 1_000_000
)

var (
	nameRule  = "required,max=" + strconv.Itoa(MaxTeamNameLen) //nolint:gochecknoglobals
	deltaRule = "gt=0,lte=" + strconv.Itoa(MaxScoreDelta)     //nolint:gochecknoglobals
)

var (
	errMissingArgument = errors.New("missing argument")
	errNameTooLong     = errors.New("team name is too long")
	errInvalidDelta    = errors.New("invalid score delta")
)

type addTeamArgs struct {
	Name string
}

type scoreArgs struct {
	Delta int
}

// commandArgs возвращает всё, что после команды, без крайних пробелов.
func commandArgs(text string) string {
	_, rest, _ := strings.Cut(strings.TrimSpace(text), " ")
	return strings.TrimSpace(rest)
}

func parseAddTeam(validate *validator.Validate, text string) (addTeamArgs, error) {
	args := addTeamArgs{Name: commandArgs(text)}

	if err := validate.Var(args.Name, nameRule); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "max" {
			return addTeamArgs{}, errNameTooLong
		}

		return addTeamArgs{}, errMissingArgument
	}

	return args, nil
}

func parseScore(validate *validator.Validate, text string) (scoreArgs, error) {
	raw := commandArgs(text)
	if raw == "" {
		return scoreArgs{}, errMissingArgument
	}

	delta, err := strconv.Atoi(strings.TrimPrefix(raw, "+"))
	if err != nil {
		return scoreArgs{}, errInvalidDelta
	}

	args := scoreArgs{Delta: delta}
	if err := validate.Var(args.Delta, deltaRule); err != nil {
		return scoreArgs{}, errInvalidDelta
	}

	return args, nil
}
