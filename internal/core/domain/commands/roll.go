package commands

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"marvin/internal/core/domain"
)

const (
	maxDice  = 100
	maxSides = 1000
)

// Roll throws dice. "/roll" is one d6, "/roll NdM" throws N dice with M sides.
type Roll struct{}

func NewRoll() *Roll {
	return &Roll{}
}

func (r *Roll) Execute(_ context.Context, req *domain.Request) ([]domain.Response, error) {
	count, sides, err := parseDice(strings.TrimSpace(req.Args))
	if err != nil {
		return nil, err
	}

	total := 0
	throws := make([]string, count)
	for i := range count {
		throw := rand.IntN(sides) + 1
		total += throw
		throws[i] = strconv.Itoa(throw)
	}

	text := fmt.Sprintf("rolled %dd%d: %s = %d", count, sides, strings.Join(throws, " + "), total)

	return []domain.Response{domain.Text(domain.FormatPlain, text)}, nil
}

func parseDice(spec string) (count, sides int, err error) {
	if spec == "" {
		return 1, 6, nil
	}

	parts := strings.SplitN(strings.ToLower(spec), "d", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: usage: /roll or /roll NdM", domain.ErrInvalidArgument)
	}

	count, err = strconv.Atoi(parts[0])
	if err != nil || count < 1 || count > maxDice {
		return 0, 0, fmt.Errorf("%w: dice count must be 1-%d", domain.ErrInvalidArgument, maxDice)
	}

	sides, err = strconv.Atoi(parts[1])
	if err != nil || sides < 2 || sides > maxSides {
		return 0, 0, fmt.Errorf("%w: sides must be 2-%d", domain.ErrInvalidArgument, maxSides)
	}

	return count, sides, nil
}
