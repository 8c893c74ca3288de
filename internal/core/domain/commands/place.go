package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"marvin/internal/core/domain"
)

// Place turns a "lat,lon" argument into a location pin.
type Place struct{}

func NewPlace() *Place {
	return &Place{}
}

func (p *Place) Execute(_ context.Context, req *domain.Request) ([]domain.Response, error) {
	parts := strings.SplitN(req.Args, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: usage: /place <lat>,<lon>", domain.ErrInvalidArgument)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil || lat < -90 || lat > 90 {
		return nil, fmt.Errorf("%w: latitude must be a number between -90 and 90",
			domain.ErrInvalidArgument)
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: longitude must be a number between -180 and 180",
			domain.ErrInvalidArgument)
	}

	return []domain.Response{domain.Location(lat, lon)}, nil
}
