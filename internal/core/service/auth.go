package service

import (
	"fmt"

	"marvin/internal/core/domain"
)

// Authorize decides whether the request behind actx may invoke a command
// requiring min. Pure function: a denied request must cause no side effects
// anywhere, so the decision itself has none either.
func Authorize(actx domain.AccessContext, min domain.Level) error {
	effective := actx.Effective()
	if effective >= min {
		return nil
	}

	return fmt.Errorf("%w: requires %s, effective level is %s",
		domain.ErrAccessDenied, min, effective)
}
