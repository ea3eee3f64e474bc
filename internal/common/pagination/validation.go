package pagination

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedQuery = errors.New("pagination parameters must be integers")
	ErrInvalidPage    = errors.New("page number must start with 1")
	ErrInvalidLimit   = errors.New("page limit out of range")
)

// Validate checks pageNo >= 1 and 1 <= pageLimit <= cfg.MaxLimit.
func (p Params) Validate(cfg Config) error {
	if p.PageNo < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.PageNo)
	}
	if p.PageLimit < 1 || p.PageLimit > cfg.MaxLimit {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidLimit, p.PageLimit, cfg.MaxLimit)
	}
	return nil
}
