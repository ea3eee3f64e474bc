package pagination

import (
	"fmt"
	"net/http"
	"strconv"
)

// Params are the listing query parameters.
type Params struct {
	PageNo    int // 1-based
	PageLimit int
}

// ParseQueryParams reads pageNo and pageLimit from the query string.
// Missing values take the config defaults. Values that are present but not
// integers fail with ErrMalformedQuery; range checks are left to Validate.
func ParseQueryParams(r *http.Request, cfg Config) (Params, error) {
	params := Params{
		PageNo:    cfg.DefaultPage,
		PageLimit: cfg.DefaultLimit,
	}

	q := r.URL.Query()
	if s := q.Get("pageNo"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return params, fmt.Errorf("%w: pageNo %q", ErrMalformedQuery, s)
		}
		params.PageNo = n
	}
	if s := q.Get("pageLimit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return params, fmt.Errorf("%w: pageLimit %q", ErrMalformedQuery, s)
		}
		params.PageLimit = n
	}
	return params, nil
}
