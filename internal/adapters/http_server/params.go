package httpserver

import (
	"net/url"
	"strconv"
	"time"

	"hotel_booking/internal/domain"
)

// Query-parameter parsing. Policy for numeric params: a value that does
// not parse is a 400, not a silently dropped filter.

func strParam(q url.Values, key string) *string {
	if v := q.Get(key); v != "" {
		return &v
	}
	return nil
}

func intParam(q url.Values, key string) (*int, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, domain.Invalid("invalid " + key)
	}
	return &n, nil
}

func floatParam(q url.Values, key string) (*float64, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, domain.Invalid("invalid " + key)
	}
	return &f, nil
}

// boolParam keeps a deliberately loose contract: any non-empty value
// other than "true" means false.
func boolParam(q url.Values, key string) *bool {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	b := v == "true"
	return &b
}

func dateParam(q url.Values, key string) (*time.Time, error) {
	v := q.Get(key)
	if v == "" {
		return nil, nil
	}
	t, err := domain.ParseDate(v)
	if err != nil {
		return nil, domain.Invalid("invalid " + key)
	}
	return &t, nil
}

func pageParam(q url.Values) (domain.Page, error) {
	p := domain.DefaultPage()
	if n, err := intParam(q, "page"); err != nil {
		return p, err
	} else if n != nil {
		if *n < 1 {
			return p, domain.Invalid("invalid page")
		}
		p.Number = *n
	}
	if n, err := intParam(q, "limit"); err != nil {
		return p, err
	} else if n != nil {
		if *n < 1 {
			return p, domain.Invalid("invalid limit")
		}
		p.Limit = *n // no upper bound
	}
	return p, nil
}
