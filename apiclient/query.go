package apiclient

import (
	"net/url"
	"strconv"
	"time"
)

// isoLayout matches the millisecond UTC timestamps browsers send.
const isoLayout = "2006-01-02T15:04:05.000Z"

// Query builds query strings, dropping every zero-valued parameter.
type Query struct {
	values url.Values
}

func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

func (q *Query) Int(key string, v int) *Query {
	if v != 0 {
		q.values.Set(key, strconv.Itoa(v))
	}
	return q
}

func (q *Query) String(key, v string) *Query {
	if v != "" {
		q.values.Set(key, v)
	}
	return q
}

func (q *Query) Time(key string, v *time.Time) *Query {
	if v != nil && !v.IsZero() {
		q.values.Set(key, v.UTC().Format(isoLayout))
	}
	return q
}

func (q *Query) Values() url.Values {
	return q.values
}
