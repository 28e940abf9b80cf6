package gateway

import (
	"net/url"
	"strconv"
	"strings"
)

// Direction is a PostgREST sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Query describes the projection, filters, ordering and row limit of a read.
// The zero value is not usable: Select must name at least one field.
type Query struct {
	fields  []string
	filters []filter
	order   []string
	limit   int
}

type filter struct {
	field string
	value string
}

// Select starts a query projecting exactly fields.
func Select(fields ...string) Query {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" && f != "*" {
			out = append(out, f)
		}
	}
	return Query{fields: out}
}

// Eq adds an equality filter rendered as field=eq.value.
func (q Query) Eq(field, value string) Query {
	q.filters = append(append([]filter(nil), q.filters...), filter{field: field, value: value})
	return q
}

// Order appends a sort key. Nulls always sort last.
func (q Query) Order(field string, dir Direction) Query {
	q.order = append(append([]string(nil), q.order...), field+"."+string(dir)+".nullslast")
	return q
}

// Limit caps the number of rows returned. Values <= 0 clear the limit.
func (q Query) Limit(n int) Query {
	q.limit = n
	return q
}

// Fields returns the projected field names.
func (q Query) Fields() []string {
	return append([]string(nil), q.fields...)
}

func (q Query) valid() bool {
	return len(q.fields) > 0
}

// Values renders the query as URL parameters.
func (q Query) Values() url.Values {
	values := url.Values{}
	if len(q.fields) > 0 {
		values.Set("select", strings.Join(q.fields, ","))
	}
	for _, f := range q.filters {
		values.Add(f.field, "eq."+f.value)
	}
	if len(q.order) > 0 {
		values.Set("order", strings.Join(q.order, ","))
	}
	if q.limit > 0 {
		values.Set("limit", strconv.Itoa(q.limit))
	}
	return values
}
