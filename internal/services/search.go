package services

import (
	"fmt"
	"regexp"
	"strings"
)

// Condition is a parameterized SQL fragment: a WHERE-clause body plus the
// values bound to its placeholders. Search input never reaches the query
// text itself.
type Condition struct {
	Clause string
	Args   []any
}

var digitsOnlyRe = regexp.MustCompile(`^[0-9]*$`)

// TermSet is a normalized set of search terms.
type TermSet struct {
	Terms      []string
	DigitsOnly bool
	MaxLen     int // longest trimmed term, drives the zip-code heuristic
}

// NewTermSet accepts the raw searchTerm param (a string, a number, or a list
// of either), trims every term and classifies the set. A missing, empty or
// all-blank term set is a domain error (code 0).
func NewTermSet(raw any) (TermSet, error) {
	var terms []string
	switch v := raw.(type) {
	case nil:
	case string:
		terms = []string{v}
	case []string:
		terms = v
	case float64:
		terms = []string{formatNumberTerm(v)}
	case []any:
		for _, e := range v {
			switch t := e.(type) {
			case string:
				terms = append(terms, t)
			case float64:
				terms = append(terms, formatNumberTerm(t))
			default:
				terms = append(terms, fmt.Sprint(t))
			}
		}
	default:
		terms = []string{fmt.Sprint(v)}
	}

	set := TermSet{DigitsOnly: true}
	empty := true
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term != "" {
			empty = false
		}
		if len(term) > set.MaxLen {
			set.MaxLen = len(term)
		}
		set.DigitsOnly = set.DigitsOnly && digitsOnlyRe.MatchString(term)
		set.Terms = append(set.Terms, term)
	}

	if empty {
		return TermSet{}, NewAPIError(0, "Empty search term")
	}
	return set, nil
}

func formatNumberTerm(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprint(f)
}

// Match yields the comparison for this term set: equality for one term,
// an IN list for several.
func (t TermSet) Match() Condition {
	if len(t.Terms) == 1 {
		return Condition{Clause: "= ?", Args: []any{t.Terms[0]}}
	}
	args := make([]any, 0, len(t.Terms))
	for _, term := range t.Terms {
		args = append(args, term)
	}
	return Condition{Clause: "IN (" + placeholders(len(t.Terms)) + ")", Args: args}
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// FieldMatch applies a comparison to one or more columns, OR'd together.
func FieldMatch(match Condition, columns ...string) Condition {
	parts := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns)*len(match.Args))
	for _, col := range columns {
		parts = append(parts, col+" "+match.Clause)
		args = append(args, match.Args...)
	}
	return Condition{Clause: strings.Join(parts, " OR "), Args: args}
}

// CustomerIDMatch builds the membership condition for the customer-number
// sub-lookup. Returns nil when no customer matched, so the caller omits the
// clause entirely.
func CustomerIDMatch(ids []string) *Condition {
	if len(ids) == 0 {
		return nil
	}
	if len(ids) == 1 {
		return &Condition{Clause: "o.user_id = ?", Args: []any{ids[0]}}
	}
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, id)
	}
	return &Condition{Clause: "o.user_id IN (" + placeholders(len(ids)) + ")", Args: args}
}

// ScopeToShop restricts a condition to one shop's rows.
func ScopeToShop(cond Condition, column, shopID string) Condition {
	return Condition{
		Clause: column + " = ? AND (" + cond.Clause + ")",
		Args:   append([]any{shopID}, cond.Args...),
	}
}

func isExplicitSearchType(searchType string) bool {
	switch searchType {
	case "orderid", "customerid", "email", "orderno":
		return true
	}
	return false
}

// OrderSearchClause builds the order-table condition for a term set.
//
// Explicit search types pin the matched column. Otherwise digits-only sets
// match order and bill numbers (plus both zip columns when the longest term
// is exactly 5 characters) and OR in the customer-number sub-match when one
// was found; everything else matches city and last-name columns.
func OrderSearchClause(terms TermSet, searchType string, customerMatch *Condition) Condition {
	match := terms.Match()

	switch searchType {
	case "orderid":
		return FieldMatch(match, "o.id")
	case "customerid":
		return FieldMatch(match, "o.user_id")
	case "email":
		return FieldMatch(match, "o.bill_email")
	case "orderno":
		return FieldMatch(match, "o.order_no")
	default:
		if !terms.DigitsOnly {
			return FieldMatch(match, "o.bill_city", "o.del_city", "o.bill_lname", "o.del_lname")
		}
		columns := []string{"o.order_no", "o.bill_no"}
		if terms.MaxLen == 5 {
			columns = append(columns, "o.bill_zip", "o.del_zip")
		}
		cond := FieldMatch(match, columns...)
		if customerMatch != nil {
			cond = Condition{
				Clause: cond.Clause + " OR " + customerMatch.Clause,
				Args:   append(cond.Args, customerMatch.Args...),
			}
		}
		return cond
	}
}
