// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Rule is a single check over a value of type T.
//
// Field is the name used for field-level scoping in Validate; Param is the
// request parameter name reported to the client. They differ when the same
// parameter is checked differently per operation.
type Rule[T any] struct {
	Field    string
	Param    string
	Location string
	Value    func(T) any
	Check    func(T) bool
	Message  string
}

// evaluate runs the rules selected by fields (all rules when fields is empty)
// and collects every failure.
func evaluate[T any](obj T, rules []Rule[T], fields ...string) error {
	selected := rules
	if len(fields) > 0 {
		selected = make([]Rule[T], 0, len(rules))
		for _, f := range fields {
			found := false
			for _, r := range rules {
				if r.Field == f {
					selected = append(selected, r)
					found = true
				}
			}
			if !found {
				return ErrUnknownField
			}
		}
	}

	verrs := &ValidationErrors{}
	for _, r := range selected {
		if r.Check(obj) {
			continue
		}
		param := r.Param
		if param == "" {
			param = r.Field
		}
		location := r.Location
		if location == "" {
			location = LocationBody
		}
		verrs.Add(location, param, r.Value(obj), r.Message)
	}

	return verrs.Err()
}

var emailPattern = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

// IsEmail reports whether s looks like an e-mail address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(strings.TrimSpace(s))
}

// minLen counts runes, not bytes.
func minLen(s string, n int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= n
}

// byteLenBetween bounds the raw byte length; bcrypt only looks at 72 bytes.
func byteLenBetween(s string, lo, hi int) bool {
	return len(s) >= lo && len(s) <= hi
}

func isDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}
