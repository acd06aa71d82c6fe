// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"strconv"
	"strings"
)

// ParseID parses a numeric identifier taken from the request. Values that
// are not integers or are below 1 produce a *ValidationErrors naming param.
func ParseID(location, param, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		verrs := &ValidationErrors{}
		verrs.Add(location, param, raw, "Id must be a positive integer")
		return 0, verrs
	}
	return id, nil
}

// ParseIDs parses a list of identifiers, collecting a failure per bad value.
// Empty entries are skipped.
func ParseIDs(location, param string, raw []string) ([]int64, error) {
	ids := make([]int64, 0, len(raw))
	verrs := &ValidationErrors{}
	for _, value := range raw {
		if strings.TrimSpace(value) == "" {
			continue
		}
		id, err := ParseID(location, param, value)
		if err != nil {
			if mergeErr := verrs.Merge(err); mergeErr != nil {
				return nil, mergeErr
			}
			continue
		}
		ids = append(ids, id)
	}
	if err := verrs.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
