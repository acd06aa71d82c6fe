// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HelpMethod is a named way to help (money, food, clothes, ...) that can be
// requested by many campaigns.
type HelpMethod struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// IDResponse carries the identifier of a freshly written record.
type IDResponse struct {
	ID string `json:"id"`
}
