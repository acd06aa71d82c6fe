// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-help-campaigns/models"
)

// campaignRow is one row of the campaign/help-method outer join. Method
// columns are NULL for campaigns without help methods.
type campaignRow struct {
	ID                int64
	OwnerID           int64
	Title             string
	Description       string
	Contact           string
	MethodID          sql.NullInt64
	MethodDescription sql.NullString
}

func scanCampaignRows(rows *sql.Rows) ([]campaignRow, error) {
	result := make([]campaignRow, 0, 16)

	for rows.Next() {
		var row campaignRow
		if err := rows.Scan(
			&row.ID,
			&row.OwnerID,
			&row.Title,
			&row.Description,
			&row.Contact,
			&row.MethodID,
			&row.MethodDescription,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return result, nil
}

// foldCampaigns groups joined rows by campaign id. Campaigns keep the order of
// their first row and every help method appears once per campaign, whatever
// the row order.
func foldCampaigns(rows []campaignRow) []models.Campaign {
	campaigns := make([]models.Campaign, 0, len(rows))
	index := make(map[int64]int, len(rows))
	seen := make(map[[2]int64]struct{}, len(rows))

	for _, row := range rows {
		i, ok := index[row.ID]
		if !ok {
			i = len(campaigns)
			index[row.ID] = i
			campaigns = append(campaigns, models.Campaign{
				ID:          strconv.FormatInt(row.ID, 10),
				OwnerID:     row.OwnerID,
				Title:       row.Title,
				Description: row.Description,
				Contact:     row.Contact,
				HelpMethods: []models.HelpMethod{},
			})
		}

		if !row.MethodID.Valid {
			continue
		}

		key := [2]int64{row.ID, row.MethodID.Int64}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		campaigns[i].HelpMethods = append(campaigns[i].HelpMethods, models.HelpMethod{
			ID:          row.MethodID.Int64,
			Description: row.MethodDescription.String,
		})
	}

	return campaigns
}
