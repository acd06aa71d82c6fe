// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	findCampaignOwner = `SELECT user_id FROM campaigns WHERE id = $1;`

	insertCampaign = `INSERT INTO campaigns (user_id, title, description, contact)
		VALUES ($1, $2, $3, $4)
		RETURNING id;`

	insertCampaignHelpMethod = `INSERT INTO campaign_help_methods (campaign_id, help_method_id, position)
		VALUES ($1, $2, $3);`

	updateCampaign = `UPDATE campaigns
		SET title = $1, description = $2, contact = $3
		WHERE id = $4;`

	deleteCampaignHelpMethods = `DELETE FROM campaign_help_methods WHERE campaign_id = $1;`

	deleteCampaign = `DELETE FROM campaigns WHERE id = $1;`

	findAllHelpMethods = `SELECT id, description FROM help_methods ORDER BY id;`

	findHelpMethod = `SELECT id, description FROM help_methods WHERE id = $1;`

	insertHelpMethod = `INSERT INTO help_methods (description) VALUES ($1) RETURNING id;`

	updateHelpMethod = `UPDATE help_methods SET description = $1 WHERE id = $2;`

	deleteHelpMethod = `DELETE FROM help_methods WHERE id = $1;`

	selectHelpDone = `SELECT hd.id, hd.campaign_id, hd.help_method_id, hm.description, hd.donation_log
		FROM help_done hd
		JOIN help_methods hm ON hm.id = hd.help_method_id`

	findAllHelpDone = selectHelpDone + `
		WHERE hd.campaign_id = $1
		ORDER BY hd.id;`

	findHelpDone = selectHelpDone + `
		WHERE hd.id = $1;`

	insertHelpDone = `INSERT INTO help_done (campaign_id, help_method_id, donation_log)
		VALUES ($1, $2, $3)
		RETURNING id;`

	deleteHelpDone = `DELETE FROM help_done WHERE id = $1;`

	selectUser = `SELECT id, name, last_name, to_char(date_of_birth, 'YYYY-MM-DD'), COALESCE(zip_code, ''),
			city, state, email, password_hash, status, user_type,
			COALESCE(photo, ''), COALESCE(photo_document, ''), created_at
		FROM users`

	findUserByEmail = selectUser + ` WHERE email = $1;`

	findUserByID = selectUser + ` WHERE id = $1;`

	insertUser = `INSERT INTO users (name, last_name, date_of_birth, zip_code, city, state, email,
			password_hash, status, user_type, photo, photo_document)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8, $9, $10, NULLIF($11, ''), NULLIF($12, ''))
		RETURNING id, created_at;`

	updateUserPassword = `UPDATE users SET password_hash = $1 WHERE id = $2;`

	deleteUser = `DELETE FROM users WHERE id = $1;`
)

// Constraint names generated by PostgreSQL for the foreign keys declared in
// the schema migration.
const (
	constraintCampaignOwner          = "campaigns_user_id_fkey"
	constraintCampaignLinkHelpMethod = "campaign_help_methods_help_method_id_fkey"
	constraintHelpDoneCampaign       = "help_done_campaign_id_fkey"
	constraintHelpDoneHelpMethod     = "help_done_help_method_id_fkey"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// campaignSelect is the joined projection every campaign read folds.
// LEFT JOINs keep campaigns that request no help method.
func campaignSelect() sq.SelectBuilder {
	return psql.
		Select(
			"c.id",
			"c.user_id",
			"c.title",
			"c.description",
			"c.contact",
			"hm.id",
			"hm.description",
		).
		From("campaigns c").
		LeftJoin("campaign_help_methods chm ON chm.campaign_id = c.id").
		LeftJoin("help_methods hm ON hm.id = chm.help_method_id").
		OrderBy("c.id", "chm.position")
}

// buildFindCampaignsQuery renders the campaign search. A blank search text adds
// no text predicate. Help method ids select campaigns linked to any of them
// while the outer join still returns every method of a matched campaign.
func buildFindCampaignsQuery(searchText string, helpMethodIDs []int64) (string, []any, error) {
	query := campaignSelect()

	if text := strings.TrimSpace(searchText); text != "" {
		pattern := "%" + escapeLike(text) + "%"
		query = query.Where(sq.Or{
			sq.ILike{"c.title": pattern},
			sq.ILike{"c.description": pattern},
		})
	}

	if len(helpMethodIDs) > 0 {
		sub, subArgs, err := sq.
			Select("campaign_id").
			From("campaign_help_methods").
			Where(sq.Eq{"help_method_id": helpMethodIDs}).
			ToSql()
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		query = query.Where("c.id IN ("+sub+")", subArgs...)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sql, args, nil
}

func buildFindCampaignsByUserQuery(userID int64) (string, []any, error) {
	sql, args, err := campaignSelect().Where(sq.Eq{"c.user_id": userID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sql, args, nil
}

func buildFindCampaignQuery(campaignID int64) (string, []any, error) {
	sql, args, err := campaignSelect().Where(sq.Eq{"c.id": campaignID}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sql, args, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes LIKE wildcards in s match literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
