package store

import (
	"fmt"
	"strings"
)

const queryInsertAppraisal = `
INSERT INTO appraisals (
	id, device_type, brand, model, specs, condition, region,
	amount, base_source
) VALUES (
	@id, @device_type, @brand, @model, @specs, @condition, @region,
	@amount, @base_source
)
RETURNING created_at
`

const queryGetAppraisal = `
SELECT id, device_type, brand, model, specs, condition, region,
       amount, base_source, created_at
FROM appraisals
WHERE id = $1
`

const queryCountAppraisals = `SELECT COUNT(*) FROM appraisals`

const queryDeleteBefore = `DELETE FROM appraisals WHERE created_at < $1`

const queryStatsTotals = `
SELECT COUNT(*), COALESCE(AVG(amount), 0) FROM appraisals
`

const queryStatsByDevice = `
SELECT device_type, COUNT(*), COALESCE(AVG(amount), 0)
FROM appraisals
GROUP BY device_type
`

// allowed sort columns for history queries; anything else falls back to
// created_at so the ORDER BY clause is never attacker-controlled.
var orderColumns = map[string]string{
	"created_at": "created_at DESC",
	"amount":     "amount DESC",
}

// buildListQuery composes the filtered history query plus a matching count
// query, returning positional args shared by both.
func buildListQuery(opts *AppraisalQuery) (listSQL, countSQL string, args []any) {
	var where []string

	if opts.DeviceType != nil {
		args = append(args, *opts.DeviceType)
		where = append(where, fmt.Sprintf("device_type = $%d", len(args)))
	}
	if opts.Brand != nil {
		args = append(args, *opts.Brand)
		where = append(where, fmt.Sprintf("LOWER(brand) = LOWER($%d)", len(args)))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	order, ok := orderColumns[opts.OrderBy]
	if !ok {
		order = orderColumns["created_at"]
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	countSQL = "SELECT COUNT(*) FROM appraisals" + clause

	listSQL = fmt.Sprintf(
		`SELECT id, device_type, brand, model, specs, condition, region,
       amount, base_source, created_at
FROM appraisals%s
ORDER BY %s
LIMIT %d OFFSET %d`,
		clause, order, limit, opts.Offset,
	)

	return listSQL, countSQL, args
}
