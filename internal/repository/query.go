package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/JonnyWalker81/wellbeing/backend/internal/wellbeing"
)

// userQuery selects a user's rows in created_at order with the optional
// inclusive range applied server side
func userQuery(userID string, r wellbeing.DateRange) url.Values {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("user_id", "eq."+userID)
	q.Set("order", "created_at.desc,id.asc")
	if !r.From.IsZero() {
		q.Add("created_at", "gte."+r.From.UTC().Format(time.RFC3339Nano))
	}
	if !r.To.IsZero() {
		q.Add("created_at", "lte."+r.To.UTC().Format(time.RFC3339Nano))
	}
	return q
}

// fetchAll pages through table until a short page comes back
func fetchAll[T any](ctx context.Context, client Querier, table string, q url.Values) ([]T, error) {
	var all []T
	for offset := 0; ; offset += pageSize {
		page := url.Values{}
		for k, v := range q {
			page[k] = append([]string(nil), v...)
		}
		page.Set("limit", strconv.Itoa(pageSize))
		page.Set("offset", strconv.Itoa(offset))

		body, err := client.Query(ctx, table, page)
		if err != nil {
			return nil, fmt.Errorf("%w: query %s: %w", ErrUpstream, table, err)
		}

		var rows []T
		if err := json.Unmarshal(body, &rows); err != nil {
			return nil, fmt.Errorf("%w: failed to unmarshal %s: %w", ErrUpstream, table, err)
		}
		all = append(all, rows...)

		if len(rows) < pageSize {
			return all, nil
		}
	}
}
