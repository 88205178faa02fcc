package wardrobe

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, item Item) error {
	const query = `
INSERT INTO wardrobe_items (id, user_id, category, color, occasion, comfort, tags, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		item.ID,
		item.UserID,
		item.Category,
		item.Color,
		item.Occasion,
		item.Comfort,
		item.Tags,
		item.CreatedAt,
	)
	return err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Item, error) {
	const query = `
SELECT id, user_id, category, color, occasion, comfort, tags, created_at
FROM wardrobe_items
WHERE user_id = $1
ORDER BY created_at ASC, id ASC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Item, 0)
	for rows.Next() {
		var it Item
		var tags sql.NullString
		if err := rows.Scan(
			&it.ID,
			&it.UserID,
			&it.Category,
			&it.Color,
			&it.Occasion,
			&it.Comfort,
			&tags,
			&it.CreatedAt,
		); err != nil {
			return nil, err
		}
		it.Tags = tags.String
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
