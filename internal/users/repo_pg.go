package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, name, height_cm, body_type, style, favorite_colors, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`
	colors, err := encodeColors(user.FavoriteColors)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		user.ID,
		user.Name,
		nullableInt(user.HeightCm),
		nullableString(user.BodyType),
		nullableString(user.Style),
		colors,
		user.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, name, height_cm, body_type, style, favorite_colors, created_at, updated_at
FROM users
WHERE id = $1
LIMIT 1`
	var user User
	var height sql.NullInt64
	var bodyType sql.NullString
	var style sql.NullString
	var colors []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.Name,
		&height,
		&bodyType,
		&style,
		&colors,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	if height.Valid {
		h := int(height.Int64)
		user.HeightCm = &h
	}
	user.BodyType = bodyType.String
	user.Style = style.String
	if len(colors) > 0 {
		if err := json.Unmarshal(colors, &user.FavoriteColors); err != nil {
			return User{}, fmt.Errorf("decode favorite_colors: %w", err)
		}
	}
	return user, nil
}

func encodeColors(colors []string) (string, error) {
	if colors == nil {
		colors = []string{}
	}
	raw, err := json.Marshal(colors)
	if err != nil {
		return "", fmt.Errorf("encode favorite_colors: %w", err)
	}
	return string(raw), nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value *int) any {
	if value == nil {
		return nil
	}
	return int64(*value)
}
