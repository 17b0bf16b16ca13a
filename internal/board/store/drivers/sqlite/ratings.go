package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/askfold/askfold/internal/board/domain"
)

type ratingsRepo struct {
	db dbtx
}

func (r *ratingsRepo) CreateRating(ctx context.Context, rt domain.Rating) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO ratings (user_id, target_type, target_id, created_at)
		 VALUES (?, ?, ?, ?)`,
		rt.UserID, string(rt.TargetType), rt.TargetID, now())
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *ratingsRepo) RatingExists(ctx context.Context, userID int64, target domain.TargetType, targetID int64) (bool, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM ratings WHERE user_id = ? AND target_type = ? AND target_id = ?`,
		userID, string(target), targetID)

	var one int
	if err := row.Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ratingsRepo) CountForTarget(ctx context.Context, target domain.TargetType, targetID int64) (int64, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM ratings WHERE target_type = ? AND target_id = ?`,
		string(target), targetID)

	var n int64
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *ratingsRepo) CountsByTargetType(ctx context.Context, target domain.TargetType) (map[int64]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT target_id, COUNT(*) FROM ratings
		 WHERE target_type = ? GROUP BY target_id`, string(target))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int64]int64)
	for rows.Next() {
		var id, n int64
		if err := rows.Scan(&id, &n); err != nil {
			return nil, err
		}
		counts[id] = n
	}
	return counts, rows.Err()
}
