package sqlite

import (
	"context"
	"database/sql"

	"github.com/askfold/askfold/internal/board/domain"
)

type answersRepo struct {
	db dbtx
}

func (r *answersRepo) ListAnswers(ctx context.Context) ([]domain.Answer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, question_id, author_id, content, created_at
		 FROM answers ORDER BY question_id ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAnswers(rows)
}

func (r *answersRepo) CreateAnswer(ctx context.Context, a domain.Answer) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO answers (question_id, author_id, content, created_at)
		 VALUES (?, ?, ?, ?)`,
		a.QuestionID, a.AuthorID, a.Content, now())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *answersRepo) SearchAnswers(ctx context.Context, term string) ([]domain.Answer, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, question_id, author_id, content, created_at
		 FROM answers WHERE content LIKE '%' || ? || '%' ORDER BY id ASC`, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAnswers(rows)
}

func collectAnswers(rows *sql.Rows) ([]domain.Answer, error) {
	var out []domain.Answer
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.AuthorID, &a.Content, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
