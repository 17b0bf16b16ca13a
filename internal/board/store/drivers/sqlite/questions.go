package sqlite

import (
	"context"
	"database/sql"

	"github.com/askfold/askfold/internal/board/domain"
)

type questionsRepo struct {
	db dbtx
}

func (r *questionsRepo) GetQuestionByID(ctx context.Context, id int64) (domain.Question, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, title, body, created_at FROM questions WHERE id = ?`, id)

	var q domain.Question
	var body sql.NullString
	if err := row.Scan(&q.ID, &q.Title, &body, &q.CreatedAt); err != nil {
		return domain.Question{}, mapNotFound(err)
	}
	q.Body = mapNullString(body)
	return q, nil
}

func (r *questionsRepo) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, body, created_at FROM questions ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectQuestions(rows)
}

func (r *questionsRepo) CreateQuestion(ctx context.Context, q domain.Question) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO questions (title, body, created_at) VALUES (?, ?, ?)`,
		q.Title, mapStringNull(q.Body), now())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *questionsRepo) DeleteQuestion(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *questionsRepo) SearchQuestions(ctx context.Context, term string) ([]domain.Question, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, body, created_at FROM questions
		 WHERE title LIKE '%' || ? || '%' ORDER BY id ASC`, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectQuestions(rows)
}

func collectQuestions(rows *sql.Rows) ([]domain.Question, error) {
	var out []domain.Question
	for rows.Next() {
		var q domain.Question
		var body sql.NullString
		if err := rows.Scan(&q.ID, &q.Title, &body, &q.CreatedAt); err != nil {
			return nil, err
		}
		q.Body = mapNullString(body)
		out = append(out, q)
	}
	return out, rows.Err()
}
