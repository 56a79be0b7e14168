package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"prepmate-backend/internal/models"
)

type QuestionSetRepo struct {
	pool *pgxpool.Pool
}

func NewQuestionSetRepo(pool *pgxpool.Pool) *QuestionSetRepo {
	return &QuestionSetRepo{pool: pool}
}

func (r *QuestionSetRepo) Create(ctx context.Context, qs *models.QuestionSet) error {
	qs.ID = uuid.New()
	questionsBytes := []byte(qs.QuestionsJSON)
	if questionsBytes == nil {
		questionsBytes = []byte("[]")
	}

	query := `INSERT INTO question_sets (id, user_id, domain_id, title, source, questions_json, question_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		qs.ID, qs.UserID, qs.DomainID, qs.Title, qs.Source, questionsBytes, qs.QuestionCount,
	).Scan(&qs.CreatedAt)
}

func (r *QuestionSetRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.QuestionSet, error) {
	qs := &models.QuestionSet{}
	query := `SELECT id, user_id, domain_id, title, source, questions_json, question_count, created_at
		FROM question_sets WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&qs.ID, &qs.UserID, &qs.DomainID, &qs.Title, &qs.Source,
		&qs.QuestionsJSON, &qs.QuestionCount, &qs.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return qs, nil
}

func (r *QuestionSetRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.QuestionSet, error) {
	query := `SELECT id, user_id, domain_id, title, source, questions_json, question_count, created_at
		FROM question_sets WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []*models.QuestionSet
	for rows.Next() {
		qs := &models.QuestionSet{}
		err := rows.Scan(&qs.ID, &qs.UserID, &qs.DomainID, &qs.Title, &qs.Source,
			&qs.QuestionsJSON, &qs.QuestionCount, &qs.CreatedAt)
		if err != nil {
			return nil, err
		}
		sets = append(sets, qs)
	}
	return sets, rows.Err()
}

// Questions unmarshals the stored question list.
func (r *QuestionSetRepo) Questions(qs *models.QuestionSet) ([]models.QuizQuestion, error) {
	var questions []models.QuizQuestion
	if err := json.Unmarshal(qs.QuestionsJSON, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionSetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM question_sets WHERE id = $1", id)
	return err
}
