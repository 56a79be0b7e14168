package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"prepmate-backend/internal/models"
)

type InterviewRepo struct {
	pool *pgxpool.Pool
}

func NewInterviewRepo(pool *pgxpool.Pool) *InterviewRepo {
	return &InterviewRepo{pool: pool}
}

func (r *InterviewRepo) Create(ctx context.Context, iv *models.Interview) error {
	iv.ID = uuid.New()
	query := `INSERT INTO interviews (id, user_id, domain_id, kind, question_count)
		VALUES ($1, $2, $3, $4, $5) RETURNING started_at`

	return r.pool.QueryRow(ctx, query,
		iv.ID, iv.UserID, iv.DomainID, iv.Kind, iv.QuestionCount,
	).Scan(&iv.StartedAt)
}

func (r *InterviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Interview, error) {
	iv := &models.Interview{}
	query := `SELECT id, user_id, domain_id, kind, score, question_count, started_at, completed_at
		FROM interviews WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&iv.ID, &iv.UserID, &iv.DomainID, &iv.Kind, &iv.Score,
		&iv.QuestionCount, &iv.StartedAt, &iv.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return iv, nil
}

func (r *InterviewRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Interview, error) {
	query := `SELECT id, user_id, domain_id, kind, score, question_count, started_at, completed_at
		FROM interviews WHERE user_id = $1 ORDER BY started_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var interviews []*models.Interview
	for rows.Next() {
		iv := &models.Interview{}
		err := rows.Scan(&iv.ID, &iv.UserID, &iv.DomainID, &iv.Kind, &iv.Score,
			&iv.QuestionCount, &iv.StartedAt, &iv.CompletedAt)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, iv)
	}
	return interviews, rows.Err()
}

func (r *InterviewRepo) Complete(ctx context.Context, id uuid.UUID, score float64) error {
	_, err := r.pool.Exec(ctx,
		"UPDATE interviews SET score = $1, completed_at = $2 WHERE id = $3",
		score, time.Now(), id,
	)
	return err
}

func (r *InterviewRepo) CreateAnswer(ctx context.Context, a *models.InterviewAnswer) error {
	a.ID = uuid.New()
	query := `INSERT INTO interview_answers (id, interview_id, position, question, user_answer)
		VALUES ($1, $2, $3, $4, $5) RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		a.ID, a.InterviewID, a.Position, a.Question, a.UserAnswer,
	).Scan(&a.CreatedAt)
}

func (r *InterviewRepo) GetAnswer(ctx context.Context, id uuid.UUID) (*models.InterviewAnswer, error) {
	a := &models.InterviewAnswer{}
	query := `SELECT id, interview_id, position, question, user_answer, model_answer, score, feedback, created_at
		FROM interview_answers WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.InterviewID, &a.Position, &a.Question, &a.UserAnswer,
		&a.ModelAnswer, &a.Score, &a.Feedback, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *InterviewRepo) ListAnswers(ctx context.Context, interviewID uuid.UUID) ([]*models.InterviewAnswer, error) {
	query := `SELECT id, interview_id, position, question, user_answer, model_answer, score, feedback, created_at
		FROM interview_answers WHERE interview_id = $1 ORDER BY position`

	rows, err := r.pool.Query(ctx, query, interviewID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []*models.InterviewAnswer
	for rows.Next() {
		a := &models.InterviewAnswer{}
		err := rows.Scan(&a.ID, &a.InterviewID, &a.Position, &a.Question, &a.UserAnswer,
			&a.ModelAnswer, &a.Score, &a.Feedback, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// UpdateAnswerEvaluation stores what the analysis pipeline produced for one
// spoken answer: the transcript, the reference answer, and the normalized
// score/feedback (feedback already rewritten into second person).
func (r *InterviewRepo) UpdateAnswerEvaluation(ctx context.Context, id uuid.UUID, transcript, modelAnswer string, score *float64, feedback *string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE interview_answers SET user_answer = $1, model_answer = $2, score = $3, feedback = $4 WHERE id = $5`,
		transcript, modelAnswer, score, feedback, id,
	)
	return err
}

// DashboardSummary aggregates interview history for the reports screen.
func (r *InterviewRepo) DashboardSummary(ctx context.Context, userID uuid.UUID) (*models.DashboardSummary, error) {
	summary := &models.DashboardSummary{}

	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), AVG(score) FROM interviews WHERE user_id = $1 AND completed_at IS NOT NULL`,
		userID,
	).Scan(&summary.TotalInterviews, &summary.AverageScore)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT i.domain_id, COALESCE(d.name, 'General'), COUNT(*), AVG(i.score)
		FROM interviews i
		LEFT JOIN domains d ON d.id = i.domain_id
		WHERE i.user_id = $1 AND i.completed_at IS NOT NULL
		GROUP BY i.domain_id, d.name
		ORDER BY COUNT(*) DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stat models.DomainStat
		if err := rows.Scan(&stat.DomainID, &stat.DomainName, &stat.Interviews, &stat.AvgScore); err != nil {
			return nil, err
		}
		summary.Domains = append(summary.Domains, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	recent, err := r.ListByUser(ctx, userID, 10)
	if err != nil {
		return nil, err
	}
	summary.Recent = recent

	return summary, nil
}
