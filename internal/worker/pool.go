package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"prepmate-backend/internal/evaluation"
	"prepmate-backend/internal/models"
	"prepmate-backend/internal/repository"
	"prepmate-backend/internal/services"
)

const analysisQueue = "queue:answer-analysis"

type Pool struct {
	redis         *redis.Client
	gemini        *services.GeminiService
	jobRepo       *repository.JobRepo
	interviewRepo *repository.InterviewRepo
	workerCount   int
	stopChan      chan struct{}
}

func NewPool(
	redisClient *redis.Client,
	gemini *services.GeminiService,
	jobRepo *repository.JobRepo,
	interviewRepo *repository.InterviewRepo,
	workerCount int,
) *Pool {
	return &Pool{
		redis:         redisClient,
		gemini:        gemini,
		jobRepo:       jobRepo,
		interviewRepo: interviewRepo,
		workerCount:   workerCount,
		stopChan:      make(chan struct{}),
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.workerCount; i++ {
		go p.worker(i)
	}

	log.Printf("Started %d worker goroutines", p.workerCount)
}

func (p *Pool) Stop() {
	close(p.stopChan)
}

func (p *Pool) worker(id int) {
	for {
		select {
		case <-p.stopChan:
			log.Printf("Worker %d shutting down", id)
			return
		default:
		}

		ctx := context.Background()

		// BLPOP with 30s timeout
		result, err := p.redis.BLPop(ctx, 30*time.Second, analysisQueue).Result()
		if err != nil {
			continue // Timeout or error, retry
		}

		if len(result) < 2 {
			continue
		}

		var job models.Job
		if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
			log.Printf("Worker %d: failed to parse job: %v", id, err)
			continue
		}

		// Try to acquire lock
		lockKey := fmt.Sprintf("job_lock:%s", job.ID.String())
		locked, err := p.redis.SetNX(ctx, lockKey, "1", 10*time.Minute).Result()
		if err != nil || !locked {
			continue // Another worker has this job
		}

		log.Printf("Worker %d: processing job %s (type: %s)", id, job.ID, job.Type)

		p.jobRepo.UpdateStatus(ctx, job.ID, "processing")

		var processErr error
		switch job.Type {
		case "answer-analysis":
			processErr = p.processAnswerAnalysis(ctx, &job)
		default:
			processErr = fmt.Errorf("unknown job type: %s", job.Type)
		}

		if processErr != nil {
			p.handleFailure(ctx, &job, processErr)
		} else {
			p.handleSuccess(ctx, &job)
		}

		p.redis.Del(ctx, lockKey)
	}
}

// processAnswerAnalysis runs the mock-interview pipeline for one recorded
// answer: transcribe the audio, generate a reference answer, score the
// transcript against it, and store the result with the feedback rewritten
// into second person.
func (p *Pool) processAnswerAnalysis(ctx context.Context, job *models.Job) error {
	var config models.AnalysisConfig
	if err := json.Unmarshal(job.ConfigJSON, &config); err != nil {
		return fmt.Errorf("invalid analysis config: %w", err)
	}

	audio, err := os.ReadFile(config.AudioPath)
	if err != nil {
		return fmt.Errorf("failed to read answer audio: %w", err)
	}

	p.gemini.PublishUpdate(ctx, job.UserID, models.WSMessage{
		Type: "status_update",
		Payload: models.StatusUpdate{
			JobID:    job.ID,
			Step:     1,
			StepName: "Transcribing your answer",
		},
	})

	transcript, err := p.gemini.TranscribeAudio(ctx, audio, config.MIMEType)
	if err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}

	p.gemini.PublishUpdate(ctx, job.UserID, models.WSMessage{
		Type: "status_update",
		Payload: models.StatusUpdate{
			JobID:    job.ID,
			Step:     2,
			StepName: "Preparing a reference answer",
		},
	})

	modelAnswer, err := p.gemini.GenerateModelAnswer(ctx, config.Question)
	if err != nil {
		return fmt.Errorf("model answer generation failed: %w", err)
	}

	p.gemini.PublishUpdate(ctx, job.UserID, models.WSMessage{
		Type: "status_update",
		Payload: models.StatusUpdate{
			JobID:    job.ID,
			Step:     3,
			StepName: "Scoring your answer",
		},
	})

	result, err := p.gemini.EvaluateAnswer(ctx, transcript, modelAnswer)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	// Stored feedback addresses the candidate directly.
	feedback := result.Feedback
	if feedback != nil {
		rewritten := evaluation.RewriteSecondPerson(*feedback)
		feedback = &rewritten
	}

	if err := p.interviewRepo.UpdateAnswerEvaluation(ctx, config.AnswerID, transcript, modelAnswer, result.Score, feedback); err != nil {
		return fmt.Errorf("failed to store evaluation: %w", err)
	}

	// Audio is only needed for the pipeline run.
	if rmErr := os.Remove(config.AudioPath); rmErr != nil {
		log.Printf("failed to remove processed audio %s: %v", config.AudioPath, rmErr)
	}

	return nil
}

func (p *Pool) handleSuccess(ctx context.Context, job *models.Job) {
	p.jobRepo.UpdateStatus(ctx, job.ID, "completed")

	p.gemini.PublishUpdate(ctx, job.UserID, models.WSMessage{
		Type: "completed",
		Payload: models.CompletedEvent{
			JobID:      job.ID,
			ResultID:   job.ReferenceID,
			ResultType: "answer",
		},
	})

	log.Printf("Job %s completed successfully", job.ID)
}

func (p *Pool) handleFailure(ctx context.Context, job *models.Job, err error) {
	job.RetryCount++
	errMsg := err.Error()

	if job.RetryCount < job.MaxRetries {
		log.Printf("Job %s failed (attempt %d): %s, retrying", job.ID, job.RetryCount, errMsg)
		p.jobRepo.UpdateStatus(ctx, job.ID, "pending")
		p.jobRepo.UpdateError(ctx, job.ID, errMsg, job.RetryCount)

		// Re-queue after backoff
		jobBytes, _ := json.Marshal(job)
		backoff := time.Duration(1<<uint(job.RetryCount)) * time.Second
		time.AfterFunc(backoff, func() {
			p.redis.LPush(context.Background(), analysisQueue, string(jobBytes))
		})
		return
	}

	log.Printf("Job %s failed permanently: %s", job.ID, errMsg)
	p.jobRepo.UpdateStatus(ctx, job.ID, "failed")
	p.jobRepo.UpdateError(ctx, job.ID, errMsg, job.RetryCount)

	p.gemini.PublishUpdate(ctx, job.UserID, models.WSMessage{
		Type: "error",
		Payload: models.ErrorEvent{
			JobID:        job.ID,
			ErrorCode:    "JOB_FAILED",
			ErrorMessage: errMsg,
		},
	})
}
