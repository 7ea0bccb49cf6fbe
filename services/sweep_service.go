package services

import (
	"context"
	"log"
	"sync"
	"time"

	"lawyerhub/db"
	"lawyerhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SweepResult summarizes a batch recompute run
type SweepResult struct {
	Processed int           `json:"processed"`
	Failed    int           `json:"failed"`
	Duration  time.Duration `json:"-"`
}

// RunRewardSweep recomputes rewards for every listed lawyer. Lawyers are
// independent, so the work fans out over a bounded worker pool; per-lawyer
// failures are counted and logged without aborting the sweep.
func RunRewardSweep(ctx context.Context, concurrency int) (*SweepResult, error) {
	start := time.Now()
	if concurrency < 1 {
		concurrency = 1
	}

	users := db.GetCollection(db.UsersCollection)
	findOptions := options.Find().SetProjection(bson.M{"_id": 1})
	cursor, err := users.Find(ctx, bson.M{"role": models.RoleLawyer}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ids := make(chan models.User)
	var wg sync.WaitGroup
	var mu sync.Mutex
	result := &SweepResult{}

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for lawyer := range ids {
				if _, err := ProcessLawyerRewards(ctx, lawyer.ID); err != nil {
					log.Printf("Reward sweep failed for %s: %v", lawyer.ID.Hex(), err)
					mu.Lock()
					result.Failed++
					mu.Unlock()
					continue
				}
				mu.Lock()
				result.Processed++
				mu.Unlock()
			}
		}()
	}

	for cursor.Next(ctx) {
		var lawyer models.User
		if err := cursor.Decode(&lawyer); err != nil {
			log.Printf("Reward sweep: failed to decode lawyer id: %v", err)
			continue
		}
		select {
		case ids <- lawyer:
		case <-ctx.Done():
			close(ids)
			wg.Wait()
			return result, ctx.Err()
		}
	}
	close(ids)
	wg.Wait()

	if err := cursor.Err(); err != nil {
		return result, err
	}

	result.Duration = time.Since(start)
	log.Printf("Reward sweep finished: %d processed, %d failed in %s",
		result.Processed, result.Failed, result.Duration)
	return result, nil
}
