package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"lawyerhub/config"
	"lawyerhub/db"
	"lawyerhub/internal/directory"
	"lawyerhub/models"
	"lawyerhub/reward"
	"lawyerhub/websocket"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var rewardEngine *reward.Engine

// InitRewardService builds the shared engine from the configured threshold
// tables and wires in the population ranker
func InitRewardService(cfg *config.Config) {
	rewardEngine = reward.New(cfg.RewardConfig(), mongoPercentileRanker{})
}

// GetRewardEngine returns the shared engine
func GetRewardEngine() *reward.Engine {
	return rewardEngine
}

// mongoPercentileRanker ranks a metric value against all listed lawyers.
// Only the rating metric is ranked today.
type mongoPercentileRanker struct{}

func (mongoPercentileRanker) PercentileRank(metric string, value float64) (float64, bool) {
	if metric != "rating" {
		return 0, false
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	users := db.GetCollection(db.UsersCollection)
	population := bson.M{"role": models.RoleLawyer, "reviewCount": bson.M{"$gt": 0}}

	total, err := users.CountDocuments(ctx, population)
	if err != nil || total == 0 {
		return 0, false
	}

	above, err := users.CountDocuments(ctx, bson.M{
		"role":        models.RoleLawyer,
		"reviewCount": bson.M{"$gt": 0},
		"rating":      bson.M{"$gt": value},
	})
	if err != nil {
		return 0, false
	}

	return float64(above) / float64(total) * 100, true
}

// ProcessLawyerRewards runs the engine over a lawyer's current metrics,
// writes the outcome back to the user document, records history events and
// broadcasts them to connected clients.
func ProcessLawyerRewards(ctx context.Context, lawyerID primitive.ObjectID) (*reward.Result, error) {
	users := db.GetCollection(db.UsersCollection)

	var lawyer models.User
	err := users.FindOne(ctx, bson.M{"_id": lawyerID, "role": models.RoleLawyer}).Decode(&lawyer)
	if err != nil {
		return nil, fmt.Errorf("lawyer %s not found: %w", lawyerID.Hex(), err)
	}

	snap, err := BuildSnapshot(ctx, &lawyer)
	if err != nil {
		return nil, err
	}

	result, events, err := rewardEngine.ProcessRewards(snap)
	if err != nil {
		return nil, fmt.Errorf("reward computation failed for %s: %w", lawyerID.Hex(), err)
	}

	update := bson.M{"$set": bson.M{
		"rewardPoints":     result.Points,
		"rewardTier":       result.Tier,
		"badges":           result.Badges,
		"searchBoost":      result.SearchBoost,
		"rewardsUpdatedAt": time.Now(),
	}}
	if _, err := users.UpdateOne(ctx, bson.M{"_id": lawyerID}, update); err != nil {
		return nil, fmt.Errorf("failed to store reward result: %w", err)
	}

	for _, event := range events {
		if err := recordRewardEvent(ctx, lawyerID, event); err != nil {
			log.Printf("Failed to record reward event for %s: %v", lawyerID.Hex(), err)
			// History is best effort, the reward state is already stored
		}
		broadcastRewardEvent(lawyerID, event)
	}

	if len(events) > 0 || result.SearchBoost != lawyer.SearchBoost {
		directory.InvalidateFeatured(ctx)
	}

	return result, nil
}

// recordRewardEvent persists one history entry shaped after the event type
func recordRewardEvent(ctx context.Context, lawyerID primitive.ObjectID, event reward.Event) error {
	entry := models.RewardHistory{
		LawyerID:  lawyerID,
		EventType: event.Type,
		CreatedAt: time.Now(),
	}

	switch event.Type {
	case reward.EventTierChange:
		entry.Description = fmt.Sprintf("Moved from %s to %s tier", event.OldTier, event.NewTier)
		entry.PreviousTier = event.OldTier
		entry.NewTier = event.NewTier
		entry.Points = event.Points
	case reward.EventBadgeEarned:
		entry.Description = fmt.Sprintf("Earned the %q badge", event.Badge)
		entry.BadgeEarned = event.Badge
	}

	_, err := db.GetCollection(db.RewardHistoryCollection).InsertOne(ctx, entry)
	return err
}

func broadcastRewardEvent(lawyerID primitive.ObjectID, event reward.Event) {
	websocket.BroadcastRewardEvent(models.RewardEvent{
		Type:      event.Type,
		LawyerID:  lawyerID.Hex(),
		OldTier:   event.OldTier,
		NewTier:   event.NewTier,
		Badge:     event.Badge,
		Points:    event.Points,
		Timestamp: time.Now(),
	})
}
