package services

import (
	"context"
	"fmt"
	"time"

	"lawyerhub/db"
	"lawyerhub/models"
	"lawyerhub/reward"

	"go.mongodb.org/mongo-driver/bson"
)

// profileFields are the fields that constitute a complete lawyer profile
var profileFieldCount = 9

// BuildSnapshot aggregates a lawyer's stored metrics into a reward snapshot:
// rating and counts from the user document, responsiveness from the messages
// collection, outcomes from the cases collection.
func BuildSnapshot(ctx context.Context, lawyer *models.User) (*reward.Snapshot, error) {
	snap := &reward.Snapshot{
		Rating:                 lawyer.Rating,
		ReviewCount:            lawyer.ReviewCount,
		ConsultationsCompleted: lawyer.ConsultationsCompleted,
		DaysActive:             daysActive(lawyer.CreatedAt, time.Now()),
		RecencyFactor:          recencyFactor(lawyer.LastActivityAt, time.Now()),
		CurrentTier:            lawyer.RewardTier,
		CurrentBadges:          lawyer.Badges,
	}

	completion := profileCompletion(lawyer)
	snap.ProfileCompletion = &completion

	totalInquiries, responseRate, avgResponseMinutes, err := responseStats(ctx, lawyer)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate message stats: %w", err)
	}
	snap.TotalInquiries = totalInquiries
	snap.ResponseRate = responseRate
	snap.AvgResponseTimeMinutes = avgResponseMinutes

	casesCompleted, successRate, err := caseStats(ctx, lawyer)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate case stats: %w", err)
	}
	snap.CasesCompleted = casesCompleted
	snap.SuccessRate = successRate

	return snap, nil
}

// responseStats walks the lawyer's inbound messages and derives the inquiry
// count, the share answered within 24 hours, and the mean time to first
// reply. Rates are nil when there is nothing to average.
func responseStats(ctx context.Context, lawyer *models.User) (int, *float64, *float64, error) {
	cursor, err := db.GetCollection(db.MessagesCollection).Find(ctx, bson.M{"lawyerId": lawyer.ID})
	if err != nil {
		return 0, nil, nil, err
	}
	defer cursor.Close(ctx)

	total := 0
	replied := 0
	within24h := 0
	var totalResponseMinutes float64

	for cursor.Next(ctx) {
		var message models.Message
		if err := cursor.Decode(&message); err != nil {
			return 0, nil, nil, err
		}
		total++
		if message.FirstReplyAt == nil {
			continue
		}
		replied++
		elapsed := message.FirstReplyAt.Sub(message.SentAt)
		if elapsed < 0 {
			elapsed = 0
		}
		totalResponseMinutes += elapsed.Minutes()
		if elapsed <= 24*time.Hour {
			within24h++
		}
	}
	if err := cursor.Err(); err != nil {
		return 0, nil, nil, err
	}

	var responseRate, avgMinutes *float64
	if total > 0 {
		rate := float64(within24h) / float64(total)
		responseRate = &rate
	}
	if replied > 0 {
		avg := totalResponseMinutes / float64(replied)
		avgMinutes = &avg
	}
	return total, responseRate, avgMinutes, nil
}

// caseStats counts closed cases and the share won. The success rate is nil
// until at least one case has closed.
func caseStats(ctx context.Context, lawyer *models.User) (int, *float64, error) {
	cases := db.GetCollection(db.CasesCollection)

	won, err := cases.CountDocuments(ctx, bson.M{"lawyerId": lawyer.ID, "outcome": models.CaseOutcomeWon})
	if err != nil {
		return 0, nil, err
	}
	lost, err := cases.CountDocuments(ctx, bson.M{"lawyerId": lawyer.ID, "outcome": models.CaseOutcomeLost})
	if err != nil {
		return 0, nil, err
	}

	completed := int(won + lost)
	var successRate *float64
	if completed > 0 {
		rate := float64(won) / float64(completed)
		successRate = &rate
	}
	return completed, successRate, nil
}

// profileCompletion is the fraction of profile fields populated
func profileCompletion(lawyer *models.User) float64 {
	completed := 0
	if lawyer.Name != "" {
		completed++
	}
	if len(lawyer.Specialty) > 0 {
		completed++
	}
	if lawyer.Location.City != "" {
		completed++
	}
	if lawyer.Bio != "" {
		completed++
	}
	if len(lawyer.Education) > 0 {
		completed++
	}
	if len(lawyer.Experience) > 0 {
		completed++
	}
	if lawyer.LicenseInfo != "" {
		completed++
	}
	if lawyer.ProfileImage != "" {
		completed++
	}
	if lawyer.ContactInfo != "" {
		completed++
	}
	return float64(completed) / float64(profileFieldCount)
}

// daysActive is the number of whole days since account creation
func daysActive(createdAt, now time.Time) int {
	if createdAt.IsZero() || createdAt.After(now) {
		return 0
	}
	return int(now.Sub(createdAt).Hours() / 24)
}

// recencyFactor maps last-activity age to the 0.5-1.2 multiplier band
func recencyFactor(lastActivity, now time.Time) float64 {
	if lastActivity.IsZero() {
		return 0.5
	}
	age := now.Sub(lastActivity)
	switch {
	case age <= 7*24*time.Hour:
		return 1.2
	case age <= 30*24*time.Hour:
		return 1.0
	case age <= 90*24*time.Hour:
		return 0.8
	default:
		return 0.5
	}
}
