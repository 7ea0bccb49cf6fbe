package utils

import (
	"context"
	"log"
	"time"

	"lawyerhub/db"
	"lawyerhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SeedCategories inserts the default practice areas if the collection is empty
func SeedCategories() {
	collection := db.GetCollection(db.CategoriesCollection)
	count, err := collection.CountDocuments(context.Background(), bson.M{})
	if err != nil || count > 0 {
		return
	}

	now := time.Now()
	categories := []models.Category{
		{Name: "Corporate Law", Icon: "fa-briefcase", Description: "Legal professionals for business formation, contracts, and compliance.", CreatedAt: now},
		{Name: "Family Law", Icon: "fa-heart", Description: "Experts in divorce, child custody, and family-related legal matters.", CreatedAt: now},
		{Name: "Criminal Law", Icon: "fa-gavel", Description: "Attorneys specializing in criminal defense and prosecution.", CreatedAt: now},
		{Name: "Real Estate Law", Icon: "fa-home", Description: "Find lawyers specialized in property transactions, disputes, and regulations.", CreatedAt: now},
		{Name: "Immigration Law", Icon: "fa-passport", Description: "Assistance with visas, green cards, citizenship, and immigration issues.", CreatedAt: now},
		{Name: "Intellectual Property", Icon: "fa-lightbulb", Description: "Protection for patents, trademarks, copyrights, and trade secrets.", CreatedAt: now},
		{Name: "Personal Injury", Icon: "fa-ambulance", Description: "Representation for accident victims seeking compensation.", CreatedAt: now},
		{Name: "Employment Law", Icon: "fa-users", Description: "Help with workplace issues, contracts, discrimination, and labor disputes.", CreatedAt: now},
	}

	var documents []interface{}
	for _, category := range categories {
		documents = append(documents, category)
	}

	if _, err := collection.InsertMany(context.Background(), documents); err != nil {
		log.Printf("Failed to seed categories: %v", err)
	}
}
