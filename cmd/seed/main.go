// Seeds a demo client and a varied batch of responses for local dashboards.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pulsecheck/internal/model"
	"pulsecheck/internal/repository"
)

var (
	departments = []string{"Sales", "Marketing", "Engineering", "Operations", "Finance"}
	roleLevels  = []string{"Individual Contributor", "Team Lead", "Manager", "Director", "Executive"}
	locations   = []string{"Sydney", "Melbourne", "Remote"}
	tenures     = []string{"Less than 1 year", "1-3 years", "3-5 years", "5+ years"}
	usages      = []string{model.UsageNever, model.UsageRarely, model.UsageMonthly, model.UsageWeekly, model.UsageDaily}
	readiness   = []string{model.ReadinessNotVeryReady, model.ReadinessNeutral, model.ReadinessSomewhat, model.ReadinessVeryReady}
	confidence  = []string{model.ConfidenceNotVery, model.ConfidenceNeutral, model.ConfidenceSomewhat, model.ConfidenceVery}
	tools       = []string{"Microsoft Copilot", "ChatGPT", "Google Gemini", "Claude", "Perplexity"}
	barriers    = []string{
		"Lack of technical skills",
		"Don't know where to start",
		"Data privacy concerns",
		"No time to learn new tools",
		"Happy with current methods",
	}
)

func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect(ctx)

	db := mongoClient.Database("pulsecheck")
	clientRepo := repository.NewClientRepo(db)
	responseRepo := repository.NewResponseRepo(db)

	client := &model.Client{
		Name:            "Acme Holdings",
		Slug:            "acme-holdings",
		PrimaryC:        "#1f3a5f",
		SecondaryC:      "#e8b44a",
		SurveyStatus:    model.SurveyStatusActive,
		RequireM365Auth: false,
	}
	clientID, err := clientRepo.Create(ctx, client)
	if err == repository.ErrSlugTaken {
		existing, gerr := clientRepo.GetBySlug(ctx, client.Slug)
		if gerr != nil || existing == nil {
			log.Fatalf("Failed to resolve existing demo client: %v", gerr)
		}
		clientID = existing.ID
		log.Printf("Demo client already exists: %s", clientID)
	} else if err != nil {
		log.Fatalf("Failed to create demo client: %v", err)
	} else {
		log.Printf("Created demo client: %s", clientID)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 40; i++ {
		resp := &model.Response{
			ClientID:              clientID,
			Department:            pick(rng, departments),
			RoleLevel:             pick(rng, roleLevels),
			Location:              pick(rng, locations),
			Tenure:                pick(rng, tenures),
			CurrentAiUsage:        pick(rng, usages),
			ReadinessToAdopt:      pick(rng, readiness),
			AiSkillsConfidence:    pick(rng, confidence),
			AiToolsAwareness:      tools[:rng.Intn(len(tools)+1)],
			AdoptionBarriers:      barriers[:rng.Intn(4)],
			TrainingInterest:      pick(rng, []string{"Not interested", "Somewhat interested", "Very interested"}),
			TimeOnRepetitiveTasks: pick(rng, []string{"0-10%", "10-25%", "25-50%", "50%+"}),
			Email:                 fmt.Sprintf("user%02d@acme-holdings.example", i),
			AuthMethod:            "anonymous",
			CompletionSec:         120 + rng.Intn(600),
			SubmittedAt:           time.Now().Add(-time.Duration(rng.Intn(72)) * time.Hour),
		}
		if err := responseRepo.Create(ctx, resp); err != nil {
			log.Fatalf("Failed to insert response %d: %v", i, err)
		}
	}

	log.Println("Seeded 40 responses for acme-holdings")
}
