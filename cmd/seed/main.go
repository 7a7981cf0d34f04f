package main

import (
	"context"
	"log"
	"time"

	"github.com/noah-isme/scholar-hours-api/internal/models"
	"github.com/noah-isme/scholar-hours-api/internal/repository"
	"github.com/noah-isme/scholar-hours-api/pkg/config"
	"github.com/noah-isme/scholar-hours-api/pkg/database"
)

var categories = []models.ActivityCategory{
	{Name: "Tutoring", Description: "Helping students with academic subjects", Icon: "book"},
	{Name: "Community Service", Description: "General community improvement activities", Icon: "users"},
	{Name: "Environmental Work", Description: "Environmental conservation and cleanup activities", Icon: "tree"},
	{Name: "Elderly Care", Description: "Supporting elderly members of the community", Icon: "heart"},
	{Name: "Youth Mentoring", Description: "Mentoring and guidance for younger students", Icon: "user-check"},
	{Name: "Food Distribution", Description: "Food banks and meal distribution programs", Icon: "utensils"},
	{Name: "Healthcare Support", Description: "Assisting in healthcare facilities and programs", Icon: "medical"},
	{Name: "Animal Welfare", Description: "Supporting animal shelters and rescue organizations", Icon: "paw"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo := repository.NewCategoryRepository(db)
	for _, category := range categories {
		exists, err := repo.ExistsByName(ctx, category.Name)
		if err != nil {
			log.Fatalf("failed to check category %q: %v", category.Name, err)
		}
		if exists {
			log.Printf("category %q already exists, skipping", category.Name)
			continue
		}
		c := category
		if err := repo.Create(ctx, &c); err != nil {
			log.Fatalf("failed to create category %q: %v", category.Name, err)
		}
		log.Printf("created category %q", category.Name)
	}

	log.Println("seed completed")
}
