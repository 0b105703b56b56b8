package main

import (
	"context"
	"errors"
	"log"

	"carevo/internal/auth"
	"carevo/internal/config"
	"carevo/internal/db"
	apperrors "carevo/internal/errors"
	"carevo/internal/model"
	"carevo/internal/repository"
	"carevo/internal/service"
)

// Demo accounts for local development, one per student type.
var seedAccounts = []service.SignupInput{
	{
		Profile: service.ProfileInput{
			Email:       "asha.school@example.com",
			Name:        "Asha Verma",
			Institute:   "Springdale High School",
			DOB:         "2008-04-12",
			StudentType: model.StudentTypeSchool,
			Class:       "10",
		},
		Password: "school-demo-1",
	},
	{
		Profile: service.ProfileInput{
			Email:       "rohit.college@example.com",
			Name:        "Rohit Nair",
			Institute:   "City Engineering College",
			DOB:         "2003-11-02",
			StudentType: model.StudentTypeCollege,
			Degree:      "B.Tech",
			Major:       "Computer Science",
			Year:        "3",
		},
		Password: "college-demo-1",
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.ChatMessage{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	accounts := service.NewAccountService(userRepo, auth.NewCredentialManager(), service.NewProfileValidator(), nil)

	ctx := context.Background()
	created, skipped := 0, 0
	for _, in := range seedAccounts {
		user, err := accounts.Signup(ctx, in)
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicateAccount) {
				skipped++
				continue
			}
			log.Fatalf("Failed to seed %s: %v", in.Profile.Email, err)
		}
		created++
		log.Printf("Seeded %s account %s (%s)", user.StudentType, user.Email, user.ID)
	}

	log.Printf("Seed complete: %d created, %d already present", created, skipped)
}
