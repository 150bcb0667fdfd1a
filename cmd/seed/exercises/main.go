package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mansoorceksport/ironlog/internal/config"
	"github.com/mansoorceksport/ironlog/internal/domain"
	"github.com/mansoorceksport/ironlog/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds the shared exercise library. Safe to re-run, duplicates are skipped.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoDB.URI))
	if err != nil {
		log.Fatalf("Failed to connect to Mongo: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.MongoDB.Database)
	repo := repository.NewMongoExerciseRepository(db)

	exercises := []domain.Exercise{
		// Legs
		{Name: "Barbell Squat", MuscleGroup: "Legs", Equipment: "Barbell", VideoURL: "https://www.youtube.com/watch?v=SW_C1A-rejs"},
		{Name: "Leg Press", MuscleGroup: "Legs", Equipment: "Machine", VideoURL: "https://www.youtube.com/watch?v=IZxyjW7MPJQ"},
		{Name: "Walking Lunge", MuscleGroup: "Legs", Equipment: "Bodyweight/Dumbbell", VideoURL: "https://www.youtube.com/watch?v=D7KaRcUTQeE"},
		{Name: "Leg Extension", MuscleGroup: "Legs", Equipment: "Machine", VideoURL: "https://www.youtube.com/watch?v=YyvSfVLYZqo"},
		{Name: "Lying Leg Curl", MuscleGroup: "Legs", Equipment: "Machine", VideoURL: "https://www.youtube.com/watch?v=1Tq3QdYUuHs"},
		{Name: "Romanian Deadlift", MuscleGroup: "Legs (Hamstrings)", Equipment: "Barbell", VideoURL: "https://www.youtube.com/watch?v=JCXUYuzwZ_M"},
		{Name: "Calf Raise", MuscleGroup: "Legs (Calves)", Equipment: "Machine", VideoURL: "https://www.youtube.com/watch?v=3UWi44yN-wM"},
		{Name: "Goblet Squat", MuscleGroup: "Legs", Equipment: "Dumbbell", VideoURL: "https://www.youtube.com/watch?v=MeIiGibT6X0"},
		{Name: "Bulgarian Split Squat", MuscleGroup: "Legs", Equipment: "Dumbbell", VideoURL: "https://www.youtube.com/watch?v=9FOMyxA3Lw4"},

		// Chest
		{Name: "Barbell Bench Press", MuscleGroup: "Chest", Equipment: "Barbell", VideoURL: "https://www.youtube.com/watch?v=EUjh50tLlBo"},
		{Name: "Incline Dumbbell Press", MuscleGroup: "Chest", Equipment: "Dumbbell", VideoURL: "https://www.youtube.com/watch?v=8iPEnn-ltC8"},
		{Name: "Push Up", MuscleGroup: "Chest", Equipment: "Bodyweight", VideoURL: "https://www.youtube.com/watch?v=IODxDxX7oi4"},
		{Name: "Cable Fly", MuscleGroup: "Chest", Equipment: "Cable", VideoURL: "https://www.youtube.com/watch?v=I-Ue34qLxc4"},
		{Name: "Dips", MuscleGroup: "Chest/Triceps", Equipment: "Bodyweight", VideoURL: "https://www.youtube.com/watch?v=SwDers3SMZ4"},
		{Name: "Machine Chest Press", MuscleGroup: "Chest", Equipment: "Machine", VideoURL: "https://www.youtube.com/watch?v=x0X6V1-lVqM"},

		// Back
		{Name: "Pull Up", MuscleGroup: "Back", Equipment: "Bodyweight", VideoURL: "https://www.youtube.com/watch?v=eGo4IYlbE5g"},
		{Name: "Lat Pulldown", MuscleGroup: "Back", Equipment: "Cable", VideoURL: "https://www.youtube.com/watch?v=CAwf7n6Luuc"},
		{Name: "Barbell Row", MuscleGroup: "Back", Equipment: "Barbell", VideoURL: "https://www.youtube.com/watch?v=DgyslsszCQ0"},
		{Name: "Seated Cable Row", MuscleGroup: "Back", Equipment: "Cable", VideoURL: "https://www.youtube.com/watch?v=GZbfZ033f74"},
		{Name: "Single Arm Dumbbell Row", MuscleGroup: "Back", Equipment: "Dumbbell", VideoURL: "https://www.youtube.com/watch?v=dFzUjzuWss0"},
		{Name: "Deadlift", MuscleGroup: "Back/Legs", Equipment: "Barbell", VideoURL: "https://www.youtube.com/watch?v=U1H1VG9Uh50"},
		{Name: "Face Pull", MuscleGroup: "Back (Rear Delts)", Equipment: "Cable", VideoURL: "https://www.youtube.com/watch?v=ntBwG1E3Pzs"},

		// Shoulders
		{Name: "Overhead Press", MuscleGroup: "Shoulders", Equipment: "Barbell", VideoURL: "https://www.youtube.com/watch?v=HzIiInu578Q"},
		{Name: "Dumbbell Shoulder Press", MuscleGroup: "Shoulders", Equipment: "Dumbbell", VideoURL: "https://www.youtube.com/watch?v=1jYq9QQEWqE"},
		{Name: "Lateral Raise", MuscleGroup: "Shoulders", Equipment: "Dumbbell", VideoURL: "https://www.youtube.com/watch?v=3VcKaXpzqRo"},
		{Name: "Arnold Press", MuscleGroup: "Shoulders", Equipment: "Dumbbell", VideoURL: "https://www.youtube.com/watch?v=fFyrgCWTIaI"},

		// Arms
		{Name: "Barbell Curl", MuscleGroup: "Biceps", Equipment: "Barbell", VideoURL: "https://www.youtube.com/watch?v=aEscWJ3dS3w"},
		{Name: "Hammer Curl", MuscleGroup: "Biceps", Equipment: "Dumbbell", VideoURL: "https://www.youtube.com/watch?v=obovFxPjXSM"},
		{Name: "Tricep Pushdown", MuscleGroup: "Triceps", Equipment: "Cable", VideoURL: "https://www.youtube.com/watch?v=2-LAMcpzHLU"},
		{Name: "Skullcrusher", MuscleGroup: "Triceps", Equipment: "EZ Bar", VideoURL: "https://www.youtube.com/watch?v=l3rHYPtMUo8"},

		// Core
		{Name: "Plank", MuscleGroup: "Core", Equipment: "Bodyweight", VideoURL: "https://www.youtube.com/watch?v=pSHjTRCQxIw"},
		{Name: "Crunch", MuscleGroup: "Core", Equipment: "Bodyweight", VideoURL: "https://www.youtube.com/watch?v=cQ5JKgEZCU4"},
		{Name: "Leg Raise", MuscleGroup: "Core", Equipment: "Bodyweight", VideoURL: "https://www.youtube.com/watch?v=jbLpAteP_t4"},
	}

	for _, ex := range exercises {
		if err := repo.Create(context.Background(), &ex); err != nil {
			if err == domain.ErrDuplicateExercise {
				fmt.Printf("Skipping duplicate: %s\n", ex.Name)
			} else {
				log.Printf("Error creating %s: %v\n", ex.Name, err)
			}
		} else {
			fmt.Printf("Created: %s\n", ex.Name)
		}
	}
	fmt.Println("Seeding Exercises Complete.")
}
