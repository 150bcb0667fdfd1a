package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/mansoorceksport/ironlog/internal/config"
	"github.com/mansoorceksport/ironlog/internal/domain"
	"github.com/mansoorceksport/ironlog/internal/strength"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Recomputes the stored 1RM estimates on every max log. Useful after a
// formula fix, or when documents were written by an older build.
func main() {
	dryRun := flag.Bool("dry-run", false, "report what would change without writing")
	profileID := flag.String("profile", "", "limit recalculation to one profile")
	flag.Parse()

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
	defer client.Disconnect(context.Background())

	coll := client.Database(cfg.MongoDB.Database).Collection("max_logs")

	filter := bson.M{}
	if *profileID != "" {
		filter["profile_id"] = *profileID
	}

	cursor, err := coll.Find(context.Background(), filter)
	if err != nil {
		log.Fatalf("Failed to query max logs: %v", err)
	}
	defer cursor.Close(context.Background())

	var scanned, updated, failed int
	for cursor.Next(context.Background()) {
		var maxLog domain.MaxLog
		if err := cursor.Decode(&maxLog); err != nil {
			log.Printf("Decode error: %v", err)
			failed++
			continue
		}
		scanned++

		estimates, err := strength.EstimateAll(maxLog.Weight, maxLog.Reps)
		if err != nil {
			log.Printf("Skipping %s: %v", maxLog.ID, err)
			failed++
			continue
		}

		brzycki := estimates[strength.FormulaBrzycki]
		epley := estimates[strength.FormulaEpley]
		average := estimates[strength.FormulaAverage]

		if sameEstimate(maxLog.MaxBrzycki, brzycki) &&
			sameEstimate(maxLog.MaxEpley, epley) &&
			sameEstimate(maxLog.Estimated1RM, average) {
			continue
		}

		if *dryRun {
			fmt.Printf("Would update %s: estimated_1rm %.2f -> %.2f\n", maxLog.ID, maxLog.Estimated1RM, average)
			updated++
			continue
		}

		_, err = coll.UpdateOne(context.Background(),
			bson.M{"_id": maxLog.ID},
			bson.M{"$set": bson.M{
				"max_brzycki":   brzycki,
				"max_epley":     epley,
				"estimated_1rm": average,
				"updated_at":    time.Now(),
			}},
		)
		if err != nil {
			log.Printf("Update error for %s: %v", maxLog.ID, err)
			failed++
			continue
		}
		updated++
	}

	fmt.Printf("Done. scanned=%d updated=%d failed=%d\n", scanned, updated, failed)
}

func sameEstimate(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}
