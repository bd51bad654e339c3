package main

import (
	"context"
	"fmt"
	"time"

	"github.com/citypulse-backend/internal/config"
	"github.com/citypulse-backend/internal/domain"
	"github.com/citypulse-backend/internal/pkg/geo"
	"github.com/citypulse-backend/internal/pkg/logger"
	"github.com/citypulse-backend/internal/repository/docstore"
	"go.uber.org/zap"
)

// Backfills the geohash attribute on institution posts created before
// geohash indexing existed. Posts that already carry a geohash or have
// no pinned location are left alone. Safe to re-run.
func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting geohash backfill",
		zap.String("collection", domain.CollectionInstitutionPosts),
		zap.Uint("precision", cfg.Geo.WritePrecision),
	)

	// 3. Connect to PostgreSQL (document store)
	db, err := docstore.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	// 4. Scan every post: the store has no "attribute missing" filter,
	// so skipping happens here
	docRepo := docstore.NewDocumentRepository(db)

	docs, err := docRepo.Query(ctx, domain.CollectionInstitutionPosts, domain.DocumentQuery{})
	if err != nil {
		log.Fatal("Failed to scan institution posts", zap.Error(err))
	}

	var updated, skipped, failed int

	for _, doc := range docs {
		if _, ok := doc.Attrs["geohash"]; ok {
			skipped++
			continue
		}

		location, ok := doc.Attrs["map_location"].(map[string]interface{})
		if !ok {
			skipped++
			continue
		}

		lat, latOK := location["lat"].(float64)
		lng, lngOK := location["lng"].(float64)
		if !latOK || !lngOK {
			skipped++
			continue
		}

		hash := geo.Encode(lat, lng, cfg.Geo.WritePrecision)

		if err := docRepo.Update(ctx, domain.CollectionInstitutionPosts, doc.ID, map[string]interface{}{
			"geohash": hash,
		}); err != nil {
			failed++
			log.Error("Failed to update post",
				zap.String("id", doc.ID),
				zap.Error(err),
			)
			continue
		}

		updated++
		log.Debug("Post updated",
			zap.String("id", doc.ID),
			zap.String("geohash", hash),
		)
	}

	// 5. Report
	log.Info("Geohash backfill complete",
		zap.Int("updated", updated),
		zap.Int("skipped", skipped),
		zap.Int("errors", failed),
	)
}
