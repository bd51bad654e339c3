//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/citypulse-backend/internal/domain"
	"github.com/citypulse-backend/internal/pkg/geo"
)

// Seeds the document store with demo data around Douala so the search
// endpoints have something to return on a fresh database.
//
//	go run scripts/seed.go -dsn "host=localhost port=5432 user=postgres password=postgres dbname=citypulse sslmode=disable"
func main() {
	dsn := flag.String("dsn", "host=localhost port=5432 user=postgres password=postgres dbname=citypulse sslmode=disable", "PostgreSQL DSN")
	lat := flag.Float64("lat", 4.0511, "Seed center latitude")
	lng := flag.Float64("lng", 9.7679, "Seed center longitude")
	flag.Parse()

	db, err := sqlx.Connect("pgx", *dsn)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	instFrancais := uuid.NewString()
	instMall := uuid.NewString()

	institutions := []struct {
		id   string
		data domain.Institution
	}{
		{instFrancais, domain.Institution{
			Name:      "Institut Culturel de Douala",
			Category:  "culture",
			Lat:       *lat + 0.0008,
			Lng:       *lng + 0.0005,
			Location:  "Bonanjo",
			Region:    "Littoral",
			Verified:  true,
			CreatedAt: now,
		}},
		{instMall, domain.Institution{
			Name:      "Douala Grand Mall",
			Category:  "commerce",
			Lat:       *lat - 0.0120,
			Lng:       *lng + 0.0200,
			Location:  "Bonapriso",
			Region:    "Littoral",
			Verified:  true,
			CreatedAt: now,
		}},
	}

	posts := []domain.InstitutionPost{
		{
			InstitutionID: instFrancais,
			Title:         "Concert acoustique ce samedi",
			Content:       "Open air acoustic session with local artists on the esplanade.",
			TypeOfPost:    domain.PostTypeEvent,
			Tags:          []string{"concert", "live"},
			Categories:    []string{"music", "culture"},
			Visibility:    domain.VisibilityPublic,
			MapLocation:   &domain.MapLocation{Label: "Esplanade", Lat: *lat + 0.0008, Lng: *lng + 0.0005},
			PublishedAt:   now,
			CreatedAt:     now,
		},
		{
			InstitutionID: instMall,
			Title:         "Hiring: electricians and technicians",
			Content:       "The mall maintenance team is looking for certified electricians.",
			TypeOfPost:    domain.PostTypeJob,
			Tags:          []string{"hiring", "electrician"},
			Categories:    []string{"trades"},
			Visibility:    domain.VisibilityPublic,
			MapLocation:   &domain.MapLocation{Label: "Grand Mall", Lat: *lat - 0.0120, Lng: *lng + 0.0200},
			PublishedAt:   now,
			CreatedAt:     now,
		},
		{
			InstitutionID: instFrancais,
			Title:         "Internship program for media students",
			Content:       "Three month internship covering event production and communication.",
			TypeOfPost:    domain.PostTypeInternship,
			Tags:          []string{"internship", "media"},
			Categories:    []string{"education"},
			Visibility:    domain.VisibilityPublic,
			PublishedAt:   now,
			CreatedAt:     now,
		},
	}

	pois := []domain.POI{
		{Name: "Bonanjo Esplanade", Type: "park", Location: "Bonanjo", RadiusM: 300, Lat: *lat + 0.0030, Lng: *lng - 0.0010, CreatedAt: now},
		{Name: "Marché des Fleurs", Type: "market", Location: "Akwa", RadiusM: 150, Lat: *lat - 0.0045, Lng: *lng + 0.0015, CreatedAt: now},
	}

	var inserted, failed int

	for _, inst := range institutions {
		if err := insert(ctx, db, domain.CollectionInstitutions, inst.id, inst.data); err != nil {
			failed++
			log.Printf("institution %q: %v", inst.data.Name, err)
			continue
		}
		inserted++
	}

	for _, post := range posts {
		if post.MapLocation != nil {
			post.Geohash = geo.Encode(post.MapLocation.Lat, post.MapLocation.Lng, geo.WritePrecision)
		}
		if err := insert(ctx, db, domain.CollectionInstitutionPosts, uuid.NewString(), post); err != nil {
			failed++
			log.Printf("post %q: %v", post.Title, err)
			continue
		}
		inserted++
	}

	for _, poi := range pois {
		if err := insert(ctx, db, domain.CollectionPOIs, uuid.NewString(), poi); err != nil {
			failed++
			log.Printf("poi %q: %v", poi.Name, err)
			continue
		}
		inserted++
	}

	fmt.Printf("✅ Seed complete: %d documents inserted, %d failed\n", inserted, failed)
	fmt.Printf("   Center: %.4f, %.4f\n", *lat, *lng)
}

func insert(ctx context.Context, db *sqlx.DB, collection, id string, v interface{}) error {
	attrs, err := domain.ToAttrs(v)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(attrs)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, attrs) VALUES ($1, $2, $3)
		 ON CONFLICT (collection, id) DO NOTHING`,
		collection, id, raw)
	return err
}
