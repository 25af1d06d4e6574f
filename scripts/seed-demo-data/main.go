package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/jaurre/social-savvy-ai/internal/content"
	"github.com/jaurre/social-savvy-ai/internal/imagegen"
	"github.com/jaurre/social-savvy-ai/internal/pipeline"
	"github.com/jaurre/social-savvy-ai/internal/profile"
	"github.com/jaurre/social-savvy-ai/storage"
)

var industries = []string{"gastronomía", "moda", "tecnología", "salud", "educación", "belleza"}

var visualStyles = []string{"modern", "minimalist", "colorful", "elegant", "bold"}

var tones = []string{"cercano", "profesional", "divertido", "inspirador"}

var ideas = []string{
	"promoción del mes",
	"nuevo producto en tienda",
	"consejo para nuestros clientes",
	"detrás de escena del negocio",
	"agradecimiento a la comunidad",
}

func main() {
	dbPath := flag.String("db", "./db/social-savvy.db", "Path to SQLite database")
	numProfiles := flag.Int("profiles", 5, "Number of demo business profiles")
	postsPerProfile := flag.Int("posts", 3, "Generated posts per profile")
	placeholderDir := flag.String("placeholder-dir", "./public/placeholders", "Directory for rendered placeholder images")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	store, err := storage.New(*dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	renderer := imagegen.NewFileRenderer(*placeholderDir, "/public/placeholders")
	chain := imagegen.NewChain(imagegen.DefaultProviders(0.3, rng), renderer)
	chain.Pause = 0
	generator := pipeline.NewGenerator(content.NewSimulatedBackend(rng), chain, imagegen.NewOverlayPolicy(rng), rng)
	generator.ImagePause = 0

	ctx := context.Background()
	created := 0

	for i := 0; i < *numProfiles; i++ {
		biz := profile.BusinessProfile{
			Name:         gofakeit.Company(),
			Industry:     industries[rng.Intn(len(industries))],
			Description:  gofakeit.Sentence(10),
			Tone:         tones[rng.Intn(len(tones))],
			VisualStyle:  visualStyles[rng.Intn(len(visualStyles))],
			ColorPalette: []string{gofakeit.HexColor(), gofakeit.HexColor()},
			Slogan:       gofakeit.Slogan(),
		}

		rec, err := store.CreateProfile(ctx, biz)
		if err != nil {
			log.Fatalf("Failed to create profile: %v", err)
		}
		slog.Info("created demo profile", "profile_id", rec.ID, "name", biz.Name)

		objectives := profile.AllObjectives
		networks := profile.AllNetworks
		posts, err := generator.Generate(ctx, pipeline.Request{
			Profile:      biz,
			Idea:         ideas[rng.Intn(len(ideas))],
			Objective:    objectives[rng.Intn(len(objectives))],
			Network:      networks[rng.Intn(len(networks))],
			VariantCount: *postsPerProfile,
		}, nil)
		if err != nil {
			log.Fatalf("Failed to generate demo posts: %v", err)
		}

		for _, post := range posts {
			if err := store.InsertPost(ctx, rec.ID, post); err != nil {
				log.Fatalf("Failed to insert demo post: %v", err)
			}
			created++
		}
	}

	fmt.Printf("Seeded %d profiles with %d posts\n", *numProfiles, created)
}
