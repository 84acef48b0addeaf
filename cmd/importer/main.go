package main

import (
	"context"
	"flag"
	"log"
	"os"

	"agency-cms/internal/config"
	"agency-cms/internal/db"
	"agency-cms/internal/importer"
	categoryrepo "agency-cms/internal/repository/category"
	postrepo "agency-cms/internal/repository/post"
	categorysvc "agency-cms/internal/service/category"
	postsvc "agency-cms/internal/service/post"
)

func main() {
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	var path string
	flag.StringVar(&path, "file", "", "path to a CSV export of blog posts")
	flag.Parse()
	if path == "" {
		logger.Fatal("usage: importer -file posts.csv")
	}

	f, err := os.Open(path)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	cfg := config.FromEnv()
	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	posts := postsvc.New(postrepo.NewPostgres(pool, logger))
	categories := categorysvc.New(categoryrepo.NewPostgres(pool))

	imp := importer.NewCSVImporter(f, posts, categories)
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d posts: %v", count, err)
	}
	logger.Printf("imported %d posts", count)
}
