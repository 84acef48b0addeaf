package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"agency-cms/internal/domain"
	postsvc "agency-cms/internal/service/post"
)

type PostWriter interface {
	Create(ctx context.Context, in postsvc.CreateInput) (*domain.BlogPost, error)
}

type CategoryReader interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

// CSVImporter reads a CSV export of blog posts and inserts them through the
// content service, so slug and read-time derivation apply to imported rows
// the same way they do to API writes.
type CSVImporter struct {
	reader     *csv.Reader
	posts      PostWriter
	categories CategoryReader
}

func NewCSVImporter(r io.Reader, posts PostWriter, categories CategoryReader) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:     csvr,
		posts:      posts,
		categories: categories,
	}
}

// Run parses CSV rows and creates one post per row. Rows whose slug already
// exists are skipped rather than failing the whole import.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["title"]; !ok {
		return 0, errors.New("missing required column: title")
	}
	if _, ok := index["content"]; !ok {
		return 0, errors.New("missing required column: content")
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		in, err := i.parseRow(ctx, record, index)
		if err != nil {
			return imported, err
		}
		if in == nil {
			continue
		}

		if _, err := i.posts.Create(ctx, *in); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				continue
			}
			return imported, fmt.Errorf("create post %q: %w", in.Title, err)
		}
		imported++
	}
	return imported, nil
}

func (i *CSVImporter) parseRow(ctx context.Context, record []string, index map[string]int) (*postsvc.CreateInput, error) {
	field := func(name string) string {
		idx, ok := index[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	title := field("title")
	if title == "" {
		return nil, nil
	}

	in := postsvc.CreateInput{
		Title:          title,
		Slug:           field("slug"),
		Excerpt:        field("excerpt"),
		Content:        field("content"),
		FeaturedImage:  field("featuredimage"),
		IsPublished:    strings.EqualFold(field("published"), "true"),
		SEOTitle:       field("seotitle"),
		SEODescription: field("seodescription"),
	}

	if tags := field("tags"); tags != "" {
		for _, t := range strings.Split(tags, "|") {
			if t = strings.TrimSpace(t); t != "" {
				in.Tags = append(in.Tags, t)
			}
		}
	}

	if categorySlug := field("category"); categorySlug != "" && i.categories != nil {
		cat, err := i.categories.GetBySlug(ctx, categorySlug)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return &in, nil // unknown category, import the post detached
			}
			return nil, fmt.Errorf("resolve category %q: %w", categorySlug, err)
		}
		in.CategoryID = &cat.ID
	}

	return &in, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}
