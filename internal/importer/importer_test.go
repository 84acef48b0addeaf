package importer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"agency-cms/internal/domain"
	postsvc "agency-cms/internal/service/post"
)

type fakePostWriter struct {
	created []postsvc.CreateInput
	errFor  map[string]error
}

func (f *fakePostWriter) Create(_ context.Context, in postsvc.CreateInput) (*domain.BlogPost, error) {
	if err, ok := f.errFor[in.Title]; ok {
		return nil, err
	}
	f.created = append(f.created, in)
	return &domain.BlogPost{ID: len(f.created), Title: in.Title}, nil
}

type fakeCategoryReader struct {
	bySlug map[string]int
}

func (f *fakeCategoryReader) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	id, ok := f.bySlug[slug]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Category{ID: id, Slug: slug}, nil
}

func TestRun_ImportsRows(t *testing.T) {
	csv := strings.Join([]string{
		"title,slug,content,published,tags,category",
		"First Post,first-post,Body one,true,seo|tips,technology",
		"Second Post,,Body two,false,,",
	}, "\n")

	writer := &fakePostWriter{}
	imp := NewCSVImporter(strings.NewReader(csv), writer, &fakeCategoryReader{bySlug: map[string]int{"technology": 7}})

	n, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 imported, got %d", n)
	}

	first := writer.created[0]
	if first.Slug != "first-post" || !first.IsPublished {
		t.Fatalf("unexpected first input %+v", first)
	}
	if len(first.Tags) != 2 || first.Tags[0] != "seo" || first.Tags[1] != "tips" {
		t.Fatalf("unexpected tags %v", first.Tags)
	}
	if first.CategoryID == nil || *first.CategoryID != 7 {
		t.Fatalf("expected category resolved, got %+v", first.CategoryID)
	}

	second := writer.created[1]
	if second.Slug != "" || second.IsPublished || second.CategoryID != nil {
		t.Fatalf("unexpected second input %+v", second)
	}
}

func TestRun_MissingRequiredColumns(t *testing.T) {
	cases := []struct {
		name string
		csv  string
		want string
	}{
		{"no title", "slug,content\na,b", "missing required column: title"},
		{"no content", "title,slug\na,b", "missing required column: content"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			imp := NewCSVImporter(strings.NewReader(tc.csv), &fakePostWriter{}, nil)
			if _, err := imp.Run(context.Background()); err == nil || err.Error() != tc.want {
				t.Fatalf("expected %q, got %v", tc.want, err)
			}
		})
	}
}

func TestRun_SkipsDuplicateSlugs(t *testing.T) {
	csv := strings.Join([]string{
		"title,content",
		"Already There,body",
		"Fresh,body",
	}, "\n")

	writer := &fakePostWriter{errFor: map[string]error{"Already There": domain.ErrAlreadyExists}}
	imp := NewCSVImporter(strings.NewReader(csv), writer, nil)

	n, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 imported, got %d", n)
	}
	if len(writer.created) != 1 || writer.created[0].Title != "Fresh" {
		t.Fatalf("unexpected created %+v", writer.created)
	}
}

func TestRun_SkipsBlankTitles(t *testing.T) {
	csv := strings.Join([]string{
		"title,content",
		",orphan body",
		"Kept,body",
	}, "\n")

	writer := &fakePostWriter{}
	imp := NewCSVImporter(strings.NewReader(csv), writer, nil)

	n, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 1 || writer.created[0].Title != "Kept" {
		t.Fatalf("expected only titled row, got n=%d created=%+v", n, writer.created)
	}
}

func TestRun_UnknownCategoryImportsDetached(t *testing.T) {
	csv := strings.Join([]string{
		"title,content,category",
		"Post,body,no-such-category",
	}, "\n")

	writer := &fakePostWriter{}
	imp := NewCSVImporter(strings.NewReader(csv), writer, &fakeCategoryReader{})

	n, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 imported, got %d", n)
	}
	if writer.created[0].CategoryID != nil {
		t.Fatalf("expected detached post, got category %v", *writer.created[0].CategoryID)
	}
}

func TestRun_StopsOnWriteError(t *testing.T) {
	csv := strings.Join([]string{
		"title,content",
		"Bad,body",
		"Never Reached,body",
	}, "\n")

	writer := &fakePostWriter{errFor: map[string]error{"Bad": errors.New("store down")}}
	imp := NewCSVImporter(strings.NewReader(csv), writer, nil)

	n, err := imp.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "store down") {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 imported, got %d", n)
	}
}
