package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Matias-sh/mi-portafolio/database"
	"github.com/Matias-sh/mi-portafolio/database/repository"
	"github.com/Matias-sh/mi-portafolio/handler/payload"
	"github.com/Matias-sh/mi-portafolio/pkg/cache"
)

func seedWriteUps(t *testing.T, conn *database.Connection) {
	t.Helper()

	web := database.Category{Name: "Web Exploitation"}
	crypto := database.Category{Name: "Cryptography"}
	sqli := database.Tag{Name: "SQL Injection"}
	linux := database.Tag{Name: "Linux"}

	mustCreate(t, conn, &web)
	mustCreate(t, conn, &crypto)
	mustCreate(t, conn, &sqli)
	mustCreate(t, conn, &linux)

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	items := []*database.WriteUp{
		{Title: "Easy Web", CategoryID: &web.ID, Platform: "hackthebox", Difficulty: "easy", Summary: "s", Content: "c", IsPublished: true, PublishedAt: base, Tags: []database.Tag{sqli, linux}},
		{Title: "Hard Web", CategoryID: &web.ID, Platform: "hackthebox", Difficulty: "hard", Summary: "s", Content: "c", IsPublished: true, PublishedAt: base.Add(time.Hour)},
		{Title: "Easy Crypto", CategoryID: &crypto.ID, Platform: "tryhackme", Difficulty: "easy", Summary: "s", Content: "c", IsPublished: true, PublishedAt: base.Add(2 * time.Hour)},
		{Title: "Draft Web", CategoryID: &web.ID, Platform: "hackthebox", Difficulty: "easy", Summary: "s", Content: "c", PublishedAt: base.Add(3 * time.Hour)},
	}

	for _, item := range items {
		mustCreate(t, conn, item)
	}
}

func TestWriteUpsIndexAppliesEveryFilter(t *testing.T) {
	conn := newConnection(t)
	seedWriteUps(t, conn)
	h := NewWriteUpsHandler(&repository.WriteUps{DB: conn}, nil)

	rec := httptest.NewRecorder()
	if apiErr := h.Index(rec, newRequest(http.MethodGet, "/api/writeups/?category=web-exploitation&difficulty=easy", "")); apiErr != nil {
		t.Fatalf("index: %v", apiErr)
	}

	items := decode[[]payload.WriteUpSummaryResponse](t, rec)
	if len(items) != 1 || items[0].Slug != "easy-web" {
		t.Fatalf("unexpected writeups %+v", items)
	}

	if items[0].Category == nil || items[0].Category.Slug != "web-exploitation" {
		t.Fatalf("missing category summary %+v", items[0].Category)
	}

	if len(items[0].Tags) != 2 || items[0].Tags[0].Name != "Linux" {
		t.Fatalf("tags should be sorted by name, got %+v", items[0].Tags)
	}
}

func TestWriteUpsIndexHidesDrafts(t *testing.T) {
	conn := newConnection(t)
	seedWriteUps(t, conn)
	h := NewWriteUpsHandler(&repository.WriteUps{DB: conn}, nil)

	rec := httptest.NewRecorder()
	if apiErr := h.Index(rec, newRequest(http.MethodGet, "/api/writeups/", "")); apiErr != nil {
		t.Fatalf("index: %v", apiErr)
	}

	items := decode[[]payload.WriteUpSummaryResponse](t, rec)
	if len(items) != 3 || items[0].Slug != "easy-crypto" {
		t.Fatalf("unexpected writeups %+v", items)
	}

	req := newRequest(http.MethodGet, "/api/writeups/draft-web/", "")
	req.SetPathValue("slug", "draft-web")

	if apiErr := h.Show(httptest.NewRecorder(), req); apiErr == nil || apiErr.Status != http.StatusNotFound {
		t.Fatalf("drafts should not be visible, got %#v", apiErr)
	}
}

func TestWriteUpsShowCountsEveryView(t *testing.T) {
	conn := newConnection(t)
	seedWriteUps(t, conn)
	views := &viewCounter{}
	h := NewWriteUpsHandler(&repository.WriteUps{DB: conn}, views)

	const requests = 8

	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			req := newRequest(http.MethodGet, "/api/writeups/easy-web/", "")
			req.SetPathValue("slug", "easy-web")

			if apiErr := h.Show(httptest.NewRecorder(), req); apiErr != nil {
				t.Errorf("show: %v", apiErr)
			}
		}()
	}

	wg.Wait()

	req := newRequest(http.MethodGet, "/api/writeups/easy-web/", "")
	req.SetPathValue("slug", "easy-web")

	rec := httptest.NewRecorder()
	if apiErr := h.Show(rec, req); apiErr != nil {
		t.Fatalf("show: %v", apiErr)
	}

	if rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("detail responses must carry cache headers")
	}

	detail := decode[payload.WriteUpDetailResponse](t, rec)
	if detail.ViewsCount != requests+1 {
		t.Fatalf("expected %d views, got %d", requests+1, detail.ViewsCount)
	}

	if views.n != requests+1 {
		t.Fatalf("expected the recorder to see %d views, got %d", requests+1, views.n)
	}
}

func TestCategoriesIndexIsCachedUntilInvalidated(t *testing.T) {
	conn := newConnection(t)
	seedWriteUps(t, conn)
	store := cache.NewMemoryStore(time.Minute)
	h := NewCategoriesHandler(&repository.Categories{DB: conn}, store, time.Minute)

	rec := httptest.NewRecorder()
	if apiErr := h.Index(rec, newRequest(http.MethodGet, "/api/writeups/categories/", "")); apiErr != nil {
		t.Fatalf("index: %v", apiErr)
	}

	first := decode[[]payload.CategoryResponse](t, rec)
	if len(first) != 2 || first[0].Slug != "cryptography" || first[0].WriteupsCount != 1 || first[1].WriteupsCount != 2 {
		t.Fatalf("unexpected categories %+v", first)
	}

	mustCreate(t, conn, &database.Category{Name: "Forensics"})

	rec = httptest.NewRecorder()
	_ = h.Index(rec, newRequest(http.MethodGet, "/api/writeups/categories/", ""))

	if cached := decode[[]payload.CategoryResponse](t, rec); len(cached) != 2 {
		t.Fatalf("expected the cached list, got %+v", cached)
	}

	if err := store.Delete(context.Background(), CategoriesCacheKey); err != nil {
		t.Fatalf("delete: %v", err)
	}

	rec = httptest.NewRecorder()
	_ = h.Index(rec, newRequest(http.MethodGet, "/api/writeups/categories/", ""))

	if fresh := decode[[]payload.CategoryResponse](t, rec); len(fresh) != 3 {
		t.Fatalf("expected the refreshed list, got %+v", fresh)
	}
}

func TestTagsIndexSurvivesABrokenCache(t *testing.T) {
	conn := newConnection(t)
	seedWriteUps(t, conn)
	h := NewTagsHandler(&repository.Tags{DB: conn}, failingStore{}, time.Minute)

	rec := httptest.NewRecorder()
	if apiErr := h.Index(rec, newRequest(http.MethodGet, "/api/writeups/tags/", "")); apiErr != nil {
		t.Fatalf("index: %v", apiErr)
	}

	tags := decode[[]payload.TagResponse](t, rec)
	if len(tags) != 2 || tags[0].Name != "Linux" || tags[0].WriteupsCount != 1 {
		t.Fatalf("unexpected tags %+v", tags)
	}
}

func TestToolsIndexFiltersByCategory(t *testing.T) {
	conn := newConnection(t)
	mustCreate(t, conn, &database.Tool{Name: "Nmap", Description: "d", Category: "recon", IsFree: true})
	mustCreate(t, conn, &database.Tool{Name: "Burp Suite", Description: "d", Category: "web"})

	rec := httptest.NewRecorder()
	if apiErr := NewToolsHandler(&repository.Tools{DB: conn}).Index(rec, newRequest(http.MethodGet, "/api/writeups/tools/?category=recon", "")); apiErr != nil {
		t.Fatalf("index: %v", apiErr)
	}

	tools := decode[[]payload.ToolResponse](t, rec)
	if len(tools) != 1 || tools[0].Name != "Nmap" {
		t.Fatalf("unexpected tools %+v", tools)
	}
}

func TestWriteUpsShowFailsWhenTheStoreIsBroken(t *testing.T) {
	conn := newConnection(t)
	dropTable(t, conn, "writeup_images")
	dropTable(t, conn, "writeup_tags")
	dropTable(t, conn, "writeups")

	views := &viewCounter{}
	h := NewWriteUpsHandler(&repository.WriteUps{DB: conn}, views)

	req := newRequest(http.MethodGet, "/writeups/api/easy-web/", "")
	req.SetPathValue("slug", "easy-web")

	if apiErr := h.Show(httptest.NewRecorder(), req); apiErr == nil || apiErr.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500 for a store failure, got %#v", apiErr)
	}
}
