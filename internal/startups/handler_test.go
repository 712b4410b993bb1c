package startups

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	NewHandler(NewMemoryRepo()).RegisterRoutes(api)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListIncludesSeedRecord(t *testing.T) {
	router := setupRouter()

	w := doJSON(t, router, http.MethodGet, "/api/v1/startups", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp struct {
		Startups []Startup `json:"startups"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Startups) != 1 {
		t.Fatalf("expected 1 seeded startup, got %d", len(resp.Startups))
	}
	seed := resp.Startups[0]
	if seed.Name != "TechVenture" || seed.Industry != "SaaS" || seed.Funding != 500000 {
		t.Fatalf("seed record = %+v", seed)
	}
}

func TestCreateThenGet(t *testing.T) {
	router := setupRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/startups", gin.H{
		"name":     "ShopLocal",
		"industry": "E-commerce",
		"stage":    "Pre-seed",
		"funding":  100000,
		"team":     2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var created Startup
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be set")
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/startups/"+created.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var fetched Startup
	if err := json.Unmarshal(w.Body.Bytes(), &fetched); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fetched.Name != "ShopLocal" || fetched.Team != 2 {
		t.Fatalf("fetched = %+v", fetched)
	}
}

func TestCreateRequiresName(t *testing.T) {
	router := setupRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/startups", gin.H{"industry": "SaaS"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestUpdateMergesFields(t *testing.T) {
	router := setupRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/startups", gin.H{
		"name":    "ShopLocal",
		"stage":   "Pre-seed",
		"funding": 100000,
	})
	var created Startup
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doJSON(t, router, http.MethodPut, "/api/v1/startups/"+created.ID, gin.H{
		"stage":   "Seed",
		"funding": 750000,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var updated Startup
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if updated.Stage != "Seed" || updated.Funding != 750000 {
		t.Fatalf("updated = %+v", updated)
	}
	// Fields absent from the request keep their stored values.
	if updated.Name != "ShopLocal" {
		t.Fatalf("name overwritten: %q", updated.Name)
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	router := setupRouter()

	w := doJSON(t, router, http.MethodPost, "/api/v1/startups", gin.H{"name": "Temp"})
	var created Startup
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/v1/startups/"+created.ID, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/v1/startups/"+created.ID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get status = %d, want 404", w.Code)
	}
}

func TestUnknownIDReturnsNotFound(t *testing.T) {
	router := setupRouter()

	for _, tc := range []struct {
		method string
		body   any
	}{
		{http.MethodGet, nil},
		{http.MethodPut, gin.H{"name": "X"}},
		{http.MethodDelete, nil},
	} {
		w := doJSON(t, router, tc.method, "/api/v1/startups/nope", tc.body)
		if w.Code != http.StatusNotFound {
			t.Fatalf("%s status = %d, want 404", tc.method, w.Code)
		}
	}
}
