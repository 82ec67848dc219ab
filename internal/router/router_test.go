package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"pet-shelter/internal/platform/config"
	"pet-shelter/internal/router"
)

type petBody struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Gender      int    `json:"gender"`
	GenderLabel string `json:"gender_label"`
	Weight      int    `json:"weight"`
}

func TestHTTP_EndToEnd_CatalogAndEditor(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Catálogo vacío
	if got := listPets(t, ts.URL); len(got) != 0 {
		t.Fatalf("expected empty catalog, got %#v", got)
	}

	// 2) Insert dummy (Toto)
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/dummy", nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 insert dummy, got %d body=%s", st, string(body))
		}
	}

	list := listPets(t, ts.URL)
	if len(list) != 1 {
		t.Fatalf("expected 1 pet, got %d", len(list))
	}
	want := petBody{ID: 1, Name: "Toto", Breed: "Terrier", Gender: 1, GenderLabel: "male", Weight: 7}
	if list[0] != want {
		t.Fatalf("expected %#v, got %#v", want, list[0])
	}

	// 3) Editor: guardar mascota nueva (con espacios, peso texto)
	id := createPet(t, ts.URL, map[string]any{
		"name":   "  Luna ",
		"breed":  "Siamese",
		"gender": "female",
		"weight": " 4 ",
	})

	// 4) Editor: cargar
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+strconv.FormatInt(id, 10), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
		}
		var p petBody
		_ = json.Unmarshal(body, &p)
		if p.Name != "Luna" || p.Gender != 2 || p.Weight != 4 {
			t.Fatalf("unexpected pet %#v", p)
		}
	}

	// 5) Editor: guardar existente (reemplazo completo, peso vacío => 0)
	{
		st, body := doReq(t, ts.URL, "PUT", "/pets/"+strconv.FormatInt(id, 10), map[string]any{
			"name":   "Luna",
			"gender": "unknown",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update, got %d body=%s", st, string(body))
		}
		var p petBody
		_ = json.Unmarshal(body, &p)
		if p.Breed != "" || p.Weight != 0 || p.GenderLabel != "unknown" {
			t.Fatalf("expected full replace, got %#v", p)
		}
	}

	// 6) Editor: borrar
	{
		st, body := doReq(t, ts.URL, "DELETE", "/pets/"+strconv.FormatInt(id, 10), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "DELETE", "/pets/"+strconv.FormatInt(id, 10), nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 deleting twice, got %d", st)
		}
		st, _ = doReq(t, ts.URL, "GET", "/pets/"+strconv.FormatInt(id, 10), nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", st)
		}
	}

	// 7) Catálogo: borrar todo (dos veces)
	{
		st, body := doReq(t, ts.URL, "DELETE", "/pets", nil)
		if st != http.StatusOK || rows(t, body) != 1 {
			t.Fatalf("expected 200 with 1 row, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "DELETE", "/pets", nil)
		if st != http.StatusOK || rows(t, body) != 0 {
			t.Fatalf("expected 200 with 0 rows, got %d body=%s", st, string(body))
		}
	}

	if got := listPets(t, ts.URL); len(got) != 0 {
		t.Fatalf("expected empty catalog at the end, got %#v", got)
	}
}

func TestHTTP_Editor_Validation(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	id := createPet(t, ts.URL, map[string]any{"name": "Milo"})
	path := "/pets/" + strconv.FormatInt(id, 10)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		want   int
	}{
		{"gender out of range on create", "POST", "/pets", map[string]any{"name": "x", "gender": "3"}, http.StatusBadRequest},
		{"gender out of range on update", "PUT", path, map[string]any{"name": "x", "gender": "7"}, http.StatusBadRequest},
		{"unknown gender label", "POST", "/pets", map[string]any{"name": "x", "gender": "cat"}, http.StatusBadRequest},
		{"negative weight", "POST", "/pets", map[string]any{"name": "x", "weight": "-2"}, http.StatusBadRequest},
		{"non numeric weight", "PUT", path, map[string]any{"weight": "heavy"}, http.StatusBadRequest},
		{"weight above int32", "POST", "/pets", map[string]any{"name": "x", "weight": "2147483648"}, http.StatusBadRequest},
		{"weight above int32 on update", "PUT", path, map[string]any{"name": "x", "weight": "9999999999"}, http.StatusBadRequest},
		{"unknown field on create", "POST", "/pets", map[string]any{"name": "x", "species": "dog"}, http.StatusBadRequest},
		{"unknown field on update", "PUT", path, map[string]any{"species": "dog"}, http.StatusBadRequest},
		{"update missing pet", "PUT", "/pets/999", map[string]any{"name": "ghost"}, http.StatusNotFound},
		{"bad id", "GET", "/pets/abc", nil, http.StatusBadRequest},
	}

	for _, tc := range cases {
		st, body := doReq(t, ts.URL, tc.method, tc.path, tc.body)
		if st != tc.want {
			t.Fatalf("%s: expected %d, got %d body=%s", tc.name, tc.want, st, string(body))
		}
	}

	// Nada de lo anterior cambió el registro original.
	list := listPets(t, ts.URL)
	if len(list) != 1 || list[0].Name != "Milo" || list[0].Weight != 0 {
		t.Fatalf("expected untouched record, got %#v", list)
	}
}

func TestHTTP_Create_BlankFormIsSkipped(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "POST", "/pets", map[string]any{"name": "  ", "breed": "", "weight": "", "gender": "unknown"})
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 for blank form, got %d", st)
	}
	if got := listPets(t, ts.URL); len(got) != 0 {
		t.Fatalf("expected nothing stored, got %#v", got)
	}
}

func TestHTTP_Update_BlankFormLeavesRecord(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/pets/dummy", nil)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 insert dummy, got %d body=%s", st, string(body))
	}

	// Editor en blanco sobre una mascota existente: no se guarda nada.
	st, body = doReq(t, ts.URL, "PUT", "/pets/1", map[string]any{"name": "", "breed": "", "gender": "unknown", "weight": ""})
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 for blank form, got %d body=%s", st, string(body))
	}

	// Con espacios también cuenta como vacío.
	st, _ = doReq(t, ts.URL, "PUT", "/pets/1", map[string]any{"name": "   ", "weight": " "})
	if st != http.StatusNoContent {
		t.Fatalf("expected 204 for whitespace form, got %d", st)
	}

	st, body = doReq(t, ts.URL, "GET", "/pets/1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
	}
	var p petBody
	_ = json.Unmarshal(body, &p)
	want := petBody{ID: 1, Name: "Toto", Breed: "Terrier", Gender: 1, GenderLabel: "male", Weight: 7}
	if p != want {
		t.Fatalf("expected untouched %#v, got %#v", want, p)
	}
}

func TestHTTP_SQLiteBackend_MetricsAndDocs(t *testing.T) {
	repo, closeFn, err := router.OpenRepo(config.Config{
		Storage:    config.StorageSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "shelter.db"),
	})
	if err != nil {
		t.Fatalf("open repo: %v", err)
	}
	defer closeFn()

	ts := httptest.NewServer(router.NewRouter(router.Options{Repo: repo}))
	defer ts.Close()

	createPet(t, ts.URL, map[string]any{"name": "Toto", "gender": "1", "weight": "7"})

	st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !strings.Contains(string(body), `pet_shelter_changes_total{op="created"} 1`) {
		t.Fatalf("expected created counter in metrics, got:\n%s", string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/swagger/doc.json", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "/pets/{petID}") {
		t.Fatalf("expected swagger doc, got %d body=%s", st, string(body))
	}

	st, _ = doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
}

func listPets(t *testing.T, baseURL string) []petBody {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", "/pets", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list pets, got %d body=%s", st, string(body))
	}
	var out []petBody
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("list pets: invalid json %v body=%s", err, string(body))
	}
	return out
}

func createPet(t *testing.T, baseURL string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == 0 {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func rows(t *testing.T, body []byte) int64 {
	t.Helper()

	var resp struct {
		Rows int64 `json:"rows"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("rows: invalid json %v", err)
	}
	return resp.Rows
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
