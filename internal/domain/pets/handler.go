package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes expone las dos pantallas de la app (catálogo y editor) como JSON.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		// Catálogo
		pr.Get("/", listPetsHandler(svc))
		pr.Delete("/", deleteAllPetsHandler(svc))
		pr.Post("/dummy", insertDummyPetHandler(svc))

		// Editor
		pr.Post("/", createPetHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type petResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Gender      int    `json:"gender"`
	GenderLabel string `json:"gender_label"`
	Weight      int    `json:"weight"`
}

type rowsResponse struct {
	Rows int64 `json:"rows"`
}

// listPetsHandler godoc
// @Summary  Lista todas las mascotas (orden de inserción)
// @Tags     pets
// @Produce  json
// @Success  200 {array} petResponse
// @Router   /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// createPetHandler godoc
// @Summary  Guarda una mascota nueva desde el editor
// @Tags     pets
// @Accept   json
// @Produce  json
// @Param    body body EditorForm true "formulario del editor"
// @Success  201 {object} petResponse
// @Success  204 "formulario vacío, no se guarda nada"
// @Failure  400 {string} string
// @Router   /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, ok := decodeEditorForm(w, r)
		if !ok {
			return
		}

		createAndRespond(w, r, svc, in)
	}
}

// insertDummyPetHandler godoc
// @Summary  Inserta la mascota de ejemplo (Toto, Terrier)
// @Tags     pets
// @Produce  json
// @Success  201 {object} petResponse
// @Router   /pets/dummy [post]
func insertDummyPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		createAndRespond(w, r, svc, DummyPet())
	}
}

func createAndRespond(w http.ResponseWriter, r *http.Request, svc *Service, in PetInput) {
	id, err := svc.Create(r.Context(), in)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPetResponse(in.toPet(id)))
}

// getPetHandler godoc
// @Summary  Carga una mascota en el editor
// @Tags     pets
// @Produce  json
// @Param    petID path int true "id"
// @Success  200 {object} petResponse
// @Failure  404 {string} string
// @Router   /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary  Reemplaza una mascota existente (guardar en el editor)
// @Tags     pets
// @Accept   json
// @Produce  json
// @Param    petID path int true "id"
// @Param    body body EditorForm true "formulario del editor"
// @Success  200 {object} petResponse
// @Success  204 "formulario vacío, no se guarda nada"
// @Failure  400 {string} string
// @Failure  404 {string} string
// @Router   /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		in, ok := decodeEditorForm(w, r)
		if !ok {
			return
		}

		n, err := svc.Update(r.Context(), id, in)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if n == 0 {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(in.toPet(id)))
	}
}

// deletePetHandler godoc
// @Summary  Borra una mascota
// @Tags     pets
// @Produce  json
// @Param    petID path int true "id"
// @Success  200 {object} rowsResponse
// @Failure  404 {string} string
// @Router   /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := petIDParam(w, r)
		if !ok {
			return
		}

		n, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if n == 0 {
			http.Error(w, "pet not found", http.StatusNotFound)
			return
		}

		writeJSON(w, http.StatusOK, rowsResponse{Rows: n})
	}
}

// deleteAllPetsHandler godoc
// @Summary  Borra todas las mascotas
// @Tags     pets
// @Produce  json
// @Success  200 {object} rowsResponse
// @Router   /pets [delete]
func deleteAllPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := svc.DeleteAll(r.Context())
		if err != nil {
			writeStoreError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, rowsResponse{Rows: n})
	}
}

// decodeEditorForm lee el formulario (estricto con campos desconocidos) y lo
// convierte a PetInput. Formulario vacío => 204 sin tocar el Store, sea alta
// o edición, igual que el editor original.
func decodeEditorForm(w http.ResponseWriter, r *http.Request) (PetInput, bool) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var form EditorForm
	if err := dec.Decode(&form); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return PetInput{}, false
	}

	in, err := form.ToInput()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return PetInput{}, false
	}

	if IsBlank(in) {
		w.WriteHeader(http.StatusNoContent)
		return PetInput{}, false
	}
	return in, true
}

func petIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, "petID"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid pet id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:          p.ID,
		Name:        p.Name,
		Breed:       p.Breed,
		Gender:      int(p.Gender),
		GenderLabel: p.Gender.String(),
		Weight:      p.Weight,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
