package pets

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidGender = fmt.Errorf("%w: gender must be 0 (unknown), 1 (male) or 2 (female)", ErrInvalidInput)
	ErrNotFound      = errors.New("pet not found")
)

// Service es el Pet Record Store: valida, persiste vía Repository y avisa
// a los observers cada vez que cambian filas.
type Service struct {
	repo Repository

	mu        sync.RWMutex
	observers map[int]Observer
	nextObs   int
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:      repo,
		observers: make(map[int]Observer),
	}
}

func validate(in PetInput) error {
	if !in.Gender.Valid() {
		return ErrInvalidGender
	}
	return nil
}

// Create inserta una mascota nueva y devuelve el id asignado.
func (s *Service) Create(ctx context.Context, in PetInput) (int64, error) {
	if err := validate(in); err != nil {
		return 0, err
	}

	id, err := s.repo.Insert(ctx, in.toPet(0))
	if err != nil {
		return 0, fmt.Errorf("insert pet: %w", err)
	}

	s.notifyChanged(ctx, Change{Op: OpCreated, ID: id, Rows: 1})
	return id, nil
}

// GetAll devuelve un snapshot nuevo en orden de inserción.
func (s *Service) GetAll(ctx context.Context) ([]Pet, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	if items == nil {
		items = []Pet{}
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Pet{}, ErrNotFound
		}
		return Pet{}, fmt.Errorf("get pet %d: %w", id, err)
	}
	return p, nil
}

// Update reemplaza el registro completo. 0 filas = el id no existe (no es error).
func (s *Service) Update(ctx context.Context, id int64, in PetInput) (int64, error) {
	if err := validate(in); err != nil {
		return 0, err
	}

	n, err := s.repo.Update(ctx, in.toPet(id))
	if err != nil {
		return 0, fmt.Errorf("update pet %d: %w", id, err)
	}

	if n > 0 {
		s.notifyChanged(ctx, Change{Op: OpUpdated, ID: id, Rows: n})
	}
	return n, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete pet %d: %w", id, err)
	}

	if n > 0 {
		s.notifyChanged(ctx, Change{Op: OpDeleted, ID: id, Rows: n})
	}
	return n, nil
}

// DeleteAll vacía la tabla y devuelve cuántas filas borró.
func (s *Service) DeleteAll(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete all pets: %w", err)
	}

	if n > 0 {
		s.notifyChanged(ctx, Change{Op: OpCleared, Rows: n})
	}
	return n, nil
}
