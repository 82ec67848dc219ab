package pets

import (
	"context"
	"sort"
)

type ChangeOp string

const (
	OpCreated ChangeOp = "created"
	OpUpdated ChangeOp = "updated"
	OpDeleted ChangeOp = "deleted"
	OpCleared ChangeOp = "cleared"
)

// Change describe una escritura que afectó filas.
// ID es 0 en OpCleared.
type Change struct {
	Op   ChangeOp
	ID   int64
	Rows int64
}

// Observer recibe los avisos de cambio (la capa de presentación refresca la lista).
type Observer interface {
	PetsChanged(ctx context.Context, c Change)
}

type ObserverFunc func(ctx context.Context, c Change)

func (f ObserverFunc) PetsChanged(ctx context.Context, c Change) { f(ctx, c) }

// Subscribe registra un observer. La func devuelta lo da de baja.
func (s *Service) Subscribe(obs Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.nextObs
	s.nextObs++
	s.observers[key] = obs

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, key)
	}
}

// notifyChanged llama a los observers en orden de suscripción, de forma síncrona.
func (s *Service) notifyChanged(ctx context.Context, c Change) {
	s.mu.RLock()
	keys := make([]int, 0, len(s.observers))
	for k := range s.observers {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	obs := make([]Observer, 0, len(keys))
	for _, k := range keys {
		obs = append(obs, s.observers[k])
	}
	s.mu.RUnlock()

	for _, o := range obs {
		o.PetsChanged(ctx, c)
	}
}
