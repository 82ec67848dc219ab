package pets

import "context"

// Repository es el puerto de persistencia de la tabla pets.
// Los adapters devuelven ErrNotFound en GetByID y 0 filas en Update/Delete
// cuando el id no existe.
type Repository interface {
	Insert(ctx context.Context, p Pet) (int64, error)
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	Update(ctx context.Context, p Pet) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
