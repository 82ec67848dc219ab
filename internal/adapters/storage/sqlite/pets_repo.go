package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"pet-shelter/internal/domain/pets"
)

const selectPet = `
	SELECT
		id,
		COALESCE(name, ''), COALESCE(breed, ''),
		gender, COALESCE(weight, 0)
	FROM pets`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Insert(ctx context.Context, p pets.Pet) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO pets (name, breed, gender, weight) VALUES (?, ?, ?, ?)`,
		p.Name, p.Breed, int(p.Gender), p.Weight,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, selectPet+` ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	p, err := scanPet(r.db.QueryRowContext(ctx, selectPet+` WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE pets SET name = ?, breed = ?, gender = ?, weight = ? WHERE id = ?`,
		p.Name, p.Breed, int(p.Gender), p.Weight, p.ID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PetsRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanPet(s interface{ Scan(dest ...any) error }) (pets.Pet, error) {
	var p pets.Pet
	var gender, weight int
	if err := s.Scan(&p.ID, &p.Name, &p.Breed, &gender, &weight); err != nil {
		return pets.Pet{}, err
	}
	p.Gender = pets.Gender(gender)
	p.Weight = weight
	return p, nil
}
