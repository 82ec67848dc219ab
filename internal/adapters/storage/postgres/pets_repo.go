package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-shelter/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Insert(ctx context.Context, p pets.Pet) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (name, breed, gender, weight)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		p.Name,
		p.Breed,
		int(p.Gender),
		p.Weight,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id,
			COALESCE(name, ''), COALESCE(breed, ''),
			gender, COALESCE(weight, 0)
		FROM pets
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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
	row := r.db.QueryRowContext(ctx, `
		SELECT
			id,
			COALESCE(name, ''), COALESCE(breed, ''),
			gender, COALESCE(weight, 0)
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			breed = $3,
			gender = $4,
			weight = $5
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Breed,
		int(p.Gender),
		p.Weight,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *PetsRepo) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
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

type scanner interface {
	Scan(dest ...any) error
}

func scanPet(s scanner) (pets.Pet, error) {
	var p pets.Pet
	var gender, weight int
	if err := s.Scan(&p.ID, &p.Name, &p.Breed, &gender, &weight); err != nil {
		return pets.Pet{}, err
	}
	p.Gender = pets.Gender(gender)
	p.Weight = weight
	return p, nil
}
