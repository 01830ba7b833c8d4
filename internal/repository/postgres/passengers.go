package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/odudar/skybook/internal/domain"
)

type PassengerRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *PassengerRepo) With(db DB) *PassengerRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *PassengerRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// GetByEmail retrieves a passenger by email.
//
// Returns:
//   - error: repository.ErrNotFound if no passenger has this email.
func (r *PassengerRepo) GetByEmail(ctx context.Context, email string) (*domain.Passenger, error) {
	const op = "postgres.PassengerRepo.GetByEmail"

	db := r.handle()

	var p domain.Passenger
	var dob *time.Time
	err := db.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, COALESCE(phone, ''),
		        date_of_birth, COALESCE(passport_number, ''), COALESCE(nationality, '')
		 FROM passengers
		 WHERE lower(email) = lower($1)`,
		email,
	).Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Email,
		&p.Phone,
		&dob,
		&p.PassportNumber,
		&p.Nationality,
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	if dob != nil {
		p.DateOfBirth = *dob
	}

	return &p, nil
}

// Create inserts a passenger and returns its ID.
//
// Returns:
//   - error: repository.ErrPassengerConflict if the passport number is
//     already registered to another passenger.
//   - error: repository.ErrConflict if the email already exists.
func (r *PassengerRepo) Create(ctx context.Context, p domain.Passenger) (int64, error) {
	const op = "postgres.PassengerRepo.Create"

	db := r.handle()

	var dob *time.Time
	if !p.DateOfBirth.IsZero() {
		dob = &p.DateOfBirth
	}

	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO passengers (first_name, last_name, email, phone, date_of_birth, passport_number, nationality)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		p.FirstName, p.LastName, p.Email, p.Phone, dob, p.PassportNumber, p.Nationality,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, translateDBErr(err))
	}

	return id, nil
}
