package repository

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrSeatTaken          = errors.New("seat already taken for flight")
	ErrDuplicateReference = errors.New("booking reference already exists")
	ErrPassengerConflict  = errors.New("passport number belongs to another passenger")
)
