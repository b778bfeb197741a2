package domain

import "errors"

var (
	ErrNotFound        = errors.New("record not found")
	ErrLocationInUse   = errors.New("location is referenced by a package and cannot be deleted")
	ErrDuplicateName   = errors.New("name already exists")
	ErrDuplicateOffer  = errors.New("an offer already exists for this route and cab")
	ErrInvalidRate     = errors.New("rate per km must be greater than zero")
	ErrInvalidKmLimit  = errors.New("daily km limit must not be negative")
	ErrNegativePrice   = errors.New("price must not be negative")
	ErrInvalidTripType = errors.New("unknown trip type")
)
