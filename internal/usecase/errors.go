package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrInvalidPassword    = errors.New("current password is incorrect")

	ErrUserNotFound     = errors.New("user not found")
	ErrUsernameExists   = errors.New("username already exists")
	ErrEmailExists      = errors.New("email already exists")
	ErrInvalidRole      = errors.New("invalid role")
	ErrDoctorNotFound   = errors.New("doctor not found or not active")
	ErrCannotDeactivate = errors.New("cannot deactivate your own account")

	ErrPatientNotFound       = errors.New("patient not found")
	ErrHospitalNumberExists  = errors.New("hospital number already exists")
	ErrIDNumberExists        = errors.New("ID number already exists")
	ErrInvalidRiskLevel      = errors.New("invalid risk level")
	ErrInvalidDateFormat     = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDateTimeFormat = errors.New("invalid datetime format, use RFC3339")

	ErrReadingNotFound    = errors.New("glucose reading not found")
	ErrInvalidReadingType = errors.New("invalid reading type")

	ErrAppointmentNotFound       = errors.New("appointment not found")
	ErrInvalidAppointmentType    = errors.New("invalid appointment type")
	ErrInvalidAppointmentStatus  = errors.New("invalid appointment status")
	ErrInvalidTimeFormat         = errors.New("invalid time format, use HH:MM")
	ErrAppointmentNotCancellable = errors.New("appointment cannot be cancelled, current status is")
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
