package attendanceerrors

import (
	"net/http"

	"hrms-portal/internal/shared/apperror"
)

var (
	// Status 400 mengikuti kontrak API lama, bukan 409.
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"Already checked in today",
		http.StatusBadRequest,
	)
	ErrCheckOutNotMatched = apperror.New(
		apperror.CodeNotFound,
		"Attendance not found or already checked out",
		http.StatusNotFound,
	)
)
