package server

import (
	"errors"
	"net/http"

	"github.com/mohitbhoir789/resume-builder/internal/optimizer"
	"github.com/mohitbhoir789/resume-builder/internal/profile"
)

// HTTPStatus returns the appropriate HTTP status code for a pipeline error.
func HTTPStatus(err error) int {
	var notFound *profile.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	var invalidJob *optimizer.InvalidJobDescriptionError
	if errors.As(err, &invalidJob) {
		return http.StatusBadRequest
	}
	var invalidProfile *profile.InvalidProfileError
	if errors.As(err, &invalidProfile) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
