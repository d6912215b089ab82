package apperrors

import (
	"net/http"
)

// =========================================================================
// Factories
// =========================================================================

// ErrNotFound wraps a lookup failure into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrEmailDelivery is returned when the contact provider fails to send.
func ErrEmailDelivery(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "contact", "Message could not be delivered", http.StatusBadGateway)
}

// =========================================================================
// Predefined errors
// =========================================================================

var ErrProjectNotFound = New(
	CodeNotFound,
	"project",
	"Project not found",
	http.StatusNotFound,
)

var ErrPortfolioLinkNotFound = New(
	CodeNotFound,
	"portfolio_link",
	"Portfolio link not found",
	http.StatusNotFound,
)

var ErrPhotoNotFound = New(
	CodeNotFound,
	"photo",
	"Photo not found",
	http.StatusNotFound,
)

// ErrPortfolioNotFound covers unknown slugs and inactive links alike.
var ErrPortfolioNotFound = New(
	CodeNotFound,
	"portfolio",
	"Portfolio non trouvé",
	http.StatusNotFound,
)
