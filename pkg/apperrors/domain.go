package apperrors

import "net/http"

// Domain-specific error factories. Grouped here so handlers and services
// share the exact same codes and messages.

// --- users / auth ---

func UserNotFound() *AppError {
	return New(CodeNotFound, "user", "User not found", http.StatusNotFound)
}

func EmailAlreadyRegistered() *AppError {
	return New(CodeAlreadyExists, "user", "Email is already registered", http.StatusConflict)
}

func InvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
}

func SessionExpired() *AppError {
	return New(CodeSessionExpired, "auth", "Session has expired, please log in again", http.StatusUnauthorized)
}

// --- properties ---

func PropertyNotFound() *AppError {
	return New(CodeNotFound, "property", "Property not found", http.StatusNotFound)
}

func PropertyAccessDenied() *AppError {
	return New(CodeForbidden, "property", "You do not have access to this property", http.StatusForbidden)
}

// --- videos ---

func VideoNotFound() *AppError {
	return New(CodeNotFound, "video", "Video not found", http.StatusNotFound)
}

func VideoNotDescribed() *AppError {
	return New(CodeInvalidStatus, "video", "Video has not been described yet", http.StatusConflict)
}

// --- templates ---

func TemplateNotFound() *AppError {
	return New(CodeNotFound, "template", "Template not found", http.StatusNotFound)
}

func TemplateHasNoClips() *AppError {
	return New(CodeInvalidOperation, "template", "Template has no clips configured", http.StatusUnprocessableEntity)
}

// --- matching / timelines ---

func TimelineNotFound() *AppError {
	return New(CodeNotFound, "matching", "Timeline not found", http.StatusNotFound)
}

// InsufficientContentLibrary is the user-visible failure when a matching
// run is requested with zero described videos in the property's library.
func InsufficientContentLibrary() *AppError {
	return New(CodeInsufficientContent, "matching",
		"Insufficient content library: upload and describe videos before generating a timeline",
		http.StatusUnprocessableEntity)
}
