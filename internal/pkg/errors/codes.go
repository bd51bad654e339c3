package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrInvalidProvider = New(
		"INVALID_PROVIDER",
		"Unknown news provider",
		http.StatusBadRequest,
	)

	ErrStoreUnavailable = New(
		"STORE_UNAVAILABLE",
		"Document store operation failed",
		http.StatusInternalServerError,
	)

	ErrTranslationFailed = New(
		"TRANSLATION_FAILED",
		"Query translation failed",
		http.StatusBadGateway,
	)

	ErrProviderFetchFailed = New(
		"PROVIDER_FETCH_FAILED",
		"News provider fetch failed",
		http.StatusBadGateway,
	)

	ErrArticleFetchFailed = New(
		"ARTICLE_FETCH_FAILED",
		"Article extraction failed",
		http.StatusBadGateway,
	)

	ErrDocumentNotFound = New(
		"DOCUMENT_NOT_FOUND",
		"Document not found",
		http.StatusNotFound,
	)

	ErrDocumentExists = New(
		"DOCUMENT_EXISTS",
		"Document with this ID already exists",
		http.StatusConflict,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
