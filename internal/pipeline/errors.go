package pipeline

import (
	"errors"
	"net/http"

	"investment-dashboard/internal/ckan"
	"investment-dashboard/internal/dataset"
)

// UserMessage maps a load failure to the user-visible state the rendering
// boundary must show. Every failure kind gets a distinct headline; "no data"
// is a warning with status 200, everything else a 502 from the upstream
// source. Unknown errors fall through as a plain 500.
func UserMessage(err error) (status int, headline, cause string) {
	var statusErr *ckan.StatusError
	var netErr *ckan.NetworkError
	var decodeErr *dataset.DecodeError

	switch {
	case errors.Is(err, dataset.ErrNoRecords):
		return http.StatusOK, "the dataset returned no records", ""
	case errors.As(err, &statusErr):
		return http.StatusBadGateway, "could not acquire data", statusErr.Error()
	case errors.As(err, &netErr):
		return http.StatusBadGateway, "could not acquire data", netErr.Error()
	case errors.As(err, &decodeErr):
		return http.StatusBadGateway, "unexpected response structure", decodeErr.Error()
	case errors.Is(err, dataset.ErrUnexpectedShape):
		return http.StatusBadGateway, "unexpected response structure", ""
	}
	return http.StatusInternalServerError, "internal error", err.Error()
}

// IsEmptyResult reports whether err is the empty-record-set condition, which
// renders as a warning rather than an error.
func IsEmptyResult(err error) bool {
	return errors.Is(err, dataset.ErrNoRecords)
}
