package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investment-dashboard/internal/ckan"
	"investment-dashboard/internal/dataset"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestLoader(t *testing.T, payload string, status int) *Loader {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			http.Error(w, "upstream failure", status)
			return
		}
		fmt.Fprint(w, payload)
	}))
	t.Cleanup(srv.Close)

	client := ckan.NewClient(srv.Client(), testLogger())
	return NewLoader(client, srv.URL, "res-test", testLogger())
}

func TestLoadSuccess(t *testing.T) {
	payload := `{"result":{"records":[
		{"ANO":"2019","REGION":"Maule","PROVINCIA":"Talca","SERVICIO":"Salud","INVERSION (MILES DE $ DE CADA ANO)":"100"},
		{"ANO":"2020","REGION":"Biobio","PROVINCIA":"Concepcion","SERVICIO":"Obras","INVERSION (MILES DE $ DE CADA ANO)":"bad"}
	]}}`

	loader := newTestLoader(t, payload, http.StatusOK)
	ds, err := loader.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, ds.Raw, 2, "raw records pass through unfiltered")
	assert.Len(t, ds.Records, 1, "uncoercible amount drops the row")
	assert.Equal(t, 1, ds.Dropped)
	assert.Equal(t, 2019, ds.Records[0].Year)
	assert.False(t, ds.FetchedAt.IsZero())
}

func TestLoadEmptyResult(t *testing.T) {
	loader := newTestLoader(t, `{"result":{"records":[]}}`, http.StatusOK)
	ds, err := loader.Load(context.Background())

	assert.Nil(t, ds, "no partial success on any failure")
	assert.ErrorIs(t, err, dataset.ErrNoRecords)
}

func TestLoadUpstreamStatusError(t *testing.T) {
	loader := newTestLoader(t, "", http.StatusBadGateway)
	ds, err := loader.Load(context.Background())

	assert.Nil(t, ds)
	assert.ErrorIs(t, err, ckan.ErrAcquire)
}

func TestLoadMalformedPayload(t *testing.T) {
	loader := newTestLoader(t, `{not json`, http.StatusOK)
	_, err := loader.Load(context.Background())

	var decodeErr *dataset.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name         string
		err          error
		wantStatus   int
		wantHeadline string
	}{
		{
			name:         "empty result is a warning, not an error",
			err:          dataset.ErrNoRecords,
			wantStatus:   http.StatusOK,
			wantHeadline: "the dataset returned no records",
		},
		{
			name:         "non-success status",
			err:          fmt.Errorf("%w: %w", ckan.ErrAcquire, &ckan.StatusError{URL: "u", StatusCode: 500}),
			wantStatus:   http.StatusBadGateway,
			wantHeadline: "could not acquire data",
		},
		{
			name:         "network failure",
			err:          fmt.Errorf("%w: %w", ckan.ErrAcquire, &ckan.NetworkError{URL: "u", Err: errors.New("refused")}),
			wantStatus:   http.StatusBadGateway,
			wantHeadline: "could not acquire data",
		},
		{
			name:         "malformed JSON",
			err:          &dataset.DecodeError{Err: errors.New("bad token")},
			wantStatus:   http.StatusBadGateway,
			wantHeadline: "unexpected response structure",
		},
		{
			name:         "wrong shape",
			err:          dataset.ErrUnexpectedShape,
			wantStatus:   http.StatusBadGateway,
			wantHeadline: "unexpected response structure",
		},
		{
			name:         "unknown failure",
			err:          errors.New("boom"),
			wantStatus:   http.StatusInternalServerError,
			wantHeadline: "internal error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, headline, _ := UserMessage(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantHeadline, headline)
		})
	}
}
