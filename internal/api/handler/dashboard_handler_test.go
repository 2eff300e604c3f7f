package handler_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"investment-dashboard/internal/api"
	"investment-dashboard/internal/api/handler"
	"investment-dashboard/internal/ckan"
	"investment-dashboard/internal/model"
	"investment-dashboard/internal/pipeline"
	"investment-dashboard/pkg/router"
)

const fullPayload = `{"result":{"records":[
	{"ANO":"2019","REGION":"Maule","PROVINCIA":"Talca","SERVICIO":"Salud","INVERSION (MILES DE $ DE CADA ANO)":"100"},
	{"ANO":"2020","REGION":"Maule","PROVINCIA":"Curico","SERVICIO":"Obras","INVERSION (MILES DE $ DE CADA ANO)":"200"},
	{"ANO":"2020","REGION":"Biobio","PROVINCIA":"Concepcion","SERVICIO":"Salud","INVERSION (MILES DE $ DE CADA ANO)":"50"}
]}}`

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestRouter wires the full route table against a fake datastore.
func newTestRouter(t *testing.T, payload string, status int) *router.Router {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			http.Error(w, "upstream failure", status)
			return
		}
		fmt.Fprint(w, payload)
	}))
	t.Cleanup(srv.Close)

	log := testLogger()
	client := ckan.NewClient(srv.Client(), log)
	loader := pipeline.NewLoader(client, srv.URL, "res-test", log)

	r := router.New(log)
	api.RegisterRoutes(r, handler.NewDashboardHandler(loader, log))
	return r
}

func doGet(t *testing.T, r *router.Router, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]interface{}
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec, body
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t, fullPayload, http.StatusOK)
	rec, body := doGet(t, r, "/api/v1/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestGetSummary(t *testing.T) {
	r := newTestRouter(t, fullPayload, http.StatusOK)
	rec, _ := doGet(t, r, "/api/v1/investments/summary")
	require.Equal(t, http.StatusOK, rec.Code)

	var summary model.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 3, summary.RecordCount)
	assert.Equal(t, 350.0, summary.TotalAmount)
	assert.Equal(t, 2019, summary.YearMin)
	assert.Equal(t, 2020, summary.YearMax)
}

func TestGetAnnualSeries(t *testing.T) {
	r := newTestRouter(t, fullPayload, http.StatusOK)
	rec, body := doGet(t, r, "/api/v1/investments/series/annual")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 2, body["count"])
}

func TestGetBreakdown(t *testing.T) {
	r := newTestRouter(t, fullPayload, http.StatusOK)
	rec, body := doGet(t, r, "/api/v1/investments/breakdown/region")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "region", body["dimension"])
	assert.EqualValues(t, 2, body["count"])

	rows := body["rows"].([]interface{})
	first := rows[0].(map[string]interface{})
	assert.Equal(t, "Maule", first["value"], "largest group first")
	assert.Equal(t, 300.0, first["total"])
}

func TestGetBreakdownUnknownDimension(t *testing.T) {
	r := newTestRouter(t, fullPayload, http.StatusOK)
	rec, body := doGet(t, r, "/api/v1/investments/breakdown/color")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "unknown dimension")
}

func TestGetScatter(t *testing.T) {
	r := newTestRouter(t, fullPayload, http.StatusOK)
	rec, body := doGet(t, r, "/api/v1/investments/scatter")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 3, body["count"])
}

func TestGetRecordsRaw(t *testing.T) {
	r := newTestRouter(t, fullPayload, http.StatusOK)
	rec, body := doGet(t, r, "/api/v1/investments/records")

	assert.Equal(t, http.StatusOK, rec.Code)
	records := body["records"].([]interface{})
	require.Len(t, records, 3)

	first := records[0].(map[string]interface{})
	assert.Equal(t, "2019", first[model.FieldYear], "raw records keep source values untouched")
}

func TestUpstreamFailureIsBadGateway(t *testing.T) {
	r := newTestRouter(t, "", http.StatusInternalServerError)
	rec, body := doGet(t, r, "/api/v1/investments/summary")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "could not acquire data", body["error"])
	assert.NotEmpty(t, body["cause"])
}

func TestEmptyResultIsWarningNotError(t *testing.T) {
	r := newTestRouter(t, `{"result":{"records":[]}}`, http.StatusOK)
	rec, body := doGet(t, r, "/api/v1/investments/records")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "the dataset returned no records", body["warning"])
	assert.EqualValues(t, 0, body["count"])
	assert.Nil(t, body["error"])
}

func TestShapeFailureIsDistinctFromEmpty(t *testing.T) {
	r := newTestRouter(t, `{"foo":1}`, http.StatusOK)
	rec, body := doGet(t, r, "/api/v1/investments/records")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "unexpected response structure", body["error"])
}
