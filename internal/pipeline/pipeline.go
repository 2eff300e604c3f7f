package pipeline

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"investment-dashboard/internal/ckan"
	"investment-dashboard/internal/dataset"
	"investment-dashboard/internal/model"
)

// Dataset is the validated, normalized result set the dashboard serves from.
type Dataset struct {
	Raw       []model.RawRecord
	Records   []model.InvestmentRecord
	Dropped   int
	FetchedAt time.Time
}

// Loader runs the fetch → validate → normalize sequence against the fixed
// endpoint descriptor.
type Loader struct {
	client     *ckan.Client
	url        string
	resourceID string
	log        *logrus.Logger
}

func NewLoader(client *ckan.Client, url, resourceID string, log *logrus.Logger) *Loader {
	return &Loader{client: client, url: url, resourceID: resourceID, log: log}
}

// ResourceID identifies the datastore resource this loader is bound to.
func (l *Loader) ResourceID() string { return l.resourceID }

// Load blocks until the payload is acquired and validated. Any stage failure
// yields no records at all; callers map the error to a user-visible state
// instead of crashing.
func (l *Loader) Load(ctx context.Context) (*Dataset, error) {
	body, err := l.client.Fetch(ctx, l.url)
	if err != nil {
		return nil, err
	}

	raw, err := dataset.Validate(body)
	if err != nil {
		l.log.WithError(err).WithField("url", l.url).Warn("datastore payload rejected")
		return nil, err
	}

	records, dropped := dataset.Normalize(raw)
	if dropped > 0 {
		l.log.WithFields(logrus.Fields{
			"dropped": dropped,
			"kept":    len(records),
		}).Warn("records dropped during numeric coercion")
	}

	fetchedAt, ok := l.client.FetchedAt(l.url)
	if !ok {
		fetchedAt = time.Now().UTC()
	}

	l.log.WithFields(logrus.Fields{
		"resource_id": l.resourceID,
		"records":     len(records),
		"dropped":     dropped,
	}).Info("dataset loaded")

	return &Dataset{
		Raw:       raw,
		Records:   records,
		Dropped:   dropped,
		FetchedAt: fetchedAt,
	}, nil
}
