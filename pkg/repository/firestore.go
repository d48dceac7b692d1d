package repository

import (
	"context"
	"fmt"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/caredash/pkg/domain/interfaces"
	"github.com/secmon-lab/caredash/pkg/domain/model"
	"github.com/secmon-lab/caredash/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// DefaultFirestoreCollection is the collection holding one document per record
	DefaultFirestoreCollection = "records"

	// Field names
	fieldRegion         = "region"
	fieldLocalAuthority = "local_authority_name"
	fieldMeasure        = "measure"
	fieldFinancialYear  = "financial_year"
	fieldValue          = "value"
)

// Firestore loads the dataset from a Firestore collection
type Firestore struct {
	client     *firestore.Client
	collection string
	projectID  string
	databaseID string
}

var _ interfaces.DatasetSource = (*Firestore)(nil)

// NewFirestore creates a Firestore dataset source
func NewFirestore(ctx context.Context, projectID, databaseID, collection string) (*Firestore, error) {
	logger := ctxlog.From(ctx)

	if collection == "" {
		collection = DefaultFirestoreCollection
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	logger.Info("Firestore dataset source initialized",
		"projectID", projectID,
		"databaseID", databaseID,
		"collection", collection,
	)

	return &Firestore{
		client:     client,
		collection: collection,
		projectID:  projectID,
		databaseID: databaseID,
	}, nil
}

// Load reads every document of the collection once, in document ID order
func (f *Firestore) Load(ctx context.Context) (*model.Dataset, error) {
	iter := f.client.Collection(f.collection).Documents(ctx)
	defer iter.Stop()

	var records []model.Record
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
				return nil, goerr.Wrap(err, "failed to connect to firestore project",
					goerr.V("firestore error code", status.Code(err).String()),
					goerr.V("project", f.projectID),
				)
			}
			return nil, goerr.Wrap(err, "failed to iterate records",
				goerr.V("collection", f.collection),
			)
		}

		records = append(records, documentToRecord(doc.Data()))
	}

	source := fmt.Sprintf("firestore://%s/%s/%s", f.projectID, f.databaseID, f.collection)
	return newDataset(ctx, recordsToFrame(records), model.DefaultColumnMapping(), source)
}

// PutRecords writes records as documents with zero-padded sequential IDs so they load back in order
func (f *Firestore) PutRecords(ctx context.Context, records []model.Record) error {
	bw := f.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(records))
	for i, r := range records {
		docID := fmt.Sprintf("%08d", i)
		job, err := bw.Set(f.client.Collection(f.collection).Doc(docID), recordToDocument(r))
		if err != nil {
			bw.End()
			return goerr.Wrap(err, "failed to enqueue record", goerr.V("index", i))
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for i, job := range jobs {
		if _, err := job.Results(); err != nil {
			return goerr.Wrap(err, "failed to write record",
				goerr.V("index", i),
				goerr.V("collection", f.collection),
			)
		}
	}

	ctxlog.From(ctx).Info("Records written to firestore",
		"collection", f.collection,
		"count", len(records),
	)
	return nil
}

// Close closes the firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func recordToDocument(r model.Record) map[string]interface{} {
	return map[string]interface{}{
		fieldRegion:         r.Region.String(),
		fieldLocalAuthority: r.LocalAuthority.String(),
		fieldMeasure:        r.Measure.String(),
		fieldFinancialYear:  r.FinancialYear.String(),
		fieldValue:          r.Value,
	}
}

func documentToRecord(data map[string]interface{}) model.Record {
	return model.Record{
		Region:         types.Region(fieldString(data[fieldRegion])),
		LocalAuthority: types.LocalAuthority(fieldString(data[fieldLocalAuthority])),
		Measure:        types.Measure(fieldString(data[fieldMeasure])),
		FinancialYear:  types.FinancialYear(fieldString(data[fieldFinancialYear])),
		Value:          fieldString(data[fieldValue]),
	}
}

// fieldString renders a document field as the text a CSV cell would hold
func fieldString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
