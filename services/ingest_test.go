package services

import (
	"context"
	"testing"

	"rea_ingest/models"
)

// memStore is an in-memory Store for exercising the ingest pipeline.
type memStore struct {
	listings map[string]*models.StoredListing
	runs     map[string]*models.IngestRun
	logs     []*models.IngestLog
}

func newMemStore() *memStore {
	return &memStore{
		listings: map[string]*models.StoredListing{},
		runs:     map[string]*models.IngestRun{},
	}
}

func key(variant, listingID string) string { return variant + "/" + listingID }

func (m *memStore) GetListing(_ context.Context, variant, listingID string) (*models.StoredListing, error) {
	rec, ok := m.listings[key(variant, listingID)]
	if !ok {
		return nil, nil
	}
	copied := *rec
	return &copied, nil
}

func (m *memStore) UpsertListing(_ context.Context, rec *models.StoredListing) error {
	copied := *rec
	copied.TimesIngested++
	m.listings[key(rec.Variant, rec.ListingID)] = &copied
	return nil
}

func (m *memStore) CreateRun(_ context.Context, run *models.IngestRun) error {
	m.runs[run.ID.String()] = run
	return nil
}

func (m *memStore) UpdateRun(_ context.Context, run *models.IngestRun) error {
	m.runs[run.ID.String()] = run
	return nil
}

func (m *memStore) Log(_ context.Context, entry *models.IngestLog) error {
	m.logs = append(m.logs, entry)
	return nil
}

func (m *memStore) Close() error { return nil }

const rentalWithBond = `<propertyList>
  <rental modTime="2009-07-01-12:30:00" status="current">
    <agentID>XNWXNW</agentID>
    <uniqueID>Rental-Current-ABCD1234</uniqueID>
    <bond>999</bond>
    <rent period="week">500</rent>
  </rental>
</propertyList>`

const rentalWithoutBond = `<propertyList>
  <rental modTime="2009-08-01-12:30:00" status="current">
    <agentID>XNWXNW</agentID>
    <uniqueID>Rental-Current-ABCD1234</uniqueID>
    <rent period="week">520</rent>
  </rental>
</propertyList>`

func TestProcessDocument_NewListing(t *testing.T) {
	store := newMemStore()
	svc := NewIngestService(store, 2)

	run, err := svc.ProcessDocument(context.Background(), []byte(rentalWithBond), "feed-1", "rental.xml")
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if run.Status != models.RunStatusCompleted {
		t.Fatalf("expected completed run, got %s", run.Status)
	}
	if run.FragmentsFound != 1 || run.ListingsNew != 1 || run.ListingsMerged != 0 {
		t.Fatalf("unexpected run stats: %+v", run)
	}

	rec, err := store.GetListing(context.Background(), models.VariantRental, "Rental-Current-ABCD1234")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if rec == nil {
		t.Fatalf("expected stored listing")
	}
	if rec.AgencyID != "XNWXNW" || rec.Status != string(models.StatusCurrent) {
		t.Fatalf("unexpected record metadata: %+v", rec)
	}
}

func TestProcessDocument_MergePreservesUnmentionedFields(t *testing.T) {
	store := newMemStore()
	svc := NewIngestService(store, 1)
	ctx := context.Background()

	if _, err := svc.ProcessDocument(ctx, []byte(rentalWithBond), "feed-1", "day1.xml"); err != nil {
		t.Fatalf("first process failed: %v", err)
	}
	run, err := svc.ProcessDocument(ctx, []byte(rentalWithoutBond), "feed-1", "day2.xml")
	if err != nil {
		t.Fatalf("second process failed: %v", err)
	}
	if run.ListingsMerged != 1 || run.ListingsNew != 0 {
		t.Fatalf("expected one merge, got %+v", run)
	}

	rec, err := store.GetListing(ctx, models.VariantRental, "Rental-Current-ABCD1234")
	if err != nil || rec == nil {
		t.Fatalf("get failed: %v, %v", rec, err)
	}
	listing, err := models.UnmarshalListing(rec.Payload)
	if err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	rental := listing.(*models.RentalListing)

	if rental.Pricing.RentalPrice.Value() != 520 {
		t.Fatalf("expected updated rent, got %v", rental.Pricing.RentalPrice.Value())
	}
	// The second document never mentioned the bond, so the stored bond
	// survives the merge.
	if rental.Pricing.Bond.Value() != 999 {
		t.Fatalf("expected stored bond preserved, got %v", rental.Pricing.Bond.Value())
	}
}

func TestProcessDocument_SkipsAreCounted(t *testing.T) {
	store := newMemStore()
	svc := NewIngestService(store, 1)

	doc := `<propertyList>
  <residential modTime="20090701" status="current">
    <uniqueID>Residential-Germany-0001</uniqueID>
    <address><country>Germany</country></address>
  </residential>
</propertyList>`

	run, err := svc.ProcessDocument(context.Background(), []byte(doc), "feed-1", "bad.xml")
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if run.FragmentsSkipped != 1 || run.ListingsNew != 0 {
		t.Fatalf("unexpected run stats: %+v", run)
	}
	if run.Status != models.RunStatusCompleted {
		t.Fatalf("skips must not fail the run, got %s", run.Status)
	}
}

func TestProcessDocument_MalformedDocumentFailsRun(t *testing.T) {
	store := newMemStore()
	svc := NewIngestService(store, 1)

	run, err := svc.ProcessDocument(context.Background(), []byte("<propertyList><rental>"), "feed-1", "broken.xml")
	if err == nil {
		t.Fatalf("expected an error for a malformed document")
	}
	if run.Status != models.RunStatusFailed {
		t.Fatalf("expected failed run, got %s", run.Status)
	}
}
