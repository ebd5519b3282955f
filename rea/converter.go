package rea

import (
	"sync"

	"rea_ingest/models"
)

// Options configures the batch converter. Fragments are pure, independent
// computations, so the fan-out degree is the caller's choice.
type Options struct {
	// Workers is the number of concurrent fragment converters. Values
	// below 1 mean sequential conversion.
	Workers int
}

// Skip records a fragment the converter produced no listing for, and why.
// Logging skips is the caller's concern.
type Skip struct {
	Index  int
	Reason error
}

// Result is the unordered outcome of converting one document.
type Result struct {
	Listings []models.Listing
	Skipped  []Skip
}

// Convert splits a document and converts every fragment sequentially.
func Convert(data []byte) (*Result, error) {
	return ConvertWithOptions(data, Options{})
}

// ConvertWithOptions fans fragments out to opts.Workers goroutines and
// collects the results. A fragment that fails - unsupported country,
// invalid yes/no text, unparseable fragment XML - is recorded as a skip;
// only document-level failures abort the batch.
func ConvertWithOptions(data []byte, opts Options) (*Result, error) {
	fragments, err := SplitDocument(data)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	if len(fragments) == 0 {
		return result, nil
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(fragments) {
		workers = len(fragments)
	}

	type job struct {
		index    int
		fragment string
	}

	jobs := make(chan job)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				listing, err := ConvertFragment([]byte(j.fragment))

				mu.Lock()
				switch {
				case err != nil:
					result.Skipped = append(result.Skipped, Skip{Index: j.index, Reason: err})
				case listing == nil:
					result.Skipped = append(result.Skipped, Skip{Index: j.index, Reason: ErrUnrecognizedCategory})
				default:
					result.Listings = append(result.Listings, listing)
				}
				mu.Unlock()
			}
		}()
	}

	for i, fragment := range fragments {
		jobs <- job{index: i, fragment: fragment}
	}
	close(jobs)
	wg.Wait()

	return result, nil
}

// ConvertFragment classifies one fragment and extracts a listing from it.
// Fragments whose category this converter does not implement yield
// (nil, nil); the caller decides whether that is worth logging.
func ConvertFragment(data []byte) (models.Listing, error) {
	if isBlank(data) {
		return nil, ErrEmptyDocument
	}

	root, err := parseFragment(data)
	if err != nil {
		return nil, &MalformedDocumentError{Err: err}
	}

	listing := newListing(models.ParseCategoryType(root.XMLName.Local))
	if listing == nil {
		return nil, nil
	}

	if err := extractCommon(listing, root); err != nil {
		return nil, err
	}

	switch l := listing.(type) {
	case *models.ResidentialListing:
		if err := extractResidential(l, root); err != nil {
			return nil, err
		}
	case *models.RentalListing:
		if err := extractRental(l, root); err != nil {
			return nil, err
		}
	}

	return listing, nil
}

// newListing instantiates the listing variant for a category. Categories
// the converter does not implement yield nil.
func newListing(category models.CategoryType) models.Listing {
	switch category {
	case models.CategorySale:
		return &models.ResidentialListing{}
	case models.CategoryRent:
		return &models.RentalListing{}
	}
	return nil
}
