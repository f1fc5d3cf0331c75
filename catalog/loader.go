package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/rynalabs/ryna/core"
)

// record is the wire shape of one listing. The three feed files each carry a
// subset of these fields; records sharing an id are merged.
type record struct {
	Id          uint64   `json:"id"`
	Title       string   `json:"title"`
	Location    string   `json:"location"`
	Price       int64    `json:"price"`
	Bedrooms    *int     `json:"bedrooms"`
	Type        string   `json:"property_type"`
	Amenities   []string `json:"amenities"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
}

// Loader reads listing feeds from disk.
type Loader struct {
	logger *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithLoaderLogger sets a custom logger.
// Default is slog.Default().
func WithLoaderLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
	}
}

// NewLoader creates a new loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// LoadFile reads one self-contained JSON feed.
// Invalid listings are logged and skipped; a feed with no usable listings
// is an error.
func (l *Loader) LoadFile(path string) ([]core.Property, error) {
	records, err := readFeed(path)
	if err != nil {
		return nil, err
	}
	return l.build(records)
}

// LoadMerged reads the three-part listing feed and merges records by id:
// basics carry title, location and price; characteristics carry bedrooms,
// amenities and description; images carry the image URL. Characteristics or
// images without a matching basic record are ignored.
func (l *Loader) LoadMerged(basicsPath, characteristicsPath, imagesPath string) ([]core.Property, error) {
	basics, err := readFeed(basicsPath)
	if err != nil {
		return nil, err
	}
	characteristics, err := readFeed(characteristicsPath)
	if err != nil {
		return nil, err
	}
	images, err := readFeed(imagesPath)
	if err != nil {
		return nil, err
	}

	byId := func(records []record) map[uint64]record {
		m := make(map[uint64]record, len(records))
		for _, r := range records {
			m[r.Id] = r
		}
		return m
	}
	characteristicsById := byId(characteristics)
	imagesById := byId(images)

	for i := range basics {
		if c, ok := characteristicsById[basics[i].Id]; ok {
			basics[i].Bedrooms = c.Bedrooms
			basics[i].Type = c.Type
			basics[i].Amenities = c.Amenities
			basics[i].Description = c.Description
		}
		if img, ok := imagesById[basics[i].Id]; ok {
			basics[i].ImageURL = img.ImageURL
		}
	}

	return l.build(basics)
}

func readFeed(path string) ([]record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading feed %s: %w", path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing feed %s: %w", path, err)
	}
	return records, nil
}

// build converts records to validated properties. Records without an id get
// one derived from their content, so reloading the same feed yields the
// same ids.
func (l *Loader) build(records []record) ([]core.Property, error) {
	properties := make([]core.Property, 0, len(records))

	for _, r := range records {
		id := core.ID(r.Id)
		if id == 0 {
			id = core.IDFromContent(r.Title + "|" + r.Location)
		}

		p := core.Property{
			Id:           id,
			Title:        r.Title,
			Location:     r.Location,
			Price:        r.Price,
			Bedrooms:     r.Bedrooms,
			PropertyType: r.Type,
			Amenities:    r.Amenities,
			ImageURL:     r.ImageURL,
			Description:  r.Description,
		}

		if err := core.ValidateProperty(&p); err != nil {
			l.logger.Warn("skipping invalid listing", "title", r.Title, "err", err)
			continue
		}
		properties = append(properties, p)
	}

	if len(properties) == 0 {
		return nil, ErrNoListings
	}

	l.logger.Debug("loaded catalog", "listings", len(properties))
	return properties, nil
}
