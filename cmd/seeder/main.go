package main

import (
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
)

type listing struct {
	ID           uint64
	Title        string
	Location     string
	Price        int64
	Bedrooms     int
	PropertyType string
	Amenities    []string
	ImageURL     string
	Description  string
}

var listings = []listing{
	{
		ID:           1,
		Title:        "Modern Apartment in Goa",
		Location:     "Goa, India",
		Price:        4_500_000,
		Bedrooms:     2,
		PropertyType: "apartment",
		Amenities:    []string{"Swimming Pool", "Parking", "Security"},
		ImageURL:     "https://images.example.com/listings/1.jpg",
		Description:  "Bright two bedroom apartment a short walk from Baga beach.",
	},
	{
		ID:           2,
		Title:        "Luxury Villa with Private Pool",
		Location:     "Goa, India",
		Price:        12_000_000,
		Bedrooms:     4,
		PropertyType: "villa",
		Amenities:    []string{"Swimming Pool", "Garden", "Parking", "Power Backup"},
		ImageURL:     "https://images.example.com/listings/2.jpg",
		Description:  "Four bedroom villa in a gated community with a private pool and landscaped garden.",
	},
	{
		ID:           3,
		Title:        "Compact Studio near Metro",
		Location:     "Mumbai - Andheri, India",
		Price:        3_000_000,
		Bedrooms:     1,
		PropertyType: "studio",
		Amenities:    []string{"Gym", "Lift", "Security"},
		ImageURL:     "https://images.example.com/listings/3.jpg",
		Description:  "Fully furnished studio five minutes from Andheri metro station.",
	},
	{
		ID:           4,
		Title:        "Sea Facing Condo in Bandra",
		Location:     "Mumbai - Bandra, India",
		Price:        25_000_000,
		Bedrooms:     3,
		PropertyType: "condo",
		Amenities:    []string{"Sea View", "Gym", "Clubhouse", "Parking"},
		ImageURL:     "https://images.example.com/listings/4.jpg",
		Description:  "Three bedroom condo with an unobstructed view of the Arabian Sea.",
	},
	{
		ID:           5,
		Title:        "Garden Apartment in Whitefield",
		Location:     "Bangalore - Whitefield, India",
		Price:        7_500_000,
		Bedrooms:     3,
		PropertyType: "apartment",
		Amenities:    []string{"Garden", "Children's Play Area", "Parking"},
		ImageURL:     "https://images.example.com/listings/5.jpg",
		Description:  "Ground floor apartment with a private garden in a quiet Whitefield society.",
	},
	{
		ID:           6,
		Title:        "Budget Studio in Koramangala",
		Location:     "Bangalore - Koramangala, India",
		Price:        2_800_000,
		Bedrooms:     1,
		PropertyType: "studio",
		Amenities:    []string{"Lift", "Security"},
		ImageURL:     "https://images.example.com/listings/6.jpg",
		Description:  "Affordable studio in the heart of Koramangala, ideal for young professionals.",
	},
	{
		ID:           7,
		Title:        "Heritage Villa in Fort Kochi",
		Location:     "Kochi, India",
		Price:        9_000_000,
		Bedrooms:     3,
		PropertyType: "villa",
		Amenities:    []string{"Garden", "Parking", "Servant Quarters"},
		ImageURL:     "https://images.example.com/listings/7.jpg",
		Description:  "Restored colonial era villa on a tree lined street in Fort Kochi.",
	},
	{
		ID:           8,
		Title:        "Riverside Apartment in Pune",
		Location:     "Pune, India",
		Price:        5_500_000,
		Bedrooms:     2,
		PropertyType: "apartment",
		Amenities:    []string{"River View", "Gym", "Parking"},
		ImageURL:     "https://images.example.com/listings/8.jpg",
		Description:  "Two bedroom apartment overlooking the Mula river with a modern clubhouse.",
	},
	{
		ID:           9,
		Title:        "Penthouse Condo in Gurgaon",
		Location:     "Gurgaon, India",
		Price:        32_000_000,
		Bedrooms:     4,
		PropertyType: "condo",
		Amenities:    []string{"Terrace", "Gym", "Swimming Pool", "Concierge"},
		ImageURL:     "https://images.example.com/listings/9.jpg",
		Description:  "Top floor penthouse with a wraparound terrace on Golf Course Road.",
	},
	{
		ID:           10,
		Title:        "Hillside Villa in Lonavala",
		Location:     "Lonavala, India",
		Price:        15_000_000,
		Bedrooms:     5,
		PropertyType: "villa",
		Amenities:    []string{"Swimming Pool", "Garden", "Barbecue Area", "Parking"},
		ImageURL:     "https://images.example.com/listings/10.jpg",
		Description:  "Five bedroom weekend villa with valley views and a heated pool.",
	},
	{
		ID:           11,
		Title:        "Starter Apartment in Noida",
		Location:     "Noida, India",
		Price:        3_600_000,
		Bedrooms:     2,
		PropertyType: "apartment",
		Amenities:    []string{"Lift", "Parking", "Security"},
		ImageURL:     "https://images.example.com/listings/11.jpg",
		Description:  "Compact two bedroom flat near sector 62 with good metro connectivity.",
	},
	{
		ID:           12,
		Title:        "Beach Studio in Varkala",
		Location:     "Varkala, India",
		Price:        2_200_000,
		Bedrooms:     1,
		PropertyType: "studio",
		Amenities:    []string{"Sea View", "Balcony"},
		ImageURL:     "https://images.example.com/listings/12.jpg",
		Description:  "Cliff top studio a few steps from Varkala beach, sold furnished.",
	},
}

var outDir = flag.String("out", "./catalog", "directory to write the feed files into")

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

type basicsRecord struct {
	ID       uint64 `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	Price    int64  `json:"price"`
}

type characteristicsRecord struct {
	ID           uint64   `json:"id"`
	Bedrooms     int      `json:"bedrooms"`
	PropertyType string   `json:"property_type"`
	Amenities    []string `json:"amenities"`
	Description  string   `json:"description,omitempty"`
}

type imagesRecord struct {
	ID       uint64 `json:"id"`
	ImageURL string `json:"image_url"`
}

func writeFeed(path string, records any) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func main() {
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		panic(err)
	}

	basics := make([]basicsRecord, 0, len(listings))
	characteristics := make([]characteristicsRecord, 0, len(listings))
	images := make([]imagesRecord, 0, len(listings))

	for _, l := range listings {
		basics = append(basics, basicsRecord{
			ID:       l.ID,
			Title:    l.Title,
			Location: l.Location,
			Price:    l.Price,
		})
		characteristics = append(characteristics, characteristicsRecord{
			ID:           l.ID,
			Bedrooms:     l.Bedrooms,
			PropertyType: l.PropertyType,
			Amenities:    l.Amenities,
			Description:  l.Description,
		})
		images = append(images, imagesRecord{
			ID:       l.ID,
			ImageURL: l.ImageURL,
		})
	}

	feeds := map[string]any{
		"basics.json":          basics,
		"characteristics.json": characteristics,
		"images.json":          images,
	}

	for name, records := range feeds {
		path := filepath.Join(*outDir, name)
		if err := writeFeed(path, records); err != nil {
			panic(err)
		}
		slog.Info("wrote feed", "path", path)
	}

	slog.Info("seed catalog written", "listings", len(listings), "dir", *outDir)
}
