package Models

import (
	"math"
	"sort"
	"strings"
	"time"
)

// GeoPosition is a single-shot location fix. It is superseded wholesale on
// refresh and never persisted.
type GeoPosition struct {
	Lat            float64   `json:"lat"`
	Lng            float64   `json:"lng"`
	AccuracyMeters float64   `json:"accuracy"`
	CapturedAt     time.Time `json:"timestamp"`
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Review struct {
	Author              string `json:"author"`
	Rating              int    `json:"rating"`
	Text                string `json:"text"`
	RelativePublishTime string `json:"relativePublishTime"`
}

// ProviderListing is one doctor result, built fresh from each search
// response. The list is replaced, never merged, on each search.
type ProviderListing struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Address        string       `json:"address"`
	Location       *Coordinates `json:"location"`
	Rating         float64      `json:"rating"`
	ReviewCount    int          `json:"reviewCount"`
	Reviews        []Review     `json:"reviews"`
	OpenNow        *bool        `json:"openNow,omitempty"`
	BusinessStatus string       `json:"businessStatus"`
	PrimaryType    string       `json:"primaryType"`
	Phone          string       `json:"phone"`
	Website        string       `json:"website"`
	MapsURI        string       `json:"googleMapsUri"`
	OpeningHours   []string     `json:"openingHours"`
	DistanceKm     float64      `json:"distance"`
}

// SentinelDistance is assigned to listings without coordinates so that they
// always sort last under the distance ordering.
const SentinelDistance = math.MaxFloat64

// Distance computes the great-circle distance in kilometers between two
// points, rounded to one decimal place.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371

	dLat := deg2rad(lat2 - lat1)
	dLng := deg2rad(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	d := earthRadiusKm * c
	return math.Round(d*10) / 10
}

func deg2rad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// AttachDistances fills DistanceKm for every listing relative to the
// requester's position. Listings without coordinates get the sentinel.
func AttachDistances(listings []ProviderListing, origin GeoPosition) {
	for i := range listings {
		if listings[i].Location == nil {
			listings[i].DistanceKm = SentinelDistance
			continue
		}
		listings[i].DistanceKm = Distance(origin.Lat, origin.Lng,
			listings[i].Location.Lat, listings[i].Location.Lng)
	}
}

// FilterListings keeps listings whose name, address or primary type contains
// the query, case-insensitively. An empty query keeps everything.
func FilterListings(listings []ProviderListing, query string) []ProviderListing {
	if query == "" {
		return listings
	}
	q := strings.ToLower(query)
	filtered := make([]ProviderListing, 0, len(listings))
	for _, listing := range listings {
		if strings.Contains(strings.ToLower(listing.Name), q) ||
			strings.Contains(strings.ToLower(listing.Address), q) ||
			strings.Contains(strings.ToLower(listing.PrimaryType), q) {
			filtered = append(filtered, listing)
		}
	}
	return filtered
}

type SortKey string

const (
	SortByDistance SortKey = "distance"
	SortByRating   SortKey = "rating"
	SortByReviews  SortKey = "reviews"
)

func ParseSortKey(value string) SortKey {
	switch SortKey(value) {
	case SortByRating:
		return SortByRating
	case SortByReviews:
		return SortByReviews
	default:
		return SortByDistance
	}
}

// SortListings orders listings in place by the active key. The sort is stable
// so full ties keep the original response order.
func SortListings(listings []ProviderListing, key SortKey) {
	switch key {
	case SortByRating:
		// Highest rating first, review count breaks ties.
		sort.SliceStable(listings, func(i, j int) bool {
			if listings[i].Rating != listings[j].Rating {
				return listings[i].Rating > listings[j].Rating
			}
			return listings[i].ReviewCount > listings[j].ReviewCount
		})
	case SortByReviews:
		// Most reviewed first, rating breaks ties.
		sort.SliceStable(listings, func(i, j int) bool {
			if listings[i].ReviewCount != listings[j].ReviewCount {
				return listings[i].ReviewCount > listings[j].ReviewCount
			}
			return listings[i].Rating > listings[j].Rating
		})
	default:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].DistanceKm < listings[j].DistanceKm
		})
	}
}
