package Gateway

import "MedicalSuite/Models"

// Place mirrors one record of the gateway's nearby-search response.
type Place struct {
	ID          string `json:"id"`
	DisplayName struct {
		Text string `json:"text"`
	} `json:"displayName"`
	Name                  string `json:"name"`
	ShortFormattedAddress string `json:"shortFormattedAddress"`
	FormattedAddress      string `json:"formattedAddress"`
	Location              *struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	} `json:"location"`
	Rating             float64       `json:"rating"`
	Reviews            []PlaceReview `json:"reviews"`
	Types              []string      `json:"types"`
	BusinessStatus     string        `json:"businessStatus"`
	PrimaryType        string        `json:"primaryType"`
	PrimaryTypeDisplay *struct {
		Text string `json:"text"`
	} `json:"primaryTypeDisplayName"`
	NationalPhoneNumber string        `json:"nationalPhoneNumber"`
	WebsiteURI          string        `json:"websiteUri"`
	GoogleMapsURI       string        `json:"googleMapsUri"`
	CurrentOpeningHours *OpeningHours `json:"currentOpeningHours"`
	RegularOpeningHours *OpeningHours `json:"regularOpeningHours"`
}

type OpeningHours struct {
	OpenNow             *bool    `json:"openNow"`
	WeekdayDescriptions []string `json:"weekdayDescriptions"`
}

type PlaceReview struct {
	AuthorAttribution *struct {
		DisplayName string `json:"displayName"`
	} `json:"authorAttribution"`
	Rating float64 `json:"rating"`
	Text   *struct {
		Text string `json:"text"`
	} `json:"text"`
	RelativePublishTimeDescription string `json:"relativePublishTimeDescription"`
}

// ToListing maps a search record into a provider listing. Distance is filled
// by the ranking pipeline afterwards; until then the listing carries the
// sentinel so the comparator never sees an absent value.
func (p Place) ToListing() Models.ProviderListing {
	listing := Models.ProviderListing{
		ID:             p.ID,
		Name:           p.DisplayName.Text,
		Address:        p.ShortFormattedAddress,
		Rating:         p.Rating,
		BusinessStatus: p.BusinessStatus,
		PrimaryType:    p.PrimaryType,
		Phone:          p.NationalPhoneNumber,
		Website:        p.WebsiteURI,
		MapsURI:        p.GoogleMapsURI,
		Reviews:        []Models.Review{},
		DistanceKm:     Models.SentinelDistance,
	}
	if listing.Name == "" {
		listing.Name = p.Name
	}
	if listing.Address == "" {
		listing.Address = p.FormattedAddress
	}
	if p.PrimaryTypeDisplay != nil && p.PrimaryTypeDisplay.Text != "" {
		listing.PrimaryType = p.PrimaryTypeDisplay.Text
	}

	if p.Location != nil && p.Location.Latitude != nil && p.Location.Longitude != nil {
		listing.Location = &Models.Coordinates{Lat: *p.Location.Latitude, Lng: *p.Location.Longitude}
	}

	for _, review := range p.Reviews {
		r := Models.Review{
			Rating:              int(review.Rating),
			RelativePublishTime: review.RelativePublishTimeDescription,
		}
		if review.AuthorAttribution != nil {
			r.Author = review.AuthorAttribution.DisplayName
		}
		if review.Text != nil {
			r.Text = review.Text.Text
		}
		listing.Reviews = append(listing.Reviews, r)
	}
	listing.ReviewCount = len(listing.Reviews)

	hours := p.CurrentOpeningHours
	if hours == nil {
		hours = p.RegularOpeningHours
	}
	if hours != nil {
		listing.OpenNow = hours.OpenNow
		listing.OpeningHours = hours.WeekdayDescriptions
	}
	return listing
}
