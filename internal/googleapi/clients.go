// Package googleapi wires every endpoint binding to one shared transport.
// Build a Clients once at startup and pass it (or its groups) to the code
// that needs it.
package googleapi

import (
	"googleapi-client/internal/engine"
	"googleapi-client/internal/maps"
	"googleapi-client/internal/maps/geocode"
	"googleapi-client/internal/maps/roads"
	"googleapi-client/internal/places"
	"googleapi-client/internal/search"
	"googleapi-client/internal/translate"
)

// Clients holds one engine per endpoint, grouped like the upstream products.
type Clients struct {
	Maps      MapsClients
	Places    PlacesClients
	Search    SearchClients
	Translate TranslateClients

	apiKey  string
	closers []func() error
}

// APIKey returns the key configured through Options.APIKey or
// GOOGLEAPI_API_KEY, for filling the Key field of requests.
func (c *Clients) APIKey() string { return c.apiKey }

type MapsClients struct {
	NearestRoads *engine.Engine[*roads.NearestRoadsRequest, roads.NearestRoadsResponse]
	SnapToRoads  *engine.Engine[*roads.SnapToRoadsRequest, roads.SnapToRoadsResponse]
	SpeedLimits  *engine.Engine[*roads.SpeedLimitsRequest, roads.SpeedLimitsResponse]

	GeocodeAddress  *engine.Engine[*geocode.AddressRequest, geocode.Response]
	GeocodeLocation *engine.Engine[*geocode.LocationRequest, geocode.Response]
	GeocodePlace    *engine.Engine[*geocode.PlaceRequest, geocode.Response]
	GeocodePlusCode *engine.Engine[*geocode.PlusCodeRequest, geocode.PlusCodeResponse]

	Directions     *engine.Engine[*maps.DirectionsRequest, maps.DirectionsResponse]
	DistanceMatrix *engine.Engine[*maps.DistanceMatrixRequest, maps.DistanceMatrixResponse]
	Elevation      *engine.Engine[*maps.ElevationRequest, maps.ElevationResponse]
	TimeZone       *engine.Engine[*maps.TimeZoneRequest, maps.TimeZoneResponse]
	Geolocation    *engine.Engine[*maps.GeolocationRequest, maps.GeolocationResponse]
	StaticMaps     *engine.Engine[*maps.StaticMapsRequest, maps.StaticMapsResponse]
	StreetView     *engine.Engine[*maps.StreetViewRequest, maps.StreetViewResponse]
}

type PlacesClients struct {
	Details           *engine.Engine[*places.DetailsRequest, places.DetailsResponse]
	Photos            *engine.Engine[*places.PhotosRequest, places.PhotosResponse]
	AutoComplete      *engine.Engine[*places.AutocompleteRequest, places.AutocompleteResponse]
	QueryAutoComplete *engine.Engine[*places.QueryAutocompleteRequest, places.AutocompleteResponse]
	Find              *engine.Engine[*places.FindRequest, places.FindResponse]
	NearBySearch      *engine.Engine[*places.NearBySearchRequest, places.SearchResponse]
	TextSearch        *engine.Engine[*places.TextSearchRequest, places.SearchResponse]
}

type SearchClients struct {
	Web       *engine.Engine[*search.WebSearchRequest, search.Response]
	Image     *engine.Engine[*search.ImageSearchRequest, search.Response]
	Videos    *engine.Engine[*search.VideosRequest, search.VideoResponse]
	Channels  *engine.Engine[*search.ChannelsRequest, search.VideoResponse]
	Playlists *engine.Engine[*search.PlaylistsRequest, search.VideoResponse]
}

type TranslateClients struct {
	Translate *engine.Engine[*translate.TranslateRequest, translate.TranslateResponse]
	Detect    *engine.Engine[*translate.DetectRequest, translate.DetectResponse]
	Languages *engine.Engine[*translate.LanguagesRequest, translate.LanguagesResponse]
}

// Close releases the resources opened by NewFromConfig (Redis, Postgres).
func (c *Clients) Close() error {
	var first error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	c.closers = nil
	return first
}
