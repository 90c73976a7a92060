package maps

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
)

var geolocationEndpoint = request.Endpoint{BaseURL: "https://www.googleapis.com", Path: "/geolocation/v1/geolocate"}

// GeolocationRequest estimates a device position from cell towers and wifi
// access points. It is the one endpoint that POSTs a JSON body.
type GeolocationRequest struct {
	Key                   string
	HomeMobileCountryCode *int
	HomeMobileNetworkCode *int
	RadioType             string
	Carrier               string
	ConsiderIP            *bool
	CellTowers            []CellTower
	WifiAccessPoints      []WifiAccessPoint
}

type CellTower struct {
	CellID            int    `json:"cellId"`
	LocationAreaCode  int    `json:"locationAreaCode"`
	MobileCountryCode int    `json:"mobileCountryCode"`
	MobileNetworkCode int    `json:"mobileNetworkCode"`
	Age               int    `json:"age,omitempty"`
	SignalStrength    int    `json:"signalStrength,omitempty"`
	TimingAdvance     int    `json:"timingAdvance,omitempty"`
	RadioType         string `json:"radioType,omitempty"`
}

type WifiAccessPoint struct {
	MacAddress         string `json:"macAddress"`
	SignalStrength     int    `json:"signalStrength,omitempty"`
	Age                int    `json:"age,omitempty"`
	Channel            int    `json:"channel,omitempty"`
	SignalToNoiseRatio int    `json:"signalToNoiseRatio,omitempty"`
}

type geolocationBody struct {
	HomeMobileCountryCode *int              `json:"homeMobileCountryCode,omitempty"`
	HomeMobileNetworkCode *int              `json:"homeMobileNetworkCode,omitempty"`
	RadioType             string            `json:"radioType,omitempty"`
	Carrier               string            `json:"carrier,omitempty"`
	ConsiderIP            *bool             `json:"considerIp,omitempty"`
	CellTowers            []CellTower       `json:"cellTowers,omitempty"`
	WifiAccessPoints      []WifiAccessPoint `json:"wifiAccessPoints,omitempty"`
}

func (r *GeolocationRequest) fields() []request.Field {
	return []request.Field{
		request.KeyField(r.Key),
		{
			Rules: []request.Rule{
				request.Check(len(r.WifiAccessPoints) == 0 || len(r.WifiAccessPoints) >= 2, apperr.KindInvalidField, "WifiAccessPoints must contain at least 2 entries"),
			},
		},
	}
}

func (r *GeolocationRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *GeolocationRequest) URI() (*url.URL, error) {
	return request.BuildURI(geolocationEndpoint, r.fields()...)
}

// Body validates the request and returns the JSON payload.
func (r *GeolocationRequest) Body() (any, error) {
	if _, err := r.QueryParams(); err != nil {
		return nil, err
	}

	return geolocationBody{
		HomeMobileCountryCode: r.HomeMobileCountryCode,
		HomeMobileNetworkCode: r.HomeMobileNetworkCode,
		RadioType:             r.RadioType,
		Carrier:               r.Carrier,
		ConsiderIP:            r.ConsiderIP,
		CellTowers:            r.CellTowers,
		WifiAccessPoints:      r.WifiAccessPoints,
	}, nil
}

type GeolocationResponse struct {
	domain.APIError
	Location domain.Coordinate `json:"location"`
	Accuracy float64           `json:"accuracy"` // meters
}
