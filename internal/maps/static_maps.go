package maps

import (
	"googleapi-client/internal/domain"
	"googleapi-client/internal/platform/apperr"
	"googleapi-client/internal/request"
	"net/url"
	"strings"
)

var staticMapsEndpoint = endpoint("/maps/api/staticmap")

type MapType string

const (
	MapTypeRoadmap   MapType = "roadmap"
	MapTypeSatellite MapType = "satellite"
	MapTypeTerrain   MapType = "terrain"
	MapTypeHybrid    MapType = "hybrid"
)

type ImageFormat string

const (
	ImageFormatPNG      ImageFormat = "png"
	ImageFormatPNG32    ImageFormat = "png32"
	ImageFormatGIF      ImageFormat = "gif"
	ImageFormatJPG      ImageFormat = "jpg"
	ImageFormatJPGPlain ImageFormat = "jpg-baseline"
)

// Markers is one "markers" parameter: a style shared by a set of locations.
// Style is pipe separated key:value pairs, e.g. "color:blue|label:S".
type Markers struct {
	Style     string
	Locations []domain.Location
}

func (m Markers) String() string {
	return joinNonEmpty("|", m.Style, domain.JoinLocations(m.Locations))
}

// Path is one "path" parameter. Style holds e.g. "color:0x0000ff|weight:5".
type Path struct {
	Style  string
	Points []domain.Location
}

func (p Path) String() string {
	return joinNonEmpty("|", p.Style, domain.JoinLocations(p.Points))
}

func stringsOf[T interface{ String() string }](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.String())
	}
	return out
}

// StaticMapsRequest renders a map image. Center and Zoom may be left out
// when Markers or Paths let the API fit the viewport itself.
type StaticMapsRequest struct {
	Key      string
	Center   *domain.Location
	Zoom     *int
	Size     domain.MapSize
	Scale    int
	Format   ImageFormat
	Type     MapType
	Language domain.Language
	Region   string
	Markers  []Markers
	Paths    []Path
	Visible  []domain.Location
	Styles   []string
}

func (r *StaticMapsRequest) fields() []request.Field {
	fitted := len(r.Markers) > 0 || len(r.Paths) > 0

	return []request.Field{
		request.KeyField(r.Key),
		{
			Name:  "center",
			Rules: []request.Rule{request.Check(fitted || !locationIsZero(r.Center), apperr.KindMissingField, "Center is required, unless Markers or Path is defined")},
			Value: locationString(r.Center),
		},
		{
			Name: "zoom",
			Rules: []request.Rule{
				request.Check(fitted || r.Zoom != nil, apperr.KindMissingField, "Zoom is required, unless Markers or Path is defined"),
				request.Check(r.Zoom == nil || (*r.Zoom >= 0 && *r.Zoom <= 21), apperr.KindOutOfRange, "Zoom must be between 0 and 21"),
			},
			Value: request.FormatIntPtr(r.Zoom),
		},
		{
			Name:  "size",
			Rules: []request.Rule{request.Check(!r.Size.IsZero(), apperr.KindMissingField, "Size is required")},
			Value: r.Size.String(),
		},
		{
			Name: "scale",
			Rules: []request.Rule{
				request.Check(r.Scale == 0 || r.Scale == 1 || r.Scale == 2 || r.Scale == 4, apperr.KindOutOfRange, "Scale must be 1, 2 or 4"),
			},
			Value: request.FormatPositive(r.Scale),
		},
		{Name: "format", Value: string(r.Format)},
		{Name: "maptype", Value: string(r.Type)},
		{Name: "language", Value: string(r.Language)},
		{Name: "region", Value: r.Region},
		{Name: "markers", Values: stringsOf(r.Markers)},
		{Name: "path", Values: stringsOf(r.Paths)},
		{Name: "visible", Value: domain.JoinLocations(r.Visible)},
		{Name: "style", Values: r.Styles},
	}
}

func (r *StaticMapsRequest) QueryParams() (*request.Params, error) {
	return request.Build(r.fields()...)
}

func (r *StaticMapsRequest) URI() (*url.URL, error) {
	return request.BuildURI(staticMapsEndpoint, r.fields()...)
}

type StaticMapsResponse struct {
	domain.Image
}

// IsImage reports whether the API answered with an image rather than an
// error page.
func (r *StaticMapsResponse) IsImage() bool {
	return strings.HasPrefix(r.ContentType, "image/")
}
