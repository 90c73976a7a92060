package googleapi

import (
	"context"
	"errors"
	"fmt"
	"googleapi-client/internal/adapters/quota"
	"googleapi-client/internal/adapters/usage"
	"googleapi-client/internal/config"
	"googleapi-client/internal/engine"
	"googleapi-client/internal/maps"
	"googleapi-client/internal/maps/geocode"
	"googleapi-client/internal/maps/roads"
	"googleapi-client/internal/places"
	"googleapi-client/internal/platform/db"
	"googleapi-client/internal/platform/httpclient"
	"googleapi-client/internal/platform/logger"
	"googleapi-client/internal/platform/metrics"
	"googleapi-client/internal/ports"
	"googleapi-client/internal/request"
	"googleapi-client/internal/search"
	"googleapi-client/internal/services"
	"googleapi-client/internal/translate"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

// Options configure the shared transport. The zero value is usable.
type Options struct {
	// HTTPClient is shared by every endpoint when set. Its transport gains the
	// Accept: application/json default and its own Timeout is kept; Timeout
	// applies only when the client has none. Without HTTPClient one is built
	// from NoHandler and Timeout.
	HTTPClient *http.Client
	NoHandler  bool
	Timeout    time.Duration

	// APIKey is the default key handed out by Clients.APIKey.
	APIKey string

	Logger      *logger.Logger
	MaxAttempts int
	Backoff     time.Duration

	// RatePerSecond caps calls across all endpoints together; 0 disables.
	RatePerSecond float64
	Burst         int

	// BaseURL redirects every endpoint, e.g. to a recording proxy.
	BaseURL string

	Observers []ports.CallObserver
	Quota     ports.QuotaGuard

	// Registerer enables Prometheus call metrics when set.
	Registerer prometheus.Registerer
}

func (o Options) engineOptions() ([]engine.Option, error) {
	var opts []engine.Option

	if o.Logger != nil {
		opts = append(opts, engine.WithLogger(o.Logger))
	}
	if o.MaxAttempts > 0 {
		opts = append(opts, engine.WithMaxAttempts(o.MaxAttempts))
	}
	if o.Backoff > 0 {
		opts = append(opts, engine.WithBackoff(o.Backoff))
	}
	if o.RatePerSecond > 0 {
		burst := max(o.Burst, 1)
		opts = append(opts, engine.WithRateLimit(rate.NewLimiter(rate.Limit(o.RatePerSecond), burst)))
	}
	if o.BaseURL != "" {
		opts = append(opts, engine.WithBaseURL(o.BaseURL))
	}
	if o.Registerer != nil {
		m, err := metrics.NewObserver(o.Registerer)
		if err != nil {
			return nil, err
		}
		opts = append(opts, engine.WithObserver(m))
	}
	for _, obs := range o.Observers {
		opts = append(opts, engine.WithObserver(obs))
	}
	if o.Quota != nil {
		opts = append(opts, engine.WithQuota(o.Quota))
	}

	return opts, nil
}

// builder records the first construction error so New can wire every
// endpoint without an if after each one.
type builder struct {
	client *http.Client
	opts   []engine.Option
	err    error
}

func add[Req request.Request, Resp any](b *builder, name string) *engine.Engine[Req, Resp] {
	if b.err != nil {
		return nil
	}

	e, err := engine.New[Req, Resp](name, b.client, b.opts...)
	if err != nil {
		b.err = err
		return nil
	}
	return e
}

// New builds every endpoint engine on one shared *http.Client.
func New(o Options) (*Clients, error) {
	client := o.HTTPClient
	if client == nil {
		client = httpclient.New(o.NoHandler, o.Timeout)
	} else {
		if client.Timeout == 0 && o.Timeout > 0 {
			client.Timeout = o.Timeout
		}
		if err := httpclient.ConfigureDefault(client); err != nil {
			return nil, err
		}
	}

	opts, err := o.engineOptions()
	if err != nil {
		return nil, fmt.Errorf("googleapi: %w", err)
	}
	b := &builder{client: client, opts: opts}

	c := &Clients{
		Maps: MapsClients{
			NearestRoads: add[*roads.NearestRoadsRequest, roads.NearestRoadsResponse](b, "roads.nearestRoads"),
			SnapToRoads:  add[*roads.SnapToRoadsRequest, roads.SnapToRoadsResponse](b, "roads.snapToRoads"),
			SpeedLimits:  add[*roads.SpeedLimitsRequest, roads.SpeedLimitsResponse](b, "roads.speedLimits"),

			GeocodeAddress:  add[*geocode.AddressRequest, geocode.Response](b, "geocode.address"),
			GeocodeLocation: add[*geocode.LocationRequest, geocode.Response](b, "geocode.location"),
			GeocodePlace:    add[*geocode.PlaceRequest, geocode.Response](b, "geocode.place"),
			GeocodePlusCode: add[*geocode.PlusCodeRequest, geocode.PlusCodeResponse](b, "geocode.plusCode"),

			Directions:     add[*maps.DirectionsRequest, maps.DirectionsResponse](b, "maps.directions"),
			DistanceMatrix: add[*maps.DistanceMatrixRequest, maps.DistanceMatrixResponse](b, "maps.distanceMatrix"),
			Elevation:      add[*maps.ElevationRequest, maps.ElevationResponse](b, "maps.elevation"),
			TimeZone:       add[*maps.TimeZoneRequest, maps.TimeZoneResponse](b, "maps.timeZone"),
			Geolocation:    add[*maps.GeolocationRequest, maps.GeolocationResponse](b, "maps.geolocation"),
			StaticMaps:     add[*maps.StaticMapsRequest, maps.StaticMapsResponse](b, "maps.staticMaps"),
			StreetView:     add[*maps.StreetViewRequest, maps.StreetViewResponse](b, "maps.streetView"),
		},
		Places: PlacesClients{
			Details:           add[*places.DetailsRequest, places.DetailsResponse](b, "places.details"),
			Photos:            add[*places.PhotosRequest, places.PhotosResponse](b, "places.photos"),
			AutoComplete:      add[*places.AutocompleteRequest, places.AutocompleteResponse](b, "places.autoComplete"),
			QueryAutoComplete: add[*places.QueryAutocompleteRequest, places.AutocompleteResponse](b, "places.queryAutoComplete"),
			Find:              add[*places.FindRequest, places.FindResponse](b, "places.find"),
			NearBySearch:      add[*places.NearBySearchRequest, places.SearchResponse](b, "places.nearBySearch"),
			TextSearch:        add[*places.TextSearchRequest, places.SearchResponse](b, "places.textSearch"),
		},
		Search: SearchClients{
			Web:       add[*search.WebSearchRequest, search.Response](b, "search.web"),
			Image:     add[*search.ImageSearchRequest, search.Response](b, "search.image"),
			Videos:    add[*search.VideosRequest, search.VideoResponse](b, "search.videos"),
			Channels:  add[*search.ChannelsRequest, search.VideoResponse](b, "search.channels"),
			Playlists: add[*search.PlaylistsRequest, search.VideoResponse](b, "search.playlists"),
		},
		Translate: TranslateClients{
			Translate: add[*translate.TranslateRequest, translate.TranslateResponse](b, "translate.translate"),
			Detect:    add[*translate.DetectRequest, translate.DetectResponse](b, "translate.detect"),
			Languages: add[*translate.LanguagesRequest, translate.LanguagesResponse](b, "translate.languages"),
		},
		apiKey: o.APIKey,
	}

	if b.err != nil {
		return nil, fmt.Errorf("googleapi: %w", b.err)
	}
	return c, nil
}

// NewFromConfig builds Clients from cfg, opening the optional Redis quota
// and Postgres usage journal it names. Call Close when done.
func NewFromConfig(ctx context.Context, cfg *config.Config, log *logger.Logger, reg prometheus.Registerer) (*Clients, error) {
	if cfg == nil {
		return nil, errors.New("googleapi: config is nil")
	}
	if log == nil {
		log = logger.New(cfg.Env, cfg.LogLevel)
	}

	o := Options{
		APIKey:        cfg.APIKey,
		NoHandler:     cfg.HTTP.NoHandler,
		Timeout:       cfg.HTTP.Timeout,
		Logger:        log,
		MaxAttempts:   cfg.HTTP.MaxAttempts,
		Backoff:       cfg.HTTP.Backoff,
		RatePerSecond: cfg.HTTP.RatePerSecond,
		Burst:         cfg.HTTP.Burst,
		BaseURL:       cfg.HTTP.BaseURL,
		Registerer:    reg,
	}

	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
	}

	if cfg.QuotaEnabled() {
		q, err := quota.NewRedisQuotaFromAddr(ctx, cfg.Redis.Addr, cfg.Redis.DailyQuota)
		if err != nil {
			return nil, fmt.Errorf("googleapi: quota: %w", err)
		}
		closers = append(closers, q.Close)
		o.Quota = q
		log.Info("daily quota enabled", "redis", cfg.Redis.Addr, "limit", cfg.Redis.DailyQuota)
	}

	if cfg.DatabaseURL != "" {
		conn, err := db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("googleapi: usage journal: %w", err)
		}
		closers = append(closers, conn.Close)
		o.Observers = append(o.Observers, usage.NewSQLUsageJournal(conn, log))
		log.Info("usage journal enabled")
	}

	c, err := New(o)
	if err != nil {
		cleanup()
		return nil, err
	}
	c.closers = closers
	return c, nil
}

// RoadsBatcher returns a batcher over the nearest roads engine that falls
// back to the configured API key.
func (c *Clients) RoadsBatcher(concurrency int) (*services.RoadsBatcher, error) {
	b, err := services.NewRoadsBatcher(c.Maps.NearestRoads, concurrency)
	if err != nil {
		return nil, err
	}
	return b.WithDefaultKey(c.apiKey), nil
}
