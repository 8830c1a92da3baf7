package geoinfo

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/civictrack/civictrack-api/schema"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

// GeoInfo - reverse geocoding for report locations
type GeoInfo interface {
	Area(schema.Location) (string, error)
}

type geoInfo struct {
	client *maps.Client
}

// Area resolves a human readable area name for a point. It prefers the
// locality, falling back to the second-level administrative area.
func (g geoInfo) Area(loc schema.Location) (string, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    loc.Latitude,
		"lng":    loc.Longitude,
	}).Debug("query geo info")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{LatLng: &maps.LatLng{
		Lat: loc.Latitude,
		Lng: loc.Longitude,
	}})
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", nil
	}

	var level2 string
	for _, a := range results[0].AddressComponents {
		if len(a.Types) == 0 {
			continue
		}
		switch a.Types[0] {
		case "locality":
			return a.LongName, nil
		case "administrative_area_level_2":
			level2 = a.LongName
		}
	}

	return level2, nil
}

// New - new GeoInfo interface
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
	}, nil
}
