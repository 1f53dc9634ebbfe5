package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/stzheng716/sharebnb-backend/models"
	"github.com/stzheng716/sharebnb-backend/repositories"

	"gorm.io/datatypes"
)

// GeocodeService resolves addresses against a Nominatim-style search API,
// memoizing results in the geocode_cache table.
type GeocodeService struct {
	cache   repositories.GeocodeCacheRepository
	baseURL string
	client  *http.Client
}

func NewGeocodeService(cache repositories.GeocodeCacheRepository, baseURL string) *GeocodeService {
	return &GeocodeService{
		cache:   cache,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *GeocodeService) Resolve(address string) (float64, float64, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return 0, 0, errors.New("empty address")
	}

	if entry, err := s.cache.GetByAddress(address); err == nil {
		return entry.Latitude, entry.Longitude, nil
	} else if !errors.Is(err, repositories.ErrNotFound) {
		log.Printf("warning: geocode cache lookup failed: %v", err)
	}

	lat, lng, raw, err := s.lookup(address)
	if err != nil {
		return 0, 0, err
	}

	if err := s.cache.Create(&models.GeocodeCache{
		Address:   address,
		Latitude:  lat,
		Longitude: lng,
		Raw:       datatypes.JSON(raw),
	}); err != nil {
		// A lost cache write only costs a future lookup.
		log.Printf("warning: geocode cache write failed: %v", err)
	}

	return lat, lng, nil
}

func (s *GeocodeService) lookup(address string) (float64, float64, []byte, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequest(http.MethodGet, s.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", "sharebnb")

	res, err := s.client.Do(req)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("geocode request: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("read geocode response: %w", err)
	}
	if res.StatusCode != http.StatusOK {
		return 0, 0, nil, fmt.Errorf("geocode failed with status %d", res.StatusCode)
	}

	// Nominatim returns coordinates as strings.
	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.Unmarshal(raw, &results); err != nil {
		return 0, 0, nil, fmt.Errorf("parse geocode response: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, nil, fmt.Errorf("no geocode result for %q", address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("parse latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("parse longitude: %w", err)
	}

	return lat, lng, raw, nil
}
