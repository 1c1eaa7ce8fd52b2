package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mpawlak/wedrownik/internal/pkg/apperrors"
	httpclient "github.com/mpawlak/wedrownik/internal/pkg/http"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/mpawlak/wedrownik/internal/utils"
)

// PlaceGateway resolves place IDs against the place catalog service
type PlaceGateway struct {
	client *httpclient.Client
}

// NewPlaceGateway creates a new place gateway
func NewPlaceGateway(cfg *models.Config) *PlaceGateway {
	return &PlaceGateway{
		client: httpclient.NewClient(cfg.Services.PlacesServiceURL, 10*time.Second),
	}
}

// GetPlace fetches one place record. A 404 from the catalog is
// ErrPlaceNotFound; anything that stops us reading a place record at all is
// ErrLookupUnavailable.
func (g *PlaceGateway) GetPlace(ctx context.Context, placeID int64) (*models.Place, error) {
	status, body, err := g.client.Get(ctx, fmt.Sprintf("/places/%d", placeID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrLookupUnavailable, err)
	}

	switch {
	case status == http.StatusNotFound:
		return nil, apperrors.ErrPlaceNotFound
	case status != http.StatusOK:
		return nil, fmt.Errorf("%w: catalog returned status %d", apperrors.ErrLookupUnavailable, status)
	}

	var place models.Place
	if err := utils.ParseJSONResponse(body, &place); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrLookupUnavailable, err)
	}
	return &place, nil
}
