package port

import (
	"context"

	"promotrack/internal/core/domain"
)

// DistributionPublisher hands approved rewards to the external distribution
// process. The engine never distributes rewards itself.
type DistributionPublisher interface {
	PublishDistribution(ctx context.Context, reward domain.Reward) error
}

// Geolocator resolves the location of an IP address. It is optional and
// best-effort; callers bound it with a short deadline.
type Geolocator interface {
	Locate(ctx context.Context, ip string) (*domain.Geo, error)
}
