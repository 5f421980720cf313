package config

const (
	minDiscsPerSet = 1
	maxDiscsPerSet = 100

	minDistance = 0
	maxDistance = 150
)

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.Practice.DiscsPerSet < minDiscsPerSet ||
		c.Practice.DiscsPerSet > maxDiscsPerSet {
		return errInvalidDiscsPerSet.Fmt(minDiscsPerSet, maxDiscsPerSet)
	}

	if c.Practice.Distance < minDistance || c.Practice.Distance > maxDistance {
		return errInvalidDistance.Fmt(minDistance, maxDistance)
	}

	return nil
}
