package config

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains valid.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for neersetu.yaml.
// Excludes runtime-only fields (Catalog.SnapshotFile).
// Used for round-tripping neersetu.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option

	if s := c.Database.Host; s != "" {
		res = append(res, OptDatabaseHost(s))
	}
	if i := c.Database.Port; i > 0 {
		res = append(res, OptDatabasePort(i))
	}
	if s := c.Database.User; s != "" {
		res = append(res, OptDatabaseUser(s))
	}
	if s := c.Database.Password; s != "" {
		res = append(res, OptDatabasePassword(s))
	}
	if s := c.Database.Database; s != "" {
		res = append(res, OptDatabaseDatabase(s))
	}
	if s := c.Database.SSLMode; s != "" {
		res = append(res, OptDatabaseSSLMode(s))
	}

	if i := c.Catalog.LoadRetries; i > 0 {
		res = append(res, OptCatalogLoadRetries(i))
	}
	if d := c.Catalog.RetryDelay; d > 0 {
		res = append(res, OptCatalogRetryDelay(d))
	}

	if f := c.Resolver.Threshold; f > 0 {
		res = append(res, OptResolverThreshold(f))
	}
	if i := c.Resolver.MaxResults; i > 0 {
		res = append(res, OptResolverMaxResults(i))
	}
	if i := c.Resolver.ParentCandidates; i > 0 {
		res = append(res, OptResolverParentCandidates(i))
	}

	if i := c.Ranking.Oversample; i > 0 {
		res = append(res, OptRankingOversample(i))
	}
	if i := c.Ranking.TrendSize; i > 0 {
		res = append(res, OptRankingTrendSize(i))
	}

	if s := c.Log.Format; s != "" {
		res = append(res, OptLogFormat(s))
	}
	if s := c.Log.Level; s != "" {
		res = append(res, OptLogLevel(s))
	}

	if i := c.JobsNumber; i > 0 {
		res = append(res, OptJobsNumber(i))
	}

	return res
}
