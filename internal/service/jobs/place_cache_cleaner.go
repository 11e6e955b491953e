package jobs

import (
	"github.com/labstack/gommon/log"

	"vetcrm/internal/utils"
)

// PlaceCacheTTLMillis bounds how stale a cached place-details row may get
// before the sweeper drops it. Negative entries age out the same way.
const PlaceCacheTTLMillis = 24 * 60 * 60 * 1000

// PlaceCacheSchedule is the cron spec the cleaner runs on.
const PlaceCacheSchedule = "@every 1h"

type PlaceCacheRepository interface {
	DeleteExpired(before int64) error
}

// PlaceCacheCleaner sweeps expired place cache rows. It implements cron.Job
// and is registered on the scheduler at startup.
type PlaceCacheCleaner struct {
	cacheRepo PlaceCacheRepository
}

func NewPlaceCacheCleaner(repo PlaceCacheRepository) *PlaceCacheCleaner {
	return &PlaceCacheCleaner{cacheRepo: repo}
}

func (c *PlaceCacheCleaner) Run() {
	now := utils.NowUTC()
	cutoff := now - PlaceCacheTTLMillis

	err := c.cacheRepo.DeleteExpired(cutoff)
	if err != nil {
		log.Errorf("Cleaner: failed to delete expired place cache: %v", err)
		return
	}

	log.Debugf("Cleaner: successfully swept place caches older than %d", cutoff)
}
