package app

import (
	"context"
	"log/slog"

	"readsim/core/errprofile"
	"readsim/internal/alignment"
	"readsim/internal/cli"
	"readsim/internal/profilecache"
)

// loadProfile returns the error profile for opts.Alignment, consulting the
// profile cache first when one is configured. Cache problems are logged
// and never fail the run.
func loadProfile(ctx context.Context, opts cli.Options, log *slog.Logger) (errprofile.Profile, errprofile.Counts, bool, error) {
	var (
		cache  *profilecache.Cache
		digest string
	)
	if opts.ProfileCache != "" {
		var err error
		if digest, err = profilecache.DigestFile(opts.Alignment); err != nil {
			log.Warn("profile cache disabled", "err", err)
		} else if cache, err = profilecache.Open(opts.ProfileCache); err != nil {
			log.Warn("profile cache disabled", "err", err)
		}
	}
	if cache != nil {
		defer cache.Close()
		p, n, ok, err := cache.Get(ctx, digest)
		if err != nil {
			log.Warn("profile cache lookup failed", "err", err)
		} else if ok {
			log.Debug("profile cache hit", "digest", digest)
			return p, n, true, nil
		}
	}

	log.Info("estimating error profile", "path", opts.Alignment)
	src, err := alignment.Open(opts.Alignment)
	if err != nil {
		return errprofile.Profile{}, errprofile.Counts{}, false, err
	}
	defer src.Close()
	p, n, err := errprofile.Estimate(ctx, src)
	if err != nil {
		return errprofile.Profile{}, n, false, err
	}
	log.Debug("alignment scanned", "records", n.Records, "bases", n.TotalBases)

	if cache != nil {
		if err := cache.Put(ctx, digest, p, n); err != nil {
			log.Warn("profile cache store failed", "err", err)
		}
	}
	return p, n, false, nil
}
