package costrollup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/ledger"
	"github.com/rayyanshaikh123/bharatbuild-sub004/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	WeeklyCostKeyPrefix = "costrollup:weekly:"
	weeklyCostTTL       = 30 * time.Minute
)

// GetWeeklyCostVersionKey holds a counter bumped on every ledger write of the
// project. Cached rollups are keyed by the version read before computing them,
// so a rollup computed before a write can never be served after it.
func GetWeeklyCostVersionKey(projectID string) string {
	return WeeklyCostKeyPrefix + projectID + ":version"
}

func GetWeeklyCostKey(projectID string, version int64) string {
	return fmt.Sprintf("%s%s:v%d", WeeklyCostKeyPrefix, projectID, version)
}

// EntrySource is the read side of the ledger the rollup needs.
type EntrySource interface {
	FindCostEntries(ctx context.Context, projectID string) ([]ledger.LedgerEntry, error)
}

//go:generate mockgen -source=costrollup_service.go -destination=mock/costrollup_service_mock.go -package=mock
type Service interface {
	WeeklyCost(ctx context.Context, projectID string) ([]WeeklyCost, error)
	// LedgerChanged makes any rollup cached for projectID unreachable.
	LedgerChanged(ctx context.Context, projectID string)
}

type service struct {
	source EntrySource
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

// NewService builds the rollup. rdb may be nil, in which case every call reads
// the ledger.
func NewService(source EntrySource, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("costrollup.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("costrollup.service")
	}
	return &service{
		source: source,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) WeeklyCost(ctx context.Context, projectID string) ([]WeeklyCost, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	version, cacheable := s.currentVersion(ctx, projectID)
	cacheKey := GetWeeklyCostKey(projectID, version)

	if cacheable {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp []WeeklyCost
			if json.Unmarshal(cached, &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		entries, err := s.source.FindCostEntries(ctx, projectID)
		if err != nil {
			return nil, err
		}
		resp := bucketWeekly(entries)

		if cacheable {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, data, weeklyCostTTL).Err(); err != nil {
					log.Warn("cache weekly cost failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		log.Error("weekly cost rollup failed", zap.String("project_id", projectID), zap.Error(err))
		return nil, err
	}

	return v.([]WeeklyCost), nil
}

// currentVersion reads the project's cache version. Without Redis, or when
// the version cannot be read, the rollup is computed and not cached.
func (s *service) currentVersion(ctx context.Context, projectID string) (int64, bool) {
	if s.rdb == nil {
		return 0, false
	}
	version, err := s.rdb.Get(ctx, GetWeeklyCostVersionKey(projectID)).Int64()
	switch {
	case err == nil:
		return version, true
	case errors.Is(err, redis.Nil):
		return 0, true
	default:
		contextutil.GetLogger(ctx, s.logger).Warn("read weekly cost cache version failed",
			zap.String("project_id", projectID),
			zap.Error(err),
		)
		return 0, false
	}
}

// LedgerChanged retires every rollup cached for projectID by bumping its version.
func (s *service) LedgerChanged(ctx context.Context, projectID string) {
	if s.rdb == nil {
		return
	}
	versionKey := GetWeeklyCostVersionKey(projectID)
	if err := s.rdb.Incr(ctx, versionKey).Err(); err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("failed to invalidate weekly cost cache",
			zap.String("key", versionKey),
			zap.Error(err),
		)
	}
}
