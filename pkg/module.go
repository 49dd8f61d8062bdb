// Package pkg aggregates the cross-cutting providers every Doka service
// shares: the three named PostgreSQL pools, the Redis connection and the
// distributed lock built on it, the IP/country request blocker, and the
// S3-compatible object store backing the file server's alternate part
// storage.
package pkg

import (
	"go.uber.org/fx"

	"github.com/doka-one/doka/pkg/database/postgres"
	"github.com/doka-one/doka/pkg/distributedmutex"
	"github.com/doka-one/doka/pkg/redisclient"
	"github.com/doka-one/doka/pkg/security/ipcountryblocker"
	"github.com/doka-one/doka/pkg/storage/object/s3"
)

func Module() fx.Option {
	return fx.Options(
		postgres.Module(),
		fx.Provide(
			redisclient.NewClient,
			distributedmutex.NewAdapter,
			ipcountryblocker.NewProvider,
			s3.NewProvider,
		),
	)
}
