package internal

import (
	"log/slog"

	"github.com/swilenhq/swilen/pkg/cache"
	"github.com/swilenhq/swilen/pkg/config"
	"github.com/swilenhq/swilen/pkg/container"
	"github.com/swilenhq/swilen/pkg/database"
	"github.com/swilenhq/swilen/pkg/env"
)

// Package facades for the framework services. The facades bootable
// connects each to the booting App's container; they are process-wide,
// so the last App to boot wins when several coexist.
var (
	EnvFacade    container.Facade[*env.Store]
	ConfigFacade container.Facade[*config.Config]
	LogFacade    container.Facade[*slog.Logger]
	CacheFacade  container.Facade[cache.Cache[any]]
	DBFacade     container.Facade[*database.Connection]
)
