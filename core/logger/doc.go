// Package logger builds the zap logger shared by the server and the CLI.
//
// New accepts any zap level name and either json or console encoding; every
// entry carries app=apo-analyzer. WithRayID copies the request id that the
// rayid middleware stored in the Fiber context, and ForSite tags entries
// about a single site.
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	logger.WithRayID(log, c).Error("Analysis failed", zap.Error(err))
package logger
