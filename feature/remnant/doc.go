// Package remnant exposes APO remnant analysis of WASON/APOPLUS logs.
//
// A raw log is split per site by the segment package and reconciled by the
// analyze package. This package turns the results into reports (view filter,
// KPI summary, per-link text), stores raw logs in object storage, persists
// runs through GORM and re-analyzes the newest upload on a cron schedule.
//
// # Routes
//
//	POST   /remnant/analyze              analyze the request body
//	GET    /remnant/sites                site table
//	POST   /remnant/uploads              store a log (multipart "file")
//	GET    /remnant/uploads?date=        list stored logs
//	DELETE /remnant/uploads/:id          delete a stored log
//	POST   /remnant/uploads/:id/analyze  analyze a stored log
//	GET    /remnant/runs                 list saved runs
//	GET    /remnant/runs/:id             one saved run
package remnant
