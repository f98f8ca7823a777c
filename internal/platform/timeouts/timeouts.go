// Package timeouts defines shared timeout constants.
package timeouts

import "time"

// TelemetryShutdown limits how long a command waits for pending spans to
// flush on exit.
const TelemetryShutdown = 5 * time.Second

// SQLiteBusy is how long a SQLite connection waits on a locked database
// before failing.
const SQLiteBusy = 5 * time.Second
