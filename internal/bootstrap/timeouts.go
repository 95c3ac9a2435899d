package bootstrap

import "time"

const sleeperTimeout = 15 * time.Second

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
