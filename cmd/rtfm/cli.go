package main

import "time"

// CLI defines the command-line flags for Kong. The interactive command
// surface (queries, refresh, source switching) lives in the REPL, not here.
type CLI struct {
	CacheDir string        `help:"Directory for cache records (default: $RTFM_CACHE_DIR or ~/.rtfm)."`
	Source   string        `default:"stable" help:"Documentation source to start on."`
	Timeout  time.Duration `default:"10s" help:"HTTP fetch timeout."`
	RPS      float64       `name:"rps" default:"1" help:"Maximum inventory fetches per second."`
	Flat     bool          `help:"Start in flat link mode instead of tree mode."`
	Verbose  bool          `short:"v" help:"Log fetch and cache operations."`
}
