package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/vaultshare/internal/flagx"
)

var knownFlags = []string{
	"-a", "-m", "-d", "-s", "-u", "-p", "-b", "-g", "-e",
	"-archive", "-archive-url-expiry", "-ttl", "-sweep", "-notify-buffer", "-l",
}

// parseFlags overlays command-line flags onto config.
//
//	-a string      gRPC bind address (e.g. ":50051")
//	-m string      store backend: postgres or memory
//	-d string      PostgreSQL DSN
//	-s string      access token HMAC secret
//	-u, -p         S3 user and password
//	-b, -g, -e     S3 bucket, region and base endpoint
//	-archive       keep vault versions displaced by forced syncs
//	-archive-url-expiry duration
//	-ttl duration  default share lifetime
//	-sweep duration
//	-notify-buffer int
//	-l string      log level
//
// Arguments not listed here are ignored so other components may share the
// command line.
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.Store, "m", config.Store, "store backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.BoolVar(&config.ArchiveEnabled, "archive", config.ArchiveEnabled, "archive displaced vault versions")
	fs.DurationVar(&config.ArchiveURLExpiry, "archive-url-expiry", config.ArchiveURLExpiry, "archive download link lifetime")
	fs.DurationVar(&config.DefaultShareTTL, "ttl", config.DefaultShareTTL, "default share lifetime")
	fs.DurationVar(&config.SweepInterval, "sweep", config.SweepInterval, "expiry sweep interval")
	fs.IntVar(&config.NotifyBuffer, "notify-buffer", config.NotifyBuffer, "per-subscriber event buffer")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
