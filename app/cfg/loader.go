package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Application configuration
	Port     string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	MaxItems int    `long:"max-items" env:"MAX_ITEMS" default:"10" description:"Maximum number of items returned per feed"`

	// Outbound fetch configuration
	UserAgent    string `long:"user-agent" env:"USER_AGENT" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36" description:"User agent string for outbound feed requests"`
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"15" description:"Outbound fetch timeout in seconds"`

	// Application metadata
	Debug bool `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:         raw.Port,
		MaxItems:     raw.MaxItems,
		UserAgent:    raw.UserAgent,
		FetchTimeout: raw.FetchTimeout,
		Debug:        raw.Debug,
		Version:      GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
