package cfg

type Cfg struct {
	// Application configuration
	Port     string
	MaxItems int

	// Outbound fetch configuration
	UserAgent    string
	FetchTimeout int

	// Application metadata
	Debug   bool
	Version string
}
