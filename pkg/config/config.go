package config

// this holds the resolved configuration values from CLI
var (
	UpstreamURL       string // base URL of the upstream session data source
	CacheDir          string // directory for the on-disk session cache
	CacheTTL          string // duration a loaded session stays in memory
	LogLevel          string // sets the log level (zap log level values)
	LogFormat         string // text vs json
	LogConfig         string // path to a zapfilter rules file
	HTTPServerAddr    string // listen addr for the HTTP API
	ProfilingPort     int    // port for profiling
	EnableTelemetry   bool   // enable telemetry
	TelemetryEndpoint string // endpoint that receives open telemetry data
)
