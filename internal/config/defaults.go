package config

const (
	defaultDataDir        = "~/.local/share/optout"
	defaultLogDir         = "~/.local/share/optout/logs"
	defaultDocumentURL    = "https://raw.githubusercontent.com/yaelwrites/Big-Ass-Data-Broker-Opt-Out-List/master/README.md"
	defaultRequestTimeout = 30
	defaultFeedURL        = "https://raw.githubusercontent.com/DigitalAllyProject/Digital-Dignity-PWA/main/journeys.json"
	defaultFeedInterval   = 24
	defaultTranslateURL   = "https://libretranslate.de/translate"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultLanguage       = "en"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Source: Source{
			DocumentURL:    defaultDocumentURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Updates: Updates{
			Enabled:       true,
			FeedURL:       defaultFeedURL,
			IntervalHours: defaultFeedInterval,
		},
		Translate: Translate{
			Enabled:        false,
			URL:            defaultTranslateURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Language: defaultLanguage,
	}
}
