package config

const (
	defaultServerURL         = "http://127.0.0.1:5000"
	defaultRequestTimeout    = 10
	defaultPluginIdentity    = "print_finished_when"
	defaultNotificationTitle = "Print Finished"
	defaultNotifyDesktop     = true
	defaultNotifyConsole     = false
	defaultNotifyTimeout     = 10
	defaultHistoryEnabled    = true
	defaultHistoryRetention  = 30
	defaultDataDir           = "~/.local/share/printwatch"
	defaultLogDir            = "~/.local/share/printwatch/logs"
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			URL:            defaultServerURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Plugin: Plugin{
			Identity:          defaultPluginIdentity,
			NotificationTitle: defaultNotificationTitle,
		},
		Notify: Notify{
			Desktop:        defaultNotifyDesktop,
			Console:        defaultNotifyConsole,
			RequestTimeout: defaultNotifyTimeout,
		},
		History: History{
			Enabled:       defaultHistoryEnabled,
			RetentionDays: defaultHistoryRetention,
		},
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
