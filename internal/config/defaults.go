package config

import "time"

// Default values applied to every field left empty by the other sources.
const (
	DefaultAppName             = "Quickdo Application Market"
	DefaultAppVersion          = "v1.0.0"
	DefaultTokenDuration       = 48 * time.Hour
	DefaultPhoneRegion         = "CM"
	DefaultLogLevel            = "debug"
	DefaultLoginMaxAttempts    = 5
	DefaultLoginAttemptsWindow = time.Minute
	DefaultHTTPAddress         = "0.0.0.0:8080"
	DefaultRequestTimeout      = 30 * time.Second
	DefaultShutdownTimeout     = 10 * time.Second
	DefaultAdapterTimeout      = 10 * time.Second
	DefaultTwilioBaseURL       = "https://verify.twilio.com"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:                DefaultAppName,
			Version:             DefaultAppVersion,
			TokenDuration:       DefaultTokenDuration,
			PhoneRegion:         DefaultPhoneRegion,
			LogLevel:            DefaultLogLevel,
			LoginMaxAttempts:    DefaultLoginMaxAttempts,
			LoginAttemptsWindow: DefaultLoginAttemptsWindow,
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultAdapterTimeout,
			Twilio: Twilio{
				BaseURL: DefaultTwilioBaseURL,
			},
		},
	}
}
