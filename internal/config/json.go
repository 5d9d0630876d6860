package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON keys
// and string durations.
type StructuredJSONConfig struct {
	App struct {
		Name                string   `json:"name"`
		Version             string   `json:"version"`
		Key                 string   `json:"key"`
		TokenSecret         string   `json:"token_secret"`
		TokenIssuer         string   `json:"token_issuer"`
		TokenDuration       Duration `json:"token_duration"`
		PhoneRegion         string   `json:"phone_region"`
		LogLevel            string   `json:"log_level"`
		LoginMaxAttempts    int      `json:"login_max_attempts"`
		LoginAttemptsWindow Duration `json:"login_attempts_window"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			URL string `json:"url"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`

		Twilio struct {
			BaseURL    string `json:"base_url"`
			AccountSID string `json:"account_sid"`
			AuthToken  string `json:"auth_token"`
			ServiceSID string `json:"service_sid"`
		} `json:"twilio,omitempty"`

		SMS struct {
			BaseURL  string `json:"base_url"`
			User     string `json:"user"`
			Password string `json:"password"`
			Sender   string `json:"sender"`
		} `json:"sms,omitempty"`

		Mail struct {
			BaseURL string `json:"base_url"`
			APIKey  string `json:"api_key"`
			From    string `json:"from"`
		} `json:"mail,omitempty"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:                jsonCfg.App.Name,
			Version:             jsonCfg.App.Version,
			Key:                 jsonCfg.App.Key,
			TokenSecret:         jsonCfg.App.TokenSecret,
			TokenIssuer:         jsonCfg.App.TokenIssuer,
			TokenDuration:       time.Duration(jsonCfg.App.TokenDuration),
			PhoneRegion:         jsonCfg.App.PhoneRegion,
			LogLevel:            jsonCfg.App.LogLevel,
			LoginMaxAttempts:    jsonCfg.App.LoginMaxAttempts,
			LoginAttemptsWindow: time.Duration(jsonCfg.App.LoginAttemptsWindow),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				URL: jsonCfg.Storage.Redis.URL,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Twilio: Twilio{
				BaseURL:    jsonCfg.Adapter.Twilio.BaseURL,
				AccountSID: jsonCfg.Adapter.Twilio.AccountSID,
				AuthToken:  jsonCfg.Adapter.Twilio.AuthToken,
				ServiceSID: jsonCfg.Adapter.Twilio.ServiceSID,
			},
			SMS: SMS{
				BaseURL:  jsonCfg.Adapter.SMS.BaseURL,
				User:     jsonCfg.Adapter.SMS.User,
				Password: jsonCfg.Adapter.SMS.Password,
				Sender:   jsonCfg.Adapter.SMS.Sender,
			},
			Mail: Mail{
				BaseURL: jsonCfg.Adapter.Mail.BaseURL,
				APIKey:  jsonCfg.Adapter.Mail.APIKey,
				From:    jsonCfg.Adapter.Mail.From,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
