package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		APISecret     string   `json:"api_secret"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		Version       string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			BlobDir string `json:"blob_dir"`
		} `json:"files,omitempty"`

		History struct {
			DSN string `json:"dsn"`
		} `json:"history,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Media struct {
		ShotsDir     string `json:"shots_dir"`
		MediaDir     string `json:"media_dir"`
		DocumentsDir string `json:"documents_dir"`
	} `json:"media,omitempty"`

	Uploader struct {
		Destination    string   `json:"destination"`
		RequestTimeout Duration `json:"request_timeout"`
		BestEffort     bool     `json:"best_effort"`
	} `json:"uploader,omitempty"`

	Workers struct {
		RetentionAge      Duration `json:"retention_age"`
		RetentionInterval Duration `json:"retention_interval"`
	} `json:"workers,omitempty"`
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
			APISecret:     jsonCfg.App.APISecret,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			Version:       jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Files: Files{
				BlobDir: jsonCfg.Storage.Files.BlobDir,
			},
			History: History{
				DSN: jsonCfg.Storage.History.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Media: Media{
			ShotsDir:     jsonCfg.Media.ShotsDir,
			MediaDir:     jsonCfg.Media.MediaDir,
			DocumentsDir: jsonCfg.Media.DocumentsDir,
		},
		Uploader: Uploader{
			Destination:    jsonCfg.Uploader.Destination,
			RequestTimeout: time.Duration(jsonCfg.Uploader.RequestTimeout),
			BestEffort:     jsonCfg.Uploader.BestEffort,
		},
		Workers: Workers{
			RetentionAge:      time.Duration(jsonCfg.Workers.RetentionAge),
			RetentionInterval: time.Duration(jsonCfg.Workers.RetentionInterval),
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
