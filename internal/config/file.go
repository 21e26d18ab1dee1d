package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type fileConfig struct {
	Remote struct {
		RawBaseURL     string   `json:"raw_base_url" yaml:"raw_base_url"`
		APIBaseURL     string   `json:"api_base_url" yaml:"api_base_url"`
		Owner          string   `json:"owner" yaml:"owner"`
		Repo           string   `json:"repo" yaml:"repo"`
		Branch         string   `json:"branch" yaml:"branch"`
		FilePath       string   `json:"file_path" yaml:"file_path"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		APIRate        float64  `json:"api_rate" yaml:"api_rate"`
		APIBurst       int      `json:"api_burst" yaml:"api_burst"`
		UserAgent      string   `json:"user_agent" yaml:"user_agent"`
		ChromeTLS      bool     `json:"chrome_tls" yaml:"chrome_tls"`
	} `json:"remote" yaml:"remote"`

	Storage struct {
		DSN string `json:"dsn" yaml:"dsn"`
	} `json:"storage" yaml:"storage"`

	Secrets struct {
		GCPProject  string `json:"gcp_project" yaml:"gcp_project"`
		TokenSecret string `json:"token_secret" yaml:"token_secret"`
	} `json:"secrets" yaml:"secrets"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval" yaml:"refresh_interval"`
	} `json:"workers" yaml:"workers"`

	App struct {
		CommitMessagePrefix string `json:"commit_message_prefix" yaml:"commit_message_prefix"`
		TimeZone            string `json:"time_zone" yaml:"time_zone"`
		LogLevel            string `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`
}

// parseFile reads a JSON (.json) or YAML (.yaml, .yml) config file.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return &StructuredConfig{
		Remote: Remote{
			RawBaseURL:     fc.Remote.RawBaseURL,
			APIBaseURL:     fc.Remote.APIBaseURL,
			Owner:          fc.Remote.Owner,
			Repo:           fc.Remote.Repo,
			Branch:         fc.Remote.Branch,
			FilePath:       fc.Remote.FilePath,
			RequestTimeout: time.Duration(fc.Remote.RequestTimeout),
			APIRate:        fc.Remote.APIRate,
			APIBurst:       fc.Remote.APIBurst,
			UserAgent:      fc.Remote.UserAgent,
			ChromeTLS:      fc.Remote.ChromeTLS,
		},
		Storage: Storage{
			DSN: fc.Storage.DSN,
		},
		Secrets: Secrets{
			GCPProject:  fc.Secrets.GCPProject,
			TokenSecret: fc.Secrets.TokenSecret,
		},
		Workers: Workers{
			RefreshInterval: time.Duration(fc.Workers.RefreshInterval),
		},
		App: App{
			CommitMessagePrefix: fc.App.CommitMessagePrefix,
			TimeZone:            fc.App.TimeZone,
			LogLevel:            fc.App.LogLevel,
		},
	}, nil
}

// Duration is a time.Duration that decodes from strings like "10s" in JSON
// and YAML. Plain JSON numbers are read as nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}

	return d.parse(s)
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)

	return nil
}
