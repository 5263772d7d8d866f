// Package config loads the dashboard configuration from a YAML file with
// environment-variable overrides. Missing files fall back to defaults so the
// binary starts with nothing but a bridge endpoint.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nimbuswallet/walletdash-backend/internal/model"
)

// Config represents the application configuration
type Config struct {
	Server Server               `yaml:"server"`
	Bridge Bridge               `yaml:"bridge"`
	Feed   FeedTiming           `yaml:"feed"`
	Send   SendTiming           `yaml:"send"`
	Notify NotifyTiming         `yaml:"notify"`
	Fees   map[string]FeeConfig `yaml:"fees"`
}

// Server represents the HTTP server configuration
type Server struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// Bridge represents the wallet bridge connection
type Bridge struct {
	Endpoint          string `yaml:"endpoint"`
	RequestsPerSecond int    `yaml:"requests_per_second"`
}

// FeedTiming carries the feed's polling knobs in seconds.
type FeedTiming struct {
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`
	FetchCeilingSeconds int `yaml:"fetch_ceiling_seconds"`
}

func (f FeedTiming) PollInterval() time.Duration {
	return time.Duration(f.PollIntervalSeconds) * time.Second
}

func (f FeedTiming) FetchCeiling() time.Duration {
	return time.Duration(f.FetchCeilingSeconds) * time.Second
}

// SendTiming carries the send flow's reconciliation knobs in seconds.
type SendTiming struct {
	SettleDelaySeconds int `yaml:"settle_delay_seconds"`
}

func (s SendTiming) SettleDelay() time.Duration {
	return time.Duration(s.SettleDelaySeconds) * time.Second
}

// NotifyTiming carries the notification retention window in seconds.
type NotifyTiming struct {
	WindowSeconds int `yaml:"window_seconds"`
}

func (n NotifyTiming) Window() time.Duration {
	return time.Duration(n.WindowSeconds) * time.Second
}

// FeeConfig carries per-coin fee parameters.
type FeeConfig struct {
	Multiplier float64 `yaml:"multiplier"`
}

// FeeMultipliers maps configured fee multipliers onto known coins. Coins
// without an entry default to 1.
func (c *Config) FeeMultipliers() map[model.Coin]float64 {
	out := make(map[model.Coin]float64, len(c.Fees))
	for raw, fee := range c.Fees {
		coin, ok := model.ParseCoin(raw)
		if !ok || fee.Multiplier <= 0 {
			continue
		}
		out[coin] = fee.Multiplier
	}
	return out
}

// Load loads configuration from a YAML file and environment variables
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: Server{
			Port: 8080,
			Host: "0.0.0.0",
		},
		Bridge: Bridge{
			Endpoint:          "http://127.0.0.1:12391/invoke",
			RequestsPerSecond: 10,
		},
		Feed: FeedTiming{
			PollIntervalSeconds: 30,
			FetchCeilingSeconds: 180,
		},
		Send: SendTiming{
			SettleDelaySeconds: 3,
		},
		Notify: NotifyTiming{
			WindowSeconds: 300,
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	cfg.loadEnv()

	return cfg, nil
}

func (c *Config) loadEnv() {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		c.Server.Host = host
	}

	if endpoint := os.Getenv("BRIDGE_ENDPOINT"); endpoint != "" {
		c.Bridge.Endpoint = endpoint
	}
	if rps := os.Getenv("BRIDGE_RPS"); rps != "" {
		if n, err := strconv.Atoi(rps); err == nil {
			c.Bridge.RequestsPerSecond = n
		}
	}

	if interval := os.Getenv("FEED_POLL_INTERVAL"); interval != "" {
		if n, err := strconv.Atoi(interval); err == nil {
			c.Feed.PollIntervalSeconds = n
		}
	}
	if ceiling := os.Getenv("FEED_FETCH_CEILING"); ceiling != "" {
		if n, err := strconv.Atoi(ceiling); err == nil {
			c.Feed.FetchCeilingSeconds = n
		}
	}
	if settle := os.Getenv("SEND_SETTLE_DELAY"); settle != "" {
		if n, err := strconv.Atoi(settle); err == nil {
			c.Send.SettleDelaySeconds = n
		}
	}
}
