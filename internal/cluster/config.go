package cluster

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/goodnatureofminers/hydractl/internal/hydra"
	"github.com/goodnatureofminers/hydractl/internal/transport"
	"github.com/goodnatureofminers/hydractl/internal/wallet"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"
)

const (
	DefaultCommitThreshold    = "4A"
	DefaultMinFunds           = "1A"
	DefaultMaxResetIterations = 8
)

// Timeouts bounds every wait of the transition table.
type Timeouts struct {
	Initialize  time.Duration `yaml:"initialize"`
	Commit      time.Duration `yaml:"commit"`
	Open        time.Duration `yaml:"open"`
	Close       time.Duration `yaml:"close"`
	FanoutGrace time.Duration `yaml:"fanoutGrace"`
	Fanout      time.Duration `yaml:"fanout"`
	Decommit    time.Duration `yaml:"decommit"`
}

// DefaultTimeouts returns the timeouts used when the config leaves them out.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Initialize:  180 * time.Second,
		Commit:      280 * time.Second,
		Open:        120 * time.Second,
		Close:       180 * time.Second,
		FanoutGrace: 3 * time.Minute,
		Fanout:      180 * time.Second,
		Decommit:    180 * time.Second,
	}
}

func (t Timeouts) withDefaults() Timeouts {
	d := DefaultTimeouts()
	if t.Initialize <= 0 {
		t.Initialize = d.Initialize
	}
	if t.Commit <= 0 {
		t.Commit = d.Commit
	}
	if t.Open <= 0 {
		t.Open = d.Open
	}
	if t.Close <= 0 {
		t.Close = d.Close
	}
	if t.FanoutGrace <= 0 {
		t.FanoutGrace = d.FanoutGrace
	}
	if t.Fanout <= 0 {
		t.Fanout = d.Fanout
	}
	if t.Decommit <= 0 {
		t.Decommit = d.Decommit
	}
	return t
}

// ParticipantConfig locates one Hydra node and its keys.
type ParticipantConfig struct {
	HTTPURL     string `yaml:"httpUrl"`
	FundKeyFile string `yaml:"fundKeyFile"`
	NodeKeyFile string `yaml:"nodeKeyFile"`
	// L1URL overrides the cluster L1 endpoint for this participant.
	L1URL string `yaml:"l1Url,omitempty"`
}

// Config is the cluster topology file.
type Config struct {
	Participants []ParticipantConfig `yaml:"participants"`

	L1URL   string `yaml:"l1Url"`
	APIKey  string `yaml:"apiKey"`
	Network string `yaml:"network"`

	CommitThreshold    string   `yaml:"commitThreshold"`
	MaxResetIterations int      `yaml:"maxResetIterations"`
	Timeouts           Timeouts `yaml:"timeouts"`

	PollInterval     time.Duration         `yaml:"pollInterval"`
	UTxOPollInterval time.Duration         `yaml:"utxoPollInterval"`
	RequestTimeout   time.Duration         `yaml:"requestTimeout"`
	Retry            transport.RetryConfig `yaml:"retry"`
	RPS              int                   `yaml:"rps"`
}

// LoadConfig reads, defaults and validates a topology file.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read cluster config: %w", err)
	}
	return ParseConfig(raw)
}

// ParseConfig decodes a YAML topology.
func ParseConfig(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode cluster config: %w", err)
	}
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithDefaults fills every unset field.
func (c Config) WithDefaults() Config {
	if c.CommitThreshold == "" {
		c.CommitThreshold = DefaultCommitThreshold
	}
	if c.MaxResetIterations <= 0 {
		c.MaxResetIterations = DefaultMaxResetIterations
	}
	c.Timeouts = c.Timeouts.withDefaults()
	return c
}

// Threshold parses CommitThreshold.
func (c Config) Threshold() (hydra.Value, error) {
	return hydra.ParseValue(c.CommitThreshold)
}

// Validate reports every problem in the config at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if len(c.Participants) == 0 {
		result = multierror.Append(result, errors.New("no participants"))
	}
	for i, p := range c.Participants {
		if err := checkURL(p.HTTPURL); err != nil {
			result = multierror.Append(result, fmt.Errorf("participant %d httpUrl: %w", i, err))
		}
		if p.FundKeyFile == "" {
			result = multierror.Append(result, fmt.Errorf("participant %d: fundKeyFile is required", i))
		}
		if p.L1URL != "" {
			if err := checkURL(p.L1URL); err != nil {
				result = multierror.Append(result, fmt.Errorf("participant %d l1Url: %w", i, err))
			}
		}
	}
	if c.L1URL != "" {
		if err := checkURL(c.L1URL); err != nil {
			result = multierror.Append(result, fmt.Errorf("l1Url: %w", err))
		}
	}
	if _, err := wallet.ParseNetwork(c.Network); err != nil {
		result = multierror.Append(result, fmt.Errorf("network: %w", err))
	}
	if _, err := c.Threshold(); err != nil {
		result = multierror.Append(result, fmt.Errorf("commitThreshold: %w", err))
	}
	return result.ErrorOrNil()
}

func checkURL(raw string) error {
	if raw == "" {
		return errors.New("must not be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	return nil
}
