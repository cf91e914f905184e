package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/kelseyhightower/envconfig"

	"github.com/cytora/cz-company-lambda/internal/logging"
)

// Known source names accepted in SOURCES.
const (
	SourceAres       = "ares"
	SourceJustice    = "justice"
	SourceBeneficial = "beneficial"
)

var (
	ErrConfig         = errors.New("config error")
	ErrInvalidSources = fmt.Errorf("%w invalid sources", ErrConfig)
	ErrMissingRegion  = fmt.Errorf("%w AWS_REGION is required outside local mode", ErrConfig)
)

var knownSources = map[string]bool{
	SourceAres:       true,
	SourceJustice:    true,
	SourceBeneficial: true,
}

// CoreEnv holds the settings every function in the platform carries.
type CoreEnv struct {
	Env       string `envconfig:"ENV" required:"true"`
	Service   string `envconfig:"SERVICE" required:"true"`
	Version   string `envconfig:"VERSION"`
	AWSRegion string `envconfig:"AWS_REGION"`
	Port      int    `envconfig:"PORT" default:"3000"`
}

type Config struct {
	CoreEnv
	Local    bool   `envconfig:"LOCAL"`
	DemoMode bool   `envconfig:"DEMO_MODE"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	Sources string `envconfig:"SOURCES" default:"ares,justice,beneficial"`

	AresBaseURL    string `envconfig:"ARES_BASE_URL" default:"https://ares.gov.cz"`
	JusticeBaseURL string `envconfig:"JUSTICE_BASE_URL" default:"https://or.justice.cz"`
	HlidacBaseURL  string `envconfig:"HLIDAC_BASE_URL" default:"https://api.hlidacstatu.cz"`
	HlidacDataset  string `envconfig:"HLIDAC_DATASET" default:"skutecni-majitele"`
	HlidacToken    string `envconfig:"HLIDAC_TOKEN"`
	// HlidacTokenSecret names the Secrets Manager secret holding the token.
	HlidacTokenSecret string `envconfig:"HLIDAC_TOKEN_SECRET"`

	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`
}

// EnabledSources returns the normalised, de-duplicated SOURCES list.
func (c *Config) EnabledSources() []string {
	var out []string
	seen := map[string]bool{}
	for _, s := range strings.Split(c.Sources, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// Enabled reports whether the named source is active.
func (c *Config) Enabled(name string) bool {
	for _, s := range c.EnabledSources() {
		if s == name {
			return true
		}
	}
	return false
}

func (c *Config) validateSources() error {
	mandatory := false
	for _, s := range c.EnabledSources() {
		if !knownSources[s] {
			return fmt.Errorf("%w: unknown source %q", ErrInvalidSources, s)
		}
		if s == SourceAres || s == SourceJustice {
			mandatory = true
		}
	}
	if !mandatory {
		return fmt.Errorf("%w: at least one of %s, %s is required", ErrInvalidSources, SourceAres, SourceJustice)
	}
	return nil
}

func Load() (*Config, error) {
	c := &Config{}
	if val, present := os.LookupEnv("LOCAL"); present {
		local, err := strconv.ParseBool(val)
		if err != nil {
			logging.Error(context.Background(), err, nil, "failed to load configuration")
			return nil, err
		}
		c.Local = local
	}
	if err := envconfig.Process("", c); err != nil {
		logging.Error(context.Background(), err, logging.Data{"local": c.Local}, "failed to populate config")
		return nil, err
	}
	if err := c.validateSources(); err != nil {
		logging.Error(context.Background(), err, logging.Data{"sources": c.Sources}, "invalid sources")
		return nil, err
	}
	if c.Local {
		return c, nil
	}
	if c.AWSRegion == "" {
		return nil, ErrMissingRegion
	}
	if c.HlidacToken == "" && c.HlidacTokenSecret != "" && c.Enabled(SourceBeneficial) {
		token, err := resolveSecret(context.Background(), c.AWSRegion, c.HlidacTokenSecret)
		if err != nil {
			logging.Error(context.Background(), err, logging.Data{"secret": c.HlidacTokenSecret}, "failed to resolve token secret")
			return nil, err
		}
		c.HlidacToken = token
	}
	return c, nil
}

func resolveSecret(ctx context.Context, region, secretID string) (string, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return "", err
	}
	out, err := secretsmanager.New(sess).GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(aws.StringValue(out.SecretString)), nil
}
