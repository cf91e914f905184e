package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	coreEnv := CoreEnv{
		Env:       "cytora-dev",
		AWSRegion: "eu-west-1",
		Port:      3000,
		Service:   "test",
	}
	defaults := func(c *Config) *Config {
		c.CoreEnv = coreEnv
		c.LogLevel = "info"
		c.Sources = "ares,justice,beneficial"
		c.AresBaseURL = "https://ares.gov.cz"
		c.JusticeBaseURL = "https://or.justice.cz"
		c.HlidacBaseURL = "https://api.hlidacstatu.cz"
		c.HlidacDataset = "skutecni-majitele"
		return c
	}
	tests := []struct {
		name    string
		want    *Config
		wantErr bool
		errIs   error
		envs    map[string]string
	}{
		{
			name:    "fail local",
			wantErr: true,
			envs: map[string]string{
				"SERVICE":    "test",
				"ENV":        "cytora-dev",
				"LOCAL":      "XXX",
				"AWS_REGION": "eu-west-1",
			},
		},
		{
			name:    "fail not local without region",
			wantErr: true,
			errIs:   ErrMissingRegion,
			envs: map[string]string{
				"SERVICE": "test",
				"ENV":     "cytora-dev",
				"LOCAL":   "false",
			},
		},
		{
			name:    "fail unknown source",
			wantErr: true,
			errIs:   ErrInvalidSources,
			envs: map[string]string{
				"SERVICE":    "test",
				"ENV":        "cytora-dev",
				"LOCAL":      "true",
				"AWS_REGION": "eu-west-1",
				"SOURCES":    "ares,dnb",
			},
		},
		{
			name:    "fail only optional source",
			wantErr: true,
			errIs:   ErrInvalidSources,
			envs: map[string]string{
				"SERVICE":    "test",
				"ENV":        "cytora-dev",
				"LOCAL":      "true",
				"AWS_REGION": "eu-west-1",
				"SOURCES":    "beneficial",
			},
		},
		{
			name: "is local",
			want: defaults(&Config{Local: true}),
			envs: map[string]string{
				"SERVICE":    "test",
				"ENV":        "cytora-dev",
				"LOCAL":      "true",
				"AWS_REGION": "eu-west-1",
			},
		},
		{
			name: "not local with token",
			want: defaults(&Config{HlidacToken: "secret", DemoMode: true}),
			envs: map[string]string{
				"SERVICE":      "test",
				"ENV":          "cytora-dev",
				"LOCAL":        "false",
				"AWS_REGION":   "eu-west-1",
				"HLIDAC_TOKEN": "secret",
				"DEMO_MODE":    "1",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for key, val := range tt.envs {
				os.Setenv(key, val)
				defer os.Unsetenv(key)
			}
			c, err := Load()
			if tt.wantErr {
				assert.NotNil(t, err, "error expected")
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
				}
				assert.Nil(t, c)
				return
			}
			assert.Nil(t, err, "unexpected error")
			assert.Equal(t, tt.want, c, "unexpected values")
		})
	}
}

func TestConfig_EnabledSources(t *testing.T) {
	c := &Config{Sources: " Ares, justice,,ARES ,beneficial"}
	assert.Equal(t, []string{"ares", "justice", "beneficial"}, c.EnabledSources())
	assert.True(t, c.Enabled(SourceJustice))
	assert.False(t, (&Config{Sources: "ares"}).Enabled(SourceBeneficial))
}
