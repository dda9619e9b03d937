// Package config loads CLI configuration from HCL files.
package config

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"

	"github.com/hdf-forge/hsds-go/pkg/hsds"
)

// Config is the top-level HCL configuration.
type Config struct {
	// Endpoint is the HSDS service base URL.
	Endpoint string `hcl:"endpoint"`

	// Timeout is the HTTP request timeout as a Go duration string,
	// e.g. "30s". Empty uses the client default.
	Timeout string `hcl:"timeout,optional"`

	// TLSVerify disables server certificate verification when set to
	// false. Defaults to true.
	TLSVerify *bool `hcl:"tls_verify,optional"`

	Auth *AuthConfig `hcl:"auth,block"`
}

// AuthConfig selects the credential scheme: a bearer token, or a
// username/password pair. An absent block means anonymous access.
type AuthConfig struct {
	Username string `hcl:"username,optional"`
	Password string `hcl:"password,optional"`
	Token    string `hcl:"token,optional"`
}

// NewConfig parses and validates the HCL config file at path.
func NewConfig(path string) (*Config, error) {
	return NewConfigFS(afero.NewOsFs(), path)
}

// NewConfigFS is NewConfig over an explicit filesystem.
func NewConfigFS(fs afero.Fs, path string) (*Config, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := hclsimple.Decode(path, src, nil, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config file: %w", err)
	}
	return &cfg, nil
}

// Validate validates the parsed configuration.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Endpoint, validation.Required, is.URL),
		validation.Field(&c.Timeout, validation.By(validDuration)),
	); err != nil {
		return err
	}

	if c.Auth != nil {
		if c.Auth.Token != "" && c.Auth.Username != "" {
			return fmt.Errorf("auth: token and username are mutually exclusive")
		}
		if c.Auth.Username != "" && c.Auth.Password == "" {
			return fmt.Errorf("auth: username requires a password")
		}
	}
	return nil
}

func validDuration(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := time.ParseDuration(s); err != nil {
		return fmt.Errorf("must be a duration string: %w", err)
	}
	return nil
}

// Credentials returns the credential scheme the config selects.
func (c *Config) Credentials() hsds.Credentials {
	if c.Auth == nil {
		return hsds.NoAuth{}
	}
	if c.Auth.Token != "" {
		return hsds.BearerAuth{Token: c.Auth.Token}
	}
	if c.Auth.Username != "" {
		return hsds.BasicAuth{Username: c.Auth.Username, Password: c.Auth.Password}
	}
	return hsds.NoAuth{}
}

// NewClient builds an HSDS client from the configuration.
func (c *Config) NewClient(logger hclog.Logger) (*hsds.Client, error) {
	httpClient := &http.Client{}
	if c.Timeout != "" {
		// Validate already checked the format.
		d, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return nil, err
		}
		httpClient.Timeout = d
	}
	if c.TLSVerify != nil && !*c.TLSVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return hsds.NewClient(hsds.ClientConfig{
		Endpoint:    c.Endpoint,
		Credentials: c.Credentials(),
		HTTPClient:  httpClient,
		Logger:      logger,
	})
}
