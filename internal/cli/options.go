package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"

	"github.com/fedora-infra/go-pkgdb/pkgdb"
	"github.com/fedora-infra/go-pkgdb/pkgdb/client"
	"github.com/fedora-infra/go-pkgdb/pkgdb/config"
)

// fileConfig is the on-disk configuration, read from
// ~/.config/pkgdb-client.yaml unless --config points elsewhere. Flags
// take precedence over file values.
type fileConfig struct {
	BaseURL      string `yaml:"base_url"`
	Username     string `yaml:"username"`
	CacheSession bool   `yaml:"cache_session"`
	Debug        bool   `yaml:"debug"`
}

const configFileName = "pkgdb-client.yaml"

// clientOptions collects the persistent flags and the config file into
// one place every subcommand builds its client from.
type clientOptions struct {
	BaseURL      string
	Username     string
	CacheSession bool
	Debug        bool
	ConfigFile   string
}

// load merges the configuration file into unset flag values.
func (o *clientOptions) load() error {
	path := o.ConfigFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, ".config", configFileName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && o.ConfigFile == "" {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	logrus.Debugf("Loaded configuration from %s", path)
	if o.BaseURL == "" {
		o.BaseURL = fc.BaseURL
	}
	if o.Username == "" {
		o.Username = fc.Username
	}
	o.CacheSession = o.CacheSession || fc.CacheSession
	o.Debug = o.Debug || fc.Debug
	return nil
}

// newClient builds a PackageDB client. Commands hitting dispatcher
// endpoints pass needAuth so a password is prompted for up front instead
// of failing mid-operation.
func (o *clientOptions) newClient(needAuth bool) (*client.PackageDB, error) {
	cfg, err := config.New(o.BaseURL)
	if err != nil {
		return nil, err
	}
	cfg.CacheSession = o.CacheSession
	cfg.Debug = o.Debug
	if o.Debug {
		pkgdb.SetLogger(logrusLogger{})
	}
	if needAuth {
		cfg.Username = o.Username
		if cfg.Username != "" {
			password, err := promptPassword(cfg.Username)
			if err != nil {
				return nil, err
			}
			cfg.Password = password
		} else if !o.CacheSession {
			return nil, fmt.Errorf("this command needs authentication, pass --username or --cache-session")
		}
	}
	return client.New(cfg)
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(username string) (string, error) {
	fmt.Fprintf(os.Stderr, "Password for %s: ", username)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// printPayload renders a server payload as indented JSON on stdout.
func printPayload(payload pkgdb.Payload) error {
	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// logrusLogger adapts logrus to the pkgdb logger interface used for
// request debugging.
type logrusLogger struct{}

func (logrusLogger) Info(msg string, kv ...any) {
	logrus.WithFields(fields(kv)).Debug(msg)
}

func (logrusLogger) Error(err error, msg string, kv ...any) {
	logrus.WithFields(fields(kv)).WithError(err).Error(msg)
}

func fields(kv []any) logrus.Fields {
	f := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		f[key] = kv[i+1]
	}
	return f
}
