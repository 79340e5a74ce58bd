package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath     = "."
	defaultBaseURL  = "http://localhost:8000/api"
	defaultHTTPHost = "127.0.0.1"
	defaultHTTPPort = 3000
	defaultCacheTTL = 5 * time.Minute
)

// Catalog error policies.
const (
	CatalogOnErrorFallback  = "fallback"
	CatalogOnErrorPropagate = "propagate"
)

// Login strategies.
const (
	AuthModeRemote                 = "remote"
	AuthModeDemo                   = "demo"
	AuthModeRemoteWithDemoFallback = "remote_with_demo_fallback"
)

// Session storage drivers.
const (
	SessionDriverBlob   = "blob"
	SessionDriverSQLite = "sqlite"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		// Host is the listen address; keep it on loopback unless the gateway
		// sits behind something that authenticates callers.
		Host     string `json:"host" yaml:"host"`
		Port     int    `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`

		// AllowOrigins lists the browser origins that may call the gateway
		AllowOrigins []string `json:"allowOrigins" yaml:"allowOrigins"`
	} `json:"http" yaml:"http"`

	// API configures the remote storefront REST API
	API *APIConfig `json:"api" yaml:"api"`

	// Cache configures the in-memory response cache
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	// Catalog configures how catalog reads degrade when the API is unreachable
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Session configures the durable storage of the logged-in identity
	Session *SessionConfig `json:"session" yaml:"session"`

	// QRCode configuration for UPI payment QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Tracing *TracingConfig `json:"tracing" yaml:"tracing"`
}

// APIConfig defines the remote API endpoint
type APIConfig struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// Timeout per request; zero keeps the transport defaults
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

type CacheConfig struct {
	TTL time.Duration `json:"ttl" yaml:"ttl"`

	// Drop cached product listings after a successful product mutation
	InvalidateOnWrite bool `json:"invalidateOnWrite" yaml:"invalidateOnWrite"`
}

type CatalogConfig struct {
	// OnError is "fallback" (serve seed data) or "propagate" (return the error)
	OnError string `json:"onError" yaml:"onError"`
}

// AuthConfig selects the login strategy
type AuthConfig struct {
	Mode string `json:"mode" yaml:"mode"`
}

type SessionConfig struct {
	// Driver is "blob" or "sqlite"
	Driver string `json:"driver" yaml:"driver"`

	// BucketURL is a gocloud.dev blob URL, e.g. file:///var/lib/storefront or mem://
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// SQLitePath is the database file used by the sqlite driver
	SQLitePath string `json:"sqlitePath" yaml:"sqlitePath"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// TracingConfig enables OTLP/HTTP export of request spans. Tracing stays off
// when Endpoint is empty.
type TracingConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: API_BASEURL -> api.baseUrl (not api.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns a configuration usable without any config file: local API,
// five minute cache, seed-data fallback, remote login and in-memory session.
func Default() *Config {
	cfg := new(Config)
	cfg.applyDefaults()

	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Env.Log.Level == "" {
		cfg.Env.Log.Level = "info"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = defaultHTTPHost
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = defaultHTTPPort
	}
	if len(cfg.HTTP.AllowOrigins) == 0 {
		port := strconv.Itoa(cfg.HTTP.Port)
		cfg.HTTP.AllowOrigins = []string{"http://localhost:" + port, "http://127.0.0.1:" + port}
	}
	if cfg.API == nil {
		cfg.API = &APIConfig{}
	}
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		cfg.API.BaseURL = defaultBaseURL
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")
	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{InvalidateOnWrite: true}
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = defaultCacheTTL
	}
	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if cfg.Catalog.OnError == "" {
		cfg.Catalog.OnError = CatalogOnErrorFallback
	}
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.Mode == "" {
		cfg.Auth.Mode = AuthModeRemote
	}
	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.Driver == "" {
		cfg.Session.Driver = SessionDriverBlob
	}
	if cfg.Session.Driver == SessionDriverBlob && cfg.Session.BucketURL == "" {
		cfg.Session.BucketURL = "mem://"
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"}
	}
	if cfg.Tracing == nil {
		cfg.Tracing = &TracingConfig{}
	}
	if cfg.Env.ServiceName == "" {
		cfg.Env.ServiceName = "storefront"
	}
}

func (cfg *Config) validate() error {
	switch cfg.Catalog.OnError {
	case CatalogOnErrorFallback, CatalogOnErrorPropagate:
	default:
		return errors.Errorf("unknown catalog.onError policy: %s", cfg.Catalog.OnError)
	}

	switch cfg.Auth.Mode {
	case AuthModeRemote, AuthModeDemo, AuthModeRemoteWithDemoFallback:
	default:
		return errors.Errorf("unknown auth.mode: %s", cfg.Auth.Mode)
	}

	switch cfg.Session.Driver {
	case SessionDriverBlob:
	case SessionDriverSQLite:
		if cfg.Session.SQLitePath == "" {
			return errors.New("session.sqlitePath is required for the sqlite driver")
		}
	default:
		return errors.Errorf("unknown session.driver: %s", cfg.Session.Driver)
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
