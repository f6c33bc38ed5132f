package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		// PublicBaseURL is the externally reachable origin of this service.
		// The payment callback URL is built from it, so it must match
		// whatever origin the payment gateway is allowed to redirect to.
		PublicBaseURL string `koanf:"public_base_url"`
		LogLevel      string `koanf:"log_level"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
	} `koanf:"redis"`

	Session struct {
		TTL time.Duration `koanf:"ttl"`
	} `koanf:"session"`

	Upstream struct {
		BaseURL            string        `koanf:"base_url"`
		OrderCreatePath    string        `koanf:"order_create_path"`
		PaymentConfirmPath string        `koanf:"payment_confirm_path"`
		ItemsPath          string        `koanf:"items_path"`
		VendorsPath        string        `koanf:"vendors_path"`
		Timeout            time.Duration `koanf:"timeout"`
	} `koanf:"upstream"`

	Flow struct {
		DisplayDelay    time.Duration `koanf:"display_delay"`
		NotificationTTL time.Duration `koanf:"notification_ttl"`
		PageLimit       int           `koanf:"page_limit"`
	} `koanf:"flow"`

	Security struct {
		StateSecret string        `koanf:"state_secret"`
		StateTTL    time.Duration `koanf:"state_ttl"`
	} `koanf:"security"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	// 1) base
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// 2) env override (dev/staging/prod). Optional: allow missing for local runs.
	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	// 3) environment variables override (prefix BOQBOX_, nested with __)
	// e.g. BOQBOX_UPSTREAM__BASE_URL, BOQBOX_REDIS__PASSWORD
	if err := k.Load(env.Provider("BOQBOX_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "BOQBOX_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Upstream.OrderCreatePath == "" {
		c.Upstream.OrderCreatePath = "/orders/create"
	}
	if c.Upstream.PaymentConfirmPath == "" {
		c.Upstream.PaymentConfirmPath = "/confirm-payment"
	}
	if c.Upstream.ItemsPath == "" {
		c.Upstream.ItemsPath = "/items"
	}
	if c.Upstream.VendorsPath == "" {
		c.Upstream.VendorsPath = "/vendors"
	}
	if c.Upstream.Timeout <= 0 {
		c.Upstream.Timeout = 30 * time.Second
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = 24 * time.Hour
	}
	if c.Flow.DisplayDelay <= 0 {
		c.Flow.DisplayDelay = 2500 * time.Millisecond
	}
	if c.Flow.NotificationTTL <= 0 {
		c.Flow.NotificationTTL = 4 * time.Second
	}
	if c.Flow.PageLimit <= 0 {
		c.Flow.PageLimit = 4
	}
	if c.Security.StateTTL <= 0 {
		c.Security.StateTTL = c.Session.TTL
	}
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.App.PublicBaseURL == "" {
		return fmt.Errorf("app.public_base_url required")
	}
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url required")
	}
	if c.Security.StateSecret == "" {
		return fmt.Errorf("security.state_secret required")
	}
	return nil
}
