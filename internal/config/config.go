package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"corretoraBack/internal/models"
)

type Config struct {
	Server struct {
		Address        string   `yaml:"address"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Session struct {
		TTL             time.Duration `yaml:"ttl"`
		CleanupInterval time.Duration `yaml:"cleanup_interval"`
		CookieName      string        `yaml:"cookie_name"`
		SecureCookie    bool          `yaml:"secure_cookie"`
	} `yaml:"session"`
	Listing struct {
		AllowZeroPrice bool `yaml:"allow_zero_price"`
	} `yaml:"listing"`
	Images struct {
		DefaultURL     string `yaml:"default_url"`
		MaxUploadBytes int64  `yaml:"max_upload_bytes"`
	} `yaml:"images"`
	Site Site `yaml:"site"`
}

// Site is the broker's branding shown in the page header and footer.
type Site struct {
	Name      string   `yaml:"name"`
	Tagline   string   `yaml:"tagline"`
	About     string   `yaml:"about"`
	Phone     string   `yaml:"phone"`
	Email     string   `yaml:"email"`
	Instagram string   `yaml:"instagram"`
	Location  string   `yaml:"location"`
	Services  []string `yaml:"services"`
	Year      int      `yaml:"year"`
}

func Default() Config {
	var cfg Config
	cfg.Server.Address = ":4001"
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	cfg.Session.TTL = 2 * time.Hour
	cfg.Session.CleanupInterval = 5 * time.Minute
	cfg.Session.CookieName = "corretora_session"
	cfg.Images.DefaultURL = models.DefaultImageURL
	cfg.Images.MaxUploadBytes = 5 << 20
	cfg.Site = Site{
		Name:      "Cleide Corretora de Imóveis",
		Tagline:   "Realizando sonhos, construindo futuros",
		About:     "Há mais de 10 anos realizando sonhos e conectando pessoas aos seus lares ideais.",
		Phone:     "(61) 99527-7358",
		Email:     "corretoradeimoveis2012@gmail.com",
		Instagram: "@cleidecorretora",
		Location:  "Aguas Lindas, GO",
		Services:  []string{"Venda de Imóveis", "Locação", "Avaliação", "Consultoria"},
		Year:      2024,
	}
	return cfg
}

// LoadConfig reads the YAML file at path on top of Default. A missing file is
// not an error; the defaults are used as they are.
func LoadConfig(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.Server.Address == "" {
		c.Server.Address = def.Server.Address
	}
	if c.Session.TTL == 0 {
		c.Session.TTL = def.Session.TTL
	}
	if c.Session.CleanupInterval == 0 {
		c.Session.CleanupInterval = def.Session.CleanupInterval
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = def.Session.CookieName
	}
	if c.Images.DefaultURL == "" {
		c.Images.DefaultURL = def.Images.DefaultURL
	}
	if c.Images.MaxUploadBytes == 0 {
		c.Images.MaxUploadBytes = def.Images.MaxUploadBytes
	}
	if c.Site.Name == "" {
		c.Site = def.Site
	}
}

func (c Config) Validate() error {
	if c.Session.TTL < 0 || c.Session.CleanupInterval < 0 {
		return errors.New("config: session durations must not be negative")
	}
	if c.Images.MaxUploadBytes < 0 {
		return errors.New("config: images.max_upload_bytes must not be negative")
	}
	return nil
}
