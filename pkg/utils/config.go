package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	TLS     TLSConfig
	Store   StoreConfig
	Assets  AssetsConfig
	Auth    AuthConfig
	Stripe  StripeConfig
	Mailgun MailgunConfig
}

type AppConfig struct {
	Name      string
	HTTPPort  string
	HTTPSPort string
	Debug     bool
	LogPath   string
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type StoreConfig struct {
	DataDir string
}

type AssetsConfig struct {
	PublicDir   string
	TemplateDir string
	MenuCSV     string
}

type AuthConfig struct {
	TokenExpiryHours int
}

type StripeConfig struct {
	SecretKey string
}

type MailgunConfig struct {
	Domain string
	APIKey string
	From   string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "Pizza Delivery")
	viper.SetDefault("HTTP_PORT", "3000")
	viper.SetDefault("HTTPS_PORT", "3001")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("TLS_CERT_FILE", "https/cert.pem")
	viper.SetDefault("TLS_KEY_FILE", "https/key.pem")
	viper.SetDefault("DATA_DIR", ".data")
	viper.SetDefault("PUBLIC_DIR", "public")
	viper.SetDefault("TEMPLATE_DIR", "templates")
	viper.SetDefault("MENU_CSV", "menu-items.csv")
	viper.SetDefault("TOKEN_EXPIRY_HOURS", 1)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:      viper.GetString("APP_NAME"),
			HTTPPort:  viper.GetString("HTTP_PORT"),
			HTTPSPort: viper.GetString("HTTPS_PORT"),
			Debug:     viper.GetBool("DEBUG"),
			LogPath:   viper.GetString("LOG_PATH"),
		},
		TLS: TLSConfig{
			CertFile: viper.GetString("TLS_CERT_FILE"),
			KeyFile:  viper.GetString("TLS_KEY_FILE"),
		},
		Store: StoreConfig{
			DataDir: viper.GetString("DATA_DIR"),
		},
		Assets: AssetsConfig{
			PublicDir:   viper.GetString("PUBLIC_DIR"),
			TemplateDir: viper.GetString("TEMPLATE_DIR"),
			MenuCSV:     viper.GetString("MENU_CSV"),
		},
		Auth: AuthConfig{
			TokenExpiryHours: viper.GetInt("TOKEN_EXPIRY_HOURS"),
		},
		Stripe: StripeConfig{
			SecretKey: viper.GetString("STRIPE_SECRET_KEY"),
		},
		Mailgun: MailgunConfig{
			Domain: viper.GetString("MAILGUN_DOMAIN"),
			APIKey: viper.GetString("MAILGUN_API_KEY"),
			From:   viper.GetString("MAILGUN_FROM"),
		},
	}

	return config, nil
}
