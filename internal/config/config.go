package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Zoho        Zoho        `mapstructure:",squash"`
	Dispatcher  Dispatcher  `mapstructure:",squash"`
	Engine      Engine      `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	CacheWarmup CacheWarmup `mapstructure:",squash"`
}

type App struct {
	LogLevel    string `mapstructure:"log_level"`
	Environment string `mapstructure:"environment"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port" validate:"required"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Zoho agrupa as credenciais e endereços da API contábil.
type Zoho struct {
	ClientID           string        `mapstructure:"zoho_client_id"`
	ClientSecret       string        `mapstructure:"zoho_client_secret"`
	RefreshToken       string        `mapstructure:"zoho_refresh_token"`
	OrganizationID     string        `mapstructure:"zoho_organization_id"`
	AccountsURL        string        `mapstructure:"zoho_accounts_url" validate:"required,url"`
	APIURL             string        `mapstructure:"zoho_api_url" validate:"required,url"`
	TokenRefreshSkew   time.Duration `mapstructure:"zoho_token_refresh_skew" validate:"gte=0"`
	Timeout            time.Duration `mapstructure:"zoho_timeout" validate:"gt=0"`
	DefaultTokenExpiry time.Duration `mapstructure:"zoho_default_token_expiry" validate:"gt=0"`
}

// Dispatcher controla espaçamento, cache e retentativas das chamadas à API.
type Dispatcher struct {
	Spacing        time.Duration `mapstructure:"dispatch_spacing" validate:"gte=0"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl" validate:"gte=0"`
	RetryAttempts  int           `mapstructure:"retry_attempts" validate:"gte=0,lte=10"`
	RetryBaseDelay time.Duration `mapstructure:"retry_base_delay" validate:"gte=0"`
	PageSize       int           `mapstructure:"page_size" validate:"gt=0,lte=200"`
	MaxPages       int           `mapstructure:"max_pages" validate:"gt=0"`
}

type Engine struct {
	BaseCurrency        string   `mapstructure:"base_currency" validate:"required,len=3"`
	FXRates             []string `mapstructure:"fx_rates"`
	MinimumReserve      string   `mapstructure:"minimum_reserve" validate:"numeric"`
	ForecastHorizonDays int      `mapstructure:"forecast_horizon_days" validate:"oneof=30 45 60 90"`
	CashAvailablePolicy string   `mapstructure:"cash_available_policy" validate:"oneof=canonical with_receivables bank_ceiling"`
}

type Auth struct {
	SecretKey string        `mapstructure:"api_secret_key" validate:"required"`
	TokenTTL  time.Duration `mapstructure:"api_token_ttl" validate:"gt=0"`
}

type CacheWarmup struct {
	CronSchedule string `mapstructure:"cache_warmup_cron"`
	Enabled      bool   `mapstructure:"cache_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("ZOHO_CLIENT_ID", "")
	viper.SetDefault("ZOHO_CLIENT_SECRET", "")
	viper.SetDefault("ZOHO_REFRESH_TOKEN", "")
	viper.SetDefault("ZOHO_ORGANIZATION_ID", "")
	viper.SetDefault("ZOHO_ACCOUNTS_URL", "https://accounts.zoho.com")
	viper.SetDefault("ZOHO_API_URL", "https://www.zohoapis.com/books/v3")
	viper.SetDefault("ZOHO_TOKEN_REFRESH_SKEW", "60s")
	viper.SetDefault("ZOHO_TIMEOUT", "30s")
	viper.SetDefault("ZOHO_DEFAULT_TOKEN_EXPIRY", "1h") // quando a resposta não traz expires_in

	viper.SetDefault("DISPATCH_SPACING", "2s") // intervalo mínimo entre chamadas
	viper.SetDefault("CACHE_TTL", "1h")
	viper.SetDefault("RETRY_ATTEMPTS", 3)
	viper.SetDefault("RETRY_BASE_DELAY", "800ms")
	viper.SetDefault("PAGE_SIZE", 200)
	viper.SetDefault("MAX_PAGES", 50)

	viper.SetDefault("BASE_CURRENCY", "AED")
	viper.SetDefault("FX_RATES", "USD:3.6725")
	viper.SetDefault("MINIMUM_RESERVE", "0")
	viper.SetDefault("FORECAST_HORIZON_DAYS", 30)
	viper.SetDefault("CASH_AVAILABLE_POLICY", "canonical")

	viper.SetDefault("API_SECRET_KEY", "your_secret_key")
	viper.SetDefault("API_TOKEN_TTL", "24h")

	viper.SetDefault("CACHE_WARMUP_CRON", "*/30 * * * *") // a cada 30 minutos
	viper.SetDefault("CACHE_WARMUP_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	if err := decode(config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func decode(config *Config) error {
	return viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
}

// Validate verifica as restrições declaradas nas tags `validate`.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// IsConfigured indica se as credenciais da API contábil foram informadas.
func (z Zoho) IsConfigured() bool {
	return z.ClientID != "" && z.ClientSecret != "" && z.RefreshToken != "" && z.OrganizationID != ""
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
