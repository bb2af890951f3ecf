package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App    `mapstructure:",squash"`
	Server    Server `mapstructure:",squash"`
	GSC       GSC    `mapstructure:",squash"`
	Auth      Auth   `mapstructure:",squash"`
	Report    Report `mapstructure:",squash"`
	SecretKey string `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// GSC holds the Google Search Console API credentials. The access token
// and its deadline are runtime state managed by the token manager, not
// configuration input.
type GSC struct {
	BaseURL        string    `mapstructure:"gsc_base_url"`
	TokenURL       string    `mapstructure:"gsc_token_url"`
	ClientID       string    `mapstructure:"gsc_client_id"`
	ClientSecret   string    `mapstructure:"gsc_client_secret"`
	RefreshToken   string    `mapstructure:"gsc_refresh_token"`
	AccessToken    string    `mapstructure:"gsc_access_token"`
	TokenExpiresAt time.Time `mapstructure:"-"`
}

type Auth struct {
	Secret           string `mapstructure:"auth_secret"`
	UserEmail        string `mapstructure:"auth_user_email"`
	UserPasswordHash string `mapstructure:"auth_user_password_hash"`
}

// Report carries the dashboard defaults: selectable day windows, row
// limits, top-N sizes and the locale-dependent labels that mean
// "all values" in the device and country selectors.
type Report struct {
	DayWindowsRaw   string   `mapstructure:"report_day_windows"`
	DayWindows      []int    `mapstructure:"-"`
	DefaultDays     int      `mapstructure:"report_default_days"`
	DefaultRowLimit int      `mapstructure:"report_default_row_limit"`
	DefaultTopN     int      `mapstructure:"report_default_top_n"`
	TrendCandidates int      `mapstructure:"report_trend_candidates"`
	AllFilterLabels []string `mapstructure:"report_all_filter_labels"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("GSC_BASE_URL", "https://www.googleapis.com/webmasters/v3")
	viper.SetDefault("GSC_TOKEN_URL", "https://oauth2.googleapis.com/token")
	viper.SetDefault("GSC_CLIENT_ID", "your_client_id")
	viper.SetDefault("GSC_CLIENT_SECRET", "your_client_secret")
	viper.SetDefault("GSC_REFRESH_TOKEN", "your_refresh_token")
	viper.SetDefault("GSC_ACCESS_TOKEN", "") // ONLY LOCAL

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_USER_EMAIL", "admin@example.com")
	viper.SetDefault("AUTH_USER_PASSWORD_HASH", "")

	viper.SetDefault("REPORT_DAY_WINDOWS", "7,30,90,180")
	viper.SetDefault("REPORT_DEFAULT_DAYS", 30)
	viper.SetDefault("REPORT_DEFAULT_ROW_LIMIT", 1000)
	viper.SetDefault("REPORT_DEFAULT_TOP_N", 10)
	viper.SetDefault("REPORT_TREND_CANDIDATES", 50)
	viper.SetDefault("REPORT_ALL_FILTER_LABELS", "all,全部")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper successfully")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Report.DayWindows = parseDayWindows(config.Report.DayWindowsRaw)
	if len(config.Report.DayWindows) == 0 {
		config.Report.DayWindows = []int{7, 30, 90, 180}
	}

	return config, nil
}

// parseDayWindows turns "7,30,90" into the selectable window lengths,
// skipping anything that is not a positive integer.
func parseDayWindows(raw string) []int {
	windows := make([]int, 0, 4)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		days, err := strconv.Atoi(part)
		if err != nil || days <= 0 {
			logrus.Warnf("Ignoring invalid day window value: %q", part)
			continue
		}

		windows = append(windows, days)
	}

	return windows
}

// Helper to load the .env file with godotenv.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Could not determine the current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Warn("Could not load a .env file from any known location")
}
