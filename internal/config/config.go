package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App      `mapstructure:",squash"`
	Server    Server   `mapstructure:",squash"`
	Sheets    Sheets   `mapstructure:",squash"`
	Auth      Auth     `mapstructure:",squash"`
	Reminder  Reminder `mapstructure:",squash"`
	SecretKey string   `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Sheets aponta para a planilha que serve de banco de dados.
type Sheets struct {
	SpreadsheetID   string `mapstructure:"sheets_spreadsheet_id"`
	CredentialsFile string `mapstructure:"sheets_credentials_file"`
}

// Auth guarda a credencial única compartilhada da loja. Em produção usa-se
// o hash bcrypt; a senha em texto plano existe só para rodar local.
type Auth struct {
	SharedPassword     string `mapstructure:"auth_shared_password"`
	SharedPasswordHash string `mapstructure:"auth_shared_password_hash"`
}

type Reminder struct {
	CronSchedule string `mapstructure:"reminder_cron"`
	Enabled      bool   `mapstructure:"reminder_enabled"`
	OverdueDays  int    `mapstructure:"reminder_overdue_days"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("SHEETS_SPREADSHEET_ID", "")
	viper.SetDefault("SHEETS_CREDENTIALS_FILE", "credentials.json")

	viper.SetDefault("SECRET_KEY", "your_secret_key")
	viper.SetDefault("AUTH_SHARED_PASSWORD", "")
	viper.SetDefault("AUTH_SHARED_PASSWORD_HASH", "")

	// Lembrete diário de contas a receber vencidas e malas atrasadas
	viper.SetDefault("REMINDER_CRON", "0 8 * * *") // Todos os dias às 8h
	viper.SetDefault("REMINDER_ENABLED", false)
	viper.SetDefault("REMINDER_OVERDUE_DAYS", 0)

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
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	return config, nil
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
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
