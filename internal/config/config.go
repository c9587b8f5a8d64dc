package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/cloud-ru/smb-finance-go/internal/projection"
)

// Config содержит конфигурацию сервера
type Config struct {
	Port              int
	MaxPrincipal      float64
	MaxCapacity       float64
	MaxMonths         int
	MaxRate           float64
	MaxROI            float64
	MaxHorizon        int
	DefaultHorizon    int
	MaxTransactions   int
	PriceAdjustment   float64
	CostAdjustment    float64
	GeneralInflation  float64
	EfficiencyGain    float64
	DevaluationExpect float64
	OTELEndpoint      string
	OTELServiceName   string
	LogLevel          string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	defaults := projection.DefaultAssumptions()

	cfg := &Config{
		Port:              getEnvInt("PORT", 8000),
		MaxPrincipal:      getEnvFloat("MAX_PRINCIPAL", 1e12),
		MaxCapacity:       getEnvFloat("MAX_CAPACITY", 1e12),
		MaxMonths:         getEnvInt("MAX_MONTHS", 600),
		MaxRate:           getEnvFloat("MAX_RATE", 500),
		MaxROI:            getEnvFloat("MAX_ROI", 1000),
		MaxHorizon:        getEnvInt("MAX_HORIZON", 60),
		DefaultHorizon:    getEnvInt("DEFAULT_HORIZON", 12),
		MaxTransactions:   getEnvInt("MAX_TRANSACTIONS", 100000),
		PriceAdjustment:   getEnvFloat("PRICE_ADJUSTMENT", defaults.MonthlyPriceAdjustment),
		CostAdjustment:    getEnvFloat("COST_ADJUSTMENT", defaults.MonthlyCostAdjustment),
		GeneralInflation:  getEnvFloat("GENERAL_INFLATION", defaults.MonthlyGeneralInflation),
		EfficiencyGain:    getEnvFloat("EFFICIENCY_GAIN", defaults.MonthlyEfficiencyGain),
		DevaluationExpect: getEnvFloat("DEVALUATION_EXPECTATION", defaults.DevaluationExpectation),
		OTELEndpoint:      getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName:   getEnvString("OTEL_SERVICE_NAME", "smb-finance-server"),
		LogLevel:          getEnvString("LOG_LEVEL", "INFO"),
	}

	return cfg, nil
}

// Assumptions возвращает экономические допущения по умолчанию из конфигурации
func (c *Config) Assumptions() projection.Assumptions {
	return projection.Assumptions{
		MonthlyPriceAdjustment:  c.PriceAdjustment,
		MonthlyCostAdjustment:   c.CostAdjustment,
		MonthlyGeneralInflation: c.GeneralInflation,
		MonthlyEfficiencyGain:   c.EfficiencyGain,
		DevaluationExpectation:  c.DevaluationExpect,
	}
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
