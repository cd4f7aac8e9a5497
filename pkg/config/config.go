package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Firestore FirestoreConfig
	Analytics AnalyticsConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// FirestoreConfig conexión a Cloud Firestore.
type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string // vacío = Application Default Credentials
}

// AnalyticsConfig umbrales de negocio del motor de conciliación. Son política
// comercial ajustable por entorno; los valores por defecto son la política de
// referencia del producto.
type AnalyticsConfig struct {
	TopRetailers         int // retailers que componen el "top" de concentración
	ConcentrationHighPct int // % del top que dispara riesgo alto
	DrainWindowDays      int // ventana móvil del pronóstico de agotamiento
	DrainCriticalDays    int // días restantes bajo los cuales el riesgo es crítico
	DrainLowDays         int // días restantes bajo los cuales el riesgo es bajo
	AgeOldDays           int // edad de catálogo sobre la cual el inventario es "old"
	AgeModerateDays      int // edad sobre la cual es "moderate"
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, FIRESTORE_PROJECT_ID, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "distriventas"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Firestore: FirestoreConfig{
			ProjectID:       getString(v, "FIRESTORE_PROJECT_ID", ""),
			CredentialsFile: getString(v, "FIRESTORE_CREDENTIALS_FILE", ""),
		},
		Analytics: AnalyticsConfig{
			TopRetailers:         getInt(v, "ANALYTICS_TOP_RETAILERS", 3),
			ConcentrationHighPct: getInt(v, "ANALYTICS_CONCENTRATION_HIGH_PCT", 60),
			DrainWindowDays:      getInt(v, "ANALYTICS_DRAIN_WINDOW_DAYS", 7),
			DrainCriticalDays:    getInt(v, "ANALYTICS_DRAIN_CRITICAL_DAYS", 7),
			DrainLowDays:         getInt(v, "ANALYTICS_DRAIN_LOW_DAYS", 30),
			AgeOldDays:           getInt(v, "ANALYTICS_AGE_OLD_DAYS", 90),
			AgeModerateDays:      getInt(v, "ANALYTICS_AGE_MODERATE_DAYS", 30),
		},
	}

	if cfg.Firestore.ProjectID == "" {
		return nil, fmt.Errorf("config: FIRESTORE_PROJECT_ID es obligatorio")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
