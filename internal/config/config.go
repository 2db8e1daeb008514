package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jellydator/validation"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidConfig error = errors.New("invalid configuration")

const (
	BackendDocument = "document"
	BackendPostgres = "postgres"

	NamingUnique = "unique"
	NamingLegacy = "legacy"
)

const (
	apiPortEnvKey            = "API_PORT"
	logLevelEnvKey           = "LOG_LEVEL"
	credentialsBackendEnvKey = "CREDENTIALS_BACKEND"
	credentialsFileEnvKey    = "CREDENTIALS_FILE"
	dbConnEnvKey             = "DB_CONNECTION_URL"
	bcryptCostEnvKey         = "BCRYPT_COST"
	uploadDirEnvKey          = "UPLOAD_DIR"
	userUploadsDirEnvKey     = "USER_UPLOADS_DIR"
	generatedDirEnvKey       = "GENERATED_DIR"
	namingPolicyEnvKey       = "NAMING_POLICY"
	publicBaseURLEnvKey      = "PUBLIC_BASE_URL"
	fetchTimeoutEnvKey       = "FETCH_TIMEOUT"
	fetchMaxBytesEnvKey      = "FETCH_MAX_BYTES"
	maxUploadBytesEnvKey     = "MAX_UPLOAD_BYTES"
	maxUploadFilesEnvKey     = "MAX_UPLOAD_FILES"
	corsOriginEnvKey         = "CORS_ORIGIN"
)

type App struct {
	Port               string
	LogLevel           string
	CredentialsBackend string
	CredentialsFile    string
	DBConnectionURL    string
	BcryptCost         int
	UploadDir          string
	UserUploadsDir     string
	GeneratedDir       string
	NamingPolicy       string
	PublicBaseURL      string
	FetchTimeout       time.Duration
	FetchMaxBytes      int64
	MaxUploadBytes     int64
	MaxUploadFiles     int
	CORSOrigin         string
}

// NewApp reads the service configuration from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables take precedence over it.
func NewApp() (App, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return App{}, fmt.Errorf("load .env file: %w", err)
	}

	app := App{
		Port:               lookup(apiPortEnvKey, "5000"),
		LogLevel:           lookup(logLevelEnvKey, "info"),
		CredentialsBackend: lookup(credentialsBackendEnvKey, BackendDocument),
		CredentialsFile:    lookup(credentialsFileEnvKey, "database/credentials.json"),
		DBConnectionURL:    lookup(dbConnEnvKey, ""),
		UploadDir:          lookup(uploadDirEnvKey, "uploads"),
		UserUploadsDir:     lookup(userUploadsDirEnvKey, "useruploads"),
		GeneratedDir:       lookup(generatedDirEnvKey, "generated"),
		NamingPolicy:       lookup(namingPolicyEnvKey, NamingUnique),
		PublicBaseURL:      lookup(publicBaseURLEnvKey, ""),
		CORSOrigin:         lookup(corsOriginEnvKey, "*"),
	}

	var err error
	if app.BcryptCost, err = lookupInt(bcryptCostEnvKey, bcrypt.DefaultCost); err != nil {
		return App{}, err
	}
	if app.MaxUploadFiles, err = lookupInt(maxUploadFilesEnvKey, 10); err != nil {
		return App{}, err
	}
	if app.FetchMaxBytes, err = lookupInt64(fetchMaxBytesEnvKey, 10<<20); err != nil {
		return App{}, err
	}
	if app.MaxUploadBytes, err = lookupInt64(maxUploadBytesEnvKey, 32<<20); err != nil {
		return App{}, err
	}
	if app.FetchTimeout, err = lookupDuration(fetchTimeoutEnvKey, 10*time.Second); err != nil {
		return App{}, err
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("%w: %w", errInvalidConfig, err)
	}

	return app, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required),
		validation.Field(&a.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&a.CredentialsBackend, validation.Required, validation.In(BackendDocument, BackendPostgres)),
		validation.Field(&a.CredentialsFile, validation.When(a.CredentialsBackend == BackendDocument, validation.Required)),
		validation.Field(&a.DBConnectionURL, validation.When(a.CredentialsBackend == BackendPostgres, validation.Required)),
		validation.Field(&a.BcryptCost, validation.Min(bcrypt.MinCost), validation.Max(bcrypt.MaxCost)),
		validation.Field(&a.UploadDir, validation.Required),
		validation.Field(&a.UserUploadsDir, validation.Required),
		validation.Field(&a.GeneratedDir, validation.Required),
		validation.Field(&a.NamingPolicy, validation.Required, validation.In(NamingUnique, NamingLegacy)),
		validation.Field(&a.FetchTimeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&a.FetchMaxBytes, validation.Required, validation.Min(int64(1))),
		validation.Field(&a.MaxUploadBytes, validation.Required, validation.Min(int64(1))),
		validation.Field(&a.MaxUploadFiles, validation.Required, validation.Min(1)),
	)
}

func lookup(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func lookupInt(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errInvalidConfig, key, err)
	}
	return n, nil
}

func lookupInt64(key string, def int64) (int64, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errInvalidConfig, key, err)
	}
	return n, nil
}

func lookupDuration(key string, def time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", errInvalidConfig, key, err)
	}
	return d, nil
}
