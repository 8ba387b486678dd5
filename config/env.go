package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	defaultAppPort       = "8080"
	defaultAppEnv        = "local"
	defaultDataDir       = "data"
	defaultJWTSecret     = "change-me-in-production"
	defaultAdminUsername = "admin"
	defaultRedisAddr     = "localhost:6379"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads config/app.json and .env once and caches the merged result.
// Missing files are not an error; defaults apply.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFromFiles("config/app.json", ".env")
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"APP_PORT":            defaultAppPort,
		"APP_ENV":             defaultAppEnv,
		"DATA_DIR":            defaultDataDir,
		"JWT_SECRET":          defaultJWTSecret,
		"ADMIN_USERNAME":      defaultAdminUsername,
		"ADMIN_PASSWORD":      "",
		"ADMIN_PASSWORD_HASH": "",
		"REDIS_ADDR":          "",
		"REDIS_PASSWORD":      "",
		"MONGO_URI":           "",
	}
}

func AppPort() string {
	_ = Load()
	return get("APP_PORT", defaultAppPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// DataDir is the directory holding the collection files
// (products.json, orders.json, contacts.json), relative to the storage root.
func DataDir() string {
	_ = Load()
	return get("DATA_DIR", defaultDataDir)
}

func JWTSecret() string {
	_ = Load()
	return get("JWT_SECRET", defaultJWTSecret)
}

func AdminUsername() string {
	_ = Load()
	return get("ADMIN_USERNAME", defaultAdminUsername)
}

// AdminPasswordHash returns the bcrypt hash of the admin password.
// ADMIN_PASSWORD (plain text) is accepted for local development only;
// production deployments must set ADMIN_PASSWORD_HASH.
func AdminPasswordHash() string {
	_ = Load()
	return get("ADMIN_PASSWORD_HASH", "")
}

func AdminPassword() string {
	_ = Load()
	return get("ADMIN_PASSWORD", "")
}

func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", "")
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

// MongoURI enables the MongoDB log handler when non-empty.
func MongoURI() string {
	_ = Load()
	return get("MONGO_URI", "")
}

// ── Storage ──────────────────────────────────────────────────────────────────

func StorageDefault() string {
	_ = Load()
	return get("STORAGE_DISK", "local")
}

func StorageLocalRoot() string {
	_ = Load()
	return get("STORAGE_LOCAL_ROOT", "storage")
}

func StorageBackupDisk() string {
	_ = Load()
	return get("BACKUP_DISK", "")
}

func StorageS3Bucket() string   { _ = Load(); return get("S3_BUCKET", "") }
func StorageS3Region() string   { _ = Load(); return get("S3_REGION", "us-east-1") }
func StorageS3Key() string      { _ = Load(); return get("S3_KEY", "") }
func StorageS3Secret() string   { _ = Load(); return get("S3_SECRET", "") }
func StorageS3Endpoint() string { _ = Load(); return get("S3_ENDPOINT", "") }
func StorageS3URL() string      { _ = Load(); return get("S3_URL", "") }

// ── Storefront client ────────────────────────────────────────────────────────

// APIBaseURL is the order API base used by the storefront client.
// Mirrors the browser's local-storage override key.
func APIBaseURL() string {
	_ = Load()
	return get("API_BASE_URL", "http://localhost:8080")
}

// ClientStateDir is where the storefront client keeps its local order history.
func ClientStateDir() string {
	_ = Load()
	return get("CLIENT_STATE_DIR", "client-state")
}

func loadFromFiles(configPath, envPath string) error {
	loaded := defaultValues()

	if err := mergeJSONConfig(configPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	if err := mergeDotEnv(envPath, loaded); err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()

	return nil
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]interface{}
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}

		k := strings.ToUpper(strings.TrimSpace(key))
		if k == "" {
			continue
		}
		out[k] = strings.TrimSpace(s)
	}

	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		idx := strings.IndexByte(line, '=')
		if idx <= 0 {
			continue
		}

		key := strings.ToUpper(strings.TrimSpace(line[:idx]))
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"'`)
		if key == "" {
			continue
		}
		out[key] = value
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return nil
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}

	return fallback
}

// Get reads any config key by name with an optional fallback.
// Keys from .env and app.json are available after config.Load().
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}

// Set overrides a single key in-process. Intended for tests.
func Set(key, value string) {
	_ = Load()
	mu.Lock()
	values[strings.ToUpper(key)] = value
	mu.Unlock()
}
