package config

import (
	"os"
	"strings"
)

// AdminAccess is the injected allow-list of admin identities. It is passed
// into the auth service rather than consulted as a package global so tests
// and deployments can supply their own.
type AdminAccess struct {
	Emails  []string
	Domains []string
}

// IsAdminIdentity reports whether an email belongs to an admin, matching
// the full address first and then its domain. Comparison is
// case-insensitive.
func (a AdminAccess) IsAdminIdentity(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	for _, e := range a.Emails {
		if strings.ToLower(e) == email {
			return true
		}
	}
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	domain := email[at+1:]
	for _, d := range a.Domains {
		if strings.ToLower(d) == domain {
			return true
		}
	}
	return false
}

// Config holds all environment-driven settings
type Config struct {
	MongoURI  string
	MongoDB   string
	RedisAddr string
	HTTPPort  string

	AdminUsername string
	AdminPassword string
	JWTSecret     string
	AdminAccess   AdminAccess
}

// Load reads configuration from the environment, with local defaults
func Load() *Config {
	return &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "pulsecheck"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "password123"),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret-key-change-in-production"),
		AdminAccess: AdminAccess{
			Emails:  splitList(os.Getenv("ADMIN_EMAILS")),
			Domains: splitList(os.Getenv("ADMIN_DOMAINS")),
		},
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func splitList(val string) []string {
	if val == "" {
		return nil
	}
	parts := strings.Split(val, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
