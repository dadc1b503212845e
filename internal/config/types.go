package config

// holds process-wide configuration, read once at startup.
// The token-verification secret (SUPABASE_JWT_SECRET) is validated here
// but read from the environment by internal/auth on each use.
type Config struct {
	DatabaseURL   string // Supabase pooler connection string
	AuthURL       string // base URL of the hosted auth service
	AuthAnonKey   string // public API key sent with auth service requests
	SessionSecret string // cookie signing secret for the edge gate
	Environment   string
	Port          string
}
