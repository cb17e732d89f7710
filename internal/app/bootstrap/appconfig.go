// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (HTTP ports, TLS,
// logging level, request limits). AppConfig is everything specific to the
// announcement service.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Seed teacher: created at startup when username is set, so a fresh
	// deployment has a usable teacher credential. The password is hashed
	// for the wider system's login flow; this service never checks it.
	SeedTeacherUsername    string
	SeedTeacherDisplayName string
	SeedTeacherPassword    string

	// Audit logging mode for announcement mutations:
	// "all" (db+log), "db", "log", or "off".
	AuditLogAnnouncements string
}
