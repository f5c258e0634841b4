package cmd

import "fmt"

// Config carries everything the process needs from the environment.
type Config struct {
	HTTPPort         string
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSslMode        string
	WorkerSchedule   string
	ClientOutboxSize int
}

// DSN builds the postgres connection string used by both the readiness probe
// and the GORM connection.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
