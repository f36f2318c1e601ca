package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	JWTSecret  string
	// ReconcileCronSpec is a standard five-field cron expression.
	ReconcileCronSpec string
}
