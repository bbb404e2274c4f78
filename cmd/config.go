package cmd

// Config carries all runtime settings. It is built once at startup from the
// environment and passed down explicitly; nothing reads the environment past
// this point.
type Config struct {
	HTTPPort      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSslMode     string
	JWTSecret     string
	JWTExpMinutes int

	// AutoAssignCron is a cron expression for the background assignment
	// job. Empty disables the job.
	AutoAssignCron string
}
