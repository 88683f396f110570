package cmd

type Config struct {
	HTTPPort    string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	OpenAPIPath string
	SeedCatalog bool

	PendingOrdersIntervalSeconds  int
	DriverOrdersIntervalSeconds   int
	CustomerOrdersIntervalSeconds int
}
