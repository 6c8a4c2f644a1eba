package config

type (
	DriverConfig struct {
		MongoDB   MongoDB
		Firestore Firestore
		Redis     Redis
		Logger    Logger
		RabbitMQ  RabbitMQ
		Minio     Minio
		GCS       GCS
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Firestore struct {
		ProjectID       string
		CredentialsFile string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	GCS struct {
		CredentialsFile string
	}
)
