package utils

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Application
	AppPort  string `yaml:"APP_PORT"`
	AppURL   string `yaml:"APP_URL"`
	LogLevel string `yaml:"LOG_LEVEL"`
	LogJSON  bool   `yaml:"LOG_JSON"`

	// Database configuration
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`

	// Document store
	MongoURI      string `yaml:"MONGO_URI"`
	MongoDatabase string `yaml:"MONGO_DATABASE"`

	// Local key-value store
	RedisAddr     string `yaml:"REDIS_ADDR"`
	RedisPassword string `yaml:"REDIS_PASSWORD"`
	RedisDB       int    `yaml:"REDIS_DB"`

	// JWT
	JWTSecret string `yaml:"JWT_SECRET"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`

	// Max in-flight recipe lookups per aggregate; 0 means unbounded.
	FanoutLimit int `yaml:"FANOUT_LIMIT"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Set environment variables for keys that should be accessible via os.Getenv
	setEnvIfEmpty("JWT_SECRET", config.JWTSecret)
	setEnvIfEmpty("AWS_S3_BUCKET", config.AWSS3Bucket)
	setEnvIfEmpty("AWS_S3_REGION", config.AWSS3Region)
	setEnvIfEmpty("AWS_ACCESS_KEY", config.AWSAccessKey)
	setEnvIfEmpty("AWS_SECRET_KEY", config.AWSSecretKey)
}

func setEnvIfEmpty(key, value string) {
	if value == "" || os.Getenv(key) != "" {
		return
	}
	os.Setenv(key, value)
}

func getBoolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// GetConfig returns the yaml value for key, falling back to the environment
// when the yaml file left it empty.
func GetConfig(key string) string {
	if v := configValue(key); v != "" {
		return v
	}
	return os.Getenv(key)
}

// GetConfigInt parses GetConfig(key), returning def when unset or malformed.
func GetConfigInt(key string, def int) int {
	v := GetConfig(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: config %s (value: %s) is not an int, using %d\n", key, v, def)
		return def
	}
	return n
}

func configValue(key string) string {
	switch key {
	case "APP_PORT":
		return config.AppPort
	case "APP_URL":
		return config.AppURL
	case "LOG_LEVEL":
		return config.LogLevel
	case "LOG_JSON":
		if !config.LogJSON {
			return ""
		}
		return getBoolString(config.LogJSON)
	case "DB_USER":
		return config.DBUser
	case "DB_NAME":
		return config.DBName
	case "DB_PASSWORD":
		return config.DBPassword
	case "DB_PORT":
		return config.DBPort
	case "DB_HOST":
		return config.DBHost
	case "MONGO_URI":
		return config.MongoURI
	case "MONGO_DATABASE":
		return config.MongoDatabase
	case "REDIS_ADDR":
		return config.RedisAddr
	case "REDIS_PASSWORD":
		return config.RedisPassword
	case "REDIS_DB":
		if config.RedisDB == 0 {
			return ""
		}
		return strconv.Itoa(config.RedisDB)
	case "JWT_SECRET":
		return config.JWTSecret
	case "SMTP_HOST":
		return config.SMTPHost
	case "SMTP_PORT":
		return config.SMTPPort
	case "SMTP_SENDER_NAME":
		return config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return config.SMTPAuthPassword
	case "AWS_S3_BUCKET":
		return config.AWSS3Bucket
	case "AWS_S3_REGION":
		return config.AWSS3Region
	case "AWS_ACCESS_KEY":
		return config.AWSAccessKey
	case "AWS_SECRET_KEY":
		return config.AWSSecretKey
	case "FANOUT_LIMIT":
		if config.FanoutLimit == 0 {
			return ""
		}
		return strconv.Itoa(config.FanoutLimit)
	default:
		return ""
	}
}
