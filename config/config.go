package config

import (
	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type MongoConfig struct {
	URI    string `mapstructure:"uri"`
	DBName string `mapstructure:"dbName"`
}

type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration string `mapstructure:"expiration"`
}

// AdminConfig is the single back-office account. PasswordHash (bcrypt) wins
// over the plaintext Password when both are set.
type AdminConfig struct {
	Email        string `mapstructure:"email"`
	Password     string `mapstructure:"password"`
	PasswordHash string `mapstructure:"passwordHash"`
}

// CompanyConfig is where intake notifications are addressed.
type CompanyConfig struct {
	Email string `mapstructure:"email"`
	Phone string `mapstructure:"phone"`
}

type S3Config struct {
	Bucket           string `mapstructure:"bucket"`
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"accessKeyID"`
	SecretAccessKey  string `mapstructure:"secretAccessKey"`
	CloudFrontDomain string `mapstructure:"cloudFrontDomain"`
}

type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

type UploadConfig struct {
	Dir     string `mapstructure:"dir"`
	BaseURL string `mapstructure:"baseURL"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Mongo   MongoConfig   `mapstructure:"mongo"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	Admin   AdminConfig   `mapstructure:"admin"`
	Company CompanyConfig `mapstructure:"company"`
	S3      S3Config      `mapstructure:"s3"`
	Data    DataConfig    `mapstructure:"data"`
	Upload  UploadConfig  `mapstructure:"upload"`
	Log     LogConfig     `mapstructure:"log"`
}

// LoadConfig reads config.yaml from path and overrides it with environment
// variables. A missing file is fine; env-only deployments are supported.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	viper.BindEnv("server.port", "SERVER_PORT")
	viper.BindEnv("mongo.uri", "MONGO_URI")
	viper.BindEnv("mongo.dbName", "MONGO_DBNAME")
	viper.BindEnv("jwt.secret", "JWT_SECRET")
	viper.BindEnv("jwt.expiration", "JWT_EXPIRATION")
	viper.BindEnv("admin.email", "ADMIN_EMAIL")
	viper.BindEnv("admin.password", "ADMIN_PASSWORD")
	viper.BindEnv("admin.passwordHash", "ADMIN_PASSWORD_HASH")
	viper.BindEnv("company.email", "COMPANY_EMAIL")
	viper.BindEnv("company.phone", "COMPANY_PHONE")
	viper.BindEnv("s3.bucket", "S3_BUCKET")
	viper.BindEnv("s3.region", "S3_REGION")
	viper.BindEnv("s3.accessKeyID", "S3_ACCESS_KEY_ID")
	viper.BindEnv("s3.secretAccessKey", "S3_SECRET_ACCESS_KEY")
	viper.BindEnv("s3.cloudFrontDomain", "S3_CLOUDFRONT_DOMAIN")
	viper.BindEnv("data.dir", "DATA_DIR")
	viper.BindEnv("upload.dir", "UPLOAD_DIR")
	viper.BindEnv("upload.baseURL", "UPLOAD_BASE_URL")
	viper.BindEnv("log.level", "LOG_LEVEL")

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("mongo.dbName", "foodtrucks")
	viper.SetDefault("admin.email", "admin@foodtrucks.ma")
	viper.SetDefault("data.dir", "./data")
	viper.SetDefault("upload.dir", "./public/uploads")
	viper.SetDefault("upload.baseURL", "/uploads")
	viper.SetDefault("log.level", "info")

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
