package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	Gateway struct {
		ListenAddr         string `default:"" env:"GATEWAY_HOST"`
		Port               int    `default:"8080" env:"GATEWAY_PORT"`
		AuthServiceURL     string `default:"http://localhost:8081" env:"AUTH_SERVICE_URL"`
		RequestServiceURL  string `default:"http://localhost:8082" env:"REQUEST_SERVICE_URL"`
		NotifyServiceURL   string `default:"http://localhost:8083" env:"NOTIFY_SERVICE_URL"`
		FrontendOrigin     string `default:"http://localhost:3000" env:"FRONTEND_ORIGIN"`
		RateLimitMax       int    `default:"100" env:"RATE_LIMIT_MAX"`
		RateLimitWindowMin int    `default:"15" env:"RATE_LIMIT_WINDOW_MIN"`
	}
	AuthService struct {
		ListenAddr string `default:"" env:"AUTH_HOST"`
		Port       int    `default:"8081" env:"AUTH_PORT"`
	}
	RequestService struct {
		ListenAddr string `default:"" env:"REQUEST_HOST"`
		Port       int    `default:"8082" env:"REQUEST_PORT"`
	}
	NotifyService struct {
		ListenAddr string `default:"" env:"NOTIFY_HOST"`
		Port       int    `default:"8083" env:"NOTIFY_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"request-mesh" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret      string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec int    `default:"3600" env:"JWT_EXPIRE_IN_SEC"`
		// адреса почты, получающие роль согласующего при входе
		ApproverEmails []string `env:"APPROVER_EMAILS"`
	}
	Google struct {
		ClientID     string `default:"" env:"GOOGLE_CLIENT_ID"`
		ClientSecret string `default:"" env:"GOOGLE_CLIENT_SECRET"`
		RedirectURL  string `default:"http://localhost:8080/auth/google/callback" env:"GOOGLE_REDIRECT_URL"`
	}
	Notify struct {
		ServiceURL   string `default:"http://localhost:8083" env:"NOTIFY_SERVICE_URL"`
		TimeoutInSec int    `default:"5" env:"NOTIFY_TIMEOUT_IN_SEC"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		EmailFrom  string `default:"" env:"EMAIL_FROM"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"request-attachments" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
