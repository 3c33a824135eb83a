package config

import (
	"bytes"
	"os"
	"strings"

	"github.com/spf13/viper"
)

type AppCfg struct {
	Name string
	Env  string
	Host string
	Port int
}

type LogCfg struct {
	Level string
}

type DBCfg struct {
	DSN         string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

type StorageCfg struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UsePathStyle  bool
	PublicBaseURL string
}

type UploadsCfg struct {
	Dir      string
	MaxBytes int64
}

type StaticCfg struct {
	Dir string
}

type AdminCfg struct {
	Username string
	Password string
}

type VisitorsCfg struct {
	// Mode selects how a tracking call counts: "unique" counts an IP once
	// per day, "every" counts every call.
	Mode string
}

type Config struct {
	App      AppCfg
	Log      LogCfg
	Database DBCfg
	Storage  StorageCfg
	Uploads  UploadsCfg
	Static   StaticCfg
	Admin    AdminCfg
	Visitors VisitorsCfg
}

func Load() (*Config, error) {
	base := viper.New()
	base.SetConfigName("config")
	base.SetConfigType("yaml")
	base.AddConfigPath("./configs")
	base.AddConfigPath(".")
	base.AutomaticEnv()
	base.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	base.SetEnvPrefix("APP") // e.g. APP_APP_PORT -> app.port

	// First assign a default value (effective regardless of whether there is a file or not)
	setDefaults(base)

	// Read the file (if any)
	if err := base.ReadInConfig(); err == nil {
		// After finding the file, manually perform one expansion of ${ENV}, and then parse it.
		path := base.ConfigFileUsed()
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		expanded := os.ExpandEnv(string(raw))

		// Load the expanded content with a new viper and copy the env settings.
		v := viper.New()
		v.SetConfigType("yaml")
		if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
			return nil, err
		}
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.SetEnvPrefix("APP")
		setDefaults(v)

		cfg := new(Config)
		if err := v.Unmarshal(&cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	// No files are also allowed, using only env + default values
	cfg := new(Config)
	if err := base.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "portfolio-api")
	v.SetDefault("app.env", "debug")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 5000)
	v.SetDefault("log.level", "info")
	v.SetDefault("database.maxOpen", 10)
	v.SetDefault("database.maxIdle", 5)
	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("storage.region", "auto")
	v.SetDefault("storage.usePathStyle", true)
	v.SetDefault("uploads.dir", "./uploads")
	v.SetDefault("uploads.maxBytes", 5<<20)
	v.SetDefault("static.dir", "./frontend")
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "password123")
	v.SetDefault("visitors.mode", "unique")
}
