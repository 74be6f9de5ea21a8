package providers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"dashd/internal/structures"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("logger.level", "DASHD_LOG_LEVEL")
	viper.BindEnv("webServer.port", "PORT")
	viper.BindEnv("collector.interval", "DASHD_COLLECT_INTERVAL")
	viper.BindEnv("cache.enabled", "DASHD_CACHE_ENABLED")
	viper.BindEnv("cache.size", "DASHD_CACHE_SIZE")
	viper.BindEnv("store.dir", "SAVEFOLDER")
	viper.BindEnv("store.region", "AWS_REGION")
	viper.BindEnv("store.bucket", "AWS_S3_BUCKET", "BUCKET_NAME")
	viper.BindEnv("store.table", "DYNAMODB_TABLE_NAME")
	viper.BindEnv("mirror.bucket", "AWS_S3_BUCKET", "BUCKET_NAME")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "DashboardStatsDaemon"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
