package providers

import (
	"fmt"
	"time"

	"github.com/gookit/validate"

	"dashd/internal/models"
	"dashd/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return v.Errors.OneError()
	}

	switch cv.conf.Store.Backend {
	case "file":
		if cv.conf.Store.Dir == "" {
			return fmt.Errorf("store.dir is required for the file backend")
		}
	case "s3":
		if cv.conf.Store.Bucket == "" || cv.conf.Store.Region == "" {
			return fmt.Errorf("store.bucket and store.region are required for the s3 backend")
		}
	case "dynamodb":
		if cv.conf.Store.Table == "" || cv.conf.Store.Region == "" {
			return fmt.Errorf("store.table and store.region are required for the dynamodb backend")
		}
	}

	if cv.conf.Mirror.Enabled && cv.conf.Mirror.Bucket == "" {
		return fmt.Errorf("mirror.bucket is required when mirroring is enabled")
	}

	if tz := cv.conf.Collector.Timezone; tz != "" {
		if _, err := time.LoadLocation(tz); err != nil {
			return fmt.Errorf("collector.timezone: %w", err)
		}
	}

	for _, t := range cv.conf.Collector.Types {
		if _, err := models.ParseStatType(t); err != nil {
			return fmt.Errorf("collector.types: %w", err)
		}
	}
	for t := range cv.conf.Collector.Overrides {
		if _, err := models.ParseStatType(t); err != nil {
			return fmt.Errorf("collector.overrides: %w", err)
		}
	}

	return nil
}
