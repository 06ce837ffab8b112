package bidtree

import (
	"github.com/anacrolix/log"
)

// A loader config that doesn't log, for tests.
func TestingLoaderConfig() *LoaderConfig {
	cfg := NewDefaultLoaderConfig()
	cfg.Logger = log.Default.WithFilterLevel(log.Disabled)
	//cfg.Logger = log.Default.WithNames("test")
	return cfg
}
