package bidtree

import (
	"github.com/anacrolix/log"
)

// Default logger for loaders that don't set their own.
var logger = log.Default.WithNames("bidtree")
