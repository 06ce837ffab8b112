package bidtree

import (
	"github.com/pkg/errors"
)

var ErrUnknownBackend = errors.New("unknown index backend")
