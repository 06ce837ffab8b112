package bidtree

import (
	"github.com/anacrolix/log"
)

// Column layout of the monthly sales export, zero based.
const (
	DefaultTitleColumn  = 0
	DefaultIdColumn     = 1
	DefaultAmountColumn = 4
	DefaultFundColumn   = 8
)

// Controls how delimited bid data is read. Probably not safe to modify while a load using it is
// in progress.
type LoaderConfig struct {
	TitleColumn  int
	IdColumn     int
	AmountColumn int
	FundColumn   int
	// Field delimiter.
	Comma rune
	// The first row holds column names and is not a bid.
	HasHeader bool
	// Stripped from amounts before parsing.
	CurrencySymbol string
	// Stop at the first malformed row instead of skipping it.
	Strict bool
	Logger log.Logger
}

func NewDefaultLoaderConfig() *LoaderConfig {
	return &LoaderConfig{
		TitleColumn:    DefaultTitleColumn,
		IdColumn:       DefaultIdColumn,
		AmountColumn:   DefaultAmountColumn,
		FundColumn:     DefaultFundColumn,
		Comma:          ',',
		HasHeader:      true,
		CurrencySymbol: "$",
		Logger:         logger,
	}
}

func (me *LoaderConfig) minColumns() int {
	return max(me.TitleColumn, me.IdColumn, me.AmountColumn, me.FundColumn) + 1
}
