package bidtree

import (
	"fmt"
)

// A single auction bid. Id is the ordering key.
type Bid struct {
	Id     string
	Title  string
	Fund   string
	Amount float64
}

func (me Bid) String() string {
	return fmt.Sprintf("%s: %s | %.2f | %s", me.Id, me.Title, me.Amount, me.Fund)
}
