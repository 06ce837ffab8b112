// Package testutil contains fixtures for testing bid loading and indexing.
//
// "sample" is a small monthly sales export in the eBid column layout, including one row with
// an unparseable amount and one row that repeats an earlier Id.
package testutil

import (
	"os"
	"path/filepath"

	"github.com/stretchr/testify/require"
)

const SampleCsvFileName = "sample.csv"

const SampleCsv = `ArticleTitle,ArticleID,Department,CloseDate,WinningBid,InventoryID,VehicleID,ReceiptNumber,Fund
Hoover Steam Vac,98104,General Fund,12/1/2016,$27.00,,,,General Fund
Table,98105,Police,12/1/2016,"$1,250.50",,,,Enterprise
Chair,98100,Parks,12/2/2016,$3.00,,,,General Fund
Lamp,98109,Parks,12/2/2016,oops,,,,General Fund
Desk,98102,Police,12/3/2016,$81.25,,,,Enterprise
Short row,98111
Laptop,98107,IT,12/4/2016,$300.00,,,,Technology
Hoover Steam Vac 2,98104,General Fund,12/5/2016,$31.00,,,,General Fund
`

// Ids of the well formed rows in SampleCsv, sorted.
var SampleIds = []string{"98100", "98102", "98104", "98105", "98107"}

type tt interface {
	require.TestingT
	TempDir() string
}

// Writes SampleCsv into a fresh temporary directory and returns its path.
func WriteSampleCsv(t tt) string {
	return WriteCsv(t, SampleCsvFileName, SampleCsv)
}

func WriteCsv(t tt, name, contents string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
