// Package testutil provides testing utilities for dataframe.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible column names, row data and CSV text
// without depending on the dataframe package itself.
//
//	rng := testutil.NewRNG(seed)
//	names := testutil.Names(3)            // c0, c1, c2
//	rows := rng.IntRows(100, 3, 1000)     // 100 rows in [0, 1000)
//	text := testutil.CSV(names, rows, ',')
package testutil
