//    EcosystemLDA
//    Copyright: BIDS 2016-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package dtm

import (
	"encoding/csv"
	"os"
	"strconv"
)

// SaveTo - write the matrix to a CSV file: first row is the vocabulary,
// every following row is one weighted document instance's term counts
func (m *DocTermMat) SaveTo(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(m.Terms); err != nil {
		return err
	}

	rows, cols := m.Counts.Dims()
	record := make([]string, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			record[c] = strconv.Itoa(int(m.Counts.At(r, c)))
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
