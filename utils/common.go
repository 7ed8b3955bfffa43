// Common package holds the sequence I/O shared by the motif tools.
// Reading goes through shenwei356/bio so plain and gzipped FASTA are handled alike.
package common

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

// ErrNoSequences is returned when a FASTA file holds no records.
var ErrNoSequences = errors.New("no sequences found")

// Sequence is one FASTA record reduced to what the motif tools need.
type Sequence struct {
	ID       string
	Residues string
}

// ReadSequences loads every record of a FASTA file in file order.
// Record IDs are the first whitespace-delimited word of the header.
// Residues are kept verbatim; no alphabet is enforced.
func ReadSequences(file string) ([]Sequence, error) {
	if _, err := os.Stat(file); err != nil {
		return nil, errors.Wrapf(err, "input not found: %s", file)
	}

	reader, err := fastx.NewReader(seq.Unlimit, file, "")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", file)
	}
	defer reader.Close()

	var seqs []Sequence
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, errors.Wrapf(err, "read record %d in %s", len(seqs)+1, file)
		}
		seqs = append(seqs, Sequence{
			ID:       string(record.ID),
			Residues: string(record.Seq.Seq),
		})
	}
	if len(seqs) == 0 {
		return nil, errors.Wrap(ErrNoSequences, file)
	}
	return seqs, nil
}

// FastaRecord is a header/body pair ready to be written.
type FastaRecord struct {
	Header   string
	Sequence string
}

// WriteFasta writes records as ">header\nsequence\n", one line per body.
func WriteFasta(w io.Writer, records []FastaRecord) error {
	bw := bufio.NewWriter(w)
	for _, rec := range records {
		if _, err := fmt.Fprintf(bw, ">%s\n%s\n", rec.Header, rec.Sequence); err != nil {
			return err
		}
	}
	return bw.Flush()
}
