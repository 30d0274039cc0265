// Package sphinx decodes Sphinx objects.inv inventory payloads into
// per-source symbol indexes.
package sphinx

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/klauspost/compress/zlib"

	"github.com/AutonomousCat/rtfm"
)

const (
	// versionMagic is the exact first line of a version 2 inventory.
	versionMagic = "# Sphinx inventory version 2"

	// labelLen is the length of the "# Project: " and "# Version: "
	// labels preceding the header values.
	labelLen = len("# Project: ")

	// chunkSize bounds how much inflated data is held before
	// line-splitting begins.
	chunkSize = 16 * 1024
)

// Reader decodes an inventory payload: a four-line plain-text header
// followed by a zlib-compressed table of entries. Lines are produced
// lazily and the stream is not restartable.
//
// A trailing remainder without a final newline is emitted as a last line
// rather than dropped.
type Reader struct {
	// Project and Version are the header values of the decoded payload.
	Project string
	Version string

	zr      io.ReadCloser
	rem     []byte // inflated bytes not yet terminated by a newline
	scratch []byte
	done    bool
}

// NewReader validates the payload header and prepares the compressed entry
// stream. It returns an EFORMAT error for unsupported versions or payloads
// whose table is not zlib compressed.
func NewReader(payload []byte) (*Reader, error) {
	br := bufio.NewReader(bytes.NewReader(payload))

	version, err := readHeaderLine(br)
	if err != nil {
		return nil, err
	}
	if version != versionMagic {
		return nil, rtfm.Errorf(rtfm.EFORMAT, "unsupported inventory version %q", version)
	}

	project, err := readLabeledLine(br, "project")
	if err != nil {
		return nil, err
	}
	prjVersion, err := readLabeledLine(br, "version")
	if err != nil {
		return nil, err
	}

	marker, err := readHeaderLine(br)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(marker, "zlib") {
		return nil, rtfm.Errorf(rtfm.EFORMAT, "inventory table is not zlib compressed")
	}

	zr, err := zlib.NewReader(br)
	if err != nil {
		return nil, rtfm.Errorf(rtfm.EFORMAT, "inventory table is not a zlib stream: %v", err)
	}

	return &Reader{
		Project: project,
		Version: prjVersion,
		zr:      zr,
		scratch: make([]byte, chunkSize),
	}, nil
}

// ReadLine returns the next decoded entry line, or io.EOF once the stream
// is exhausted. Inflation proceeds in chunkSize reads; bytes that have not
// yet seen a newline are held over to the next read.
func (r *Reader) ReadLine() (string, error) {
	for {
		if i := bytes.IndexByte(r.rem, '\n'); i >= 0 {
			line := string(r.rem[:i])
			r.rem = r.rem[i+1:]
			return line, nil
		}

		if r.done {
			if len(r.rem) > 0 {
				line := string(r.rem)
				r.rem = nil
				return line, nil
			}
			return "", io.EOF
		}

		n, err := r.zr.Read(r.scratch)
		if n > 0 {
			r.rem = append(r.rem, r.scratch[:n]...)
		}
		if err == io.EOF {
			r.done = true
			_ = r.zr.Close()
		} else if err != nil {
			return "", rtfm.Errorf(rtfm.EFORMAT, "inflate inventory table: %v", err)
		}
	}
}

// readHeaderLine reads one uncompressed header line with its newline
// stripped.
func readHeaderLine(br *bufio.Reader) (string, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return "", rtfm.Errorf(rtfm.EFORMAT, "inventory header truncated")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// readLabeledLine reads a header line of the form "# <Label>: <value>" and
// returns the value.
func readLabeledLine(br *bufio.Reader, field string) (string, error) {
	line, err := readHeaderLine(br)
	if err != nil {
		return "", err
	}
	if len(line) < labelLen {
		return "", rtfm.Errorf(rtfm.EFORMAT, "inventory %s line too short", field)
	}
	return line[labelLen:], nil
}
