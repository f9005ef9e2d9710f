package neighbor

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/newtron-network/bgprecon/pkg/util"
)

const maxLineBytes = 1024 * 1024

// ParseNeighbors reads the pre-migration BGP summary.
// Fields: IP first, AS third, up/down and state/prefix-count last.
func ParseNeighbors(r io.Reader) ([]Record, error) {
	var records []Record
	err := scanFields(r, SourceOldNeighbors, minNeighborFields, func(f []string) {
		records = append(records, Record{
			IP:           f[0],
			AS:           f[2],
			UpDown:       f[len(f)-2],
			StateOrCount: f[len(f)-1],
		})
	})
	return records, err
}

// ParseInterfaces reads the interface table: name, then configured IP.
func ParseInterfaces(r io.Reader) ([]InterfaceBinding, error) {
	var bindings []InterfaceBinding
	err := scanFields(r, SourceOldInterfaces, minInterfaceFields, func(f []string) {
		bindings = append(bindings, InterfaceBinding{Name: f[0], PeerIP: f[1]})
	})
	return bindings, err
}

// ParseVRFs reads the neighbor/VRF table. The fourth field is the neighbor
// IP followed by a comma; the last field is the VRF name.
func ParseVRFs(r io.Reader) ([]VRFBinding, error) {
	var bindings []VRFBinding
	err := scanFields(r, SourceOldVRFs, minVRFFields, func(f []string) {
		bindings = append(bindings, VRFBinding{
			NeighborIP: strings.TrimSuffix(f[3], ","),
			VRF:        f[len(f)-1],
		})
	})
	return bindings, err
}

// ParseNewNeighbors reads the post-migration BGP summary: IP first,
// up/down and state/prefix-count last. A nil reader yields no records.
func ParseNewNeighbors(r io.Reader) ([]NewRecord, error) {
	if r == nil {
		return nil, nil
	}
	var records []NewRecord
	err := scanFields(r, SourceNewNeighbors, minNewNeighborFields, func(f []string) {
		records = append(records, NewRecord{
			IP:           f[0],
			UpDown:       f[len(f)-2],
			StateOrCount: f[len(f)-1],
		})
	})
	return records, err
}

// scanFields splits each non-blank line on runs of whitespace and hands the
// fields to emit. A line with fewer than minFields fields stops the scan
// with a *util.MalformedLineError.
func scanFields(r io.Reader, source Source, minFields int, emit func([]string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < minFields {
			return util.NewMalformedLineError(string(source), lineNum, len(fields), minFields, line)
		}
		emit(fields)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w: %w", source, util.ErrUnreadableInput, err)
	}
	return nil
}
