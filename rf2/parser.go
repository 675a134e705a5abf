package rf2

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// RF2 relationship file column positions.
const (
	colID = iota
	colEffectiveTime
	colActive
	colModuleID
	colSourceID
	colDestinationID
	colGroup
	colTypeID
	colCharacteristicID
	colModifierID

	columnCount
)

// RowFunc receives each usable relationship row in file order.
// Returning an error stops the parse and propagates the error unchanged.
type RowFunc func(Relationship) error

// Parser reads RF2 relationship snapshot files. Rows that are inactive or
// that carry a characteristic outside the stated/inferred model are skipped;
// everything else must parse cleanly or the parse fails with the offending
// line number.
type Parser struct {
	isaTypeID int64
}

// NewParser creates a Parser with the standard is-a type (IsATypeID).
func NewParser() *Parser {
	return &Parser{isaTypeID: IsATypeID}
}

// WithIsAType overrides the relationship type treated as is-a and returns
// the parser for method chaining. Intended for extensions that relocate the
// hierarchy type; release content uses the default.
func (p *Parser) WithIsAType(typeID int64) *Parser {
	p.isaTypeID = typeID
	return p
}

// ParseFile opens path and parses it with ParseReader.
func (p *Parser) ParseFile(path string, fn RowFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open relationship file: %w", err)
	}
	defer f.Close()

	if err := p.ParseReader(f, fn); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ParseReader parses an RF2 relationship snapshot from r, invoking fn for
// every active stated or inferred row. The header row (starting with "id")
// and blank lines are skipped.
func (p *Parser) ParseReader(r io.Reader, fn RowFunc) error {
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if lineNo == 1 && strings.HasPrefix(line, "id\t") {
			continue
		}

		rel, ok, err := p.parseRow(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if !ok {
			continue
		}
		if err := fn(rel); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading relationship rows: %w", err)
	}
	return nil
}

// parseRow parses one data row. The bool result is false for rows that are
// valid but not part of the stated/inferred model.
func (p *Parser) parseRow(line string) (Relationship, bool, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != columnCount {
		return Relationship{}, false, fmt.Errorf("expected %d columns, got %d", columnCount, len(fields))
	}

	if fields[colActive] != "1" {
		return Relationship{}, false, nil
	}

	characteristic, err := ParseCharacteristic(fields[colCharacteristicID])
	if err != nil {
		if errors.Is(err, ErrUnknownCharacteristic) {
			// Additional or legacy characteristic: not part of either view.
			return Relationship{}, false, nil
		}
		return Relationship{}, false, err
	}

	sourceID, err := parseSCTID("sourceId", fields[colSourceID])
	if err != nil {
		return Relationship{}, false, err
	}
	destinationID, err := parseSCTID("destinationId", fields[colDestinationID])
	if err != nil {
		return Relationship{}, false, err
	}
	typeID, err := parseSCTID("typeId", fields[colTypeID])
	if err != nil {
		return Relationship{}, false, err
	}

	group, err := strconv.Atoi(fields[colGroup])
	if err != nil || group < 0 {
		return Relationship{}, false, fmt.Errorf("invalid relationshipGroup %q", fields[colGroup])
	}

	return newWithIsAType(sourceID, destinationID, typeID, group, characteristic, p.isaTypeID), true, nil
}

func parseSCTID(name, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return id, nil
}
