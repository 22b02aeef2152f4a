package cases

import (
	"strconv"
	"strings"
)

// fieldCount is the number of leading comma-delimited fields a record uses
const fieldCount = 4

// Record is one parsed data line
type Record struct {
	Date  string
	State string
	Cases int
}

// ParseRecord splits a data line of the form
// date,state,<ignored>,cases[,...] and parses the case count. A rejected
// line still yields whatever leading fields it had: the date once a comma
// delimits it, and the state when only the count is bad.
func ParseRecord(line string) (Record, error) {
	fields := strings.SplitN(line, ",", fieldCount+1)
	if len(fields) < fieldCount {
		var rec Record
		if len(fields) > 1 {
			rec.Date = fields[0]
		}
		return rec, &RecordError{Value: line, Err: ErrMalformedRecord}
	}

	raw := fields[3]
	n, err := strconv.Atoi(raw)
	if err != nil {
		return Record{Date: fields[0], State: fields[1]}, &RecordError{Value: raw, Err: ErrInvalidCount}
	}

	return Record{
		Date:  fields[0],
		State: fields[1],
		Cases: n,
	}, nil
}
