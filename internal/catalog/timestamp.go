package catalog

import (
	"fmt"
	"strconv"
	"time"
)

// Timestamp is a catalog time encoded with TimestampLayout.
type Timestamp struct {
	time.Time
}

func (t Timestamp) String() string {
	return t.Format(TimestampLayout)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("timestamp must be a JSON string: %w", err)
	}
	parsed, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
