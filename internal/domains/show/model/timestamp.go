package model

import (
	"bytes"
	"encoding/json"
	"encore/shared/timezone"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Layouts for string encodings without an offset. They are read in the application timezone.
var localLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Timestamp is a show time read from either of the two stored encodings: a human
// readable string, or a seconds and nanoseconds pair. Both normalize to UTC.
type Timestamp struct {
	time.Time
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// pair is the seconds encoding. Older documents prefix the keys with an underscore.
type pair struct {
	Seconds           *int64 `bson:"seconds"      json:"seconds"`
	Nanoseconds       int64  `bson:"nanoseconds"  json:"nanoseconds"`
	LegacySeconds     *int64 `bson:"_seconds"     json:"_seconds"`
	LegacyNanoseconds int64  `bson:"_nanoseconds" json:"_nanoseconds"`
}

func (p pair) toTime() (time.Time, error) {
	switch {
	case p.Seconds != nil:
		return time.Unix(*p.Seconds, p.Nanoseconds).UTC(), nil
	case p.LegacySeconds != nil:
		return time.Unix(*p.LegacySeconds, p.LegacyNanoseconds).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("%w: missing seconds", ErrInvalidTimestamp)
	}
}

// ParseTimestamp reads the string encoding.
func ParseTimestamp(value string) (Timestamp, error) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return NewTimestamp(t), nil
	}

	for _, layout := range localLayouts {
		if t, err := timezone.Parse(layout, value); err == nil {
			return NewTimestamp(t), nil
		}
	}

	return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(time.RFC3339Nano)) //nolint:wrapcheck
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case bytes.Equal(data, []byte("null")):
		*t = Timestamp{}

		return nil
	case len(data) > 0 && data[0] == '"':
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTimestamp, err)
		}

		parsed, err := ParseTimestamp(value)
		if err != nil {
			return err
		}

		*t = parsed

		return nil
	}

	var p pair
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTimestamp, err)
	}

	parsed, err := p.toTime()
	if err != nil {
		return err
	}

	t.Time = parsed

	return nil
}

// MarshalBSONValue always writes a native datetime.
func (t Timestamp) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(t.UTC()) //nolint:wrapcheck
}

func (t *Timestamp) UnmarshalBSONValue(kind bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: kind, Value: data}

	switch kind {
	case bsontype.Null, bsontype.Undefined:
		*t = Timestamp{}

		return nil
	case bsontype.DateTime:
		t.Time = time.UnixMilli(raw.DateTime()).UTC()

		return nil
	case bsontype.String:
		parsed, err := ParseTimestamp(raw.StringValue())
		if err != nil {
			return err
		}

		*t = parsed

		return nil
	case bsontype.EmbeddedDocument:
		var p pair
		if err := raw.Unmarshal(&p); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidTimestamp, err)
		}

		parsed, err := p.toTime()
		if err != nil {
			return err
		}

		t.Time = parsed

		return nil
	default:
		return fmt.Errorf("%w: unsupported bson type %s", ErrInvalidTimestamp, kind)
	}
}
