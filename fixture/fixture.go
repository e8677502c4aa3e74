// Package fixture reads event records from YAML.
//
// A fixture is a list of entries:
//
//	- type: WINDOW_RESIZED
//	  timestamp: 1000
//	  fields:
//	    window_id: 1
//	    data1: 800
//	    data2: 600
//	- type: TEXT_INPUT
//	  fields:
//	    text: "hello"
//	- type: 0x8000
//	  fields:
//	    code: 7
//	  data: [ping, 42]
//
// type is an SDL event name (the SDL_EVENT_ prefix is optional) or a
// number. Field names are the SDL member names; list counts such as
// num_mime_types follow from the list and cannot be given. data attaches up
// to two Go values to a user event.
package fixture

import (
	"io"
	"sort"
	"strconv"

	"github.com/elliotmr/gdl3/event"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

type entry struct {
	Type      interface{}            `yaml:"type"`
	Timestamp uint64                 `yaml:"timestamp"`
	Fields    map[string]interface{} `yaml:"fields"`
	Data      []interface{}          `yaml:"data"`
}

// Record is one decoded fixture entry.
type Record struct {
	Event event.Event
	// Data holds the values to attach to a user event.
	Data []interface{}
}

// Load decodes the fixture in r. Text fields are copied into a, which must
// outlive every use of the returned records.
func Load(r io.Reader, a *event.Arena) ([]Record, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read fixture")
	}
	var entries []entry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrap(err, "unable to parse fixture")
	}

	records := make([]Record, 0, len(entries))
	for i, en := range entries {
		rec, err := en.record(a)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %d", i)
		}
		records = append(records, rec)
	}
	return records, nil
}

func (en entry) record(a *event.Arena) (Record, error) {
	t, err := ParseType(en.Type)
	if err != nil {
		return Record{}, err
	}
	rec := Record{Event: event.New(t, en.Timestamp)}
	names := make([]string, 0, len(en.Fields))
	for name := range en.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := event.SetField(&rec.Event, name, en.Fields[name], a); err != nil {
			return Record{}, err
		}
	}
	if len(en.Data) > 0 {
		if !t.IsUser() {
			return Record{}, errors.Errorf("data given for non user event %s", t)
		}
		if len(en.Data) > event.UserSlots {
			return Record{}, errors.Errorf("at most %d data values, got %d", event.UserSlots, len(en.Data))
		}
		rec.Data = en.Data
	}
	return rec, nil
}

// ParseType accepts an SDL event name or an event number.
func ParseType(v interface{}) (event.Type, error) {
	switch x := v.(type) {
	case nil:
		return 0, errors.New("missing event type")
	case uint64:
		if x > uint64(event.Last) {
			return 0, errors.Errorf("event type %d out of range", x)
		}
		return event.Type(x), nil
	case int64:
		if x < 0 || x > int64(event.Last) {
			return 0, errors.Errorf("event type %d out of range", x)
		}
		return event.Type(x), nil
	case string:
		if t, ok := event.TypeByName(x); ok {
			return t, nil
		}
		n, err := strconv.ParseUint(x, 0, 16)
		if err != nil {
			return 0, errors.Errorf("unknown event type %q", x)
		}
		return event.Type(n), nil
	}
	return 0, errors.Errorf("event type must be a name or number, got %T", v)
}
