package solar

import "fmt"

// TriggerKind labels the four solar-cycle boundary events. A kind names
// both the boundary and the interval it opens.
type TriggerKind int

const (
	Sunrise TriggerKind = iota
	Sunset
	Dusk
	Dawn
)

var kindNames = map[TriggerKind]string{
	Sunrise: "sunrise",
	Sunset:  "sunset",
	Dusk:    "dusk",
	Dawn:    "dawn",
}

// Next returns the cyclic successor in the civil-twilight cycle:
// Sunrise → Sunset → Dusk → Dawn → Sunrise.
func (k TriggerKind) Next() TriggerKind {
	switch k {
	case Sunrise:
		return Sunset
	case Sunset:
		return Dusk
	case Dusk:
		return Dawn
	default:
		return Sunrise
	}
}

func (k TriggerKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TriggerKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler so kinds serialize as
// their lowercase names in TOML and JSON.
func (k TriggerKind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown trigger kind %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *TriggerKind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown trigger kind %q", string(text))
}
