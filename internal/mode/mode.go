package mode

// Kind identifies the active editor mode.
type Kind int

const (
	KindNormal Kind = iota
	KindInsert
	KindCommand
)

func (k Kind) String() string {
	switch k {
	case KindInsert:
		return "INSERT"
	case KindCommand:
		return "COMMAND"
	default:
		return "NORMAL"
	}
}

// Marker is the first character of every pending command line.
const Marker = ':'

// Mode is the active mode. Only Command mode carries pending text; the zero
// value is Normal.
type Mode struct {
	kind    Kind
	pending []rune
}

func Normal() Mode { return Mode{kind: KindNormal} }

func Insert() Mode { return Mode{kind: KindInsert} }

// Command returns Command mode with a pending text of just the marker.
func Command() Mode {
	return Mode{kind: KindCommand, pending: []rune{Marker}}
}

func (m Mode) Kind() Kind { return m.kind }

func (m Mode) Is(k Kind) bool { return m.kind == k }

// Pending returns the command text typed so far, including the marker.
// It is empty outside Command mode.
func (m Mode) Pending() string {
	if m.kind != KindCommand {
		return ""
	}
	return string(m.pending)
}

// Append adds r to the pending command text. Outside Command mode it returns
// m unchanged.
func (m Mode) Append(r rune) Mode {
	if m.kind != KindCommand {
		return m
	}
	pending := make([]rune, len(m.pending), len(m.pending)+1)
	copy(pending, m.pending)
	return Mode{kind: KindCommand, pending: append(pending, r)}
}

// Backspace drops the last pending character. The marker is never removed.
func (m Mode) Backspace() Mode {
	if m.kind != KindCommand || len(m.pending) <= 1 {
		return m
	}
	pending := make([]rune, len(m.pending)-1)
	copy(pending, m.pending)
	return Mode{kind: KindCommand, pending: pending}
}

func (m Mode) String() string {
	return m.kind.String()
}
