// Package sociedad resolves raw entity values from the feeds to the legal
// entities the confirmations are issued for.
package sociedad

import (
	"strings"

	"pverdugo/confirma-pagos/internal/textutils"
)

// Tables holds the static entity tables: the SAP company-code map used by the
// utility feeds and the entity-name allow list used by the mall feed.
type Tables struct {
	codes map[string]string
	names map[string]struct{}
}

// NewTables builds Tables from a company-code map and an allowed-name list.
// Code keys are canonicalized to trimmed upper case, names to trimmed form.
func NewTables(codes map[string]string, names []string) *Tables {
	t := &Tables{
		codes: make(map[string]string, len(codes)),
		names: make(map[string]struct{}, len(names)),
	}
	for code, rut := range codes {
		t.codes[strings.ToUpper(strings.TrimSpace(code))] = strings.TrimSpace(rut)
	}
	for _, name := range names {
		t.names[strings.TrimSpace(name)] = struct{}{}
	}
	return t
}

// ResolveCode resolves a SAP company-code cell to the RUT of the entity it
// stands for. The raw value is trimmed and uppercased before lookup; unknown
// codes report not-ok so the caller drops the row instead of inventing an
// entity.
func (t *Tables) ResolveCode(raw string) (string, bool) {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if key == "" {
		return "", false
	}
	rut, ok := t.codes[key]
	return rut, ok
}

// AllowName reports whether a display name belongs to one of the group's
// entities. Comparison is exact after trimming.
func (t *Tables) AllowName(raw string) bool {
	_, ok := t.names[strings.TrimSpace(raw)]
	return ok
}

// CodeCount returns the number of company codes loaded.
func (t *Tables) CodeCount() int {
	return len(t.codes)
}

// NameCount returns the number of allowed entity names loaded.
func (t *Tables) NameCount() int {
	return len(t.names)
}

// ResolveDirect resolves an entity cell that already carries the entity
// value. The value passes through verbatim; cells that are blank or the
// literal "nan" report not-ok.
func ResolveDirect(raw string) (string, bool) {
	if textutils.IsBlankOrNaN(raw) {
		return "", false
	}
	return raw, true
}
