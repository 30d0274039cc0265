package sphinx

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/AutonomousCat/rtfm"
)

// entryRE is the five-field inventory grammar: name, domain:role, priority,
// location, display name. The display name is free text and may contain
// spaces. This grammar mostly comes from the Sphinx repository.
var entryRE = regexp.MustCompile(`^(.+?)\s+(\S*:\S*)\s+(-?\d+)\s+(\S+)\s+(.*)`)

// Entry is one raw inventory record.
type Entry struct {
	Name     string
	Domain   string
	Role     string
	Priority int // carried from the payload; unused downstream
	Location string
	Display  string // "-" means "use Name"
}

// Directive returns the entry's full domain:role directive.
func (e Entry) Directive() string {
	return e.Domain + ":" + e.Role
}

// ParseEntry parses one decoded line into a raw entry. Lines that do not
// match the five-field grammar report ok=false.
func ParseEntry(line string) (Entry, bool) {
	m := entryRE.FindStringSubmatch(strings.TrimRight(line, " \t\r\n"))
	if m == nil {
		return Entry{}, false
	}

	domain, role, _ := strings.Cut(m[2], ":")
	priority, _ := strconv.Atoi(m[3]) // grammar guarantees an integer

	return Entry{
		Name:     m[1],
		Domain:   domain,
		Role:     role,
		Priority: priority,
		Location: m[4],
		Display:  m[5],
	}, true
}

// Normalizer applies a source's skip, placeholder, prefix, and namespace
// rules to raw entries, producing index keys and locations. It carries the
// set of module names already indexed during the pass, so a fresh
// Normalizer is needed per payload.
type Normalizer struct {
	strip   []string
	modules map[string]bool
}

// NewNormalizer returns a Normalizer for the source's rule set. Namespace
// prefixes are applied most specific first.
func NewNormalizer(src rtfm.Source) *Normalizer {
	strip := make([]string, len(src.StripPrefixes))
	copy(strip, src.StripPrefixes)
	sort.SliceStable(strip, func(i, j int) bool {
		return len(strip[i]) > len(strip[j])
	})
	return &Normalizer{
		strip:   strip,
		modules: make(map[string]bool),
	}
}

// Normalize returns the index entry for e, or ok=false when the entry is
// skipped. Duplicate module definitions (first wins), label and opcode
// roles, and std:doc directives denote non-navigable or redundant entries.
func (n *Normalizer) Normalize(e Entry) (rtfm.Entry, bool) {
	if e.Directive() == "py:module" {
		if n.modules[e.Name] {
			return rtfm.Entry{}, false
		}
		n.modules[e.Name] = true
	}

	if e.Role == "label" || e.Role == "opcode" || e.Directive() == "std:doc" {
		return rtfm.Entry{}, false
	}

	// A trailing $ templates the symbol's own name into the location.
	location := e.Location
	if strings.HasSuffix(location, "$") {
		location = location[:len(location)-1] + e.Name
	}

	key := e.Display
	if key == "-" {
		key = e.Name
	}
	if e.Domain == "std" {
		key = e.Role + ":" + key
	}
	for _, prefix := range n.strip {
		key = strings.ReplaceAll(key, prefix, "")
	}

	return rtfm.Entry{Key: key, Location: location}, true
}
