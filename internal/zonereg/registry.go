package zonereg

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/jroosing/bindman/internal/atomicfile"
	"github.com/jroosing/bindman/internal/lockfile"
)

var (
	// ErrIncludeMissing reports an absent include document when it is
	// required to pre-exist.
	ErrIncludeMissing = errors.New("managed include document missing")
	// ErrZoneDirMissing reports an absent managed zone directory.
	ErrZoneDirMissing = errors.New("managed zone directory missing")
	// ErrZoneNotFound reports a zone name with no stanza in the
	// include document.
	ErrZoneNotFound = errors.New("zone not managed")
)

var blankRunRE = regexp.MustCompile(`\n{3,}`)

// Registry performs locked read-modify-write edits over the zone-stanza
// include document. Every call re-reads the document from disk; nothing
// is cached between operations. The registry never validates or reloads
// the nameserver — write first, then the caller validates.
type Registry struct {
	// IncludePath is the stanza include document, referenced by
	// named.conf.local.
	IncludePath string
	// ZoneDir is the directory holding managed record files.
	ZoneDir string
	// MastersACL names the ACL of primary servers referenced by
	// secondary stanzas.
	MastersACL string
	// RequireInclude makes a missing include document an error instead
	// of an implicit empty document.
	RequireInclude bool
}

func (r *Registry) ready() error {
	if r.RequireInclude {
		if _, err := os.Stat(r.IncludePath); err != nil {
			return fmt.Errorf("%w: %s", ErrIncludeMissing, r.IncludePath)
		}
	}
	if _, err := os.Stat(r.ZoneDir); err != nil {
		return fmt.Errorf("%w: %s", ErrZoneDirMissing, r.ZoneDir)
	}
	return nil
}

// Read returns the raw include document text.
func (r *Registry) Read() (string, error) {
	if err := r.ready(); err != nil {
		return "", err
	}
	raw, err := os.ReadFile(r.IncludePath)
	if err != nil {
		if os.IsNotExist(err) {
			if !r.RequireInclude {
				// Not required to pre-exist: an absent document reads
				// as empty and is created on the first upsert.
				return "", nil
			}
			return "", fmt.Errorf("%w: %s", ErrIncludeMissing, r.IncludePath)
		}
		return "", err
	}
	return string(raw), nil
}

// List parses the current include document into stanzas by zone name.
func (r *Registry) List() (map[string]Stanza, error) {
	text, err := r.Read()
	if err != nil {
		return nil, err
	}
	return ParseStanzas(text), nil
}

// Upsert writes the canonical stanza for the zone. An existing stanza
// is replaced at the exact occurrence the parser matched; a new zone is
// appended after a blank separating line. The include lock is held for
// the whole read-modify-write span and the document is replaced
// atomically.
func (r *Registry) Upsert(name, filePath string, allowTransfer, alsoNotify []string, role Role) error {
	if err := r.ready(); err != nil {
		return err
	}

	lock, err := lockfile.LockPath(r.IncludePath)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	text, err := r.Read()
	if err != nil {
		return err
	}
	stanzas := ParseStanzas(text)
	stanza := BuildStanza(name, filePath, allowTransfer, alsoNotify, role, r.MastersACL)

	var newText string
	if existing, ok := stanzas[name]; ok {
		newText = text[:existing.begin] + stanza + text[existing.end:]
	} else {
		newText = strings.TrimLeft(strings.TrimRight(text, " \t\r\n")+"\n\n"+stanza, " \t\r\n")
	}
	return atomicfile.Write(r.IncludePath, []byte(newText), 0o644)
}

// Delete removes the zone's stanza, collapses runs of blank lines left
// behind, and trims trailing whitespace to a single newline. Deleting
// an unmanaged zone fails with ErrZoneNotFound and leaves the document
// untouched.
func (r *Registry) Delete(name string) error {
	if err := r.ready(); err != nil {
		return err
	}

	lock, err := lockfile.LockPath(r.IncludePath)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	text, err := r.Read()
	if err != nil {
		return err
	}
	existing, ok := ParseStanzas(text)[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrZoneNotFound, name)
	}

	newText := text[:existing.begin] + text[existing.end:]
	newText = blankRunRE.ReplaceAllString(newText, "\n\n")
	newText = strings.TrimSpace(newText) + "\n"
	return atomicfile.Write(r.IncludePath, []byte(newText), 0o644)
}
