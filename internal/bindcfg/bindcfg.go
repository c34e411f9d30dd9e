// Package bindcfg parses and renders the nameserver options document:
// the ACL blocks that precede the options block and the handful of
// option fields this manager owns. Fields it does not model are not
// preserved on write — the document is regenerated field by field.
package bindcfg

import (
	"fmt"
	"os"

	"github.com/jroosing/bindman/internal/atomicfile"
	"github.com/jroosing/bindman/internal/lockfile"
)

// ACL is one named address list, in document order.
type ACL struct {
	Name    string   `json:"name"`
	Entries []string `json:"entries"`
}

// Options is the modeled subset of the options document. Pointer and
// slice fields distinguish "absent" from "present but empty": absent
// fields are omitted entirely when the document is rendered.
type Options struct {
	ACLs             []ACL    `json:"acls"`
	Directory        string   `json:"directory,omitempty"`
	AllowQuery       []string `json:"allow_query"`
	AllowTransfer    []string `json:"allow_transfer"`
	Forwarders       []string `json:"forwarders"`
	Recursion        *bool    `json:"recursion,omitempty"`
	DNSSECValidation string   `json:"dnssec_validation,omitempty"`
	ListenOn         string   `json:"listen_on,omitempty"`
	ListenOnV6       string   `json:"listen_on_v6,omitempty"`
}

// ACL returns the named ACL and whether it exists.
func (o *Options) ACL(name string) (ACL, bool) {
	for _, a := range o.ACLs {
		if a.Name == name {
			return a, true
		}
	}
	return ACL{}, false
}

// SetACL replaces the named ACL in place or appends it.
func (o *Options) SetACL(name string, entries []string) {
	for i, a := range o.ACLs {
		if a.Name == name {
			o.ACLs[i].Entries = entries
			return
		}
	}
	o.ACLs = append(o.ACLs, ACL{Name: name, Entries: entries})
}

// ReadFile reads and parses the options document at path.
func ReadFile(path string) (Options, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options document: %w", err)
	}
	return Parse(string(raw)), nil
}

// WriteFile renders opts and replaces the document at path atomically,
// holding its advisory lock for the write.
func WriteFile(path string, opts Options) error {
	lock, err := lockfile.LockPath(path)
	if err != nil {
		return err
	}
	defer lock.Unlock()
	return atomicfile.Write(path, []byte(Build(opts)), 0o644)
}
