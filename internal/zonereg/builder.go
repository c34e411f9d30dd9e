package zonereg

import (
	"fmt"
	"strings"
)

// BuildStanza renders the canonical registration stanza for a zone.
//
// Primary zones get `type master`, their record file, and the optional
// allow-transfer / also-notify blocks. Secondary zones get `type slave`
// with a masters block referencing the configured ACL of primary
// servers; transfer and notify lists are never emitted for them.
func BuildStanza(name, filePath string, allowTransfer, alsoNotify []string, role Role, mastersACL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "zone \"%s\" {\n", name)
	if role == RoleSecondary {
		b.WriteString("\ttype slave;\n")
		fmt.Fprintf(&b, "\tmasters { %s; };\n", mastersACL)
		fmt.Fprintf(&b, "\tfile \"%s\";\n", filePath)
	} else {
		b.WriteString("\ttype master;\n")
		fmt.Fprintf(&b, "\tfile \"%s\";\n", filePath)
		if len(allowTransfer) > 0 {
			fmt.Fprintf(&b, "\tallow-transfer { %s; };\n", strings.Join(allowTransfer, "; "))
		}
		if len(alsoNotify) > 0 {
			fmt.Fprintf(&b, "\talso-notify { %s; };\n", strings.Join(alsoNotify, "; "))
		}
	}
	b.WriteString("};\n")
	return b.String()
}
