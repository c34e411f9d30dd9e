package bindcfg

import (
	"fmt"
	"strings"
)

// Build renders opts as a complete options document: ACL blocks in
// order, a blank line after each, then the options block with its
// fields in canonical order. Absent fields are omitted.
func Build(opts Options) string {
	var lines []string

	for _, acl := range opts.ACLs {
		lines = append(lines, fmt.Sprintf("acl %s {", acl.Name))
		for _, entry := range acl.Entries {
			lines = append(lines, fmt.Sprintf("\t%s;", entry))
		}
		lines = append(lines, "};", "")
	}

	lines = append(lines, "options {")
	if opts.Directory != "" {
		lines = append(lines, fmt.Sprintf("\tdirectory \"%s\";", opts.Directory))
	}
	if len(opts.AllowQuery) > 0 {
		lines = append(lines, fmt.Sprintf("\tallow-query { %s; };", strings.Join(opts.AllowQuery, "; ")))
	}
	if len(opts.AllowTransfer) > 0 {
		lines = append(lines, fmt.Sprintf("\tallow-transfer { %s; };", strings.Join(opts.AllowTransfer, "; ")))
	}
	if len(opts.Forwarders) > 0 {
		lines = append(lines, fmt.Sprintf("\tforwarders { %s; };", strings.Join(opts.Forwarders, "; ")))
	}
	if opts.Recursion != nil {
		v := "no"
		if *opts.Recursion {
			v = "yes"
		}
		lines = append(lines, fmt.Sprintf("\trecursion %s;", v))
	}
	if opts.DNSSECValidation != "" {
		lines = append(lines, fmt.Sprintf("\tdnssec-validation %s;", opts.DNSSECValidation))
	}
	if opts.ListenOn != "" {
		lines = append(lines, fmt.Sprintf("\tlisten-on { %s; };", opts.ListenOn))
	}
	if opts.ListenOnV6 != "" {
		lines = append(lines, fmt.Sprintf("\tlisten-on-v6 { %s; };", opts.ListenOnV6))
	}
	lines = append(lines, "};")

	return strings.Join(lines, "\n") + "\n"
}
