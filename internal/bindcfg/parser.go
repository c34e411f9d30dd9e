package bindcfg

import (
	"regexp"
	"strings"
)

var (
	aclRE          = regexp.MustCompile(`acl\s+([a-zA-Z0-9_-]+)\s*\{([^}]+)\}`)
	optionsRE      = regexp.MustCompile(`(?s)options\s*\{(.*)\};?\s*$`)
	directoryRE    = regexp.MustCompile(`directory\s+"([^"]+)"`)
	forwardersRE   = regexp.MustCompile(`forwarders\s*\{\s*([^}]+)\s*\}`)
	listenOnRE     = regexp.MustCompile(`listen-on\s*\{\s*([^}]+)\s*\}`)
	listenOnV6RE   = regexp.MustCompile(`listen-on-v6\s*\{\s*([^}]+)\s*\}`)
	recursionRE    = regexp.MustCompile(`recursion\s+(yes|no)`)
	dnssecRE       = regexp.MustCompile(`dnssec-validation\s+(yes|no|auto)`)
	lineCommentRE  = regexp.MustCompile(`//.*`)
	blockCommentRE = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// Parse extracts the modeled fields from an options document. ACL
// blocks are collected in document order first; the options block is
// then matched greedily so nested braces inside it do not cut it short.
// A document without an options block still yields its ACLs.
func Parse(text string) Options {
	opts := Options{ACLs: parseACLs(text)}

	om := optionsRE.FindStringSubmatch(text)
	if om == nil {
		return opts
	}
	body := om[1]

	if m := directoryRE.FindStringSubmatch(body); m != nil {
		opts.Directory = m[1]
	}
	if m := forwardersRE.FindStringSubmatch(body); m != nil {
		opts.Forwarders = splitAddresses(m[1])
	}
	if m := listenOnRE.FindStringSubmatch(body); m != nil {
		opts.ListenOn = strings.TrimRight(strings.TrimSpace(m[1]), ";")
	}
	if m := listenOnV6RE.FindStringSubmatch(body); m != nil {
		opts.ListenOnV6 = strings.TrimRight(strings.TrimSpace(m[1]), ";")
	}
	opts.AllowQuery = parseListField(body, "allow-query")
	opts.AllowTransfer = parseListField(body, "allow-transfer")
	if m := recursionRE.FindStringSubmatch(body); m != nil {
		v := m[1] == "yes"
		opts.Recursion = &v
	}
	if m := dnssecRE.FindStringSubmatch(body); m != nil {
		opts.DNSSECValidation = m[1]
	}
	return opts
}

func parseACLs(text string) []ACL {
	var acls []ACL
	for _, m := range aclRE.FindAllStringSubmatch(text, -1) {
		acls = append(acls, ACL{Name: m[1], Entries: splitEntries(m[2])})
	}
	return acls
}

// parseListField reads a braced list option such as
// `allow-query { localhost; internal; };`.
func parseListField(body, field string) []string {
	re := regexp.MustCompile(field + `\s*\{\s*([^}]+)\s*\}`)
	m := re.FindStringSubmatch(body)
	if m == nil {
		return nil
	}
	return splitEntries(m[1])
}

// splitEntries splits a brace body on semicolons, stripping comments
// and whitespace.
func splitEntries(body string) []string {
	var out []string
	for _, entry := range strings.Split(body, ";") {
		entry = lineCommentRE.ReplaceAllString(entry, "")
		entry = blockCommentRE.ReplaceAllString(entry, "")
		entry = strings.TrimSpace(entry)
		if entry != "" {
			out = append(out, entry)
		}
	}
	return out
}

// splitAddresses splits a forwarders body on whitespace after dropping
// semicolons.
func splitAddresses(body string) []string {
	var out []string
	for _, tok := range strings.Fields(strings.ReplaceAll(body, ";", " ")) {
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
