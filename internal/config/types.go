package config

// BindConfig locates the nameserver documents this manager owns.
type BindConfig struct {
	// NamedConf is the root config handed to named-checkconf.
	NamedConf string `json:"named_conf"`
	// NamedConfOptions is the options document (ACLs + options block).
	NamedConfOptions string `json:"named_conf_options"`
	// ManagedInclude is the zone-stanza include document, referenced
	// from named.conf.local.
	ManagedInclude string `json:"managed_include"`
	// ManagedZoneDir holds the per-zone record files.
	ManagedZoneDir string `json:"managed_zone_dir"`
	// RequireManagedInclude refuses to operate when the include
	// document does not exist yet.
	RequireManagedInclude bool `json:"require_managed_include"`
	// MastersACL names the ACL referenced by secondary zone stanzas.
	MastersACL string `json:"masters_acl"`
}

// ToolsConfig holds the nameserver tool binaries.
type ToolsConfig struct {
	NamedCheckconf string `json:"named_checkconf"`
	NamedCheckzone string `json:"named_checkzone"`
	Rndc           string `json:"rndc"`
}

// ZoneConfig controls record-file synthesis.
type ZoneConfig struct {
	// DefaultTTL is used for the $TTL directive and any recordset
	// without an explicit TTL.
	DefaultTTL uint32 `json:"default_ttl"`
	// AutoBumpSerial advances the SOA serial on every zone write.
	AutoBumpSerial bool `json:"auto_bump_serial"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
	// File enables rotating file output alongside stderr when set.
	File string `json:"file,omitempty"`
}

// APIConfig contains management API settings.
//
// Note: APIKey is a secret and is never returned by API endpoints.
type APIConfig struct {
	Host   string `json:"host"`
	Port   int    `json:"port"`
	APIKey string `json:"api_key,omitempty"`
}

// AuditConfig locates the audit-log database.
type AuditConfig struct {
	// DBPath is the SQLite file; empty disables the audit log.
	DBPath string `json:"db_path,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Bind    BindConfig    `json:"bind"`
	Tools   ToolsConfig   `json:"tools"`
	Zone    ZoneConfig    `json:"zone"`
	Logging LoggingConfig `json:"logging"`
	API     APIConfig     `json:"api"`
	Audit   AuditConfig   `json:"audit"`
}
