package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jroosing/bindman/internal/api"
	"github.com/jroosing/bindman/internal/audit"
	"github.com/jroosing/bindman/internal/bindexec"
	"github.com/jroosing/bindman/internal/config"
	"github.com/jroosing/bindman/internal/logging"
	"github.com/jroosing/bindman/internal/manager"
	"github.com/jroosing/bindman/internal/zonefile"
	"github.com/jroosing/bindman/internal/zonereg"
)

func main() {
	var (
		host     = flag.String("host", "", "Override API bind host")
		port     = flag.Int("port", 0, "Override API bind port")
		jsonLogs = flag.Bool("json-logs", false, "Force JSON structured logging")
		debug    = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.API.Host = *host
	}
	if *port != 0 {
		cfg.API.Port = *port
	}
	if *jsonLogs {
		cfg.Logging.Format = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	logger := logging.Configure(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	logger.Info("bindman starting",
		"host", cfg.API.Host,
		"port", cfg.API.Port,
		"include", cfg.Bind.ManagedInclude,
		"zone_dir", cfg.Bind.ManagedZoneDir,
	)

	var auditLog *audit.Store
	if cfg.Audit.DBPath != "" {
		auditLog, err = audit.Open(cfg.Audit.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open audit store: %v\n", err)
			os.Exit(1)
		}
		defer auditLog.Close()
	}

	mgr := &manager.Manager{
		Registry: &zonereg.Registry{
			IncludePath:    cfg.Bind.ManagedInclude,
			ZoneDir:        cfg.Bind.ManagedZoneDir,
			MastersACL:     cfg.Bind.MastersACL,
			RequireInclude: cfg.Bind.RequireManagedInclude,
		},
		Engine: zonefile.NewEngine(cfg.Zone.AutoBumpSerial),
		Cmd: &bindexec.Runner{
			CheckConfPath: cfg.Tools.NamedCheckconf,
			CheckZonePath: cfg.Tools.NamedCheckzone,
			RndcPath:      cfg.Tools.Rndc,
			NamedConfPath: cfg.Bind.NamedConf,
			Logger:        logger,
		},
		OptionsPath: cfg.Bind.NamedConfOptions,
		DefaultTTL:  cfg.Zone.DefaultTTL,
		Audit:       auditLog,
		Logger:      logger,
	}

	srv := api.New(&cfg, mgr, auditLog, logger)
	logger.Info("management API listening", "addr", srv.Addr())
	if err := srv.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
		os.Exit(1)
	}
}
