package manager

import (
	"context"

	"github.com/jroosing/bindman/internal/bindcfg"
)

// GetOptions reads and parses the options document.
func (m *Manager) GetOptions(ctx context.Context) (bindcfg.Options, error) {
	return bindcfg.ReadFile(m.OptionsPath)
}

// PutOptions regenerates the options document from opts, validates the
// configuration and reconfigures the nameserver.
func (m *Manager) PutOptions(ctx context.Context, opts bindcfg.Options) (err error) {
	defer func() {
		outcome, detail := outcomeFor(err)
		m.record(ctx, "put_options", "", outcome, detail)
	}()

	if err = bindcfg.WriteFile(m.OptionsPath, opts); err != nil {
		return err
	}
	if err = m.Cmd.CheckConf(ctx); err != nil {
		return err
	}
	return m.Cmd.Reconfig(ctx)
}

// Reload asks the nameserver to re-read its configuration without
// changing anything on disk.
func (m *Manager) Reload(ctx context.Context) (err error) {
	defer func() {
		outcome, detail := outcomeFor(err)
		m.record(ctx, "reload", "", outcome, detail)
	}()
	return m.Cmd.Reconfig(ctx)
}
