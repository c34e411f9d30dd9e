package bindexec_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jroosing/bindman/internal/bindexec"
)

func TestCheckConf_Success(t *testing.T) {
	r := &bindexec.Runner{
		CheckConfPath: "/bin/true",
		NamedConfPath: "/etc/bind/named.conf",
	}
	assert.NoError(t, r.CheckConf(context.Background()))
}

func TestCheckConf_FailureCarriesResult(t *testing.T) {
	r := &bindexec.Runner{
		CheckConfPath: "/bin/false",
		NamedConfPath: "/etc/bind/named.conf",
	}

	err := r.CheckConf(context.Background())
	require.Error(t, err)

	var ve *bindexec.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "named-checkconf", ve.Tool)
	assert.Equal(t, 1, ve.Result.ExitCode)
}

func TestCheckZone_StripsTrailingDot(t *testing.T) {
	// /bin/echo succeeds regardless of arguments; the call exercises
	// argument construction without a real named-checkzone.
	r := &bindexec.Runner{CheckZonePath: "/bin/echo"}
	assert.NoError(t, r.CheckZone(context.Background(), "example.com.", "/tmp/db.example.com"))
}

func TestCheckZone_Failure(t *testing.T) {
	r := &bindexec.Runner{CheckZonePath: "/bin/false"}

	err := r.CheckZone(context.Background(), "example.com", "/tmp/db.example.com")
	var ve *bindexec.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "named-checkzone", ve.Tool)
}

func TestReloadZone_Failure(t *testing.T) {
	r := &bindexec.Runner{RndcPath: "/bin/false"}

	err := r.ReloadZone(context.Background(), "example.com")
	var re *bindexec.ReloadError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "reload", re.Command)
}

func TestReconfig_Failure(t *testing.T) {
	r := &bindexec.Runner{RndcPath: "/bin/false"}

	err := r.Reconfig(context.Background())
	var re *bindexec.ReloadError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "reconfig", re.Command)
}

func TestRun_MissingBinary(t *testing.T) {
	r := &bindexec.Runner{RndcPath: "/nonexistent/rndc"}

	err := r.Reconfig(context.Background())
	require.Error(t, err)
	var re *bindexec.ReloadError
	assert.False(t, errors.As(err, &re), "a start failure is not a reload failure")
}

func TestResult_OutputPrefersStderr(t *testing.T) {
	res := bindexec.Result{Stdout: "out\n", Stderr: "err\n"}
	assert.Equal(t, "err", res.Output())

	res = bindexec.Result{Stdout: "out\n"}
	assert.Equal(t, "out", res.Output())
}
