package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKnownNames(t *testing.T) {
	names := []string{
		"app_ready",
		"test_backend_connection",
		"get_app_info",
		"open_external_url",
		"show_notification",
		"get_system_info",
		"get_host_status",
	}
	require.Len(t, All(), len(names))
	for i, name := range names {
		c, err := Parse(name)
		require.NoError(t, err, name)
		assert.Equal(t, Command(i), c)
		assert.Equal(t, name, c.String())
	}
}

func TestParseUnknownName(t *testing.T) {
	for _, name := range []string{"", "App_Ready", "app_ready ", "delete_everything"} {
		_, err := Parse(name)
		assert.Truef(t, errors.Is(err, ErrUnknownCommand), "%q: got %v", name, err)
	}
}

func TestArity(t *testing.T) {
	assert.Equal(t, 0, AppReady.Arity())
	assert.Equal(t, 1, OpenExternalURL.Arity())
	assert.Equal(t, 2, ShowNotification.Arity())
	assert.Equal(t, 0, Command(99).Arity())
	assert.Equal(t, "command(99)", Command(99).String())
}

func TestNewInvocation(t *testing.T) {
	inv, err := NewInvocation("show_notification", []string{"t", "b"})
	require.NoError(t, err)
	assert.Equal(t, ShowNotification, inv.Command)
	assert.NotEmpty(t, inv.ID)

	other, err := NewInvocation("show_notification", []string{"t", "b"})
	require.NoError(t, err)
	assert.NotEqual(t, inv.ID, other.ID, "each invocation gets its own id")

	_, err = NewInvocation("open_external_url", nil)
	assert.True(t, errors.Is(err, ErrInvalidArguments))

	_, err = NewInvocation("app_ready", []string{"extra"})
	assert.True(t, errors.Is(err, ErrInvalidArguments))
}

func TestResultIsExactlyOneOutcome(t *testing.T) {
	ok := Ok("fine")
	assert.False(t, ok.Failed())
	assert.Equal(t, "fine", ok.Value())
	assert.Empty(t, ok.Error())

	unit := Ok(nil)
	assert.False(t, unit.Failed())
	assert.Nil(t, unit.Value())

	bad := Fail(errors.New("nope"))
	assert.True(t, bad.Failed())
	assert.Nil(t, bad.Value())
	assert.Equal(t, "nope", bad.Error())

	assert.True(t, Fail(nil).Failed())
	assert.NotEmpty(t, Fail(nil).Error())
}

func TestResultJSON(t *testing.T) {
	b, err := Ok(map[string]int{"n": 1}).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true,"value":{"n":1}}`, string(b))

	b, err = Fail(errors.New("backend returned status: 503 Service Unavailable")).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":false,"error":"backend returned status: 503 Service Unavailable"}`, string(b))
}

func TestCall(t *testing.T) {
	inv := Call(ShowNotification, "t", "b")
	assert.Equal(t, ShowNotification, inv.Command)
	assert.Equal(t, []string{"t", "b"}, inv.Args)
	assert.NotEmpty(t, inv.ID)
	assert.NotEqual(t, inv.ID, Call(ShowNotification, "t", "b").ID)
}
