package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_UnmarshalStringAndNumericID(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","username":"a","name":"A"}`), &u))
	assert.Equal(t, User{ID: "1", Username: "a", Name: "A"}, u)

	var n User
	require.NoError(t, json.Unmarshal([]byte(`{"id":42,"username":"bob","name":"Bob","avatar":"x.png"}`), &n))
	assert.Equal(t, UserID("42"), n.ID)
	assert.Equal(t, "x.png", n.Avatar)

	var missing User
	require.NoError(t, json.Unmarshal([]byte(`{"id":null,"username":"c"}`), &missing))
	assert.Empty(t, missing.ID)
}

func TestUser_UnmarshalBadID(t *testing.T) {
	var u User
	require.Error(t, json.Unmarshal([]byte(`{"id":{"x":1}}`), &u))
}

func TestUser_MarshalOmitsEmptyAvatar(t *testing.T) {
	b, err := json.Marshal(User{ID: "1", Username: "a", Name: "A"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","username":"a","name":"A"}`, string(b))
}

func TestUser_DisplayName(t *testing.T) {
	var nilUser *User
	assert.Equal(t, "", nilUser.DisplayName())
	assert.Equal(t, "Alice", (&User{Username: "alice", Name: "Alice"}).DisplayName())
	assert.Equal(t, "alice", (&User{Username: "alice"}).DisplayName())
}

func TestRegisterCredentials_Validate(t *testing.T) {
	tests := []struct {
		name    string
		pass    string
		confirm string
		want    error
	}{
		{"ok", "secret1", "secret1", nil},
		{"exactly six", "abcdef", "abcdef", nil},
		{"mismatch", "secret1", "secret2", ErrPasswordMismatch},
		{"mismatch wins over short", "abc", "abd", ErrPasswordMismatch},
		{"too short", "abc", "abc", ErrPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RegisterCredentials{Username: "u", Email: "u@example.com", Password: tt.pass}
			assert.ErrorIs(t, c.Validate(tt.confirm), tt.want)
			if tt.want == nil {
				assert.NoError(t, c.Validate(tt.confirm))
			}
		})
	}
}

func TestSessionConstructors(t *testing.T) {
	assert.Equal(t, Session{IsLoading: true}, Loading())
	assert.Equal(t, Session{}, Anonymous())

	u := &User{ID: "1", Username: "a", Name: "A"}
	s := Authenticated("T", u)
	assert.True(t, s.IsAuthenticated)
	assert.False(t, s.IsLoading)
	assert.Equal(t, "T", s.Token)
	assert.Same(t, u, s.User)

	assert.Equal(t, Anonymous(), Authenticated("", u))
	assert.Equal(t, Anonymous(), Authenticated("T", nil))
}

func TestSession_CloneDoesNotShareUser(t *testing.T) {
	s := Authenticated("T", &User{ID: "1", Name: "A"})
	c := s.Clone()
	c.User.Name = "changed"
	assert.Equal(t, "A", s.User.Name)
	assert.Equal(t, Session{}.Clone(), Session{})
}

func TestTheme(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeDark, Theme("").Toggle())

	assert.Equal(t, ThemeLight, ParseTheme("light"))
	assert.Equal(t, ThemeDark, ParseTheme("dark"))
	assert.Equal(t, DefaultTheme, ParseTheme(""))
	assert.Equal(t, DefaultTheme, ParseTheme("solarized"))
}
