package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	routes := DefaultRoutes()
	tests := []struct {
		path string
		want View
	}{
		{"/", ViewHome},
		{"/login", ViewLogin},
		{"/register", ViewRegister},
		{"/dashboard", ViewDashboard},
		{"/unknown", ViewNotFound},
		{"/dashboard/", ViewNotFound},
		{"", ViewNotFound},
		{"/orders", ViewNotFound},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Lookup(routes, tt.path), tt.path)
	}
	assert.Equal(t, ViewNotFound, Lookup(nil, "/"))
}

func TestRouter_InitialPath(t *testing.T) {
	r := New(DefaultRoutes(), "/login")
	assert.Equal(t, "/login", r.Current())
	assert.Equal(t, ViewLogin, r.View())
	assert.False(t, r.Back())
	assert.False(t, r.Forward())
	assert.Equal(t, "/login", r.Current())
}

func TestRouter_BackForwardRendersDashboard(t *testing.T) {
	r := New(DefaultRoutes(), "/")
	r.Navigate("/dashboard")
	r.Navigate("/login")

	require.True(t, r.Back())
	assert.Equal(t, ViewDashboard, r.View())

	require.True(t, r.Back())
	assert.Equal(t, ViewHome, r.View())
	assert.False(t, r.Back(), "no entry before the first")
	assert.Equal(t, "/", r.Current())

	require.True(t, r.Forward())
	assert.Equal(t, ViewDashboard, r.View())
}

func TestRouter_UnknownAfterValidIsNotStale(t *testing.T) {
	r := New(DefaultRoutes(), "/dashboard")
	assert.Equal(t, ViewDashboard, r.View())

	r.Navigate("/unknown")
	assert.Equal(t, ViewNotFound, r.View())

	require.True(t, r.Back())
	assert.Equal(t, ViewDashboard, r.View())
	require.True(t, r.Forward())
	assert.Equal(t, ViewNotFound, r.View())
}

func TestRouter_NavigateDropsForwardEntries(t *testing.T) {
	r := New(DefaultRoutes(), "/")
	r.Navigate("/login")
	r.Navigate("/register")
	require.True(t, r.Back())
	require.True(t, r.Back())

	r.Navigate("/dashboard")
	assert.False(t, r.Forward())
	require.True(t, r.Back())
	assert.Equal(t, "/", r.Current())
}

func TestRouter_DoesNotAliasRouteTable(t *testing.T) {
	routes := DefaultRoutes()
	r := New(routes, "/")
	routes[0].View = ViewNotFound
	assert.Equal(t, ViewHome, r.View())
}
