package models

// Session is the in-memory record of who is signed in. It is never persisted
// as a whole; it is rebuilt from the stored token and user on start.
//
// IsAuthenticated is true iff Token is non-empty and User is non-nil.
type Session struct {
	User            *User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
}

// Loading is the state the client starts in before storage is inspected.
func Loading() Session {
	return Session{IsLoading: true}
}

func Anonymous() Session {
	return Session{}
}

// Authenticated returns a resolved session for token and user. An empty
// token or nil user yields an anonymous session.
func Authenticated(token string, user *User) Session {
	if token == "" || user == nil {
		return Anonymous()
	}
	return Session{User: user, Token: token, IsAuthenticated: true}
}

// Clone returns a copy that does not share the User pointer.
func (s Session) Clone() Session {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
