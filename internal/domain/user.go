package domain

// AnonymousUserName is used when the identity provider supplies no user.
const AnonymousUserName = "Unknown User"

// User is what the identity provider hands us. Authentication itself is
// delegated; we only carry the display name and the signed-in flag.
type User struct {
	UserName   string
	IsSignedIn bool
}

// Anonymous is the stand-in user for requests without a valid token.
func Anonymous() User {
	return User{UserName: AnonymousUserName}
}

// AsCreator converts the user into the denormalized author reference
// embedded in threads and comments.
func (u User) AsCreator() Creator {
	return Creator{UserName: u.UserName}
}
