package model

// GoogleUserInfo is the payload returned by Google's userinfo endpoint.
// GID and Email are required; Name may be absent.
type GoogleUserInfo struct {
	GID   string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
