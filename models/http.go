package models

// LoginRequest is the body of the token endpoint.
type LoginRequest struct {
	ContactAddress string `json:"contact_address"`
	Password       string `json:"password"`
}

// TokenResponse is returned on successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AccountRequest is the body of account create and update calls.
// Password is accepted in plain text over the transport and hashed before
// it ever reaches the store.
type AccountRequest struct {
	Handle         string `json:"handle"`
	ContactAddress string `json:"contact_address"`
	Password       string `json:"password"`
}

// RecordRequest is the body of record create and update calls.
type RecordRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	State       RecordState `json:"state"`
}

// AccountList wraps a page of accounts.
type AccountList struct {
	Accounts []Account `json:"accounts"`
}

// RecordList wraps a page of records.
type RecordList struct {
	Records []Record `json:"records"`
}

// Message is a generic informational response body.
type Message struct {
	Message string `json:"message"`
}
